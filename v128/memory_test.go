package v128

import "testing"

func TestLoadInterleaved2(t *testing.T) {
	// [x0, y0, x1, y1, ...] point pairs.
	src := []int32{1, 10, 2, 20, 3, 30, 4, 40}

	xs, ys := LoadInterleaved2(src)

	if want := []int32{1, 2, 3, 4}; !equalLanes(xs.data, want) {
		t.Errorf("LoadInterleaved2: xs = %v, want %v", xs.data, want)
	}
	if want := []int32{10, 20, 30, 40}; !equalLanes(ys.data, want) {
		t.Errorf("LoadInterleaved2: ys = %v, want %v", ys.data, want)
	}
}

func TestStoreInterleaved2(t *testing.T) {
	xs := Load([]uint16{1, 2, 3, 4, 5, 6, 7, 8})
	ys := Load([]uint16{10, 20, 30, 40, 50, 60, 70, 80})

	dst := make([]uint16, 16)
	StoreInterleaved2(xs, ys, dst)

	want := []uint16{1, 10, 2, 20, 3, 30, 4, 40, 5, 50, 6, 60, 7, 70, 8, 80}
	if !equalLanes(dst, want) {
		t.Errorf("StoreInterleaved2: got %v, want %v", dst, want)
	}
}

func TestInterleavedRoundTrip(t *testing.T) {
	src := make([]uint8, 32)
	for i := range src {
		src[i] = uint8(i * 3)
	}

	a, b := LoadInterleaved2(src)
	dst := make([]uint8, 32)
	StoreInterleaved2(a, b, dst)

	if !equalLanes(dst, src) {
		t.Errorf("interleaved round trip: got %v, want %v", dst, src)
	}
}

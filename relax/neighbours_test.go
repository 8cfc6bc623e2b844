package relax

import "testing"

func TestQuadrant_InteriorVertexAllFourDirsOK(t *testing.T) {
	const size = 5
	ix := 2*size + 2 // (col=2,row=2), interior

	want := [][2]int{
		{ix + size, ix + 1},      // dir 0: E, S
		{ix - 1, ix + size},      // dir 1: N, E
		{ix - size, ix - 1},      // dir 2: W, N
		{ix + 1, ix - size},      // dir 3: S, W
	}

	for dir, w := range want {
		ixx, ixy, ok := quadrant(size, ix, dir)
		if !ok {
			t.Fatalf("dir %d: expected ok", dir)
		}
		if ixx != w[0] || ixy != w[1] {
			t.Errorf("dir %d: got (%d,%d) want (%d,%d)", dir, ixx, ixy, w[0], w[1])
		}
	}
}

func TestQuadrant_CornerVertexRejectsOutOfBoundsDirs(t *testing.T) {
	const size = 5
	ix := 0 // (col=0,row=0)

	// dir 1 (N,E) and dir 2 (W,N) both require a west or north neighbor,
	// neither of which exists for the top-left corner.
	if _, _, ok := quadrant(size, ix, 1); ok {
		t.Error("dir 1 should be rejected at the top-left corner")
	}
	if _, _, ok := quadrant(size, ix, 2); ok {
		t.Error("dir 2 should be rejected at the top-left corner")
	}
	// dir 0 (E,S) should be fine.
	if _, _, ok := quadrant(size, ix, 0); !ok {
		t.Error("dir 0 should be valid at the top-left corner")
	}
}

func TestQuadrant_RejectsColumnWrap(t *testing.T) {
	const size = 5
	// Bottom row, last row of its column: the "S" (+1) neighbor would wrap
	// into the next column and must be rejected.
	ix := 0*size + (size - 1) // (col=0,row=4)
	if _, _, ok := quadrant(size, ix, 0); ok {
		t.Error("dir 0's south neighbor should be rejected as a column wrap")
	}
}

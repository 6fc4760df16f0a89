package board

const (
	// FileA is the leftmost column (x == 0).
	FileA uint64 = 0x0101010101010101
	// FileH is the rightmost column (x == 7).
	FileH uint64 = FileA << (Dim - 1)
)

func shiftLeft(m uint64) uint64 {
	return (m >> 1) &^ FileH
}

func shiftRight(m uint64) uint64 {
	return (m << 1) &^ FileA
}

func shiftUp(m uint64) uint64 {
	return m << Dim
}

func shiftDown(m uint64) uint64 {
	return m >> Dim
}

// EdgeNeighbors returns every tile that shares an edge with a tile in m,
// excluding m itself. Shifts never wrap from one row to the next.
func EdgeNeighbors(m uint64) uint64 {
	n := shiftLeft(m) | shiftRight(m) | shiftUp(m) | shiftDown(m)
	return n &^ m
}

// DiagonalNeighbors returns every tile that touches a tile in m only at a
// corner: diagonal to some tile of m, not in m and not edge-adjacent to m.
func DiagonalNeighbors(m uint64) uint64 {
	horiz := shiftLeft(m) | shiftRight(m)
	n := shiftUp(horiz) | shiftDown(horiz)
	return n &^ m &^ EdgeNeighbors(m)
}

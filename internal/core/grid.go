package core

// WordGrid stores a 2D grid of 16-bit cell values in row-major order.
type WordGrid struct {
	W, H int
	data []uint16
}

// NewWordGrid allocates a grid with the given dimensions.
func NewWordGrid(w, h int) *WordGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &WordGrid{W: w, H: h, data: make([]uint16, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *WordGrid) Cells() []uint16 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *WordGrid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) lies inside the grid.
func (g *WordGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Clear fills the grid with zeros.
func (g *WordGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// BitGrid stores one bit per cell, packed into 64-bit words.
type BitGrid struct {
	W, H int
	bits []uint64
	pop  int
}

// NewBitGrid allocates a bit grid with the given dimensions.
func NewBitGrid(w, h int) *BitGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &BitGrid{W: w, H: h, bits: make([]uint64, (w*h+63)/64)}
}

// Get reports whether the bit at (x, y) is set.
func (g *BitGrid) Get(x, y int) bool {
	i := y*g.W + x
	return g.bits[i>>6]&(1<<uint(i&63)) != 0
}

// Set raises the bit at (x, y).
func (g *BitGrid) Set(x, y int) {
	i := y*g.W + x
	w := i >> 6
	m := uint64(1) << uint(i&63)
	if g.bits[w]&m == 0 {
		g.bits[w] |= m
		g.pop++
	}
}

// Count returns the number of set bits.
func (g *BitGrid) Count() int { return g.pop }

// Clear lowers every bit.
func (g *BitGrid) Clear() {
	for i := range g.bits {
		g.bits[i] = 0
	}
	g.pop = 0
}

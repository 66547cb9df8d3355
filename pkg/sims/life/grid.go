package life

import (
	"fmt"
	"sync"

	"torus-life/pkg/core"
)

// Grid implements Conway's Game of Life on a toroidal width*height board.
// Cells are stored row-major; index = col + width*row.
//
// A Grid is safe for concurrent use: mutations take an exclusive lock and
// reads share it.
type Grid struct {
	mu sync.RWMutex

	width, height int
	cells         []uint8
	prev          []uint8
	step          int

	src core.BitSource
}

// New returns a randomly populated grid seeded from process entropy.
func New(width, height int) (*Grid, error) {
	return NewWithSource(width, height, core.NewEntropyRNG())
}

// NewWithSource returns a grid whose cells are drawn from src.
func NewWithSource(width, height int, src core.BitSource) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrZeroDimension, width, height)
	}
	if src == nil {
		src = core.NewEntropyRNG()
	}
	total := width * height
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]uint8, total),
		prev:   make([]uint8, total),
		src:    src,
	}
	core.FillBinary(g.src, g.cells)
	return g, nil
}

// MustNew is like New but panics on invalid dimensions.
func MustNew(width, height int) *Grid {
	g, err := New(width, height)
	if err != nil {
		panic(err)
	}
	return g
}

// NewLike returns a fresh random grid with the same dimensions as other.
// Cell contents are not copied.
func NewLike(other *Grid) *Grid {
	return NewLikeWithSource(other, core.NewEntropyRNG())
}

// NewLikeWithSource is like NewLike but draws cells from src.
func NewLikeWithSource(other *Grid, src core.BitSource) *Grid {
	g, err := NewWithSource(other.width, other.height, src)
	if err != nil {
		// other was validated on construction.
		panic(err)
	}
	return g
}

// Name returns the simulation identifier.
func (g *Grid) Name() string { return "life" }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.width, H: g.height} }

// Generation reports how many times Evolve ran since creation or the last reset.
func (g *Grid) Generation() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.step
}

// Reset zeroes the generation counter and re-randomizes every cell.
func (g *Grid) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.resetLocked()
}

// Reseed switches to a deterministic source for seed and resets the grid.
func (g *Grid) Reseed(seed int64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.src = core.NewRNG(seed)
	g.resetLocked()
}

func (g *Grid) resetLocked() {
	g.step = 0
	core.FillBinary(g.src, g.cells)
}

// Evolve advances the board by one generation.
func (g *Grid) Evolve() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.step++
	copy(g.prev, g.cells)

	w, h := g.width, g.height
	hor := [3]int{1, 0, w - 1}
	vert := [3]int{1, 0, h - 1}
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			n := 0
			for _, dx := range hor {
				for _, dy := range vert {
					if dx == 0 && dy == 0 {
						continue
					}
					n += int(g.prev[core.PeriodicIndex(col+dx, row+dy, w, h)])
				}
			}
			idx := core.PeriodicIndex(col, row, w, h)
			switch {
			case n < 2 || n > 3:
				g.cells[idx] = 0
			case n == 3:
				g.cells[idx] = 1
			}
			// n == 2 keeps the previous value.
		}
	}
}

// Cell returns the value at (col, row), wrapping coordinates onto the torus.
func (g *Grid) Cell(col, row int) uint8 {
	col, row = core.Wrap(col, row, g.width, g.height)
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.cells[core.PeriodicIndex(col, row, g.width, g.height)]
}

// Cells returns a row-major copy of the current state.
func (g *Grid) Cells() []uint8 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return append([]uint8(nil), g.cells...)
}

// CopyCells copies the current state into dst and returns the number of
// cells copied.
func (g *Grid) CopyCells(dst []uint8) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return copy(dst, g.cells)
}

// Population counts live cells.
func (g *Grid) Population() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n := 0
	for _, c := range g.cells {
		n += int(c)
	}
	return n
}

// SetState copies cells into the grid. The generation counter is unchanged.
// On error the grid is left untouched.
func (g *Grid) SetState(cells []uint8) error {
	if err := g.validate(cells); err != nil {
		return err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	copy(g.cells, cells)
	return nil
}

// ConsumeState is like SetState but adopts cells as the grid's buffer. The
// caller must not use the slice afterwards.
func (g *Grid) ConsumeState(cells []uint8) error {
	if err := g.validate(cells); err != nil {
		return err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cells = cells
	return nil
}

func (g *Grid) validate(cells []uint8) error {
	if want := g.width * g.height; len(cells) != want {
		return fmt.Errorf("%w: got %d cells, expected %d", ErrStateSize, len(cells), want)
	}
	for i, v := range cells {
		if v > 1 {
			return fmt.Errorf("%w: got value %d at index %d", ErrCellValue, v, i)
		}
	}
	return nil
}

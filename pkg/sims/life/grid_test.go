package life

import (
	"errors"
	"slices"
	"strings"
	"sync"
	"testing"

	"torus-life/pkg/core"
)

// parseRows turns "00000/01000/..." into a row-major cell slice.
func parseRows(t *testing.T, s string) []uint8 {
	t.Helper()
	var cells []uint8
	for _, row := range strings.Split(s, "/") {
		for _, r := range row {
			switch r {
			case '0':
				cells = append(cells, 0)
			case '1':
				cells = append(cells, 1)
			default:
				t.Fatalf("bad cell %q in %q", r, s)
			}
		}
	}
	return cells
}

func newSeeded(t *testing.T, w, h int, seed int64) *Grid {
	t.Helper()
	g, err := NewWithSource(w, h, core.NewRNG(seed))
	if err != nil {
		t.Fatalf("NewWithSource(%d, %d): %v", w, h, err)
	}
	return g
}

func checkInvariants(t *testing.T, g *Grid) {
	t.Helper()
	cells := g.Cells()
	if len(cells) != g.Width()*g.Height() {
		t.Fatalf("len(cells) = %d, expected %d", len(cells), g.Width()*g.Height())
	}
	for i, v := range cells {
		if v > 1 {
			t.Fatalf("cell %d = %d, expected 0 or 1", i, v)
		}
	}
}

func TestNewRejectsZeroDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {0, 0}, {-1, 3}} {
		g, err := New(dims[0], dims[1])
		if !errors.Is(err, ErrZeroDimension) {
			t.Fatalf("New(%d, %d) error = %v, expected ErrZeroDimension", dims[0], dims[1], err)
		}
		if g != nil {
			t.Fatalf("New(%d, %d) returned a grid alongside the error", dims[0], dims[1])
		}
	}
}

func TestMustNewPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustNew(0, 1) did not panic")
		}
	}()
	MustNew(0, 1)
}

func TestNewInitialState(t *testing.T) {
	g := MustNew(17, 9)
	if g.Generation() != 0 {
		t.Fatalf("Generation() = %d, expected 0", g.Generation())
	}
	if g.Size() != (core.Size{W: 17, H: 9}) {
		t.Fatalf("Size() = %+v", g.Size())
	}
	checkInvariants(t, g)
}

func TestNewLikeCopiesShapeOnly(t *testing.T) {
	src := newSeeded(t, 12, 7, 3)
	src.Evolve()
	src.Evolve()

	g := NewLike(src)
	if g.Width() != 12 || g.Height() != 7 {
		t.Fatalf("NewLike size = %dx%d, expected 12x7", g.Width(), g.Height())
	}
	if g.Generation() != 0 {
		t.Fatalf("NewLike generation = %d, expected 0", g.Generation())
	}
	checkInvariants(t, g)
}

func TestNewLikeWithSourceDeterministic(t *testing.T) {
	src := newSeeded(t, 9, 6, 3)
	a := NewLikeWithSource(src, core.NewRNG(21))
	b := NewLikeWithSource(src, core.NewRNG(21))
	if a.Size() != src.Size() {
		t.Fatalf("Size() = %+v, expected %+v", a.Size(), src.Size())
	}
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("equal sources produced different boards")
	}
	want := newSeeded(t, 9, 6, 21)
	if !slices.Equal(a.Cells(), want.Cells()) {
		t.Fatal("NewLikeWithSource did not draw from the supplied source")
	}
}

func TestGliderWrapsOnTorus(t *testing.T) {
	g := newSeeded(t, 5, 5, 1)
	if err := g.SetState(parseRows(t, "00000/01000/01010/01100/00000")); err != nil {
		t.Fatal(err)
	}

	want := []string{
		"00000/00100/11000/01100/00000",
		"00000/01000/10000/11100/00000",
		"00000/00000/10100/11000/01000",
		"00000/00000/10000/10100/11000",
	}
	for i, rows := range want {
		g.Evolve()
		if !slices.Equal(g.Cells(), parseRows(t, rows)) {
			t.Fatalf("step %d: got\n%s\nexpected %s", i+1, g, rows)
		}
		if g.Generation() != i+1 {
			t.Fatalf("Generation() = %d, expected %d", g.Generation(), i+1)
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	g := newSeeded(t, 5, 5, 1)
	vertical := parseRows(t, "00000/00100/00100/00100/00000")
	horizontal := parseRows(t, "00000/00000/01110/00000/00000")
	if err := g.SetState(vertical); err != nil {
		t.Fatal(err)
	}

	g.Evolve()
	if !slices.Equal(g.Cells(), horizontal) {
		t.Fatalf("after first step got\n%s", g)
	}
	g.Evolve()
	if !slices.Equal(g.Cells(), vertical) {
		t.Fatalf("after second step got\n%s", g)
	}
}

func TestBlockIsStill(t *testing.T) {
	g := newSeeded(t, 4, 4, 1)
	block := parseRows(t, "0000/0110/0110/0000")
	if err := g.SetState(block); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		g.Evolve()
	}
	if !slices.Equal(g.Cells(), block) {
		t.Fatalf("block changed:\n%s", g)
	}
}

func TestBlockAcrossCorners(t *testing.T) {
	// A block split over all four corners is still a block on a torus.
	g := newSeeded(t, 6, 6, 1)
	corners := parseRows(t, "100001/000000/000000/000000/000000/100001")
	if err := g.SetState(corners); err != nil {
		t.Fatal(err)
	}
	g.Evolve()
	if !slices.Equal(g.Cells(), corners) {
		t.Fatalf("corner block changed:\n%s", g)
	}
}

func TestEvolveDeterministic(t *testing.T) {
	a := newSeeded(t, 23, 19, 11)
	b := newSeeded(t, 23, 19, 99)
	if err := b.SetState(a.Cells()); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 20; i++ {
		a.Evolve()
		b.Evolve()
		if !slices.Equal(a.Cells(), b.Cells()) {
			t.Fatalf("grids diverged at step %d", i+1)
		}
	}
	checkInvariants(t, a)
}

func TestEvolveTinyGrids(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {1, 4}, {3, 1}, {2, 2}} {
		g := newSeeded(t, dims[0], dims[1], 5)
		for i := 0; i < 10; i++ {
			g.Evolve()
			checkInvariants(t, g)
		}
	}
}

func TestSetStateRoundTrip(t *testing.T) {
	g := newSeeded(t, 6, 3, 2)
	g.Evolve()
	state := parseRows(t, "101010/010101/111000")
	if err := g.SetState(state); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(g.Cells(), state) {
		t.Fatalf("Cells() = %v, expected %v", g.Cells(), state)
	}
	if g.Generation() != 1 {
		t.Fatalf("SetState changed generation to %d", g.Generation())
	}

	// SetState copies: mutating the input must not leak into the grid.
	state[0] = 0
	if g.Cell(0, 0) != 1 {
		t.Fatal("SetState aliased the caller's slice")
	}
}

func TestSetStateRejectsBadInput(t *testing.T) {
	cases := []struct {
		name   string
		cells  []uint8
		err    error
		detail string
	}{
		{"short", make([]uint8, 5), ErrStateSize, "expected 6"},
		{"long", make([]uint8, 7), ErrStateSize, "expected 6"},
		{"value", []uint8{0, 1, 0, 2, 1, 0}, ErrCellValue, "value 2"},
		{"nil", nil, ErrStateSize, "expected 6"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := newSeeded(t, 3, 2, 4)
			g.Evolve()
			before := g.Cells()

			for _, set := range []func([]uint8) error{g.SetState, g.ConsumeState} {
				err := set(c.cells)
				if !errors.Is(err, c.err) {
					t.Fatalf("error = %v, expected %v", err, c.err)
				}
				if !strings.Contains(err.Error(), c.detail) {
					t.Fatalf("error %q missing %q", err, c.detail)
				}
				if !slices.Equal(before, g.Cells()) {
					t.Fatal("rejected state mutated cells")
				}
				if g.Generation() != 1 {
					t.Fatalf("rejected state changed generation to %d", g.Generation())
				}
			}
		})
	}
}

func TestConsumeStateAdoptsBuffer(t *testing.T) {
	g := newSeeded(t, 5, 5, 8)
	state := parseRows(t, "00000/00100/00100/00100/00000")
	if err := g.ConsumeState(state); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(g.Cells(), parseRows(t, "00000/00100/00100/00100/00000")) {
		t.Fatalf("Cells() = %v", g.Cells())
	}
	g.Evolve()
	if !slices.Equal(g.Cells(), parseRows(t, "00000/00000/01110/00000/00000")) {
		t.Fatalf("after evolve Cells() = %v", g.Cells())
	}
}

func TestResetRandomizesAndZeroesStep(t *testing.T) {
	g := newSeeded(t, 32, 32, 6)
	if err := g.SetState(make([]uint8, 32*32)); err != nil {
		t.Fatal(err)
	}
	g.Evolve()
	g.Reset()
	if g.Generation() != 0 {
		t.Fatalf("Generation() = %d after reset", g.Generation())
	}
	if g.Population() == 0 {
		t.Fatal("reset left an empty board")
	}
	checkInvariants(t, g)
}

func TestReseedDeterministic(t *testing.T) {
	a := newSeeded(t, 16, 16, 1)
	b := newSeeded(t, 16, 16, 2)
	a.Evolve()
	a.Reseed(777)
	b.Reseed(777)
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("Reseed with equal seeds produced different boards")
	}
	if a.Generation() != 0 {
		t.Fatalf("Generation() = %d after reseed", a.Generation())
	}
}

func TestReseedMatchesFreshSource(t *testing.T) {
	g := newSeeded(t, 10, 7, 1)
	g.Evolve()
	g.Reseed(55)
	want := newSeeded(t, 10, 7, 55)
	if !slices.Equal(g.Cells(), want.Cells()) {
		t.Fatal("Reseed did not restart from the seeded source")
	}
}

func TestReseedWhileEvolving(t *testing.T) {
	g := newSeeded(t, 16, 16, 4)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			g.Evolve()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			g.Reseed(int64(i))
		}
	}()
	wg.Wait()
	if g.Generation() > 100 {
		t.Fatalf("Generation() = %d", g.Generation())
	}
	checkInvariants(t, g)
}

func TestCellWraps(t *testing.T) {
	g := newSeeded(t, 3, 2, 1)
	if err := g.SetState(parseRows(t, "100/001")); err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		col, row int
		want     uint8
	}{
		{0, 0, 1},
		{2, 1, 1},
		{-1, -1, 1},
		{3, 2, 1},
		{1, 0, 0},
	}
	for _, c := range cases {
		if got := g.Cell(c.col, c.row); got != c.want {
			t.Errorf("Cell(%d,%d) = %d, expected %d", c.col, c.row, got, c.want)
		}
	}
}

func TestCopyCells(t *testing.T) {
	g := newSeeded(t, 4, 2, 1)
	dst := make([]uint8, 8)
	if n := g.CopyCells(dst); n != 8 {
		t.Fatalf("CopyCells copied %d cells", n)
	}
	if !slices.Equal(dst, g.Cells()) {
		t.Fatal("CopyCells mismatch")
	}
}

func TestConcurrentReadersAndWriters(t *testing.T) {
	g := newSeeded(t, 24, 24, 12)
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				g.Evolve()
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = g.Cells()
				_ = g.String()
				_ = g.Population()
			}
		}()
	}
	wg.Wait()
	if g.Generation() != 200 {
		t.Fatalf("Generation() = %d, expected 200", g.Generation())
	}
	checkInvariants(t, g)
}

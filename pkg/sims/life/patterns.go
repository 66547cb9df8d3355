package life

import (
	"fmt"
	"sort"
	"strings"
)

// Pattern is a named starting state. Rows are listed top to bottom with '1'
// for a live cell.
type Pattern struct {
	Name string
	Rows []string
}

// Width returns the number of columns in the pattern.
func (p Pattern) Width() int { return len(p.Rows[0]) }

// Height returns the number of rows in the pattern.
func (p Pattern) Height() int { return len(p.Rows) }

// Cells returns the pattern in row-major order.
func (p Pattern) Cells() []uint8 {
	cells := make([]uint8, 0, p.Width()*p.Height())
	for _, row := range p.Rows {
		for _, r := range row {
			if r == '1' {
				cells = append(cells, 1)
			} else {
				cells = append(cells, 0)
			}
		}
	}
	return cells
}

var patterns = map[string]Pattern{
	"glider": {Name: "glider", Rows: []string{
		"00000",
		"01000",
		"01010",
		"01100",
		"00000",
	}},
	// Period 15.
	"pentadecathlon": {Name: "pentadecathlon", Rows: []string{
		"00000000000",
		"00000000000",
		"00000000000",
		"00001110000",
		"00000100000",
		"00000100000",
		"00001110000",
		"00000000000",
		"00001110000",
		"00001110000",
		"00000000000",
		"00001110000",
		"00000100000",
		"00000100000",
		"00001110000",
		"00000000000",
		"00000000000",
		"00000000000",
	}},
	// Period 3.
	"pulsar": {Name: "pulsar", Rows: []string{
		"00000000000000000",
		"00000000000000000",
		"00001110001110000",
		"00000000000000000",
		"00100001010000100",
		"00100001010000100",
		"00100001010000100",
		"00001110001110000",
		"00000000000000000",
		"00001110001110000",
		"00100001010000100",
		"00100001010000100",
		"00100001010000100",
		"00000000000000000",
		"00001110001110000",
		"00000000000000000",
		"00000000000000000",
	}},
}

// LookupPattern finds a built-in pattern by name.
func LookupPattern(name string) (Pattern, error) {
	p, ok := patterns[strings.ToLower(name)]
	if !ok {
		return Pattern{}, fmt.Errorf("%w: %q (available: %v)", ErrUnknownPattern, name, PatternNames())
	}
	return p, nil
}

// PatternNames lists the built-in patterns in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewFromPattern returns a grid sized to p and holding its cells.
func NewFromPattern(p Pattern) (*Grid, error) {
	g, err := New(p.Width(), p.Height())
	if err != nil {
		return nil, err
	}
	if err := g.ConsumeState(p.Cells()); err != nil {
		return nil, err
	}
	return g, nil
}

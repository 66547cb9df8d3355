package life

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const (
	ruleSegment = "|———"
	aliveBox    = "| ■ "
	deadBox     = "|   "
)

// PrintState writes the raw cell values, one bracketed row per line.
func (g *Grid) PrintState(w io.Writer) error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	bw := bufio.NewWriter(w)
	for row := 0; row < g.height; row++ {
		bw.WriteByte('[')
		for col, v := range g.cells[row*g.width : (row+1)*g.width] {
			if col > 0 {
				bw.WriteString(", ")
			}
			bw.WriteByte('0' + v)
		}
		bw.WriteString("]\n")
	}
	return bw.Flush()
}

// WriteDiagram draws the grid as a bordered box diagram headed by its
// dimensions and generation.
func (g *Grid) WriteDiagram(w io.Writer) error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Grid type: {\n\n    width: %d, height: %d, step: %d\n", g.width, g.height, g.step)
	rule := strings.Repeat(ruleSegment, g.width) + "|\n"
	for row := 0; row < g.height; row++ {
		bw.WriteString(rule)
		for _, v := range g.cells[row*g.width : (row+1)*g.width] {
			if v == 1 {
				bw.WriteString(aliveBox)
			} else {
				bw.WriteString(deadBox)
			}
		}
		bw.WriteString("|\n")
	}
	bw.WriteString(rule)
	bw.WriteString("\n}\n")
	return bw.Flush()
}

// String renders the diagram form of the grid.
func (g *Grid) String() string {
	var b strings.Builder
	_ = g.WriteDiagram(&b)
	return b.String()
}

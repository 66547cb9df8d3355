package render

import "image/color"

// Default colors for live and dead cells.
var (
	AliveColor = color.RGBA{R: 20, G: 31, B: 235, A: 255}
	DeadColor  = color.RGBA{R: 247, G: 247, B: 247, A: 255}
)

// Palette maps binary cell values to RGBA colors.
type Palette struct {
	On  color.RGBA
	Off color.RGBA
}

// DefaultPalette returns blue live cells on a white background.
func DefaultPalette() Palette {
	return Palette{On: AliveColor, Off: DeadColor}
}

// NewPalette converts arbitrary colors into a Palette.
func NewPalette(on, off color.Color) Palette {
	return Palette{On: toRGBA(on), Off: toRGBA(off)}
}

func toRGBA(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, p Palette) {
	for i, c := range cells {
		col := p.Off
		if c != 0 {
			col = p.On
		}
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

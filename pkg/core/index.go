package core

// PeriodicIndex maps non-negative, possibly out-of-range coordinates onto a
// row-major index of a width*height torus. Both dimensions must be positive.
func PeriodicIndex(col, row, width, height int) int {
	return col%width + width*(row%height)
}

// Wrap applies toroidal wrapping to arbitrary (including negative) coordinates.
func Wrap(x, y, width, height int) (int, int) {
	x = (x%width + width) % width
	y = (y%height + height) % height
	return x, y
}

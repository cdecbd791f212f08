// Package grid holds small helpers for addressing cells of a
// fixed-width grid stored as a flat slice.
package grid

// GetGridCoords converts a flat slice index into (x, y) coordinates for
// a grid with the given column count.
func GetGridCoords(index, cols int) (int, int) {
	return index % cols, index / cols
}

// GetGridIndex converts (x, y) coordinates back into a flat slice index.
func GetGridIndex(x, y, cols int) int {
	return y*cols + x
}

// InBounds reports whether (x, y) lies inside a cols×rows grid.
func InBounds(x, y, cols, rows int) bool {
	return x >= 0 && x < cols && y >= 0 && y < rows
}

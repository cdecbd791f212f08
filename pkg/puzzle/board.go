// Package puzzle implements the board logic for the sliding-tile demo:
// a 4×4 grid of numbered tiles with one empty cell, shuffled by random
// valid moves so every position stays solvable.
package puzzle

import (
	"math/rand"

	"zenlang/pkg/grid"
)

// Size is the board's side length in tiles.
const Size = 4

// shuffleSteps is the number of random valid moves used to scramble a
// fresh board.
const shuffleSteps = 1000

// Board is the puzzle state. Tiles are stored row-major; 0 marks the
// empty cell.
type Board struct {
	tiles  [Size * Size]int
	emptyX int
	emptyY int
	moves  int
	rng    *rand.Rand
}

// New returns a solved board using the given random source for
// shuffling. Pass nil to use the global source.
func New(rng *rand.Rand) *Board {
	b := &Board{rng: rng}
	b.Reset()
	return b
}

// Reset puts the board back into the solved position and clears the
// move counter.
func (b *Board) Reset() {
	for i := range b.tiles {
		b.tiles[i] = i + 1
	}
	b.tiles[len(b.tiles)-1] = 0
	b.emptyX, b.emptyY = Size-1, Size-1
	b.moves = 0
}

// Tile returns the tile number at (x, y); 0 is the empty cell.
func (b *Board) Tile(x, y int) int {
	return b.tiles[grid.GetGridIndex(x, y, Size)]
}

// Moves returns how many tiles the player has slid since the last
// shuffle or reset.
func (b *Board) Moves() int {
	return b.moves
}

// slideEmpty swaps the empty cell with the tile at (x, y). The caller
// guarantees adjacency.
func (b *Board) slideEmpty(x, y int) {
	from := grid.GetGridIndex(b.emptyX, b.emptyY, Size)
	to := grid.GetGridIndex(x, y, Size)
	b.tiles[from], b.tiles[to] = b.tiles[to], b.tiles[from]
	b.emptyX, b.emptyY = x, y
}

// Shuffle scrambles the board with random valid moves, then clears the
// move counter. Shuffling by moves rather than permutation keeps the
// board solvable.
func (b *Board) Shuffle() {
	intn := rand.Intn
	if b.rng != nil {
		intn = b.rng.Intn
	}
	for i := 0; i < shuffleSteps; i++ {
		x, y := b.emptyX, b.emptyY
		switch intn(4) {
		case 0:
			y--
		case 1:
			y++
		case 2:
			x--
		case 3:
			x++
		}
		if grid.InBounds(x, y, Size, Size) {
			b.slideEmpty(x, y)
		}
	}
	b.moves = 0
}

// Move slides the tile at (x, y) into the empty cell. It returns false
// when the coordinates are off the board or the tile is not adjacent to
// the empty cell, leaving the board unchanged.
func (b *Board) Move(x, y int) bool {
	if !grid.InBounds(x, y, Size, Size) {
		return false
	}
	dx, dy := x-b.emptyX, y-b.emptyY
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx+dy != 1 {
		return false
	}
	b.slideEmpty(x, y)
	b.moves++
	return true
}

// Solved reports whether every tile is back in its home position.
func (b *Board) Solved() bool {
	for i, tile := range b.tiles[:len(b.tiles)-1] {
		if tile != i+1 {
			return false
		}
	}
	return b.tiles[len(b.tiles)-1] == 0
}

package model

import (
	"crypto/md5"
	"fmt"
)

// Point is a cell coordinate.
type Point struct {
	X, Y int
}

// LiveCells returns the coordinates of every living cell in row-major order.
func LiveCells(e Engine) []Point {
	var cells []Point
	for y := range e.Height() {
		for x, c := range e.RowToString(y) {
			if c == AliveGlyph {
				cells = append(cells, Point{X: x, Y: y})
			}
		}
	}
	return cells
}

// CountLivingCells returns the total number of living cells
func CountLivingCells(e Engine) (count int) {
	for y := range e.Height() {
		for _, c := range e.RowToString(y) {
			if c == AliveGlyph {
				count++
			}
		}
	}
	return
}

// GridHash returns an MD5 hash of the engine's current cells
func GridHash(e Engine) string {
	h := md5.New()
	for y := range e.Height() {
		_, _ = h.Write([]byte(e.RowToString(y)))
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// historySize is how many recent generations History remembers.
const historySize = 5

// History remembers the hashes of recent generations to spot still lifes and
// short oscillators.
type History struct {
	hashes []string
}

// Update adds the engine's current state to the history
func (h *History) Update(e Engine) {
	h.hashes = append(h.hashes, GridHash(e))
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// IsStagnant reports whether the engine repeats one of the last three
// recorded states, i.e. it is static or cycling with period 1 to 3.
func (h *History) IsStagnant(e Engine) bool {
	if len(h.hashes) < 3 {
		return false
	}
	current := GridHash(e)
	for i := 1; i <= 3; i++ {
		if h.hashes[len(h.hashes)-i] == current {
			return true
		}
	}
	return false
}

// Reset forgets every recorded state.
func (h *History) Reset() {
	h.hashes = nil
}

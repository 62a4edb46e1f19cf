package model

import (
	"fmt"
	"time"
)

// grid holds the state every engine shares: fixed dimensions, the
// generation counter and the accumulated compute time.
type grid struct {
	width      int
	height     int
	generation int
	elapsed    time.Duration
}

// Width returns the width of the grid
func (g *grid) Width() int {
	return g.width
}

// Height returns the height of the grid
func (g *grid) Height() int {
	return g.height
}

// Generation returns the number of generations computed since the last clear
func (g *grid) Generation() int {
	return g.generation
}

// TotalTime returns the compute time of all generations since the last clear
func (g *grid) TotalTime() time.Duration {
	return g.elapsed
}

// AverageTime returns the mean compute time per generation
func (g *grid) AverageTime() time.Duration {
	if g.generation == 0 {
		return 0
	}
	return g.elapsed / time.Duration(g.generation)
}

// mustContain panics when (x, y) lies outside the grid.
func (g *grid) mustContain(x, y int) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		panic(fmt.Sprintf("model: cell (%d,%d) outside %dx%d grid", x, y, g.width, g.height))
	}
}

// finishGeneration bumps the generation counter and records the time spent
// since start.
func (g *grid) finishGeneration(start time.Time) {
	g.generation++
	g.elapsed += time.Since(start)
}

// reset zeroes the counters. Cell storage is cleared by the engine.
func (g *grid) reset() {
	g.generation = 0
	g.elapsed = 0
}

// newCells allocates height rows of width cells backed by a single slice.
func newCells(width, height int) [][]bool {
	cells := make([][]bool, height)
	b := make([]bool, width*height)
	for y := range cells {
		start := width * y
		cells[y] = b[start : start+width : start+width]
	}
	return cells
}

// clearCells kills every cell in cells.
func clearCells(cells [][]bool) {
	for y := range cells {
		clear(cells[y])
	}
}

// countNeighbors counts the living toroidal neighbours of (x, y).
func countNeighbors(cells [][]bool, width, height, x, y int) int {
	var (
		negX = (x - 1 + width) % width
		posX = (x + 1) % width
		negY = (y - 1 + height) % height
		posY = (y + 1) % height
	)

	count := 0
	for _, alive := range [8]bool{
		cells[negY][negX], cells[negY][x], cells[negY][posX],
		cells[y][negX], cells[y][posX],
		cells[posY][negX], cells[posY][x], cells[posY][posX],
	} {
		if alive {
			count++
		}
	}
	return count
}

package model

import (
	"time"

	"github.com/sheikhrachel/go-life/rules"
)

// Dense scans every cell of the grid each generation. It is the reference
// the other engines are checked against.
type Dense struct {
	grid
	cells [][]bool
	next  [][]bool
}

func newDense(width, height int) *Dense {
	return &Dense{
		grid:  grid{width: width, height: height},
		cells: newCells(width, height),
		next:  newCells(width, height),
	}
}

func (d *Dense) Title() string { return "Dense scan engine" }

func (d *Dense) Summary() string {
	return "Uses a 2D boolean grid and scans every cell each generation. " +
		"The field wraps around at the sides, tops and corners."
}

// SetCell sets a cell to alive (true) or dead (false)
func (d *Dense) SetCell(x, y int, alive bool) {
	d.mustContain(x, y)
	d.cells[y][x] = alive
}

// GetCell returns the state of a cell
func (d *Dense) GetCell(x, y int) bool {
	d.mustContain(x, y)
	return d.cells[y][x]
}

// Clear clears all cells
func (d *Dense) Clear() {
	clearCells(d.cells)
	clearCells(d.next)
	d.reset()
}

func (d *Dense) RowToString(row int) string {
	d.mustContain(0, row)
	return rowString(d.cells[row])
}

// NextGeneration computes every cell into the scratch grid and swaps
func (d *Dense) NextGeneration() {
	start := time.Now()
	for y := range d.height {
		for x := range d.width {
			d.next[y][x] = rules.ApplyConwayRules(countNeighbors(d.cells, d.width, d.height, x, y), d.cells[y][x])
		}
	}
	d.cells, d.next = d.next, d.cells
	d.finishGeneration(start)
}

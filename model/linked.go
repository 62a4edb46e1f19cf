package model

import (
	"time"

	"github.com/sheikhrachel/go-life/rules"
)

// links holds the flat-buffer indices of a cell's eight toroidal neighbours,
// clockwise from north: N, NE, E, SE, S, SW, W, NW.
type links [8]int32

// Linked stores cells in one flat buffer and gives every cell precomputed
// neighbour indices, so stepping needs no modulo arithmetic.
type Linked struct {
	grid
	links []links
	alive []uint8
	work  []uint8
}

func newLinked(width, height int) *Linked {
	l := &Linked{
		grid:  grid{width: width, height: height},
		links: make([]links, width*height),
		alive: make([]uint8, width*height),
		work:  make([]uint8, width*height),
	}
	for y := range height {
		for x := range width {
			var (
				negX = (x - 1 + width) % width
				posX = (x + 1) % width
				negY = (y - 1 + height) % height
				posY = (y + 1) % height
			)
			l.links[l.index(x, y)] = links{
				l.index(x, negY),
				l.index(posX, negY),
				l.index(posX, y),
				l.index(posX, posY),
				l.index(x, posY),
				l.index(negX, posY),
				l.index(negX, y),
				l.index(negX, negY),
			}
		}
	}
	return l
}

func (l *Linked) index(x, y int) int32 {
	return int32(y*l.width + x)
}

func (l *Linked) Title() string { return "Linked cell engine" }

func (l *Linked) Summary() string {
	return "Uses a flat cell buffer where every cell holds the indices of its 8 neighbours. " +
		"Scans the entire buffer each generation. The field wraps around at the sides, tops and corners."
}

// SetCell sets a cell to alive (true) or dead (false)
func (l *Linked) SetCell(x, y int, alive bool) {
	l.mustContain(x, y)
	var v uint8
	if alive {
		v = 1
	}
	l.alive[l.index(x, y)] = v
}

// GetCell returns the state of a cell
func (l *Linked) GetCell(x, y int) bool {
	l.mustContain(x, y)
	return l.alive[l.index(x, y)] == 1
}

// Clear clears all cells
func (l *Linked) Clear() {
	clear(l.alive)
	clear(l.work)
	l.reset()
}

func (l *Linked) RowToString(row int) string {
	l.mustContain(0, row)
	cells := make([]bool, l.width)
	for x := range cells {
		cells[x] = l.alive[l.index(x, row)] == 1
	}
	return rowString(cells)
}

// NextGeneration sums each cell's linked neighbours into the work buffer and swaps
func (l *Linked) NextGeneration() {
	start := time.Now()
	for idx, nb := range l.links {
		n := l.alive[nb[0]] + l.alive[nb[1]] + l.alive[nb[2]] + l.alive[nb[3]] +
			l.alive[nb[4]] + l.alive[nb[5]] + l.alive[nb[6]] + l.alive[nb[7]]
		l.work[idx] = 0
		if rules.ApplyConwayRules(int(n), l.alive[idx] == 1) {
			l.work[idx] = 1
		}
	}
	l.alive, l.work = l.work, l.alive
	l.finishGeneration(start)
}

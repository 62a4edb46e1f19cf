package model

import (
	"time"

	"github.com/sheikhrachel/go-life/rules"
)

// scanBuffer is one of the two cell buffers of a scan-list engine. Every
// live cell of the buffer lies inside dirty, or anywhere when full is set.
type scanBuffer struct {
	cells [][]bool
	dirty ScanList
	full  bool
}

// wipe kills every cell the buffer may hold and hands dirty back to pool.
func (b *scanBuffer) wipe(pool *ScanListPool) {
	if b.full {
		clearCells(b.cells)
	} else {
		for _, r := range b.dirty {
			for y := r.StartY; y <= r.StopY; y++ {
				clear(b.cells[y][r.StartX : r.StopX+1])
			}
		}
	}
	pool.Put(b.dirty)
	b.dirty = nil
	b.full = false
}

// scanState is shared by the sequential and parallel scan-list engines.
type scanState struct {
	grid
	cur, next scanBuffer
	scan      ScanList
	rescan    bool
	pool      *ScanListPool
}

func newScanState(width, height int) scanState {
	return scanState{
		grid:   grid{width: width, height: height},
		cur:    scanBuffer{cells: newCells(width, height)},
		next:   scanBuffer{cells: newCells(width, height)},
		rescan: true,
		pool:   NewScanListPool(),
	}
}

// SetCell sets a cell to alive (true) or dead (false). Bringing a cell to
// life schedules a scan of the whole grid for the next generation.
func (s *scanState) SetCell(x, y int, alive bool) {
	s.mustContain(x, y)
	s.cur.cells[y][x] = alive
	if alive {
		s.cur.full = true
		s.rescan = true
	}
}

// GetCell returns the state of a cell
func (s *scanState) GetCell(x, y int) bool {
	s.mustContain(x, y)
	return s.cur.cells[y][x]
}

// Clear clears all cells and restores the whole-grid scan list
func (s *scanState) Clear() {
	clearCells(s.cur.cells)
	clearCells(s.next.cells)
	s.pool.Put(s.cur.dirty)
	s.pool.Put(s.next.dirty)
	s.cur.dirty, s.cur.full = nil, false
	s.next.dirty, s.next.full = nil, false
	s.rescan = true
	s.reset()
}

func (s *scanState) RowToString(row int) string {
	s.mustContain(0, row)
	return rowString(s.cur.cells[row])
}

// ScanList returns a copy of the regions the next generation will evaluate.
func (s *scanState) ScanList() ScanList {
	if s.rescan {
		return ScanList{FullRegion(s.width, s.height)}
	}
	return append(ScanList(nil), s.scan...)
}

// step runs one generation. evaluate must compute every cell of the scan
// list from s.cur into s.next and return the bands of next-generation live
// cells.
func (s *scanState) step(evaluate func(scan ScanList) []Region) {
	start := time.Now()
	if s.rescan {
		s.pool.Put(s.scan)
		s.scan = append(s.pool.Get(), FullRegion(s.width, s.height))
		s.rescan = false
	}

	s.next.wipe(s.pool)
	bands := evaluate(s.scan)

	upcoming := s.pool.Get()
	for _, band := range bands {
		upcoming = growInto(upcoming, band, s.width, s.height)
	}

	s.next.dirty = s.scan
	s.scan = upcoming.Coalesce()
	s.cur, s.next = s.next, s.cur
	s.finishGeneration(start)
}

// scanRows evaluates rows y0..y1 of region r from cells into next and
// returns the bands of live cells it produced.
func scanRows(cells, next [][]bool, width, height int, r Region, y0, y1 int) []Region {
	var bands bandTracker
	for y := y0; y <= y1; y++ {
		rowMin, rowMax := -1, -1
		for x := r.StartX; x <= r.StopX; x++ {
			alive := rules.ApplyConwayRules(countNeighbors(cells, width, height, x, y), cells[y][x])
			next[y][x] = alive
			if alive {
				if rowMin < 0 {
					rowMin = x
				}
				rowMax = x
			}
		}
		if rowMin >= 0 {
			bands.observe(y, rowMin, rowMax)
		}
	}
	return bands.finish()
}

// Scanner evaluates only the cells inside its scan list, which shrinks to
// the neighbourhood of the live cells as dead space appears.
type Scanner struct {
	scanState
}

func newScanList(width, height int) *Scanner {
	return &Scanner{scanState: newScanState(width, height)}
}

func (s *Scanner) Title() string { return "Scan list engine" }

func (s *Scanner) Summary() string {
	return "Uses a 2D boolean grid. A list of regions to scan is used to skip over dead space. " +
		"The field wraps around at the sides, tops and corners."
}

// NextGeneration evaluates every region of the scan list in order
func (s *Scanner) NextGeneration() {
	s.step(func(scan ScanList) []Region {
		var bands []Region
		for _, r := range scan {
			bands = append(bands, scanRows(s.cur.cells, s.next.cells, s.width, s.height, r, r.StartY, r.StopY)...)
		}
		return bands
	})
}

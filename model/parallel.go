package model

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// rowChunk is a band of rows of one scan region handled by a single worker.
type rowChunk struct {
	region Region
	y0, y1 int
}

// ParallelScanner is a Scanner whose regions are split into row chunks that
// are evaluated concurrently. Workers only read the current buffer and write
// disjoint rows of the scratch buffer; their bands are merged after the join.
type ParallelScanner struct {
	scanState
	workers int
}

func newParallel(width, height, workers int) *ParallelScanner {
	return &ParallelScanner{scanState: newScanState(width, height), workers: workers}
}

func (p *ParallelScanner) Title() string { return "Parallel scan list engine" }

func (p *ParallelScanner) Summary() string {
	return fmt.Sprintf("Uses a 2D boolean grid and a list of regions to skip over dead space. "+
		"Region rows are split across %d workers. The field wraps around at the sides, tops and corners.", p.workers)
}

// Workers returns the maximum number of concurrent workers
func (p *ParallelScanner) Workers() int {
	return p.workers
}

// NextGeneration evaluates the scan list using parallel processing
func (p *ParallelScanner) NextGeneration() {
	p.step(func(scan ScanList) []Region {
		chunks := p.chunks(scan)
		results := make([][]Region, len(chunks))

		var eg errgroup.Group
		eg.SetLimit(p.workers)
		for i, c := range chunks {
			eg.Go(func() error {
				results[i] = scanRows(p.cur.cells, p.next.cells, p.width, p.height, c.region, c.y0, c.y1)
				return nil
			})
		}
		_ = eg.Wait()

		var bands []Region
		for _, r := range results {
			bands = append(bands, r...)
		}
		return bands
	})
}

// chunks splits every region into at most p.workers row chunks.
func (p *ParallelScanner) chunks(scan ScanList) []rowChunk {
	var chunks []rowChunk
	for _, r := range scan {
		rowsPerWorker := (r.Height() + p.workers - 1) / p.workers // Ceiling division
		for y0 := r.StartY; y0 <= r.StopY; y0 += rowsPerWorker {
			chunks = append(chunks, rowChunk{
				region: r,
				y0:     y0,
				y1:     min(y0+rowsPerWorker-1, r.StopY),
			})
		}
	}
	return chunks
}

package model

import "sync"

// ScanListPool recycles region slices between generations
type ScanListPool struct {
	pool sync.Pool
}

func NewScanListPool() *ScanListPool {
	return &ScanListPool{
		pool: sync.Pool{
			New: func() interface{} {
				s := make(ScanList, 0, 8)
				return &s
			},
		},
	}
}

// Get retrieves an empty scan list from the pool
func (p *ScanListPool) Get() ScanList {
	s := p.pool.Get().(*ScanList)
	return (*s)[:0]
}

// Put returns a scan list to the pool. The caller must not use it afterwards.
func (p *ScanListPool) Put(s ScanList) {
	if s == nil {
		return
	}
	s = s[:0]
	p.pool.Put(&s)
}

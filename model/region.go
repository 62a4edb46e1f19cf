package model

// Region is an inclusive rectangle of grid coordinates. Regions produced by
// the scan-list engines never wrap: 0 <= StartX <= StopX < width and
// 0 <= StartY <= StopY < height.
type Region struct {
	StartX, StartY int
	StopX, StopY   int
}

// FullRegion covers a whole width x height grid.
func FullRegion(width, height int) Region {
	return Region{StopX: width - 1, StopY: height - 1}
}

func (r Region) Width() int  { return r.StopX - r.StartX + 1 }
func (r Region) Height() int { return r.StopY - r.StartY + 1 }
func (r Region) Area() int   { return r.Width() * r.Height() }

// contains reports whether (x, y) lies inside r.
func (r Region) contains(x, y int) bool {
	return x >= r.StartX && x <= r.StopX && y >= r.StartY && y <= r.StopY
}

// Intersects reports whether r and o share at least one cell.
func (r Region) Intersects(o Region) bool {
	return r.StartX <= o.StopX && o.StartX <= r.StopX &&
		r.StartY <= o.StopY && o.StartY <= r.StopY
}

// Union returns the bounding box of r and o.
func (r Region) Union(o Region) Region {
	return Region{
		StartX: min(r.StartX, o.StartX),
		StartY: min(r.StartY, o.StartY),
		StopX:  max(r.StopX, o.StopX),
		StopY:  max(r.StopY, o.StopY),
	}
}

// ScanList is the set of regions a scan-list engine evaluates in the next
// generation. Cells outside every region are dead.
type ScanList []Region

// contains reports whether any region holds (x, y).
func (s ScanList) contains(x, y int) bool {
	for _, r := range s {
		if r.contains(x, y) {
			return true
		}
	}
	return false
}

// Area sums the areas of the regions, i.e. the number of cells the next
// generation evaluates.
func (s ScanList) Area() int {
	area := 0
	for _, r := range s {
		area += r.Area()
	}
	return area
}

// Coalesce merges intersecting regions into their bounding boxes until the
// regions are pairwise disjoint. It works in place and returns the shortened
// list.
func (s ScanList) Coalesce() ScanList {
	for merged := true; merged; {
		merged = false
		for i := 0; i < len(s); i++ {
			for j := i + 1; j < len(s); {
				if !s[i].Intersects(s[j]) {
					j++
					continue
				}
				s[i] = s[i].Union(s[j])
				s = append(s[:j], s[j+1:]...)
				merged = true
			}
		}
	}
	return s
}

// span is an inclusive coordinate range on one axis.
type span struct{ lo, hi int }

// wrapSpans maps [lo, hi] onto a torus axis of length n. Ranges at least n
// long cover the axis; a range hanging over one edge is split in two.
func wrapSpans(lo, hi, n int) []span {
	switch {
	case hi-lo+1 >= n:
		return []span{{0, n - 1}}
	case lo < 0:
		return []span{{lo + n, n - 1}, {0, hi}}
	case hi >= n:
		return []span{{lo, n - 1}, {0, hi - n}}
	default:
		return []span{{lo, hi}}
	}
}

// growInto appends r grown by one cell on every side, split at the torus
// seams, to dst.
func growInto(dst ScanList, r Region, width, height int) ScanList {
	for _, ys := range wrapSpans(r.StartY-1, r.StopY+1, height) {
		for _, xs := range wrapSpans(r.StartX-1, r.StopX+1, width) {
			dst = append(dst, Region{StartX: xs.lo, StartY: ys.lo, StopX: xs.hi, StopY: ys.hi})
		}
	}
	return dst
}

// bandGap is the number of consecutive dead rows that ends a band.
const bandGap = 3

// bandTracker groups rows holding live cells into bands and tracks each
// band's bounding box.
type bandTracker struct {
	bands []Region
	cur   Region
	open  bool
}

// observe records that row y has live cells between minX and maxX.
func (t *bandTracker) observe(y, minX, maxX int) {
	if t.open && y-t.cur.StopY <= bandGap {
		t.cur.StopY = y
		t.cur.StartX = min(t.cur.StartX, minX)
		t.cur.StopX = max(t.cur.StopX, maxX)
		return
	}
	if t.open {
		t.bands = append(t.bands, t.cur)
	}
	t.cur = Region{StartX: minX, StartY: y, StopX: maxX, StopY: y}
	t.open = true
}

func (t *bandTracker) finish() []Region {
	if t.open {
		t.bands = append(t.bands, t.cur)
		t.open = false
	}
	return t.bands
}

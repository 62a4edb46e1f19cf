// Package pattern decodes RLE and Extended RLE Game of Life pattern files.
//
// A file is read twice. The first pass collects the header: "#R" origin
// hints, "#r" rules and the "x = ..., y = ..., rule = ..." coordinate line.
// The second pass decodes the run-length encoded body, placing the pattern
// centred on the target grid.
package pattern

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/rules"
)

var (
	// ErrUnsupportedRule is returned for any rule other than B3/S23.
	ErrUnsupportedRule = errors.New("pattern: unsupported automata rule")
	// ErrMissingCoordinates is returned when the x/y coordinate line is
	// absent or declares a zero width or height.
	ErrMissingCoordinates = errors.New("pattern: missing pattern coordinates")
	// ErrPatternTooLarge is returned when the declared size does not fit the grid.
	ErrPatternTooLarge = errors.New("pattern: coordinates too big for game board")
	// ErrMalformedBody is returned for an invalid or zero run length or an
	// unknown token in the pattern body.
	ErrMalformedBody = errors.New("pattern: malformed pattern data")
	// ErrOutOfBounds is returned when the body would set a cell outside the grid.
	ErrOutOfBounds = errors.New("pattern: live cell outside game board")
	// ErrInvalidGrid is returned when the target grid has no cells.
	ErrInvalidGrid = errors.New("pattern: game board has an invalid width or height")
)

// Point is a cell coordinate on the target grid.
type Point = model.Point

// Pattern is a decoded pattern placed on a grid of known size.
type Pattern struct {
	// Width and Height are the dimensions declared by the coordinate line.
	Width, Height int
	// Rule is the rule named by the coordinate line, or RuleB3S23 when omitted.
	Rule string
	// Origin is the grid coordinate of the pattern's top-left corner.
	Origin Point
	// Cells lists the live cells in the order the body sets them.
	Cells []Point
}

// Target is anything a pattern can be written into.
type Target interface {
	Width() int
	Height() int
	SetCell(x, y int, alive bool)
}

// Apply brings every cell of the pattern to life on t.
func (p *Pattern) Apply(t Target) {
	for _, c := range p.Cells {
		t.SetCell(c.X, c.Y, true)
	}
}

// decoder carries the state of one decode against a grid of fixed size.
type decoder struct {
	gridWidth, gridHeight int
	centerX, centerY      int

	pattern    Pattern
	haveHeader bool
}

// Decode reads an RLE pattern from rs for a gridWidth x gridHeight grid. The
// reader is rewound between the header pass and the body pass.
func Decode(rs io.ReadSeeker, gridWidth, gridHeight int) (*Pattern, error) {
	if gridWidth <= 0 || gridHeight <= 0 {
		return nil, errors.Wrapf(ErrInvalidGrid, "[Decode] %dx%d", gridWidth, gridHeight)
	}
	d := &decoder{
		gridWidth:  gridWidth,
		gridHeight: gridHeight,
		centerX:    gridWidth / 2,
		centerY:    gridHeight / 2,
		pattern:    Pattern{Rule: rules.RuleB3S23},
	}

	if err := forEachLine(rs, d.headerLine); err != nil {
		return nil, err
	}
	if !d.haveHeader {
		return nil, errors.Wrap(ErrMissingCoordinates, "[Decode] no x/y coordinate line")
	}

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, errors.Wrap(err, "[Decode] failed to rewind pattern")
	}
	if err := d.decodeBody(rs); err != nil {
		return nil, err
	}
	return &d.pattern, nil
}

// forEachLine calls fn for every line of r until fn fails or returns false.
func forEachLine(r io.Reader, fn func(line string) (bool, error)) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		more, err := fn(strings.TrimRight(sc.Text(), "\r"))
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
	return errors.Wrap(sc.Err(), "[forEachLine] failed to read pattern")
}

// headerLine handles one line of the header pass.
func (d *decoder) headerLine(line string) (bool, error) {
	if line == "" {
		return true, nil
	}
	switch line[0] {
	case '#':
		return true, d.comment(line)
	case 'x', 'X':
		return true, d.coordinates(line)
	}
	return true, nil
}

// comment handles the two comment types that matter for decoding.
//
// "#R x y" gives the top-left corner of the pattern relative to its own
// centre, e.g. "#R -22 -57" as written by XLife. "#r" gives the rule in
// survival/birth form; only "23/3" is accepted.
func (d *decoder) comment(line string) error {
	if len(line) < 2 {
		return nil
	}
	rest := line[2:]
	switch line[1] {
	case 'R':
		// The coordinate line's centred origin wins wherever it appears.
		if !d.haveHeader {
			d.pattern.Origin = d.commentOrigin(rest)
		}
	case 'r':
		if !rules.IsConwaySurvivalBirth(rest) {
			return errors.Wrapf(ErrUnsupportedRule, "[comment] #r %q", strings.TrimSpace(rest))
		}
	}
	return nil
}

// commentOrigin converts a "#R" offset into a grid origin, falling back to
// (0, 0) when the fields do not parse.
func (d *decoder) commentOrigin(rest string) Point {
	fields := strings.Fields(rest)
	if len(fields) < 2 {
		return Point{}
	}
	x, errX := strconv.Atoi(fields[0])
	y, errY := strconv.Atoi(fields[1])
	if errX != nil || errY != nil {
		return Point{}
	}
	return Point{
		X: max(0, d.centerX-abs(x)),
		Y: max(0, d.centerY-abs(y)),
	}
}

// coordinates handles the "x = 20, y = 20, rule = B3/S23" line. It validates
// the declared size and centres the pattern on the grid.
func (d *decoder) coordinates(line string) error {
	fields := strings.FieldsFunc(strings.ToLower(line), func(r rune) bool {
		return r == ' ' || r == '=' || r == ',' || r == '\t'
	})

	var (
		width, height int
		rule          string
		err           error
	)
	for i := 0; i+1 < len(fields); i++ {
		switch fields[i] {
		case "x":
			if width, err = strconv.Atoi(fields[i+1]); err != nil {
				return errors.Wrapf(ErrMissingCoordinates, "[coordinates] x = %q", fields[i+1])
			}
			i++
		case "y":
			if height, err = strconv.Atoi(fields[i+1]); err != nil {
				return errors.Wrapf(ErrMissingCoordinates, "[coordinates] y = %q", fields[i+1])
			}
			i++
		case "rule":
			rule = fields[i+1]
			i++
		}
	}

	if rule != "" && !rules.IsConway(rule) {
		return errors.Wrapf(ErrUnsupportedRule, "[coordinates] rule = %q", rule)
	}
	if width <= 0 || height <= 0 {
		return errors.Wrapf(ErrMissingCoordinates, "[coordinates] x = %d, y = %d", width, height)
	}
	if width > d.gridWidth-1 || height > d.gridHeight-1 {
		return errors.Wrapf(ErrPatternTooLarge, "[coordinates] %dx%d pattern on %dx%d board",
			width, height, d.gridWidth, d.gridHeight)
	}

	d.pattern.Width = width
	d.pattern.Height = height
	d.pattern.Origin = Point{
		X: d.centerX - width/2,
		Y: d.centerY - height/2,
	}
	d.haveHeader = true
	return nil
}

// bodyCursor walks the pattern body. The body is one token stream: line
// breaks do not reset the column and a run count may continue on the next
// line.
type bodyCursor struct {
	d    *decoder
	x, y int
	run  int
	// digits is set while a run count is being read.
	digits bool
	done   bool
}

func (d *decoder) decodeBody(r io.Reader) error {
	c := &bodyCursor{d: d, x: d.pattern.Origin.X, y: d.pattern.Origin.Y}
	err := forEachLine(r, func(line string) (bool, error) {
		if line == "" || line[0] == '#' || line[0] == 'x' || line[0] == 'X' {
			return true, nil
		}
		if err := c.line(line); err != nil {
			return false, err
		}
		return !c.done, nil
	})
	if err != nil {
		return err
	}
	if c.digits {
		return errors.Wrapf(ErrMalformedBody, "[decodeBody] run of %d without a cell type", c.run)
	}
	return nil
}

// line decodes one body line.
func (c *bodyCursor) line(line string) error {
	for _, ch := range line {
		switch {
		case ch >= '0' && ch <= '9':
			c.run = c.run*10 + int(ch-'0')
			c.digits = true
			continue
		case ch == ' ' || ch == '\t':
			if c.digits {
				return errors.Wrapf(ErrMalformedBody, "[line] blank after run of %d", c.run)
			}
			continue
		}

		n := 1
		if c.digits {
			if c.run < 1 {
				return errors.Wrapf(ErrMalformedBody, "[line] zero run before %q", ch)
			}
			n = c.run
		}
		c.run, c.digits = 0, false

		switch ch {
		case 'b':
			c.x += n
		case 'o':
			for range n {
				if err := c.set(); err != nil {
					return err
				}
				c.x++
			}
		case '$':
			c.x = c.d.pattern.Origin.X
			c.y += n
		case '!':
			c.done = true
			return nil
		default:
			return errors.Wrapf(ErrMalformedBody, "[line] unexpected %q in %q", ch, line)
		}
	}
	return nil
}

// set records a live cell at the cursor.
func (c *bodyCursor) set() error {
	if c.x < 0 || c.x >= c.d.gridWidth || c.y < 0 || c.y >= c.d.gridHeight {
		return errors.Wrapf(ErrOutOfBounds, "[set] (%d,%d) on %dx%d board",
			c.x, c.y, c.d.gridWidth, c.d.gridHeight)
	}
	c.d.pattern.Cells = append(c.d.pattern.Cells, Point{X: c.x, Y: c.y})
	return nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

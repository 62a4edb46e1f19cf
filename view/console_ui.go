package view

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

const (
	viewHeader = "header"
	viewStatus = "status"
	viewField  = "field"
	viewHelp   = "help"

	leftColumnWidth = 30
	minWindowHeight = 12
)

// Controller is the simulation the console UI drives. All calls are made
// from the gocui main loop.
type Controller interface {
	Engine() model.Engine
	Step()
	Clear()
	// Reload clears the grid and loads the configured pattern again.
	Reload() error
	// Toggle flips the cell at (x, y).
	Toggle(x, y int)
}

type keyBinding struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

// ConsoleUI is an interactive terminal front end built on gocui.
type ConsoleUI struct {
	ctrl     Controller
	g        *gocui.Gui
	keys     []keyBinding
	interval time.Duration

	running bool
	stopCh  chan struct{}
	lastErr error

	liveFiller string
	deadFiller string
}

// NewConsoleUI creates the terminal UI. interval is the delay between
// generations while running.
func NewConsoleUI(ctrl Controller, interval time.Duration) (*ConsoleUI, error) {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, errors.Wrap(err, "[NewConsoleUI] failed to start terminal")
	}

	t := &ConsoleUI{
		ctrl:       ctrl,
		g:          g,
		interval:   interval,
		liveFiller: aurora.Green(string(model.AliveGlyph)).BgBrightGreen().String(),
		deadFiller: "░",
	}
	t.g.Mouse = true
	t.keys = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit, ""},
		{'q', "Q", "Exit", t.cmdQuit, ""},
		{'n', "N", "Next step", t.cmdStep, ""},
		{'r', "R", "Run/Stop", t.cmdRun, ""},
		{'c', "C", "Clear", t.cmdClear, ""},
		{'l', "L", "Reload pattern", t.cmdReload, ""},
		{gocui.MouseLeft, "MOUSE", "Toggle cell", t.cmdMouseClick, viewField},
	}
	t.g.SetManagerFunc(t.layout)

	for _, kb := range t.keys {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(_ *gocui.Gui, v *gocui.View) error {
			return h(v)
		}); err != nil {
			t.g.Close()
			return nil, errors.Wrapf(err, "[NewConsoleUI] failed to bind %s", kb.name)
		}
	}
	return t, nil
}

// Start runs the UI until the user quits.
func (t *ConsoleUI) Start() error {
	defer t.g.Close()
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		return errors.Wrap(err, "[Start] terminal main loop")
	}
	t.stop()
	return nil
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()

	if v, err := g.SetView(viewHeader, -1, -1, maxX, 1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		v.BgColor = gocui.ColorCyan
		v.FgColor = gocui.ColorBlack
	}
	if v, err := g.View(viewHeader); err == nil {
		v.Clear()
		_, _ = fmt.Fprint(v, centered("\"The Life\" game simulation", maxX))
	}

	if maxY < minWindowHeight {
		_ = g.DeleteView(viewStatus)
		_ = g.DeleteView(viewField)
		_ = g.DeleteView(viewHelp)
		return nil
	}

	if v, err := g.SetView(viewStatus, 0, 2, leftColumnWidth, maxY-4); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Status"
	}
	if v, err := g.SetView(viewField, leftColumnWidth+1, 2, maxX-1, maxY-4); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = t.ctrl.Engine().Title()
	}
	if v, err := g.SetView(viewHelp, -1, maxY-3, maxX, maxY); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		_, _ = fmt.Fprintln(v, helpLine(t.keys))
	}

	t.render(g)
	return nil
}

// render redraws the status panel and the field. It must run on the gocui
// main loop.
func (t *ConsoleUI) render(g *gocui.Gui) {
	e := t.ctrl.Engine()
	if v, err := g.View(viewField); err == nil {
		v.Clear()
		maxW, maxH := v.Size()
		_, _ = fmt.Fprint(v, renderField(e, maxW, maxH, t.liveFiller, t.deadFiller))
	}
	if v, err := g.View(viewStatus); err == nil {
		v.Clear()
		mode := aurora.Colorize("waiting", aurora.BlueFg).String()
		if t.running {
			mode = aurora.Colorize("running", aurora.CyanFg).String()
		}
		_, _ = fmt.Fprintln(v, renderProp("Dimension", "%v x %v", e.Width(), e.Height()))
		_, _ = fmt.Fprintln(v, renderProp("Generation", "%v", e.Generation()))
		_, _ = fmt.Fprintln(v, renderProp("Live cells", "%v", model.CountLivingCells(e)))
		if n, ok := scannedCells(e); ok {
			_, _ = fmt.Fprintln(v, renderProp("Next scan", "%v cells", n))
		}
		_, _ = fmt.Fprintln(v, renderProp("Avg time", "%v", e.AverageTime().Round(time.Microsecond)))
		_, _ = fmt.Fprintln(v, renderProp("Mode", "%v", mode))
		if t.lastErr != nil {
			_, _ = fmt.Fprintln(v, aurora.Red(t.lastErr.Error()).String())
		}
	}
}

func (t *ConsoleUI) refresh() {
	t.g.Update(func(g *gocui.Gui) error {
		t.render(g)
		return nil
	})
}

// run steps the engine every interval until stopped. Steps are queued onto
// the main loop so the engine is only touched from one goroutine.
func (t *ConsoleUI) run(stopCh chan struct{}) {
	ticker := time.NewTicker(max(t.interval, time.Millisecond))
	defer ticker.Stop()
	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			t.g.Update(func(g *gocui.Gui) error {
				if t.running {
					t.ctrl.Step()
					t.render(g)
				}
				return nil
			})
		}
	}
}

func (t *ConsoleUI) stop() {
	if t.running {
		t.running = false
		close(t.stopCh)
	}
}

func (t *ConsoleUI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdStep(_ *gocui.View) error {
	t.ctrl.Step()
	t.refresh()
	return nil
}

func (t *ConsoleUI) cmdRun(_ *gocui.View) error {
	if t.running {
		t.stop()
	} else {
		t.running = true
		t.stopCh = make(chan struct{})
		go t.run(t.stopCh)
	}
	t.refresh()
	return nil
}

func (t *ConsoleUI) cmdClear(_ *gocui.View) error {
	t.stop()
	t.ctrl.Clear()
	t.lastErr = nil
	t.refresh()
	return nil
}

func (t *ConsoleUI) cmdReload(_ *gocui.View) error {
	t.stop()
	t.lastErr = t.ctrl.Reload()
	t.refresh()
	return nil
}

func (t *ConsoleUI) cmdMouseClick(v *gocui.View) error {
	cx, cy := v.Cursor()
	e := t.ctrl.Engine()
	if cx < e.Width() && cy < e.Height() {
		t.ctrl.Toggle(cx, cy)
		t.refresh()
	}
	return nil
}

// renderField draws as much of the engine as fits in maxW x maxH. When the
// grid is larger than the view the last line carries a warning instead.
func renderField(e model.Engine, maxW, maxH int, live, dead string) string {
	var b bytes.Buffer
	crop := e.Width() > maxW || e.Height() > maxH
	for y := range min(e.Height(), maxH) {
		if y != 0 {
			b.WriteByte('\n')
		}
		if crop && y == maxH-1 {
			b.WriteString(aurora.Red("The field size is larger than the viewing area").String())
			break
		}
		row := e.RowToString(y)
		for x := range min(len(row), maxW) {
			if row[x] == model.AliveGlyph {
				b.WriteString(live)
			} else {
				b.WriteString(dead)
			}
		}
	}
	return b.String()
}

// scannedCells reports how many cells a scan-list engine evaluates in its
// next generation.
func scannedCells(e model.Engine) (int, bool) {
	s, ok := e.(interface{ ScanList() model.ScanList })
	if !ok {
		return 0, false
	}
	return s.ScanList().Area(), true
}

func renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

func helpLine(keys []keyBinding) string {
	var b strings.Builder
	b.WriteString("KEYS: ")
	for i, k := range keys {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(aurora.Green(k.name).String())
		b.WriteString(": ")
		b.WriteString(k.descr)
	}
	return b.String()
}

func centered(text string, width int) string {
	if width <= len(text) {
		return text
	}
	return strings.Repeat(" ", (width-len(text))/2) + text
}

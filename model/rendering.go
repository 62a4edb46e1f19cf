package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/logrusorgru/aurora"
)

const (
	// AliveGlyph and DeadGlyph are the characters RowToString emits.
	AliveGlyph = 'O'
	DeadGlyph  = '.'

	gridPosBlock = "██"
	gridPosEmpty = "  "

	clearCmd = "clear"
)

// rowString renders a row of cells with AliveGlyph and DeadGlyph.
func rowString(row []bool) string {
	var sb strings.Builder
	sb.Grow(len(row))
	for _, alive := range row {
		if alive {
			sb.WriteByte(AliveGlyph)
		} else {
			sb.WriteByte(DeadGlyph)
		}
	}
	return sb.String()
}

// TerminalRenderer draws an engine as coloured blocks, one terminal line per
// grid row.
type TerminalRenderer struct {
	Out   io.Writer
	Color bool
}

// NewTerminalRenderer returns a renderer writing to stdout.
func NewTerminalRenderer(color bool) *TerminalRenderer {
	return &TerminalRenderer{Out: os.Stdout, Color: color}
}

// Display renders the engine to the terminal
func (r *TerminalRenderer) Display(e Engine) {
	block := gridPosBlock
	if r.Color {
		block = aurora.Green(gridPosBlock).String()
	}

	var sb strings.Builder
	for y := range e.Height() {
		for _, c := range e.RowToString(y) {
			if c == AliveGlyph {
				sb.WriteString(block)
			} else {
				sb.WriteString(gridPosEmpty)
			}
		}
		sb.WriteByte('\n')
	}
	_, _ = io.WriteString(r.Out, sb.String())
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.Out
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(r.Out, "Error clearing terminal:", err)
	}
}

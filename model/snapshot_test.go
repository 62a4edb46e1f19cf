package model

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridHash(t *testing.T) {
	a := newTestEngine(t, KindDense, 6, 6)
	b := newTestEngine(t, KindLinked, 6, 6)
	assert.Equal(t, GridHash(a), GridHash(b))

	a.SetCell(1, 1, true)
	assert.NotEqual(t, GridHash(a), GridHash(b))
	b.SetCell(1, 1, true)
	assert.Equal(t, GridHash(a), GridHash(b))
}

func TestHistory_IsStagnant(t *testing.T) {
	e := newTestEngine(t, KindScanList, 10, 10)
	setCells(e, Point{1, 3}, Point{2, 3}, Point{3, 3})

	var h History
	for range 2 {
		assert.False(t, h.IsStagnant(e))
		h.Update(e)
		e.NextGeneration()
	}
	// A blinker repeats the state recorded two generations ago.
	h.Update(e)
	e.NextGeneration()
	assert.True(t, h.IsStagnant(e))

	h.Reset()
	assert.False(t, h.IsStagnant(e))
}

func TestHistory_GliderIsNotStagnant(t *testing.T) {
	e := newTestEngine(t, KindDense, 20, 20)
	setCells(e, Point{1, 0}, Point{2, 1}, Point{0, 2}, Point{1, 2}, Point{2, 2})

	var h History
	for range 10 {
		h.Update(e)
		e.NextGeneration()
		require.False(t, h.IsStagnant(e))
	}
}

func TestTerminalRenderer_Display(t *testing.T) {
	e := newTestEngine(t, KindDense, 3, 2)
	e.SetCell(1, 0, true)

	var out bytes.Buffer
	r := &TerminalRenderer{Out: &out}
	r.Display(e)

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, gridPosEmpty+gridPosBlock+gridPosEmpty, lines[0])
	assert.Equal(t, strings.Repeat(gridPosEmpty, 3), lines[1])
}

package view

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikhrachel/go-life/model"
)

func newBlinker(t *testing.T) model.Engine {
	t.Helper()
	e, err := model.NewEngine(model.KindDense, 5, 3)
	require.NoError(t, err)
	e.SetCell(1, 1, true)
	e.SetCell(2, 1, true)
	e.SetCell(3, 1, true)
	return e
}

func TestRenderField(t *testing.T) {
	e := newBlinker(t)
	assert.Equal(t, "-----\n-###-\n-----", renderField(e, 10, 10, "#", "-"))

	e.NextGeneration()
	assert.Equal(t, "--#--\n--#--\n--#--", renderField(e, 5, 3, "#", "-"))
}

func TestRenderField_Cropped(t *testing.T) {
	e := newBlinker(t)
	out := renderField(e, 3, 2, "#", "-")
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "---", lines[0])
	assert.Contains(t, lines[1], "larger than the viewing area")
}

func TestHelpLine(t *testing.T) {
	line := helpLine([]keyBinding{
		{key: 'n', name: "N", descr: "Next step"},
		{key: 'q', name: "Q", descr: "Exit"},
	})
	assert.True(t, strings.HasPrefix(line, "KEYS: "))
	assert.Contains(t, line, "Next step")
	assert.Contains(t, line, "Exit")
}

func TestCentered(t *testing.T) {
	assert.Equal(t, "  ab", centered("ab", 6))
	assert.Equal(t, "abcdef", centered("abcdef", 4))
}

func TestScannedCells(t *testing.T) {
	dense := newBlinker(t)
	_, ok := scannedCells(dense)
	assert.False(t, ok)

	e, err := model.NewEngine(model.KindScanList, 20, 20)
	require.NoError(t, err)
	e.SetCell(9, 9, true)
	e.SetCell(10, 9, true)
	e.SetCell(11, 9, true)

	n, ok := scannedCells(e)
	require.True(t, ok)
	assert.Equal(t, 400, n)

	// The blinker turns vertical at x=10, rows 8..10, grown by one cell.
	e.NextGeneration()
	n, ok = scannedCells(e)
	require.True(t, ok)
	assert.Equal(t, 3*5, n)
}

package main

import (
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

func testConfig() utils.Config {
	c := utils.DefaultConfig()
	c.Width, c.Height = 20, 20
	c.Pattern = filepath.Join("pattern", "testdata", "glider.RLE")
	c.Color = false
	return c
}

func TestCheckStopConditions(t *testing.T) {
	c := utils.DefaultConfig()
	c.MaxGenerations = 10
	c.StagnationThreshold = 3

	stop, reason := checkStopConditions(4, 0, 0, c)
	assert.True(t, stop)
	assert.Equal(t, "extinction", reason)

	stop, reason = checkStopConditions(4, 5, 3, c)
	assert.True(t, stop)
	assert.Equal(t, "stagnation detected", reason)

	stop, _ = checkStopConditions(10, 5, 0, c)
	assert.True(t, stop)

	stop, _ = checkStopConditions(9, 5, 2, c)
	assert.False(t, stop)

	c.MaxGenerations, c.StagnationThreshold = 0, 0
	stop, _ = checkStopConditions(100000, 5, 50, c)
	assert.False(t, stop)
}

func TestSimulation_StepAndReload(t *testing.T) {
	s, err := newSimulation(testConfig())
	require.NoError(t, err)
	glider := model.LiveCells(s.Engine())
	require.Len(t, glider, 5)

	for range 4 {
		s.Step()
	}
	assert.Equal(t, 4, s.Engine().Generation())
	assert.Equal(t, 4, s.stats.TotalGenerations)
	assert.Equal(t, 5, s.stats.LivingCells)
	assert.NotEqual(t, glider, model.LiveCells(s.Engine()))

	s.Toggle(0, 0)
	assert.True(t, s.Engine().GetCell(0, 0))

	require.NoError(t, s.Reload())
	assert.Equal(t, glider, model.LiveCells(s.Engine()))
}

func TestSimulation_ReloadError(t *testing.T) {
	c := testConfig()
	_, err := newSimulation(c)
	require.NoError(t, err)

	c.Pattern = filepath.Join("pattern", "testdata", "glider.txt")
	_, err = newSimulation(c)
	require.Error(t, err)
}

func TestUpdateGameState_Stagnation(t *testing.T) {
	c := testConfig()
	c.Pattern = ""
	s, err := newSimulation(c)
	require.NoError(t, err)

	s.Clear()
	for _, p := range []model.Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}} {
		s.Engine().SetCell(p.X, p.Y, true)
	}

	st := updateGameState(s)
	assert.Equal(t, 4, st.livingCells)
	assert.InDelta(t, 1.0, st.density, 1e-9)
	assert.False(t, st.stagnant)

	for range 3 {
		s.Step()
	}
	st = updateGameState(s)
	assert.True(t, st.stagnant)
	assert.Equal(t, "Stagnant", st.status)

	s.Clear()
	st = updateGameState(s)
	assert.Equal(t, "Extinct", st.status)
	assert.False(t, st.stagnant)
}

func TestSpeedTest(t *testing.T) {
	c := testConfig()
	for _, kind := range model.Kinds() {
		r, err := speedTest(kind, c, 12, 1)
		require.NoError(t, err, kind)
		assert.Equal(t, 12, r.generations)
		assert.NotEmpty(t, r.title)
	}
}

func TestWaitFrame(t *testing.T) {
	sigChan := make(chan os.Signal, 1)
	assert.False(t, waitFrame(sigChan, time.Millisecond))

	sigChan <- syscall.SIGINT
	start := time.Now()
	assert.True(t, waitFrame(sigChan, time.Hour))
	assert.Less(t, time.Since(start), time.Second)
}

func TestSpeedTestKinds(t *testing.T) {
	c := utils.DefaultConfig()
	kinds, err := speedTestKinds(c, false)
	require.NoError(t, err)
	assert.Equal(t, model.Kinds(), kinds)

	c.Engine = "linked"
	kinds, err = speedTestKinds(c, true)
	require.NoError(t, err)
	assert.Equal(t, []model.Kind{model.KindLinked}, kinds)

	c.Engine = "hashlife"
	_, err = speedTestKinds(c, true)
	require.ErrorIs(t, err, model.ErrUnknownKind)
}

package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStats_Update(t *testing.T) {
	s := NewStats()
	s.Update(0, 10, 100, 0)
	assert.Zero(t, s.GenerationsPerSecond)
	assert.Equal(t, 10.0, s.AveragePopulation)

	s.Update(4, 20, 100, 40*time.Millisecond)
	assert.Equal(t, 10*time.Millisecond, s.AverageGeneration)
	assert.InDelta(t, 100.0, s.GenerationsPerSecond, 1e-9)
	assert.InDelta(t, 10000.0, s.CellsPerSecond, 1e-6)
	assert.InDelta(t, 11.0, s.AveragePopulation, 1e-9)
	assert.Equal(t, 4, s.TotalGenerations)
	assert.Equal(t, 20, s.LivingCells)
	assert.GreaterOrEqual(t, s.Runtime(), time.Duration(0))
}

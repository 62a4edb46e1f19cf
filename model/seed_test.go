package model

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddGlider_WrapsAtEdges(t *testing.T) {
	e := newTestEngine(t, KindDense, 6, 6)
	AddGlider(e, 4, 4)
	assert.ElementsMatch(t, []Point{{5, 4}, {0, 5}, {4, 0}, {5, 0}, {0, 0}}, LiveCells(e))
}

func TestSeedInterestingPatterns(t *testing.T) {
	for _, kind := range Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			e := newTestEngine(t, kind, 40, 20)
			e.SetCell(0, 19, true)

			SeedInterestingPatterns(e, 0, rand.New(rand.NewSource(1)))
			assert.False(t, e.GetCell(0, 19))
			// Two gliders and two blinkers.
			assert.Equal(t, 16, CountLivingCells(e))
			assert.True(t, e.GetCell(10, 5))

			dense := newTestEngine(t, KindDense, 40, 20)
			SeedInterestingPatterns(dense, 0.3, rand.New(rand.NewSource(9)))
			SeedInterestingPatterns(e, 0.3, rand.New(rand.NewSource(9)))
			assert.Equal(t, LiveCells(dense), LiveCells(e))
		})
	}
}

package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyConwayRules(t *testing.T) {
	for n := 0; n <= 8; n++ {
		assert.Equal(t, n == 2 || n == 3, ApplyConwayRules(n, true), "alive with %d neighbors", n)
		assert.Equal(t, n == 3, ApplyConwayRules(n, false), "dead with %d neighbors", n)
	}
}

func TestIsConway(t *testing.T) {
	assert.True(t, IsConway("B3/S23"))
	assert.True(t, IsConway("b3/s23"))
	assert.True(t, IsConway(" B3/s23 "))
	assert.False(t, IsConway("B3/S45"))
	assert.False(t, IsConway("23/3"))
	assert.False(t, IsConway(""))
}

func TestIsConwaySurvivalBirth(t *testing.T) {
	assert.True(t, IsConwaySurvivalBirth("23/3"))
	assert.True(t, IsConwaySurvivalBirth(" 23/3"))
	assert.False(t, IsConwaySurvivalBirth("23/4"))
	assert.False(t, IsConwaySurvivalBirth("B3/S23"))
}

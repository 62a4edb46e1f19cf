package utils

import "time"

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	CellsPerSecond       float64
	AveragePopulation    float64
	AverageGeneration    time.Duration
	TotalGenerations     int
	StartTime            time.Time
	LivingCells          int
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one frame. generation and elapsed come from the engine,
// cells is the grid area.
func (s *Stats) Update(generation, population, cells int, elapsed time.Duration) {
	s.TotalGenerations = generation
	s.LivingCells = population
	if generation > 0 {
		s.AverageGeneration = elapsed / time.Duration(generation)
	}
	if s.AverageGeneration > 0 {
		s.GenerationsPerSecond = 1.0 / s.AverageGeneration.Seconds()
		s.CellsPerSecond = s.GenerationsPerSecond * float64(cells)
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Runtime is the wall-clock time since the stats were created
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}

package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/pattern"
	"github.com/sheikhrachel/go-life/utils"
)

// Simulation ties one engine to its run state. It implements view.Controller.
type Simulation struct {
	config   utils.Config
	engine   model.Engine
	stats    *utils.Stats
	history  *model.History
	renderer *model.TerminalRenderer
	rng      *rand.Rand
}

// newSimulation builds the configured engine and seeds it
func newSimulation(config utils.Config) (*Simulation, error) {
	e, err := config.NewEngine()
	if err != nil {
		return nil, err
	}
	s := &Simulation{
		config:   config,
		engine:   e,
		stats:    utils.NewStats(),
		history:  &model.History{},
		renderer: model.NewTerminalRenderer(config.Color),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Simulation) Engine() model.Engine { return s.engine }

// Step advances one generation and records it
func (s *Simulation) Step() {
	s.history.Update(s.engine)
	s.engine.NextGeneration()
	s.stats.Update(s.engine.Generation(), model.CountLivingCells(s.engine),
		s.engine.Width()*s.engine.Height(), s.engine.TotalTime())
}

func (s *Simulation) Clear() {
	s.engine.Clear()
	s.history.Reset()
}

// Reload clears the grid and loads the configured pattern, or seeds random
// patterns when none is configured. On a load error the grid stays empty.
func (s *Simulation) Reload() error {
	s.Clear()
	if s.config.Pattern == "" {
		model.SeedInterestingPatterns(s.engine, s.config.RandomDensity, s.rng)
		return nil
	}
	return pattern.Load(s.config.Pattern, s.engine)
}

func (s *Simulation) Toggle(x, y int) {
	s.engine.SetCell(x, y, !s.engine.GetCell(x, y))
}

// displayGameInfo shows the initial game information
func displayGameInfo(s *Simulation) {
	fmt.Printf("Engine: %s (%s)\n", s.engine.Title(), s.engine.Summary())
	fmt.Printf("Grid: %dx%d | Initial living cells: %d\n",
		s.engine.Width(), s.engine.Height(), model.CountLivingCells(s.engine))
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
}

// gameState is what one frame of the headless loop observed
type gameState struct {
	livingCells int
	density     float64
	status      string
	stagnant    bool
}

// updateGameState inspects the current generation. Stagnation is checked
// against the history before the current state is recorded in it.
func updateGameState(s *Simulation) gameState {
	livingCells := model.CountLivingCells(s.engine)
	st := gameState{
		livingCells: livingCells,
		density:     float64(livingCells) / float64(s.engine.Width()*s.engine.Height()) * 100,
		stagnant:    s.history.IsStagnant(s.engine),
		status:      "Active",
	}
	if st.stagnant {
		st.status = "Stagnant"
	}
	if livingCells == 0 {
		st.status = "Extinct"
	}
	return st
}

// displayGameStatus shows the current game status
func displayGameStatus(s *Simulation, st gameState) {
	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		s.engine.Generation(), st.livingCells, st.density, st.status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		s.stats.GenerationsPerSecond, s.stats.AveragePopulation, s.stats.Runtime().Seconds())
}

// checkStopConditions determines if the headless loop should end
func checkStopConditions(generation, livingCells, stagnantCount int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
		return true, fmt.Sprintf("reached maximum generations limit (%d)", config.MaxGenerations)
	}
	return false, ""
}

// waitFrame sleeps for one frame and reports whether a signal arrived first
func waitFrame(sigChan <-chan os.Signal, frame time.Duration) bool {
	select {
	case <-sigChan:
		return true
	case <-time.After(frame):
		return false
	}
}

// speedTestKinds returns the configured engine when one was selected,
// otherwise every engine.
func speedTestKinds(config utils.Config, selected bool) ([]model.Kind, error) {
	if !selected {
		return model.Kinds(), nil
	}
	k, err := model.ParseKind(config.Engine)
	if err != nil {
		return nil, err
	}
	return []model.Kind{k}, nil
}

// speedResult is the outcome of one engine's speed test
type speedResult struct {
	title          string
	generations    int
	total          time.Duration
	gensPerSecond  float64
	cellsPerSecond float64
}

// speedTest runs a fresh engine of the given kind for a fixed number of
// generations starting from the same seed.
func speedTest(kind model.Kind, config utils.Config, generations int, seed int64) (speedResult, error) {
	e, err := model.NewEngine(kind, config.Width, config.Height, model.WithWorkers(config.Workers))
	if err != nil {
		return speedResult{}, err
	}
	if config.Pattern != "" {
		if err := pattern.Load(config.Pattern, e); err != nil {
			return speedResult{}, err
		}
	} else {
		model.SeedInterestingPatterns(e, config.RandomDensity, rand.New(rand.NewSource(seed)))
	}

	for range generations {
		e.NextGeneration()
	}

	r := speedResult{title: e.Title(), generations: generations, total: e.TotalTime()}
	if avg := e.AverageTime(); avg > 0 {
		r.gensPerSecond = 1 / avg.Seconds()
		r.cellsPerSecond = r.gensPerSecond * float64(config.Width*config.Height)
	}
	return r, nil
}

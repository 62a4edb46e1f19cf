package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
	"github.com/sheikhrachel/go-life/view"
)

const defaultConfigFile = "config.json"

// cliOptions are the command line flags. Zero values leave the config file
// setting untouched.
type cliOptions struct {
	configFile  string
	engine      string
	width       int
	height      int
	pattern     string
	generations int
	workers     int
	frameRate   time.Duration
	interactive bool
	speedtest   bool
	noColor     bool
}

func parseFlags() cliOptions {
	kinds := make([]string, 0, len(model.Kinds()))
	for _, k := range model.Kinds() {
		kinds = append(kinds, string(k))
	}

	o := cliOptions{configFile: defaultConfigFile}
	flaggy.SetName("go-life")
	flaggy.SetDescription("Conway's Game of Life on a torus")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.String(&o.configFile, "c", "config", "Configuration file (.json, .yaml or .yml)")
	flaggy.String(&o.engine, "e", "engine", "Engine to use ["+strings.Join(kinds, "|")+"]")
	flaggy.Int(&o.width, "x", "width", "Width of the grid")
	flaggy.Int(&o.height, "y", "height", "Height of the grid")
	flaggy.String(&o.pattern, "p", "pattern", "RLE pattern file to load")
	flaggy.Int(&o.generations, "g", "generations", "Stop after this many generations")
	flaggy.Int(&o.workers, "w", "workers", "Worker count for the parallel engine")
	flaggy.Duration(&o.frameRate, "f", "frame-rate", "Interval between generations, for example 150ms")
	flaggy.Bool(&o.interactive, "i", "interactive", "Start the interactive terminal view")
	flaggy.Bool(&o.speedtest, "s", "speedtest", "Time the engines instead of displaying the grid")
	flaggy.Bool(&o.noColor, "", "no-color", "Disable coloured output")
	flaggy.Parse()
	return o
}

// loadConfig reads the config file and applies the flag overrides
func loadConfig(o cliOptions) (utils.Config, error) {
	config, err := utils.LoadConfig(o.configFile)
	if err != nil {
		if o.configFile != defaultConfigFile || !errors.Is(err, os.ErrNotExist) {
			return config, err
		}
		fmt.Printf("Using default configuration (%s not found)\n", defaultConfigFile)
		config = utils.DefaultConfig()
	}

	if o.engine != "" {
		config.Engine = o.engine
	}
	if o.width != 0 {
		config.Width = o.width
	}
	if o.height != 0 {
		config.Height = o.height
	}
	if o.pattern != "" {
		config.Pattern = o.pattern
	}
	if o.generations != 0 {
		config.MaxGenerations = o.generations
	}
	if o.workers != 0 {
		config.Workers = o.workers
	}
	if o.frameRate != 0 {
		config.FrameRate = o.frameRate
	}
	if o.interactive {
		config.Interactive = true
	}
	if o.noColor {
		config.Color = false
	}
	return config, config.Validate()
}

func main() {
	o := parseFlags()
	config, err := loadConfig(o)
	if err != nil {
		log.Fatalf("configuration: %+v", err)
	}

	switch {
	case o.speedtest:
		runSpeedTest(config, o.engine != "")
	case config.Interactive:
		runInteractive(config)
	default:
		runHeadless(config)
	}
}

// runSpeedTest times the configured engine, or every engine when none was
// picked on the command line.
func runSpeedTest(config utils.Config, selected bool) {
	kinds, err := speedTestKinds(config, selected)
	if err != nil {
		log.Fatalf("speed test: %+v", err)
	}
	generations := config.MaxGenerations
	if generations == 0 {
		generations = utils.DefaultConfig().MaxGenerations
	}
	seed := time.Now().UnixNano()

	fmt.Printf("Speed test: %dx%d grid, %d generations\n", config.Width, config.Height, generations)
	for _, kind := range kinds {
		r, err := speedTest(kind, config, generations, seed)
		if err != nil {
			log.Fatalf("speed test %s: %+v", kind, err)
		}
		fmt.Printf("%-28s %10v total | %10.1f gen/sec | %14.0f cells/sec\n",
			r.title, r.total.Round(time.Microsecond), r.gensPerSecond, r.cellsPerSecond)
	}
}

func runInteractive(config utils.Config) {
	s, err := newSimulation(config)
	if err != nil {
		log.Fatalf("simulation: %+v", err)
	}
	ui, err := view.NewConsoleUI(s, config.FrameRate)
	if err != nil {
		log.Fatalf("terminal: %+v", err)
	}
	if err := ui.Start(); err != nil {
		log.Fatalf("terminal: %+v", err)
	}
}

func runHeadless(config utils.Config) {
	s, err := newSimulation(config)
	if err != nil {
		log.Fatalf("simulation: %+v", err)
	}
	displayGameInfo(s)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	stagnantCount := 0
	for {
		s.renderer.Clear()
		st := updateGameState(s)
		if st.stagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		displayGameStatus(s, st)
		s.renderer.Display(s.engine)

		if stop, reason := checkStopConditions(s.engine.Generation(), st.livingCells, stagnantCount, config); stop {
			fmt.Printf("\nStopped: %s\n", reason)
			printFinalStats(s)
			return
		}

		s.Step()

		if interrupted := waitFrame(sigChan, config.FrameRate); interrupted {
			fmt.Println("\nShutting down gracefully...")
			printFinalStats(s)
			return
		}
	}
}

func printFinalStats(s *Simulation) {
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		s.engine.Generation(), s.stats.Runtime().Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population, %v per generation\n",
		s.stats.GenerationsPerSecond, s.stats.AveragePopulation, s.engine.AverageTime())
}

package model

import (
	"math"
	"runtime"
	"sort"
	"time"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidDimensions is returned when an engine is asked for a grid
	// with a zero or negative width or height.
	ErrInvalidDimensions = errors.New("model: grid width and height must be positive")
	// ErrUnknownKind is returned by NewEngine for an unregistered engine kind.
	ErrUnknownKind = errors.New("model: unknown engine kind")
	// ErrGridTooLarge is returned when the linked engine's int32 neighbour
	// indices cannot address every cell.
	ErrGridTooLarge = errors.New("model: grid too large for engine")
)

// Engine is a Game of Life grid together with the strategy used to step it.
// Coordinates passed to SetCell and GetCell must satisfy 0 <= x < Width()
// and 0 <= y < Height(); anything else panics.
type Engine interface {
	// Title is a short human readable engine name.
	Title() string
	// Summary describes how the engine stores and scans cells.
	Summary() string

	Width() int
	Height() int
	Generation() int

	SetCell(x, y int, alive bool)
	GetCell(x, y int) bool
	// Clear kills every cell and resets the generation counter and timings.
	Clear()
	// RowToString renders one row using AliveGlyph and DeadGlyph.
	RowToString(row int) string
	// NextGeneration advances the grid by one generation.
	NextGeneration()

	// TotalTime is the accumulated compute time of all generations so far.
	TotalTime() time.Duration
	// AverageTime is TotalTime divided by Generation, or zero before the
	// first generation.
	AverageTime() time.Duration
}

// Kind selects a stepping strategy.
type Kind string

const (
	KindDense    Kind = "dense"
	KindLinked   Kind = "linked"
	KindScanList Kind = "scanlist"
	KindParallel Kind = "parallel"
)

// options holds the optional engine settings.
type options struct {
	workers int
}

// Option customises an engine built by NewEngine.
type Option func(*options)

// WithWorkers sets the worker count of the parallel engine. Values below one
// fall back to runtime.NumCPU(). Other engines ignore it.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

var engines = map[Kind]func(width, height int, o options) Engine{
	KindDense: func(width, height int, _ options) Engine {
		return newDense(width, height)
	},
	KindLinked: func(width, height int, _ options) Engine {
		return newLinked(width, height)
	},
	KindScanList: func(width, height int, _ options) Engine {
		return newScanList(width, height)
	},
	KindParallel: func(width, height int, o options) Engine {
		return newParallel(width, height, o.workers)
	},
}

// NewEngine creates an empty engine of the given kind.
func NewEngine(kind Kind, width, height int, opts ...Option) (Engine, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewEngine] %dx%d", width, height)
	}
	create, ok := engines[kind]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownKind, "[NewEngine] %q", kind)
	}
	if kind == KindLinked && int64(width)*int64(height) > math.MaxInt32 {
		return nil, errors.Wrapf(ErrGridTooLarge, "[NewEngine] %s %dx%d", kind, width, height)
	}

	o := options{workers: runtime.NumCPU()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers < 1 {
		o.workers = runtime.NumCPU()
	}
	return create(width, height, o), nil
}

// Kinds returns every registered engine kind in sorted order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(engines))
	for k := range engines {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// ParseKind converts a user supplied name into a Kind.
func ParseKind(name string) (Kind, error) {
	k := Kind(name)
	if _, ok := engines[k]; !ok {
		return "", errors.Wrapf(ErrUnknownKind, "[ParseKind] %q", name)
	}
	return k, nil
}

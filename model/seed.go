package model

import "math/rand"

var (
	gliderShape  = []Point{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
	blinkerShape = []Point{{0, 0}, {1, 0}, {2, 0}}
)

func place(e Engine, startX, startY int, shape []Point) {
	w, h := e.Width(), e.Height()
	for _, p := range shape {
		e.SetCell((startX+p.X)%w, (startY+p.Y)%h, true)
	}
}

// AddGlider adds a glider at the specified position, wrapping at the edges
func AddGlider(e Engine, startX, startY int) {
	place(e, startX, startY, gliderShape)
}

// AddOscillator adds a blinker oscillator, wrapping at the edges
func AddOscillator(e Engine, startX, startY int) {
	place(e, startX, startY, blinkerShape)
}

// Randomize sets each cell alive with the given probability
func Randomize(e Engine, density float64, rng *rand.Rand) {
	if density <= 0 {
		return
	}
	for y := range e.Height() {
		for x := range e.Width() {
			if rng.Float64() < density {
				e.SetCell(x, y, true)
			}
		}
	}
}

// SeedInterestingPatterns clears the engine and adds a few gliders and
// oscillators plus random life at the given density.
func SeedInterestingPatterns(e Engine, density float64, rng *rand.Rand) {
	e.Clear()
	w, h := e.Width(), e.Height()

	if w >= 10 && h >= 10 {
		AddGlider(e, 5, 5)
		if w >= 20 && h >= 15 {
			AddGlider(e, w-8, 5)
		}

		AddOscillator(e, w/4, h/4)
		if w >= 30 {
			AddOscillator(e, 3*w/4, 3*h/4)
		}
	}

	Randomize(e, density, rng)
}

package namegen

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Picker chooses an index uniformly from [0, n). Callers never pass n <= 0.
type Picker interface {
	Pick(n int) int
}

// PickerFunc adapts a function to Picker.
type PickerFunc func(n int) int

func (f PickerFunc) Pick(n int) int { return f(n) }

// RandPicker is a Picker backed by a seeded PCG generator.
// It is safe for concurrent use.
type RandPicker struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandPicker returns a picker seeded with seed.
func NewRandPicker(seed uint64) *RandPicker {
	return &RandPicker{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewTimePicker returns a picker seeded from the current time.
func NewTimePicker() *RandPicker {
	return NewRandPicker(uint64(time.Now().UnixNano()))
}

func (p *RandPicker) Pick(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rnd.IntN(n)
}

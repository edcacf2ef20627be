// Package slider holds the hero carousel state machine.
package slider

import (
	"sync"
	"time"
)

// AutoplayInterval is how often a running slider advances. The rendered
// carousel polls at this interval; each poll is one Tick.
const AutoplayInterval = 6 * time.Second

// Slider tracks the active slide of an N-slide carousel and whether autoplay is running.
// The zero value is an empty, running slider. All methods are safe for concurrent use.
type Slider struct {
	mu     sync.Mutex
	n      int
	idx    int
	paused bool
}

func New(n int) *Slider {
	if n < 0 {
		n = 0
	}
	return &Slider{n: n}
}

func (s *Slider) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.n
}

func (s *Slider) Index() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.idx
}

// Next advances one slide, wrapping to the first.
func (s *Slider) Next() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set(s.idx + 1)
}

// Prev steps back one slide, wrapping to the last.
func (s *Slider) Prev() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set(s.idx - 1)
}

// Goto activates slide k mod N.
func (s *Slider) Goto(k int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set(k)
}

func (s *Slider) set(k int) int {
	if s.n == 0 {
		s.idx = 0
		return 0
	}
	s.idx = ((k % s.n) + s.n) % s.n
	return s.idx
}

// Pause stops autoplay, as when the pointer enters the slider.
func (s *Slider) Pause() {
	s.mu.Lock()
	s.paused = true
	s.mu.Unlock()
}

// Resume restarts autoplay, as when the pointer leaves. The caller renders
// a fresh poll, so the next advance is a full interval away.
func (s *Slider) Resume() {
	s.mu.Lock()
	s.paused = false
	s.mu.Unlock()
}

func (s *Slider) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.paused
}

// Tick is one autoplay step: it advances only while running.
func (s *Slider) Tick() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.paused || s.n == 0 {
		return s.idx, false
	}
	return s.set(s.idx + 1), true
}

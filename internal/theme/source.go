package theme

import "sync"

// Source holds the current mode and notifies subscribers when it changes.
// Subscribers receive resolved modes only.
type Source struct {
	mu          sync.Mutex
	mode        Mode
	prefersDark bool
	nextID      int
	subs        map[int]func(Mode)
}

// NewSource starts with mode, resolving System against prefersDark.
func NewSource(mode Mode, prefersDark bool) *Source {
	return &Source{mode: mode, prefersDark: prefersDark, subs: make(map[int]func(Mode))}
}

// Mode returns the stored preference, possibly System.
func (s *Source) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Current returns the resolved mode.
func (s *Source) Current() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode.Resolve(s.prefersDark)
}

// Set stores a new preference.
func (s *Source) Set(mode Mode) {
	s.update(func() { s.mode = mode })
}

// SetPrefersDark records a platform preference change, which only matters
// while the preference is System.
func (s *Source) SetPrefersDark(dark bool) {
	s.update(func() { s.prefersDark = dark })
}

// Toggle flips between light and dark, leaving System behind.
func (s *Source) Toggle() {
	s.update(func() {
		if s.mode.Resolve(s.prefersDark) == Light {
			s.mode = Dark
		} else {
			s.mode = Light
		}
	})
}

// Subscribe registers fn for resolved mode changes. The returned func
// removes it.
func (s *Source) Subscribe(fn func(Mode)) (cancel func()) {
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// update applies change and notifies outside the lock if the resolved mode moved.
func (s *Source) update(change func()) {
	s.mu.Lock()
	before := s.mode.Resolve(s.prefersDark)
	change()
	after := s.mode.Resolve(s.prefersDark)
	var subs []func(Mode)
	if before != after {
		subs = make([]func(Mode), 0, len(s.subs))
		for _, fn := range s.subs {
			subs = append(subs, fn)
		}
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(after)
	}
}

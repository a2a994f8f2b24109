package window

import "sync"

// ReleaseSource is the display-wide pointer-up signal. Listen registers fn to
// run on the next and every following release until stop is called. stop must
// be safe to call more than once.
type ReleaseSource interface {
	Listen(fn func()) (stop func(), err error)
}

// Signal is an in-process ReleaseSource. Frontends that see every release
// themselves (a terminal reporting all mouse motion) fire it directly.
type Signal struct {
	mu        sync.Mutex
	nextID    int
	listeners map[int]func()
}

// NewSignal creates a signal with no listeners.
func NewSignal() *Signal {
	return &Signal{listeners: make(map[int]func())}
}

// Listen implements ReleaseSource.
func (s *Signal) Listen(fn func()) (func(), error) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}, nil
}

// Fire invokes every registered listener. Listeners may stop themselves
// while being invoked. Fire reports whether any listener was registered.
func (s *Signal) Fire() bool {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
	return len(fns) > 0
}

// Listeners returns the number of registered listeners.
func (s *Signal) Listeners() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.listeners)
}

package shell

import "sync"

// An intSource hands out the interrupt channels that evaluations listen on.
// Each evaluation gets the current channel; an interrupt closes it, which
// every pending pull inside the evaluator observes. Handing out the next
// channel renews a closed one, so an interrupt delivered during one command
// does not abort the command after it.
type intSource struct {
	mu sync.Mutex
	ch chan struct{}
}

func newIntSource() *intSource {
	return &intSource{ch: make(chan struct{})}
}

// interrupt closes the current channel if it is still open.
func (s *intSource) interrupt() {
	s.mu.Lock()
	defer s.mu.Unlock()
	select {
	case <-s.ch:
	default:
		close(s.ch)
	}
}

// next returns the channel for the next evaluation to listen on.
func (s *intSource) next() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	select {
	case <-s.ch:
		s.ch = make(chan struct{})
	default:
	}
	return s.ch
}

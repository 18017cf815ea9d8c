package client

import "sync"

// storeState is the loading/error pair every store exposes, plus the
// mutex guarding the store's cached data. The scalars are per store,
// not per call: overlapping operations on one store race on them
// last-writer-wins, which is accepted for user-paced actions.
type storeState struct {
	mu      sync.RWMutex
	loading bool
	lastErr string
}

// Loading reports whether an operation is in flight.
func (s *storeState) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// LastError returns the most recent failure message as plain text for
// direct display, empty when the last operation succeeded.
func (s *storeState) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

func (s *storeState) begin() {
	s.mu.Lock()
	s.loading = true
	s.lastErr = ""
	s.mu.Unlock()
}

func (s *storeState) end() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

func (s *storeState) fail(err error) {
	s.mu.Lock()
	s.lastErr = err.Error()
	s.mu.Unlock()
}

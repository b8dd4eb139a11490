package kv

import (
	"fmt"
	"os"
	"sync"
)

// Session is an in-memory Store whose contents last for the lifetime of the
// process. It is the session-scoped counterpart to Disk, and doubles as the
// storage fake in tests.
type Session struct {
	mu     sync.Mutex
	values map[string][]byte
}

// NewSession creates an empty session store.
func NewSession() *Session {
	return &Session{values: make(map[string][]byte)}
}

func (s *Session) Set(key string, value any) bool {
	data, err := encode(value)
	if err != nil {
		fmt.Fprintf(os.Stderr, "kv: encode %s: %v\n", key, err)
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = data
	return true
}

func (s *Session) Get(key string) any {
	data, ok := s.Raw(key)
	if !ok {
		return nil
	}
	return decode(data)
}

func (s *Session) Raw(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.values[key]
	if !ok || len(data) == 0 {
		return nil, false
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, true
}

func (s *Session) Remove(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return true
}

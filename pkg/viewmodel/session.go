package viewmodel

import "sync/atomic"

// Session is application-scoped state shared by every ViewModel: the task
// store and the flag guarding the one initial fetch.
type Session struct {
	store  *Store
	loaded atomic.Bool
}

func NewSession() *Session {
	return &Session{store: NewStore()}
}

func (s *Session) Store() *Store {
	return s.store
}

func (s *Session) Loaded() bool {
	return s.loaded.Load()
}

// claimInitialLoad returns true for exactly one caller per session.
func (s *Session) claimInitialLoad() bool {
	return s.loaded.CompareAndSwap(false, true)
}

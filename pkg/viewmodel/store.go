package viewmodel

import (
	"sync"

	model "todolist.com/todolist/pkg/models"
)

type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusFailed:
		return "error"
	default:
		return "idle"
	}
}

// Store holds the authoritative fetched task collection and the request
// lifecycle. It is shared by every ViewModel of an application session.
type Store struct {
	mu       sync.RWMutex
	tasks    []model.Task
	inflight int
	lastErr  string
}

func NewStore() *Store {
	return &Store{tasks: []model.Task{}}
}

// Tasks returns a copy of the cached collection.
func (s *Store) Tasks() []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *Store) Find(id uint) (model.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

func (s *Store) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch {
	case s.inflight > 0:
		return StatusLoading
	case s.lastErr != "":
		return StatusFailed
	default:
		return StatusIdle
	}
}

func (s *Store) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = ""
}

func (s *Store) begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inflight++
	s.lastErr = ""
}

func (s *Store) fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inflight--
	s.lastErr = err.Error()
}

// The reconciliation steps below each end one in-flight request.

func (s *Store) replaceAll(tasks []model.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inflight--

	s.tasks = make([]model.Task, len(tasks))
	copy(s.tasks, tasks)
}

func (s *Store) prepend(task model.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inflight--

	s.tasks = append([]model.Task{task}, s.tasks...)
}

// replace swaps the task with the same id in place. A missing id is a no-op.
func (s *Store) replace(task model.Task) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inflight--

	for i := range s.tasks {
		if s.tasks[i].ID == task.ID {
			s.tasks[i] = task
			return true
		}
	}
	return false
}

func (s *Store) remove(id uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inflight--

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

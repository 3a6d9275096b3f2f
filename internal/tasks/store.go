package tasks

import (
	"sync"
	"time"

	perrors "github.com/zhubert/manus/internal/errors"
)

// DefaultRefreshIncrement is the progress gained per refresh by running tasks.
const DefaultRefreshIncrement = 5

// Option configures a Store.
type Option func(*Store)

// WithRefreshIncrement sets the per-refresh progress bump.
func WithRefreshIncrement(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.increment = n
		}
	}
}

// WithStrictFailure forbids marking a completed task as failed.
func WithStrictFailure() Option {
	return func(s *Store) { s.strictFailure = true }
}

// WithClock overrides the time source used for transition records.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Store owns the task list for one screen.
type Store struct {
	mu            sync.Mutex
	tasks         []Task
	history       []Transition
	increment     int
	strictFailure bool
	now           func() time.Time
}

// NewStore returns a store holding a copy of seed.
func NewStore(seed []Task, opts ...Option) *Store {
	s := &Store{
		tasks:     make([]Task, len(seed)),
		increment: DefaultRefreshIncrement,
		now:       time.Now,
	}
	copy(s.tasks, seed)
	for i := range s.tasks {
		s.tasks[i].Progress = clamp(s.tasks[i].Progress)
		if s.tasks[i].Status == StatusCompleted {
			s.tasks[i].Progress = 100
		}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// All returns a copy of every task in order.
func (s *Store) All() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Get returns the task with id.
func (s *Store) Get(id string) (Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return Task{}, perrors.TaskNotFound(id)
	}
	return s.tasks[i], nil
}

// Actions lists the actions legal for the task's current status.
func (s *Store) Actions(id string) ([]Action, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return nil, perrors.TaskNotFound(id)
	}
	return s.actionsFor(s.tasks[i].Status), nil
}

func (s *Store) actionsFor(st Status) []Action {
	switch st {
	case StatusRunning:
		return []Action{ActionPause, ActionComplete, ActionFail}
	case StatusPaused:
		return []Action{ActionResume, ActionComplete, ActionFail}
	case StatusCompleted:
		if s.strictFailure {
			return nil
		}
		return []Action{ActionFail}
	}
	return nil
}

// Pause moves a running task to paused.
func (s *Store) Pause(id string) (Task, error) { return s.Apply(id, ActionPause) }

// Resume moves a paused task back to running.
func (s *Store) Resume(id string) (Task, error) { return s.Apply(id, ActionResume) }

// Complete marks a running or paused task completed at 100%.
func (s *Store) Complete(id string) (Task, error) { return s.Apply(id, ActionComplete) }

// Fail marks a task failed. Failed is terminal.
func (s *Store) Fail(id string) (Task, error) { return s.Apply(id, ActionFail) }

// Apply performs action on the task and returns its new state.
func (s *Store) Apply(id string, action Action) (Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return Task{}, perrors.TaskNotFound(id)
	}
	t := &s.tasks[i]

	if !containsAction(s.actionsFor(t.Status), action) {
		return *t, perrors.InvalidTransition(id, string(t.Status), string(action))
	}

	from := t.Status
	switch action {
	case ActionPause:
		t.Status = StatusPaused
	case ActionResume:
		t.Status = StatusRunning
	case ActionComplete:
		t.Status = StatusCompleted
		t.Progress = 100
	case ActionFail:
		t.Status = StatusFailed
	}
	s.history = append(s.history, Transition{TaskID: id, From: from, To: t.Status, Action: action, At: s.now()})
	return *t, nil
}

// Refresh bumps every running task below 100% by the increment, capped at
// 100. Status is left alone even when a task reaches 100%; completing a task
// is always an explicit user action. Returns the number of tasks changed.
func (s *Store) Refresh() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	changed := 0
	for i := range s.tasks {
		t := &s.tasks[i]
		if t.Status != StatusRunning || t.Progress >= 100 {
			continue
		}
		t.Progress = clamp(t.Progress + s.increment)
		changed++
	}
	return changed
}

// History returns every transition applied so far, oldest first.
func (s *Store) History() []Transition {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Transition, len(s.history))
	copy(out, s.history)
	return out
}

// Filter selects which tasks a view shows. The zero value shows all.
type Filter struct {
	Status Status // empty means all
}

// FilterAll shows every task.
var FilterAll = Filter{}

// Only returns a filter for a single status.
func Only(st Status) Filter {
	return Filter{Status: st}
}

// Matches reports whether t passes the filter.
func (f Filter) Matches(t Task) bool {
	return f.Status == "" || t.Status == f.Status
}

// Filter returns the tasks passing f without modifying the store.
func (s *Store) Filter(f Filter) []Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Task
	for _, t := range s.tasks {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// Counts returns the number of tasks per status.
func (s *Store) Counts() map[Status]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts := make(map[Status]int, len(Statuses))
	for _, t := range s.tasks {
		counts[t.Status]++
	}
	return counts
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

func (s *Store) index(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func containsAction(actions []Action, a Action) bool {
	for _, x := range actions {
		if x == a {
			return true
		}
	}
	return false
}

func clamp(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

package store

import (
	"time"

	"github.com/studyflowhq/studyflow/internal/config"
	"github.com/studyflowhq/studyflow/internal/date"
	"github.com/studyflowhq/studyflow/internal/task"
)

// Tasks owns the task collection. Slice position is the user's manual
// order; sorted and filtered views are derived on demand and never
// written back (see the query package).
type Tasks struct {
	adapter  *Adapter
	cfg      *config.Config
	tasks    []*task.Task
	onChange []func()
	now      func() time.Time
}

// NewTasks loads the task collection from the adapter. A missing or
// corrupt tasks file yields an empty store.
func NewTasks(adapter *Adapter, cfg *config.Config) *Tasks {
	s := &Tasks{adapter: adapter, cfg: cfg, now: time.Now}
	var tasks []*task.Task
	if adapter.Load(KeyTasks, &tasks) {
		s.tasks = tasks
	}
	return s
}

// SetNow overrides the clock (for testing).
func (s *Tasks) SetNow(fn func() time.Time) {
	s.now = fn
}

// Subscribe registers a callback fired after every successful mutation.
func (s *Tasks) Subscribe(fn func()) {
	s.onChange = append(s.onChange, fn)
}

// All returns the tasks in manual order. The returned slice is shared;
// callers treat it as a snapshot and must not mutate it.
func (s *Tasks) All() []*task.Task {
	return s.tasks
}

// Len returns the number of tasks.
func (s *Tasks) Len() int {
	return len(s.tasks)
}

// Get returns the task with the given id, or nil.
func (s *Tasks) Get(id int) *task.Task {
	for _, t := range s.tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// FirstIncomplete returns the first incomplete task in manual order,
// or nil. The focus timer links completed sessions to it.
func (s *Tasks) FirstIncomplete() *task.Task {
	for _, t := range s.tasks {
		if !t.Completed {
			return t
		}
	}
	return nil
}

// Create validates and appends a new task, persists, and notifies.
// Text must be non-empty after trimming; a blank subject falls back to
// the default; priority defaults to medium.
func (s *Tasks) Create(text string, due *date.Date, subject, priority string) (*task.Task, error) {
	trimmed, err := task.ValidateText(text)
	if err != nil {
		return nil, err
	}
	if subject == "" {
		subject = config.DefaultSubject
	}
	if priority == "" {
		priority = config.DefaultPriority
	}
	if err := task.ValidatePriority(priority, s.cfg.Priorities); err != nil {
		return nil, err
	}

	t := &task.Task{
		ID:        s.cfg.NextTaskID,
		Text:      trimmed,
		Subject:   subject,
		Priority:  priority,
		Due:       due,
		CreatedAt: s.now(),
	}

	s.tasks = append(s.tasks, t)
	if err := s.persist(); err != nil {
		// Roll back the append so the in-memory state matches disk.
		s.tasks = s.tasks[:len(s.tasks)-1]
		return nil, err
	}

	s.cfg.NextTaskID++
	if err := s.cfg.Save(); err != nil {
		return nil, err
	}

	s.notify()
	return t, nil
}

// ToggleComplete flips the completion state of the task with the given
// id, maintaining CompletedAt. Returns TaskNotFound for an absent id.
func (s *Tasks) ToggleComplete(id int) (*task.Task, error) {
	t := s.Get(id)
	if t == nil {
		return nil, task.NotFound(id)
	}

	task.Toggle(t, s.now())
	if err := s.persist(); err != nil {
		return nil, err
	}

	s.notify()
	return t, nil
}

// Delete removes the task with the given id. Deleting an absent id is
// a silent no-op, so double-deletes (stale views, repeated commands)
// never error.
func (s *Tasks) Delete(id int) error {
	idx := -1
	for i, t := range s.tasks {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
	if err := s.persist(); err != nil {
		return err
	}

	s.notify()
	return nil
}

// Reorder repositions tasks to match the given id sequence. The
// sequence may be partial: listed ids come first in the given order,
// unlisted tasks keep their relative order appended after, and unknown
// ids are ignored.
func (s *Tasks) Reorder(idSequence []int) error {
	position := make(map[int]int, len(idSequence))
	for i, id := range idSequence {
		if _, seen := position[id]; !seen {
			position[id] = i
		}
	}

	var listed, rest []*task.Task
	for _, t := range s.tasks {
		if _, ok := position[t.ID]; ok {
			listed = append(listed, t)
		} else {
			rest = append(rest, t)
		}
	}

	// Stable arrangement of the listed tasks by sequence position.
	for i := 1; i < len(listed); i++ {
		for j := i; j > 0 && position[listed[j].ID] < position[listed[j-1].ID]; j-- {
			listed[j], listed[j-1] = listed[j-1], listed[j]
		}
	}

	s.tasks = append(listed, rest...)
	if err := s.persist(); err != nil {
		return err
	}

	s.notify()
	return nil
}

// ClearAll removes every task.
func (s *Tasks) ClearAll() error {
	s.tasks = nil
	if err := s.persist(); err != nil {
		return err
	}

	s.notify()
	return nil
}

func (s *Tasks) persist() error {
	tasks := s.tasks
	if tasks == nil {
		tasks = []*task.Task{}
	}
	return s.adapter.Save(KeyTasks, tasks)
}

func (s *Tasks) notify() {
	for _, fn := range s.onChange {
		fn()
	}
}

package docket

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/go-kratos/kratos/v2/log"
)

// Store owns the task collection and the id sequence. All mutations go
// through it. The HTTP server handles requests concurrently, so operations
// serialize on one mutex; the collection itself assumes no interleaving.
type Store struct {
	mu         sync.Mutex
	path       string
	exportPath string
	tasks      []*Task
	nextID     int
	log        *log.Helper
}

// Option configures a Store before it loads.
type Option func(*Store)

// WithLogger routes the store's persistence logging through the given logger.
func WithLogger(logger log.Logger) Option {
	return func(s *Store) {
		s.log = log.NewHelper(logger)
	}
}

// WithExportPath overrides where the export artifact is written.
func WithExportPath(path string) Option {
	return func(s *Store) {
		if path != "" {
			s.exportPath = path
		}
	}
}

// Open creates a store backed by the given file and loads it. A missing or
// malformed file is not an error: the store starts empty and says so in the
// log. The export artifact defaults to tasks_export.txt next to the file.
func Open(path string, opts ...Option) *Store {
	s := &Store{
		path:       path,
		exportPath: filepath.Join(filepath.Dir(path), "tasks_export.txt"),
		nextID:     1,
		log:        log.NewHelper(log.GetLogger()),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.load()
	return s
}

// List returns a filtered/sorted copy of the collection. The store itself is
// never reordered or mutated by a query.
func (s *Store) List(opts ListOptions) []Task {
	s.mu.Lock()
	snapshot := make([]Task, len(s.tasks))
	for i, t := range s.tasks {
		snapshot[i] = *t
	}
	s.mu.Unlock()

	return applyQuery(snapshot, opts)
}

// Create validates and appends a new task, assigning the next id.
// Status is ToDo no matter what the caller sent.
func (s *Store) Create(fields CreateFields) (Task, error) {
	if fields.Title == "" {
		return Task{}, &ValidationError{Field: "title", Reason: "must not be empty"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task := &Task{
		ID:          s.nextID,
		Title:       fields.Title,
		Description: fields.Description,
		Deadline:    fields.Deadline,
		Priority:    NormalizePriority(fields.Priority),
		Status:      StatusToDo,
	}
	s.nextID++
	s.tasks = append(s.tasks, task)

	return *task, nil
}

// Update overlays the fields present in the patch onto the stored record and
// replaces it whole. Fields absent from the patch are left untouched.
// Priority is normalized the same way creation normalizes it; a status
// outside the enum is rejected rather than written through.
func (s *Store) Update(id int, patch Patch) (Task, error) {
	if patch.Status != nil && *patch.Status != StatusToDo && *patch.Status != StatusCompleted {
		return Task{}, &ValidationError{
			Field:  "status",
			Reason: fmt.Sprintf("unknown status %q", *patch.Status),
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return Task{}, ErrNotFound
	}

	next := *s.tasks[i]
	if patch.Title != nil {
		next.Title = *patch.Title
	}
	if patch.Description != nil {
		next.Description = *patch.Description
	}
	if patch.DeadlineSet {
		next.Deadline = patch.Deadline
	}
	if patch.Priority != nil {
		next.Priority = NormalizePriority(*patch.Priority)
	}
	if patch.Status != nil {
		next.Status = *patch.Status
	}
	s.tasks[i] = &next

	return next, nil
}

// Delete removes the task. The freed id is never handed out again.
func (s *Store) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return nil
}

// Complete marks the task Completed. Completing a completed task is a no-op
// that still returns the record.
func (s *Store) Complete(id int) (Task, error) {
	completed := StatusCompleted
	return s.Update(id, Patch{Status: &completed})
}

// indexOf must be called with the mutex held.
func (s *Store) indexOf(id int) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

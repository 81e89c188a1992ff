package docket

import (
	"encoding/json"
	"os"
)

// load reads the task file into memory and recomputes the id sequence as
// max(ids)+1, so ids freed by deletion stay retired across restarts.
// Any failure degrades to an empty collection; the store never refuses to
// start over a bad file.
func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warnf("failed to read task file %s, starting empty: %v", s.path, err)
		}
		return
	}

	var tasks []*Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		s.log.Warnf("malformed task file %s, starting empty: %v", s.path, err)
		return
	}

	s.tasks = tasks
	for _, t := range tasks {
		if t.ID >= s.nextID {
			s.nextID = t.ID + 1
		}
	}
}

// Persist writes the full collection to the task file as an indented JSON
// array. A failed write is logged and reported, but the in-memory state
// stays authoritative; callers on the request path ignore the error.
func (s *Store) Persist() error {
	s.mu.Lock()
	tasks := s.tasks
	if tasks == nil {
		tasks = []*Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	s.mu.Unlock()
	if err != nil {
		s.log.Errorf("failed to encode tasks for %s: %v", s.path, err)
		return err
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		s.log.Errorf("failed to save task file %s: %v", s.path, err)
		return err
	}
	return nil
}

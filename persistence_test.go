package docket

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestPersistRoundTrip saves a collection and reloads it from the same file
func TestPersistRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")

	st1 := Open(path)
	_, err := st1.Create(CreateFields{Title: "Pack boxes", Description: "Garage first", Deadline: strPtr("2026-09-15"), Priority: "High"})
	assert.NoError(t, err)
	_, err = st1.Create(CreateFields{Title: "Hire movers"})
	assert.NoError(t, err)
	_, err = st1.Complete(2)
	assert.NoError(t, err)

	assert.NoError(t, st1.Persist())
	assert.FileExists(t, path)

	st2 := Open(path)
	assert.Equal(t, st1.List(ListOptions{}), st2.List(ListOptions{}))

	// The id sequence continues past the loaded maximum
	task, err := st2.Create(CreateFields{Title: "Change address"})
	assert.NoError(t, err)
	assert.Equal(t, 3, task.ID)
}

func TestOpenMissingFileStartsEmpty(t *testing.T) {
	st := Open(filepath.Join(t.TempDir(), "tasks.json"))

	assert.Empty(t, st.List(ListOptions{}))
	task, err := st.Create(CreateFields{Title: "first"})
	assert.NoError(t, err)
	assert.Equal(t, 1, task.ID)
}

func TestOpenMalformedFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	assert.NoError(t, os.WriteFile(path, []byte("{this is not json"), 0644))

	st := Open(path)
	assert.Empty(t, st.List(ListOptions{}))

	task, err := st.Create(CreateFields{Title: "fresh start"})
	assert.NoError(t, err)
	assert.Equal(t, 1, task.ID)
}

// TestOpenRespectsIDGaps verifies ids freed before a restart stay retired
func TestOpenRespectsIDGaps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	persisted := []Task{
		{ID: 1, Title: "kept", Priority: PriorityLow, Status: StatusToDo},
		{ID: 5, Title: "survivor of deletions", Priority: PriorityLow, Status: StatusToDo},
	}
	data, err := json.MarshalIndent(persisted, "", "  ")
	assert.NoError(t, err)
	assert.NoError(t, os.WriteFile(path, data, 0644))

	st := Open(path)
	task, err := st.Create(CreateFields{Title: "new"})
	assert.NoError(t, err)
	assert.Equal(t, 6, task.ID)
}

func TestPersistedLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")

	st := Open(path)
	_, err := st.Create(CreateFields{Title: "Shape check"})
	assert.NoError(t, err)
	assert.NoError(t, st.Persist())

	data, err := os.ReadFile(path)
	assert.NoError(t, err)

	// Plain array, each record carrying exactly the six known fields
	var records []map[string]any
	assert.NoError(t, json.Unmarshal(data, &records))
	assert.Len(t, records, 1)
	for _, key := range []string{"id", "title", "description", "deadline", "priority", "status"} {
		assert.Contains(t, records[0], key)
	}
	assert.Len(t, records[0], 6)
	assert.Nil(t, records[0]["deadline"])
}

func TestPersistFailureLeavesStoreUsable(t *testing.T) {
	st := Open(filepath.Join(t.TempDir(), "no-such-dir", "tasks.json"))

	_, err := st.Create(CreateFields{Title: "t"})
	assert.NoError(t, err)
	assert.Error(t, st.Persist())

	// The in-memory collection stays authoritative
	task, err := st.Create(CreateFields{Title: "still working"})
	assert.NoError(t, err)
	assert.Equal(t, 2, task.ID)
	assert.Len(t, st.List(ListOptions{}), 2)
}

func TestPersistEmptyCollectionWritesArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")

	st := Open(path)
	assert.NoError(t, st.Persist())

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

package docket

import "encoding/json"

// Priority levels, ordered High before Medium before Low.
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// Task statuses. A task is ToDo from creation until completed.
const (
	StatusToDo      = "ToDo"
	StatusCompleted = "Completed"
)

// Task represents a task in the system
type Task struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Deadline    *string `json:"deadline"`
	Priority    string  `json:"priority"`
	Status      string  `json:"status"`
}

// CreateFields carries the caller-supplied fields for a new task.
// Status is absent on purpose: new tasks are always ToDo.
type CreateFields struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Deadline    *string `json:"deadline"`
	Priority    string  `json:"priority"`
}

// Patch is a partial update. Nil pointer fields are left unchanged.
// Deadline needs DeadlineSet so that an explicit null clears the deadline
// while an absent field leaves it alone.
type Patch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Deadline    *string `json:"deadline"`
	DeadlineSet bool    `json:"-"`
	Priority    *string `json:"priority"`
	Status      *string `json:"status"`
}

// UnmarshalJSON records whether the deadline key was present at all.
func (p *Patch) UnmarshalJSON(data []byte) error {
	type patch Patch
	var raw patch
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}

	*p = Patch(raw)
	_, p.DeadlineSet = keys["deadline"]
	return nil
}

// NormalizePriority maps anything outside the known levels to Low.
func NormalizePriority(priority string) string {
	switch priority {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return priority
	}
	return PriorityLow
}

package docket

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// seedQueryStore loads a store with a known mix of tasks:
//
//	1 Pay rent        High    due 2026-09-01  ToDo
//	2 Water plants    Low     no deadline     Completed
//	3 Book flights    High    due 2026-08-15  ToDo
//	4 Call plumber    Medium  due 2026-09-01  ToDo
//	5 Read novel      Low     garbage date    ToDo
func seedQueryStore(t *testing.T) *Store {
	st := newTestStore(t)

	seeds := []CreateFields{
		{Title: "Pay rent", Priority: "High", Deadline: strPtr("2026-09-01")},
		{Title: "Water plants", Priority: "Low"},
		{Title: "Book flights", Priority: "High", Deadline: strPtr("2026-08-15")},
		{Title: "Call plumber", Priority: "Medium", Deadline: strPtr("2026-09-01")},
		{Title: "Read novel", Priority: "Low", Deadline: strPtr("someday")},
	}
	for _, f := range seeds {
		_, err := st.Create(f)
		assert.NoError(t, err)
	}
	_, err := st.Complete(2)
	assert.NoError(t, err)

	return st
}

func ids(tasks []Task) []int {
	out := make([]int, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func TestFilterCompleted(t *testing.T) {
	st := seedQueryStore(t)

	assert.Equal(t, []int{2}, ids(st.List(ListOptions{Filter: "completed"})))
	assert.Equal(t, []int{1, 3, 4, 5}, ids(st.List(ListOptions{Filter: "not-completed"})))
}

func TestFilterHighPriority(t *testing.T) {
	st := seedQueryStore(t)

	assert.Equal(t, []int{1, 3}, ids(st.List(ListOptions{Filter: "high-priority"})))
}

func TestUnknownFilterPassesThrough(t *testing.T) {
	st := seedQueryStore(t)

	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(st.List(ListOptions{Filter: "overdue"})))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(st.List(ListOptions{})))
}

func TestSortByDeadline(t *testing.T) {
	st := seedQueryStore(t)

	// Parsed deadlines ascending; equal deadlines keep insertion order;
	// missing or unparseable deadlines go last, also in insertion order.
	assert.Equal(t, []int{3, 1, 4, 2, 5}, ids(st.List(ListOptions{SortBy: "deadline"})))
}

func TestSortByPriority(t *testing.T) {
	st := seedQueryStore(t)

	// High before Medium before Low, ties in insertion order
	assert.Equal(t, []int{1, 3, 4, 2, 5}, ids(st.List(ListOptions{SortBy: "priority"})))
}

func TestUnknownSortPreservesOrder(t *testing.T) {
	st := seedQueryStore(t)

	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(st.List(ListOptions{SortBy: "alphabetical"})))
}

func TestFilterComposesWithSort(t *testing.T) {
	st := seedQueryStore(t)

	got := st.List(ListOptions{Filter: "not-completed", SortBy: "priority"})
	assert.Equal(t, []int{1, 3, 4, 5}, ids(got))
}

func TestListNeverReordersTheStore(t *testing.T) {
	st := seedQueryStore(t)

	_ = st.List(ListOptions{SortBy: "priority"})
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(st.List(ListOptions{})))
}

func TestDeadlineLayouts(t *testing.T) {
	full, ok := parseDeadline(strPtr("2026-08-15T09:30:00Z"))
	assert.True(t, ok)

	local, ok := parseDeadline(strPtr("2026-08-15T09:30"))
	assert.True(t, ok)
	assert.True(t, full.Equal(local))

	_, ok = parseDeadline(strPtr("not a date"))
	assert.False(t, ok)

	_, ok = parseDeadline(nil)
	assert.False(t, ok)
}

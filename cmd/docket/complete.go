package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"docket"
)

var completeCmd = &cobra.Command{
	Use:   "complete <task-id>",
	Short: "Complete a task",
	Long:  `Mark a task as completed.`,
	Args:  cobra.ExactArgs(1),
	Run:   completeTask,
}

func completeTask(cmd *cobra.Command, args []string) {
	id := parseID(args[0])

	st := openStore()
	task, err := st.Complete(id)
	if errors.Is(err, docket.ErrNotFound) {
		fatal("Task not found: %d", id)
	}
	if err != nil {
		fatal("Failed to complete task: %v", err)
	}
	if err := st.Persist(); err != nil {
		fatal("Failed to save task file: %v", err)
	}

	fmt.Printf("✓ Task completed: %d\n", task.ID)
	fmt.Printf("  %s\n", task.Title)
}

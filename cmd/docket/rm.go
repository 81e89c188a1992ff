package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"docket"
)

var rmCmd = &cobra.Command{
	Use:   "rm <task-id>",
	Short: "Delete a task",
	Long:  `Delete a task. Its id is never reused.`,
	Args:  cobra.ExactArgs(1),
	Run:   removeTask,
}

func removeTask(cmd *cobra.Command, args []string) {
	id := parseID(args[0])

	st := openStore()
	if err := st.Delete(id); err != nil {
		if errors.Is(err, docket.ErrNotFound) {
			fatal("Task not found: %d", id)
		}
		fatal("Failed to delete task: %v", err)
	}
	if err := st.Persist(); err != nil {
		fatal("Failed to save task file: %v", err)
	}

	fmt.Printf("✓ Task deleted: %d\n", id)
}

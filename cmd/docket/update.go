package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"docket"
)

var (
	updTitle       string
	updDescription string
	updDeadline    string
	updPriority    string
	updStatus      string
)

var updateCmd = &cobra.Command{
	Use:   "update <task-id>",
	Short: "Update a task",
	Long:  `Update a task. Only flags that were set are applied; everything else is left unchanged. Pass --deadline "" to clear the deadline.`,
	Args:  cobra.ExactArgs(1),
	Run:   updateTask,
}

func init() {
	updateCmd.Flags().StringVarP(&updTitle, "title", "t", "", "New title")
	updateCmd.Flags().StringVarP(&updDescription, "description", "d", "", "New description")
	updateCmd.Flags().StringVar(&updDeadline, "deadline", "", "New deadline (empty clears it)")
	updateCmd.Flags().StringVarP(&updPriority, "priority", "p", "", "New priority: High, Medium or Low")
	updateCmd.Flags().StringVar(&updStatus, "status", "", "New status: ToDo or Completed")
}

func updateTask(cmd *cobra.Command, args []string) {
	id := parseID(args[0])

	var patch docket.Patch
	flags := cmd.Flags()
	if flags.Changed("title") {
		patch.Title = &updTitle
	}
	if flags.Changed("description") {
		patch.Description = &updDescription
	}
	if flags.Changed("deadline") {
		patch.DeadlineSet = true
		if updDeadline != "" {
			patch.Deadline = &updDeadline
		}
	}
	if flags.Changed("priority") {
		patch.Priority = &updPriority
	}
	if flags.Changed("status") {
		patch.Status = &updStatus
	}

	st := openStore()
	task, err := st.Update(id, patch)
	if errors.Is(err, docket.ErrNotFound) {
		fatal("Task not found: %d", id)
	}
	if err != nil {
		fatal("Failed to update task: %v", err)
	}
	if err := st.Persist(); err != nil {
		fatal("Failed to save task file: %v", err)
	}

	fmt.Printf("✓ Task updated: %d\n", task.ID)
	fmt.Printf("  Title: %s\n", task.Title)
	if task.Deadline != nil {
		fmt.Printf("  Deadline: %s\n", *task.Deadline)
	}
	fmt.Printf("  Priority: %s\n", task.Priority)
	fmt.Printf("  Status: %s\n", task.Status)
}

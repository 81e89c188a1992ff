package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"docket"
)

var (
	addTitle       string
	addDescription string
	addDeadline    string
	addPriority    string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new task",
	Long:  `Add a new task to the task file.`,
	Run:   addTask,
}

func init() {
	addCmd.Flags().StringVarP(&addTitle, "title", "t", "", "Task title (required)")
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "Task description")
	addCmd.Flags().StringVar(&addDeadline, "deadline", "", "Deadline (ISO 8601, e.g. 2026-09-30)")
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", "", "Priority: High, Medium or Low (default Low)")
	if err := addCmd.MarkFlagRequired("title"); err != nil {
		panic(fmt.Sprintf("Failed to mark title flag as required: %v", err))
	}
}

func addTask(cmd *cobra.Command, args []string) {
	st := openStore()

	fields := docket.CreateFields{
		Title:       addTitle,
		Description: addDescription,
		Priority:    addPriority,
	}
	if addDeadline != "" {
		fields.Deadline = &addDeadline
	}

	task, err := st.Create(fields)
	if err != nil {
		fatal("%v", err)
	}
	if err := st.Persist(); err != nil {
		fatal("Failed to save task file: %v", err)
	}

	// Print confirmation
	fmt.Printf("✓ Task created: %d\n", task.ID)
	fmt.Printf("  Title: %s\n", task.Title)
	if task.Description != "" {
		fmt.Printf("  Description: %s\n", task.Description)
	}
	if task.Deadline != nil {
		fmt.Printf("  Deadline: %s\n", *task.Deadline)
	}
	fmt.Printf("  Priority: %s\n", task.Priority)
}

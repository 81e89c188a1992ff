package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"docket"
)

var (
	listFilter string
	listSort   string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long:  `List tasks in the task file, optionally filtered and sorted.`,
	Run:   listTasks,
}

func init() {
	listCmd.Flags().StringVar(&listFilter, "filter", "", "Filter: completed, not-completed or high-priority")
	listCmd.Flags().StringVar(&listSort, "sort", "", "Sort by: deadline or priority")
}

func listTasks(cmd *cobra.Command, args []string) {
	st := openStore()

	tasks := st.List(docket.ListOptions{Filter: listFilter, SortBy: listSort})
	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return
	}

	for _, task := range tasks {
		icon := "○"
		if task.Status == docket.StatusCompleted {
			icon = "✓"
		}
		fmt.Printf("%s [%d] %s (%s)\n", icon, task.ID, task.Title, task.Priority)
		if task.Description != "" {
			fmt.Printf("   %s\n", task.Description)
		}
		if task.Deadline != nil {
			fmt.Printf("   Due: %s\n", *task.Deadline)
		}
	}
}

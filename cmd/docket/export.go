package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"docket"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all tasks",
	Long:  `Export the full task collection in store order. The txt format also refreshes the tasks_export.txt artifact next to the task file.`,
	Run:   exportTasks,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "txt", "Export format: txt, json, csv or pdf")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "tasks_export.txt", "Output path")
}

func exportTasks(cmd *cobra.Command, args []string) {
	st := openStore()

	data, err := docket.NewExporter(st).Export(exportFormat)
	if err != nil {
		fatal("%v", err)
	}
	if err := os.WriteFile(exportOut, data, 0644); err != nil {
		fatal("Failed to write %s: %v", exportOut, err)
	}

	fmt.Printf("Exported %d tasks -> %s\n", len(st.List(docket.ListOptions{})), exportOut)
}

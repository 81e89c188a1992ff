package main

import (
	"os"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/spf13/cobra"
)

const (
	name    = "docket"
	version = "v0.1.0"
)

var taskFile string

var rootCmd = &cobra.Command{
	Use:   "docket",
	Short: "File-backed task tracker",
	Long:  `Docket tracks tasks in a single JSON file and can serve them over HTTP.`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&taskFile, "file", "f", "tasks.json", "Path to the task file")
	rootCmd.AddCommand(addCmd, listCmd, completeCmd, updateCmd, rmCmd, exportCmd, serveCmd)

	log.SetLogger(log.With(log.DefaultLogger,
		"ts", log.Timestamp(time.DateTime),
		"service.name", name,
	))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

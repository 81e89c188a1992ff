package main

import (
	"fmt"
	"os"
	"strconv"

	"docket"
)

// openStore loads the task file named by the persistent --file flag.
func openStore() *docket.Store {
	return docket.Open(taskFile)
}

// parseID converts a task-id argument, failing the command when it isn't
// a number.
func parseID(arg string) int {
	id, err := strconv.Atoi(arg)
	if err != nil {
		fatal("Invalid task id: %s", arg)
	}
	return id
}

// fatal prints an error message and exits
func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

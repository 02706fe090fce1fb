package cli

import (
	"fmt"
	"io"
)

const helpText = `
todo is a fast and simple task organizer
Example: todo list
Available commands:
    - add [TASK/s]
        adds new task/s
        Example: todo add "buy carrots"
        Texts may start with "-"; put -- first for text that matches a flag
        Example: todo add -- --plain
    - edit [INDEX] [EDITED TASK]
        edits an existing task
        Example: todo edit 1 banana
    - list
        lists all tasks
        Example: todo list
    - done [INDEX/es]
        marks tasks as done
        Example: todo done 2 3 (marks second and third tasks as completed)
    - rm [INDEX]
        removes a task
        Example: todo rm 4
    - init
        creates the database and a default config.yaml
    - export [FILE]
        writes all tasks to FILE as JSON lines (default: tasks.jsonl)
    - version
        prints the version`

// printHelp writes the static help text shown for empty, "help" and
// unrecognized input.
func printHelp(w io.Writer) {
	fmt.Fprintln(w, helpText)
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/todo/pkg/types"
)

func (a *app) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all tasks in id order",
		Args:  operands(0, 0, ""),
		RunE:  a.runList,
	}
}

func (a *app) runList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if a.flags.jsonMode {
		tasks := []types.Task{}
		for t, err := range a.store.ListTasks() {
			if err != nil {
				return fmt.Errorf("list: %w", err)
			}
			tasks = append(tasks, t)
		}
		return writeJSON(out, tasks)
	}

	for t, err := range a.store.ListTasks() {
		if err != nil {
			return fmt.Errorf("list: %w", err)
		}
		if _, err := fmt.Fprintln(out, formatTask(t, a.plain)); err != nil {
			return fmt.Errorf("list: %w", err)
		}
	}
	return nil
}

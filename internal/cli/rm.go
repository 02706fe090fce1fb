package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) newRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Short:   "Remove a task",
		Example: "  todo rm 4",
		Args:    operands(1, 1, "<id>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return fmt.Errorf("rm: %w", err)
			}
			n, err := a.store.RemoveTask(id)
			if err != nil {
				return fmt.Errorf("rm: %w", err)
			}
			if n == 0 {
				a.log.WithField("id", id).Debug("rm matched no task")
			}
			return nil
		},
	}
}

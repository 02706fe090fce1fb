package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) newEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "edit <id> <text>",
		Short:   "Replace the text of a task",
		Example: `  todo edit 1 banana
  todo edit 1 "-5 degrees"`,
		DisableFlagParsing: true,
		Args:               freeText(2, 2, "<id> <text>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			args, err := splitFreeText(cmd, args)
			if err != nil {
				return fmt.Errorf("edit: %w", err)
			}
			id, err := parseID(args[0])
			if err != nil {
				return fmt.Errorf("edit: %w", err)
			}
			n, err := a.store.EditTask(id, args[1])
			if err != nil {
				return fmt.Errorf("edit: %w", err)
			}
			// A missing id is not an error; the user gets no feedback.
			if n == 0 {
				a.log.WithField("id", id).Debug("edit matched no task")
			}
			return nil
		},
	}
}

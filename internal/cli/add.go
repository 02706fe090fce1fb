package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <task>...",
		Short: "Add one or more tasks",
		Long: `Add one or more tasks. Every word after the first task text is task
text too, even when it starts with "-". Put "--" first to add a task whose
text matches a flag name.`,
		Example: `  todo add "buy carrots"
  todo add "buy milk" "call mom"
  todo add "-5 degrees tonight"
  todo add -- --plain`,
		DisableFlagParsing: true,
		Args:               freeText(1, unbounded, "<task>..."),
		RunE: func(cmd *cobra.Command, args []string) error {
			args, err := splitFreeText(cmd, args)
			if err != nil {
				return fmt.Errorf("add: %w", err)
			}
			ids, err := a.store.AddTasks(args)
			if len(ids) > 0 {
				a.log.WithField("ids", ids).Debug("tasks added")
			}
			if err != nil {
				return fmt.Errorf("add: %w", err)
			}
			return nil
		},
	}
}

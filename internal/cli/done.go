package cli

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func (a *app) newDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "done <id>...",
		Short:   "Mark tasks as completed",
		Example: "  todo done 2 3",
		Args:    operands(1, unbounded, "<id>..."),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return fmt.Errorf("done: %w", err)
			}
			n, err := a.store.MarkDone(ids)
			if err != nil {
				return fmt.Errorf("done: %w", err)
			}
			if missed := int64(len(ids)) - n; missed > 0 {
				a.log.WithFields(log.Fields{"ids": ids, "missed": missed}).Debug("done matched fewer tasks than requested")
			}
			return nil
		},
	}
}

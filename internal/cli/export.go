package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// defaultExportFile is written in the working directory when no path is given.
const defaultExportFile = "tasks.jsonl"

func (a *app) newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Write all tasks to a JSON lines file",
		Args:  operands(0, 1, "[file]"),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultExportFile
			if len(args) == 1 {
				path = args[0]
			}
			n, err := a.store.ExportJSONL(path)
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}
			if a.flags.jsonMode {
				return writeJSON(cmd.OutOrStdout(), map[string]any{"path": path, "count": n})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d tasks to %s\n", n, path)
			return nil
		},
	}
}

package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func (a *app) newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the task database and config",
		Long: `Create the task database (if missing) and write a default config.yaml
to the configuration directory. Running init again changes nothing.`,
		Args: operands(0, 0, ""),
		RunE: a.runInit,
	}
}

// runInit relies on setup having opened, and so initialized, the store.
func (a *app) runInit(cmd *cobra.Command, args []string) error {
	wrote, err := writeConfigIfMissing(a.configDir)
	if err != nil {
		return fmt.Errorf("init: %w", err)
	}
	if wrote {
		a.log.WithField("dir", a.configDir).Debug("default config written")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "todo initialized successfully")
	fmt.Fprintln(out, "  config:  ", filepath.Join(a.configDir, configFileExt))
	fmt.Fprintln(out, "  database:", a.dbPath)
	return nil
}

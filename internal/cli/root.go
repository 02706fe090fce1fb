// Package cli implements the todo command-line interface: a cobra command
// tree that routes each command word to one task store operation.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/todo/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// annotationNoStore marks commands that run without opening the store.
const annotationNoStore = "todo/no-store"

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dbPath    string
	jsonMode  bool
	plain     bool
	debug     bool
}

// taskStore is the store surface the commands use.
type taskStore interface {
	types.TaskStore
	ExportJSONL(path string) (int, error)
}

// app carries the per-invocation state shared by the commands. The store is
// opened once in the root PersistentPreRunE and closed when the command
// finishes, on every exit path.
type app struct {
	flags     rootFlags
	stderr    io.Writer
	log       *log.Entry
	store     taskStore
	configDir string
	dbPath    string
	plain     bool
}

func newApp(stderr io.Writer) *app {
	quiet := log.New()
	quiet.SetOutput(io.Discard)
	return &app{stderr: stderr, log: log.NewEntry(quiet)}
}

// rootCmd creates the top-level "todo" command with global flags and all
// subcommands registered. Each known command word is listed explicitly; the
// root itself is the default for everything else.
func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "todo",
		Short: "A fast and simple task organizer",
		// Unrecognized words reach RunE instead of failing as unknown commands.
		Args:               cobra.ArbitraryArgs,
		RunE:               a.runHelp,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error { return a.closeStore() },
		SilenceUsage:       true,
		SilenceErrors:      true,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/todo)")
	root.PersistentFlags().StringVar(&a.flags.dbPath, "db", "", "database file (default: ./database.sqlite)")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().BoolVar(&a.flags.plain, "plain", false, "disable terminal styling")
	root.PersistentFlags().BoolVar(&a.flags.debug, "debug", false, "enable debug logging")

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrBadFlag, err)
	})

	defaultHelp := root.HelpFunc()
	root.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd == root {
			printHelp(cmd.OutOrStdout())
			return
		}
		defaultHelp(cmd, args)
	})

	root.AddCommand(
		a.newAddCmd(),
		a.newEditCmd(),
		a.newListCmd(),
		a.newDoneCmd(),
		a.newRmCmd(),
		a.newInitCmd(),
		a.newExportCmd(),
		newVersionCmd(),
	)

	return root
}

// Execute runs the root command against the process arguments and exits with
// the appropriate code.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	a := newApp(stderr)
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if cerr := a.closeStore(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintln(stderr, "todo:", err)
		return exitCode(err)
	}
	return exitSuccess
}

// exitCode maps an error to an exit code: malformed input is a user error,
// everything else (storage, config, I/O) is a system error.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitSuccess
	case errors.Is(err, ErrMissingOperand),
		errors.Is(err, ErrTooManyOperands),
		errors.Is(err, ErrInvalidID),
		errors.Is(err, ErrBadFlag):
		return exitUserError
	default:
		return exitSysError
	}
}

// runHelp is the root command's default: empty input, "help", and any
// unrecognized word all print the help text.
func (a *app) runHelp(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		a.log.WithField("word", args[0]).Debug("unrecognized command, showing help")
	}
	printHelp(cmd.OutOrStdout())
	return nil
}

// closeStore releases the store if one is open. Safe to call repeatedly.
func (a *app) closeStore() error {
	if a.store == nil {
		return nil
	}
	err := a.store.Close()
	a.store = nil
	if err != nil {
		return fmt.Errorf("close store: %w", err)
	}
	return nil
}

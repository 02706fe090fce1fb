package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Usage errors. These exit with exitUserError and never touch the store.
var (
	ErrMissingOperand  = errors.New("missing operand")
	ErrTooManyOperands = errors.New("too many operands")
	ErrInvalidID       = errors.New("invalid task id")
	ErrBadFlag         = errors.New("bad flag")
)

// unbounded is passed as hi to operands for commands without an upper limit.
const unbounded = -1

// operands returns a cobra.PositionalArgs that accepts between lo and hi
// arguments. usage names the expected operands in the error message.
func operands(lo, hi int, usage string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < lo {
			return fmt.Errorf("%s: %w (usage: todo %s %s)", cmd.Name(), ErrMissingOperand, cmd.Name(), usage)
		}
		if hi != unbounded && len(args) > hi {
			return fmt.Errorf("%s: %w (usage: todo %s %s)", cmd.Name(), ErrTooManyOperands, cmd.Name(), usage)
		}
		return nil
	}
}

// freeText returns a cobra.PositionalArgs for commands that set
// DisableFlagParsing so their operands may start with "-". It applies the
// leading flags itself, before the root PersistentPreRunE reads them, then
// counts the operands like operands does.
func freeText(lo, hi int, usage string) cobra.PositionalArgs {
	check := operands(lo, hi, usage)
	return func(cmd *cobra.Command, args []string) error {
		rest, err := splitFreeText(cmd, args)
		if err != nil {
			return err
		}
		return check(cmd, rest)
	}
}

// splitFreeText applies the known flags at the front of args and returns the
// operands. The first word that is not a known flag, or everything after
// "--", is an operand, so "-buy milk" is task text and so is a "--help" that
// follows an operand. A leading --help or -h returns pflag.ErrHelp, which
// cobra turns into the command's help. Applying the same flags twice is
// harmless, so RunE calls it again to recover the operands.
func splitFreeText(cmd *cobra.Command, args []string) ([]string, error) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return args[i+1:], nil
		}

		f, value, hasValue := lookupFlag(cmd, arg)
		if f == nil {
			return args[i:], nil
		}
		if f.Name == "help" {
			return nil, pflag.ErrHelp
		}
		if !hasValue {
			switch {
			case f.NoOptDefVal != "":
				value = f.NoOptDefVal
			case i+1 < len(args):
				i++
				value = args[i]
			default:
				return nil, fmt.Errorf("%w: flag needs an argument: %s", ErrBadFlag, arg)
			}
		}
		if err := f.Value.Set(value); err != nil {
			return nil, fmt.Errorf("%w: invalid argument %q for %s: %w", ErrBadFlag, value, arg, err)
		}
		f.Changed = true
	}
	return nil, nil
}

// lookupFlag resolves "--name", "--name=value" and "-x" against the command's
// own and inherited flags. Anything else yields a nil flag.
func lookupFlag(cmd *cobra.Command, arg string) (f *pflag.Flag, value string, hasValue bool) {
	switch {
	case strings.HasPrefix(arg, "--") && len(arg) > 2:
		name := arg[2:]
		name, value, hasValue = strings.Cut(name, "=")
		f = cmd.Flags().Lookup(name)
		if f == nil {
			f = cmd.InheritedFlags().Lookup(name)
		}
	case len(arg) == 2 && arg[0] == '-' && arg[1] != '-':
		short := arg[1:]
		f = cmd.Flags().ShorthandLookup(short)
		if f == nil {
			f = cmd.InheritedFlags().ShorthandLookup(short)
		}
	}
	return f, value, hasValue
}

// parseID converts a task id operand to an integer.
func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrInvalidID, s)
	}
	return id, nil
}

// parseIDs converts every operand before any store call, so one bad id
// rejects the whole command.
func parseIDs(args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := parseID(arg)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

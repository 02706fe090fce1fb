package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mesh-intelligence/todo/pkg/types"
)

// ANSI SGR sequences for strikethrough text.
const (
	ansiStrike = "\x1b[9m"
	ansiReset  = "\x1b[0m"
)

// formatTask renders a task as "{id}. {text}". Done tasks are struck through,
// or suffixed with "(done)" when plain is set.
func formatTask(t types.Task, plain bool) string {
	text := t.Text
	if t.Done {
		if plain {
			text += " (done)"
		} else {
			text = ansiStrike + text + ansiReset
		}
	}
	return fmt.Sprintf("%d. %s", t.ID, text)
}

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

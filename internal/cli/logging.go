package cli

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// newLogger builds the invocation logger. Every entry carries a "run" field
// so lines from one invocation can be grouped.
func newLogger(w io.Writer, level string, debug bool) (*log.Entry, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", cfgKeyLogLevel, level, err)
	}
	if debug {
		lvl = log.DebugLevel
	}

	l := log.New()
	l.SetOutput(w)
	l.SetLevel(lvl)
	l.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	return l.WithField("run", runID()), nil
}

// runID returns a UUID v7 for the invocation.
func runID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/todo/pkg/types"
)

func TestFormatTask(t *testing.T) {
	tests := []struct {
		name  string
		task  types.Task
		plain bool
		want  string
	}{
		{
			name: "open task",
			task: types.Task{ID: 1, Text: "buy milk"},
			want: "1. buy milk",
		},
		{
			name: "done task is struck through",
			task: types.Task{ID: 3, Text: "x", Done: true},
			want: "3. \x1b[9mx\x1b[0m",
		},
		{
			name:  "done task in plain mode",
			task:  types.Task{ID: 3, Text: "x", Done: true},
			plain: true,
			want:  "3. x (done)",
		},
		{
			name:  "open task in plain mode",
			task:  types.Task{ID: 12, Text: "y"},
			plain: true,
			want:  "12. y",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatTask(tt.task, tt.plain))
		})
	}
}

func TestParseIDs(t *testing.T) {
	ids, err := parseIDs([]string{"1", "20", "-3"})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 20, -3}, ids)

	_, err = parseIDs([]string{"1", "2x"})
	assert.ErrorIs(t, err, ErrInvalidID)
	assert.Contains(t, err.Error(), `"2x"`)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, map[string]int{"count": 2}))
	assert.Equal(t, "{\n  \"count\": 2\n}\n", buf.String())
}

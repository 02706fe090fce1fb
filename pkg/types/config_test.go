package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "empty path returns ErrDBPathEmpty",
			config:  Config{DBPath: ""},
			wantErr: ErrDBPathEmpty,
		},
		{
			name:    "dot returns ErrDBPathIsDir",
			config:  Config{DBPath: "."},
			wantErr: ErrDBPathIsDir,
		},
		{
			name:    "parent dir returns ErrDBPathIsDir",
			config:  Config{DBPath: ".."},
			wantErr: ErrDBPathIsDir,
		},
		{
			name:    "relative file is valid",
			config:  Config{DBPath: DefaultDBFile},
			wantErr: nil,
		},
		{
			name:    "nested file is valid",
			config:  Config{DBPath: "/tmp/todo/tasks.db"},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

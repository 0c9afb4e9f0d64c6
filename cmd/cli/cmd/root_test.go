package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeout(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "empty uses default", input: "", want: 2 * time.Minute},
		{name: "duration", input: "30s", want: 30 * time.Second},
		{name: "hours", input: "1h", want: time.Hour},
		{name: "bare seconds", input: "120", want: 120 * time.Second},
		{name: "invalid", input: "soon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTimeout(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid timeout format")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRootCmd_RegistersCommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range RootCmd().Commands() {
		names[c.Name()] = true
	}

	assert.True(t, names["params"])
	assert.True(t, names["invoke"])
	assert.True(t, names["version"])
}

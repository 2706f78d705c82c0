package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/fspath/errors"
)

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    *Config
		wantErr bool
	}{
		{
			name:  "empty",
			input: "",
			want:  &Config{},
		},
		{
			name: "all fields",
			input: `grammar: darwin
log_level: warn
max_links: 12
working_dir: /srv/app
`,
			want: &Config{
				Grammar:    "darwin",
				LogLevel:   "warn",
				MaxLinks:   12,
				WorkingDir: "/srv/app",
			},
		},
		{
			name:    "unknown key",
			input:   "grammer: posix\n",
			wantErr: true,
		},
		{
			name:    "malformed yaml",
			input:   "grammar: [posix\n",
			wantErr: true,
		},
		{
			name:    "unknown grammar",
			input:   "grammar: plan9\n",
			wantErr: true,
		},
		{
			name:    "unknown log level",
			input:   "log_level: loud\n",
			wantErr: true,
		},
		{
			name:    "negative max links",
			input:   "max_links: -1\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseConfig([]byte(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadConfig_AddsPath(t *testing.T) {
	path := writeConfig(t, "max_links: -5\n")

	_, err := LoadConfig(path)
	require.Error(t, err)

	var perr errors.PlatformError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, errors.CodeInvalidConfig, perr.Code())
	assert.Equal(t, path, perr.Context()["path"])
}

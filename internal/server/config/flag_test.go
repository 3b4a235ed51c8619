package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected *Config
		name     string
		args     []string
	}{
		{
			name: "all flags",
			args: []string{"cmd",
				"-a", "127.0.0.1:9090", "-d", "db", "-s", "secret",
				"-e", "production", "-b", "12", "-v", "15",
				"-m", "smtp.example:25", "-f", "auth@example.com",
			},
			expected: &Config{
				EndpointAddr:         "127.0.0.1:9090",
				DatabaseDSN:          "db",
				SessionSecret:        "secret",
				Environment:          "production",
				BcryptCost:           12,
				CodeValidityDuration: 15 * time.Minute,
				SMTPAddr:             "smtp.example:25",
				MailFrom:             "auth@example.com",
			},
		},
		{
			name: "no flags keeps zero values",
			args: []string{"cmd"},
			expected: &Config{
				CodeValidityDuration: 0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)
			os.Args = tt.args

			config := &Config{}
			require.NotPanics(t, func() { parseFlags(config) })
			assert.Equal(t, tt.expected, config)
		})
	}
}

package config

import (
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigEnv(t *testing.T) {
	assert.Equal(t, "INPUTMUX_CONFIG", ConfigEnv())
}

func TestCLIParses(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		command string
		check   func(t *testing.T, cli *CLI)
	}{
		{
			name:    "listen defaults",
			args:    []string{"listen"},
			command: "listen",
			check: func(t *testing.T, cli *CLI) {
				assert.Equal(t, "auto", cli.Listen.Format)
				assert.Equal(t, "info", cli.Log.Level)
				assert.Equal(t, "inputmux virtual input", cli.Backend.VirtualDeviceName)
			},
		},
		{
			name:    "backend flags",
			args:    []string{"--backend.devices=/dev/input/event3,/dev/input/event5", "--backend.grab", "listen", "--count=3"},
			command: "listen",
			check: func(t *testing.T, cli *CLI) {
				assert.Equal(t, []string{"/dev/input/event3", "/dev/input/event5"}, cli.Backend.Devices)
				assert.True(t, cli.Backend.Grab)
				assert.Equal(t, 3, cli.Listen.Count)
			},
		},
		{
			name: "inject events",
			args: []string{"inject", "key:down:a", "scroll:-10"},
			check: func(t *testing.T, cli *CLI) {
				assert.Equal(t, []string{"key:down:a", "scroll:-10"}, cli.Inject.Events)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cli CLI
			parser, err := kong.New(&cli, kong.Exit(func(int) { t.Fatal("unexpected exit") }))
			require.NoError(t, err)
			ctx, err := parser.Parse(tt.args)
			require.NoError(t, err)
			if tt.command != "" {
				assert.Equal(t, tt.command, ctx.Command())
			}
			tt.check(t, &cli)
		})
	}
}

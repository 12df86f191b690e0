package configpaths

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in     string
		want   Format
		wantOK bool
	}{
		{in: "json", want: JSON, wantOK: true},
		{in: ".YML", want: YAML, wantOK: true},
		{in: "yaml", want: YAML, wantOK: true},
		{in: ".toml", want: TOML, wantOK: true},
		{in: "ini"},
		{in: ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseFormat(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Equal(t, JSON, FormatOf("settings.conf"))
	assert.Equal(t, "yaml", YAML.Ext())
}

func TestDefaultNamedConfigPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses XDG_CONFIG_HOME")
	}
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	got, err := DefaultNamedConfigPath("listen", YAML)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(xdg, "inputmux", "listen.yaml"), got)
}

func TestCandidates(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	tests := []struct {
		name     string
		userPath string
		format   Format
	}{
		{name: "json", userPath: "my.json", format: JSON},
		{name: "yml", userPath: "my.yml", format: YAML},
		{name: "toml", userPath: "my.toml", format: TOML},
		{name: "unknown extension", userPath: "my.conf", format: JSON},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Candidates(tt.userPath)
			require.NotEmpty(t, got[tt.format])
			assert.Equal(t, tt.userPath, got[tt.format][0])
		})
	}

	got := Candidates("")
	assert.Equal(t, filepath.Join(wd, "inputmux.json"), got[JSON][0])
	assert.Contains(t, got[YAML], filepath.Join(wd, "inject.yml"))
	assert.Contains(t, got[TOML], filepath.Join(wd, "config.toml"))
	if runtime.GOOS != "windows" {
		assert.Contains(t, got[JSON], filepath.Join("/etc", "inputmux", "listen.json"))
		assert.NotContains(t, got[JSON], filepath.Join("/etc", "inputmux", "inputmux.json"))
	}
}

func TestUserConfigPath(t *testing.T) {
	env := func(v string) func(string) (string, bool) {
		return func(name string) (string, bool) {
			if name == "INPUTMUX_CONFIG" && v != "" {
				return v, true
			}
			return "", false
		}
	}
	tests := []struct {
		name string
		args []string
		env  string
		want string
	}{
		{name: "separate value", args: []string{"listen", "--config", "a.yaml"}, want: "a.yaml"},
		{name: "inline value", args: []string{"--config=b.toml", "keys"}, want: "b.toml", env: "c.json"},
		{name: "env fallback", args: []string{"listen"}, env: "c.json", want: "c.json"},
		{name: "after terminator", args: []string{"inject", "--", "--config", "x"}},
		{name: "dangling flag", args: []string{"--config"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserConfigPath(tt.args, "INPUTMUX_CONFIG", env(tt.env)))
		})
	}
}

func TestEnsureDir(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "a", "b", "config.json")
	require.NoError(t, EnsureDir(dest))
	info, err := os.Stat(filepath.Dir(dest))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

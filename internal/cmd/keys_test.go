package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	toml "github.com/pelletier/go-toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v3"

	"github.com/Alia5/inputmux/keycode"
)

func TestKeysFormats(t *testing.T) {
	tests := []struct {
		format string
		decode func([]byte, any) error
	}{
		{format: "json", decode: json.Unmarshal},
		{format: "yaml", decode: yaml.Unmarshal},
		{format: "toml", decode: toml.Unmarshal},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, (&Keys{Format: tt.format, Platform: "linux"}).print(&out))

			var got keyTable
			require.NoError(t, tt.decode(out.Bytes(), &got))
			assert.Equal(t, "linux", got.Platform)
			assert.Len(t, got.Keys, keycode.Linux.Len())
			assert.Contains(t, got.Keys, keyEntry{Name: "a", Code: 30})
		})
	}
}

func TestKeysText(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, (&Keys{Format: "text", Platform: "windows"}).print(&out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, keycode.Windows.Len()+1)
	assert.Contains(t, lines[0], "windows CODE")
	assert.Contains(t, out.String(), "0x41")
}

func TestKeysUnknownPlatform(t *testing.T) {
	err := (&Keys{Format: "json", Platform: "plan9"}).print(&bytes.Buffer{})
	assert.Error(t, err)
}

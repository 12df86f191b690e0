package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"text/tabwriter"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"

	"github.com/Alia5/inputmux/keycode"
)

// Keys prints a platform key-code table.
type Keys struct {
	Format   string `help:"Output format" default:"text" enum:"text,json,yaml,toml" env:"INPUTMUX_KEYS_FORMAT"`
	Platform string `help:"Table to print" default:"current" enum:"current,darwin,linux,windows" env:"INPUTMUX_KEYS_PLATFORM"`
}

type keyEntry struct {
	Name string `json:"name" yaml:"name" toml:"name"`
	Code uint16 `json:"code" yaml:"code" toml:"code"`
}

type keyTable struct {
	Platform string     `json:"platform" yaml:"platform" toml:"platform"`
	Keys     []keyEntry `json:"keys" yaml:"keys" toml:"keys"`
}

// Run is called by Kong when the keys command is executed.
func (k *Keys) Run() error {
	return k.print(os.Stdout)
}

func (k *Keys) print(out io.Writer) error {
	goos := k.Platform
	if goos == "" || goos == "current" {
		goos = runtime.GOOS
	}
	t, ok := keycode.ForPlatform(goos)
	if !ok {
		return fmt.Errorf("no key table for %s", goos)
	}
	table := newKeyTable(t)

	var data []byte
	var err error
	switch k.Format {
	case "json":
		data, err = json.MarshalIndent(table, "", "  ")
		data = append(data, '\n')
	case "yaml":
		data, err = yaml.Marshal(table)
	case "toml":
		data, err = toml.Marshal(table)
	default:
		return printKeyTable(out, table)
	}
	if err != nil {
		return fmt.Errorf("encode %s key table: %w", table.Platform, err)
	}
	_, err = out.Write(data)
	return err
}

func newKeyTable(t *keycode.Table) keyTable {
	out := keyTable{Platform: t.Name()}
	for _, key := range t.Keys() {
		code, _ := t.ToNative(key)
		out.Keys = append(out.Keys, keyEntry{Name: key.String(), Code: uint16(code)})
	}
	return out
}

func printKeyTable(out io.Writer, t keyTable) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "KEY\t%s CODE\n", t.Platform)
	for _, e := range t.Keys {
		fmt.Fprintf(w, "%s\t0x%02X\n", e.Name, e.Code)
	}
	return w.Flush()
}

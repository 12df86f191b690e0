// Package config declares the inputmux command line.
package config

import (
	"reflect"

	"github.com/Alia5/inputmux/internal/cmd"
)

// CLI is the root Kong grammar. Flags can also be set from environment
// variables and JSON, YAML or TOML config files.
type CLI struct {
	ConfigFile string `name:"config" help:"Path to a JSON, YAML or TOML config file" env:"INPUTMUX_CONFIG" type:"path"`

	Log     cmd.LogConfig     `embed:"" prefix:"log."`
	Backend cmd.BackendConfig `embed:"" prefix:"backend."`

	Listen    cmd.Listen        `cmd:"" help:"Print captured input events until interrupted"`
	Inject    cmd.Inject        `cmd:"" help:"Synthesize input events"`
	Keys      cmd.Keys          `cmd:"" help:"Print the key-code table of a platform"`
	Config    cmd.ConfigCommand `cmd:"" help:"Manage configuration files"`
	Install   cmd.Install       `cmd:"" help:"Install the udev rule that grants the input group access to uinput (Linux)"`
	Uninstall cmd.Uninstall     `cmd:"" help:"Remove the udev rule installed by install (Linux)"`
}

// ConfigEnv returns the environment variable Kong reads --config from.
func ConfigEnv() string {
	f, _ := reflect.TypeOf(CLI{}).FieldByName("ConfigFile")
	return f.Tag.Get("env")
}

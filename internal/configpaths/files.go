// Package configpaths locates inputmux configuration files.
package configpaths

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// appName names the per-user and system-wide configuration directories.
const appName = "inputmux"

// baseNames are the config file names searched in every candidate directory.
var baseNames = []string{"config", "listen", "inject"}

// Format is a config file encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
)

// Formats lists every supported encoding in loading priority order.
var Formats = []Format{JSON, YAML, TOML}

var extensions = map[Format][]string{
	JSON: {".json"},
	YAML: {".yaml", ".yml"},
	TOML: {".toml"},
}

// ParseFormat accepts a format name or a file extension, with or without
// the leading dot.
func ParseFormat(s string) (Format, bool) {
	s = strings.ToLower(strings.TrimPrefix(s, "."))
	for _, f := range Formats {
		for _, ext := range extensions[f] {
			if s == ext[1:] {
				return f, true
			}
		}
	}
	return "", false
}

// FormatOf picks the format for a file by extension. Unknown extensions
// are read as JSON.
func FormatOf(path string) Format {
	if f, ok := ParseFormat(filepath.Ext(path)); ok {
		return f
	}
	return JSON
}

// Ext returns the canonical file extension of f, without the dot.
func (f Format) Ext() string {
	return extensions[f][0][1:]
}

// DefaultConfigDir returns the platform-specific configuration directory for inputmux.
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		if appdata := os.Getenv("AppData"); appdata != "" {
			return filepath.Join(appdata, appName), nil
		}
		return "", errors.New("AppData not set")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName), nil
		}
		if home := os.Getenv("HOME"); home != "" {
			return filepath.Join(home, ".config", appName), nil
		}
		return "", errors.New("HOME not set")
	}
}

// DefaultNamedConfigPath returns the per-user config file path for a base
// name such as "listen".
func DefaultNamedConfigPath(baseName string, format Format) (string, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, baseName+"."+format.Ext()), nil
}

// EnsureDir ensures the directory for a given file path exists.
func EnsureDir(filePath string) error {
	return os.MkdirAll(filepath.Dir(filePath), 0o755)
}

// Candidates lists the config files to try per format, highest priority
// first: userPath, then the working directory, the per-user directory and
// /etc/inputmux on unix.
func Candidates(userPath string) map[Format][]string {
	out := map[Format][]string{}
	if userPath != "" {
		f := FormatOf(userPath)
		out[f] = append(out[f], userPath)
	}

	var dirs []string
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}
	if dir, err := DefaultConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	if runtime.GOOS != "windows" {
		dirs = append(dirs, filepath.Join("/etc", appName))
	}

	for i, dir := range dirs {
		bases := baseNames
		if i == 0 {
			// inputmux.json and friends next to the working directory.
			bases = append([]string{appName}, baseNames...)
		}
		for _, base := range bases {
			for _, f := range Formats {
				for _, ext := range extensions[f] {
					out[f] = append(out[f], filepath.Join(dir, base+ext))
				}
			}
		}
	}
	return out
}

// UserConfigPath finds the config file named on the command line as
// --config or --config=, falling back to the env variable. Config files have
// to be known before flags are parsed, so this runs ahead of the parser.
func UserConfigPath(args []string, env string, lookupEnv func(string) (string, bool)) string {
	for i, a := range args {
		if a == "--" {
			break
		}
		if v, ok := strings.CutPrefix(a, "--config="); ok {
			return v
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	if v, ok := lookupEnv(env); ok {
		return v
	}
	return ""
}

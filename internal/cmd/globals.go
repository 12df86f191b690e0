package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Alia5/inputmux/backend"
	"github.com/Alia5/inputmux/internal/log"
)

// LogConfig holds the --log.* flags shared by every command.
type LogConfig struct {
	Level   string `help:"Log level" default:"info" enum:"trace,debug,info,warn,error" env:"INPUTMUX_LOG_LEVEL"`
	File    string `help:"Also write logs to this file" env:"INPUTMUX_LOG_FILE"`
	RawFile string `help:"Write the native event trace to this file (stderr at trace level when unset)" env:"INPUTMUX_LOG_RAW_FILE"`
}

// RawLogger opens the native event trace. It goes to RawFile when set, to
// fallback at trace level and nowhere otherwise. The closer is nil unless a
// file was opened.
func (l LogConfig) RawLogger(fallback io.Writer) (log.RawLogger, io.Closer, error) {
	switch {
	case l.RawFile != "":
		f, err := os.OpenFile(l.RawFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			return log.NewRaw(nil), nil, fmt.Errorf("open raw log file: %w", err)
		}
		return log.NewRaw(f), f, nil
	case l.Level == "trace":
		return log.NewRaw(fallback), nil, nil
	default:
		return log.NewRaw(nil), nil, nil
	}
}

// BackendConfig holds the --backend.* flags.
type BackendConfig struct {
	Devices           []string `help:"Input device paths to capture on Linux (default: every keyboard and pointer)" sep:"," env:"INPUTMUX_BACKEND_DEVICES"`
	Grab              bool     `help:"Grab captured Linux devices exclusively" default:"false" env:"INPUTMUX_BACKEND_GRAB"`
	VirtualDeviceName string   `help:"Name of the Linux uinput injection device" default:"inputmux virtual input" env:"INPUTMUX_BACKEND_VIRTUAL_DEVICE_NAME"`
}

// Options converts the flags into backend options.
func (b BackendConfig) Options(logger *slog.Logger, raw log.RawLogger) backend.Options {
	return backend.Options{
		Devices:           b.Devices,
		Grab:              b.Grab,
		VirtualDeviceName: b.VirtualDeviceName,
		Logger:            logger,
		Raw:               raw,
	}
}

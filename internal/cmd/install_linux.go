//go:build linux

package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

const (
	udevRulePath    = "/etc/udev/rules.d/60-inputmux.rules"
	modulesLoadPath = "/etc/modules-load.d/inputmux.conf"
)

const udevRule = `# Installed by %s
KERNEL=="uinput", SUBSYSTEM=="misc", GROUP="input", MODE="0660", OPTIONS+="static_node=uinput"
`

func install(logger *slog.Logger) error {
	exePath, err := currentExecutable()
	if err != nil {
		return err
	}

	if err := os.WriteFile(udevRulePath, []byte(fmt.Sprintf(udevRule, exePath)), 0o644); err != nil {
		return err
	}
	if err := os.WriteFile(modulesLoadPath, []byte("uinput\n"), 0o644); err != nil {
		return err
	}

	steps := [][]string{
		{"control", "--reload-rules"},
		{"trigger", "--subsystem-match=misc", "--sysname-match=uinput"},
	}
	for _, args := range steps {
		if err := runUdevadm(args...); err != nil {
			return err
		}
	}

	logger.Info("inputmux udev rule installed", "rule", udevRulePath, "modules", modulesLoadPath)
	logger.Info("Add your user to the input group to capture and inject without root", "command", "usermod -aG input $USER")
	return nil
}

func uninstall(logger *slog.Logger) error {
	var errs []error

	for _, p := range []string{udevRulePath, modulesLoadPath} {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			errs = append(errs, err)
		}
	}
	if err := runUdevadm("control", "--reload-rules"); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	logger.Info("inputmux udev rule removed", "rule", udevRulePath)
	return nil
}

func runUdevadm(args ...string) error {
	cmd := exec.Command("udevadm", args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("udevadm %s failed: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(string(output)))
	}
	return nil
}

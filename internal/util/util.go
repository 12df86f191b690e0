//go:build !windows

// Package util holds small host checks used by the command line.
package util

// IsRunFromGUI reports whether the process was started by double-clicking
// it rather than from a shell. Only Windows can tell.
func IsRunFromGUI() bool {
	return false
}

//go:build !darwin && !linux && !windows

package backend

import (
	"fmt"
	"runtime"
)

func newPlatform(Options) (Platform, error) {
	return nil, fmt.Errorf("%w: %s", ErrUnsupported, runtime.GOOS)
}

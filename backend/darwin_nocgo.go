//go:build darwin && !cgo

package backend

import "fmt"

func newPlatform(Options) (Platform, error) {
	return nil, fmt.Errorf("%w: darwin requires cgo", ErrUnsupported)
}

package backend

import (
	"errors"
	"strings"
)

var (
	// ErrSurfaceLost indicates the surface was lost and must be reconfigured
	// before another frame can be acquired.
	ErrSurfaceLost = errors.New("surface lost")

	// ErrSurfaceOutdated indicates the surface no longer matches the window,
	// typically mid-resize, and must be reconfigured.
	ErrSurfaceOutdated = errors.New("surface outdated")

	// ErrSurfaceTimeout indicates the next surface texture was not available
	// in time. The frame should be skipped.
	ErrSurfaceTimeout = errors.New("surface acquire timed out")

	// ErrOutOfMemory indicates the GPU is out of memory. Not recoverable.
	ErrOutOfMemory = errors.New("surface out of memory")
)

// classifySurfaceError maps a surface acquisition failure onto the sentinel
// errors above so callers can branch with errors.Is. Unrecognized failures
// pass through unchanged.
func classifySurfaceError(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "out of memory") || strings.Contains(msg, "outofmemory"):
		return ErrOutOfMemory
	case strings.Contains(msg, "outdated"):
		return ErrSurfaceOutdated
	case strings.Contains(msg, "lost"):
		return ErrSurfaceLost
	case strings.Contains(msg, "timeout") || strings.Contains(msg, "timed out"):
		return ErrSurfaceTimeout
	default:
		return err
	}
}

package canopy

import "errors"

var (
	// ErrRender wraps failures reported by a RenderBackend.
	ErrRender = errors.New("render")
	// ErrNoFocus is returned by operations that need a focused node when
	// none exists under the given root.
	ErrNoFocus = errors.New("no focus")
)

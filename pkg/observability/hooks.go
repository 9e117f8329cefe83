// Package observability provides hooks for logging and metrics around design
// files and edits.
//
// Libraries and commands call the registered hooks; the binary decides what
// they do. The defaults are no-ops, so nothing is emitted unless main
// registers an implementation:
//
//	func main() {
//	    observability.SetFileHooks(myFileHooks{})
//	    observability.SetEditHooks(myEditHooks{})
//	    // ... run application
//	}
//
// Callers time the operation and report it once it finishes:
//
//	start := time.Now()
//	s, err := io.ImportJSON(path)
//	observability.File().OnImport(ctx, path, time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// File Hooks
// =============================================================================

// FileHooks receives events when design files are read or written.
type FileHooks interface {
	// OnImport records a design file read. err is nil on success.
	OnImport(ctx context.Context, path string, duration time.Duration, err error)

	// OnExport records a design file write. err is nil on success.
	OnExport(ctx context.Context, path string, duration time.Duration, err error)
}

// =============================================================================
// Edit Hooks
// =============================================================================

// EditHooks receives events when a change is applied to a design.
type EditHooks interface {
	// OnEdit records one change. err is the rejection, or nil if the change
	// was accepted.
	OnEdit(ctx context.Context, op string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopFileHooks is a no-op implementation of FileHooks.
type NoopFileHooks struct{}

func (NoopFileHooks) OnImport(context.Context, string, time.Duration, error) {}
func (NoopFileHooks) OnExport(context.Context, string, time.Duration, error) {}

// NoopEditHooks is a no-op implementation of EditHooks.
type NoopEditHooks struct{}

func (NoopEditHooks) OnEdit(context.Context, string, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	fileHooks FileHooks = NoopFileHooks{}
	editHooks EditHooks = NoopEditHooks{}
	hooksMu   sync.RWMutex
)

// SetFileHooks registers custom file hooks. Nil is ignored.
func SetFileHooks(h FileHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		fileHooks = h
	}
}

// SetEditHooks registers custom edit hooks. Nil is ignored.
func SetEditHooks(h EditHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		editHooks = h
	}
}

// File returns the registered file hooks.
func File() FileHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return fileHooks
}

// Edit returns the registered edit hooks.
func Edit() EditHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return editHooks
}

// Reset restores all hooks to their no-op defaults.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	fileHooks = NoopFileHooks{}
	editHooks = NoopEditHooks{}
}

package cli

import (
	"context"
	"time"

	"github.com/matzehuels/glassblock/pkg/observability"
)

// LogHooks reports file and edit events to the logger carried by the
// command context at debug level. Failed saves log at warn.
type LogHooks struct{}

var (
	_ observability.FileHooks = LogHooks{}
	_ observability.EditHooks = LogHooks{}
)

// RegisterLogHooks installs LogHooks as the global file and edit hooks.
func RegisterLogHooks() {
	observability.SetFileHooks(LogHooks{})
	observability.SetEditHooks(LogHooks{})
}

func (LogHooks) OnImport(ctx context.Context, path string, d time.Duration, err error) {
	logger := loggerFromContext(ctx)
	if err != nil {
		logger.Debug("design load failed", "path", path, "err", err)
		return
	}
	logger.Debug("design loaded", "path", path, "took", d.Round(time.Microsecond))
}

func (LogHooks) OnExport(ctx context.Context, path string, d time.Duration, err error) {
	logger := loggerFromContext(ctx)
	if err != nil {
		logger.Warn("design save failed", "path", path, "err", err)
		return
	}
	logger.Debug("design saved", "path", path, "took", d.Round(time.Microsecond))
}

func (LogHooks) OnEdit(ctx context.Context, op string, err error) {
	logger := loggerFromContext(ctx)
	if err != nil {
		logger.Debug("edit rejected", "op", op, "err", err)
		return
	}
	logger.Debug("edit applied", "op", op)
}

package processor

import (
	"context"
	"fmt"

	"github.com/jmgilman/fileproc/logging"
)

// LogObserver writes one log record per event.
type LogObserver struct {
	logger *logging.Logger
}

// NewLogObserver returns an Observer that logs through l.
// A nil logger discards everything.
func NewLogObserver(l *logging.Logger) *LogObserver {
	return &LogObserver{logger: l}
}

// Observe logs e. Failures are logged at error level, everything else at info.
func (o *LogObserver) Observe(ctx context.Context, e Event) {
	l := o.logger.WithCall(e.CallID)

	switch e.Kind {
	case EventOpened:
		l.Info(ctx, fmt.Sprintf("file %q opened successfully", e.Name), "handle", e.Handle)
	case EventProcessing:
		l.Info(ctx, "processing file", "file", e.Name)
	case EventContent:
		l.Info(ctx, "file content", "file", e.Name, "content", e.Content)
	case EventSaved:
		l.Info(ctx, fmt.Sprintf("file %q processed and saved successfully", e.Name))
	case EventFailed:
		if e.Err == nil {
			l.Error(ctx, "processing failed")
			return
		}
		l.Error(ctx, e.Err.Message(),
			"code", string(e.Err.Code()),
			"classification", string(e.Err.Classification()),
			"error", e.Err.Error(),
		)
	case EventClosingHandle:
		l.Info(ctx, fmt.Sprintf("closing file handle for %q", e.Name), "handle", e.Handle)
	case EventNoHandle:
		l.Info(ctx, "no file handle to close")
	case EventCleanupComplete:
		l.Info(ctx, "cleanup complete")
	default:
		l.Warn(ctx, "unknown event", "kind", string(e.Kind))
	}
}

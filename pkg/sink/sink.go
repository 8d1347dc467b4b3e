package sink

import (
	"context"
	"errors"
	"fmt"

	"github.com/freebusy/freebusy/internal/config"
)

// ErrSinkUnavailable is the single failure kind a sink surfaces. The
// pipeline holds no partial output and performs no retry, so callers
// only need to know the write did not happen.
var ErrSinkUnavailable = errors.New("sink unavailable")

// Sink accepts a finished text report.
type Sink interface {
	Write(ctx context.Context, text string) error
}

// New selects the configured sink implementation.
func New(cfg config.Output) (Sink, error) {
	switch cfg.Target {
	case "clipboard":
		return NewClipboardSink(), nil
	case "file":
		return NewFileSink(cfg.Path), nil
	case "stdout":
		return NewStdoutSink(), nil
	default:
		return nil, fmt.Errorf("unknown output target %q", cfg.Target)
	}
}

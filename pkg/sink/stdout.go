package sink

import (
	"context"
	"fmt"
	"io"
	"os"
)

// StdoutSink writes the report to standard output.
type StdoutSink struct {
	out io.Writer
}

func NewStdoutSink() *StdoutSink {
	return &StdoutSink{out: os.Stdout}
}

func (s *StdoutSink) Write(ctx context.Context, text string) error {
	if _, err := io.WriteString(s.out, text); err != nil {
		return fmt.Errorf("%w: %v", ErrSinkUnavailable, err)
	}
	return nil
}

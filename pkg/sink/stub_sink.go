package sink

import (
	"context"
)

// StubSink records written reports for tests.
type StubSink struct {
	Written []string
	Err     error
}

func (s *StubSink) Write(ctx context.Context, text string) error {
	if s.Err != nil {
		return s.Err
	}
	s.Written = append(s.Written, text)
	return nil
}

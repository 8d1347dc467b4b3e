package sink

import (
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
)

// FileSink writes the report to a file, replacing previous content.
type FileSink struct {
	path string
}

func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

func (s *FileSink) Write(ctx context.Context, text string) error {
	if err := os.WriteFile(s.path, []byte(text), 0o644); err != nil {
		err := fmt.Errorf("%w: could not write %s: %v", ErrSinkUnavailable, s.path, err)
		log.Error(err)
		return err
	}
	log.Debugf("wrote %d bytes to %s", len(text), s.path)
	return nil
}

package sink

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	log "github.com/sirupsen/logrus"
)

// clipboardTools lists the platform clipboard commands in preference
// order: pbcopy on macOS, wl-copy on Wayland, xclip on X11.
var clipboardTools = [][]string{
	{"pbcopy"},
	{"wl-copy"},
	{"xclip", "-selection", "clipboard"},
}

// ClipboardSink pipes the report into the first clipboard tool found on
// PATH.
type ClipboardSink struct {
	lookPath func(file string) (string, error)
}

func NewClipboardSink() *ClipboardSink {
	return &ClipboardSink{lookPath: exec.LookPath}
}

func (s *ClipboardSink) Write(ctx context.Context, text string) error {
	for _, tool := range clipboardTools {
		path, err := s.lookPath(tool[0])
		if err != nil {
			continue
		}

		cmd := exec.CommandContext(ctx, path, tool[1:]...)
		cmd.Stdin = strings.NewReader(text)
		if err := cmd.Run(); err != nil {
			err := fmt.Errorf("%w: %s failed: %v", ErrSinkUnavailable, tool[0], err)
			log.Error(err)
			return err
		}
		log.Debugf("copied %d bytes to clipboard via %s", len(text), tool[0])
		return nil
	}

	return fmt.Errorf("%w: no clipboard tool found", ErrSinkUnavailable)
}

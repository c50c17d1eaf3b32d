package mbox

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	mboxlib "github.com/emersion/go-mbox"
)

// Export writes a copy of one message as a standalone mbox file under
// dir, named after the message ID, and returns the written path. The
// separator line is regenerated by the mbox writer; the source spool
// file is never touched.
func Export(msg *Message, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, exportName(msg))
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating export file %s: %w", path, err)
	}
	defer file.Close()

	from := msg.Sender()
	if from == "" {
		from = "unknown"
	}
	t := msg.Time()
	if t.IsZero() {
		t = time.Now()
	}

	w := mboxlib.NewWriter(file)
	mw, err := w.CreateMessage(from, t)
	if err != nil {
		return "", fmt.Errorf("writing export %s: %w", path, err)
	}
	if _, err := io.WriteString(mw, msg.Raw()); err != nil {
		return "", fmt.Errorf("writing export %s: %w", path, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("writing export %s: %w", path, err)
	}

	return path, nil
}

// exportName derives a filesystem-safe file name from the message ID.
func exportName(msg *Message) string {
	id := strings.Trim(msg.ID(), "<>")
	mapper := func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '.', r == '-', r == '_', r == '@':
			return r
		default:
			return '_'
		}
	}
	return strings.Map(mapper, id) + ".mbox"
}

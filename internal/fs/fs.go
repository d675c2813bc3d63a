// Package fs provides filesystem adapters that implement lint service
// interfaces.
package fs

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/eykd/robotslint-go/internal/textenc"
)

// StdinPath is the pseudo-path that reads document content from stdin.
const StdinPath = "-"

// SourceFile implements lint.SourceReader over the OS filesystem.
// Stdin holds the reader used for StdinPath; it defaults to os.Stdin.
type SourceFile struct {
	Stdin io.Reader
}

// ReadSource reads and decodes one robots.txt input to UTF-8 text.
func (r *SourceFile) ReadSource(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var raw []byte
	var err error
	if path == StdinPath {
		in := r.Stdin
		if in == nil {
			in = os.Stdin
		}
		raw, err = io.ReadAll(in)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	text, err := textenc.Decode(raw)
	if err != nil {
		return "", fmt.Errorf("decoding %s: %w", path, err)
	}
	return text, nil
}

// ReportFile implements lint.ReportWriter over the OS filesystem.
type ReportFile struct{}

// WriteReport writes serialized report data to the given path.
func (w *ReportFile) WriteReport(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}

// Package output delivers the assembled issue.
package output

import (
	"context"
	"fmt"
	"io"
	"os"

	"NewsletterDesk/internal/ports"
)

// Publisher writes the issue to a file, or to a writer when no path is set.
type Publisher struct {
	path   string
	writer io.Writer
}

var _ ports.Publisher = (*Publisher)(nil)

// NewPublisher writes to path; an empty path writes to w.
func NewPublisher(path string, w io.Writer) *Publisher {
	if w == nil {
		w = os.Stdout
	}
	return &Publisher{path: path, writer: w}
}

// Publish writes document followed by a newline.
func (p *Publisher) Publish(ctx context.Context, document string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload := document + "\n"
	if p.path == "" {
		if _, err := io.WriteString(p.writer, payload); err != nil {
			return fmt.Errorf("write document: %w", err)
		}
		return nil
	}

	if err := os.WriteFile(p.path, []byte(payload), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", p.path, err)
	}
	return nil
}

// Path reports the destination file, empty for the writer.
func (p *Publisher) Path() string {
	return p.path
}

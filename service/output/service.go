// Package output provides a service for rendering results to the console.
package output

import (
	"fmt"
	"io"

	"github.com/thirukguru/meta-info/model"
)

// NewService creates a new output service writing to w.
func NewService(w io.Writer) Service {
	return &service{w: w}
}

// RenderMetadata writes one "> <Label>: <value>" line per metadata field.
func (s *service) RenderMetadata(m model.BuildMetadata) error {
	for _, f := range m.Fields() {
		if _, err := fmt.Fprintf(s.w, "%s%s: %s\n", linePrefix, f.Label, f.Value); err != nil {
			return fmt.Errorf("failed to write %s: %w", f.Label, err)
		}
	}
	return nil
}

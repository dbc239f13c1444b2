package output

import (
	"io"

	"github.com/thirukguru/meta-info/model"
)

// linePrefix starts every rendered metadata line.
const linePrefix = "> "

type service struct {
	w io.Writer
}

// Service is the interface for rendering build metadata.
type Service interface {
	RenderMetadata(m model.BuildMetadata) error
}

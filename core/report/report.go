package report

import (
	"fmt"
	"io"

	"github.com/takaraplatform/apiparity/core/models"
)

// Renderer is an output sink for a consistency Result.
type Renderer interface {
	Render(w io.Writer, res *models.Result) error
}

// ForFormat maps a --format value to a renderer.
func ForFormat(format string, style Style) (Renderer, error) {
	switch format {
	case "text", "":
		return NewText(style), nil
	case "json":
		return &JSON{}, nil
	default:
		return nil, fmt.Errorf("unknown report format %q (want text or json)", format)
	}
}

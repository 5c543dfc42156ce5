package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Engine turns an HTML page into PDF bytes.
type Engine interface {
	PDF(ctx context.Context, html string) ([]byte, error)
}

// Renderer converts loosely marked-up resume text into a paginated PDF.
type Renderer struct {
	Engine Engine
}

// NewRenderer constructs a Renderer over the given engine.
func NewRenderer(engine Engine) *Renderer {
	return &Renderer{Engine: engine}
}

// Render classifies the text line by line, lays it out as a Letter-sized
// document, and writes the PDF to destPath. Unlike record persistence,
// failures here propagate to the caller.
func (r *Renderer) Render(ctx context.Context, text string, destPath string) error {
	html := BuildHTML(ClassifyAll(text))

	pdf, err := r.Engine.PDF(ctx, html)
	if err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(destPath, pdf, 0o644); err != nil {
		return fmt.Errorf("write pdf %s: %w", destPath, err)
	}
	return nil
}

package render

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

const engineTimeout = 60 * time.Second

// ChromeEngine prints HTML to PDF with a headless Chrome instance. Chrome
// or Chromium must be reachable in PATH, or via the configured binary path.
type ChromeEngine struct {
	execPath string
}

// NewChromeEngine constructs the engine. execPath is optional; when empty
// chromedp discovers the browser itself.
func NewChromeEngine(execPath string) *ChromeEngine {
	return &ChromeEngine{execPath: execPath}
}

// PDF renders the HTML page and returns the PDF bytes. Letter paper with
// Chrome's default margins; pagination is left to the print engine.
func (e *ChromeEngine) PDF(ctx context.Context, html string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if e.execPath != "" {
		opts = append(opts, chromedp.ExecPath(e.execPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancelRun := context.WithTimeout(browserCtx, engineTimeout)
	defer cancelRun()

	tmpDir, err := os.MkdirTemp("", "resume-render-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, err
	}

	var pdf []byte
	err = chromedp.Run(runCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPaperWidth(8.5).
				WithPaperHeight(11).
				WithPrintBackground(false).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdf, nil
}

var _ Engine = (*ChromeEngine)(nil)

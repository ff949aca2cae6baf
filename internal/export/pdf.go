// Package export serializes rendered resumes into downloadable files. PDF
// generation prints the same HTML used for live preview through a headless
// browser; there is no separate print pipeline.
package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/sirupsen/logrus"

	"github.com/openresume/resume-builder/internal/rendering"
	"github.com/openresume/resume-builder/internal/types"
)

// DefaultTimeout bounds a single headless-browser print.
const DefaultTimeout = 60 * time.Second

// ErrExportInFlight is returned while a previous PDF generation is still
// running. Exports are single-flight: no queue, and an in-flight print
// cannot be aborted.
var ErrExportInFlight = errors.New("a PDF export is already in progress")

// PDFExporter prints resume documents to PDF with headless Chrome.
type PDFExporter struct {
	chromePath string
	timeout    time.Duration
	log        logrus.FieldLogger
	busy       atomic.Bool
}

// Option configures a PDFExporter.
type Option func(*PDFExporter)

// WithChromePath points the exporter at a specific Chrome/Chromium binary.
func WithChromePath(path string) Option {
	return func(e *PDFExporter) { e.chromePath = path }
}

// WithTimeout overrides the per-print timeout.
func WithTimeout(d time.Duration) Option {
	return func(e *PDFExporter) { e.timeout = d }
}

// WithLogger routes diagnostics to the given logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(e *PDFExporter) { e.log = log }
}

// NewPDFExporter creates an exporter. CHROME_PATH in the environment is
// honored unless a path is set explicitly.
func NewPDFExporter(opts ...Option) *PDFExporter {
	e := &PDFExporter{
		chromePath: os.Getenv("CHROME_PATH"),
		timeout:    DefaultTimeout,
		log:        logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Busy reports whether a print is currently in flight.
func (e *PDFExporter) Busy() bool {
	return e.busy.Load()
}

// Export renders the record with its embedded template selector and prints it
// to PDF bytes. A failure leaves no partial output; the caller simply returns
// to its idle state.
func (e *PDFExporter) Export(ctx context.Context, data *types.ResumeData) ([]byte, error) {
	if !e.busy.CompareAndSwap(false, true) {
		return nil, ErrExportInFlight
	}
	defer e.busy.Store(false)

	html, err := rendering.Render(data)
	if err != nil {
		e.log.WithError(err).Error("resume rendering failed")
		return nil, err
	}

	size := types.DefaultPaperSize
	if data != nil {
		size = types.NormalizePaperSize(data.PaperSize)
	}

	pdf, err := e.printHTML(ctx, html, size)
	if err != nil {
		e.log.WithError(err).Error("PDF generation failed")
		return nil, err
	}
	return pdf, nil
}

// ExportFile prints the record and writes it into dir under the derived
// filename, returning the full path.
func (e *PDFExporter) ExportFile(ctx context.Context, data *types.ResumeData, dir string) (string, error) {
	pdf, err := e.Export(ctx, data)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, PDFFilename(data))
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return "", fmt.Errorf("failed to write PDF file: %w", err)
	}
	return path, nil
}

// printHTML loads the document in a headless browser and prints it at the
// given paper size.
func (e *PDFExporter) printHTML(ctx context.Context, html string, size types.PaperSize) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if e.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(e.chromePath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	browserCtx, cancelTimeout := context.WithTimeout(browserCtx, e.timeout)
	defer cancelTimeout()

	// The document references no external assets, so it can be served from
	// a temp file rather than a local server.
	tmpDir, err := os.MkdirTemp("", "resume-")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, fmt.Errorf("failed to stage HTML: %w", err)
	}

	width, height := size.Dimensions()

	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var printErr error
			pdf, _, printErr = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(width).
				WithPaperHeight(height).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return printErr
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("browser print failed: %w", err)
	}
	return pdf, nil
}

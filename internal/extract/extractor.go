package extract

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"code.sajari.com/docconv"

	"github.com/recluta/recluta-backend/constants"
	"github.com/recluta/recluta-backend/internal/common"
)

type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	TesseractLang string // default "eng"
	DPI           int    // rasterization DPI for image-only PDFs, default 300
	MaxPages      int    // 0 = no limit
}

// Result is the tagged outcome of one extraction: either Text is usable or
// Failure carries the reason the engine degraded. A failed extraction is data,
// not an error, so a bad file never aborts the rest of its batch.
type Result struct {
	Text     string
	Method   string // "pdf-text" | "pdf-ocr" | "docx"
	Pages    int
	Duration time.Duration
	Warnings []string
	Failure  string
}

// Failed reports whether the extraction degraded into an error message.
func (r Result) Failed() bool { return r.Failure != "" }

// Body returns the text to persist for this result: the extracted text, or the
// failure message when extraction degraded.
func (r Result) Body() string {
	if r.Failed() {
		return r.Failure
	}
	return r.Text
}

type Extractor struct {
	cfg         Config
	runner      Runner
	convertDocx func(r io.Reader) (string, error)
	logger      *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	return &Extractor{
		cfg:    cfg,
		runner: execRunner{},
		convertDocx: func(r io.Reader) (string, error) {
			body, _, err := docconv.ConvertDocx(r)
			return body, err
		},
		logger: logger,
	}
}

// Extract produces plain text from raw document bytes, picking a strategy
// based on the declared extension. Unsupported extensions are the only hard
// error; engine failures are captured on the Result instead.
func (e *Extractor) Extract(ctx context.Context, content []byte, ext string) (Result, error) {
	start := time.Now()
	format := constants.MapExtToFormat(ext)
	e.logger.Debug("extract.start", "ext", ext, "format", format, "bytes", len(content))

	switch format {
	case constants.PDF:
		res := e.extractPDF(ctx, content)
		res.Duration = time.Since(start)
		return res, nil
	case constants.DOCX:
		res := e.extractDocx(content)
		res.Duration = time.Since(start)
		return res, nil
	default:
		e.logger.Error("extract.unsupported_extension", "extension", ext)
		return Result{}, fmt.Errorf("%w: %q", common.ErrUnsupportedFormat, ext)
	}
}

// extractPDF tries the embedded text layer first; a PDF whose concatenated,
// trimmed text is non-empty is treated as text-native and returned as-is.
// Otherwise the document is assumed image-only and every page is rasterized
// and OCRed independently.
func (e *Extractor) extractPDF(ctx context.Context, content []byte) Result {
	path, cleanup, err := writeTemp(content, "recluta-cv-*.pdf")
	if err != nil {
		return Result{Failure: fmt.Sprintf("extraction failed: %v", err)}
	}
	defer cleanup()

	text, pages, err := e.pdfToText(ctx, path)
	if err == nil && strings.TrimSpace(text) != "" {
		return Result{Text: text, Method: "pdf-text", Pages: pages}
	}

	var warns []string
	if err != nil {
		warns = append(warns, err.Error())
	}

	res := e.pdfToOCR(ctx, path)
	res.Warnings = append(warns, res.Warnings...)
	return res
}

func (e *Extractor) pdfToText(ctx context.Context, path string) (string, int, error) {
	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return "", 0, fmt.Errorf("pdftotext: %v: %s", err, truncate(string(errb), 512))
	}
	text := string(out)
	// A form-feed \f is used as page separator by default
	pages := 1 + strings.Count(text, "\f")
	return text, pages, nil
}

func (e *Extractor) pdfToOCR(ctx context.Context, path string) Result {
	tmpDir, err := os.MkdirTemp("", "recluta-pp-*")
	if err != nil {
		return Result{Failure: fmt.Sprintf("extraction failed: %v", err)}
	}
	defer func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			e.logger.Warn("extract.tmpdir_remove_failed", "dir", tmpDir, "error", err)
		}
	}()

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r <dpi> -png <in.pdf> <tmp/page>
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm, "-r", fmt.Sprintf("%d", e.cfg.DPI), "-png", path, prefix)
	if err != nil {
		return Result{Failure: fmt.Sprintf("extraction failed: pdftoppm: %v: %s", err, truncate(string(errb), 512))}
	}

	pageFiles, err := listPages(prefix)
	if err != nil || len(pageFiles) == 0 {
		return Result{Failure: "extraction failed: no pages rendered"}
	}
	if e.cfg.MaxPages > 0 && len(pageFiles) > e.cfg.MaxPages {
		pageFiles = pageFiles[:e.cfg.MaxPages]
	}

	var b strings.Builder
	var warns []string
	for _, img := range pageFiles {
		txt, err := e.ocrPage(ctx, img)
		if err != nil {
			// one bad page degrades that page only; the rest continue
			warns = append(warns, err.Error())
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(txt)
	}
	return Result{
		Text:     strings.TrimRight(b.String(), " \t\r\n"),
		Method:   "pdf-ocr",
		Pages:    len(pageFiles),
		Warnings: warns,
	}
}

// ocrPage runs tesseract on a single page image. The page file is released
// whether or not OCR succeeds.
func (e *Extractor) ocrPage(ctx context.Context, img string) (string, error) {
	defer func() {
		if err := os.Remove(img); err != nil {
			e.logger.Warn("extract.page_remove_failed", "page", img, "error", err)
		}
	}()

	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, img, "stdout", "-l", e.cfg.TesseractLang)
	if err != nil {
		return "", fmt.Errorf("tesseract %s: %v: %s", img, err, truncate(string(errb), 512))
	}
	return string(out), nil
}

func (e *Extractor) extractDocx(content []byte) Result {
	body, err := e.convertDocx(bytes.NewReader(content))
	if err != nil {
		return Result{Failure: fmt.Sprintf("extraction failed: %v", err)}
	}
	return Result{Text: body, Method: "docx", Pages: 1}
}

// listPages collects the images pdftoppm generated (prefix-1.png, prefix-2.png, ...).
func listPages(prefix string) ([]string, error) {
	matches, err := filepath.Glob(prefix + "-*.png")
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)
	return matches, nil
}

func writeTemp(content []byte, pattern string) (string, func(), error) {
	f, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", nil, err
	}
	path := f.Name()
	if _, err := f.Write(content); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", nil, err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", nil, err
	}
	return path, func() { _ = os.Remove(path) }, nil
}

package extract

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/recluta/recluta-backend/internal/common"
)

// stubRunner scripts the external binaries. For pdftoppm it writes fake page
// images under the requested prefix, the way the real binary does.
type stubRunner struct {
	pdfText string
	pdfErr  error

	pageCount   int
	ocrOutputs  map[int]string // 1-based page -> text
	ocrFailures map[int]error  // 1-based page -> error

	pdftotextCalls int
	pdftoppmCalls  int
	tesseractCalls int

	pagePaths        []string
	prevPageReleased bool
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	switch name {
	case "pdftotext":
		s.pdftotextCalls++
		if s.pdfErr != nil {
			return nil, []byte("pdftotext stub failure"), s.pdfErr
		}
		return []byte(s.pdfText), nil, nil
	case "pdftoppm":
		s.pdftoppmCalls++
		prefix := args[len(args)-1]
		for i := 1; i <= s.pageCount; i++ {
			p := fmt.Sprintf("%s-%d.png", prefix, i)
			if err := os.WriteFile(p, []byte("png"), 0o600); err != nil {
				return nil, nil, err
			}
			s.pagePaths = append(s.pagePaths, p)
		}
		return nil, nil, nil
	case "tesseract":
		s.tesseractCalls++
		page := s.tesseractCalls
		if page > 1 {
			// the previous page image must already be released, even when
			// its OCR attempt failed
			if _, err := os.Stat(s.pagePaths[page-2]); os.IsNotExist(err) {
				s.prevPageReleased = true
			}
		}
		if err := s.ocrFailures[page]; err != nil {
			return nil, []byte("ocr stub failure"), err
		}
		return []byte(s.ocrOutputs[page]), nil, nil
	default:
		return nil, nil, fmt.Errorf("unexpected command %q", name)
	}
}

func newTestExtractor(r Runner) *Extractor {
	e := NewExtractor(Config{}, nil)
	e.runner = r
	return e
}

func TestExtractUnsupportedExtension(t *testing.T) {
	e := newTestExtractor(&stubRunner{})
	_, err := e.Extract(context.Background(), []byte("data"), "exe")
	if !errors.Is(err, common.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if err == nil || !strings.Contains(err.Error(), "exe") {
		t.Fatalf("error must identify the extension: %v", err)
	}
}

func TestExtractTextNativePDFSkipsOCR(t *testing.T) {
	stub := &stubRunner{pdfText: "First page\n\fSecond page\n"}
	e := newTestExtractor(stub)

	res, err := e.Extract(context.Background(), []byte("%PDF-1.4"), "pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Failed() {
		t.Fatalf("unexpected failure: %s", res.Failure)
	}
	if res.Method != "pdf-text" {
		t.Fatalf("expected pdf-text method, got %q", res.Method)
	}
	if res.Pages != 2 {
		t.Fatalf("expected 2 pages, got %d", res.Pages)
	}
	if stub.pdftoppmCalls != 0 || stub.tesseractCalls != 0 {
		t.Fatalf("OCR path must not be touched for a text-native PDF (pdftoppm=%d tesseract=%d)",
			stub.pdftoppmCalls, stub.tesseractCalls)
	}
}

func TestExtractImageOnlyPDFRunsOCRPerPage(t *testing.T) {
	stub := &stubRunner{
		pdfText:     "  \n\t ", // whitespace-only text layer
		pageCount:   2,
		ocrOutputs:  map[int]string{2: "Second page text\n"},
		ocrFailures: map[int]error{1: errors.New("boom")},
	}
	e := newTestExtractor(stub)

	res, err := e.Extract(context.Background(), []byte("%PDF-1.4"), "pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Failed() {
		t.Fatalf("unexpected failure: %s", res.Failure)
	}
	if res.Method != "pdf-ocr" {
		t.Fatalf("expected pdf-ocr method, got %q", res.Method)
	}
	if stub.tesseractCalls != 2 {
		t.Fatalf("expected one OCR call per page, got %d", stub.tesseractCalls)
	}
	if !stub.prevPageReleased {
		t.Fatalf("page image must be released before the next page is OCRed, including after a failed attempt")
	}
	if res.Text != "Second page text" {
		t.Fatalf("unexpected text %q", res.Text)
	}
	if len(res.Warnings) != 1 {
		t.Fatalf("expected the failed page to surface as a warning, got %v", res.Warnings)
	}
}

func TestExtractPdftotextFailureFallsBackToOCR(t *testing.T) {
	stub := &stubRunner{
		pdfErr:     errors.New("broken xref"),
		pageCount:  1,
		ocrOutputs: map[int]string{1: "recovered"},
	}
	e := newTestExtractor(stub)

	res, err := e.Extract(context.Background(), []byte("%PDF-1.4"), "pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Text != "recovered" || res.Method != "pdf-ocr" {
		t.Fatalf("expected OCR fallback result, got %+v", res)
	}
	if len(res.Warnings) == 0 {
		t.Fatalf("pdftotext failure should be kept as warning")
	}
}

func TestExtractDocx(t *testing.T) {
	e := newTestExtractor(&stubRunner{})
	e.convertDocx = func(io.Reader) (string, error) {
		return "Paragraph one\nParagraph two", nil
	}

	res, err := e.Extract(context.Background(), []byte("PK"), "docx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Method != "docx" {
		t.Fatalf("expected docx method, got %q", res.Method)
	}
	if res.Text != "Paragraph one\nParagraph two" {
		t.Fatalf("unexpected text %q", res.Text)
	}
}

func TestExtractDocxFailureDegrades(t *testing.T) {
	e := newTestExtractor(&stubRunner{})
	e.convertDocx = func(io.Reader) (string, error) {
		return "", errors.New("not a zip")
	}

	res, err := e.Extract(context.Background(), []byte("garbage"), "doc")
	if err != nil {
		t.Fatalf("degraded extraction must not error: %v", err)
	}
	if !res.Failed() {
		t.Fatalf("expected a failed result")
	}
	if !strings.Contains(res.Body(), "extraction failed") {
		t.Fatalf("failure message must be usable as body text, got %q", res.Body())
	}
}

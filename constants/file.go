package constants

import "strings"

// Document formats accepted by the extraction pipeline.
const (
	PDF  = "PDF"
	DOCX = "DOCX"
)

// FileTypes holds the allowed values for the extension field on cv_records.
var FileTypes = []string{"pdf", "docx", "doc"}

// AllowedExtensions holds the file extensions accepted for CV ingestion.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"docx": {},
	"doc":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a normalized extension to its pipeline format.
// Returns "" for unsupported extensions.
func MapExtToFormat(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "docx", "doc":
		return DOCX
	default:
		return ""
	}
}

package constants

import "strings"

// File formats accepted for deal slips.
const (
	PDF  = "PDF"
	DOCX = "DOCX"
)

// FileTypes holds the allowed file types for the format field in ExtractJob.
var FileTypes = []string{PDF, DOCX}

// AllowedExtensions holds the file extensions accepted for slip ingestion.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"docx": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a normalized extension to a file format, or "" if unsupported.
func MapExtToFormat(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "docx":
		return DOCX
	default:
		return ""
	}
}

// IsStructuredDoc reports whether the extension identifies a structured
// document container that bypasses text classification entirely.
func IsStructuredDoc(ext string) bool {
	return MapExtToFormat(ext) == DOCX
}

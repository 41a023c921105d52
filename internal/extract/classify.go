package extract

import (
	"strings"

	"github.com/arvind-krishnan/dealslip-tracker/constants"
)

// Source distinguishes how a document's fields are located.
type Source string

const (
	// SourceText runs the variant's text-mode rules over normalized text.
	SourceText Source = "TEXT"
	// SourceStructured reads (key, value) table rows from a native container.
	SourceStructured Source = "STRUCTURED"
)

// Classification is the tagged outcome of format dispatch. A document that
// carries no discriminating marker is surfaced as UNCLASSIFIED rather than
// silently treated as Format A; extraction still runs with the Format A rules
// so the reviewer sees the (likely sparse) row next to the tag.
type Classification struct {
	Variant constants.FormatVariant
	Source  Source
	Status  constants.DocStatus
}

// Classify inspects normalized text and the file extension and routes the
// document to a rule set. Pure and deterministic: the same inputs always
// yield the same Classification.
func Classify(normalizedText, fileExt string) Classification {
	if constants.IsStructuredDoc(fileExt) {
		// Structured containers bypass text classification entirely.
		return Classification{Variant: constants.FormatB, Source: SourceStructured, Status: constants.DocStatusOK}
	}
	upper := strings.ToUpper(normalizedText)
	if strings.Contains(upper, constants.CBRICSMarker) {
		return Classification{Variant: constants.FormatB, Source: SourceText, Status: constants.DocStatusOK}
	}
	for _, m := range constants.FormatAMarkers {
		if strings.Contains(upper, m) {
			return Classification{Variant: constants.FormatA, Source: SourceText, Status: constants.DocStatusOK}
		}
	}
	return Classification{Variant: constants.FormatA, Source: SourceText, Status: constants.DocStatusUnclassified}
}

package constants

// FormatVariant identifies which locator rule set applies to a document.
// Chosen once per document by the classifier, immutable afterward.
type FormatVariant string

const (
	// FormatA is the BSE deal-slip layout (label and value on the same line).
	FormatA FormatVariant = "FORMAT_A"
	// FormatB is the CBRICS corporate bond reporting layout.
	FormatB FormatVariant = "FORMAT_B"
)

// CBRICSMarker is the discriminating substring for Format B text documents.
// Matching is case-insensitive, so "CBRICS" alone also routes to Format B.
const CBRICSMarker = "CBRICS"

// FormatAMarkers are substrings whose presence classifies a text document as
// Format A. Absence of every marker means the document is unclassified.
var FormatAMarkers = []string{"DEAL ID", "TRADE VALUE"}

package extract

import (
	"embed"
	"encoding/json"
	"fmt"
	"regexp"
	"unicode"
	"unicode/utf8"

	"github.com/arvind-krishnan/dealslip-tracker/constants"
)

//go:embed rulesets/*.json
var rulesetFS embed.FS

// Locator strategies.
const (
	StrategyPattern       = "pattern"
	StrategyFollowingLine = "following_line"
	StrategyTableRow      = "table_row"
)

// Capture classes for pattern rules.
const (
	CaptureToken   = "token"
	CaptureLine    = "line"
	CaptureDigits  = "digits"
	CaptureInteger = "integer"
	CaptureNumber  = "number"
	CaptureCode    = "code"
)

// Coercion modes.
const (
	CoerceString = "string"
	CoerceInt    = "int"
	CoerceFloat  = "float"
	CoerceYield  = "yield"
)

// Table-row cell selectors.
const (
	CellLast                 = "last"
	CellFirstNumericElseLast = "first_numeric_else_last"
)

// FieldRule maps a record field to one extraction strategy. For pattern rules
// Label is a regex fragment anchored at the label token; for positional and
// table rules it is a plain substring matched case-insensitively.
type FieldRule struct {
	Name     string `json:"name"`
	Strategy string `json:"strategy"`
	Label    string `json:"label"`
	Capture  string `json:"capture,omitempty"`
	Coerce   string `json:"coerce,omitempty"`
	Cell     string `json:"cell,omitempty"`
	// Internal fields are captured for derivation only and never exported.
	Internal bool `json:"internal,omitempty"`
}

// StructuredRule maps a first-cell label of a structured-container table row
// to a record field. Order matters: the first label that is a substring of
// the key cell wins, so longer labels must precede labels they contain.
type StructuredRule struct {
	Name   string `json:"name"`
	Label  string `json:"label"`
	Coerce string `json:"coerce,omitempty"`
}

// RuleSet declares every locator rule for one format variant. Adding a venue
// format means adding a rule set, not new code.
type RuleSet struct {
	Variant         constants.FormatVariant `json:"variant"`
	CaseInsensitive bool                    `json:"case_insensitive"`
	Fields          []FieldRule             `json:"fields"`
	Structured      []StructuredRule        `json:"structured,omitempty"`
}

type compiledRule struct {
	FieldRule
	re *regexp.Regexp
}

type compiledRuleSet struct {
	RuleSet
	patterns []compiledRule
	lines    []FieldRule
	tables   []FieldRule
}

// loadRuleSets parses, validates, and compiles every embedded rule set.
func loadRuleSets() (map[constants.FormatVariant]*compiledRuleSet, error) {
	entries, err := rulesetFS.ReadDir("rulesets")
	if err != nil {
		return nil, fmt.Errorf("read rulesets: %w", err)
	}
	out := make(map[constants.FormatVariant]*compiledRuleSet, len(entries))
	for _, e := range entries {
		raw, err := rulesetFS.ReadFile("rulesets/" + e.Name())
		if err != nil {
			return nil, fmt.Errorf("read ruleset %s: %w", e.Name(), err)
		}
		if err := ValidateJSONAgainstSchema(BuildRuleSetSchema(), raw); err != nil {
			return nil, fmt.Errorf("ruleset %s: %w", e.Name(), err)
		}
		var rs RuleSet
		if err := json.Unmarshal(raw, &rs); err != nil {
			return nil, fmt.Errorf("decode ruleset %s: %w", e.Name(), err)
		}
		crs, err := compileRuleSet(rs)
		if err != nil {
			return nil, fmt.Errorf("compile ruleset %s: %w", e.Name(), err)
		}
		out[rs.Variant] = crs
	}
	return out, nil
}

func compileRuleSet(rs RuleSet) (*compiledRuleSet, error) {
	crs := &compiledRuleSet{RuleSet: rs}
	for _, fr := range rs.Fields {
		switch fr.Strategy {
		case StrategyPattern:
			re, err := compilePattern(fr.Label, fr.Capture, rs.CaseInsensitive)
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", fr.Name, err)
			}
			crs.patterns = append(crs.patterns, compiledRule{FieldRule: fr, re: re})
		case StrategyFollowingLine:
			crs.lines = append(crs.lines, fr)
		case StrategyTableRow:
			crs.tables = append(crs.tables, fr)
		default:
			return nil, fmt.Errorf("field %s: unknown strategy %q", fr.Name, fr.Strategy)
		}
	}
	return crs, nil
}

// compilePattern builds LABEL<sep>(CAPTURE). The search runs in
// dot-matches-newline mode so a label and its value may sit on different
// lines; the separator tolerates an optional colon or dash with flexible
// spacing because OCR-recovered text does not preserve exact punctuation.
func compilePattern(label, capture string, caseInsensitive bool) (*regexp.Regexp, error) {
	cls, err := captureClass(capture)
	if err != nil {
		return nil, err
	}
	frag := label
	if r, _ := utf8.DecodeLastRuneInString(label); unicode.IsLetter(r) || unicode.IsDigit(r) {
		frag += `\b`
	}
	flags := `(?s)`
	if caseInsensitive {
		flags = `(?is)`
	}
	return regexp.Compile(flags + frag + `\s*[:\-]?\s*` + cls)
}

func captureClass(capture string) (string, error) {
	switch capture {
	case CaptureToken:
		return `(\S+)`, nil
	case CaptureLine:
		// Bounded at the newline: dot-all search still spans line breaks to
		// find the label, but a free-text value never swallows the document
		// tail.
		return `([^\n]+)`, nil
	case CaptureDigits:
		return `(\d+)`, nil
	case CaptureInteger:
		return `(\d[\d,]*)`, nil
	case CaptureNumber:
		return `(\d[\d,]*(?:\.\d+)?)`, nil
	case CaptureCode:
		return `([A-Z0-9]+)`, nil
	default:
		return "", fmt.Errorf("unknown capture class %q", capture)
	}
}

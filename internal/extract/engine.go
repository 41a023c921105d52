package extract

import (
	"log/slog"
	"math"
	"strings"

	"github.com/arvind-krishnan/dealslip-tracker/constants"
	"github.com/arvind-krishnan/dealslip-tracker/internal/entity"
)

// YieldMode selects how the yield field is emitted. Both behaviors exist in
// the wild and reflect genuinely different desired outputs, so they stay
// configurable instead of being unified.
type YieldMode string

const (
	// YieldModeNumeric coerces the capture to a float.
	YieldModeNumeric YieldMode = "numeric"
	// YieldModePercent keeps the bare capture with a literal "%" suffix.
	YieldModePercent YieldMode = "percent"
)

// Engine runs a variant's locator rules over a decoded document and assembles
// one DealRecord. One engine serves every variant; behavior differences live
// entirely in the declarative rule sets.
type Engine struct {
	rules     map[constants.FormatVariant]*compiledRuleSet
	yieldMode YieldMode
	logger    *slog.Logger
}

func NewEngine(yieldMode YieldMode, logger *slog.Logger) (*Engine, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if yieldMode == "" {
		yieldMode = YieldModeNumeric
	}
	rules, err := loadRuleSets()
	if err != nil {
		return nil, err
	}
	return &Engine{rules: rules, yieldMode: yieldMode, logger: logger}, nil
}

// Extract runs the text-mode rules of the given variant. Field misses and
// coercion failures leave the field empty; nothing here returns an error.
func (e *Engine) Extract(variant constants.FormatVariant, doc Document) entity.DealRecord {
	rec := entity.DealRecord{Variant: variant}
	rs, ok := e.rules[variant]
	if !ok {
		e.logger.Warn("no rule set for variant", "variant", variant)
		return rec
	}
	aux := make(map[string]float64)

	for _, cr := range rs.patterns {
		m := cr.re.FindStringSubmatch(doc.Text)
		if m == nil {
			continue
		}
		e.assign(&rec, aux, cr.FieldRule, strings.TrimSpace(m[1]))
	}

	lines := nonEmptyLines(doc.Text)
	for _, fr := range rs.lines {
		if raw := followingLine(lines, fr.Label); raw != "" {
			e.assign(&rec, aux, fr, raw)
		}
	}

	// Table rules run last and override positional lookups: decoded table
	// geometry is the more reliable signal for these fields.
	for _, fr := range rs.tables {
		for _, t := range doc.Tables {
			for _, row := range t {
				if !rowMatches(row, fr.Label) {
					continue
				}
				if raw := selectCell(row, fr.Cell); raw != "" {
					e.assign(&rec, aux, fr, raw)
				}
			}
		}
	}

	e.derive(&rec, aux)
	return rec
}

// ExtractStructured reads (key, value) table rows from a structured
// container. The first cell is matched case-insensitively against the
// variant's known labels, the second cell is the value; unmatched labels are
// ignored and there is no fallback to text patterns.
func (e *Engine) ExtractStructured(variant constants.FormatVariant, tables []Table) entity.DealRecord {
	rec := entity.DealRecord{Variant: variant}
	rs, ok := e.rules[variant]
	if !ok {
		e.logger.Warn("no rule set for variant", "variant", variant)
		return rec
	}
	aux := make(map[string]float64)
	for _, t := range tables {
		for _, row := range t {
			if len(row) < 2 {
				continue
			}
			key := strings.ToLower(strings.TrimSpace(row[0]))
			if key == "" {
				continue
			}
			for _, sr := range rs.Structured {
				if strings.Contains(key, sr.Label) {
					e.assign(&rec, aux, FieldRule{Name: sr.Name, Coerce: sr.Coerce}, strings.TrimSpace(row[1]))
					break
				}
			}
		}
	}
	return rec
}

// assign coerces a raw capture per the rule's declared coerce mode and routes
// the typed value into the record. Internal fields (trade_value) land in aux
// for derivation and are never exported.
func (e *Engine) assign(rec *entity.DealRecord, aux map[string]float64, fr FieldRule, raw string) {
	if raw == "" {
		return
	}
	if fr.Internal {
		if v, ok := ParseFloat(raw); ok {
			aux[fr.Name] = v
		}
		return
	}
	switch fr.Coerce {
	case CoerceInt:
		if v, ok := ParseInt(raw); ok {
			e.assignInt(rec, fr.Name, v)
		}
	case CoerceFloat:
		if v, ok := ParseFloat(raw); ok {
			e.assignFloat(rec, fr.Name, v)
		}
	case CoerceYield:
		if e.yieldMode == YieldModePercent {
			rec.YieldText = raw + "%"
		} else if v, ok := ParseFloat(raw); ok {
			rec.Yield = &v
		}
	default: // CoerceString, or omitted
		e.assignString(rec, fr.Name, raw)
	}
}

func (e *Engine) assignString(rec *entity.DealRecord, name, v string) {
	switch name {
	case "deal_reference":
		rec.DealReference = v
	case "buyer":
		rec.Buyer = v
	case "seller":
		rec.Seller = v
	case "bond":
		rec.Bond = v
	case "isin":
		rec.ISIN = v
	default:
		e.logger.Warn("rule routes unknown field", "field", name, "coerce", CoerceString)
	}
}

func (e *Engine) assignInt(rec *entity.DealRecord, name string, v int64) {
	switch name {
	case "quantity":
		rec.Quantity = &v
	default:
		e.logger.Warn("rule routes unknown field", "field", name, "coerce", CoerceInt)
	}
}

func (e *Engine) assignFloat(rec *entity.DealRecord, name string, v float64) {
	switch name {
	case "price":
		rec.Price = &v
	case "seller_consideration":
		rec.SellerConsideration = &v
	case "buyer_consideration":
		rec.BuyerConsideration = &v
	default:
		e.logger.Warn("rule routes unknown field", "field", name, "coerce", CoerceFloat)
	}
}

// derive fills FV per unit: round(tradeValue/quantity, 2) whenever both a
// parsed trade value and a nonzero quantity exist.
func (e *Engine) derive(rec *entity.DealRecord, aux map[string]float64) {
	tv, ok := aux["trade_value"]
	if !ok || rec.Quantity == nil || *rec.Quantity == 0 {
		return
	}
	fv := math.Round(tv/float64(*rec.Quantity)*100) / 100
	rec.FVPerUnit = &fv
}

func nonEmptyLines(text string) []string {
	var out []string
	for _, ln := range strings.Split(text, "\n") {
		if s := strings.TrimSpace(ln); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// followingLine returns the line immediately after the first line containing
// the label (case-insensitive substring match).
func followingLine(lines []string, label string) string {
	l := strings.ToLower(label)
	for i, ln := range lines {
		if strings.Contains(strings.ToLower(ln), l) {
			if i+1 < len(lines) {
				return lines[i+1]
			}
			return ""
		}
	}
	return ""
}

// rowMatches joins a row's cells and looks for the label as a
// case-insensitive substring, so "Consideration Reported (incl. Stamp Duty)"
// still matches "consideration reported".
func rowMatches(row []string, label string) bool {
	joined := strings.ToLower(strings.Join(row, " "))
	return strings.Contains(joined, strings.ToLower(label))
}

func selectCell(row []string, sel string) string {
	if len(row) == 0 {
		return ""
	}
	switch sel {
	case CellFirstNumericElseLast:
		first := strings.TrimSpace(row[0])
		if _, ok := ParseInt(first); ok {
			return first
		}
		return strings.TrimSpace(row[len(row)-1])
	default:
		return strings.TrimSpace(row[len(row)-1])
	}
}

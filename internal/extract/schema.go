package extract

// BuildRuleSetSchema returns a JSON-Schema (draft 2020-12 subset) as a generic
// map. Every embedded rule set is validated against it at load so a malformed
// rule fails fast instead of silently extracting nothing.
func BuildRuleSetSchema() map[string]any {
	fieldRule := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"name": map[string]any{
				"type": "string",
				"enum": []string{
					"deal_reference", "buyer", "seller", "bond", "isin",
					"quantity", "price", "seller_consideration",
					"buyer_consideration", "yield", "trade_value",
				},
			},
			"strategy": map[string]any{
				"type": "string",
				"enum": []string{StrategyPattern, StrategyFollowingLine, StrategyTableRow},
			},
			"label": map[string]any{"type": "string", "minLength": 1},
			"capture": map[string]any{
				"type": "string",
				"enum": []string{CaptureToken, CaptureLine, CaptureDigits, CaptureInteger, CaptureNumber, CaptureCode},
			},
			"coerce": map[string]any{
				"type": "string",
				"enum": []string{CoerceString, CoerceInt, CoerceFloat, CoerceYield},
			},
			"cell": map[string]any{
				"type": "string",
				"enum": []string{CellLast, CellFirstNumericElseLast},
			},
			"internal": map[string]any{"type": "boolean"},
		},
		"required": []string{"name", "strategy", "label"},
	}

	structuredRule := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"name":   fieldRule["properties"].(map[string]any)["name"],
			"label":  map[string]any{"type": "string", "minLength": 1},
			"coerce": fieldRule["properties"].(map[string]any)["coerce"],
		},
		"required": []string{"name", "label"},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"variant": map[string]any{
				"type": "string",
				"enum": []string{"FORMAT_A", "FORMAT_B"},
			},
			"case_insensitive": map[string]any{"type": "boolean"},
			"fields": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items":    fieldRule,
			},
			"structured": map[string]any{
				"type":  "array",
				"items": structuredRule,
			},
		},
		"required": []string{"variant", "fields"},
	}
}

package entity

import (
	"github.com/arvind-krishnan/dealslip-tracker/constants"
)

// DealRecord is one output row: every field extracted from a single deal slip.
// The field set is identical for both venue formats so heterogeneous documents
// merge into one table; a missing or unparsed field stays nil/empty, the column
// is never omitted. A record is populated once by the extractor and never
// mutated afterward.
type DealRecord struct {
	DealReference string `json:"deal_reference"`
	Buyer         string `json:"buyer"`
	Seller        string `json:"seller"`
	Bond          string `json:"bond"`
	ISIN          string `json:"isin"`

	Quantity            *int64   `json:"quantity,omitempty"`
	FVPerUnit           *float64 `json:"fv_per_unit,omitempty"`
	Price               *float64 `json:"price,omitempty"`
	SellerConsideration *float64 `json:"seller_consideration,omitempty"`
	BuyerConsideration  *float64 `json:"buyer_consideration,omitempty"`

	// Yield carries the numeric value in numeric output mode. In percent-suffix
	// mode YieldText holds the raw capture plus a literal "%" and Yield is nil.
	Yield     *float64 `json:"yield,omitempty"`
	YieldText string   `json:"yield_text,omitempty"`

	Variant constants.FormatVariant `json:"variant,omitempty"`
	Status  constants.DocStatus     `json:"status"`
}

// RecordColumns is the declared export column order. Status is last so the
// venue columns line up with the historical spreadsheet layout.
var RecordColumns = []string{
	"Deal Reference",
	"Buyer",
	"Seller",
	"Bond",
	"ISIN",
	"Quantity",
	"FV per unit",
	"Price",
	"Seller Consideration",
	"Buyer Consideration",
	"Yield (%)",
	"Status",
}

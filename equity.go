package grana

import "github.com/luchiari/grana/date"

// EquityType classifies a held asset into a reporting group.
type EquityType string

const (
	RealEstate     EquityType = "REAL_ESTATE"
	Vehicle        EquityType = "VEHICLE"
	FinancialAsset EquityType = "INVESTMENT"
	CashEquivalent EquityType = "CASH"
	OtherEquity    EquityType = "OTHER"
)

// Group returns the display name of the reporting group used for
// allocation slices. Unknown types fall into the catch-all group so a
// new asset type never disappears from the allocation chart.
func (t EquityType) Group() string {
	switch t {
	case RealEstate:
		return "Imóveis"
	case Vehicle:
		return "Veículos"
	case FinancialAsset:
		return "Investimentos"
	case CashEquivalent:
		return "Caixa"
	default:
		return "Outros"
	}
}

// Equity is a tracked asset contributing to net worth. It is created on
// user entry and its value and cost basis change only through explicit
// edits; the engine never revalues it.
type Equity struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Type            EquityType `json:"type"`
	Value           Money      `json:"value"` // current mark
	Cost            Money      `json:"cost"`  // acquisition cost basis
	AcquisitionDate date.Date  `json:"acquisitionDate"`
}

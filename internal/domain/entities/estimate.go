package entities

// DepreciationType classifies how withheld depreciation is treated by the
// policy. The distinction is a payout decision, not arithmetic: recoverable
// amounts come back after repairs are documented, non-recoverable amounts
// never do, and paid-when-incurred covers code upgrades billed after the
// upgraded work is invoiced.

type DepreciationType string

const (
	DepreciationRecoverable    DepreciationType = "recoverable"
	DepreciationNonRecoverable DepreciationType = "non_recoverable"
	DepreciationPWI            DepreciationType = "paid_when_incurred"
)

// PricedLineItem is a ScopeItem enriched with computed money fields.
//
// RCV = TotalPrice + TaxAmount; ACV = RCV - DepreciationAmount. A missing
// regional price leaves the money fields zero and sets PricingIssue; the rest
// of the estimate is not blocked.

type PricedLineItem struct {
	ScopeItem

	UnitPrice              float64          `json:"unit_price"`
	TotalPrice             float64          `json:"total_price"`
	TaxAmount              float64          `json:"tax_amount"`
	DepreciationAmount     float64          `json:"depreciation_amount"`
	DepreciationType       DepreciationType `json:"depreciation_type"`
	DepreciationPercentage float64          `json:"depreciation_percentage"`
	ACV                    float64          `json:"acv"`
	Age                    float64          `json:"age"`
	LifeExpectancy         float64          `json:"life_expectancy"`
	CoverageType           CoverageType     `json:"coverage_type"`
	PricingIssue           string           `json:"pricing_issue,omitempty"`
}

func (p PricedLineItem) RCV() float64 {
	return p.TotalPrice + p.TaxAmount
}

// CoverageTotals is the per-bucket rollup inside an EstimateSummary.

type CoverageTotals struct {
	RCV          float64 `json:"rcv"`
	Tax          float64 `json:"tax"`
	Depreciation float64 `json:"depreciation"`
	ACV          float64 `json:"acv"`
}

// EstimateSummary is the aggregated, internally consistent estimate rollup
// handed to report rendering. Room subtotals sum to the grand total; the
// engine does not format currency.

type EstimateSummary struct {
	TotalRCV                        float64 `json:"total_rcv"`
	TotalTax                        float64 `json:"total_tax"`
	TotalDepreciation               float64 `json:"total_depreciation"`
	TotalRecoverableDepreciation    float64 `json:"total_recoverable_depreciation"`
	TotalNonRecoverableDepreciation float64 `json:"total_non_recoverable_depreciation"`
	TotalACV                        float64 `json:"total_acv"`
	Deductible                      float64 `json:"deductible"`
	NetClaim                        float64 `json:"net_claim"`
	NetClaimIfDepreciationRecovered float64 `json:"net_claim_if_depreciation_recovered"`
	OverheadAmount                  float64 `json:"overhead_amount"`
	ProfitAmount                    float64 `json:"profit_amount"`
	QualifiesForOP                  bool    `json:"qualifies_for_op"`

	ByCoverage map[CoverageType]CoverageTotals `json:"by_coverage,omitempty"`
	ByRoom     map[string]float64              `json:"by_room,omitempty"`  // room id -> RCV
	ByTrade    map[TradeCode]float64           `json:"by_trade,omitempty"` // trade -> RCV
}

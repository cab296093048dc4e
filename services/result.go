package services

// LineItem is one row of a quote breakdown. Amount always carries the
// authoritative numeric value; for non-monetary rows (durations) Display
// holds the formatted text and Amount the underlying figure, so consumers
// never need to cross-reference anything else to render a row.
type LineItem struct {
	ID      string  `json:"id"`
	Label   string  `json:"label"`
	Amount  float64 `json:"amount"`
	Display string  `json:"display,omitempty"`
}

// QuoteFigures is the shared slice of every per-service detail: the figures
// the aggregator and document renderers need without knowing which service
// produced them. Rush guards the rush variants; DeliveryDays is zero when the
// quote contains no work.
type QuoteFigures struct {
	FinalSellPrice     float64
	RushFinalSellPrice float64
	Rush               bool
	TotalExpenses      float64
	Profit             float64
	DeliveryDays       float64
	RushDeliveryDays   float64
}

// Figures returns the shared figures; embedding QuoteFigures in a detail
// struct satisfies QuoteDetail.
func (f QuoteFigures) Figures() QuoteFigures { return f }

// QuoteDetail is the per-service result variant. Consumers that need
// service-specific intermediates (the PDF and Excel renderers) type-switch on
// the concrete detail type.
type QuoteDetail interface {
	Figures() QuoteFigures
}

// QuoteResult is the output contract every calculator produces.
type QuoteResult struct {
	LineItems   []LineItem
	Subtotal    float64
	Adjustments float64
	Total       float64
	Detail      QuoteDetail
}

// SellingPrice resolves the price a quote is sold at: the rush sell price
// when rush is enabled, else the final sell price, else the generic total
// (no-op results from unknown services carry no detail).
func SellingPrice(res QuoteResult) float64 {
	if res.Detail == nil {
		return res.Total
	}
	fig := res.Detail.Figures()
	if fig.Rush {
		return fig.RushFinalSellPrice
	}
	return fig.FinalSellPrice
}

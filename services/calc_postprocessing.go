package services

// postProcessToolWatts is the assumed draw of powered finishing tools.
const postProcessToolWatts = 500.0

// postProcessComplexityLevels maps the finishing complexity select to its
// numeric level; the load factor is 1 + level/2.
var postProcessComplexityLevels = map[string]float64{
	"minimal":  1,
	"easy":     2,
	"standard": 3,
	"hard":     4,
	"extreme":  5,
}

// toolUsageLevels scales the electrical cost by how much powered tooling the
// job needs. Zero means hand finishing only.
var toolUsageLevels = map[string]float64{
	"none":        0,
	"minimal":     1,
	"moderate":    2,
	"significant": 3,
	"heavy":       4,
}

// PostProcessingDetail carries the intermediates of a post-processing quote.
type PostProcessingDetail struct {
	QuoteFigures
	ComplexityLevel               float64
	ToolUsageLevel                float64
	ConsideredServiceTimeDays     float64
	RushConsideredServiceTimeDays float64
	ServiceCost                   float64
	ElectricalCost                float64
	ProcurementCosts              float64
	MiscCosts                     float64
}

// CalculatePostProcessingQuote prices a finishing job: estimated hours scaled
// by the complexity factor into service days, labor plus tool electricity
// plus procurement and misc costs, then one margin inversion. Unlike the
// other time-driven services there is no minimum-day floor, and the delivery
// estimate adds extra schedule slack of complexity/2 times the estimated
// hours on top of the service time.
func CalculatePostProcessingQuote(inputs map[string]string, _ *Catalogs) QuoteResult {
	estimatedHours := ParseNumber(inputs["estimatedPostProcessHours"], 0)
	complexityLevel := complexityFor(postProcessComplexityLevels, inputs["postProcessComplexity"], "standard")
	toolUsageLevel := complexityFor(toolUsageLevels, inputs["electricalToolUsage"], "none")

	margin := MarginFraction(ParseNumber(inputs["profitMarginPercent"], 0))
	allowRush := ParseFlag(inputs["allowRush"])
	electricalCostPerKwh := ParseNumber(inputs["electricalCostPerKwh"], defaultElectricalCostPerKwh)
	basicServiceCostPerHour := ParseNumber(inputs["basicServiceCostPerHour"], defaultServiceCostPerHour)
	procurementCosts := ParseNumber(inputs["procurementCosts"], 0)
	miscCosts := ParseNumber(inputs["miscCosts"], 0)

	complexityFactor := 1 + complexityLevel/2

	consideredDays := 0.0
	rushConsideredDays := 0.0
	if estimatedHours > 0 {
		consideredDays = estimatedHours * complexityFactor / perDayHours
		if allowRush {
			rushConsideredDays = estimatedHours * complexityFactor / perDayRushHours
		}
	}

	serviceCost := orZero(consideredDays * perDayHours * basicServiceCostPerHour)
	electricalCost := orZero(postProcessToolWatts * consideredDays * electricalCostPerKwh * toolUsageLevel / 1000)

	totalExpense := serviceCost + electricalCost + miscCosts + procurementCosts
	finalSellPrice := ApplyMargin(totalExpense, margin)

	rushFinalSellPrice := 0.0
	if allowRush {
		rushFinalSellPrice = finalSellPrice * rushPriceMultiplier
	}
	profit := finalSellPrice - totalExpense

	deliveryDays := consideredDays + estimatedHours*(complexityLevel/2)/perDayHours
	rushDeliveryDays := 0.0
	if allowRush && estimatedHours > 0 {
		rushDeliveryDays = consideredDays + estimatedHours*(complexityLevel/2)/perDayRushHours
	}

	items := []LineItem{
		{
			ID:      "consideredServiceTime",
			Label:   "Considered service time (days)",
			Amount:  consideredDays,
			Display: FormatDays(consideredDays),
		},
		{ID: "serviceCost", Label: "Service cost", Amount: serviceCost},
		{ID: "electricalCost", Label: "Electrical cost", Amount: electricalCost},
		{ID: "procurementCosts", Label: "Procurement costs", Amount: procurementCosts},
		{ID: "miscCosts", Label: "Miscellaneous costs", Amount: miscCosts},
		{ID: "totalExpenses", Label: "Total expenses", Amount: totalExpense},
		{ID: "profit", Label: "Profit", Amount: profit},
		{ID: "finalSellPrice", Label: "Final sell price", Amount: finalSellPrice},
	}
	if allowRush {
		items = append(items, LineItem{ID: "rushFinalSellPrice", Label: "Rush final sell price", Amount: rushFinalSellPrice})
	}
	items = append(items, LineItem{
		ID:      "deliveryTime",
		Label:   "Delivery time (days)",
		Amount:  deliveryDays,
		Display: FormatDays(deliveryDays),
	})

	total := finalSellPrice
	if allowRush {
		total = rushFinalSellPrice
	}

	return QuoteResult{
		LineItems:   items,
		Subtotal:    totalExpense,
		Adjustments: 0,
		Total:       total,
		Detail: PostProcessingDetail{
			QuoteFigures: QuoteFigures{
				FinalSellPrice:     finalSellPrice,
				RushFinalSellPrice: rushFinalSellPrice,
				Rush:               allowRush,
				TotalExpenses:      totalExpense,
				Profit:             profit,
				DeliveryDays:       deliveryDays,
				RushDeliveryDays:   rushDeliveryDays,
			},
			ComplexityLevel:               complexityLevel,
			ToolUsageLevel:                toolUsageLevel,
			ConsideredServiceTimeDays:     consideredDays,
			RushConsideredServiceTimeDays: rushConsideredDays,
			ServiceCost:                   serviceCost,
			ElectricalCost:                electricalCost,
			ProcurementCosts:              procurementCosts,
			MiscCosts:                     miscCosts,
		},
	}
}

package services

import "math"

// designLaptopWatts is the assumed draw of the design workstation.
const designLaptopWatts = 1000.0

// designComplexityLevels maps the design complexity select to its numeric
// level. The load factor is 1 + level/2, so "easy" works out to 1.5x the
// estimated hours and "expert" to 3.5x.
var designComplexityLevels = map[string]float64{
	"easy":     1,
	"novice":   2,
	"standard": 3,
	"hard":     4,
	"expert":   5,
}

// DesignDetail carries the intermediates of a 3D design quote.
type DesignDetail struct {
	QuoteFigures
	ComplexityLevel      float64
	EffectiveDesignHours float64
	DesignTimeDays       float64
	RushDesignTimeDays   float64
	PowerCost            float64
	ServiceCost          float64
}

// CalculateDesignQuote prices a 3D design job: estimated hours scaled by the
// complexity factor, converted to days with a three-day floor, then costed as
// workstation power plus service labor.
func CalculateDesignQuote(inputs map[string]string, _ *Catalogs) QuoteResult {
	estimatedDesignHours := ParseNumber(inputs["estimatedDesignHours"], 0)
	complexityLevel := complexityFor(designComplexityLevels, inputs["designComplexity"], "standard")

	margin := MarginFraction(ParseNumber(inputs["profitMarginPercent"], 0))
	allowRush := ParseFlag(inputs["allowRush"])
	electricalCostPerKwh := ParseNumber(inputs["electricalCostPerKwh"], defaultElectricalCostPerKwh)
	basicServiceCostPerHour := ParseNumber(inputs["basicServiceCostPerHour"], defaultServiceCostPerHour)

	complexityFactor := 1 + complexityLevel/2
	effectiveDesignHours := estimatedDesignHours * complexityFactor

	designTimeDays := 0.0
	rushDesignTimeDays := 0.0
	if effectiveDesignHours > 0 {
		designTimeDays = math.Max(minProjectDays, effectiveDesignHours/perDayHours)
		if allowRush {
			rushDesignTimeDays = math.Max(minProjectDays, effectiveDesignHours/perDayRushHours)
		}
	}

	powerCost := orZero(designLaptopWatts * designTimeDays * electricalCostPerKwh / 1000)
	serviceCost := orZero(designTimeDays * perDayHours * basicServiceCostPerHour)

	totalExpense := powerCost + serviceCost
	finalSellPrice := ApplyMargin(totalExpense, margin)

	rushFinalSellPrice := 0.0
	if allowRush {
		rushFinalSellPrice = finalSellPrice * rushPriceMultiplier
	}
	profit := finalSellPrice - totalExpense

	items := []LineItem{
		{
			ID:      "designTimeConsidered",
			Label:   "Design time considered (days)",
			Amount:  designTimeDays,
			Display: FormatDays(designTimeDays),
		},
		{ID: "powerCost", Label: "Power cost", Amount: powerCost},
		{ID: "serviceCost", Label: "Service cost", Amount: serviceCost},
		{ID: "totalExpenses", Label: "Total expenses", Amount: totalExpense},
		{ID: "profit", Label: "Profit", Amount: profit},
		{ID: "finalSellPrice", Label: "Final sell price", Amount: finalSellPrice},
	}
	if allowRush {
		items = append(items, LineItem{ID: "rushFinalSellPrice", Label: "Rush final sell price", Amount: rushFinalSellPrice})
	}
	shownDelivery := designTimeDays
	if allowRush {
		shownDelivery = rushDesignTimeDays
	}
	items = append(items, LineItem{
		ID:      "estimatedDeliveryTime",
		Label:   "Estimated delivery time (days)",
		Amount:  shownDelivery,
		Display: FormatDays(shownDelivery),
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
		Detail: DesignDetail{
			QuoteFigures: QuoteFigures{
				FinalSellPrice:     finalSellPrice,
				RushFinalSellPrice: rushFinalSellPrice,
				Rush:               allowRush,
				TotalExpenses:      totalExpense,
				Profit:             profit,
				DeliveryDays:       designTimeDays,
				RushDeliveryDays:   rushDesignTimeDays,
			},
			ComplexityLevel:      complexityLevel,
			EffectiveDesignHours: effectiveDesignHours,
			DesignTimeDays:       designTimeDays,
			RushDesignTimeDays:   rushDesignTimeDays,
			PowerCost:            powerCost,
			ServiceCost:          serviceCost,
		},
	}
}

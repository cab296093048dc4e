package services

import "math"

// resinComplexityLevels maps the resin print complexity select to its numeric
// level; the load factor is 1 + level/2, same scale as 3D design.
var resinComplexityLevels = map[string]float64{
	"easy":     1,
	"novice":   2,
	"standard": 3,
	"hard":     4,
	"expert":   5,
}

// ResinDetail carries the intermediates of a resin printing quote.
type ResinDetail struct {
	QuoteFigures
	ComplexityLevel     float64
	EffectivePrintHours float64
	PrintTimeDays       float64
	RushPrintTimeDays   float64
	MachinePowerCost    float64
	MachineCost         float64
	ServiceCost         float64
}

// CalculateResinQuote prices a resin (SLA/DLP) print job: estimated machine
// hours scaled by the complexity factor, a three-day floor on the schedule,
// and costs for printer amortization, printer power and service labor with a
// single margin inversion.
func CalculateResinQuote(inputs map[string]string, cat *Catalogs) QuoteResult {
	machines := cat.Get("machines")

	estimatedPrintHours := ParseNumber(inputs["estimatedPrintHours"], 0)
	complexityLevel := complexityFor(resinComplexityLevels, inputs["resinComplexity"], "standard")

	margin := MarginFraction(ParseNumber(inputs["profitMarginPercent"], 0))
	allowRush := ParseFlag(inputs["allowRush"])
	electricalCostPerKwh := ParseNumber(inputs["electricalCostPerKwh"], defaultElectricalCostPerKwh)
	basicServiceCostPerHour := ParseNumber(inputs["basicServiceCostPerHour"], defaultServiceCostPerHour)

	complexityFactor := 1 + complexityLevel/2
	effectivePrintHours := estimatedPrintHours * complexityFactor

	printTimeDays := 0.0
	rushPrintTimeDays := 0.0
	if effectivePrintHours > 0 {
		printTimeDays = math.Max(minProjectDays, effectivePrintHours/perDayHours)
		if allowRush {
			rushPrintTimeDays = math.Max(minProjectDays, effectivePrintHours/perDayRushHours)
		}
	}

	machine := resolveMachine(inputs, inputs["resinMachineId"], "customMachine", machines)

	machinePowerCost := orZero(machine.PowerWatts * effectivePrintHours * electricalCostPerKwh / 1000)
	machineCost := orZero(machine.AdjustedPrice / machine.ROIHours * effectivePrintHours)
	serviceCost := orZero(printTimeDays * perDayHours * basicServiceCostPerHour)

	totalExpense := machinePowerCost + machineCost + serviceCost
	finalSellPrice := ApplyMargin(totalExpense, margin)

	rushFinalSellPrice := 0.0
	if allowRush {
		rushFinalSellPrice = finalSellPrice * rushPriceMultiplier
	}
	profit := finalSellPrice - totalExpense

	items := []LineItem{
		{
			ID:      "printTimeConsidered",
			Label:   "Print time considered (hours)",
			Amount:  effectivePrintHours,
			Display: FormatHours(effectivePrintHours),
		},
		{ID: "machinePowerCost", Label: "Machine power cost", Amount: machinePowerCost},
		{ID: "machineCost", Label: "Machine cost", Amount: machineCost},
		{ID: "serviceCost", Label: "Service cost", Amount: serviceCost},
		{ID: "totalExpenses", Label: "Total expenses", Amount: totalExpense},
		{ID: "profit", Label: "Profit", Amount: profit},
		{ID: "finalSellPrice", Label: "Final sell price", Amount: finalSellPrice},
	}
	if allowRush {
		items = append(items, LineItem{ID: "rushFinalSellPrice", Label: "Rush final sell price", Amount: rushFinalSellPrice})
	}
	shownDelivery := printTimeDays
	if allowRush {
		shownDelivery = rushPrintTimeDays
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
		Detail: ResinDetail{
			QuoteFigures: QuoteFigures{
				FinalSellPrice:     finalSellPrice,
				RushFinalSellPrice: rushFinalSellPrice,
				Rush:               allowRush,
				TotalExpenses:      totalExpense,
				Profit:             profit,
				DeliveryDays:       printTimeDays,
				RushDeliveryDays:   rushPrintTimeDays,
			},
			ComplexityLevel:     complexityLevel,
			EffectivePrintHours: effectivePrintHours,
			PrintTimeDays:       printTimeDays,
			RushPrintTimeDays:   rushPrintTimeDays,
			MachinePowerCost:    machinePowerCost,
			MachineCost:         machineCost,
			ServiceCost:         serviceCost,
		},
	}
}

package services

import "math"

// scanLaptopWatts is the assumed draw of the scanning laptop.
const scanLaptopWatts = 300.0

// scanComplexityLevels maps the scan complexity select to its numeric level.
// The load factor is (1 + level) / 2, so "easy" adds no time and "expert"
// slightly more than doubles the estimate.
var scanComplexityLevels = map[string]float64{
	"easy":     1,
	"novice":   1.4,
	"standard": 2,
	"hard":     2.75,
	"expert":   3.25,
}

// ScanDetail carries the intermediates of a 3D scan quote.
type ScanDetail struct {
	QuoteFigures
	ComplexityLevel    float64
	EffectiveScanHours float64
	ScanTimeDays       float64
	RushScanTimeDays   float64
	LaptopPowerCost    float64
	MachinePowerCost   float64
	MachineCost        float64
	ServiceCost        float64
}

// CalculateScanQuote prices a 3D scanning job: estimated hours scaled by the
// complexity factor, a three-day floor on the schedule, and costs for scanner
// amortization, scanner power, optional laptop power and service labor.
func CalculateScanQuote(inputs map[string]string, cat *Catalogs) QuoteResult {
	machines := cat.Get("machines")

	estimatedScanHours := ParseNumber(inputs["estimatedScanHours"], 0)
	complexityLevel := complexityFor(scanComplexityLevels, inputs["scanComplexity"], "standard")

	margin := MarginFraction(ParseNumber(inputs["profitMarginPercent"], 0))
	allowRush := ParseFlag(inputs["allowRush"])
	laptopUse := ParseFlag(inputs["laptopUse"])
	electricalCostPerKwh := ParseNumber(inputs["electricalCostPerKwh"], defaultElectricalCostPerKwh)
	basicServiceCostPerHour := ParseNumber(inputs["basicServiceCostPerHour"], defaultServiceCostPerHour)

	complexityFactor := (1 + complexityLevel) / 2
	effectiveScanHours := estimatedScanHours * complexityFactor

	scanTimeDays := 0.0
	rushScanTimeDays := 0.0
	if effectiveScanHours > 0 {
		scanTimeDays = math.Max(minProjectDays, effectiveScanHours/perDayHours)
		if allowRush {
			rushScanTimeDays = math.Max(minProjectDays, effectiveScanHours/perDayRushHours)
		}
	}

	machine := resolveMachine(inputs, inputs["scanMachineId"], "customMachine", machines)

	laptopPowerCost := 0.0
	if laptopUse {
		laptopPowerCost = orZero(scanLaptopWatts * effectiveScanHours * electricalCostPerKwh / 1000)
	}
	machinePowerCost := orZero(machine.PowerWatts * effectiveScanHours * electricalCostPerKwh / 1000)
	machineCost := orZero(machine.AdjustedPrice / machine.ROIHours * effectiveScanHours)
	serviceCost := orZero(scanTimeDays * perDayHours * basicServiceCostPerHour)

	totalExpense := laptopPowerCost + machinePowerCost + machineCost + serviceCost
	finalSellPrice := ApplyMargin(totalExpense, margin)

	rushFinalSellPrice := 0.0
	if allowRush {
		rushFinalSellPrice = finalSellPrice * rushPriceMultiplier
	}
	profit := finalSellPrice - totalExpense

	items := []LineItem{
		{
			ID:      "scanTimeConsidered",
			Label:   "Scan time considered (hours)",
			Amount:  effectiveScanHours,
			Display: FormatHours(effectiveScanHours),
		},
		{ID: "laptopPowerCost", Label: "Laptop power cost", Amount: laptopPowerCost},
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
	shownDelivery := scanTimeDays
	if allowRush {
		shownDelivery = rushScanTimeDays
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
		Detail: ScanDetail{
			QuoteFigures: QuoteFigures{
				FinalSellPrice:     finalSellPrice,
				RushFinalSellPrice: rushFinalSellPrice,
				Rush:               allowRush,
				TotalExpenses:      totalExpense,
				Profit:             profit,
				DeliveryDays:       scanTimeDays,
				RushDeliveryDays:   rushScanTimeDays,
			},
			ComplexityLevel:    complexityLevel,
			EffectiveScanHours: effectiveScanHours,
			ScanTimeDays:       scanTimeDays,
			RushScanTimeDays:   rushScanTimeDays,
			LaptopPowerCost:    laptopPowerCost,
			MachinePowerCost:   machinePowerCost,
			MachineCost:        machineCost,
			ServiceCost:        serviceCost,
		},
	}
}

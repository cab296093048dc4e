package services

import "math"

// FDM defaults. The lead time default is five times the print time; the
// operator can override it per quote.
const (
	fdmDefaultTestPrintCount     = 0.0
	fdmDefaultBatchCount         = 1.0
	fdmDefaultPreparationMinutes = 0.0
	fdmDefaultHandlingMinutes    = 10.0
	fdmLeadTimeMultiplier        = 5.0
)

// FDMDetail carries the intermediates of a filament or granulate print quote.
type FDMDetail struct {
	QuoteFigures
	TotalPrintTimeHours float64
	KgWeight            float64
	LeadTimeHours       float64
	CompletionDays      float64
	RushCompletionDays  float64
	TotalProfit         float64
}

// CalculateFDMQuote prices a single-material extrusion print job. It covers
// both the filament (FDM) and granulate (FGF) services, which share the same
// cost model and field set and differ only in catalog filtering.
//
// Machine and power cost are amortized over the print time, material cost
// over the part weight. Test prints carry half the profit margin of sell
// prints; service cost and misc costs carry none.
func CalculateFDMQuote(inputs map[string]string, cat *Catalogs) QuoteResult {
	machines := cat.Get("machines")
	materials := cat.Get("materials")

	printHours := ParseNumber(inputs["printHours"], 0)
	printMinutes := ParseNumber(inputs["printMinutes"], 0)
	printWeightGrams := ParseNumber(inputs["printWeightGrams"], 0)
	margin := MarginFraction(ParseNumber(inputs["profitMarginPercent"], 0))
	allowRush := ParseFlag(inputs["allowRush"])

	testPrintCount := ParseNumber(inputs["testPrintCount"], fdmDefaultTestPrintCount)
	batchCount := ParseNumber(inputs["batchCount"], fdmDefaultBatchCount)
	preparationMinutes := ParseNumber(inputs["preparationMinutes"], fdmDefaultPreparationMinutes)
	handlingMinutesPerBatch := ParseNumber(inputs["handlingMinutesPerBatch"], fdmDefaultHandlingMinutes)
	electricalCostPerKwh := ParseNumber(inputs["electricalCostPerKwh"], defaultElectricalCostPerKwh)
	basicServiceCostPerHour := ParseNumber(inputs["basicServiceCostPerHour"], defaultServiceCostPerHour)
	miscCosts := ParseNumber(inputs["miscCosts"], 0)

	totalPrintTimeHours := printHours
	if printMinutes > 0 {
		totalPrintTimeHours += printMinutes / 60
	}
	kgWeight := printWeightGrams / 1000
	leadTimeHours := ParseNumber(inputs["leadTimeHours"], totalPrintTimeHours*fdmLeadTimeMultiplier)

	machine := resolveMachine(inputs, inputs["printerMachineId"], "customMachine", machines)

	var materialPricePerKg float64
	if inputs["materialId"] == CustomOptionValue {
		materialPricePerKg = ParseNumber(inputs["customMaterialPricePerKg"], 0) / customMachineVATFactor
	} else if row, ok := FindRow(materials, "material_id", inputs["materialId"]); ok {
		materialPricePerKg = row.Float("adjusted_price_per_kg", 0)
	}

	machineCost := orZero(machine.AdjustedPrice / machine.ROIHours * totalPrintTimeHours)
	powerCost := orZero(machine.PowerWatts * totalPrintTimeHours / 1000 * electricalCostPerKwh)
	materialCost := orZero(kgWeight * materialPricePerKg)

	// Misc costs are per job, not per print, so they stay out of the
	// single print expense.
	singlePrintExpense := machineCost + powerCost + materialCost

	totalServiceMinutes := handlingMinutesPerBatch*(batchCount+testPrintCount) + preparationMinutes
	serviceCost := orZero(totalServiceMinutes * basicServiceCostPerHour / 60)

	testPrintsExpense := singlePrintExpense * testPrintCount
	sellPrintsExpense := singlePrintExpense * batchCount

	sellPrintsWithProfit := ApplyMargin(sellPrintsExpense, margin)
	sellPrintProfit := sellPrintsWithProfit - sellPrintsExpense

	// Test prints are billed at half the profit margin.
	testPrintsWithProfit := testPrintsExpense
	if margin < 0.99 {
		fullProfit := ApplyMargin(testPrintsExpense, margin) - testPrintsExpense
		testPrintsWithProfit = testPrintsExpense + fullProfit/2
	}
	testPrintProfit := testPrintsWithProfit - testPrintsExpense

	totalExpenses := serviceCost + testPrintsExpense + sellPrintsExpense + miscCosts
	totalProfit := sellPrintProfit + testPrintProfit

	finalSellPrice := sellPrintsWithProfit + testPrintsWithProfit + serviceCost + miscCosts

	rushFinalSellPrice := 0.0
	if allowRush {
		rushFinalSellPrice = finalSellPrice * rushPriceMultiplier
	}

	completionDays := 0.0
	rushCompletionDays := 0.0
	if totalPrintTimeHours > 0 {
		completionDays = math.Max(minProjectDays, math.Ceil(leadTimeHours/perDayHours))
		if allowRush {
			rushCompletionDays = math.Max(minProjectDays, math.Ceil(leadTimeHours/perDayRushHours))
		}
	}

	items := []LineItem{
		{ID: "machineCost", Label: "Machine cost", Amount: machineCost},
		{ID: "powerCost", Label: "Power cost", Amount: powerCost},
		{ID: "materialCost", Label: "Material cost", Amount: materialCost},
		{ID: "singlePrintExpense", Label: "Single print expense", Amount: singlePrintExpense},
		{ID: "miscCosts", Label: "Misc costs", Amount: miscCosts},
		{ID: "serviceCost", Label: "Service cost", Amount: serviceCost},
		{ID: "testPrintsExpense", Label: "Test prints expense", Amount: testPrintsExpense},
		{ID: "sellPrintsExpense", Label: "Sell prints expense", Amount: sellPrintsExpense},
		{ID: "testPrintsWithProfit", Label: "Test prints with profit", Amount: testPrintsWithProfit},
		{ID: "sellPrintsWithProfit", Label: "Sell prints with profit", Amount: sellPrintsWithProfit},
		{ID: "sellPrintProfit", Label: "Sell print profit", Amount: sellPrintProfit},
		{ID: "testPrintProfit", Label: "Test print profit", Amount: testPrintProfit},
		{ID: "totalExpenses", Label: "Total expenses", Amount: totalExpenses},
		{ID: "totalProfit", Label: "Total profit", Amount: totalProfit},
		{ID: "finalSellPrice", Label: "Final sell price", Amount: finalSellPrice},
	}
	if allowRush {
		items = append(items, LineItem{ID: "rushFinalSellPrice", Label: "Rush final sell price", Amount: rushFinalSellPrice})
	}
	items = append(items, LineItem{
		ID:      "completionTime",
		Label:   "Completion time",
		Amount:  completionDays,
		Display: FormatDays(completionDays),
	})
	if allowRush {
		items = append(items, LineItem{
			ID:      "rushCompletionTime",
			Label:   "Rush completion time",
			Amount:  rushCompletionDays,
			Display: FormatDays(rushCompletionDays),
		})
	}

	total := finalSellPrice
	if allowRush {
		total = rushFinalSellPrice
	}

	return QuoteResult{
		LineItems:   items,
		Subtotal:    totalExpenses,
		Adjustments: 0,
		Total:       total,
		Detail: FDMDetail{
			QuoteFigures: QuoteFigures{
				FinalSellPrice:     finalSellPrice,
				RushFinalSellPrice: rushFinalSellPrice,
				Rush:               allowRush,
				TotalExpenses:      totalExpenses,
				Profit:             totalProfit,
				DeliveryDays:       completionDays,
				RushDeliveryDays:   rushCompletionDays,
			},
			TotalPrintTimeHours: totalPrintTimeHours,
			KgWeight:            kgWeight,
			LeadTimeHours:       leadTimeHours,
			CompletionDays:      completionDays,
			RushCompletionDays:  rushCompletionDays,
			TotalProfit:         totalProfit,
		},
	}
}

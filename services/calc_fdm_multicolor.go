package services

import (
	"fmt"
	"math"
	"strconv"
)

// fdmMulticolorSlots is the number of material slots a multi-color job can
// use, matching the largest AMS-style setup the bureau runs.
const fdmMulticolorSlots = 8

// FDMMulticolorDetail carries the intermediates of a multi-color FDM quote.
type FDMMulticolorDetail struct {
	QuoteFigures
	TotalPrintTimeHours float64
	KgWeight            float64
	LeadTimeHours       float64
	CompletionDays      float64
	RushCompletionDays  float64
	TotalProfit         float64
	MaterialCosts       []float64
}

// CalculateFDMMulticolorQuote prices a multi-color FDM print job. The cost
// model is the single-color one with the material cost summed over up to
// eight material slots ("materialId1".."materialId8" with matching
// "materialWeightGrams1".."materialWeightGrams8"); empty slots contribute
// nothing. Multi-color slots have no custom-material option.
func CalculateFDMMulticolorQuote(inputs map[string]string, cat *Catalogs) QuoteResult {
	machines := cat.Get("machines")
	materials := cat.Get("materials")

	printHours := ParseNumber(inputs["printHours"], 0)
	printMinutes := ParseNumber(inputs["printMinutes"], 0)
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
	leadTimeHours := ParseNumber(inputs["leadTimeHours"], totalPrintTimeHours*fdmLeadTimeMultiplier)

	machine := resolveMachine(inputs, inputs["printerMachineId"], "customMachine", machines)

	materialCost := 0.0
	kgWeight := 0.0
	materialCosts := make([]float64, 0, fdmMulticolorSlots)
	for slot := 1; slot <= fdmMulticolorSlots; slot++ {
		n := strconv.Itoa(slot)
		weightGrams := ParseNumber(inputs["materialWeightGrams"+n], 0)
		if weightGrams <= 0 {
			materialCosts = append(materialCosts, 0)
			continue
		}
		pricePerKg := 0.0
		if row, ok := FindRow(materials, "material_id", inputs["materialId"+n]); ok {
			pricePerKg = row.Float("adjusted_price_per_kg", 0)
		}
		cost := weightGrams / 1000 * pricePerKg
		materialCosts = append(materialCosts, cost)
		materialCost += cost
		kgWeight += weightGrams / 1000
	}

	machineCost := orZero(machine.AdjustedPrice / machine.ROIHours * totalPrintTimeHours)
	powerCost := orZero(machine.PowerWatts * totalPrintTimeHours / 1000 * electricalCostPerKwh)

	singlePrintExpense := machineCost + powerCost + materialCost

	totalServiceMinutes := handlingMinutesPerBatch*(batchCount+testPrintCount) + preparationMinutes
	serviceCost := orZero(totalServiceMinutes * basicServiceCostPerHour / 60)

	testPrintsExpense := singlePrintExpense * testPrintCount
	sellPrintsExpense := singlePrintExpense * batchCount

	sellPrintsWithProfit := ApplyMargin(sellPrintsExpense, margin)
	sellPrintProfit := sellPrintsWithProfit - sellPrintsExpense

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
	}
	for slot, cost := range materialCosts {
		if cost <= 0 {
			continue
		}
		n := strconv.Itoa(slot + 1)
		items = append(items, LineItem{
			ID:     "materialCost" + n,
			Label:  fmt.Sprintf("Material %s cost", n),
			Amount: cost,
		})
	}
	items = append(items,
		LineItem{ID: "materialCost", Label: "Material cost", Amount: materialCost},
		LineItem{ID: "singlePrintExpense", Label: "Single print expense", Amount: singlePrintExpense},
		LineItem{ID: "miscCosts", Label: "Misc costs", Amount: miscCosts},
		LineItem{ID: "serviceCost", Label: "Service cost", Amount: serviceCost},
		LineItem{ID: "testPrintsExpense", Label: "Test prints expense", Amount: testPrintsExpense},
		LineItem{ID: "sellPrintsExpense", Label: "Sell prints expense", Amount: sellPrintsExpense},
		LineItem{ID: "testPrintsWithProfit", Label: "Test prints with profit", Amount: testPrintsWithProfit},
		LineItem{ID: "sellPrintsWithProfit", Label: "Sell prints with profit", Amount: sellPrintsWithProfit},
		LineItem{ID: "sellPrintProfit", Label: "Sell print profit", Amount: sellPrintProfit},
		LineItem{ID: "testPrintProfit", Label: "Test print profit", Amount: testPrintProfit},
		LineItem{ID: "totalExpenses", Label: "Total expenses", Amount: totalExpenses},
		LineItem{ID: "totalProfit", Label: "Total profit", Amount: totalProfit},
		LineItem{ID: "finalSellPrice", Label: "Final sell price", Amount: finalSellPrice},
	)
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
		Detail: FDMMulticolorDetail{
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
			MaterialCosts:       materialCosts,
		},
	}
}

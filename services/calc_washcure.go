package services

import "math"

// washCureElectricalCostPerKwh is the default electricity rate for wash and
// cure stations, slightly above the shop default to cover heating elements.
const washCureElectricalCostPerKwh = 13.5

// WashCureDetail carries the intermediates of a wash and cure quote.
type WashCureDetail struct {
	QuoteFigures
	TotalServiceTimeMinutes float64
	TotalMachineTimeMinutes float64
	WashMachineCost         float64
	CureMachineCost         float64
	WashMachinePowerCost    float64
	CureMachinePowerCost    float64
	ServiceCost             float64
}

// CalculateWashCureQuote prices resin part washing and curing. The two legs
// run independently with their own machine, batch count and cycle time;
// handling labor follows the larger batch count. Delivery is total machine
// plus handling minutes converted to eight-hour days, floored at three days
// when any time exists.
func CalculateWashCureQuote(inputs map[string]string, cat *Catalogs) QuoteResult {
	machines := cat.Get("machines")

	handleTimePerBatchMinutes := ParseNumber(inputs["handleTimePerBatchMinutes"], 0)
	washTimeMinutes := ParseNumber(inputs["washTimeMinutes"], 0)
	cureTimeMinutes := ParseNumber(inputs["cureTimeMinutes"], 0)

	margin := MarginFraction(ParseNumber(inputs["profitMarginPercent"], 0))
	allowRush := ParseFlag(inputs["allowRush"])

	washBatchCount := ParseNumber(inputs["washBatchCount"], 1)
	cureBatchCount := ParseNumber(inputs["cureBatchCount"], 1)
	electricalCostPerKwh := ParseNumber(inputs["electricalCostPerKwh"], washCureElectricalCostPerKwh)
	basicServiceCostPerHour := ParseNumber(inputs["basicServiceCostPerHour"], defaultServiceCostPerHour)

	washMachine := resolveMachine(inputs, inputs["washMachineId"], "customWashMachine", machines)
	cureMachine := resolveMachine(inputs, inputs["cureMachineId"], "customCureMachine", machines)

	largerBatchCount := washBatchCount
	if cureBatchCount > washBatchCount {
		largerBatchCount = cureBatchCount
	}
	totalServiceTimeMinutes := handleTimePerBatchMinutes * largerBatchCount
	totalMachineTimeMinutes := washTimeMinutes*washBatchCount + cureTimeMinutes*cureBatchCount

	washMachineCost := orZero(washTimeMinutes * washBatchCount * washMachine.AdjustedPrice / (washMachine.ROIHours * 60))
	cureMachineCost := orZero(cureTimeMinutes * cureBatchCount * cureMachine.AdjustedPrice / (cureMachine.ROIHours * 60))

	washMachinePowerCost := orZero(washTimeMinutes * washBatchCount * electricalCostPerKwh * washMachine.PowerWatts / (60 * 1000))
	cureMachinePowerCost := orZero(cureTimeMinutes * cureBatchCount * electricalCostPerKwh * cureMachine.PowerWatts / (60 * 1000))

	serviceCost := orZero(totalServiceTimeMinutes * basicServiceCostPerHour / 60)

	totalExpense := serviceCost + washMachineCost + cureMachineCost + washMachinePowerCost + cureMachinePowerCost
	finalSellPrice := ApplyMargin(totalExpense, margin)

	rushFinalSellPrice := 0.0
	if allowRush {
		rushFinalSellPrice = finalSellPrice * rushPriceMultiplier
	}
	profit := finalSellPrice - totalExpense

	totalMinutesForDelivery := totalMachineTimeMinutes + totalServiceTimeMinutes
	deliveryDays := 0.0
	rushDeliveryDays := 0.0
	if totalMinutesForDelivery > 0 {
		deliveryDays = math.Max(minProjectDays, totalMinutesForDelivery/(60*perDayHours))
		if allowRush {
			rushDeliveryDays = math.Max(minProjectDays, totalMinutesForDelivery/(60*perDayRushHours))
		}
	}

	items := []LineItem{
		{
			ID:      "totalServiceTime",
			Label:   "Total service time (minutes)",
			Amount:  totalServiceTimeMinutes,
			Display: FormatMinutes(totalServiceTimeMinutes),
		},
		{
			ID:      "totalMachineTime",
			Label:   "Total machine time (minutes)",
			Amount:  totalMachineTimeMinutes,
			Display: FormatMinutes(totalMachineTimeMinutes),
		},
		{ID: "washMachineCost", Label: "Wash machine cost", Amount: washMachineCost},
		{ID: "cureMachineCost", Label: "Cure machine cost", Amount: cureMachineCost},
		{ID: "washMachinePowerCost", Label: "Wash machine power cost", Amount: washMachinePowerCost},
		{ID: "cureMachinePowerCost", Label: "Cure machine power cost", Amount: cureMachinePowerCost},
		{ID: "serviceCost", Label: "Service cost", Amount: serviceCost},
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
		Detail: WashCureDetail{
			QuoteFigures: QuoteFigures{
				FinalSellPrice:     finalSellPrice,
				RushFinalSellPrice: rushFinalSellPrice,
				Rush:               allowRush,
				TotalExpenses:      totalExpense,
				Profit:             profit,
				DeliveryDays:       deliveryDays,
				RushDeliveryDays:   rushDeliveryDays,
			},
			TotalServiceTimeMinutes: totalServiceTimeMinutes,
			TotalMachineTimeMinutes: totalMachineTimeMinutes,
			WashMachineCost:         washMachineCost,
			CureMachineCost:         cureMachineCost,
			WashMachinePowerCost:    washMachinePowerCost,
			CureMachinePowerCost:    cureMachinePowerCost,
			ServiceCost:             serviceCost,
		},
	}
}

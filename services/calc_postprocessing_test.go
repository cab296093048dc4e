package services

import "testing"

func TestCalculatePostProcessingQuote_StandardJob(t *testing.T) {
	res := CalculatePostProcessingQuote(map[string]string{
		"estimatedPostProcessHours": "8",
		"postProcessComplexity":     "standard",
		"electricalToolUsage":       "moderate",
		"procurementCosts":          "100",
		"miscCosts":                 "50",
	}, nil)

	// 8h * factor 2.5 over 8h days = 2.5 days, no floor
	if got := lineAmount(t, res, "consideredServiceTime"); !approxEqual(got, 2.5) {
		t.Errorf("consideredServiceTime = %v, want 2.5", got)
	}
	// 2.5 days * 8h * 500
	if got := lineAmount(t, res, "serviceCost"); !approxEqual(got, 10000) {
		t.Errorf("serviceCost = %v, want 10000", got)
	}
	// 500W * 2.5 days * 12.5 * tool level 2 / 1000
	if got := lineAmount(t, res, "electricalCost"); !approxEqual(got, 31.25) {
		t.Errorf("electricalCost = %v, want 31.25", got)
	}
	if got := lineAmount(t, res, "totalExpenses"); !approxEqual(got, 10181.25) {
		t.Errorf("totalExpenses = %v, want 10181.25", got)
	}
	// service time plus slack: 2.5 + 8 * 1.5 / 8
	if got := lineAmount(t, res, "deliveryTime"); !approxEqual(got, 4) {
		t.Errorf("deliveryTime = %v, want 4", got)
	}
}

func TestCalculatePostProcessingQuote_NoMinimumDayFloor(t *testing.T) {
	res := CalculatePostProcessingQuote(map[string]string{
		"estimatedPostProcessHours": "1",
		"postProcessComplexity":     "minimal",
	}, nil)

	// 1h * factor 1.5 over 8h days, well under a day and not floored
	if got := lineAmount(t, res, "consideredServiceTime"); !approxEqual(got, 0.1875) {
		t.Errorf("consideredServiceTime = %v, want 0.1875", got)
	}
}

func TestCalculatePostProcessingQuote_HandToolsDrawNoPower(t *testing.T) {
	res := CalculatePostProcessingQuote(map[string]string{
		"estimatedPostProcessHours": "8",
		"postProcessComplexity":     "standard",
		"electricalToolUsage":       "none",
	}, nil)

	if got := lineAmount(t, res, "electricalCost"); got != 0 {
		t.Errorf("electricalCost = %v, want 0 for hand finishing", got)
	}
}

func TestCalculatePostProcessingQuote_RushDelivery(t *testing.T) {
	res := CalculatePostProcessingQuote(map[string]string{
		"estimatedPostProcessHours": "8",
		"postProcessComplexity":     "standard",
		"allowRush":                 "true",
	}, nil)

	detail := res.Detail.(PostProcessingDetail)
	// slack shrinks on 10h rush days: 2.5 + 8 * 1.5 / 10
	if !approxEqual(detail.RushDeliveryDays, 3.7) {
		t.Errorf("RushDeliveryDays = %v, want 3.7", detail.RushDeliveryDays)
	}
	if !approxEqual(detail.DeliveryDays, 4) {
		t.Errorf("DeliveryDays = %v, want 4", detail.DeliveryDays)
	}
}

func TestCalculatePostProcessingQuote_MarginAppliesToAllCosts(t *testing.T) {
	res := CalculatePostProcessingQuote(map[string]string{
		"estimatedPostProcessHours": "8",
		"postProcessComplexity":     "standard",
		"procurementCosts":          "1000",
		"profitMarginPercent":       "50",
	}, nil)

	expenses := lineAmount(t, res, "totalExpenses")
	final := lineAmount(t, res, "finalSellPrice")
	if !approxEqual(final, expenses*2) {
		t.Errorf("finalSellPrice = %v, want double the expenses %v at 50%% margin", final, expenses)
	}
}

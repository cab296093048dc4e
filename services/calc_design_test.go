package services

import (
	"math"
	"testing"
)

func TestCalculateDesignQuote_StandardComplexity(t *testing.T) {
	res := CalculateDesignQuote(map[string]string{
		"estimatedDesignHours": "16",
		"designComplexity":     "standard",
		"profitMarginPercent":  "20",
	}, nil)

	// 16h * 2.5 = 40h effective, 5 working days
	if got := lineAmount(t, res, "designTimeConsidered"); !approxEqual(got, 5) {
		t.Errorf("designTimeConsidered = %v, want 5", got)
	}
	// 1000W workstation * 5 days * 12.5 per kWh / 1000
	if got := lineAmount(t, res, "powerCost"); !approxEqual(got, 62.5) {
		t.Errorf("powerCost = %v, want 62.5", got)
	}
	// 5 days * 8h * 500
	if got := lineAmount(t, res, "serviceCost"); !approxEqual(got, 20000) {
		t.Errorf("serviceCost = %v, want 20000", got)
	}
	if got := lineAmount(t, res, "totalExpenses"); !approxEqual(got, 20062.5) {
		t.Errorf("totalExpenses = %v, want 20062.5", got)
	}
	if got := lineAmount(t, res, "finalSellPrice"); !approxEqual(got, 25078.125) {
		t.Errorf("finalSellPrice = %v, want 25078.125", got)
	}
	if got := lineAmount(t, res, "profit"); !approxEqual(got, 5015.625) {
		t.Errorf("profit = %v, want 5015.625", got)
	}
}

func TestCalculateDesignQuote_ComplexityLevels(t *testing.T) {
	tests := []struct {
		complexity  string
		expectHours float64
	}{
		{"easy", 15},     // factor 1.5
		{"novice", 20},   // factor 2
		{"standard", 25}, // factor 2.5
		{"hard", 30},     // factor 3
		{"expert", 35},   // factor 3.5
		{"", 25},         // defaults to standard
		{"bogus", 25},    // unknown defaults to standard
	}

	for _, tt := range tests {
		t.Run("complexity "+tt.complexity, func(t *testing.T) {
			res := CalculateDesignQuote(map[string]string{
				"estimatedDesignHours": "10",
				"designComplexity":     tt.complexity,
			}, nil)
			detail := res.Detail.(DesignDetail)
			if math.Abs(detail.EffectiveDesignHours-tt.expectHours) > 0.001 {
				t.Errorf("EffectiveDesignHours = %v, want %v", detail.EffectiveDesignHours, tt.expectHours)
			}
		})
	}
}

func TestCalculateDesignQuote_ThreeDayFloor(t *testing.T) {
	res := CalculateDesignQuote(map[string]string{
		"estimatedDesignHours": "1",
		"designComplexity":     "easy",
	}, nil)

	if got := lineAmount(t, res, "designTimeConsidered"); got != 3 {
		t.Errorf("designTimeConsidered = %v, want the 3 day floor", got)
	}
	if got := lineAmount(t, res, "serviceCost"); !approxEqual(got, 12000) {
		t.Errorf("serviceCost = %v, want 12000", got)
	}
}

func TestCalculateDesignQuote_RushDeliveryUsesTenHourDays(t *testing.T) {
	res := CalculateDesignQuote(map[string]string{
		"estimatedDesignHours": "16",
		"designComplexity":     "standard",
		"allowRush":            "true",
	}, nil)

	// 40h effective: 5 normal days, 4 rush days
	if got := lineAmount(t, res, "estimatedDeliveryTime"); !approxEqual(got, 4) {
		t.Errorf("estimatedDeliveryTime = %v, want rush schedule 4", got)
	}
	detail := res.Detail.(DesignDetail)
	if !approxEqual(detail.DesignTimeDays, 5) {
		t.Errorf("DesignTimeDays = %v, want 5", detail.DesignTimeDays)
	}
	if !approxEqual(detail.RushDesignTimeDays, 4) {
		t.Errorf("RushDesignTimeDays = %v, want 4", detail.RushDesignTimeDays)
	}
}

func TestCalculateDesignQuote_ZeroHours(t *testing.T) {
	res := CalculateDesignQuote(map[string]string{}, nil)

	if got := lineAmount(t, res, "designTimeConsidered"); got != 0 {
		t.Errorf("designTimeConsidered = %v, want 0", got)
	}
	if got := lineAmount(t, res, "finalSellPrice"); got != 0 {
		t.Errorf("finalSellPrice = %v, want 0", got)
	}
}

package services

import (
	"math"
	"testing"
)

func TestCalculateScanQuote_CatalogScannerWithLaptop(t *testing.T) {
	cat := testCatalogs()
	res := CalculateScanQuote(map[string]string{
		"estimatedScanHours": "4",
		"scanComplexity":     "standard",
		"scanMachineId":      "scan1",
		"laptopUse":          "true",
	}, cat)

	// standard is level 2, factor (1+2)/2 = 1.5, so 6 effective hours
	if got := lineAmount(t, res, "scanTimeConsidered"); !approxEqual(got, 6) {
		t.Errorf("scanTimeConsidered = %v, want 6", got)
	}
	// 219000/2190 per hour * 6h
	if got := lineAmount(t, res, "machineCost"); !approxEqual(got, 600) {
		t.Errorf("machineCost = %v, want 600", got)
	}
	// 60W * 6h * 12.5 / 1000
	if got := lineAmount(t, res, "machinePowerCost"); !approxEqual(got, 4.5) {
		t.Errorf("machinePowerCost = %v, want 4.5", got)
	}
	// 300W laptop * 6h * 12.5 / 1000
	if got := lineAmount(t, res, "laptopPowerCost"); !approxEqual(got, 22.5) {
		t.Errorf("laptopPowerCost = %v, want 22.5", got)
	}
	// 3 day floor * 8h * 500
	if got := lineAmount(t, res, "serviceCost"); !approxEqual(got, 12000) {
		t.Errorf("serviceCost = %v, want 12000", got)
	}
	if got := lineAmount(t, res, "totalExpenses"); !approxEqual(got, 12627) {
		t.Errorf("totalExpenses = %v, want 12627", got)
	}
}

func TestCalculateScanQuote_LaptopOffCostsNothing(t *testing.T) {
	cat := testCatalogs()
	res := CalculateScanQuote(map[string]string{
		"estimatedScanHours": "4",
		"scanComplexity":     "standard",
		"scanMachineId":      "scan1",
	}, cat)

	if got := lineAmount(t, res, "laptopPowerCost"); got != 0 {
		t.Errorf("laptopPowerCost = %v, want 0 when the laptop flag is off", got)
	}
}

func TestCalculateScanQuote_ComplexityLevels(t *testing.T) {
	tests := []struct {
		complexity  string
		expectHours float64
	}{
		{"easy", 10},       // level 1, factor 1
		{"novice", 12},     // level 1.4, factor 1.2
		{"standard", 15},   // level 2, factor 1.5
		{"hard", 18.75},    // level 2.75, factor 1.875
		{"expert", 21.25},  // level 3.25, factor 2.125
		{"unheard-of", 15}, // unknown defaults to standard
	}

	cat := testCatalogs()
	for _, tt := range tests {
		t.Run("complexity "+tt.complexity, func(t *testing.T) {
			res := CalculateScanQuote(map[string]string{
				"estimatedScanHours": "10",
				"scanComplexity":     tt.complexity,
			}, cat)
			detail := res.Detail.(ScanDetail)
			if math.Abs(detail.EffectiveScanHours-tt.expectHours) > 0.001 {
				t.Errorf("EffectiveScanHours = %v, want %v", detail.EffectiveScanHours, tt.expectHours)
			}
		})
	}
}

func TestCalculateScanQuote_CustomScanner(t *testing.T) {
	cat := testCatalogs()
	res := CalculateScanQuote(map[string]string{
		"estimatedScanHours":      "8",
		"scanComplexity":          "easy",
		"scanMachineId":           CustomOptionValue,
		"customMachinePricePhp":   "112000",
		"customMachineRoiHours":   "1000",
		"customMachinePowerWatts": "100",
	}, cat)

	// 100000 net of VAT over 1000h, 8 effective hours
	if got := lineAmount(t, res, "machineCost"); !approxEqual(got, 800) {
		t.Errorf("machineCost = %v, want 800", got)
	}
	if got := lineAmount(t, res, "machinePowerCost"); !approxEqual(got, 10) {
		t.Errorf("machinePowerCost = %v, want 10", got)
	}
}

func TestCalculateScanQuote_RushSchedule(t *testing.T) {
	cat := testCatalogs()
	res := CalculateScanQuote(map[string]string{
		"estimatedScanHours": "40",
		"scanComplexity":     "easy",
		"allowRush":          "true",
	}, cat)

	detail := res.Detail.(ScanDetail)
	// 40 effective hours: 5 normal days, 4 rush days
	if !approxEqual(detail.ScanTimeDays, 5) {
		t.Errorf("ScanTimeDays = %v, want 5", detail.ScanTimeDays)
	}
	if !approxEqual(detail.RushScanTimeDays, 4) {
		t.Errorf("RushScanTimeDays = %v, want 4", detail.RushScanTimeDays)
	}
	if !approxEqual(res.Total, lineAmount(t, res, "rushFinalSellPrice")) {
		t.Errorf("Total = %v, want the rush price", res.Total)
	}
}

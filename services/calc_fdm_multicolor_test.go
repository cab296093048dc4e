package services

import "testing"

func TestCalculateFDMMulticolorQuote_SumsMaterialSlots(t *testing.T) {
	cat := testCatalogs()
	res := CalculateFDMMulticolorQuote(map[string]string{
		"printHours":           "2.5",
		"printerMachineId":     "mk4",
		"materialId1":          "pla-black",
		"materialWeightGrams1": "100",
		"materialId3":          "petg-red",
		"materialWeightGrams3": "250",
	}, cat)

	if got := lineAmount(t, res, "materialCost1"); !approxEqual(got, 80) {
		t.Errorf("materialCost1 = %v, want 80", got)
	}
	if got := lineAmount(t, res, "materialCost3"); !approxEqual(got, 250) {
		t.Errorf("materialCost3 = %v, want 250", got)
	}
	if hasLineItem(res, "materialCost2") {
		t.Error("materialCost2 present for an empty slot")
	}
	if got := lineAmount(t, res, "materialCost"); !approxEqual(got, 330) {
		t.Errorf("materialCost = %v, want 330", got)
	}
	// machine and power match the single-color model
	if got := lineAmount(t, res, "machineCost"); !approxEqual(got, 57.0776) {
		t.Errorf("machineCost = %v, want 57.0776", got)
	}
	if got := lineAmount(t, res, "singlePrintExpense"); !approxEqual(got, 396.4526) {
		t.Errorf("singlePrintExpense = %v, want 396.4526", got)
	}

	detail, ok := res.Detail.(FDMMulticolorDetail)
	if !ok {
		t.Fatalf("Detail is %T, want FDMMulticolorDetail", res.Detail)
	}
	if len(detail.MaterialCosts) != 8 {
		t.Fatalf("MaterialCosts has %d slots, want 8", len(detail.MaterialCosts))
	}
	if !approxEqual(detail.KgWeight, 0.35) {
		t.Errorf("KgWeight = %v, want 0.35", detail.KgWeight)
	}
}

func TestCalculateFDMMulticolorQuote_SlotWithUnknownMaterial(t *testing.T) {
	cat := testCatalogs()
	res := CalculateFDMMulticolorQuote(map[string]string{
		"printHours":           "1",
		"materialId1":          "unknown-material",
		"materialWeightGrams1": "100",
	}, cat)

	// weight counts toward the load, price is unknown so the cost is zero
	if got := lineAmount(t, res, "materialCost"); got != 0 {
		t.Errorf("materialCost = %v, want 0", got)
	}
	if hasLineItem(res, "materialCost1") {
		t.Error("materialCost1 present for a zero-cost slot")
	}
}

func TestCalculateFDMMulticolorQuote_NoSlots(t *testing.T) {
	cat := testCatalogs()
	res := CalculateFDMMulticolorQuote(map[string]string{
		"printHours":       "2",
		"printerMachineId": "mk4",
	}, cat)

	if got := lineAmount(t, res, "materialCost"); got != 0 {
		t.Errorf("materialCost = %v, want 0", got)
	}
	single := lineAmount(t, res, "singlePrintExpense")
	wantSingle := lineAmount(t, res, "machineCost") + lineAmount(t, res, "powerCost")
	if !approxEqual(single, wantSingle) {
		t.Errorf("singlePrintExpense = %v, want machine plus power %v", single, wantSingle)
	}
}

package services

import (
	"math"
	"testing"
)

// testCatalogs builds an in-memory catalog set with one machine per service
// family and a couple of filament materials.
func testCatalogs() *Catalogs {
	cat := NewCatalogs()
	cat.Put("machines", []CatalogRow{
		{
			"machine_id":                 "mk4",
			"machine_name":               "Prusa MK4",
			"brand":                      "Prusa",
			"job_type":                   "FDM printing",
			"adjusted_machine_price_php": "50000",
			"roi_hours":                  "2190",
			"power_watts":                "300",
		},
		{
			"machine_id":                 "scan1",
			"machine_name":               "Einscan Pro HD",
			"brand":                      "Shining3D",
			"job_type":                   "3d scan",
			"adjusted_machine_price_php": "219000",
			"roi_hours":                  "2190",
			"power_watts":                "60",
		},
		{
			"machine_id":                 "resin1",
			"machine_name":               "Form 4",
			"brand":                      "Formlabs",
			"job_type":                   "resin printing",
			"adjusted_machine_price_php": "43800",
			"roi_hours":                  "2190",
			"power_watts":                "150",
		},
		{
			"machine_id":                 "wash1",
			"machine_name":               "Wash Station L",
			"brand":                      "Anycubic",
			"job_type":                   "wash cure",
			"adjusted_machine_price_php": "21900",
			"roi_hours":                  "2190",
			"power_watts":                "600",
		},
		{
			"machine_id":                 "cure1",
			"machine_name":               "Cure Station L",
			"brand":                      "Anycubic",
			"job_type":                   "wash cure",
			"adjusted_machine_price_php": "13140",
			"roi_hours":                  "2190",
			"power_watts":                "400",
		},
	})
	cat.Put("materials", []CatalogRow{
		{
			"material_id":           "pla-black",
			"material_name":         "PLA Black",
			"material_type":         "PLA",
			"Job_type":              "FDM printing",
			"adjusted_price_per_kg": "800",
		},
		{
			"material_id":           "petg-red",
			"material_name":         "PETG Red",
			"material_type":         "PETG",
			"Job_type":              "FDM printing",
			"adjusted_price_per_kg": "1000",
		},
	})
	return cat
}

// lineAmount fetches a line item amount by id, failing the test when the item
// is missing.
func lineAmount(t *testing.T, res QuoteResult, id string) float64 {
	t.Helper()
	for _, item := range res.LineItems {
		if item.ID == id {
			return item.Amount
		}
	}
	t.Fatalf("line item %q not found", id)
	return 0
}

// hasLineItem reports whether the result carries a line item with the id.
func hasLineItem(res QuoteResult, id string) bool {
	for _, item := range res.LineItems {
		if item.ID == id {
			return true
		}
	}
	return false
}

// approxEqual compares floats with the tolerance used across these tests.
func approxEqual(a, b float64) bool {
	return math.Abs(a-b) <= 0.001
}

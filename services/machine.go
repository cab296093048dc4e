package services

// CustomOptionValue is the sentinel select value meaning "specify the
// resource manually instead of picking a catalog row".
const CustomOptionValue = "__custom__"

const (
	defaultElectricalCostPerKwh = 12.5
	defaultServiceCostPerHour   = 500.0
	defaultMachineROIHours      = 2190.0
	customMachineVATFactor      = 1.12
	rushPriceMultiplier         = 1.5
	perDayHours                 = 8.0
	perDayRushHours             = 10.0
	minProjectDays              = 3.0
)

// machineSpec is the resolved cost profile of a machine, whether it came from
// the machines catalog or from custom override fields.
type machineSpec struct {
	AdjustedPrice float64
	ROIHours      float64
	PowerWatts    float64
}

// resolveMachine looks a machine up by id in the machines catalog, or builds
// the profile from the customPrefix+"PricePhp"/"RoiHours"/"PowerWatts" inputs
// when the id is the custom sentinel. A custom price is net of VAT; missing
// ROI falls back to the standard amortization window. An unknown id resolves
// to a zero-cost machine so a quote never fails outright.
func resolveMachine(inputs map[string]string, machineID, customPrefix string, machines []CatalogRow) machineSpec {
	if machineID == CustomOptionValue {
		price := ParseNumber(inputs[customPrefix+"PricePhp"], 0)
		adjusted := 0.0
		if price > 0 {
			adjusted = price / customMachineVATFactor
		}
		return machineSpec{
			AdjustedPrice: adjusted,
			ROIHours:      ParseNumber(inputs[customPrefix+"RoiHours"], defaultMachineROIHours),
			PowerWatts:    ParseNumber(inputs[customPrefix+"PowerWatts"], 0),
		}
	}

	row, ok := FindRow(machines, "machine_id", machineID)
	if !ok {
		return machineSpec{ROIHours: defaultMachineROIHours}
	}
	return machineSpec{
		AdjustedPrice: row.Float("adjusted_machine_price_php", 0),
		ROIHours:      row.Float("roi_hours", defaultMachineROIHours),
		PowerWatts:    row.Float("power_watts", 0),
	}
}

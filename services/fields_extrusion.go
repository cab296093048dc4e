package services

import "fmt"

// The FDM and FGF forms are identical apart from which machines and materials
// they draw from, so both are built from one template. Multi-color swaps the
// single material block for eight optional material slots.

var fdmSingleColorFields = buildExtrusionFields("fdm printing", "FDM Printing", "e.g. Custom FDM Printer")

var fgfPrintingFields = buildExtrusionFields("FGF printing", "FGF Printing", "e.g. Custom FGF System")

func buildExtrusionFields(machineJobType, materialJobType, customMachineExample string) []Field {
	fields := []Field{
		{ID: "printTimeSection", Label: "Print time", Input: InputSection},
		{ID: "printHours", Label: "Print hours", Input: InputNumber, Required: true, Placeholder: "Hours"},
		{ID: "printMinutes", Label: "Print minutes", Input: InputNumber, Placeholder: "Minutes"},

		{ID: "partDetailsSection", Label: "Part details", Input: InputSection},
		{ID: "printWeightGrams", Label: "Print weight (g)", Input: InputNumber, Required: true, Placeholder: "Weight in grams"},
		{ID: "profitMarginPercent", Label: "Profit margin (%)", Input: InputNumber, Required: true, Placeholder: "e.g. 30"},
		{ID: "allowRush", Label: "Allow rush option", Input: InputCheckbox},

		{ID: "machineSection", Label: "Machine and material", Input: InputSection},
		{
			ID:                 "printerBrand",
			Label:              "Printer brand",
			Input:              InputSelect,
			Required:           true,
			CatalogID:          "machines",
			FilterJobType:      machineJobType,
			DistinctValueField: "brand",
			OptionValueField:   "brand",
			OptionLabelField:   "brand",
		},
		{
			ID:                  "printerMachineId",
			Label:               "Printer",
			Input:               InputSelect,
			Required:            true,
			CatalogID:           "machines",
			FilterJobType:       machineJobType,
			FilterByFieldID:     "printerBrand",
			FilterByFieldColumn: "brand",
			OptionValueField:    "machine_id",
			OptionLabelField:    "machine_name",
			AllowCustom:         true,
		},
		{
			ID:                 "materialType",
			Label:              "Material type",
			Input:              InputSelect,
			Required:           true,
			CatalogID:          "materials",
			FilterJobType:      materialJobType,
			DistinctValueField: "material_type",
			OptionValueField:   "material_type",
			OptionLabelField:   "material_type",
		},
		{
			ID:                  "materialId",
			Label:               "Material",
			Input:               InputSelect,
			Required:            true,
			CatalogID:           "materials",
			FilterJobType:       materialJobType,
			FilterByFieldID:     "materialType",
			FilterByFieldColumn: "material_type",
			OptionValueField:    "material_id",
			OptionLabelField:    "material_name",
			AllowCustom:         true,
		},

		{ID: "extraFieldsSection", Label: "Extra Fields", Input: InputSection},
	}

	fields = append(fields, extrusionAdvancedFields()...)
	fields = append(fields, customMachineFields("customMachine", "Custom machine", customMachineExample)...)
	fields = append(fields,
		Field{ID: "customMaterialSection", Label: "Custom material (used only when Material = Custom option...)", Input: InputSection},
		Field{ID: "customMaterialName", Label: "Custom material name", Input: InputText, Placeholder: "e.g. Special Blend", UpdateOnBlur: true},
		Field{ID: "customMaterialPricePerKg", Label: "Custom material price per kg (PHP)", Input: InputNumber, Placeholder: "Price per kg in PHP", UpdateOnBlur: true},
		Field{ID: "customMaterialType", Label: "Custom material type", Input: InputText, Placeholder: "e.g. ABS, PETG, PLA, etc.", UpdateOnBlur: true},
	)
	return fields
}

func extrusionAdvancedFields() []Field {
	return []Field{
		{ID: "advancedSection", Label: "Advanced fields", Input: InputSection},
		{ID: "testPrintCount", Label: "Number of test prints", Input: InputNumber, Placeholder: "Default 0", UpdateOnBlur: true},
		{ID: "batchCount", Label: "Number of batches", Input: InputNumber, Placeholder: "Default 1", UpdateOnBlur: true},
		{ID: "preparationMinutes", Label: "Preparation minutes", Input: InputNumber, Placeholder: "Setup time in minutes", UpdateOnBlur: true},
		{ID: "handlingMinutesPerBatch", Label: "Handling minutes per batch", Input: InputNumber, Placeholder: "Handling per batch in minutes (default 10)", UpdateOnBlur: true},
		{ID: "electricalCostPerKwh", Label: "Electrical cost per kWh (PHP)", Input: InputNumber, Placeholder: "Default 12.5", UpdateOnBlur: true},
		{ID: "basicServiceCostPerHour", Label: "Basic service cost per hour (PHP)", Input: InputNumber, Placeholder: "Default 500", UpdateOnBlur: true},
		{ID: "leadTimeHours", Label: "Lead time (hours)", Input: InputNumber, Placeholder: "Auto default = Total print time x 5, hard minimum cap of 3 days", UpdateOnBlur: true},
		{ID: "miscCosts", Label: "Misc costs (PHP)", Input: InputNumber, Placeholder: "Additional costs not covered above", UpdateOnBlur: true},
		{ID: "notes", Label: "Notes", Input: InputTextarea, Placeholder: "Add notes and misc cost breakdown here", UpdateOnBlur: true},
	}
}

// customMachineFields builds the override block shown when a machine select
// is set to the custom sentinel. prefix matches what the calculators read,
// e.g. "customMachine" or "customWashMachine".
func customMachineFields(prefix, title, example string) []Field {
	return []Field{
		{ID: prefix + "Section", Label: title + " (used only when the machine select = Custom option...)", Input: InputSection},
		{ID: prefix + "Name", Label: title + " name", Input: InputText, Placeholder: example, UpdateOnBlur: true},
		{ID: prefix + "PricePhp", Label: title + " price (PHP)", Input: InputNumber, Placeholder: "Gross/total price; adjusted in calculator", UpdateOnBlur: true},
		{ID: prefix + "RoiHours", Label: title + " ROI hours", Input: InputNumber, Placeholder: "Default 2190 if empty", UpdateOnBlur: true},
		{ID: prefix + "PowerWatts", Label: title + " power (W)", Input: InputNumber, Placeholder: "Power consumption in watts", UpdateOnBlur: true},
	}
}

var fdmMulticolorFields = buildFDMMulticolorFields()

func buildFDMMulticolorFields() []Field {
	fields := []Field{
		{ID: "printTimeSection", Label: "Print time", Input: InputSection},
		{ID: "printHours", Label: "Print hours", Input: InputNumber, Required: true, Placeholder: "Hours"},
		{ID: "printMinutes", Label: "Print minutes", Input: InputNumber, Placeholder: "Minutes"},

		{ID: "pricingSection", Label: "Pricing & options", Input: InputSection},
		{ID: "profitMarginPercent", Label: "Profit margin (%)", Input: InputNumber, Required: true, Placeholder: "e.g. 30"},
		{ID: "allowRush", Label: "Allow rush option", Input: InputCheckbox},

		{ID: "machineSection", Label: "Machine", Input: InputSection},
		{
			ID:                 "printerBrand",
			Label:              "Printer brand",
			Input:              InputSelect,
			Required:           true,
			CatalogID:          "machines",
			FilterJobType:      "fdm printing",
			DistinctValueField: "brand",
			OptionValueField:   "brand",
			OptionLabelField:   "brand",
		},
		{
			ID:                  "printerMachineId",
			Label:               "Printer",
			Input:               InputSelect,
			Required:            true,
			CatalogID:           "machines",
			FilterJobType:       "fdm printing",
			FilterByFieldID:     "printerBrand",
			FilterByFieldColumn: "brand",
			OptionValueField:    "machine_id",
			OptionLabelField:    "machine_name",
			AllowCustom:         true,
		},

		{ID: "extraFieldsSection", Label: "Extra Fields", Input: InputSection},
	}

	for slot := 1; slot <= fdmMulticolorSlots; slot++ {
		fields = append(fields, materialSlotFields(slot)...)
	}

	fields = append(fields, extrusionAdvancedFields()...)
	fields = append(fields, customMachineFields("customMachine", "Custom machine", "e.g. Custom FDM Multi-color")...)
	return fields
}

// materialSlotFields builds the optional Material N block. Slots have no
// custom-material option and no required fields; empty slots are skipped by
// the calculator.
func materialSlotFields(index int) []Field {
	label := fmt.Sprintf("Material %d", index)
	typeID := fmt.Sprintf("materialType%d", index)
	return []Field{
		{ID: fmt.Sprintf("materialSection%d", index), Label: label, Input: InputSection},
		{
			ID:                 typeID,
			Label:              label + " type",
			Input:              InputSelect,
			CatalogID:          "materials",
			FilterJobType:      "FDM Printing",
			DistinctValueField: "material_type",
			OptionValueField:   "material_type",
			OptionLabelField:   "material_type",
		},
		{
			ID:                  fmt.Sprintf("materialId%d", index),
			Label:               label,
			Input:               InputSelect,
			CatalogID:           "materials",
			FilterJobType:       "FDM Printing",
			FilterByFieldID:     typeID,
			FilterByFieldColumn: "material_type",
			OptionValueField:    "material_id",
			OptionLabelField:    "material_name",
		},
		{ID: fmt.Sprintf("materialWeightGrams%d", index), Label: label + " weight (g)", Input: InputNumber, Placeholder: "Weight in grams for this color"},
	}
}

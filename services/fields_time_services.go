package services

// Field sets for the time-driven services: 3D design, 3D scan, resin
// printing, post-processing and wash & cure.

var designFields = []Field{
	{ID: "designCoreSection", Label: "Design details", Input: InputSection},
	{ID: "estimatedDesignHours", Label: "Estimated design hours", Input: InputNumber, Required: true, Placeholder: "Estimated design time in hours"},
	{
		ID:       "designComplexity",
		Label:    "Design complexity",
		Input:    InputSelect,
		Required: true,
		Options: []Option{
			{Value: "Easy", Label: "Easy"},
			{Value: "Novice", Label: "Novice"},
			{Value: "Standard", Label: "Standard"},
			{Value: "Hard", Label: "Hard"},
			{Value: "Expert", Label: "Expert"},
		},
	},
	{ID: "profitMarginPercent", Label: "Profit margin (%)", Input: InputNumber, Required: true, Placeholder: "e.g. 30"},
	{ID: "allowRush", Label: "Allow rush option", Input: InputCheckbox},
	{ID: "notes", Label: "Notes", Input: InputTextarea, Placeholder: "Add notes here", UpdateOnBlur: true},

	{ID: "extraFieldsSection", Label: "Extra Fields", Input: InputSection},

	{ID: "advancedSection", Label: "Advanced fields", Input: InputSection},
	{ID: "electricalCostPerKwh", Label: "Electrical cost per kWh (PHP)", Input: InputNumber, Placeholder: "Default 12.5", UpdateOnBlur: true},
	{ID: "basicServiceCostPerHour", Label: "Basic service cost per hour (PHP)", Input: InputNumber, Placeholder: "Default 500", UpdateOnBlur: true},
}

var scanFields = buildScanFields()

func buildScanFields() []Field {
	fields := []Field{
		{ID: "scanCoreSection", Label: "Scan details", Input: InputSection},
		{ID: "estimatedScanHours", Label: "Estimated scan time (hours)", Input: InputNumber, Required: true, Placeholder: "Estimated scan time in hours"},
		{
			ID:       "scanComplexity",
			Label:    "Scan complexity",
			Input:    InputSelect,
			Required: true,
			Options: []Option{
				{Value: "Easy", Label: "Easy"},
				{Value: "Novice", Label: "Novice"},
				{Value: "Standard", Label: "Standard"},
				{Value: "Hard", Label: "Hard"},
				{Value: "Expert", Label: "Expert"},
			},
		},
		{ID: "profitMarginPercent", Label: "Profit margin (%)", Input: InputNumber, Required: true, Placeholder: "e.g. 30"},
		{ID: "allowRush", Label: "Allow rush option", Input: InputCheckbox},
		{ID: "laptopUse", Label: "Laptop used during scan", Input: InputCheckbox},

		{ID: "machineSection", Label: "Scanning machine", Input: InputSection},
		{
			ID:               "scanMachineId",
			Label:            "Scanning machine",
			Input:            InputSelect,
			Required:         true,
			CatalogID:        "machines",
			FilterJobType:    "3d scan",
			OptionValueField: "machine_id",
			OptionLabelField: "machine_name",
			AllowCustom:      true,
		},

		{ID: "extraFieldsSection", Label: "Extra Fields", Input: InputSection},

		{ID: "advancedSection", Label: "Advanced fields", Input: InputSection},
		{ID: "electricalCostPerKwh", Label: "Electrical cost per kWh (PHP)", Input: InputNumber, Placeholder: "Default 12.5", UpdateOnBlur: true},
		{ID: "basicServiceCostPerHour", Label: "Basic service cost per hour (PHP)", Input: InputNumber, Placeholder: "Default 500", UpdateOnBlur: true},
	}
	fields = append(fields, customMachineFields("customMachine", "Custom machine", "e.g. Custom 3D Scanner")...)
	return fields
}

var resinFields = buildResinFields()

func buildResinFields() []Field {
	fields := []Field{
		{ID: "resinCoreSection", Label: "Resin print details", Input: InputSection},
		{ID: "estimatedPrintHours", Label: "Estimated print time (hours)", Input: InputNumber, Required: true, Placeholder: "Estimated print time in hours"},
		{
			ID:       "resinComplexity",
			Label:    "Print complexity",
			Input:    InputSelect,
			Required: true,
			Options: []Option{
				{Value: "Easy", Label: "Easy"},
				{Value: "Novice", Label: "Novice"},
				{Value: "Standard", Label: "Standard"},
				{Value: "Hard", Label: "Hard"},
				{Value: "Expert", Label: "Expert"},
			},
		},
		{ID: "profitMarginPercent", Label: "Profit margin (%)", Input: InputNumber, Required: true, Placeholder: "e.g. 30"},
		{ID: "allowRush", Label: "Allow rush option", Input: InputCheckbox},

		{ID: "machineSection", Label: "Resin printer", Input: InputSection},
		{
			ID:               "resinMachineId",
			Label:            "Resin printer",
			Input:            InputSelect,
			Required:         true,
			CatalogID:        "machines",
			FilterJobType:    "resin printing",
			OptionValueField: "machine_id",
			OptionLabelField: "machine_name",
			AllowCustom:      true,
		},

		{ID: "extraFieldsSection", Label: "Extra Fields", Input: InputSection},

		{ID: "advancedSection", Label: "Advanced fields", Input: InputSection},
		{ID: "electricalCostPerKwh", Label: "Electrical cost per kWh (PHP)", Input: InputNumber, Placeholder: "Default 12.5", UpdateOnBlur: true},
		{ID: "basicServiceCostPerHour", Label: "Basic service cost per hour (PHP)", Input: InputNumber, Placeholder: "Default 500", UpdateOnBlur: true},
	}
	fields = append(fields, customMachineFields("customMachine", "Custom machine", "e.g. Custom Resin Printer")...)
	return fields
}

var postProcessingFields = []Field{
	{ID: "coreSection", Label: "Post processing details", Input: InputSection},
	{ID: "estimatedPostProcessHours", Label: "Estimated total post processing time (hours)", Input: InputNumber, Required: true, Placeholder: "Total post processing time in hours"},
	{
		ID:       "postProcessComplexity",
		Label:    "Post process complexity",
		Input:    InputSelect,
		Required: true,
		Options: []Option{
			{Value: "minimal", Label: "minimal"},
			{Value: "easy", Label: "easy"},
			{Value: "standard", Label: "standard"},
			{Value: "hard", Label: "hard"},
			{Value: "extreme", Label: "extreme"},
		},
	},
	{ID: "profitMarginPercent", Label: "Profit margin (%)", Input: InputNumber, Required: true, Placeholder: "e.g. 30"},
	{ID: "allowRush", Label: "Allow rush option", Input: InputCheckbox},
	{
		ID:       "electricalToolUsage",
		Label:    "Electrical tool usage level",
		Input:    InputSelect,
		Required: true,
		Options: []Option{
			{Value: "none", Label: "none"},
			{Value: "minimal", Label: "minimal"},
			{Value: "moderate", Label: "moderate"},
			{Value: "significant", Label: "significant"},
			{Value: "heavy", Label: "heavy"},
		},
	},
	{ID: "procurementCosts", Label: "Procurement costs (PHP)", Input: InputNumber, Placeholder: "Total procurement costs, if any"},
	{ID: "miscCosts", Label: "Misc costs (PHP)", Input: InputNumber, Placeholder: "Miscellaneous costs"},
	{ID: "notes", Label: "Notes", Input: InputTextarea, Placeholder: "Add notes and misc cost breakdown here", UpdateOnBlur: true},

	{ID: "extraFieldsSection", Label: "Extra Fields", Input: InputSection},

	{ID: "advancedSection", Label: "Advanced fields", Input: InputSection},
	{ID: "electricalCostPerKwh", Label: "Electrical cost per kWh (PHP)", Input: InputNumber, Placeholder: "Default 12.5", UpdateOnBlur: true},
	{ID: "basicServiceCostPerHour", Label: "Basic service cost per hour (PHP)", Input: InputNumber, Placeholder: "Default 500", UpdateOnBlur: true},
}

var washCureFields = buildWashCureFields()

func buildWashCureFields() []Field {
	fields := []Field{
		{ID: "coreSection", Label: "Wash & Cure details", Input: InputSection},
		{ID: "handleTimePerBatchMinutes", Label: "Wash & cure handle time per batch (minutes)", Input: InputNumber, Required: true, Placeholder: "Handling time in minutes per batch"},
		{ID: "washTimeMinutes", Label: "Wash time (minutes)", Input: InputNumber, Required: true, Placeholder: "Wash time per batch in minutes"},
		{
			ID:               "washMachineId",
			Label:            "Wash machine",
			Input:            InputSelect,
			Required:         true,
			CatalogID:        "machines",
			FilterJobType:    "wash cure",
			OptionValueField: "machine_id",
			OptionLabelField: "machine_name",
			AllowCustom:      true,
		},
		{ID: "cureTimeMinutes", Label: "Cure time (minutes)", Input: InputNumber, Required: true, Placeholder: "Cure time per batch in minutes"},
		{
			ID:               "cureMachineId",
			Label:            "Cure machine",
			Input:            InputSelect,
			Required:         true,
			CatalogID:        "machines",
			FilterJobType:    "wash cure",
			OptionValueField: "machine_id",
			OptionLabelField: "machine_name",
			AllowCustom:      true,
		},
		{ID: "profitMarginPercent", Label: "Profit margin (%)", Input: InputNumber, Required: true, Placeholder: "e.g. 30"},
		{ID: "allowRush", Label: "Allow rush option", Input: InputCheckbox},

		{ID: "extraFieldsSection", Label: "Extra Fields", Input: InputSection},

		{ID: "advancedSection", Label: "Advanced fields", Input: InputSection},
		{ID: "washBatchCount", Label: "Wash batches", Input: InputNumber, Placeholder: "Default 1", UpdateOnBlur: true},
		{ID: "cureBatchCount", Label: "Cure batches", Input: InputNumber, Placeholder: "Default 1", UpdateOnBlur: true},
		{ID: "electricalCostPerKwh", Label: "Electrical cost per kWh (PHP)", Input: InputNumber, Placeholder: "Default 13.5", UpdateOnBlur: true},
		{ID: "basicServiceCostPerHour", Label: "Basic service cost per hour (PHP)", Input: InputNumber, Placeholder: "Default 500", UpdateOnBlur: true},
	}
	fields = append(fields, customMachineFields("customWashMachine", "Custom wash machine", "e.g. Custom Wash Unit")...)
	fields = append(fields, customMachineFields("customCureMachine", "Custom cure machine", "e.g. Custom Cure Unit")...)
	return fields
}

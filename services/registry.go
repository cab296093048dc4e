package services

// CalculatorFunc prices one tab's committed inputs against the catalogs.
type CalculatorFunc func(inputs map[string]string, cat *Catalogs) QuoteResult

// ServiceType binds a service id to its display label, ordered field list
// and calculator.
type ServiceType struct {
	ID         string
	Label      string
	Fields     []Field
	Calculator CalculatorFunc
}

var serviceTypes = []ServiceType{
	{ID: "fdm-single-color", Label: "FDM Single Color", Fields: fdmSingleColorFields, Calculator: CalculateFDMQuote},
	{ID: "fdm-multicolor", Label: "FDM Multicolor", Fields: fdmMulticolorFields, Calculator: CalculateFDMMulticolorQuote},
	{ID: "resin-printing", Label: "Resin Printing", Fields: resinFields, Calculator: CalculateResinQuote},
	{ID: "3d-scan", Label: "3D Scan", Fields: scanFields, Calculator: CalculateScanQuote},
	{ID: "post-processing", Label: "Post Processing", Fields: postProcessingFields, Calculator: CalculatePostProcessingQuote},
	{ID: "3d-design", Label: "3D Design", Fields: designFields, Calculator: CalculateDesignQuote},
	{ID: "wash-cure", Label: "Wash & Cure", Fields: washCureFields, Calculator: CalculateWashCureQuote},
	{ID: "fgf-printing", Label: "FGF Printing", Fields: fgfPrintingFields, Calculator: CalculateFDMQuote},
}

// AllServiceTypes returns every registered service type in menu order.
func AllServiceTypes() []ServiceType {
	return serviceTypes
}

// ServiceTypeByID looks a service type up by id.
func ServiceTypeByID(id string) (ServiceType, bool) {
	for _, svc := range serviceTypes {
		if svc.ID == id {
			return svc, true
		}
	}
	return ServiceType{}, false
}

// ServiceLabel returns the display label for a service id, or the id itself
// when unregistered.
func ServiceLabel(id string) string {
	if svc, ok := ServiceTypeByID(id); ok {
		return svc.Label
	}
	return id
}

// FieldsForService returns the ordered field list for a service id; unknown
// ids yield an empty list.
func FieldsForService(id string) []Field {
	if svc, ok := ServiceTypeByID(id); ok {
		return svc.Fields
	}
	return nil
}

// CalculateQuote runs the calculator registered for a service id. Unknown
// ids produce an all-zero result with no line items.
func CalculateQuote(id string, inputs map[string]string, cat *Catalogs) QuoteResult {
	svc, ok := ServiceTypeByID(id)
	if !ok || svc.Calculator == nil {
		return QuoteResult{LineItems: []LineItem{}}
	}
	return svc.Calculator(inputs, cat)
}

package services

import (
	"fmt"
	"strings"

	"fabquote/store"
)

// SummaryItem is one quote's selling price in the cross-tab summary.
type SummaryItem struct {
	TabID  string
	Label  string
	Amount float64
}

// GlobalSummary is the selling price of every quote with a service type,
// dirty or not, plus their grand total.
type GlobalSummary struct {
	Items      []SummaryItem
	GrandTotal float64
}

// DisplayName resolves how a quote is titled: the committed quoteName input
// wins, then the tab-level quote name, then the tab label.
func DisplayName(tab store.Tab) string {
	if name := strings.TrimSpace(tab.CommittedInputs["quoteName"]); name != "" {
		return name
	}
	if name := strings.TrimSpace(tab.QuoteName); name != "" {
		return name
	}
	return tab.Label
}

// ComputeGlobalSummary prices every tab that has a service type from its
// committed inputs. Dirty tabs are included; their summary reflects the last
// committed values, not the live edits.
func ComputeGlobalSummary(st store.State, cat *Catalogs) GlobalSummary {
	summary := GlobalSummary{Items: []SummaryItem{}}
	for _, tab := range st.Tabs {
		if tab.ServiceType == "" {
			continue
		}
		result := CalculateQuote(tab.ServiceType, tab.CommittedInputs, cat)
		item := SummaryItem{
			TabID:  tab.ID,
			Label:  DisplayName(tab),
			Amount: SellingPrice(result),
		}
		summary.Items = append(summary.Items, item)
		summary.GrandTotal += item.Amount
	}
	return summary
}

// ExportCheck is the outcome of the export gate.
type ExportCheck struct {
	OK      bool
	Message string
}

// CheckExportable decides whether the whole state may be exported or turned
// into a document: every tab needs a service type, no tab may be dirty, and
// every tab's committed inputs must validate against its field definitions.
// The message names the first offending tab.
func CheckExportable(st store.State) ExportCheck {
	if len(st.Tabs) == 0 {
		return ExportCheck{Message: "There are no quotes to export."}
	}

	for _, tab := range st.Tabs {
		if tab.ServiceType == "" {
			return ExportCheck{Message: fmt.Sprintf(
				"Quote %q has no service type selected. Please select a service and update summary before exporting.", tab.Label)}
		}
		if tab.IsDirty {
			return ExportCheck{Message: fmt.Sprintf(
				"Quote %q has uncommitted changes. Please click \"Update summary\" first.", tab.Label)}
		}
		for _, field := range FieldsForService(tab.ServiceType) {
			if v := ValidateField(field, tab.CommittedInputs[field.ID]); !v.IsValid {
				return ExportCheck{Message: fmt.Sprintf(
					"Quote %q has invalid or incomplete committed inputs. Please fix them and update summary before exporting.", tab.Label)}
			}
		}
	}
	return ExportCheck{OK: true}
}

// Quote is one committed, priced tab in the shape the document renderers
// consume.
type Quote struct {
	TabID            string
	Name             string
	ServiceType      string
	ServiceTypeLabel string
	Inputs           map[string]string
	Result           QuoteResult
}

// CollectQuotes prices every committed tab for document generation. Tabs
// without a service type or with uncommitted edits are skipped.
func CollectQuotes(st store.State, cat *Catalogs) []Quote {
	quotes := []Quote{}
	for _, tab := range st.Tabs {
		if tab.ServiceType == "" || tab.IsDirty {
			continue
		}
		result := CalculateQuote(tab.ServiceType, tab.CommittedInputs, cat)
		quotes = append(quotes, Quote{
			TabID:            tab.ID,
			Name:             DisplayName(tab),
			ServiceType:      tab.ServiceType,
			ServiceTypeLabel: ServiceLabel(tab.ServiceType),
			Inputs:           tab.CommittedInputs,
			Result:           result,
		})
	}
	return quotes
}

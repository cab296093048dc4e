package handlers

import (
	"github.com/pocketbase/pocketbase/core"

	"fabquote/services"
	"fabquote/store"
	"fabquote/templates"
)

// buildWorkspaceData projects a state snapshot into the view structs the
// workspace template renders. All formatting happens here so the templates
// stay logic-free.
func buildWorkspaceData(st store.State, cat *services.Catalogs) templates.WorkspaceData {
	data := templates.WorkspaceData{
		ActiveTabID:    st.ActiveTabID,
		CatalogsLoaded: cat.Loaded(),
	}

	for _, tab := range st.Tabs {
		data.Tabs = append(data.Tabs, templates.TabView{
			ID:      tab.ID,
			Label:   tab.Label,
			Active:  tab.ID == st.ActiveTabID,
			IsDirty: tab.IsDirty,
		})
	}

	active, ok := st.ActiveTab()
	if ok {
		data.QuoteName = active.QuoteName
		data.HasService = active.ServiceType != ""
		data.CommitError = active.LastCommitError
		data.IsDirty = active.IsDirty
		data.Fields = buildFieldViews(active, cat)
		data.LineItems = buildLineItems(active, cat)
	}

	for _, svc := range services.AllServiceTypes() {
		data.ServiceTypes = append(data.ServiceTypes, templates.OptionView{
			Value:    svc.ID,
			Label:    svc.Label,
			Selected: ok && svc.ID == active.ServiceType,
		})
	}

	summary := services.ComputeGlobalSummary(st, cat)
	for _, item := range summary.Items {
		data.SummaryRows = append(data.SummaryRows, templates.SummaryRowView{
			TabID:  item.TabID,
			Label:  item.Label,
			Amount: services.FormatPHP(item.Amount),
			Active: item.TabID == st.ActiveTabID,
		})
	}
	data.GrandTotal = services.FormatPHP(summary.GrandTotal)

	return data
}

func buildFieldViews(tab store.Tab, cat *services.Catalogs) []templates.FieldView {
	fields := services.FieldsForService(tab.ServiceType)
	if len(fields) == 0 {
		return nil
	}

	// Inline errors only appear after a failed commit; until then typing
	// stays quiet.
	var failures map[string]services.Verdict
	if tab.LastCommitError != "" {
		failures = services.ValidateInputs(fields, tab.Inputs)
	}

	views := make([]templates.FieldView, 0, len(fields))
	for _, f := range fields {
		view := templates.FieldView{
			ID:           f.ID,
			Label:        f.Label,
			Kind:         string(f.Input),
			Value:        tab.Inputs[f.ID],
			Checked:      services.ParseFlag(tab.Inputs[f.ID]),
			Required:     f.Required,
			Placeholder:  f.Placeholder,
			UpdateOnBlur: f.UpdateOnBlur,
		}
		for _, opt := range f.SelectOptions(cat, tab.Inputs) {
			view.Options = append(view.Options, templates.OptionView{
				Value:    opt.Value,
				Label:    opt.Label,
				Selected: opt.Value == tab.Inputs[f.ID],
			})
		}
		if v, ok := failures[f.ID]; ok {
			view.Error = v.Message
		}
		views = append(views, view)
	}
	return views
}

func buildLineItems(tab store.Tab, cat *services.Catalogs) []templates.LineItemView {
	if tab.ServiceType == "" || len(tab.CommittedInputs) == 0 {
		return nil
	}

	result := services.CalculateQuote(tab.ServiceType, tab.CommittedInputs, cat)
	items := make([]templates.LineItemView, 0, len(result.LineItems))
	for _, item := range result.LineItems {
		amount := item.Display
		if amount == "" {
			amount = services.FormatPHP(item.Amount)
		}
		items = append(items, templates.LineItemView{Label: item.Label, Amount: amount})
	}
	return items
}

// renderWorkspace writes the refreshed workspace partial, the response of
// every state-changing endpoint.
func renderWorkspace(e *core.RequestEvent, st store.State, cat *services.Catalogs) error {
	component := templates.WorkspaceContent(buildWorkspaceData(st, cat))
	return component.Render(e.Request.Context(), e.Response)
}

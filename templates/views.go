// Package templates renders the quote workspace UI. Components take plain
// view structs prepared by the handlers; no business logic lives here.
package templates

// TabView is one tab button in the tab bar.
type TabView struct {
	ID      string
	Label   string
	Active  bool
	IsDirty bool
}

// OptionView is one choice of a rendered select.
type OptionView struct {
	Value    string
	Label    string
	Selected bool
}

// FieldView is one rendered form control.
type FieldView struct {
	ID           string
	Label        string
	Kind         string
	Value        string
	Checked      bool
	Required     bool
	Placeholder  string
	UpdateOnBlur bool
	Options      []OptionView
	Error        string
}

// LineItemView is one row of the calculation breakdown.
type LineItemView struct {
	Label  string
	Amount string
}

// SummaryRowView is one quote in the sidebar summary.
type SummaryRowView struct {
	TabID  string
	Label  string
	Amount string
	Active bool
}

// WorkspaceData is everything the workspace partial needs: the tab bar, the
// active tab's form and results, and the cross-tab summary.
type WorkspaceData struct {
	Tabs        []TabView
	ActiveTabID string
	QuoteName   string

	ServiceTypes []OptionView
	HasService   bool
	Fields       []FieldView

	LineItems   []LineItemView
	IsDirty     bool
	CommitError string

	SummaryRows []SummaryRowView
	GrandTotal  string

	CatalogsLoaded bool
}

// PageData is the full-page wrapper around the workspace.
type PageData struct {
	Title      string
	AppVersion string
	Workspace  WorkspaceData
}

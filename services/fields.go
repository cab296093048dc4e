package services

import "strings"

// InputKind discriminates how a field renders and validates. Sections are
// headings that carry no value.
type InputKind string

const (
	InputSection  InputKind = "section"
	InputText     InputKind = "text"
	InputNumber   InputKind = "number"
	InputCheckbox InputKind = "checkbox"
	InputSelect   InputKind = "select"
	InputTextarea InputKind = "textarea"
)

// Option is one choice of a select field.
type Option struct {
	Value string
	Label string
}

// Field declares one input of a service form: how it renders, how it
// validates, and, for selects, where its options come from. Select options
// are either listed statically or derived from a catalog with optional job
// type filtering, chaining on another field's value (brand before printer),
// and distinct-value collapsing (one option per brand).
type Field struct {
	ID          string
	Label       string
	Input       InputKind
	Required    bool
	Placeholder string

	Min       *float64
	Max       *float64
	MinLength int
	MaxLength int

	// UpdateOnBlur defers the live-state update until the control loses
	// focus instead of firing on every keystroke.
	UpdateOnBlur bool

	Options []Option

	CatalogID           string
	FilterJobType       string
	FilterByFieldID     string
	FilterByFieldColumn string
	DistinctValueField  string
	OptionValueField    string
	OptionLabelField    string
	AllowCustom         bool
}

// SelectOptions resolves the options of a select field against the loaded
// catalogs and the tab's current inputs. Non-select fields and selects whose
// filters match nothing yield an empty list.
func (f Field) SelectOptions(cat *Catalogs, inputs map[string]string) []Option {
	if f.Input != InputSelect {
		return nil
	}
	if len(f.Options) > 0 {
		return f.Options
	}
	if f.CatalogID == "" {
		return nil
	}

	rows := cat.Get(f.CatalogID)
	if f.FilterJobType != "" {
		target := normalizeJobType(f.FilterJobType)
		filtered := make([]CatalogRow, 0, len(rows))
		for _, row := range rows {
			jt := row.Get("Job_type")
			if jt == "" {
				jt = row.Get("job_type")
			}
			if normalizeJobType(jt) == target {
				filtered = append(filtered, row)
			}
		}
		rows = filtered
	}
	if f.FilterByFieldID != "" && f.FilterByFieldColumn != "" {
		if selected := strings.TrimSpace(inputs[f.FilterByFieldID]); selected != "" {
			rows = FilterRows(rows, RowFilter{Column: f.FilterByFieldColumn, Value: selected})
		}
	}

	// Distinct mode keeps the first row per key, in catalog order.
	if f.DistinctValueField != "" {
		seen := map[string]bool{}
		distinct := make([]CatalogRow, 0, len(rows))
		for _, row := range rows {
			key := row.Get(f.DistinctValueField)
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			distinct = append(distinct, row)
		}
		rows = distinct
	}

	valueKey := f.OptionValueField
	if valueKey == "" {
		valueKey = "id"
	}
	labelKey := f.OptionLabelField
	if labelKey == "" {
		labelKey = "name"
	}

	opts := make([]Option, 0, len(rows)+1)
	for _, row := range rows {
		value := row.Get(valueKey)
		label := row.Get(labelKey)
		if label == "" {
			label = value
		}
		if label == "" {
			label = "(unnamed)"
		}
		opts = append(opts, Option{Value: value, Label: label})
	}
	if f.AllowCustom {
		opts = append(opts, Option{Value: CustomOptionValue, Label: "Custom option..."})
	}
	return opts
}

func normalizeJobType(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

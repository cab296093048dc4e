package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"fabquote/store"
)

// ExportFormatVersion tags exported payloads; bump on breaking shape changes.
const ExportFormatVersion = "v1"

var (
	// ErrInvalidPayload means the text was not a JSON object of the
	// expected shape.
	ErrInvalidPayload = errors.New("invalid quote payload")
	// ErrNoTabs means the payload parsed but carries nothing to import.
	ErrNoTabs = errors.New("payload contains no tabs")
)

// ExportedTab is the wire shape of one quote tab. Inputs are the committed
// values only; live edits never leave the session.
type ExportedTab struct {
	Label       string            `json:"label"`
	QuoteName   string            `json:"quoteName"`
	ServiceType string            `json:"serviceType"`
	Inputs      map[string]string `json:"inputs"`
}

// ExportPayload is the portable quote bundle produced by Export and accepted
// by Import.
type ExportPayload struct {
	FormatVersion string        `json:"formatVersion"`
	AppVersion    string        `json:"appVersion"`
	CreatedAt     time.Time     `json:"createdAt"`
	Tabs          []ExportedTab `json:"tabs"`
}

// BuildExportPayload snapshots every tab's committed inputs into a payload.
func BuildExportPayload(st store.State, now time.Time) ExportPayload {
	appVersion := st.Version
	if appVersion == "" {
		appVersion = "0.0"
	}
	tabs := make([]ExportedTab, 0, len(st.Tabs))
	for _, t := range st.Tabs {
		inputs := make(map[string]string, len(t.CommittedInputs))
		for k, v := range t.CommittedInputs {
			inputs[k] = v
		}
		tabs = append(tabs, ExportedTab{
			Label:       t.Label,
			QuoteName:   t.QuoteName,
			ServiceType: t.ServiceType,
			Inputs:      inputs,
		})
	}
	return ExportPayload{
		FormatVersion: ExportFormatVersion,
		AppVersion:    appVersion,
		CreatedAt:     now.UTC(),
		Tabs:          tabs,
	}
}

// EncodeExportPayload renders the payload as indented JSON, the shape users
// paste back into the import dialog.
func EncodeExportPayload(payload ExportPayload) ([]byte, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding export payload: %w", err)
	}
	return data, nil
}

// ParseImportPayload parses pasted JSON into a payload. Malformed JSON or a
// non-object yields ErrInvalidPayload; a payload without tabs yields
// ErrNoTabs.
func ParseImportPayload(data []byte) (ExportPayload, error) {
	var payload ExportPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return ExportPayload{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if len(payload.Tabs) == 0 {
		return ExportPayload{}, ErrNoTabs
	}
	return payload, nil
}

// ImportedTabs converts the payload tabs into the shape the store's import
// command accepts.
func (p ExportPayload) ImportedTabs() []store.ImportedTab {
	tabs := make([]store.ImportedTab, 0, len(p.Tabs))
	for _, t := range p.Tabs {
		inputs := t.Inputs
		if inputs == nil {
			inputs = map[string]string{}
		}
		tabs = append(tabs, store.ImportedTab{
			Label:       t.Label,
			QuoteName:   t.QuoteName,
			ServiceType: t.ServiceType,
			Inputs:      inputs,
		})
	}
	return tabs
}

package handlers

import (
	"github.com/pocketbase/pocketbase/core"

	"fabquote/services"
	"fabquote/store"
)

// commitFailedMessage is the tab-level error shown when a commit is rejected;
// the per-field messages render inline next to the offending inputs.
const commitFailedMessage = "Please check inputs, some are not valid."

// HandleTabAdd creates a fresh tab and activates it.
func HandleTabAdd(s *Sessions) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		st := s.Store(e)
		st.Dispatch(store.AddTab{})
		return renderWorkspace(e, st.State(), s.Catalogs())
	}
}

// HandleTabRemove removes a tab. Removing the last tab resets the workspace
// to a single fresh one.
func HandleTabRemove(s *Sessions) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		st := s.Store(e)
		st.Dispatch(store.RemoveTab{TabID: e.Request.PathValue("tabId")})
		return renderWorkspace(e, st.State(), s.Catalogs())
	}
}

// HandleTabActivate switches the active tab.
func HandleTabActivate(s *Sessions) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		st := s.Store(e)
		st.Dispatch(store.SetActiveTab{TabID: e.Request.PathValue("tabId")})
		return renderWorkspace(e, st.State(), s.Catalogs())
	}
}

// HandleServiceSelect assigns a service type to a tab, clearing all its
// inputs; the client confirms the destructive switch before posting.
func HandleServiceSelect(s *Sessions) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		st := s.Store(e)
		st.Dispatch(store.SetServiceType{
			TabID:       e.Request.PathValue("tabId"),
			ServiceType: e.Request.FormValue("value"),
		})
		return renderWorkspace(e, st.State(), s.Catalogs())
	}
}

// HandleQuoteRename sets a tab's display name.
func HandleQuoteRename(s *Sessions) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		st := s.Store(e)
		st.Dispatch(store.SetQuoteName{
			TabID: e.Request.PathValue("tabId"),
			Name:  e.Request.FormValue("value"),
		})
		return renderWorkspace(e, st.State(), s.Catalogs())
	}
}

// HandleFieldUpdate records one live edit. Unchecked checkboxes post no
// value, which lands here as the empty string and reads as false.
func HandleFieldUpdate(s *Sessions) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		st := s.Store(e)
		st.Dispatch(store.UpdateField{
			TabID:   e.Request.PathValue("tabId"),
			FieldID: e.Request.PathValue("fieldId"),
			Value:   e.Request.FormValue("value"),
		})
		return renderWorkspace(e, st.State(), s.Catalogs())
	}
}

// HandleCommit validates a tab's live inputs and, when they pass, promotes
// them to the committed set the summary and exports read. Failures mark the
// tab with an error and leave the committed inputs untouched.
func HandleCommit(s *Sessions) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		st := s.Store(e)
		tabID := e.Request.PathValue("tabId")

		tab, ok := st.State().FindTab(tabID)
		if !ok {
			return ErrorToast(e, 404, "Quote not found.")
		}
		if tab.ServiceType == "" {
			return ErrorToast(e, 400, "Select a service before updating the summary.")
		}

		fields := services.FieldsForService(tab.ServiceType)
		if failures := services.ValidateInputs(fields, tab.Inputs); len(failures) > 0 {
			st.Dispatch(store.SetTabError{TabID: tabID, Message: commitFailedMessage})
			SetToast(e, "error", commitFailedMessage)
			return renderWorkspace(e, st.State(), s.Catalogs())
		}

		st.Dispatch(store.CommitInputs{TabID: tabID})
		SetToast(e, "success", "Summary updated.")
		return renderWorkspace(e, st.State(), s.Catalogs())
	}
}

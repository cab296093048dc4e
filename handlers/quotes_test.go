package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"fabquote/store"
	"fabquote/testhelpers"
)

func TestHandleTabAdd_CreatesAndActivatesTab(t *testing.T) {
	s, app := newTestSessions(t)
	handler := HandleTabAdd(s)

	req := newSessionRequest(http.MethodPost, "/quotes/tabs", nil)
	rec := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Quote 1", "Quote 2")

	state := sessionStore(t, s).State()
	if len(state.Tabs) != 2 {
		t.Fatalf("expected 2 tabs, got %d", len(state.Tabs))
	}
	if state.ActiveTabID != state.Tabs[1].ID {
		t.Error("expected the new tab to be active")
	}
}

func TestHandleTabRemove_RemovesTab(t *testing.T) {
	s, app := newTestSessions(t)
	st := sessionStore(t, s)
	st.Dispatch(store.AddTab{})
	firstID := st.State().Tabs[0].ID

	handler := HandleTabRemove(s)
	req := newSessionRequest(http.MethodDelete, "/quotes/tabs/"+firstID, nil)
	req.SetPathValue("tabId", firstID)
	rec := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body, "Quote 2")
	testhelpers.AssertHTMLNotContains(t, body, ">Quote 1</button>")

	if len(st.State().Tabs) != 1 {
		t.Fatalf("expected 1 tab left, got %d", len(st.State().Tabs))
	}
}

func TestHandleTabRemove_LastTabResetsWorkspace(t *testing.T) {
	s, app := newTestSessions(t)
	st := sessionStore(t, s)
	tabID := st.State().Tabs[0].ID
	st.Dispatch(store.SetQuoteName{TabID: tabID, Name: "Doomed"})

	handler := HandleTabRemove(s)
	req := newSessionRequest(http.MethodDelete, "/quotes/tabs/"+tabID, nil)
	req.SetPathValue("tabId", tabID)
	rec := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	state := st.State()
	if len(state.Tabs) != 1 {
		t.Fatalf("expected a fresh tab, got %d tabs", len(state.Tabs))
	}
	if state.Tabs[0].QuoteName != "" {
		t.Errorf("expected the fresh tab to be empty, got name %q", state.Tabs[0].QuoteName)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Quote 1")
}

func TestHandleTabActivate_SwitchesActiveTab(t *testing.T) {
	s, app := newTestSessions(t)
	st := sessionStore(t, s)
	st.Dispatch(store.AddTab{})
	firstID := st.State().Tabs[0].ID

	handler := HandleTabActivate(s)
	req := newSessionRequest(http.MethodPost, "/quotes/tabs/"+firstID+"/activate", nil)
	req.SetPathValue("tabId", firstID)
	rec := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if st.State().ActiveTabID != firstID {
		t.Errorf("expected tab %q to be active, got %q", firstID, st.State().ActiveTabID)
	}
}

func TestHandleServiceSelect_RendersServiceForm(t *testing.T) {
	s, app := newTestSessions(t)
	st := sessionStore(t, s)
	tabID := st.State().Tabs[0].ID

	handler := HandleServiceSelect(s)
	form := url.Values{}
	form.Set("value", "3d-design")
	req := newSessionRequest(http.MethodPost, "/quotes/tabs/"+tabID+"/service", form)
	req.SetPathValue("tabId", tabID)
	rec := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"Estimated design hours",
		"Design complexity",
		"Profit margin (%)",
		"Update summary",
	)

	tab, _ := st.State().FindTab(tabID)
	if tab.ServiceType != "3d-design" {
		t.Errorf("expected service type '3d-design', got %q", tab.ServiceType)
	}
}

func TestHandleServiceSelect_PopulatesCatalogOptions(t *testing.T) {
	s, app := newTestSessions(t)
	st := sessionStore(t, s)
	tabID := st.State().Tabs[0].ID

	handler := HandleServiceSelect(s)
	form := url.Values{}
	form.Set("value", "fdm-single-color")
	req := newSessionRequest(http.MethodPost, "/quotes/tabs/"+tabID+"/service", form)
	req.SetPathValue("tabId", tabID)
	rec := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"Prusa",
		"PLA",
		"Custom option...",
	)
}

func TestHandleQuoteRename_SetsName(t *testing.T) {
	s, app := newTestSessions(t)
	st := sessionStore(t, s)
	tabID := st.State().Tabs[0].ID

	handler := HandleQuoteRename(s)
	form := url.Values{}
	form.Set("value", "Bracket run")
	req := newSessionRequest(http.MethodPost, "/quotes/tabs/"+tabID+"/name", form)
	req.SetPathValue("tabId", tabID)
	rec := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(), `value="Bracket run"`)

	tab, _ := st.State().FindTab(tabID)
	if tab.QuoteName != "Bracket run" {
		t.Errorf("expected quote name 'Bracket run', got %q", tab.QuoteName)
	}
}

func TestHandleFieldUpdate_MarksTabDirty(t *testing.T) {
	s, app := newTestSessions(t)
	st := sessionStore(t, s)
	tabID := st.State().Tabs[0].ID
	st.Dispatch(store.SetServiceType{TabID: tabID, ServiceType: "3d-design"})

	handler := HandleFieldUpdate(s)
	form := url.Values{}
	form.Set("value", "16")
	req := newSessionRequest(http.MethodPost, "/quotes/tabs/"+tabID+"/fields/estimatedDesignHours", form)
	req.SetPathValue("tabId", tabID)
	req.SetPathValue("fieldId", "estimatedDesignHours")
	rec := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Quote 1 *", `value="16"`)

	tab, _ := st.State().FindTab(tabID)
	if tab.Inputs["estimatedDesignHours"] != "16" {
		t.Errorf("expected live input '16', got %q", tab.Inputs["estimatedDesignHours"])
	}
	if !tab.IsDirty {
		t.Error("expected tab to be dirty after a field update")
	}
	if len(tab.CommittedInputs) != 0 {
		t.Error("expected committed inputs to stay untouched")
	}
}

func TestHandleCommit_UnknownTab(t *testing.T) {
	s, app := newTestSessions(t)
	sessionStore(t, s)

	handler := HandleCommit(s)
	req := newSessionRequest(http.MethodPost, "/quotes/tabs/nonexistent/commit", nil)
	req.SetPathValue("tabId", "nonexistent")
	rec := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
	assertToast(t, rec, "error", "Quote not found.")
}

func TestHandleCommit_NoServiceSelected(t *testing.T) {
	s, app := newTestSessions(t)
	st := sessionStore(t, s)
	tabID := st.State().Tabs[0].ID

	handler := HandleCommit(s)
	req := newSessionRequest(http.MethodPost, "/quotes/tabs/"+tabID+"/commit", nil)
	req.SetPathValue("tabId", tabID)
	rec := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	assertToast(t, rec, "error", "Select a service before updating the summary.")
}

func TestHandleCommit_InvalidInputs(t *testing.T) {
	s, app := newTestSessions(t)
	st := sessionStore(t, s)
	tabID := st.State().Tabs[0].ID
	st.Dispatch(store.SetServiceType{TabID: tabID, ServiceType: "3d-design"})
	st.Dispatch(store.UpdateField{TabID: tabID, FieldID: "estimatedDesignHours", Value: "abc"})

	handler := HandleCommit(s)
	req := newSessionRequest(http.MethodPost, "/quotes/tabs/"+tabID+"/commit", nil)
	req.SetPathValue("tabId", tabID)
	rec := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 re-render, got %d", rec.Code)
	}
	assertToast(t, rec, "error", commitFailedMessage)
	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		commitFailedMessage,
		"Please enter a valid number.",
		"This field is required.",
	)

	tab, _ := st.State().FindTab(tabID)
	if len(tab.CommittedInputs) != 0 {
		t.Error("expected committed inputs to stay empty after a failed commit")
	}
	if tab.LastCommitError == "" {
		t.Error("expected the tab to carry a commit error")
	}
}

func TestHandleCommit_ValidInputs(t *testing.T) {
	s, app := newTestSessions(t)
	st := sessionStore(t, s)
	tabID := st.State().Tabs[0].ID
	st.Dispatch(store.SetServiceType{TabID: tabID, ServiceType: "3d-design"})
	st.Dispatch(store.UpdateField{TabID: tabID, FieldID: "estimatedDesignHours", Value: "16"})
	st.Dispatch(store.UpdateField{TabID: tabID, FieldID: "designComplexity", Value: "Standard"})
	st.Dispatch(store.UpdateField{TabID: tabID, FieldID: "profitMarginPercent", Value: "20"})

	handler := HandleCommit(s)
	req := newSessionRequest(http.MethodPost, "/quotes/tabs/"+tabID+"/commit", nil)
	req.SetPathValue("tabId", tabID)
	rec := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	assertToast(t, rec, "success", "Summary updated.")

	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body, `<table class="breakdown">`, "Grand total")
	testhelpers.AssertHTMLNotContains(t, body, "Quote 1 *", "Unsaved changes")

	tab, _ := st.State().FindTab(tabID)
	if tab.IsDirty {
		t.Error("expected tab to be clean after commit")
	}
	if tab.CommittedInputs["estimatedDesignHours"] != "16" {
		t.Errorf("expected committed hours '16', got %q", tab.CommittedInputs["estimatedDesignHours"])
	}
}

package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"fabquote/store"
	"fabquote/testhelpers"
)

const testSessionID = "test-session-0000000000000000000000"

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(app *pocketbase.PocketBase, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.App = app
	e.Request = req
	e.Response = rec
	return e
}

// newTestSessions builds a session registry over a bootstrapped test app with
// seeded catalogs.
func newTestSessions(t *testing.T) (*Sessions, *pocketbase.PocketBase) {
	t.Helper()

	app := testhelpers.NewTestApp(t)
	return NewSessions(app, testhelpers.SeedCatalogs(t)), app
}

// newSessionRequest builds a request carrying the fixed test session cookie.
// A nil form means no body; otherwise the values are form-encoded.
func newSessionRequest(method, target string, form url.Values) *http.Request {
	var req *http.Request
	if form == nil {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: testSessionID})
	return req
}

// sessionStore returns the test session's store, creating it on first use.
func sessionStore(t *testing.T, s *Sessions) *store.Store {
	t.Helper()

	req := newSessionRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return s.Store(newTestRequestEvent(s.app, req, rec))
}

// seedCommittedDesignQuote puts the first tab into a committed 3D design
// state that passes every export gate.
func seedCommittedDesignQuote(t *testing.T, s *Sessions) {
	t.Helper()

	st := sessionStore(t, s)
	tabID := st.State().Tabs[0].ID
	st.Dispatch(store.SetServiceType{TabID: tabID, ServiceType: "3d-design"})
	st.Dispatch(store.UpdateField{TabID: tabID, FieldID: "estimatedDesignHours", Value: "16"})
	st.Dispatch(store.UpdateField{TabID: tabID, FieldID: "designComplexity", Value: "Standard"})
	st.Dispatch(store.UpdateField{TabID: tabID, FieldID: "profitMarginPercent", Value: "20"})
	st.Dispatch(store.CommitInputs{TabID: tabID})
}

// assertToast checks the HX-Trigger header carries a showToast event with the
// given type and message.
func assertToast(t *testing.T, rec *httptest.ResponseRecorder, toastType, message string) {
	t.Helper()

	trigger := rec.Header().Get("HX-Trigger")
	if trigger == "" {
		t.Fatal("expected HX-Trigger header to be set")
	}
	if !strings.Contains(trigger, `"showToast"`) {
		t.Fatalf("expected showToast event in HX-Trigger, got %q", trigger)
	}
	if !strings.Contains(trigger, toastType) {
		t.Errorf("expected toast type %q in HX-Trigger, got %q", toastType, trigger)
	}
	if !strings.Contains(trigger, message) {
		t.Errorf("expected toast message %q in HX-Trigger, got %q", message, trigger)
	}
}

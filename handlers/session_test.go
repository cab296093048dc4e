package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"fabquote/store"
	"fabquote/testhelpers"
)

func TestSessions_SetsCookieOnFirstContact(t *testing.T) {
	s, app := newTestSessions(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	s.Store(newTestRequestEvent(app, req, rec))

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookieName {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatalf("expected %s cookie to be set", sessionCookieName)
	}
	if cookie.Value == "" {
		t.Error("expected a non-empty session id")
	}
	if !cookie.HttpOnly {
		t.Error("expected session cookie to be HttpOnly")
	}
	if cookie.MaxAge <= 0 {
		t.Errorf("expected positive MaxAge, got %d", cookie.MaxAge)
	}
}

func TestSessions_ReusesStoreForSameCookie(t *testing.T) {
	s, _ := newTestSessions(t)

	first := sessionStore(t, s)
	second := sessionStore(t, s)
	if first != second {
		t.Error("expected the same store for the same session cookie")
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "another-session"})
	rec := httptest.NewRecorder()
	other := s.Store(newTestRequestEvent(s.app, req, rec))
	if other == first {
		t.Error("expected a different store for a different session cookie")
	}
}

func TestSessions_PersistsSnapshotOnDispatch(t *testing.T) {
	s, app := newTestSessions(t)

	st := sessionStore(t, s)
	st.Dispatch(store.AddTab{})

	record, err := app.FindFirstRecordByFilter(
		"quote_snapshots",
		"session = {:session}",
		map[string]any{"session": testSessionID},
	)
	if err != nil {
		t.Fatalf("expected a snapshot record for the session: %v", err)
	}
	if record.GetString("data") == "" {
		t.Error("expected snapshot data to be stored")
	}
	if record.GetString("version") == "" {
		t.Error("expected snapshot version to be stored")
	}
}

func TestSessions_UpdatesExistingSnapshot(t *testing.T) {
	s, app := newTestSessions(t)

	st := sessionStore(t, s)
	st.Dispatch(store.AddTab{})
	st.Dispatch(store.AddTab{})

	records, err := app.FindRecordsByFilter(
		"quote_snapshots",
		"session = {:session}",
		"", 0, 0,
		map[string]any{"session": testSessionID},
	)
	if err != nil {
		t.Fatalf("failed to list snapshots: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected exactly one snapshot record, got %d", len(records))
	}
}

func TestSessions_HydratesFromSnapshot(t *testing.T) {
	s, app := newTestSessions(t)

	st := sessionStore(t, s)
	st.Dispatch(store.AddTab{})
	st.Dispatch(store.SetQuoteName{TabID: st.State().ActiveTabID, Name: "Persisted quote"})
	if len(st.State().Tabs) != 2 {
		t.Fatalf("expected 2 tabs before rehydration, got %d", len(st.State().Tabs))
	}

	// A fresh registry over the same database simulates a server restart.
	fresh := NewSessions(app, testhelpers.SeedCatalogs(t))
	restored := sessionStore(t, fresh)

	state := restored.State()
	if len(state.Tabs) != 2 {
		t.Fatalf("expected 2 tabs after rehydration, got %d", len(state.Tabs))
	}
	active, ok := state.ActiveTab()
	if !ok {
		t.Fatal("expected an active tab after rehydration")
	}
	if active.QuoteName != "Persisted quote" {
		t.Errorf("expected quote name to survive rehydration, got %q", active.QuoteName)
	}
}

func TestSessions_UnknownSessionStartsFresh(t *testing.T) {
	s, _ := newTestSessions(t)

	st := sessionStore(t, s)
	state := st.State()
	if len(state.Tabs) != 1 {
		t.Fatalf("expected a single fresh tab, got %d", len(state.Tabs))
	}
	if state.Tabs[0].Label != "Quote 1" {
		t.Errorf("expected fresh tab label 'Quote 1', got %q", state.Tabs[0].Label)
	}
}

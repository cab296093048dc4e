package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/security"
	"github.com/pocketbase/pocketbase/tools/types"

	"fabquote/services"
	"fabquote/store"
)

const sessionCookieName = "fabquote_session"

// Sessions maps browser sessions to their quote stores. Each session's store
// is hydrated once from the quote_snapshots collection and then persisted
// back on every dispatch; persistence failures are logged, never surfaced.
type Sessions struct {
	app *pocketbase.PocketBase
	cat *services.Catalogs

	mu     sync.Mutex
	stores map[string]*store.Store
}

// NewSessions returns an empty session registry bound to the app's database
// and the loaded catalogs.
func NewSessions(app *pocketbase.PocketBase, cat *services.Catalogs) *Sessions {
	return &Sessions{
		app:    app,
		cat:    cat,
		stores: map[string]*store.Store{},
	}
}

// Catalogs exposes the catalog set the session's forms and calculators read.
func (s *Sessions) Catalogs() *services.Catalogs {
	return s.cat
}

// Store resolves the request's session cookie to its quote store, creating
// both the cookie and the store on first contact.
func (s *Sessions) Store(e *core.RequestEvent) *store.Store {
	id := ""
	if cookie, err := e.Request.Cookie(sessionCookieName); err == nil {
		id = cookie.Value
	}
	if id == "" {
		id = security.RandomString(32)
		http.SetCookie(e.Response, &http.Cookie{
			Name:     sessionCookieName,
			Value:    id,
			Path:     "/",
			MaxAge:   60 * 60 * 24 * 30,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.stores[id]; ok {
		return st
	}

	st := store.New()
	if snapshot, ok := s.loadSnapshot(id); ok {
		st.Hydrate(snapshot)
	}
	st.Subscribe(func(snap store.State) {
		s.saveSnapshot(id, snap)
	})
	s.stores[id] = st
	return st
}

func (s *Sessions) loadSnapshot(sessionID string) (store.State, bool) {
	record, err := s.app.FindFirstRecordByFilter(
		"quote_snapshots",
		"session = {:session}",
		map[string]any{"session": sessionID},
	)
	if err != nil {
		return store.State{}, false
	}

	var snapshot store.State
	if err := json.Unmarshal([]byte(record.GetString("data")), &snapshot); err != nil {
		log.Printf("session: snapshot for %s is unreadable, starting fresh: %v", sessionID, err)
		return store.State{}, false
	}
	return snapshot, true
}

func (s *Sessions) saveSnapshot(sessionID string, snapshot store.State) {
	data, err := json.Marshal(snapshot)
	if err != nil {
		log.Printf("session: failed to serialize snapshot for %s: %v", sessionID, err)
		return
	}

	record, err := s.app.FindFirstRecordByFilter(
		"quote_snapshots",
		"session = {:session}",
		map[string]any{"session": sessionID},
	)
	if err != nil {
		col, err := s.app.FindCollectionByNameOrId("quote_snapshots")
		if err != nil {
			log.Printf("session: quote_snapshots collection missing: %v", err)
			return
		}
		record = core.NewRecord(col)
		record.Set("session", sessionID)
	}

	record.Set("version", snapshot.Version)
	record.Set("data", types.JSONRaw(data))
	if err := s.app.Save(record); err != nil {
		log.Printf("session: failed to persist snapshot for %s: %v", sessionID, err)
	}
}

package collections

import (
	"testing"

	"github.com/pocketbase/pocketbase"
)

func newBootstrappedApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: t.TempDir(),
	})
	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}
	return app
}

func TestSetup_CreatesQuoteSnapshots(t *testing.T) {
	app := newBootstrappedApp(t)

	Setup(app)

	col, err := app.FindCollectionByNameOrId("quote_snapshots")
	if err != nil {
		t.Fatalf("quote_snapshots collection not created: %v", err)
	}
	for _, field := range []string{"session", "version", "data"} {
		if col.Fields.GetByName(field) == nil {
			t.Errorf("field %q missing from quote_snapshots", field)
		}
	}
}

func TestSetup_Idempotent(t *testing.T) {
	app := newBootstrappedApp(t)

	Setup(app)
	Setup(app)

	if _, err := app.FindCollectionByNameOrId("quote_snapshots"); err != nil {
		t.Fatalf("quote_snapshots missing after repeated setup: %v", err)
	}
}

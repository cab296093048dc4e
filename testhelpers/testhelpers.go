// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"

	"fabquote/collections"
	"fabquote/services"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// SeedCatalogs returns a small catalog set with one machine and one material
// per common job type, enough for form and calculator flows in handler tests.
func SeedCatalogs(t *testing.T) *services.Catalogs {
	t.Helper()

	cat := services.NewCatalogs()
	cat.Put("machines", []services.CatalogRow{
		{
			"machine_id":                 "mk4",
			"machine_name":               "Prusa MK4",
			"brand":                      "Prusa",
			"job_type":                   "FDM printing",
			"adjusted_machine_price_php": "50000",
			"roi_hours":                  "2190",
			"power_watts":                "300",
		},
		{
			"machine_id":                 "scan1",
			"machine_name":               "EinScan Pro",
			"brand":                      "Shining3D",
			"job_type":                   "3d scan",
			"adjusted_machine_price_php": "219000",
			"roi_hours":                  "2190",
			"power_watts":                "60",
		},
	})
	cat.Put("materials", []services.CatalogRow{
		{
			"material_id":           "pla-black",
			"material_name":         "PLA Black",
			"material_type":         "PLA",
			"Job_type":              "FDM printing",
			"adjusted_price_per_kg": "800",
		},
	})
	return cat
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

// AssertHTMLNotContains checks that body contains none of the fragments.
func AssertHTMLNotContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if strings.Contains(body, frag) {
			t.Errorf("expected HTML to not contain %q, but it was found", frag)
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

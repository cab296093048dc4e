package main

import (
	"log"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"fabquote/collections"
	"fabquote/handlers"
	"fabquote/services"
)

func main() {
	app := pocketbase.New()

	catalogs := services.NewCatalogs()

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)

		dataDir := os.Getenv("FABQUOTE_DATA_DIR")
		if dataDir == "" {
			dataDir = "./data"
		}
		catalogs.LoadAll(dataDir)

		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		sessions := handlers.NewSessions(app, catalogs)

		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// ── Workspace page ───────────────────────────────────────
		se.Router.GET("/", handlers.HandleAppPage(sessions))

		// ── Tab operations ───────────────────────────────────────
		se.Router.POST("/quotes/tabs", handlers.HandleTabAdd(sessions))
		se.Router.DELETE("/quotes/tabs/{tabId}", handlers.HandleTabRemove(sessions))
		se.Router.POST("/quotes/tabs/{tabId}/activate", handlers.HandleTabActivate(sessions))

		// ── Quote editing ────────────────────────────────────────
		se.Router.POST("/quotes/tabs/{tabId}/service", handlers.HandleServiceSelect(sessions))
		se.Router.POST("/quotes/tabs/{tabId}/name", handlers.HandleQuoteRename(sessions))
		se.Router.POST("/quotes/tabs/{tabId}/fields/{fieldId}", handlers.HandleFieldUpdate(sessions))
		se.Router.POST("/quotes/tabs/{tabId}/commit", handlers.HandleCommit(sessions))

		// ── Export and import ────────────────────────────────────
		se.Router.GET("/quotes/export/json", handlers.HandleExportJSON(sessions))
		se.Router.GET("/quotes/export/pdf", handlers.HandleExportPDF(sessions))
		se.Router.GET("/quotes/export/excel", handlers.HandleExportExcel(sessions))
		se.Router.POST("/quotes/import", handlers.HandleImport(sessions))
		se.Router.POST("/quotes/clear", handlers.HandleClearAll(sessions))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}

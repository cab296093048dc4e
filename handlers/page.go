package handlers

import (
	"github.com/pocketbase/pocketbase/core"

	"fabquote/templates"
)

// AppVersion is shown in the page header and stamped into exports.
const AppVersion = "V5.0.0"

// HandleAppPage returns the handler for the full workspace page.
func HandleAppPage(s *Sessions) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		st := s.Store(e).State()
		data := templates.PageData{
			Title:      "Quotation Workspace",
			AppVersion: AppVersion,
			Workspace:  buildWorkspaceData(st, s.Catalogs()),
		}
		return templates.AppPage(data).Render(e.Request.Context(), e.Response)
	}
}

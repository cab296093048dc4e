package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"fabquote/services"
	"fabquote/store"
)

// HandleExportJSON streams the committed quotes as a portable JSON file. The
// same payload is accepted back by the import endpoint.
func HandleExportJSON(s *Sessions) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		st := s.Store(e).State()
		if check := services.CheckExportable(st); !check.OK {
			return e.String(http.StatusBadRequest, check.Message)
		}

		payload := services.BuildExportPayload(st, time.Now())
		payload.AppVersion = AppVersion
		data, err := services.EncodeExportPayload(payload)
		if err != nil {
			log.Printf("export: failed to encode payload: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		setDownloadHeaders(e, "quotes.json")
		return e.Blob(http.StatusOK, "application/json", data)
	}
}

// HandleExportPDF renders the committed quotes as a quotation PDF.
func HandleExportPDF(s *Sessions) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		st := s.Store(e).State()
		if check := services.CheckExportable(st); !check.OK {
			return e.String(http.StatusBadRequest, check.Message)
		}

		quotes := services.CollectQuotes(st, s.Catalogs())
		info := services.DefaultCompanyInfo
		info.AppVersion = AppVersion
		data, err := services.GenerateQuotesPDF(quotes, info, time.Now())
		if err != nil {
			log.Printf("export: failed to generate PDF: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		setDownloadHeaders(e, "quotes.pdf")
		return e.Blob(http.StatusOK, "application/pdf", data)
	}
}

// HandleExportExcel renders the committed quotes as an Excel workbook.
func HandleExportExcel(s *Sessions) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		st := s.Store(e).State()
		if check := services.CheckExportable(st); !check.OK {
			return e.String(http.StatusBadRequest, check.Message)
		}

		quotes := services.CollectQuotes(st, s.Catalogs())
		info := services.DefaultCompanyInfo
		info.AppVersion = AppVersion
		data, err := services.GenerateQuotesExcel(quotes, info, time.Now())
		if err != nil {
			log.Printf("export: failed to generate Excel: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		setDownloadHeaders(e, "quotes.xlsx")
		return e.Blob(http.StatusOK,
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
	}
}

// HandleImport replaces the whole workspace with a pasted quotes export.
func HandleImport(s *Sessions) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		payload, err := services.ParseImportPayload([]byte(e.Request.FormValue("payload")))
		if errors.Is(err, services.ErrNoTabs) {
			return ErrorToast(e, http.StatusBadRequest, "The pasted export contains no quotes.")
		}
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "The pasted text is not a valid quotes export.")
		}

		st := s.Store(e)
		st.Dispatch(store.ImportQuotes{Tabs: payload.ImportedTabs()})
		SetToast(e, "success", fmt.Sprintf("Imported %d quotes.", len(payload.Tabs)))
		return renderWorkspace(e, st.State(), s.Catalogs())
	}
}

// HandleClearAll resets the workspace to a single empty tab.
func HandleClearAll(s *Sessions) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		st := s.Store(e)
		st.Dispatch(store.ClearAllQuotes{})
		SetToast(e, "success", "All quotes removed.")
		return renderWorkspace(e, st.State(), s.Catalogs())
	}
}

func setDownloadHeaders(e *core.RequestEvent, filename string) {
	e.Response.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
}

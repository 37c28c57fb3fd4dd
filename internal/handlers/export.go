package handlers

import (
	"log"
	"net/http"

	"github.com/bako110/pausemanager/internal/export"
)

// serveExport streams a shaped table as the requested download format.
// Spreadsheet is the default; "format=pdf" switches to PDF.
func serveExport(w http.ResponseWriter, r *http.Request, filename string, table export.Table) {
	switch r.URL.Query().Get("format") {
	case "pdf":
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`.pdf"`)
		if err := export.WritePDF(w, table); err != nil {
			log.Printf("pdf export %s: %v", filename, err)
		}
	default:
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`.xlsx"`)
		if err := export.WriteXLSX(w, table); err != nil {
			log.Printf("xlsx export %s: %v", filename, err)
		}
	}
}

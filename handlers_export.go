package main

import (
	"log"
	"mime"
	"net/http"

	"polareye/dataset"
)

// Download filenames kept identical to the original dashboard exports.
const (
	exportEnvironmentName = "환경데이터_전체.csv"
	exportGrowthName      = "생육결과_전체.xlsx"
)

// handleExportEnvironmentCSV streams the full in-memory environment table as
// CSV, exactly as loaded, with the site tag column appended.
func (a *App) handleExportEnvironmentCSV(w http.ResponseWriter, r *http.Request) {
	env := a.store.Environment()

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", attachment(exportEnvironmentName))
	if err := dataset.WriteEnvironmentCSV(w, env); err != nil {
		log.Printf("export environment csv: %v", err)
	}
}

// handleExportGrowthXLSX streams the full in-memory growth table as a single
// workbook sheet, all sites concatenated.
func (a *App) handleExportGrowthXLSX(w http.ResponseWriter, r *http.Request) {
	growth, ok := a.growthTable(w)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", attachment(exportGrowthName))
	if err := dataset.WriteGrowthXLSX(w, growth); err != nil {
		log.Printf("export growth xlsx: %v", err)
	}
}

// attachment builds a Content-Disposition value that survives the non-ASCII
// filenames above.
func attachment(filename string) string {
	return mime.FormatMediaType("attachment", map[string]string{"filename": filename})
}

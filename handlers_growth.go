package main

import (
	"encoding/json"
	"errors"
	"net/http"

	"polareye/analysis"
	"polareye/dataset"
	"polareye/models"
)

// growthTable fetches the harvest table and writes the fatal-global error
// when the data directory carries no workbook. Every growth endpoint halts
// on that condition; there is no per-site fallback.
func (a *App) growthTable(w http.ResponseWriter) (*models.GrowthTable, bool) {
	growth, err := a.store.Growth()
	if err != nil {
		if errors.Is(err, dataset.ErrNoGrowthWorkbook) {
			http.Error(w, "no growth data", http.StatusServiceUnavailable)
		} else {
			http.Error(w, "growth load error", http.StatusInternalServerError)
		}
		return nil, false
	}
	return growth, true
}

// handleGrowthSummary returns per-site EC target, mean fresh weight and
// plant count, plus the best site by mean fresh weight.
func (a *App) handleGrowthSummary(w http.ResponseWriter, r *http.Request) {
	growth, ok := a.growthTable(w)
	if !ok {
		return
	}

	summaries := analysis.SummarizeGrowth(growth, models.ECTargets())
	best, err := analysis.BestSite(summaries)
	if err != nil {
		a.invariantError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(growthSummaryResp{Summaries: summaries, Best: best})
}

// handleGrowthBest returns only the winning summary.
func (a *App) handleGrowthBest(w http.ResponseWriter, r *http.Request) {
	growth, ok := a.growthTable(w)
	if !ok {
		return
	}

	best, err := analysis.BestSite(analysis.SummarizeGrowth(growth, models.ECTargets()))
	if err != nil {
		a.invariantError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(best)
}

// handleGrowthRecords returns every plant's measurements flattened with the
// owning site, the input of the scatter and box comparisons.
func (a *App) handleGrowthRecords(w http.ResponseWriter, r *http.Request) {
	filter, ok := siteFilter(r)
	if !ok {
		http.Error(w, "unknown site", http.StatusBadRequest)
		return
	}
	growth, ok := a.growthTable(w)
	if !ok {
		return
	}

	rows := analysis.CorrelationRows(growth)
	if filter != "" {
		kept := rows[:0]
		for _, row := range rows {
			if wantSite(filter, row.Site) {
				kept = append(kept, row)
			}
		}
		rows = kept
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(growthRecordsResp{Records: rows})
}

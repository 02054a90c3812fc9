package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"polareye/analysis"
	"polareye/dataset"
	"polareye/models"
)

// handleSites returns the fixed site enumeration with EC targets and chart
// colors.
func (a *App) handleSites(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(models.Sites)
}

// handleOverview returns the experiment headline numbers: total plant count,
// pooled environment means and the best-performing site by mean fresh weight.
func (a *App) handleOverview(w http.ResponseWriter, r *http.Request) {
	growth, err := a.store.Growth()
	if err != nil {
		if errors.Is(err, dataset.ErrNoGrowthWorkbook) {
			http.Error(w, "no growth data", http.StatusServiceUnavailable)
			return
		}
		http.Error(w, "growth load error", http.StatusInternalServerError)
		return
	}
	env := a.store.Environment()

	meanTemp, err := analysis.GlobalEnvironmentMean(env, "temperature")
	if err != nil {
		a.invariantError(w, err)
		return
	}
	meanHumi, err := analysis.GlobalEnvironmentMean(env, "humidity")
	if err != nil {
		a.invariantError(w, err)
		return
	}
	best, err := analysis.BestSite(analysis.SummarizeGrowth(growth, models.ECTargets()))
	if err != nil {
		a.invariantError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(overviewResp{
		TotalPlants:     growth.Len(),
		MeanTemperature: meanTemp,
		MeanHumidity:    meanHumi,
		Best:            best,
	})
}

// invariantError reports aggregations that hit empty loaded data. That means
// an upstream invariant broke, so it is logged as a defect and surfaced as a
// server error, not translated into an empty 200.
func (a *App) invariantError(w http.ResponseWriter, err error) {
	if errors.Is(err, analysis.ErrEmptyInput) {
		log.Printf("invariant violation: %v", err)
		http.Error(w, "no loaded data", http.StatusInternalServerError)
		return
	}
	http.Error(w, err.Error(), http.StatusBadRequest)
}

// siteFilter resolves the optional ?site= query parameter against the fixed
// enumeration. Empty (or the explicit 전체 sentinel the sidebar sends) means
// no filtering.
func siteFilter(r *http.Request) (string, bool) {
	site := r.URL.Query().Get("site")
	if site == "" || site == "전체" {
		return "", true
	}
	if _, ok := models.SiteByName(site); !ok {
		return "", false
	}
	return site, true
}

// wantSite reports whether a site passes the filter.
func wantSite(filter, site string) bool {
	return filter == "" || filter == site
}

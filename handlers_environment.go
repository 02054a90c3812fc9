package main

import (
	"encoding/json"
	"net/http"

	"polareye/analysis"
	"polareye/models"
)

// handleEnvironmentSummary returns per-site means of the four environment
// metrics. Sites whose CSV failed to load show up in warnings instead.
func (a *App) handleEnvironmentSummary(w http.ResponseWriter, r *http.Request) {
	filter, ok := siteFilter(r)
	if !ok {
		http.Error(w, "unknown site", http.StatusBadRequest)
		return
	}

	env := a.store.Environment()
	summaries := analysis.SummarizeEnvironment(env)
	if filter != "" {
		kept := summaries[:0]
		for _, s := range summaries {
			if wantSite(filter, s.Site) {
				kept = append(kept, s)
			}
		}
		summaries = kept
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(environmentSummaryResp{
		Summaries: summaries,
		Warnings:  env.Issues,
	})
}

// handleEnvironmentSeries returns per-site chart lines for one metric, with
// each site's target EC attached so the frontend can draw its target line.
func (a *App) handleEnvironmentSeries(w http.ResponseWriter, r *http.Request) {
	metric := r.URL.Query().Get("metric")
	if metric == "" {
		metric = "temperature"
	}
	get, err := analysis.MetricAccessor(metric)
	if err != nil {
		http.Error(w, "unknown metric", http.StatusBadRequest)
		return
	}
	filter, ok := siteFilter(r)
	if !ok {
		http.Error(w, "unknown site", http.StatusBadRequest)
		return
	}

	env := a.store.Environment()
	resp := environmentSeriesResp{Metric: metric}
	for _, name := range env.Order {
		if !wantSite(filter, name) {
			continue
		}
		site, _ := models.SiteByName(name)
		ss := siteSeries{Site: name, Color: site.Color, TargetEC: site.TargetEC}
		for _, rec := range env.BySite[name] {
			ss.Points = append(ss.Points, seriesPoint{Time: rec.Time, Value: get(rec)})
		}
		resp.Series = append(resp.Series, ss)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(resp)
}

// handleEnvironmentRecords returns the raw environment table flattened with
// the site tag, the same shape the CSV export serializes.
func (a *App) handleEnvironmentRecords(w http.ResponseWriter, r *http.Request) {
	filter, ok := siteFilter(r)
	if !ok {
		http.Error(w, "unknown site", http.StatusBadRequest)
		return
	}

	env := a.store.Environment()
	resp := environmentRecordsResp{Records: []environmentRecordRow{}}
	for _, name := range env.Order {
		if !wantSite(filter, name) {
			continue
		}
		for _, rec := range env.BySite[name] {
			resp.Records = append(resp.Records, environmentRecordRow{Site: name, EnvironmentRecord: rec})
		}
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(resp)
}

// Package analysis derives the study's summary views from loaded tables.
// Everything here is a pure function of its inputs: no I/O, no caching, no
// mutation of the tables.
package analysis

import (
	"errors"
	"fmt"

	"github.com/montanaflynn/stats"

	"polareye/models"
)

// ErrEmptyInput marks an aggregation called on data that an upstream
// invariant says cannot be empty. It is a defect signal, not a user-facing
// condition.
var ErrEmptyInput = errors.New("analysis: empty input")

// EnvironmentSummary — per-site means over the environment series. Only
// defined for sites with at least one record; empty sites produce no entry
// rather than NaN means.
type EnvironmentSummary struct {
	Site            string  `json:"site"`
	MeanTemperature float64 `json:"meanTemperature"`
	MeanHumidity    float64 `json:"meanHumidity"`
	MeanPH          float64 `json:"meanPh"`
	MeanEC          float64 `json:"meanEc"`
}

// GrowthSummary — per-site harvest outcome paired with the site's EC target.
// TargetEC is nil when the site has no entry in the target map.
type GrowthSummary struct {
	Site            string   `json:"site"`
	TargetEC        *float64 `json:"targetEc"`
	MeanFreshWeight float64  `json:"meanFreshWeightG"`
	Count           int      `json:"count"`
}

// SiteGrowthRow — one plant's measurements tagged with the owning site, the
// flattened form every cross-site scatter and box comparison consumes.
type SiteGrowthRow struct {
	Site string `json:"site"`
	models.GrowthRecord
}

// SummarizeEnvironment computes each loaded site's metric means, in table
// order. Sites with an empty series are omitted.
func SummarizeEnvironment(t *models.EnvironmentTable) []EnvironmentSummary {
	out := make([]EnvironmentSummary, 0, len(t.Order))
	for _, site := range t.Order {
		recs := t.BySite[site]
		if len(recs) == 0 {
			continue
		}
		out = append(out, EnvironmentSummary{
			Site:            site,
			MeanTemperature: meanOf(recs, metricTemperature),
			MeanHumidity:    meanOf(recs, metricHumidity),
			MeanPH:          meanOf(recs, metricPH),
			MeanEC:          meanOf(recs, metricEC),
		})
	}
	return out
}

// SummarizeGrowth computes mean fresh weight and plant count per site, in
// sheet order. A site missing from targets gets a nil TargetEC.
func SummarizeGrowth(t *models.GrowthTable, targets map[string]float64) []GrowthSummary {
	out := make([]GrowthSummary, 0, len(t.Order))
	for _, site := range t.Order {
		sh := t.BySite[site]
		sum := GrowthSummary{Site: site, Count: len(sh.Records)}
		if ec, ok := targets[site]; ok {
			sum.TargetEC = &ec
		}
		if len(sh.Records) > 0 {
			weights := make([]float64, len(sh.Records))
			for i, r := range sh.Records {
				weights[i] = r.FreshWeightG
			}
			m, _ := stats.Mean(weights)
			sum.MeanFreshWeight = m
		}
		out = append(out, sum)
	}
	return out
}

// BestSite returns the summary with the highest mean fresh weight. Ties go
// to the first occurrence, so the result is deterministic for a fixed site
// order. An empty input violates the loaded-data invariant and is reported
// as ErrEmptyInput.
func BestSite(summaries []GrowthSummary) (GrowthSummary, error) {
	if len(summaries) == 0 {
		return GrowthSummary{}, ErrEmptyInput
	}
	best := summaries[0]
	for _, s := range summaries[1:] {
		if s.MeanFreshWeight > best.MeanFreshWeight {
			best = s
		}
	}
	return best, nil
}

// GlobalEnvironmentMean pools every site's records and returns the mean of
// one metric; the overview headline numbers come from here. ErrEmptyInput
// when no records exist anywhere.
func GlobalEnvironmentMean(t *models.EnvironmentTable, metric string) (float64, error) {
	get, err := MetricAccessor(metric)
	if err != nil {
		return 0, err
	}
	var values []float64
	for _, site := range t.Order {
		for _, rec := range t.BySite[site] {
			values = append(values, get(rec))
		}
	}
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}
	return stats.Mean(values)
}

// CorrelationRows flattens every site's growth records, site tag attached,
// in sheet order then row order. Despite the dashboard label this feeds, no
// correlation coefficient is computed anywhere; the output is raw scatter
// input only.
func CorrelationRows(t *models.GrowthTable) []SiteGrowthRow {
	rows := make([]SiteGrowthRow, 0, t.Len())
	for _, site := range t.Order {
		for _, rec := range t.BySite[site].Records {
			rows = append(rows, SiteGrowthRow{Site: site, GrowthRecord: rec})
		}
	}
	return rows
}

// ---- metric access ----

type metricFn func(models.EnvironmentRecord) float64

var (
	metricTemperature metricFn = func(r models.EnvironmentRecord) float64 { return r.Temperature }
	metricHumidity    metricFn = func(r models.EnvironmentRecord) float64 { return r.Humidity }
	metricPH          metricFn = func(r models.EnvironmentRecord) float64 { return r.PH }
	metricEC          metricFn = func(r models.EnvironmentRecord) float64 { return r.EC }
)

// MetricAccessor maps a metric name from the HTTP boundary to its accessor.
func MetricAccessor(metric string) (func(models.EnvironmentRecord) float64, error) {
	switch metric {
	case "temperature":
		return metricTemperature, nil
	case "humidity":
		return metricHumidity, nil
	case "ph":
		return metricPH, nil
	case "ec":
		return metricEC, nil
	default:
		return nil, fmt.Errorf("unknown metric %q", metric)
	}
}

// MetricNames lists the environment metrics accepted by series and mean
// lookups, in CSV column order.
func MetricNames() []string {
	return []string{"temperature", "humidity", "ph", "ec"}
}

func meanOf(recs []models.EnvironmentRecord, get metricFn) float64 {
	values := make([]float64, len(recs))
	for i, r := range recs {
		values[i] = get(r)
	}
	m, _ := stats.Mean(values)
	return m
}

package main

import (
	"time"

	"polareye/analysis"
	"polareye/models"
)

// Response DTOs. Keep them minimal and explicit.

type overviewResp struct {
	TotalPlants     int                    `json:"totalPlants"`
	MeanTemperature float64                `json:"meanTemperature"`
	MeanHumidity    float64                `json:"meanHumidity"`
	Best            analysis.GrowthSummary `json:"best"`
}

type environmentSummaryResp struct {
	Summaries []analysis.EnvironmentSummary `json:"summaries"`
	Warnings  []models.LoadIssue            `json:"warnings,omitempty"`
}

type seriesPoint struct {
	Time  time.Time `json:"time"`
	Value float64   `json:"value"`
}

// siteSeries carries one site's chart line plus its target EC so the
// frontend can draw the dashed target line on the EC chart.
type siteSeries struct {
	Site     string        `json:"site"`
	Color    string        `json:"color,omitempty"`
	TargetEC float64       `json:"targetEc"`
	Points   []seriesPoint `json:"points"`
}

type environmentSeriesResp struct {
	Metric string       `json:"metric"`
	Series []siteSeries `json:"series"`
}

type environmentRecordRow struct {
	Site string `json:"site"`
	models.EnvironmentRecord
}

type environmentRecordsResp struct {
	Records []environmentRecordRow `json:"records"`
}

type growthSummaryResp struct {
	Summaries []analysis.GrowthSummary `json:"summaries"`
	Best      analysis.GrowthSummary   `json:"best"`
}

type growthRecordsResp struct {
	Records []analysis.SiteGrowthRow `json:"records"`
}

package models

import "time"

// EnvironmentRecord — one sensor reading from a site's greenhouse logger.
type EnvironmentRecord struct {
	Time        time.Time `json:"time"`
	Temperature float64   `json:"temperature"` // °C
	Humidity    float64   `json:"humidity"`    // %
	PH          float64   `json:"ph"`
	EC          float64   `json:"ec"` // measured, dS/m
}

// EnvironmentColumns is the required header of every per-site CSV, in file
// order. Export writes the same columns back out.
var EnvironmentColumns = []string{"time", "temperature", "humidity", "ph", "ec"}

// LoadIssue — a recoverable per-site load failure (file missing, bad
// timestamp, malformed row). The affected site is simply absent from the
// table; loading of the other sites is unaffected.
type LoadIssue struct {
	Site   string `json:"site"`
	Reason string `json:"reason"`
}

// EnvironmentTable holds every site's environment series for one load pass.
// Order lists the sites actually loaded, in enumeration order. Nothing is
// mutated after load.
type EnvironmentTable struct {
	Order  []string
	BySite map[string][]EnvironmentRecord
	Issues []LoadIssue
}

// Records returns a site's series, nil when the site failed to load.
func (t *EnvironmentTable) Records(site string) []EnvironmentRecord {
	return t.BySite[site]
}

// Len is the total record count pooled across all sites.
func (t *EnvironmentTable) Len() int {
	n := 0
	for _, recs := range t.BySite {
		n += len(recs)
	}
	return n
}

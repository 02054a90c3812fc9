package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"polareye/models"
)

// timeLayouts are tried in order when coercing the "time" column. Site
// loggers disagree on the exact format.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// LoadEnvironment reads one CSV per site from dir. A missing or malformed
// file is a recoverable per-site issue: the site is left out of the table
// and the failure is recorded on Issues, while the remaining sites load
// normally. Record order follows file row order.
func LoadEnvironment(dir string, sites []models.Site) *models.EnvironmentTable {
	t := &models.EnvironmentTable{BySite: make(map[string][]models.EnvironmentRecord, len(sites))}
	for _, site := range sites {
		path, ok := FindFile(dir, site.Name, ".csv")
		if !ok {
			t.Issues = append(t.Issues, models.LoadIssue{Site: site.Name, Reason: "environment csv not found"})
			continue
		}
		recs, err := readEnvironmentCSV(path)
		if err != nil {
			t.Issues = append(t.Issues, models.LoadIssue{Site: site.Name, Reason: err.Error()})
			continue
		}
		t.Order = append(t.Order, site.Name)
		t.BySite[site.Name] = recs
	}
	return t
}

func readEnvironmentCSV(path string) ([]models.EnvironmentRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty csv")
	}

	col := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range models.EnvironmentColumns {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}

	recs := make([]models.EnvironmentRecord, 0, len(rows)-1)
	for n, row := range rows[1:] {
		ts, err := parseTime(row[col["time"]])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", n+2, err)
		}
		rec := models.EnvironmentRecord{Time: ts}
		for name, dst := range map[string]*float64{
			"temperature": &rec.Temperature,
			"humidity":    &rec.Humidity,
			"ph":          &rec.PH,
			"ec":          &rec.EC,
		} {
			v, err := strconv.ParseFloat(strings.TrimSpace(row[col[name]]), 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: column %q: %w", n+2, name, err)
			}
			*dst = v
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable time %q", s)
}

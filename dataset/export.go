package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/unicode/norm"

	"polareye/models"
)

// WriteEnvironmentCSV serializes the full in-memory environment table as one
// CSV, all sites concatenated with the site tagged in a trailing 학교 column.
// No filtering, no reordering.
func WriteEnvironmentCSV(w io.Writer, t *models.EnvironmentTable) error {
	cw := csv.NewWriter(w)
	header := append(append([]string{}, models.EnvironmentColumns...), models.ColSite)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, site := range t.Order {
		for _, rec := range t.BySite[site] {
			row := []string{
				rec.Time.Format(time.RFC3339),
				formatFloat(rec.Temperature),
				formatFloat(rec.Humidity),
				formatFloat(rec.PH),
				formatFloat(rec.EC),
				site,
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteGrowthXLSX serializes the full in-memory growth table as one workbook
// sheet, all sites concatenated. Columns are the union of every sheet's
// columns in first-seen order plus a trailing 학교 column; cells are written
// back verbatim from the raw rows.
func WriteGrowthXLSX(w io.Writer, t *models.GrowthTable) error {
	var columns []string
	colIdx := make(map[string]int)
	for _, site := range t.Order {
		for _, h := range t.BySite[site].Columns {
			key := norm.NFC.String(h)
			if _, ok := colIdx[key]; !ok {
				colIdx[key] = len(columns)
				columns = append(columns, key)
			}
		}
	}

	wb := excelize.NewFile()
	defer wb.Close()
	const sheet = "Sheet1"

	for i, h := range append(append([]string{}, columns...), models.ColSite) {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := wb.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	out := 2
	for _, site := range t.Order {
		sh := t.BySite[site]
		for _, row := range sh.Rows {
			for i, val := range row {
				if i >= len(sh.Columns) || val == "" {
					continue
				}
				col := colIdx[norm.NFC.String(sh.Columns[i])]
				cell, err := excelize.CoordinatesToCellName(col+1, out)
				if err != nil {
					return err
				}
				if err := wb.SetCellValue(sheet, cell, val); err != nil {
					return err
				}
			}
			cell, err := excelize.CoordinatesToCellName(len(columns)+1, out)
			if err != nil {
				return err
			}
			if err := wb.SetCellValue(sheet, cell, site); err != nil {
				return err
			}
			out++
		}
	}

	if err := wb.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

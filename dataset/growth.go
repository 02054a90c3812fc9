package dataset

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/unicode/norm"

	"polareye/models"
)

// ErrNoGrowthWorkbook is the fatal-global condition: without harvest data
// nothing downstream can render, so callers halt instead of skipping.
var ErrNoGrowthWorkbook = errors.New("dataset: no growth workbook found")

// LoadGrowth locates the single .xlsx workbook in dir and parses every sheet
// into one site's harvest table. When several workbooks exist the first in
// directory iteration order wins; that is a known nondeterminism and not
// resolved here.
//
// Sheet names are NFC-normalized before use as site keys, matching FindFile,
// so a workbook saved with decomposed Hangul sheet names still lines up with
// the site enumeration.
func LoadGrowth(dir string) (*models.GrowthTable, error) {
	path, ok := FindFile(dir, "", ".xlsx")
	if !ok {
		return nil, ErrNoGrowthWorkbook
	}

	wb, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer wb.Close()

	t := &models.GrowthTable{BySite: make(map[string]*models.GrowthSheet)}
	for _, name := range wb.GetSheetList() {
		rows, err := wb.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", name, err)
		}
		site := norm.NFC.String(name)
		t.Order = append(t.Order, site)
		t.BySite[site] = parseGrowthSheet(site, rows)
	}
	return t, nil
}

// parseGrowthSheet keeps the raw header and cells for lossless export and
// builds the typed records the aggregator reads. A data row whose three
// measurement cells do not all parse as numbers is kept raw but excluded
// from the typed records.
func parseGrowthSheet(site string, rows [][]string) *models.GrowthSheet {
	sh := &models.GrowthSheet{Site: site}
	if len(rows) == 0 {
		return sh
	}
	sh.Columns = rows[0]
	sh.Rows = rows[1:]

	leaf, stem, weight := -1, -1, -1
	var extraCols []int
	for i, h := range rows[0] {
		switch norm.NFC.String(strings.TrimSpace(h)) {
		case models.ColLeafCount:
			leaf = i
		case models.ColStemLength:
			stem = i
		case models.ColFreshWeight:
			weight = i
		default:
			extraCols = append(extraCols, i)
		}
	}
	if leaf < 0 || stem < 0 || weight < 0 {
		return sh
	}

	for _, row := range sh.Rows {
		lc, err1 := cellFloat(row, leaf)
		sl, err2 := cellFloat(row, stem)
		fw, err3 := cellFloat(row, weight)
		if err1 != nil || err2 != nil || err3 != nil {
			continue
		}
		rec := models.GrowthRecord{LeafCount: lc, StemLengthMm: sl, FreshWeightG: fw}
		for _, i := range extraCols {
			if i < len(row) && row[i] != "" {
				if rec.Extra == nil {
					rec.Extra = make(map[string]string)
				}
				rec.Extra[norm.NFC.String(strings.TrimSpace(rows[0][i]))] = row[i]
			}
		}
		sh.Records = append(sh.Records, rec)
	}
	return sh
}

func cellFloat(row []string, i int) (float64, error) {
	if i >= len(row) {
		return 0, fmt.Errorf("short row")
	}
	return strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
}

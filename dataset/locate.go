// Package dataset loads the study's data directory: one environment CSV per
// site plus a single growth workbook. Loads are pure functions of the
// directory contents; Store adds the per-process memoization on top.
package dataset

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// FindFile scans the immediate entries of dir and returns the first one
// whose extension equals suffix and whose NFC-normalized name contains
// keyword. Site CSVs arrive from macOS and Windows machines with different
// Hangul normalization forms, so a byte-level substring match on the raw
// name misses files that look identical on screen.
//
// Directory iteration order decides ties when several entries match; in
// practice at most one file per keyword/suffix pair is expected.
func FindFile(dir, keyword, suffix string) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}
	key := norm.NFC.String(keyword)
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != suffix {
			continue
		}
		if strings.Contains(norm.NFC.String(e.Name()), key) {
			return filepath.Join(dir, e.Name()), true
		}
	}
	return "", false
}

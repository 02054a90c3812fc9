package models

// Harvest measurement headers as they appear in the growth workbook. These
// exact strings are part of the data contract with the participating sites.
const (
	ColLeafCount   = "잎 수(장)"
	ColStemLength  = "지상부 길이(mm)"
	ColFreshWeight = "생중량(g)"
	ColSite        = "학교"
)

// GrowthRecord — harvest measurements for one individual plant. Extra keeps
// any sheet columns beyond the three required ones, passed through opaquely.
type GrowthRecord struct {
	LeafCount    float64           `json:"leafCount"`
	StemLengthMm float64           `json:"stemLengthMm"`
	FreshWeightG float64           `json:"freshWeightG"`
	Extra        map[string]string `json:"extra,omitempty"`
}

// GrowthSheet is one workbook sheet: the raw header/cells exactly as read
// (for lossless export) plus the typed view used by the aggregator.
type GrowthSheet struct {
	Site    string
	Columns []string
	Rows    [][]string
	Records []GrowthRecord
}

// GrowthTable holds every site's harvest sheet for one load pass. Order
// preserves workbook sheet order.
type GrowthTable struct {
	Order  []string
	BySite map[string]*GrowthSheet
}

// Sheet returns a site's sheet, nil when the workbook has none for it.
func (t *GrowthTable) Sheet(site string) *GrowthSheet {
	return t.BySite[site]
}

// Len is the total plant count pooled across all sites.
func (t *GrowthTable) Len() int {
	n := 0
	for _, sh := range t.BySite {
		n += len(sh.Records)
	}
	return n
}

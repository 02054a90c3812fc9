package dataset

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polareye/models"
)

const envCSV = `time,temperature,humidity,ph,ec
2024-01-05 09:00:00,18.2,61.5,6.1,1.1
2024-01-05 10:00:00,19.4,60.2,6.0,1.2
2024-01-05 11:00:00,20.1,58.8,6.2,1.0
`

func writeEnvCSV(t *testing.T, dir, site, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, site+"_환경데이터.csv"), []byte(body), 0o644))
}

func TestLoadEnvironment(t *testing.T) {
	dir := t.TempDir()
	for _, s := range models.Sites {
		writeEnvCSV(t, dir, s.Name, envCSV)
	}

	table := LoadEnvironment(dir, models.Sites)

	require.Empty(t, table.Issues)
	assert.Equal(t, []string{"송도고", "하늘고", "아라고", "동산고"}, table.Order)
	assert.Equal(t, 12, table.Len())

	recs := table.Records("송도고")
	require.Len(t, recs, 3)
	// file row order preserved
	assert.Equal(t, time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC), recs[0].Time)
	assert.Equal(t, 18.2, recs[0].Temperature)
	assert.Equal(t, 61.5, recs[0].Humidity)
	assert.Equal(t, 6.1, recs[0].PH)
	assert.Equal(t, 1.1, recs[0].EC)
	assert.Equal(t, 20.1, recs[2].Temperature)
}

func TestLoadEnvironmentMissingSiteIsRecoverable(t *testing.T) {
	dir := t.TempDir()
	for _, s := range models.Sites {
		if s.Name == "아라고" {
			continue
		}
		writeEnvCSV(t, dir, s.Name, envCSV)
	}

	table := LoadEnvironment(dir, models.Sites)

	assert.Equal(t, []string{"송도고", "하늘고", "동산고"}, table.Order)
	assert.Nil(t, table.Records("아라고"))
	require.Len(t, table.Issues, 1)
	assert.Equal(t, "아라고", table.Issues[0].Site)
}

func TestLoadEnvironmentMalformedFileIsRecoverable(t *testing.T) {
	dir := t.TempDir()
	writeEnvCSV(t, dir, "송도고", envCSV)
	writeEnvCSV(t, dir, "하늘고", "time,temperature,humidity,ph,ec\nnot-a-time,1,2,3,4\n")
	writeEnvCSV(t, dir, "아라고", "time,humidity,ph,ec\n2024-01-05,1,2,3\n") // missing column
	writeEnvCSV(t, dir, "동산고", envCSV)

	table := LoadEnvironment(dir, models.Sites)

	assert.Equal(t, []string{"송도고", "동산고"}, table.Order)
	require.Len(t, table.Issues, 2)
	assert.Equal(t, "하늘고", table.Issues[0].Site)
	assert.Contains(t, table.Issues[0].Reason, "unparseable time")
	assert.Equal(t, "아라고", table.Issues[1].Site)
	assert.Contains(t, table.Issues[1].Reason, "missing column")
}

func TestLoadEnvironmentAcceptsCommonTimeLayouts(t *testing.T) {
	dir := t.TempDir()
	writeEnvCSV(t, dir, "송도고", `time,temperature,humidity,ph,ec
2024-01-05T09:00:00Z,18.2,61.5,6.1,1.1
2024-01-05T10:00:00,19.4,60.2,6.0,1.2
2024-01-05 11:00,20.1,58.8,6.2,1.0
2024-01-06,20.5,57.0,6.1,1.1
`)

	table := LoadEnvironment(dir, models.Sites[:1])

	require.Empty(t, table.Issues)
	assert.Len(t, table.Records("송도고"), 4)
}

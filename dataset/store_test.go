package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polareye/models"
)

func TestStoreMemoizesWithinOneSignature(t *testing.T) {
	dir := t.TempDir()
	for _, s := range models.Sites {
		writeEnvCSV(t, dir, s.Name, envCSV)
	}
	sheets, fx := defaultGrowthFixture()
	writeGrowthWorkbook(t, dir, "생육결과.xlsx", sheets, fx)

	store := NewStore(dir)

	env1 := store.Environment()
	env2 := store.Environment()
	assert.Same(t, env1, env2) // no re-read, identical table

	g1, err := store.Growth()
	require.NoError(t, err)
	g2, err := store.Growth()
	require.NoError(t, err)
	assert.Same(t, g1, g2)
}

func TestStoreInvalidateReloads(t *testing.T) {
	dir := t.TempDir()
	for _, s := range models.Sites {
		writeEnvCSV(t, dir, s.Name, envCSV)
	}
	sheets, fx := defaultGrowthFixture()
	writeGrowthWorkbook(t, dir, "생육결과.xlsx", sheets, fx)

	store := NewStore(dir)
	env1 := store.Environment()

	store.Invalidate()
	env2 := store.Environment()

	assert.NotSame(t, env1, env2)
	assert.Equal(t, env1.Order, env2.Order)
}

func TestStoreReloadsWhenListingChanges(t *testing.T) {
	dir := t.TempDir()
	for _, s := range models.Sites {
		writeEnvCSV(t, dir, s.Name, envCSV)
	}
	sheets, fx := defaultGrowthFixture()
	writeGrowthWorkbook(t, dir, "생육결과.xlsx", sheets, fx)

	store := NewStore(dir)
	env1 := store.Environment()
	require.Len(t, env1.Order, 4)

	// removing a csv changes the directory signature, so the next access
	// reloads and the site becomes a recoverable issue
	require.NoError(t, os.Remove(filepath.Join(dir, "아라고_환경데이터.csv")))

	env2 := store.Environment()
	assert.NotSame(t, env1, env2)
	assert.Equal(t, []string{"송도고", "하늘고", "동산고"}, env2.Order)
	require.Len(t, env2.Issues, 1)
	assert.Equal(t, "아라고", env2.Issues[0].Site)
}

func TestStoreGrowthErrorIsSticky(t *testing.T) {
	dir := t.TempDir()
	writeEnvCSV(t, dir, "송도고", envCSV)

	store := NewStore(dir)

	_, err := store.Growth()
	require.ErrorIs(t, err, ErrNoGrowthWorkbook)
	_, err = store.Growth()
	require.ErrorIs(t, err, ErrNoGrowthWorkbook)

	// dropping a workbook in clears the condition on the next access
	sheets, fx := defaultGrowthFixture()
	writeGrowthWorkbook(t, dir, "생육결과.xlsx", sheets, fx)

	g, err := store.Growth()
	require.NoError(t, err)
	assert.Equal(t, sheets, g.Order)
}

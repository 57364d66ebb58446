package boundary

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fra-patta/internal/config"
	"fra-patta/internal/geom"
	"fra-patta/internal/logger"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "properties": {"dtname": " TestDistrict ", "DISTRICT": "Ignored"},
     "geometry": {"type": "Polygon", "coordinates": [[[0,0],[1,0],[1,1],[0,1],[0,0]]]}},
    {"type": "Feature", "properties": {"name": "NoDistrictKey"},
     "geometry": {"type": "Polygon", "coordinates": [[[5,5],[6,5],[6,6],[5,6],[5,5]]]}},
    {"type": "Feature", "properties": {"dtname": "", "DISTRICT": "Upper-Case"},
     "geometry": {"type": "MultiPolygon", "coordinates": [[[[2,2],[3,2],[3,3],[2,3],[2,2]]]]}},
    {"type": "Feature", "properties": {"district": "lower case"},
     "geometry": {"type": "Polygon", "coordinates": [[[7,7],[8,7],[8,8],[7,8],[7,7]]]}}
  ]
}`

var testState = config.State{Name: "TestState", File: "TestState.json", Code: "TS"}

func TestMain(m *testing.M) {
	logger.Use(logger.Discard())
	os.Exit(m.Run())
}

func TestParseDistrictsNamePriorityAndSkip(t *testing.T) {
	ds, skipped, err := ParseDistricts([]byte(fixture), geom.Orb)
	require.NoError(t, err)
	assert.Equal(t, 1, skipped)
	require.Len(t, ds, 3)
	assert.Equal(t, "TestDistrict", ds[0].Name)
	assert.Equal(t, "Upper-Case", ds[1].Name)
	assert.Equal(t, "lower case", ds[2].Name)
	assert.True(t, ds[1].Shape.Contains(2.5, 2.5))
	for _, d := range ds {
		assert.False(t, d.Shape.Contains(5.5, 5.5), "skipped feature must not leak into %s", d.Name)
	}
}

func TestParseDistrictsBadGeometry(t *testing.T) {
	doc := `{"type":"FeatureCollection","features":[
      {"type":"Feature","properties":{"dtname":"Pin"},"geometry":{"type":"Point","coordinates":[1,2]}}]}`
	_, _, err := ParseDistricts([]byte(doc), geom.Orb)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGeometry))
}

func TestParseDistrictsNotGeoJSON(t *testing.T) {
	_, _, err := ParseDistricts([]byte(`{"type":`), geom.Orb)
	assert.Error(t, err)
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, testState.File), []byte(fixture), 0o644))

	src := &FileSource{Dir: dir, Backend: geom.Ring}
	ds, err := src.Load(context.Background(), testState)
	require.NoError(t, err)
	require.Len(t, ds, 3)
	assert.True(t, ds[0].Shape.Contains(0.5, 0.5))
}

func TestFileSourceMissing(t *testing.T) {
	src := &FileSource{Dir: t.TempDir(), Backend: geom.Orb}
	_, err := src.Load(context.Background(), testState)
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

type memCache struct {
	m    map[string][]byte
	sets int
}

func (c *memCache) Get(_ context.Context, key string) ([]byte, bool) {
	b, ok := c.m[key]
	return b, ok
}

func (c *memCache) Set(_ context.Context, key string, doc []byte) {
	c.sets++
	c.m[key] = doc
}

func TestPGSourceFillsCache(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT document FROM _fra_boundaries WHERE state=\$1`).
		WithArgs("TestState").
		WillReturnRows(sqlmock.NewRows([]string{"document"}).AddRow([]byte(fixture)))

	cache := &memCache{m: map[string][]byte{}}
	src := &PGSource{DB: db, Cache: cache, Backend: geom.Orb}

	ds, err := src.Load(context.Background(), testState)
	require.NoError(t, err)
	assert.Len(t, ds, 3)
	assert.Equal(t, 1, cache.sets)

	// 第二次命中缓存，不再查询数据库
	ds, err = src.Load(context.Background(), testState)
	require.NoError(t, err)
	assert.Len(t, ds, 3)
	assert.Equal(t, 1, cache.sets)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGSourceNoDocument(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT document FROM _fra_boundaries`).
		WithArgs("TestState").
		WillReturnRows(sqlmock.NewRows([]string{"document"}))

	src := &PGSource{DB: db, Backend: geom.Orb}
	_, err = src.Load(context.Background(), testState)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoDocument))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertDocument(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO _fra_boundaries\(state, code, document, updated_at\)`).
		WithArgs("TestState", "TS", fixture).
		WillReturnResult(sqlmock.NewResult(0, 1))

	n, err := UpsertDocument(context.Background(), db, testState, []byte(fixture))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertDocumentRejectsBadDocument(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	_, err = UpsertDocument(context.Background(), db, testState, []byte(`not json`))
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCacheKey(t *testing.T) {
	assert.Equal(t, "fra:boundary:Madhya Pradesh", CacheKey("Madhya Pradesh"))
}

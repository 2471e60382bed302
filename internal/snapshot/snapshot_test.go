package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArrayShape(t *testing.T) {
	data := []byte(`[
        {"id": "ep-1", "showId": "s1", "showName": "Cold Case Files",
         "title": "The Smith Murder Case", "overview": "John Smith in Austin, Texas.",
         "airDate": "2019-03-01", "seasonNumber": 2, "episodeNumber": 4}
    ]`)

	episodes, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, episodes, 1)
	assert.Equal(t, "ep-1", episodes[0].ID)
	require.NotNil(t, episodes[0].AirDate)
	assert.Equal(t, "2019-03-01", episodes[0].AirDate.Format("2006-01-02"))
}

func TestParseObjectShape(t *testing.T) {
	data := []byte(`{"episodes": [
        {"showId": "s1", "showName": "Forensic Hour", "title": "Justice for John Smith"}
    ]}`)

	episodes, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, episodes, 1)
	// Records without an id get one assigned.
	assert.NotEmpty(t, episodes[0].ID)
	assert.Nil(t, episodes[0].AirDate)
}

func TestParseRejectsBadRecords(t *testing.T) {
	_, err := Parse([]byte(`not json`))
	assert.Error(t, err)

	_, err = Parse([]byte(`[{"id": "x", "title": ""}]`))
	assert.Error(t, err)

	_, err = Parse([]byte(`[{"id": "x", "title": "ok", "airDate": "March 1"}]`))
	assert.Error(t, err)
}

func TestParseRFC3339AirDate(t *testing.T) {
	episodes, err := Parse([]byte(`[{"id": "x", "title": "ok", "airDate": "2021-06-10T00:00:00Z"}]`))
	require.NoError(t, err)
	require.NotNil(t, episodes[0].AirDate)
	assert.Equal(t, "2021-06-10", episodes[0].AirDate.Format("2006-01-02"))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snapshot.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id": "ep-1", "title": "A Case"}]`), 0o644))

	episodes, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, episodes, 1)

	_, err = Load(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoadYoutubeStyleHeader(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "comments.csv",
		"COMMENT_ID,AUTHOR,DATE,CONTENT,CLASS\n"+
			"z12a,alice,2013-10-27T19:00:17.015000,Hey  Guys check this out,1\n"+
			"z12b,bob,2013-11-01T08:30:00,nice song,0\n")

	loader := NewLoader(42, false)
	records, paths, err := loader.Load([]string{filepath.Join(dir, "*.csv")})
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Len(t, paths, 1)

	byID := make(map[string]Record)
	for _, r := range records {
		byID[r.ID] = r
	}
	assert.Equal(t, "alice", byID["z12a"].Author)
	assert.Equal(t, "2013-10-27T19:00:17.015000", byID["z12a"].Timestamp)
	assert.Equal(t, "Hey  Guys check this out", byID["z12a"].Content)
	assert.Equal(t, 1, byID["z12a"].Label)
	assert.Equal(t, 0, byID["z12b"].Label)
}

func TestLoadShuffleDeterministic(t *testing.T) {
	dir := t.TempDir()
	var rows string
	for i := 0; i < 50; i++ {
		rows += fmt.Sprintf("id%02d,author,2013-01-01T00:00:00,comment %d,%d\n", i, i, i%2)
	}
	writeCSV(t, dir, "comments.csv", "id,author,timestamp,content,label\n"+rows)

	first, _, err := NewLoader(666, false).Load([]string{filepath.Join(dir, "*.csv")})
	require.NoError(t, err)
	second, _, err := NewLoader(666, false).Load([]string{filepath.Join(dir, "*.csv")})
	require.NoError(t, err)

	assert.Equal(t, first, second)

	other, _, err := NewLoader(667, false).Load([]string{filepath.Join(dir, "*.csv")})
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}

func TestLoadConcatenatesFiles(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "a.csv", "id,author,timestamp,content,label\n1,x,,one,0\n")
	writeCSV(t, dir, "b.csv", "id,author,timestamp,content,label\n2,y,,two,1\n3,z,,three,1\n")

	records, paths, err := NewLoader(1, false).Load([]string{filepath.Join(dir, "*.csv")})
	require.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Len(t, paths, 2)
}

func TestLoadRejectsBadLabel(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "bad.csv", "id,author,timestamp,content,label\n1,x,,spam,2\n")

	_, _, err := NewLoader(1, false).Load([]string{filepath.Join(dir, "*.csv")})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDataFormat)
}

func TestLoadRejectsInconsistentColumns(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "bad.csv", "id,author,timestamp,content,label\n1,x,,spam\n")

	_, _, err := NewLoader(1, false).Load([]string{filepath.Join(dir, "*.csv")})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDataFormat)
}

func TestLoadRejectsMissingColumn(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "bad.csv", "id,author,timestamp,content\n1,x,,spam\n")

	_, _, err := NewLoader(1, false).Load([]string{filepath.Join(dir, "*.csv")})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDataFormat)
}

func TestLoadRejectsEmptyFile(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "empty.csv", "")

	_, _, err := NewLoader(1, false).Load([]string{filepath.Join(dir, "*.csv")})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDataFormat)
}

func TestLoadNoMatches(t *testing.T) {
	_, _, err := NewLoader(1, false).Load([]string{filepath.Join(t.TempDir(), "*.csv")})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDataFormat)
}

func TestLoadCleanHTML(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "html.csv",
		"id,author,timestamp,content,label\n"+
			"1,x,,\"Check it<br />out now\",1\n")

	records, _, err := NewLoader(1, true).Load([]string{filepath.Join(dir, "*.csv")})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Check it out now", records[0].Content)
}

package market

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"
)

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

func TestLoadCSV(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "prices.csv",
		"time,price\n"+
			"2024-01-01,100.5\n"+
			"2024-01-02T00:00:00Z,101.25\n"+
			"2024-01-03,\n"+
			"2024-01-04,99\n")

	s, err := LoadCSV(path)
	require.NoError(t, err)
	require.Len(t, s, 4)

	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), s[0].Time)
	assert.Equal(t, 100.5, s[0].Price)
	assert.Equal(t, 101.25, s[1].Price)

	// The empty cell becomes a missing bar, not an error.
	assert.False(t, s[2].Valid())
	assert.Equal(t, 3, s.ValidBars())

	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), s.Start())
	assert.Equal(t, time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC), s.End())
}

func TestLoadCSVNoHeader(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "prices.csv", "2024-01-01,100\n2024-01-02,101\n")

	s, err := LoadCSV(path)
	require.NoError(t, err)
	assert.Len(t, s, 2)
}

func TestLoadCSVBadTime(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "prices.csv", "yesterday,100\n")

	_, err := LoadCSV(path)
	assert.ErrorContains(t, err, "bad time")
}

func TestLoadCSVOutOfOrder(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "prices.csv", "2024-01-02,100\n2024-01-01,101\n")

	_, err := LoadCSV(path)
	assert.ErrorContains(t, err, "not after previous bar")
}

func TestLoadCSVDuplicateTimestamp(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "prices.csv", "2024-01-01,100\n2024-01-01,101\n")

	_, err := LoadCSV(path)
	assert.Error(t, err)
}

func TestLoadCSVGzip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "prices.csv.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	_, err = zw.Write([]byte("2024-01-01,100\n2024-01-02,101\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	s, err := LoadCSV(path)
	require.NoError(t, err)
	assert.Len(t, s, 2)
	assert.Equal(t, 101.0, s[1].Price)
}

func TestLoadCSVXz(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "prices.csv.xz")
	f, err := os.Create(path)
	require.NoError(t, err)
	xw, err := xz.NewWriter(f)
	require.NoError(t, err)
	_, err = xw.Write([]byte("time,price\n2024-01-01,100\n2024-01-02,101\n"))
	require.NoError(t, err)
	require.NoError(t, xw.Close())
	require.NoError(t, f.Close())

	s, err := LoadCSV(path)
	require.NoError(t, err)
	assert.Len(t, s, 2)
	assert.Equal(t, 100.0, s[0].Price)
}

func TestLoadCSVMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

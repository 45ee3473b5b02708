package market

import (
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ulikunitz/xz"
)

// LoadCSV reads a price series from a CSV file of rows:
//
//	time,price
//
// where time is RFC3339, RFC3339Nano, or a bare date (2006-01-02).
// A header row ("time,..." or "date,...") is allowed. Files ending in .gz or
// .xz are decompressed transparently.
//
// An empty or non-numeric price cell becomes a bar with Price 0, so the
// engines skip it; market data feeds with holes are normal and not an error.
// A timestamp that cannot be parsed is an error, as is a timestamp that does
// not strictly increase: the engines rely on the series being ordered.
func LoadCSV(path string) (Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var src io.Reader = f
	switch {
	case strings.HasSuffix(path, ".gz"):
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("gzip %s: %w", path, err)
		}
		defer zr.Close()
		src = zr
	case strings.HasSuffix(path, ".xz"):
		xr, err := xz.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("xz %s: %w", path, err)
		}
		src = xr
	}

	r := csv.NewReader(src)
	r.FieldsPerRecord = -1

	var (
		series Series
		line   int
	)
	for {
		row, err := r.Read()
		if err == io.EOF {
			return series, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		line++

		if len(row) == 0 {
			continue
		}
		first := strings.ToLower(strings.TrimSpace(row[0]))
		if line == 1 && (first == "time" || first == "date" || first == "timestamp") {
			continue
		}
		if len(row) < 2 {
			return nil, fmt.Errorf("%s line %d: need time,price, got %v", path, line, row)
		}

		t, err := parseTime(strings.TrimSpace(row[0]))
		if err != nil {
			return nil, fmt.Errorf("%s line %d: bad time %q: %w", path, line, row[0], err)
		}
		if n := len(series); n > 0 && !t.After(series[n-1].Time) {
			return nil, fmt.Errorf("%s line %d: timestamp %s not after previous bar", path, line, t.Format(time.RFC3339))
		}

		series = append(series, PricePoint{Time: t, Price: parsePrice(row[1])})
	}
}

func parseTime(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, time.RFC3339Nano, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported layout")
}

// parsePrice maps an empty or unparseable cell to 0 (a missing bar) instead
// of failing the load.
func parsePrice(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

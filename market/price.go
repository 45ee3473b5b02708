package market

import "time"

// PricePoint is one bar of an externally supplied price series: a timestamp
// and the period's price (typically a daily close). A missing or unusable
// price is represented as a non-positive value; the simulation engines treat
// such bars as defined no-ops.
type PricePoint struct {
	Time  time.Time
	Price float64
}

// Valid reports whether the bar carries a usable price.
func (p PricePoint) Valid() bool {
	return p.Price > 0
}

// Series is a price series ordered by timestamp, one entry per period.
type Series []PricePoint

// ValidBars counts the bars carrying a usable price.
func (s Series) ValidBars() int {
	n := 0
	for _, p := range s {
		if p.Valid() {
			n++
		}
	}
	return n
}

// Start returns the timestamp of the first bar, or the zero time for an
// empty series.
func (s Series) Start() time.Time {
	if len(s) == 0 {
		return time.Time{}
	}
	return s[0].Time
}

// End returns the timestamp of the last bar, or the zero time for an empty
// series.
func (s Series) End() time.Time {
	if len(s) == 0 {
		return time.Time{}
	}
	return s[len(s)-1].Time
}

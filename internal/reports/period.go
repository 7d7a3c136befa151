package reports

import (
	"encoding/json"
	"time"

	"github.com/angelmondragon/multistore-admin/pkg/enums"
)

const (
	dayKeyLayout   = "2006-01-02"
	monthKeyLayout = "2006-01"
)

// Period is a trend bucket identified by its UTC start and width. Buckets are
// grouped by this value and only turned into strings when serialized.
type Period struct {
	Start       time.Time
	Granularity enums.Granularity
}

// PeriodOf returns the bucket containing t.
func PeriodOf(t time.Time, granularity enums.Granularity) Period {
	t = t.UTC()
	if granularity == enums.GranularityMonth {
		return Period{Start: time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC), Granularity: granularity}
	}
	return Period{Start: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), Granularity: enums.GranularityDay}
}

// Next returns the bucket that follows p.
func (p Period) Next() Period {
	if p.Granularity == enums.GranularityMonth {
		return Period{Start: p.Start.AddDate(0, 1, 0), Granularity: p.Granularity}
	}
	return Period{Start: p.Start.AddDate(0, 0, 1), Granularity: p.Granularity}
}

// After reports whether p starts later than other.
func (p Period) After(other Period) bool {
	return p.Start.After(other.Start)
}

// Key is the sortable calendar key: 2024-01-15 for days, 2024-01 for months.
func (p Period) Key() string {
	if p.Granularity == enums.GranularityMonth {
		return p.Start.Format(monthKeyLayout)
	}
	return p.Start.Format(dayKeyLayout)
}

// Label is the chart label: "Jan 15" for days, "Jan 2024" for months.
func (p Period) Label() string {
	if p.Granularity == enums.GranularityMonth {
		return p.Start.Format("Jan 2006")
	}
	return p.Start.Format("Jan 2")
}

// MonthName is the short English month name of the bucket.
func (p Period) MonthName() string {
	return p.Start.Format("Jan")
}

// String implements fmt.Stringer.
func (p Period) String() string {
	return p.Key()
}

// MarshalJSON implements json.Marshaler.
func (p Period) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Key())
}

// periodsBetween lists every bucket from first to last inclusive.
func periodsBetween(first, last Period) []Period {
	periods := []Period{}
	for p := first; !p.After(last); p = p.Next() {
		periods = append(periods, p)
	}
	return periods
}

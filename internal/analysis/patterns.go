package analysis

import (
	"strconv"
	"strings"
	"time"

	"github.com/nazhif/duitbot/internal/domain"
)

// TimeBand buckets a transaction by time of day.
type TimeBand string

const (
	BandPagi  TimeBand = "pagi"  // 05:00-10:59
	BandSiang TimeBand = "siang" // 11:00-14:59
	BandSore  TimeBand = "sore"  // 15:00-18:59
	BandMalam TimeBand = "malam" // 19:00-04:59
)

// outlierFactor flags transactions whose amount exceeds this multiple of the
// mean.
const outlierFactor = 3.0

// Patterns describes spending habits over a record collection.
type Patterns struct {
	ByWeekday  map[time.Weekday]int64     `json:"by_weekday"`
	ByTimeBand map[TimeBand]int64         `json:"by_time_band"`
	BusiestDay time.Weekday               `json:"busiest_day"`
	Outliers   []domain.TransactionRecord `json:"outliers,omitempty"`
}

// DetectPatterns buckets spend by day-of-week and time-of-day band and flags
// outlier transactions exceeding 3x the mean amount.
func DetectPatterns(records []domain.TransactionRecord) Patterns {
	p := Patterns{
		ByWeekday:  make(map[time.Weekday]int64),
		ByTimeBand: make(map[TimeBand]int64),
	}
	if len(records) == 0 {
		return p
	}

	var total int64
	for _, rec := range records {
		total += rec.Amount
		p.ByWeekday[rec.Date.Weekday()] += rec.Amount
		p.ByTimeBand[bandOf(rec)] += rec.Amount
	}

	var busiest int64
	for d := time.Sunday; d <= time.Saturday; d++ {
		if amt := p.ByWeekday[d]; amt > busiest {
			busiest = amt
			p.BusiestDay = d
		}
	}

	mean := float64(total) / float64(len(records))
	for _, rec := range records {
		if float64(rec.Amount) > outlierFactor*mean {
			p.Outliers = append(p.Outliers, rec)
		}
	}
	return p
}

// bandOf picks the time band from the record's wall-clock time, falling back
// to the Date's hour when Time is absent or malformed.
func bandOf(rec domain.TransactionRecord) TimeBand {
	hour := rec.Date.Hour()
	if parts := strings.SplitN(rec.Time, ":", 2); len(parts) == 2 {
		if h, err := strconv.Atoi(parts[0]); err == nil && h >= 0 && h < 24 {
			hour = h
		}
	}
	switch {
	case hour >= 5 && hour < 11:
		return BandPagi
	case hour >= 11 && hour < 15:
		return BandSiang
	case hour >= 15 && hour < 19:
		return BandSore
	default:
		return BandMalam
	}
}

// Package analysis computes totals, breakdowns, comparisons, predictions and
// spending patterns over externally fetched transaction records. All
// functions are pure; an empty input always yields a zero-valued result,
// never an error.
package analysis

import (
	"time"

	"github.com/nazhif/duitbot/internal/domain"
	"github.com/nazhif/duitbot/internal/timeparse"
)

// Summary aggregates one period of spending.
type Summary struct {
	Range          timeparse.DateRange       `json:"range"`
	Total          int64                     `json:"total"`
	Count          int                       `json:"count"`
	ByCategory     map[domain.Category]int64 `json:"by_category"`
	Largest        *domain.TransactionRecord `json:"largest,omitempty"`
	Smallest       *domain.TransactionRecord `json:"smallest,omitempty"`
	TopCategory    domain.Category           `json:"top_category"`
	DailyAverage   float64                   `json:"daily_average"`
	PerTransaction float64                   `json:"per_transaction_average"`
}

// Summarize computes the period summary for the given records. Records
// outside the range are ignored so callers may pass unfiltered collections.
func Summarize(records []domain.TransactionRecord, r timeparse.DateRange) Summary {
	s := Summary{
		Range:      r,
		ByCategory: make(map[domain.Category]int64),
	}

	for i := range records {
		rec := records[i]
		if !r.Contains(rec.Date) {
			continue
		}
		s.Total += rec.Amount
		s.Count++
		s.ByCategory[rec.Category] += rec.Amount
		if s.Largest == nil || rec.Amount > s.Largest.Amount {
			cp := rec
			s.Largest = &cp
		}
		if s.Smallest == nil || rec.Amount < s.Smallest.Amount {
			cp := rec
			s.Smallest = &cp
		}
	}

	var topAmount int64
	for _, c := range domain.Categories {
		if amt := s.ByCategory[c]; amt > topAmount {
			topAmount = amt
			s.TopCategory = c
		}
	}

	if days := daysInclusive(r.Start, r.End); days > 0 {
		s.DailyAverage = float64(s.Total) / float64(days)
	}
	if s.Count > 0 {
		s.PerTransaction = float64(s.Total) / float64(s.Count)
	}
	return s
}

// daysInclusive counts calendar days in a closed-inclusive range. An inverted
// range counts as zero days rather than erroring, per the tolerance contract
// for caller-supplied ranges.
func daysInclusive(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

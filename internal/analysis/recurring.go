package analysis

import (
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/nazhif/duitbot/internal/domain"
)

// Recurrence interval buckets, by mean inter-transaction day interval.
const (
	maxWeeklyDays    = 8
	maxMonthlyDays   = 35
	maxQuarterlyDays = 95

	// minOccurrences is the minimum cluster size before an expense counts as
	// recurring.
	minOccurrences = 3

	// maxIntervalDeviation excludes irregular clusters: any interval farther
	// than this fraction of the mean disqualifies the cluster.
	maxIntervalDeviation = 0.5
)

// RecurringExpense is a same-description expense recurring at a roughly
// uniform day interval.
type RecurringExpense struct {
	Description string    `json:"description"` // normalized form
	Interval    string    `json:"interval"`    // Mingguan, Bulanan or Kuartalan
	Occurrences int       `json:"occurrences"`
	AvgAmount   int64     `json:"avg_amount"`
	LastSeen    time.Time `json:"last_seen"`
	NextDue     time.Time `json:"next_due"`
}

// DetectRecurring normalizes descriptions (digits and punctuation stripped),
// clusters same-description transactions, and classifies each cluster by its
// mean inter-transaction interval. Irregular clusters are excluded.
func DetectRecurring(records []domain.TransactionRecord) []RecurringExpense {
	clusters := make(map[string][]domain.TransactionRecord)
	for _, rec := range records {
		key := NormalizeDescription(rec.Description)
		if key == "" {
			continue
		}
		clusters[key] = append(clusters[key], rec)
	}

	keys := make([]string, 0, len(clusters))
	for k := range clusters {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var result []RecurringExpense
	for _, key := range keys {
		recs := clusters[key]
		if len(recs) < minOccurrences {
			continue
		}
		sort.Slice(recs, func(i, j int) bool { return recs[i].Date.Before(recs[j].Date) })

		intervals := make([]float64, 0, len(recs)-1)
		for i := 1; i < len(recs); i++ {
			intervals = append(intervals, recs[i].Date.Sub(recs[i-1].Date).Hours()/24)
		}

		var sum float64
		for _, iv := range intervals {
			sum += iv
		}
		mean := sum / float64(len(intervals))
		if mean <= 0 {
			continue
		}

		irregular := false
		for _, iv := range intervals {
			if dev := iv - mean; dev > mean*maxIntervalDeviation || -dev > mean*maxIntervalDeviation {
				irregular = true
				break
			}
		}
		if irregular {
			continue
		}

		var interval string
		switch {
		case mean <= maxWeeklyDays:
			interval = "Mingguan"
		case mean <= maxMonthlyDays:
			interval = "Bulanan"
		case mean <= maxQuarterlyDays:
			interval = "Kuartalan"
		default:
			continue
		}

		var totalAmount int64
		for _, rec := range recs {
			totalAmount += rec.Amount
		}
		last := recs[len(recs)-1].Date

		result = append(result, RecurringExpense{
			Description: key,
			Interval:    interval,
			Occurrences: len(recs),
			AvgAmount:   totalAmount / int64(len(recs)),
			LastSeen:    last,
			NextDue:     last.AddDate(0, 0, int(mean+0.5)),
		})
	}
	return result
}

// NormalizeDescription lowercases a description and strips digits and
// punctuation so "Netflix 54.000" and "netflix 65000" cluster together.
func NormalizeDescription(desc string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(desc) {
		if unicode.IsLetter(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

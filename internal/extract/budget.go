package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/nazhif/duitbot/internal/domain"
)

var (
	periodRe   = regexp.MustCompile(`(?i)per\s+(hari|minggu|bulan)|(harian|mingguan|bulanan)`)
	deadlineRe = regexp.MustCompile(`(?i)dalam\s+(\d+)\s+(hari|minggu|bulan|tahun)`)
	goalRe     = regexp.MustCompile(`(?i)\btarget\b|\bnabung\b|\bmenabung\b|\btabungan\b`)
)

// BudgetParams captures (amount, period) or (amount, deadline) pairs from a
// budget or savings-goal command. Period defaults to monthly when the phrase
// supplies an amount but no explicit period. Returns false when no amount can
// be found.
func BudgetParams(text string, now time.Time) (domain.BudgetParams, bool) {
	amount, ok := Amount(text)
	if !ok {
		return domain.BudgetParams{}, false
	}

	p := domain.BudgetParams{
		Amount:   amount,
		Period:   domain.PeriodMonthly,
		Category: Categorize(text),
		Goal:     goalRe.MatchString(text),
	}

	if m := periodRe.FindStringSubmatch(text); m != nil {
		switch {
		case strings.EqualFold(m[1], "hari") || strings.EqualFold(m[2], "harian"):
			p.Period = domain.PeriodDaily
		case strings.EqualFold(m[1], "minggu") || strings.EqualFold(m[2], "mingguan"):
			p.Period = domain.PeriodWeekly
		}
	}

	if m := deadlineRe.FindStringSubmatch(text); m != nil {
		n, _ := strconv.Atoi(m[1])
		var deadline time.Time
		switch strings.ToLower(m[2]) {
		case "hari":
			deadline = now.AddDate(0, 0, n)
		case "minggu":
			deadline = now.AddDate(0, 0, 7*n)
		case "bulan":
			deadline = now.AddDate(0, n, 0)
		default:
			deadline = now.AddDate(n, 0, 0)
		}
		p.Deadline = &deadline
	}

	return p, true
}

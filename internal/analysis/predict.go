package analysis

import (
	"time"

	"github.com/nazhif/duitbot/internal/domain"
)

// Blend weights for the month-end projection when a previous month total is
// available: the current daily trend is noisy early in the month, so the
// previous period dominates.
const (
	weightTrend    = 0.3
	weightPrevious = 0.7
)

// Prediction is a month-end spending projection.
type Prediction struct {
	Projected    int64   `json:"projected"`
	SpentSoFar   int64   `json:"spent_so_far"`
	DailyAverage float64 `json:"daily_average"`
	DaysElapsed  int     `json:"days_elapsed"`
	DaysInMonth  int     `json:"days_in_month"`
	Confidence   float64 `json:"confidence"`
	Blended      bool    `json:"blended"` // true when previous-month data contributed
}

// PredictMonthEnd extrapolates the current month's spending to month end.
// currentRecs must belong to the month containing now; previousTotal is the
// prior month's total, or 0 when unknown. With prior data the projection is
// a 30/70 blend of the linear extrapolation and the previous total; without
// it the extrapolation stands alone. Confidence scales with elapsed days.
func PredictMonthEnd(currentRecs []domain.TransactionRecord, previousTotal int64, now time.Time) Prediction {
	daysInMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).
		AddDate(0, 1, -1).Day()

	p := Prediction{
		DaysElapsed: now.Day(),
		DaysInMonth: daysInMonth,
	}

	for _, rec := range currentRecs {
		p.SpentSoFar += rec.Amount
	}

	if p.DaysElapsed > 0 {
		p.DailyAverage = float64(p.SpentSoFar) / float64(p.DaysElapsed)
	}
	trend := p.DailyAverage * float64(daysInMonth)

	if previousTotal > 0 {
		p.Projected = int64(weightTrend*trend + weightPrevious*float64(previousTotal))
		p.Blended = true
	} else {
		p.Projected = int64(trend)
	}

	p.Confidence = float64(p.DaysElapsed) / float64(daysInMonth)
	if p.Confidence > 0.95 {
		p.Confidence = 0.95
	}
	return p
}

package analysis

import (
	"fmt"

	"github.com/nazhif/duitbot/internal/domain"
	"github.com/nazhif/duitbot/internal/timeparse"
)

// insightThresholdPct is the absolute percent change above which a comparison
// emits a qualitative insight.
const insightThresholdPct = 20.0

// Comparison holds a two-period spending comparison.
type Comparison struct {
	Current   Summary `json:"current"`
	Previous  Summary `json:"previous"`
	ChangePct float64 `json:"change_pct"`
	Insight   string  `json:"insight,omitempty"`
}

// Compare summarizes both periods and computes the percent change from
// previous to current. A zero previous total yields a zero percent change so
// first-month users never see a division artifact.
func Compare(currentRecs, previousRecs []domain.TransactionRecord, current, previous timeparse.DateRange) Comparison {
	c := Comparison{
		Current:  Summarize(currentRecs, current),
		Previous: Summarize(previousRecs, previous),
	}

	if c.Previous.Total > 0 {
		c.ChangePct = float64(c.Current.Total-c.Previous.Total) / float64(c.Previous.Total) * 100
	}

	switch {
	case c.ChangePct > insightThresholdPct:
		c.Insight = fmt.Sprintf("Pengeluaran naik %.0f%% dibanding %s, coba cek kategori %s.",
			c.ChangePct, previous.Label, c.Current.TopCategory)
	case c.ChangePct < -insightThresholdPct:
		c.Insight = fmt.Sprintf("Mantap, pengeluaran turun %.0f%% dibanding %s.",
			-c.ChangePct, previous.Label)
	}

	return c
}

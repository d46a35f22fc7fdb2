package analysis

import (
	"testing"
	"time"

	"github.com/nazhif/duitbot/internal/domain"
)

func timedRec(date time.Time, clock string, amount int64) domain.TransactionRecord {
	r := rec(date, "x", amount, domain.CategoryLainnya)
	r.Time = clock
	return r
}

func TestDetectPatterns(t *testing.T) {
	// 7 Sep 2026 is a Monday, 12 Sep a Saturday.
	records := []domain.TransactionRecord{
		timedRec(day(2026, time.September, 7), "08:00", 10000),
		timedRec(day(2026, time.September, 7), "12:30", 20000),
		timedRec(day(2026, time.September, 12), "20:00", 50000),
		timedRec(day(2026, time.September, 12), "16:15", 30000),
	}

	p := DetectPatterns(records)

	if p.ByWeekday[time.Monday] != 30000 {
		t.Errorf("ByWeekday[Monday] = %d, want 30000", p.ByWeekday[time.Monday])
	}
	if p.ByWeekday[time.Saturday] != 80000 {
		t.Errorf("ByWeekday[Saturday] = %d, want 80000", p.ByWeekday[time.Saturday])
	}
	if p.BusiestDay != time.Saturday {
		t.Errorf("BusiestDay = %s, want Saturday", p.BusiestDay)
	}

	wantBands := map[TimeBand]int64{
		BandPagi:  10000,
		BandSiang: 20000,
		BandSore:  30000,
		BandMalam: 50000,
	}
	for band, want := range wantBands {
		if got := p.ByTimeBand[band]; got != want {
			t.Errorf("ByTimeBand[%s] = %d, want %d", band, got, want)
		}
	}
}

func TestDetectPatterns_Outliers(t *testing.T) {
	records := []domain.TransactionRecord{
		timedRec(day(2026, time.September, 1), "09:00", 10000),
		timedRec(day(2026, time.September, 2), "09:00", 10000),
		timedRec(day(2026, time.September, 3), "09:00", 10000),
		timedRec(day(2026, time.September, 4), "09:00", 100000),
	}

	p := DetectPatterns(records)
	// mean 32500, threshold 97500: only the 100000 record qualifies.
	if len(p.Outliers) != 1 || p.Outliers[0].Amount != 100000 {
		t.Errorf("Outliers = %+v, want single 100000 record", p.Outliers)
	}
}

func TestDetectPatterns_Empty(t *testing.T) {
	p := DetectPatterns(nil)
	if len(p.ByWeekday) != 0 || len(p.ByTimeBand) != 0 || len(p.Outliers) != 0 {
		t.Errorf("expected empty pattern result, got %+v", p)
	}
}

func TestBandOf_FallsBackToDateHour(t *testing.T) {
	r := rec(time.Date(2026, time.September, 3, 13, 0, 0, 0, time.UTC), "x", 1000, domain.CategoryLainnya)
	tests := []struct {
		clock string
		want  TimeBand
	}{
		{"", BandSiang},        // no wall clock, Date hour 13 wins
		{"garbage", BandSiang}, // malformed, same fallback
		{"06:45", BandPagi},
		{"23:10", BandMalam},
		{"04:00", BandMalam},
	}
	for _, tt := range tests {
		r.Time = tt.clock
		if got := bandOf(r); got != tt.want {
			t.Errorf("bandOf(Time=%q) = %s, want %s", tt.clock, got, tt.want)
		}
	}
}

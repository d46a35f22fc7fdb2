package extract

import (
	"testing"
	"time"

	"github.com/nazhif/duitbot/internal/domain"
)

var budgetNow = time.Date(2026, time.September, 15, 10, 0, 0, 0, time.UTC)

func TestBudgetParams(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantOK       bool
		wantAmount   int64
		wantPeriod   domain.Period
		wantCategory domain.Category
		wantGoal     bool
	}{
		{
			name:         "category budget with explicit period",
			text:         "budget makanan 500 ribu per bulan",
			wantOK:       true,
			wantAmount:   500000,
			wantPeriod:   domain.PeriodMonthly,
			wantCategory: domain.CategoryMakanan,
		},
		{
			name:         "period defaults to monthly",
			text:         "set batas pengeluaran 2 juta",
			wantOK:       true,
			wantAmount:   2000000,
			wantPeriod:   domain.PeriodMonthly,
			wantCategory: domain.CategoryLainnya,
		},
		{
			name:         "weekly period",
			text:         "budget jajan 100 ribu per minggu",
			wantOK:       true,
			wantAmount:   100000,
			wantPeriod:   domain.PeriodWeekly,
			wantCategory: domain.CategoryMakanan,
		},
		{
			name:         "daily period",
			text:         "batas harian 50 ribu",
			wantOK:       true,
			wantAmount:   50000,
			wantPeriod:   domain.PeriodDaily,
			wantCategory: domain.CategoryLainnya,
		},
		{
			name:       "savings goal",
			text:       "target nabung 5 juta dalam 3 bulan",
			wantOK:     true,
			wantAmount: 5000000,
			wantPeriod: domain.PeriodMonthly,
			wantGoal:   true,
		},
		{
			name:   "no amount",
			text:   "atur budget dong",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := BudgetParams(tt.text, budgetNow)
			if ok != tt.wantOK {
				t.Fatalf("BudgetParams(%q) ok = %v, want %v", tt.text, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got.Amount != tt.wantAmount {
				t.Errorf("Amount = %d, want %d", got.Amount, tt.wantAmount)
			}
			if got.Period != tt.wantPeriod {
				t.Errorf("Period = %s, want %s", got.Period, tt.wantPeriod)
			}
			if tt.wantCategory != "" && got.Category != tt.wantCategory {
				t.Errorf("Category = %s, want %s", got.Category, tt.wantCategory)
			}
			if got.Goal != tt.wantGoal {
				t.Errorf("Goal = %v, want %v", got.Goal, tt.wantGoal)
			}
		})
	}
}

func TestBudgetParams_Deadline(t *testing.T) {
	got, ok := BudgetParams("target nabung 5 juta dalam 3 bulan", budgetNow)
	if !ok {
		t.Fatal("expected a match")
	}
	if got.Deadline == nil {
		t.Fatal("expected a deadline")
	}
	want := budgetNow.AddDate(0, 3, 0)
	if !got.Deadline.Equal(want) {
		t.Errorf("Deadline = %s, want %s", got.Deadline, want)
	}
}

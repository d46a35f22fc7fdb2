package intent

import (
	"testing"
	"time"

	"github.com/nazhif/duitbot/internal/domain"
	"github.com/nazhif/duitbot/internal/timeparse"
)

var now = time.Date(2026, time.September, 15, 10, 30, 0, 0, time.UTC)

func classify(text string) ParsedQuery {
	return Classify(text, "628123", now)
}

func TestClassify_Transactions(t *testing.T) {
	tests := []struct {
		text         string
		wantAmount   int64
		wantCategory domain.Category
	}{
		{"beli nasi padang 15 ribu", 15000, domain.CategoryMakanan},
		{"bayar parkir 5", 5000, domain.CategoryTransportasi},
		{"dari warung makan 25 ribu", 25000, domain.CategoryMakanan},
		{"isi bensin rp 50.000", 50000, domain.CategoryTransportasi},
		{"jajan 20k", 20000, domain.CategoryMakanan},
		{"habis 100 ribu buat kado", 100000, domain.CategoryLainnya},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			q := classify(tt.text)
			if q.Intent != IntentTransaction {
				t.Fatalf("Intent = %s, want %s", q.Intent, IntentTransaction)
			}
			if q.Amount != tt.wantAmount {
				t.Errorf("Amount = %d, want %d", q.Amount, tt.wantAmount)
			}
			if q.Category != tt.wantCategory {
				t.Errorf("Category = %s, want %s", q.Category, tt.wantCategory)
			}
		})
	}
}

func TestClassify_Queries(t *testing.T) {
	tests := []struct {
		text string
		want Intent
	}{
		{"berapa pengeluaranku bulan ini", IntentQueryTotal},
		{"total belanja minggu lalu", IntentQueryTotal},
		// "belanja" reads as generic "spending" in query phrasing, so it never
		// scopes a category query on its own.
		{"berapa pengeluaran belanja bulan ini", IntentQueryTotal},
		{"pengeluaranku dari tanggal 1 sampai tanggal 7", IntentQueryTotal},
		{"berapa pengeluaran makanan bulan ini", IntentQueryCategory},
		{"bandingkan pengeluaran bulan ini dengan bulan lalu", IntentComparison},
		{"prediksi pengeluaran akhir bulan", IntentPrediction},
		{"pola pengeluaranku gimana", IntentPattern},
		{"kasih saran biar hemat", IntentRecommendation},
		{"riwayat pengeluaranku kemarin", IntentHistory},
		{"cari transaksi indomaret", IntentSearch},
		{"hari apa aku paling boros", IntentMostSpendingDay},
		{"kasih tantangan hemat dong", IntentChallenge},
		{"simulasi kalau aku lebih hemat", IntentSimulation},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			q := classify(tt.text)
			if q.Intent != tt.want {
				t.Errorf("Intent = %s, want %s", q.Intent, tt.want)
			}
			if !q.Intent.IsQuery() {
				t.Errorf("IsQuery() = false for %s", q.Intent)
			}
		})
	}
}

func TestClassify_DateRangeQueryResolvesRange(t *testing.T) {
	q := classify("pengeluaranku dari tanggal 1 sampai tanggal 7")
	if q.Time == nil {
		t.Fatal("expected a resolved time context")
	}
	r := q.Time.Range(now)
	if r.Start.Day() != 1 || r.End.Day() != 7 ||
		r.Start.Month() != now.Month() || r.End.Month() != now.Month() {
		t.Errorf("range = [%s, %s], want days 1-7 of current month", r.Start, r.End)
	}
}

// Budget/goal patterns short-circuit even when the text carries a
// currency-unit token that would otherwise classify as a transaction.
func TestClassify_BudgetBeatsCurrencyToken(t *testing.T) {
	q := classify("budget makanan 500 ribu per bulan")
	if q.Intent != IntentBudget {
		t.Fatalf("Intent = %s, want %s", q.Intent, IntentBudget)
	}
	if q.Budget == nil {
		t.Fatal("expected budget params")
	}
	if q.Budget.Amount != 500000 {
		t.Errorf("Amount = %d, want 500000", q.Budget.Amount)
	}
	if q.Budget.Category != domain.CategoryMakanan {
		t.Errorf("Category = %s, want %s", q.Budget.Category, domain.CategoryMakanan)
	}
	if q.Budget.Period != domain.PeriodMonthly {
		t.Errorf("Period = %s, want %s", q.Budget.Period, domain.PeriodMonthly)
	}
}

func TestClassify_Goal(t *testing.T) {
	q := classify("target nabung 5 juta dalam 3 bulan")
	if q.Intent != IntentGoal {
		t.Fatalf("Intent = %s, want %s", q.Intent, IntentGoal)
	}
	if q.Budget == nil || !q.Budget.Goal {
		t.Error("expected goal params")
	}
}

// The arbitration contract: query iff at least one query pattern matches and
// zero transaction patterns match; otherwise transaction.
func TestClassify_Arbitration(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Intent
	}{
		{
			// Currency-unit token forces transaction even though "dari" looks
			// query-ish.
			name: "location plus amount wins over dari heuristic",
			text: "dari warung makan 25 ribu",
			want: IntentTransaction,
		},
		{
			// "dari tanggal" is excluded from the transaction set.
			name: "date range stays a query",
			text: "pengeluaranku dari tanggal 1 sampai tanggal 7",
			want: IntentQueryTotal,
		},
		{
			name: "interrogative with currency token is a transaction",
			text: "berapa ya tadi beli kopi 18 ribu",
			want: IntentTransaction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if q := classify(tt.text); q.Intent != tt.want {
				t.Errorf("Classify(%q) = %s, want %s", tt.text, q.Intent, tt.want)
			}
		})
	}
}

// Every input carrying an explicit currency-unit token and no "dari tanggal"
// exclusion must classify as a transaction (or budget, which outranks it).
func TestClassify_CurrencyTokenProperty(t *testing.T) {
	texts := []string{
		"beli kopi 18 ribu",
		"bayar tol 15rb",
		"makan siang rp 35.000",
		"nonton bioskop 50k",
		"beli pulsa 25 ribu kemarin",
	}
	for _, text := range texts {
		if q := classify(text); q.Intent != IntentTransaction {
			t.Errorf("Classify(%q) = %s, want %s", text, q.Intent, IntentTransaction)
		}
	}
}

func TestClassify_ComparisonPeriods(t *testing.T) {
	q := classify("bandingkan pengeluaran bulan ini dengan bulan lalu")
	if q.Intent != IntentComparison {
		t.Fatalf("Intent = %s, want %s", q.Intent, IntentComparison)
	}
	if q.Time == nil || q.CompareWith == nil {
		t.Fatal("expected two time contexts")
	}

	curr := q.Time.Range(now)
	prev := q.CompareWith.Range(now)
	if curr.Start.Month() != time.September || curr.Start.Day() != 1 {
		t.Errorf("current = [%s, %s], want September 2026", curr.Start, curr.End)
	}
	if prev.Start.Month() != time.August || prev.End.Day() != 31 {
		t.Errorf("previous = [%s, %s], want August 2026", prev.Start, prev.End)
	}
}

func TestClassify_ComparisonDefaults(t *testing.T) {
	q := classify("bandingkan pengeluaranku dong")
	if q.Intent != IntentComparison {
		t.Fatalf("Intent = %s, want %s", q.Intent, IntentComparison)
	}
	curr := q.Time.Range(now)
	prev := q.CompareWith.Range(now)
	if curr.Start.Month() != time.September || prev.Start.Month() != time.August {
		t.Errorf("defaults = %s vs %s, want current vs previous month", curr.Label, prev.Label)
	}
}

func TestClassify_Unknown(t *testing.T) {
	for _, text := range []string{"halo bot", "makasih ya", "p"} {
		q := classify(text)
		if q.Intent != IntentUnknown {
			t.Errorf("Classify(%q) = %s, want %s", text, q.Intent, IntentUnknown)
		}
	}
}

func TestClassify_SearchKeywordExtraction(t *testing.T) {
	q := classify("cari transaksi indomaret")
	if q.SearchKeyword != "indomaret" {
		t.Errorf("SearchKeyword = %q, want %q", q.SearchKeyword, "indomaret")
	}
}

// The sub-intent evaluation order is part of the contract; this freezes it.
func TestSubIntentOrderFrozen(t *testing.T) {
	want := []Intent{
		IntentQueryTotal,
		IntentQueryCategory,
		IntentComparison,
		IntentPrediction,
		IntentPattern,
		IntentRecommendation,
		IntentHistory,
		IntentSearch,
		IntentMostSpendingDay,
		IntentChallenge,
		IntentSimulation,
	}
	if len(subIntentOrder) != len(want) {
		t.Fatalf("subIntentOrder has %d entries, want %d", len(subIntentOrder), len(want))
	}
	for i, s := range subIntentOrder {
		if s.intent != want[i] {
			t.Errorf("subIntentOrder[%d] = %s, want %s", i, s.intent, want[i])
		}
	}
}

func TestClassify_TimeContextPopulated(t *testing.T) {
	q := classify("total belanja minggu lalu")
	if q.Time == nil {
		t.Fatal("expected a time context")
	}
	if q.Time.Kind != timeparse.KindWeek || q.Time.Offset != 1 {
		t.Errorf("Time = %+v, want previous week", q.Time)
	}
}

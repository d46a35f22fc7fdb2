package extract

import (
	"testing"
)

func TestAmount(t *testing.T) {
	tests := []struct {
		text   string
		want   int64
		wantOK bool
	}{
		{"beli nasi padang 15 ribu", 15000, true},
		{"12.000", 12000, true},
		{"5k", 5000, true},
		{"15 ribu", 15000, true},
		// Bare magnitudes below 1000 mean thousands in everyday usage.
		{"5", 5000, true},
		{"jajan 250", 250000, true},
		{"2 juta", 2000000, true},
		{"1,5 juta", 1500000, true},
		{"3 jt", 3000000, true},
		{"20 rb", 20000, true},
		{"rp 50.000", 50000, true},
		{"Rp. 75000", 75000, true},
		{"bayar 100 rupiah", 100, true},
		{"1.250.000", 1250000, true},
		// Unit-bearing amounts beat earlier bare numerals.
		{"beli 2 nasi goreng 30 ribu", 30000, true},
		{"tidak ada angka", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := Amount(tt.text)
			if ok != tt.wantOK {
				t.Fatalf("Amount(%q) ok = %v, want %v", tt.text, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Amount(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestAmount_NeverNegative(t *testing.T) {
	for _, text := range []string{"minus -5 ribu", "beli kopi 18k", "0"} {
		if got, _ := Amount(text); got < 0 {
			t.Errorf("Amount(%q) = %d, want non-negative", text, got)
		}
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"12.000", 12000},
		{"1.250.000", 1250000},
		{"12,000", 12000},
		{"12,5", 12.5},
		{"12.5", 12.5},
		{"500", 500},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseNumber(tt.input); got != tt.want {
				t.Errorf("parseNumber(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

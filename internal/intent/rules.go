package intent

import (
	"regexp"
	"strings"

	"github.com/nazhif/duitbot/internal/extract"
)

// rule is one entry of a declarative pattern table. guard, when set, must
// also return true for the rule to count as a match; this is how the
// transaction set excludes "dari tanggal ..." date-range phrasing without
// lookahead (RE2 has none).
type rule struct {
	tag   string
	re    *regexp.Regexp
	guard func(text string) bool
}

func (r rule) matches(lower string) bool {
	if !r.re.MatchString(lower) {
		return false
	}
	if r.guard != nil && !r.guard(lower) {
		return false
	}
	return true
}

func matchAny(rules []rule, lower string) bool {
	for _, r := range rules {
		if r.matches(lower) {
			return true
		}
	}
	return false
}

var dariTanggalRe = regexp.MustCompile(`\bdari\s+tanggal\b`)

// budgetRules short-circuit to the budget/goal stage. They win even when the
// text also carries a currency-unit token that would otherwise look like a
// transaction.
var budgetRules = []rule{
	{tag: "set_batas", re: regexp.MustCompile(`\bset\s+batas\b`)},
	{tag: "batas_pengeluaran", re: regexp.MustCompile(`\bbatas\s+pengeluaran\b`)},
	{tag: "budget", re: regexp.MustCompile(`\bbudget\b`)},
	{tag: "anggaran", re: regexp.MustCompile(`\batur\s+anggaran\b`)},
	{tag: "target", re: regexp.MustCompile(`\btarget\s+(menabung|nabung|tabungan|belanja|pengeluaran)\b`)},
	{tag: "nabung", re: regexp.MustCompile(`\b(mau|ingin|pengen)\s+(me)?nabung\b`)},
	{tag: "target_amount", re: regexp.MustCompile(`\btarget\b.*\d`)},
}

// queryRules is the InformationQuerySet: interrogatives, possessive+time
// phrasing, explicit date ranges, and the comparison/prediction/pattern/
// recommendation vocabulary.
var queryRules = []rule{
	{tag: "berapa", re: regexp.MustCompile(`\bberapa\b`)},
	{tag: "total", re: regexp.MustCompile(`\btotal\b`)},
	{tag: "jumlah", re: regexp.MustCompile(`\bjumlah\b`)},
	{tag: "rekap", re: regexp.MustCompile(`\b(rekap|ringkasan|laporan)\b`)},
	{tag: "possessive_time", re: regexp.MustCompile(`\b(pengeluaran|belanja|transaksi|jajan)ku\s+(hari|minggu|bulan|tahun|kemarin|tanggal)`)},
	{tag: "date_range", re: dariTanggalRe},
	{tag: "sampai_tanggal", re: regexp.MustCompile(`\bsampai\s+tanggal\b`)},
	{tag: "comparison", re: regexp.MustCompile(`\b(bandingkan|dibanding(kan)?|perbandingan)\b`)},
	{tag: "prediction", re: regexp.MustCompile(`\b(prediksi|perkiraan|estimasi|proyeksi)\b`)},
	{tag: "pattern", re: regexp.MustCompile(`\b(pola|kebiasaan|analisis)\b`)},
	{tag: "recommendation", re: regexp.MustCompile(`\b(saran|rekomendasi|tips|cara\s+hemat)\b`)},
	{tag: "history", re: regexp.MustCompile(`\b(riwayat|history|daftar\s+transaksi)\b`)},
	{tag: "search", re: regexp.MustCompile(`\bcari\b|\bdi\s*mana\b|\bkapan\b`)},
	{tag: "boros", re: regexp.MustCompile(`\bpaling\s+(boros|besar|banyak)\b|\bterboros\b`)},
	{tag: "challenge", re: regexp.MustCompile(`\b(tantangan|challenge)\b`)},
	{tag: "simulation", re: regexp.MustCompile(`\b(bagaimana\s+jika|gimana\s+kalau|simulasi|seandainya)\b`)},
}

// transactionRules is the TransactionRecordSet: currency-unit tokens,
// imperative verb-led phrases, item-purchase phrasing, and location+numeral
// phrasing. The location rule explicitly excludes "dari tanggal", so
// date-range queries are never captured as location-based transactions.
var transactionRules = []rule{
	{tag: "currency_unit", re: regexp.MustCompile(`\d\s*(ribu|rb|juta|jt|rupiah)\b|\brp\.?\s*\d|\d+k\b`)},
	{tag: "verb_led", re: regexp.MustCompile(`^\s*(beli|bayar|belanja|jajan|isi|beliin)\b`)},
	{tag: "item_purchase", re: regexp.MustCompile(`\b(beli|bayar)\b.*\d`)},
	{
		tag:   "location_numeral",
		re:    regexp.MustCompile(`\bdari\s+\S+.*\d`),
		guard: func(lower string) bool { return !dariTanggalRe.MatchString(lower) },
	},
	{tag: "spend_numeral", re: regexp.MustCompile(`\b(habis|keluar)\s+\d`)},
}

// categoryNameRe matches an explicit category name. Keyword-level matches
// (merchants, dishes) deliberately do not count here: a searched merchant like
// "indomaret" must stay a search, not become a category query.
var categoryNameRe = regexp.MustCompile(`\b(makanan|transportasi|hiburan|kesehatan|pendidikan|tagihan)\b`)

var queryTotalRe = regexp.MustCompile(`\btotal\b|\bberapa\s+(pengeluaran|belanja|habis|jajan)|\bjumlah\s+pengeluaran`)

// subIntentOrder is the fine-grained sub-classification for the query branch,
// evaluated first-match-wins. The order is frozen; tests enumerate it.
var subIntentOrder = []struct {
	intent Intent
	match  func(lower string) bool
}{
	{IntentQueryTotal, func(lower string) bool {
		return queryTotalRe.MatchString(lower) && !categoryNameRe.MatchString(lower)
	}},
	{IntentQueryCategory, categoryNameRe.MatchString},
	{IntentComparison, reMatcher(`\b(bandingkan|dibanding(kan)?|perbandingan)\b`)},
	{IntentPrediction, reMatcher(`\b(prediksi|perkiraan|estimasi|proyeksi)\b`)},
	{IntentPattern, reMatcher(`\b(pola|kebiasaan|analisis)\b`)},
	{IntentRecommendation, reMatcher(`\b(saran|rekomendasi|tips|cara\s+hemat)\b`)},
	{IntentHistory, reMatcher(`\b(riwayat|history|daftar\s+transaksi)\b`)},
	{IntentSearch, func(lower string) bool {
		_, ok := extract.SearchKeyword(lower)
		return ok || strings.Contains(lower, "cari")
	}},
	{IntentMostSpendingDay, reMatcher(`\bpaling\s+boros\b|\bterboros\b|\bhari\s+apa\b`)},
	{IntentChallenge, reMatcher(`\b(tantangan|challenge)\b`)},
	{IntentSimulation, reMatcher(`\b(bagaimana\s+jika|gimana\s+kalau|simulasi|seandainya)\b`)},
}

func reMatcher(pattern string) func(string) bool {
	re := regexp.MustCompile(pattern)
	return re.MatchString
}

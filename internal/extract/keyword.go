package extract

import (
	"regexp"
	"strings"
)

// searchTemplates is the ordered list of phrase templates for search queries.
// The first template whose capture group matches wins.
var searchTemplates = []*regexp.Regexp{
	regexp.MustCompile(`(?i)beli\s+(.+?)\s+di\s*mana`),
	regexp.MustCompile(`(?i)cari\s+transaksi\s+(.+)`),
	regexp.MustCompile(`(?i)cari\s+pengeluaran\s+(.+)`),
	regexp.MustCompile(`(?i)kapan\s+(?:aku\s+|saya\s+)?beli\s+(.+)`),
	regexp.MustCompile(`(?i)riwayat\s+(?:transaksi\s+|pengeluaran\s+)?(.+)`),
	regexp.MustCompile(`(?i)transaksi\s+(.+?)\s+(?:kemarin|bulan|minggu)`),
	regexp.MustCompile(`(?i)cari\s+(.+)`),
}

// timeTrailerRe strips trailing temporal phrases from a captured keyword so
// "cari transaksi kopi bulan lalu" yields "kopi".
var timeTrailerRe = regexp.MustCompile(
	`(?i)\s+(hari ini|kemarin( lusa)?|(minggu|bulan|tahun)\s+(ini|lalu|kemarin)|\d+\s+(hari|minggu|bulan|tahun)\s+(yang\s+)?lalu)\s*$`)

// SearchKeyword captures the object of a search query. Returns false when no
// template matches.
func SearchKeyword(text string) (string, bool) {
	for _, re := range searchTemplates {
		if m := re.FindStringSubmatch(text); m != nil {
			kw := strings.TrimSpace(timeTrailerRe.ReplaceAllString(m[1], ""))
			kw = strings.Trim(kw, "?.!")
			if kw != "" {
				return kw, true
			}
		}
	}
	return "", false
}

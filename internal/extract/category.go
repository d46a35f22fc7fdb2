// Package extract pulls structured entities (category, amount, search
// keyword, budget parameters) out of free-text Indonesian messages.
package extract

import (
	"strings"

	"github.com/nazhif/duitbot/internal/domain"
)

// categoryRules is the ordered (category, keyword-set) table. Keyword sets are
// not mutually exclusive, so the declared order is part of the contract: the
// first category with a substring match wins.
var categoryRules = []struct {
	category domain.Category
	keywords []string
}{
	{domain.CategoryMakanan, []string{
		"makan", "nasi", "ayam", "bakso", "mie", "sate", "soto", "warung",
		"resto", "kopi", "cafe", "kafe", "sarapan", "jajan", "gofood",
		"grabfood", "minum", "es teh", "martabak", "padang", "gorengan",
	}},
	{domain.CategoryTransportasi, []string{
		"bensin", "ojek", "gojek", "grab", "taksi", "taxi", "busway", "bus",
		"kereta", "krl", "mrt", "parkir", "tol", "angkot", "ongkos", "transport",
	}},
	{domain.CategoryBelanja, []string{
		"belanja", "shopee", "tokopedia", "lazada", "baju", "celana", "sepatu",
		" tas", "mall", "supermarket", "indomaret", "alfamart", "skincare",
	}},
	{domain.CategoryHiburan, []string{
		"nonton", "bioskop", "film", "game", "netflix", "spotify", "konser",
		"karaoke", "liburan", "wisata", "hiburan",
	}},
	{domain.CategoryKesehatan, []string{
		"obat", "dokter", "apotek", "rumah sakit", "klinik", "vitamin", "bpjs",
	}},
	{domain.CategoryPendidikan, []string{
		"buku", "kursus", "les ", "sekolah", "kuliah", "spp", "seminar", "pelatihan",
	}},
	{domain.CategoryTagihan, []string{
		"listrik", "pdam", "air", "internet", "wifi", "pulsa", "token",
		"tagihan", "sewa", "kontrakan", "cicilan", "iuran",
	}},
}

// Categorize maps a message onto the category taxonomy by first substring
// match over the ordered keyword table. Returns CategoryLainnya when no
// keyword set matches.
func Categorize(text string) domain.Category {
	lower := strings.ToLower(text)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
	}
	return domain.CategoryLainnya
}

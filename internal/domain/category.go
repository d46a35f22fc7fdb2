package domain

import "strings"

// Category is the closed expense taxonomy. CategoryLainnya is the catch-all
// default for descriptions no keyword set claims.
type Category string

const (
	CategoryMakanan      Category = "Makanan"
	CategoryTransportasi Category = "Transportasi"
	CategoryBelanja      Category = "Belanja"
	CategoryHiburan      Category = "Hiburan"
	CategoryKesehatan    Category = "Kesehatan"
	CategoryPendidikan   Category = "Pendidikan"
	CategoryTagihan      Category = "Tagihan"
	CategoryLainnya      Category = "Lainnya"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryMakanan,
	CategoryTransportasi,
	CategoryBelanja,
	CategoryHiburan,
	CategoryKesehatan,
	CategoryPendidikan,
	CategoryTagihan,
	CategoryLainnya,
}

// ParseCategory maps a free-form name onto the taxonomy, defaulting to
// CategoryLainnya for anything unrecognized.
func ParseCategory(name string) Category {
	for _, c := range Categories {
		if strings.EqualFold(string(c), strings.TrimSpace(name)) {
			return c
		}
	}
	return CategoryLainnya
}

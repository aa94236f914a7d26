package schema

import "strings"

// BrandEntry is one row of the BRANDS tab, keyed by its first column.
// Duplicate detection is a client concern; the server does not enforce it.
type BrandEntry struct {
	Brand     string `json:"brand"`
	BrandName string `json:"brandName"`
	Website   string `json:"website"`
}

// ParseBrands reads the three-column brand list (header already excluded by
// the read range), dropping rows with an empty first column.
func ParseBrands(rows [][]string) []BrandEntry {
	brands := []BrandEntry{}
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		b := BrandEntry{Brand: strings.TrimSpace(row[0])}
		if b.Brand == "" {
			continue
		}
		if len(row) > 1 {
			b.BrandName = strings.TrimSpace(row[1])
		}
		if len(row) > 2 {
			b.Website = strings.TrimSpace(row[2])
		}
		brands = append(brands, b)
	}
	return brands
}

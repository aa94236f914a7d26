package schema

import (
	"strconv"
	"strings"
)

// ProductRecord is one row of the PRODUCTS_TODO tab that qualified for the
// entry form.
type ProductRecord struct {
	SKU          string `json:"sku"`
	Brand        string `json:"brand"`
	Status       string `json:"status"`
	Visibility   int    `json:"visibility"`
	ExampleTitle string `json:"exampleTitle"`
}

// ParseProducts reads the four-column product list (header already excluded
// by the read range) and keeps only rows with status READY and visibility of
// at least 1. ExampleTitle falls back to the SKU; the sheet carries no
// richer title source.
func ParseProducts(rows [][]string) []ProductRecord {
	products := []ProductRecord{}
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		sku := strings.TrimSpace(row[0])
		if sku == "" {
			continue
		}

		p := ProductRecord{SKU: sku, ExampleTitle: sku}
		if len(row) > 1 {
			p.Brand = strings.TrimSpace(row[1])
		}
		if len(row) > 2 {
			p.Status = strings.TrimSpace(row[2])
		}
		if len(row) > 3 {
			if v, err := strconv.Atoi(strings.TrimSpace(row[3])); err == nil {
				p.Visibility = v
			}
		}

		if p.Status == "READY" && p.Visibility >= 1 {
			products = append(products, p)
		}
	}
	return products
}

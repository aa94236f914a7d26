package schema

import "strings"

// ParseCategoryFilterMap reads the two-column FILTER tab (header already
// excluded by the read range) into categoryKeyword -> filterDefaultName.
func ParseCategoryFilterMap(rows [][]string) map[string]string {
	filters := map[string]string{}
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		keyword := strings.TrimSpace(row[0])
		name := strings.TrimSpace(row[1])
		if keyword == "" || name == "" {
			continue
		}
		filters[keyword] = name
	}
	return filters
}

// ParseFilterDefaults reads the FILTER_DEFAULTS grid: row 1 names the filter
// defaults and each column lists the allowed property names below its
// header. Columns with an empty header are skipped entirely, data included.
func ParseFilterDefaults(grid [][]string) map[string][]string {
	defaults := map[string][]string{}
	if len(grid) == 0 {
		return defaults
	}

	for col, header := range grid[0] {
		name := strings.TrimSpace(header)
		if name == "" {
			continue
		}
		allowed := []string{}
		for _, row := range grid[1:] {
			if col >= len(row) {
				continue
			}
			if cell := strings.TrimSpace(row[col]); cell != "" {
				allowed = append(allowed, cell)
			}
		}
		defaults[name] = allowed
	}

	return defaults
}

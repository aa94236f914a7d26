package schema

import "strings"

// Input types for specification fields.
const (
	InputDropdown = "dropdown"
	InputText     = "text"
	InputNumber   = "number"
	InputBoolean  = "boolean"
)

const defaultSection = "Specifications"

// PropertyDefinition describes one specification field of the entry form,
// derived from a LEGAL row plus optional metadata from the PROPERTIES tab.
type PropertyDefinition struct {
	Name       string `json:"name"`
	Key        string `json:"key"`
	InputType  string `json:"inputType"`
	Section    string `json:"section"`
	UnitSuffix string `json:"unitSuffix,omitempty"`
}

type propertyMeta struct {
	section   string
	inputType string
	unit      string
}

// PropertyKey derives the deterministic camelCase key for a property name:
// non-alphanumeric runs collapse to a single space, then the trimmed,
// lowercased words are camelCase-joined. "Beam Angle" -> "beamAngle".
//
// Two names that normalize to the same key are not deduplicated; collisions
// are a known limitation callers tolerate.
func PropertyKey(name string) string {
	var normalized strings.Builder
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			normalized.WriteRune(r)
		} else {
			normalized.WriteByte(' ')
		}
	}

	words := strings.Fields(strings.ToLower(normalized.String()))
	if len(words) == 0 {
		return ""
	}

	var key strings.Builder
	key.WriteString(words[0])
	for _, w := range words[1:] {
		key.WriteString(strings.ToUpper(w[:1]))
		key.WriteString(w[1:])
	}
	return key.String()
}

// DeriveProperties turns LEGAL rows (header included) into property
// definitions. A row with at least one allowed value becomes a dropdown with
// no unit; a row with none becomes free text with unit "mm". The PROPERTIES
// tab rows (name, section, inputType, unit) override section and, when
// present, input type and unit.
func DeriveProperties(legalRows [][]string, propertyRows [][]string) []PropertyDefinition {
	meta := parsePropertyMeta(propertyRows)
	defs := []PropertyDefinition{}

	for i, row := range legalRows {
		if i == 0 || len(row) == 0 {
			continue
		}
		name := strings.TrimSpace(row[0])
		if name == "" {
			continue
		}

		def := PropertyDefinition{
			Name:    name,
			Key:     PropertyKey(name),
			Section: defaultSection,
		}
		if len(rowValues(row)) > 0 {
			def.InputType = InputDropdown
		} else {
			def.InputType = InputText
			def.UnitSuffix = "mm"
		}

		if m, ok := meta[name]; ok {
			if m.section != "" {
				def.Section = m.section
			}
			if m.inputType != "" {
				def.InputType = m.inputType
			}
			if m.unit != "" {
				def.UnitSuffix = m.unit
			}
		}

		defs = append(defs, def)
	}

	return defs
}

// LegalValueMap collects propertyName -> allowed values from LEGAL rows
// (header included). Order is preserved as it appears in the sheet; it only
// matters for next-empty-column appends, not for display.
func LegalValueMap(legalRows [][]string) map[string][]string {
	values := map[string][]string{}
	for i, row := range legalRows {
		if i == 0 || len(row) == 0 {
			continue
		}
		name := strings.TrimSpace(row[0])
		if name == "" {
			continue
		}
		values[name] = rowValues(row)
	}
	return values
}

// rowValues returns the trimmed non-empty cells after column A.
func rowValues(row []string) []string {
	values := []string{}
	for _, cell := range row[1:] {
		if cell = strings.TrimSpace(cell); cell != "" {
			values = append(values, cell)
		}
	}
	return values
}

func parsePropertyMeta(rows [][]string) map[string]propertyMeta {
	meta := map[string]propertyMeta{}
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		name := strings.TrimSpace(row[0])
		if name == "" {
			continue
		}
		m := propertyMeta{}
		if len(row) > 1 {
			m.section = strings.TrimSpace(row[1])
		}
		if len(row) > 2 {
			m.inputType = strings.TrimSpace(row[2])
		}
		if len(row) > 3 {
			m.unit = strings.TrimSpace(row[3])
		}
		meta[name] = m
	}
	return meta
}

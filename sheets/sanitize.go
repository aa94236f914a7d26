package sheets

import "strings"

// SanitizeCell prefixes a single quote when a value would otherwise be
// interpreted as a spreadsheet formula. The quote itself is not a trigger
// character, so sanitizing twice is a no-op.
func SanitizeCell(value string) string {
	if value == "" {
		return value
	}
	switch value[0] {
	case '=', '+', '-', '@', '\t':
		return "'" + value
	}
	return value
}

func sanitizeRow(row []string) []string {
	out := make([]string, len(row))
	for i, v := range row {
		out[i] = SanitizeCell(v)
	}
	return out
}

// ColumnLetter converts a zero-based column index to its spreadsheet
// letter: 0 -> A, 25 -> Z, 26 -> AA.
func ColumnLetter(index int) string {
	var sb strings.Builder
	n := index + 1
	for n > 0 {
		n--
		sb.WriteByte(byte('A' + n%26))
		n /= 26
	}
	// Digits come out least-significant first.
	letters := []byte(sb.String())
	for i, j := 0, len(letters)-1; i < j; i, j = i+1, j-1 {
		letters[i], letters[j] = letters[j], letters[i]
	}
	return string(letters)
}

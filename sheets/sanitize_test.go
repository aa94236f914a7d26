package sheets

import "testing"

func TestSanitizeCellEscapesFormulaPrefixes(t *testing.T) {
	cases := map[string]string{
		"=SUM(A1:A2)": "'=SUM(A1:A2)",
		"+1234":       "'+1234",
		"-5":          "'-5",
		"@import":     "'@import",
		"\tleading":   "'\tleading",
		"plain text":  "plain text",
		"100mm":       "100mm",
		"'=already":   "'=already",
		"":            "",
		"mid=formula": "mid=formula",
	}

	for in, want := range cases {
		if got := SanitizeCell(in); got != want {
			t.Errorf("SanitizeCell(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSanitizeCellIdempotent(t *testing.T) {
	once := SanitizeCell("=1+1")
	twice := SanitizeCell(once)
	if once != twice {
		t.Errorf("double sanitize changed value: %q vs %q", once, twice)
	}
}

func TestColumnLetter(t *testing.T) {
	cases := map[int]string{
		0:   "A",
		1:   "B",
		25:  "Z",
		26:  "AA",
		27:  "AB",
		51:  "AZ",
		52:  "BA",
		701: "ZZ",
		702: "AAA",
	}

	for index, want := range cases {
		if got := ColumnLetter(index); got != want {
			t.Errorf("ColumnLetter(%d) = %q, want %q", index, got, want)
		}
	}
}

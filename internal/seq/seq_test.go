package seq

import (
	"regexp"
	"testing"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		prefix string
		n      int
		width  int
		want   string
	}{
		{"CLI", 1, 3, "CLI001"},
		{"VEN", 42, 3, "VEN042"},
		{"DET", 7, 4, "DET0007"},
		{"DET", 1234, 4, "DET1234"},
		{"PRD", 1000, 3, "PRD1000"}, // desborda el ancho sin truncar
	}

	for _, tc := range cases {
		if got := Format(tc.prefix, tc.n, tc.width); got != tc.want {
			t.Errorf("Format(%q, %d, %d) = %q, want %q", tc.prefix, tc.n, tc.width, got, tc.want)
		}
	}
}

// El predicado del scan admite solo sufijos enteramente numericos; un ID
// legado como CLI-TEMP no debe entrar al CAST. Postgres evalua `~` como
// POSIX, asi que la semantica de este patron coincide con regexp.
func TestSuffixPattern(t *testing.T) {
	re := regexp.MustCompile(suffixPattern("CLI"))

	matches := []string{"CLI001", "CLI042", "CLI1234"}
	for _, s := range matches {
		if !re.MatchString(s) {
			t.Errorf("%q deberia coincidir con %q", s, re.String())
		}
	}

	noMatches := []string{"CLI", "CLI-TEMP", "CLI01B", "XCLI001", "CLI001X"}
	for _, s := range noMatches {
		if re.MatchString(s) {
			t.Errorf("%q no deberia coincidir con %q", s, re.String())
		}
	}
}

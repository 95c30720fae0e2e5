package cita

import (
	"testing"

	"github.com/barberia-app/barberia-api/internal/httperr"
)

func TestParseHora(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"9:30", 570, false},
		{"09:30", 570, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"10:60", 0, true},
		{"10", 0, true},
		{"10:3", 0, true},
		{"", 0, true},
		{"diez:30", 0, true},
	}

	for _, tc := range cases {
		got, err := ParseHora(tc.in)
		if tc.wantErr {
			if !httperr.IsBusiness(err, httperr.CodeInvalidInput) {
				t.Errorf("ParseHora(%q): expected invalid_input, got %v", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseHora(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseHora(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestValidarRango(t *testing.T) {
	if err := ValidarRango("10:00", "10:30"); err != nil {
		t.Errorf("rango valido rechazado: %v", err)
	}
	if err := ValidarRango("10:30", "10:00"); !httperr.IsBusiness(err, httperr.CodeInvalidInput) {
		t.Errorf("fin antes de inicio: expected invalid_input, got %v", err)
	}
	if err := ValidarRango("10:00", "10:00"); !httperr.IsBusiness(err, httperr.CodeInvalidInput) {
		t.Errorf("rango vacio: expected invalid_input, got %v", err)
	}
}

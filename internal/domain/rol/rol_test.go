package rol

import "testing"

func TestParse(t *testing.T) {
	cases := []struct {
		in      string
		want    Rol
		wantErr bool
	}{
		{"admin", Admin, false},
		{"barbero", Barbero, false},
		{"cliente", Cliente, false},
		{"Admin", "", true},
		{"root", "", true},
		{"", "", true},
	}

	for _, tc := range cases {
		got, err := Parse(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("Parse(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestLanding(t *testing.T) {
	cases := []struct {
		r    Rol
		want string
	}{
		{Admin, "/reportes"},
		{Barbero, "/citas"},
		{Cliente, "/servicios/menu"},
	}

	for _, tc := range cases {
		if got := tc.r.Landing(); got != tc.want {
			t.Errorf("%s.Landing() = %q, want %q", tc.r, got, tc.want)
		}
	}
}

func TestIn(t *testing.T) {
	if !Cliente.In(Admin, Barbero, Cliente) {
		t.Error("Cliente deberia estar en la lista")
	}
	if Cliente.In(Admin, Barbero) {
		t.Error("Cliente no deberia estar en la lista")
	}
	if Admin.In() {
		t.Error("lista vacia no contiene a nadie")
	}
}

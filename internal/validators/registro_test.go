package validators

import "testing"

func TestIsNombreValid(t *testing.T) {
	validos := []string{"Juan", "María José", "Ángel Núñez", "De la Cruz"}
	for _, s := range validos {
		if !IsNombreValid(s) {
			t.Errorf("IsNombreValid(%q) = false, want true", s)
		}
	}

	invalidos := []string{"", "J", "Juan123", "Juan<script>", "Pérez-García"}
	for _, s := range invalidos {
		if IsNombreValid(s) {
			t.Errorf("IsNombreValid(%q) = true, want false", s)
		}
	}
}

func TestIsTelefonoValid(t *testing.T) {
	validos := []string{"88887777", "+506 8888-7777", "(506) 2222 3333"}
	for _, s := range validos {
		if !IsTelefonoValid(s) {
			t.Errorf("IsTelefonoValid(%q) = false, want true", s)
		}
	}

	invalidos := []string{"", "123", "8888777a", "123456789012345678901"}
	for _, s := range invalidos {
		if IsTelefonoValid(s) {
			t.Errorf("IsTelefonoValid(%q) = true, want false", s)
		}
	}
}

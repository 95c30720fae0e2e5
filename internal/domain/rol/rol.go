package rol

import "fmt"

// ===============================
// Rol de usuario
// ===============================

type Rol string

const (
	Admin   Rol = "admin"
	Barbero Rol = "barbero"
	Cliente Rol = "cliente"
)

func Parse(s string) (Rol, error) {
	switch Rol(s) {
	case Admin, Barbero, Cliente:
		return Rol(s), nil
	}
	return "", fmt.Errorf("rol desconocido: %q", s)
}

func (r Rol) String() string { return string(r) }

// Landing decide a donde va cada rol despues de iniciar sesion.
func (r Rol) Landing() string {
	switch r {
	case Admin:
		return "/reportes"
	case Barbero:
		return "/citas"
	case Cliente:
		return "/servicios/menu"
	}
	return "/"
}

func (r Rol) In(roles ...Rol) bool {
	for _, x := range roles {
		if r == x {
			return true
		}
	}
	return false
}

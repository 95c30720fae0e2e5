package validators

import "regexp"

var (
	soloLetras = regexp.MustCompile(`^[A-Za-zÁÉÍÓÚáéíóúÑñÜü\s]{2,50}$`)
	soloTel    = regexp.MustCompile(`^[0-9()+\-\s]{7,20}$`)
)

func IsNombreValid(s string) bool {
	return soloLetras.MatchString(s)
}

func IsTelefonoValid(s string) bool {
	return soloTel.MatchString(s)
}

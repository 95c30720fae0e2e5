package cita

import (
	"regexp"
	"strconv"

	"github.com/barberia-app/barberia-api/internal/httperr"
)

var horaRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// ParseHora valida "HH:MM" y lo devuelve en minutos desde medianoche.
func ParseHora(s string) (int, error) {
	m := horaRe.FindStringSubmatch(s)
	if m == nil {
		return 0, httperr.ErrBusinessMsg(httperr.CodeInvalidInput, "Hora invalida")
	}
	h, _ := strconv.Atoi(m[1])
	mi, _ := strconv.Atoi(m[2])
	if h > 23 || mi > 59 {
		return 0, httperr.ErrBusinessMsg(httperr.CodeInvalidInput, "Hora invalida")
	}
	return h*60 + mi, nil
}

// ValidarRango exige HoraFin estrictamente posterior a HoraInicio.
func ValidarRango(horaInicio, horaFin string) error {
	ini, err := ParseHora(horaInicio)
	if err != nil {
		return err
	}
	fin, err := ParseHora(horaFin)
	if err != nil {
		return err
	}
	if fin <= ini {
		return httperr.ErrBusinessMsg(httperr.CodeInvalidInput, "HoraInicio debe ser menor que HoraFin")
	}
	return nil
}

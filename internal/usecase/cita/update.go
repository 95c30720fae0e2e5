package cita

import (
	"context"
	"time"

	domain "github.com/barberia-app/barberia-api/internal/domain/cita"
	"github.com/barberia-app/barberia-api/internal/httperr"
	"github.com/barberia-app/barberia-api/internal/models"
	"github.com/barberia-app/barberia-api/internal/scope"
)

type EditarCita struct {
	repo domain.Repository
}

func NewEditarCita(repo domain.Repository) *EditarCita {
	return &EditarCita{repo: repo}
}

// Execute reescribe la cita solo si el predicado del scope la alcanza.
// "No es tuya" y "no existe" responden lo mismo: forbidden.
func (uc *EditarCita) Execute(ctx context.Context, sc scope.Scope, citaID string, in CrearCitaInput) error {

	if sc.ClienteID != "" {
		in.ClienteID = sc.ClienteID
	}
	if sc.BarberoID != "" {
		in.BarberoID = sc.BarberoID
	}

	if err := domain.ValidarRango(in.HoraInicio, in.HoraFin); err != nil {
		return err
	}

	fecha, err := time.Parse("2006-01-02", in.Fecha)
	if err != nil {
		return httperr.ErrBusinessMsg(httperr.CodeInvalidInput, "Fecha invalida")
	}

	estado := in.Estado
	if estado == "" {
		estado = "P"
	}

	c := &models.Cita{
		ClienteID:  in.ClienteID,
		BarberoID:  in.BarberoID,
		ServicioID: in.ServicioID,
		Fecha:      fecha,
		HoraInicio: in.HoraInicio,
		HoraFin:    in.HoraFin,
		Estado:     estado,
		Notas:      in.Notas,
	}

	affected, err := uc.repo.Update(ctx, citaID, sc, c)
	if err != nil {
		return err
	}
	if affected == 0 {
		return httperr.ErrBusinessMsg(httperr.CodeForbidden, "No autorizado o la cita no existe")
	}
	return nil
}

package cita

import (
	"context"

	domain "github.com/barberia-app/barberia-api/internal/domain/cita"
	"github.com/barberia-app/barberia-api/internal/httperr"
	"github.com/barberia-app/barberia-api/internal/scope"
)

type EliminarCita struct {
	repo domain.Repository
}

func NewEliminarCita(repo domain.Repository) *EliminarCita {
	return &EliminarCita{repo: repo}
}

func (uc *EliminarCita) Execute(ctx context.Context, sc scope.Scope, citaID string) error {
	affected, err := uc.repo.Delete(ctx, citaID, sc)
	if err != nil {
		return err
	}
	if affected == 0 {
		return httperr.ErrBusinessMsg(httperr.CodeForbidden, "No autorizado o la cita no existe")
	}
	return nil
}

package cita

import (
	"context"

	domain "github.com/barberia-app/barberia-api/internal/domain/cita"
	"github.com/barberia-app/barberia-api/internal/models"
	"github.com/barberia-app/barberia-api/internal/scope"
)

type ListarCitas struct {
	repo domain.Repository
}

func NewListarCitas(repo domain.Repository) *ListarCitas {
	return &ListarCitas{repo: repo}
}

func (uc *ListarCitas) Execute(ctx context.Context, sc scope.Scope) ([]models.Cita, error) {
	return uc.repo.List(ctx, sc)
}

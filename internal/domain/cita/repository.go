package cita

import (
	"context"

	"github.com/barberia-app/barberia-api/internal/models"
	"github.com/barberia-app/barberia-api/internal/scope"
)

type Repository interface {
	// List devuelve las citas visibles para el scope, ordenadas por fecha
	// descendente y hora de inicio ascendente.
	List(ctx context.Context, sc scope.Scope) ([]models.Cita, error)

	Get(ctx context.Context, citaID string, sc scope.Scope) (*models.Cita, error)

	// Create genera el CITxxx y persiste dentro de una transaccion.
	Create(ctx context.Context, c *models.Cita) error

	// Update y Delete aplican el predicado del scope junto con la clave
	// primaria y devuelven cuantas filas toco la escritura. Cero filas
	// significa "no es tuya o no existe", indistinguibles a proposito.
	Update(ctx context.Context, citaID string, sc scope.Scope, c *models.Cita) (int64, error)
	Delete(ctx context.Context, citaID string, sc scope.Scope) (int64, error)
}

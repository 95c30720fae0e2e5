package session

import (
	"context"
	"errors"
	"time"

	"github.com/barberia-app/barberia-api/internal/domain/rol"
)

// Sesion es la identidad autenticada guardada del lado del servidor.
// La cookie solo transporta un token firmado con el ID de la sesion.
type Sesion struct {
	Usuario   string  `json:"usuario"`
	UsuarioID string  `json:"usuario_id"`
	Rol       rol.Rol `json:"rol"`
	ClienteID string  `json:"cliente_id,omitempty"`
	BarberoID string  `json:"barbero_id,omitempty"`
}

const (
	// Vida de una sesion de navegador: la cookie muere al cerrar el
	// navegador, pero el payload en el servidor tambien expira.
	DefaultTTL = 24 * time.Hour

	// "Recordarme" (30 dias).
	RememberTTL = 30 * 24 * time.Hour

	CookieName = "barberia_session"
)

var ErrNotFound = errors.New("session not found")

type Store interface {
	Create(ctx context.Context, s *Sesion, ttl time.Duration) (id string, err error)
	Get(ctx context.Context, id string) (*Sesion, error)
	Delete(ctx context.Context, id string) error
}

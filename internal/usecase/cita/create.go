package cita

import (
	"context"
	"time"

	domain "github.com/barberia-app/barberia-api/internal/domain/cita"
	"github.com/barberia-app/barberia-api/internal/httperr"
	"github.com/barberia-app/barberia-api/internal/models"
	"github.com/barberia-app/barberia-api/internal/scope"
)

// ======================================================
// INPUT
// ======================================================

type CrearCitaInput struct {
	ClienteID  string
	BarberoID  string
	ServicioID string

	Fecha      string // YYYY-MM-DD
	HoraInicio string // HH:MM
	HoraFin    string // HH:MM

	Estado  string
	Notas   string
	Usuario string
}

// ======================================================
// USE CASE
// ======================================================

type CrearCita struct {
	repo domain.Repository
}

func NewCrearCita(repo domain.Repository) *CrearCita {
	return &CrearCita{repo: repo}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CrearCita) Execute(ctx context.Context, sc scope.Scope, in CrearCitaInput) (*models.Cita, error) {

	// Los IDs de identidad del payload no se confian: si el que llama es
	// cliente o barbero se pisan con los de su sesion.
	if sc.ClienteID != "" {
		in.ClienteID = sc.ClienteID
	}
	if sc.BarberoID != "" {
		in.BarberoID = sc.BarberoID
	}

	if in.ClienteID == "" || in.BarberoID == "" || in.ServicioID == "" {
		return nil, httperr.ErrBusinessMsg(httperr.CodeInvalidInput, "Cliente, barbero y servicio son requeridos")
	}

	if err := domain.ValidarRango(in.HoraInicio, in.HoraFin); err != nil {
		return nil, err
	}

	fecha, err := time.Parse("2006-01-02", in.Fecha)
	if err != nil {
		return nil, httperr.ErrBusinessMsg(httperr.CodeInvalidInput, "Fecha invalida")
	}

	estado := in.Estado
	if estado == "" {
		estado = "P"
	}

	c := &models.Cita{
		ClienteID:       in.ClienteID,
		BarberoID:       in.BarberoID,
		ServicioID:      in.ServicioID,
		Fecha:           fecha,
		HoraInicio:      in.HoraInicio,
		HoraFin:         in.HoraFin,
		Estado:          estado,
		Notas:           in.Notas,
		UsuarioRegistro: in.Usuario,
	}

	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

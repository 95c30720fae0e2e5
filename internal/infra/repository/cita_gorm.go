package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/barberia-app/barberia-api/internal/domain/cita"
	"github.com/barberia-app/barberia-api/internal/httperr"
	"github.com/barberia-app/barberia-api/internal/models"
	"github.com/barberia-app/barberia-api/internal/scope"
	"github.com/barberia-app/barberia-api/internal/seq"
)

type CitaGormRepository struct {
	db *gorm.DB
}

func NewCitaGormRepository(db *gorm.DB) *CitaGormRepository {
	return &CitaGormRepository{db: db}
}

func (r *CitaGormRepository) List(
	ctx context.Context,
	sc scope.Scope,
) ([]models.Cita, error) {

	var citas []models.Cita
	q := r.db.WithContext(ctx).
		Preload("Cliente").
		Preload("Barbero").
		Preload("Servicio")

	if err := sc.Apply(q).
		Order("fecha DESC, hora_inicio ASC").
		Find(&citas).Error; err != nil {
		return nil, err
	}
	return citas, nil
}

func (r *CitaGormRepository) Get(
	ctx context.Context,
	citaID string,
	sc scope.Scope,
) (*models.Cita, error) {

	var c models.Cita
	q := sc.Apply(r.db.WithContext(ctx).Where("cita_id = ?", citaID))
	if err := q.First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusinessMsg(httperr.CodeForbidden, "No autorizado o la cita no existe")
		}
		return nil, err
	}
	return &c, nil
}

func (r *CitaGormRepository) Create(ctx context.Context, c *models.Cita) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		id, err := seq.NextID(tx, "citas", "cita_id", "CIT", 3)
		if err != nil {
			return err
		}
		c.CitaID = id
		return tx.Create(c).Error
	})
}

// Update agrega el predicado del scope al WHERE junto con la clave primaria,
// igual que el SELECT: el que no es dueno simplemente no alcanza la fila.
func (r *CitaGormRepository) Update(
	ctx context.Context,
	citaID string,
	sc scope.Scope,
	c *models.Cita,
) (int64, error) {

	q := sc.Apply(r.db.WithContext(ctx).
		Model(&models.Cita{}).
		Where("cita_id = ?", citaID))

	res := q.Updates(map[string]interface{}{
		"cliente_id":  c.ClienteID,
		"barbero_id":  c.BarberoID,
		"servicio_id": c.ServicioID,
		"fecha":       c.Fecha,
		"hora_inicio": c.HoraInicio,
		"hora_fin":    c.HoraFin,
		"estado":      c.Estado,
		"notas":       c.Notas,
	})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *CitaGormRepository) Delete(
	ctx context.Context,
	citaID string,
	sc scope.Scope,
) (int64, error) {

	q := sc.Apply(r.db.WithContext(ctx).Where("cita_id = ?", citaID))
	res := q.Delete(&models.Cita{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// Compile-time check
var _ domain.Repository = (*CitaGormRepository)(nil)

package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/barberia-app/barberia-api/internal/domain/venta"
	"github.com/barberia-app/barberia-api/internal/httperr"
	"github.com/barberia-app/barberia-api/internal/models"
	"github.com/barberia-app/barberia-api/internal/seq"
)

type VentaGormRepository struct {
	db *gorm.DB
}

func NewVentaGormRepository(db *gorm.DB) *VentaGormRepository {
	return &VentaGormRepository{db: db}
}

// --------------------------------------------------
// Transaccion
// --------------------------------------------------

func (r *VentaGormRepository) InTx(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&VentaGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Catalogo
// --------------------------------------------------

func (r *VentaGormRepository) PrecioServicio(
	ctx context.Context,
	servicioID string,
) (float64, error) {

	var s models.Servicio
	if err := r.db.WithContext(ctx).
		Where("servicio_id = ?", servicioID).
		First(&s).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, httperr.ErrBusinessMsg(
				httperr.CodeReferenceNotFound,
				fmt.Sprintf("Servicio no existe (%s)", servicioID),
			)
		}
		return 0, err
	}
	return s.Precio, nil
}

// --------------------------------------------------
// Stock
// --------------------------------------------------

// DescontarStock toma el lock de fila y descuenta con un UPDATE condicional:
// si el stock no alcanza, la escritura no toca ninguna fila y la venta
// completa se revierte. El stock nunca queda negativo, tampoco con ventas
// concurrentes sobre el mismo producto.
func (r *VentaGormRepository) DescontarStock(
	ctx context.Context,
	productoID string,
	cantidad int,
) (float64, error) {

	var p models.Producto
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("producto_id = ?", productoID).
		First(&p).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, httperr.ErrBusinessMsg(
				httperr.CodeReferenceNotFound,
				fmt.Sprintf("Producto no existe (%s)", productoID),
			)
		}
		return 0, err
	}

	res := r.db.WithContext(ctx).
		Model(&models.Producto{}).
		Where("producto_id = ? AND stock_actual >= ?", productoID, cantidad).
		UpdateColumn("stock_actual", gorm.Expr("stock_actual - ?", cantidad))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, httperr.ErrBusinessMsg(
			httperr.CodeInsufficientStock,
			fmt.Sprintf("Stock insuficiente para el producto %s", productoID),
		)
	}

	return p.PrecioVenta, nil
}

// --------------------------------------------------
// IDs y escritura
// --------------------------------------------------

func (r *VentaGormRepository) NextVentaID(ctx context.Context) (string, error) {
	return seq.NextID(r.db.WithContext(ctx), "ventas", "venta_id", "VEN", 3)
}

func (r *VentaGormRepository) NextDetalleID(ctx context.Context) (string, error) {
	return seq.NextID(r.db.WithContext(ctx), "detalle_ventas", "detalle_id", "DET", 4)
}

func (r *VentaGormRepository) CrearVenta(ctx context.Context, v *models.Venta) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *VentaGormRepository) CrearDetalles(ctx context.Context, dets []models.DetalleVenta) error {
	return r.db.WithContext(ctx).Create(&dets).Error
}

// Compile-time check
var _ domain.Repository = (*VentaGormRepository)(nil)

package venta

import (
	"context"

	"github.com/barberia-app/barberia-api/internal/models"
)

// Linea es una linea de venta como llega del formulario: tipo, referencia
// de catalogo y cantidad sin normalizar.
type Linea struct {
	Tipo     string `json:"tipo" form:"tipo"`
	ID       string `json:"id" form:"id"`
	Cantidad int    `json:"cantidad" form:"cantidad"`
}

const (
	TipoServicio = "servicio"
	TipoProducto = "producto"
)

type Repository interface {
	// InTx ejecuta fn dentro de una transaccion; cualquier error revierte
	// todo lo hecho por el Repository que recibe fn.
	InTx(ctx context.Context, fn func(tx Repository) error) error

	// PrecioServicio devuelve el precio de catalogo vigente.
	PrecioServicio(ctx context.Context, servicioID string) (float64, error)

	// DescontarStock bloquea la fila del producto, verifica y descuenta en
	// una sola operacion condicional; devuelve el precio de venta vigente.
	// Falla con reference_not_found o insufficient_stock.
	DescontarStock(ctx context.Context, productoID string, cantidad int) (float64, error)

	NextVentaID(ctx context.Context) (string, error)
	NextDetalleID(ctx context.Context) (string, error)

	CrearVenta(ctx context.Context, v *models.Venta) error
	CrearDetalles(ctx context.Context, dets []models.DetalleVenta) error
}

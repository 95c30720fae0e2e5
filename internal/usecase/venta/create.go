package venta

import (
	"context"
	"math"
	"strings"
	"time"

	domain "github.com/barberia-app/barberia-api/internal/domain/venta"
	"github.com/barberia-app/barberia-api/internal/httperr"
	"github.com/barberia-app/barberia-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CrearVentaInput struct {
	ClienteID string
	Lineas    []domain.Linea
}

// ======================================================
// USE CASE
// ======================================================

// CrearVenta compone una venta multilinea en una sola transaccion:
// precios copiados del catalogo, descuento condicional de stock y total
// calculado en memoria antes de insertar la cabecera. Si algo falla no
// queda venta parcial, detalle huerfano ni stock descontado.
type CrearVenta struct {
	repo domain.Repository
}

// La transaccion no debe retener locks de fila indefinidamente.
const txTimeout = 10 * time.Second

func NewCrearVenta(repo domain.Repository) *CrearVenta {
	return &CrearVenta{repo: repo}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CrearVenta) Execute(ctx context.Context, in CrearVentaInput) (*models.Venta, error) {

	if in.ClienteID == "" {
		return nil, httperr.ErrBusinessMsg(httperr.CodeInvalidInput, "Cliente requerido")
	}
	if len(in.Lineas) == 0 {
		return nil, httperr.ErrBusinessMsg(httperr.CodeInvalidInput, "Debe ingresar al menos una linea")
	}

	ctx, cancel := context.WithTimeout(ctx, txTimeout)
	defer cancel()

	var venta *models.Venta

	err := uc.repo.InTx(ctx, func(tx domain.Repository) error {

		var (
			detalles []models.DetalleVenta
			total    float64
		)

		for _, l := range in.Lineas {
			tipo := strings.ToLower(strings.TrimSpace(l.Tipo))
			cant := l.Cantidad
			if cant < 1 {
				cant = 1
			}

			// Politica permisiva: lineas sin referencia o con tipo
			// desconocido se descartan, no abortan la venta.
			if l.ID == "" {
				continue
			}

			var (
				servicioID *string
				productoID *string
				precioUnit float64
			)

			switch tipo {
			case domain.TipoServicio:
				precio, err := tx.PrecioServicio(ctx, l.ID)
				if err != nil {
					return err
				}
				precioUnit = precio
				id := l.ID
				servicioID = &id

			case domain.TipoProducto:
				precio, err := tx.DescontarStock(ctx, l.ID, cant)
				if err != nil {
					return err
				}
				precioUnit = precio
				id := l.ID
				productoID = &id

			default:
				continue
			}

			subtotal := round2(float64(cant) * precioUnit)
			total += subtotal

			detalleID, err := tx.NextDetalleID(ctx)
			if err != nil {
				return err
			}

			detalles = append(detalles, models.DetalleVenta{
				DetalleID:      detalleID,
				ServicioID:     servicioID,
				ProductoID:     productoID,
				Cantidad:       cant,
				PrecioUnitario: precioUnit,
				Subtotal:       subtotal,
			})
		}

		// Una venta sin ninguna linea valida no tiene sentido: sin el
		// total provisional de antes, no hay nada que insertar.
		if len(detalles) == 0 {
			return httperr.ErrBusinessMsg(httperr.CodeInvalidInput, "Ninguna linea valida")
		}

		ventaID, err := tx.NextVentaID(ctx)
		if err != nil {
			return err
		}

		v := &models.Venta{
			VentaID:    ventaID,
			ClienteID:  in.ClienteID,
			MontoTotal: round2(total),
			FechaVenta: time.Now(),
		}

		if err := tx.CrearVenta(ctx, v); err != nil {
			return err
		}

		for i := range detalles {
			detalles[i].VentaID = ventaID
		}
		if err := tx.CrearDetalles(ctx, detalles); err != nil {
			return err
		}

		venta = v
		return nil
	})
	if err != nil {
		return nil, err
	}

	return venta, nil
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

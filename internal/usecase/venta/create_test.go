package venta

import (
	"context"
	"fmt"
	"testing"

	domain "github.com/barberia-app/barberia-api/internal/domain/venta"
	"github.com/barberia-app/barberia-api/internal/httperr"
	"github.com/barberia-app/barberia-api/internal/models"
	"github.com/barberia-app/barberia-api/internal/seq"
)

// ----------------------------------------------------------------------
// Repositorio en memoria con semantica transaccional: los cambios solo
// se publican si fn termina sin error.
// ----------------------------------------------------------------------

type fakeProducto struct {
	precio float64
	stock  int
}

type fakeVentaRepo struct {
	servicios map[string]float64
	productos map[string]*fakeProducto

	ventas   []models.Venta
	detalles []models.DetalleVenta

	nextVen int
	nextDet int
}

func newFakeVentaRepo() *fakeVentaRepo {
	return &fakeVentaRepo{
		servicios: map[string]float64{},
		productos: map[string]*fakeProducto{},
	}
}

func (f *fakeVentaRepo) clone() *fakeVentaRepo {
	c := newFakeVentaRepo()
	for k, v := range f.servicios {
		c.servicios[k] = v
	}
	for k, v := range f.productos {
		p := *v
		c.productos[k] = &p
	}
	c.ventas = append(c.ventas, f.ventas...)
	c.detalles = append(c.detalles, f.detalles...)
	c.nextVen = f.nextVen
	c.nextDet = f.nextDet
	return c
}

func (f *fakeVentaRepo) InTx(ctx context.Context, fn func(tx domain.Repository) error) error {
	tx := f.clone()
	if err := fn(tx); err != nil {
		return err
	}
	*f = *tx
	return nil
}

func (f *fakeVentaRepo) PrecioServicio(ctx context.Context, servicioID string) (float64, error) {
	precio, ok := f.servicios[servicioID]
	if !ok {
		return 0, httperr.ErrBusinessMsg(
			httperr.CodeReferenceNotFound,
			fmt.Sprintf("Servicio no existe (%s)", servicioID),
		)
	}
	return precio, nil
}

func (f *fakeVentaRepo) DescontarStock(ctx context.Context, productoID string, cantidad int) (float64, error) {
	p, ok := f.productos[productoID]
	if !ok {
		return 0, httperr.ErrBusinessMsg(
			httperr.CodeReferenceNotFound,
			fmt.Sprintf("Producto no existe (%s)", productoID),
		)
	}
	if p.stock < cantidad {
		return 0, httperr.ErrBusinessMsg(
			httperr.CodeInsufficientStock,
			fmt.Sprintf("Stock insuficiente para el producto %s", productoID),
		)
	}
	p.stock -= cantidad
	return p.precio, nil
}

func (f *fakeVentaRepo) NextVentaID(ctx context.Context) (string, error) {
	f.nextVen++
	return seq.Format("VEN", f.nextVen, 3), nil
}

func (f *fakeVentaRepo) NextDetalleID(ctx context.Context) (string, error) {
	f.nextDet++
	return seq.Format("DET", f.nextDet, 4), nil
}

func (f *fakeVentaRepo) CrearVenta(ctx context.Context, v *models.Venta) error {
	f.ventas = append(f.ventas, *v)
	return nil
}

func (f *fakeVentaRepo) CrearDetalles(ctx context.Context, dets []models.DetalleVenta) error {
	f.detalles = append(f.detalles, dets...)
	return nil
}

var _ domain.Repository = (*fakeVentaRepo)(nil)

// ----------------------------------------------------------------------
// Tests
// ----------------------------------------------------------------------

func TestCrearVentaClienteRequerido(t *testing.T) {
	uc := NewCrearVenta(newFakeVentaRepo())

	_, err := uc.Execute(context.Background(), CrearVentaInput{
		Lineas: []domain.Linea{{Tipo: "servicio", ID: "SER001", Cantidad: 1}},
	})

	if !httperr.IsBusiness(err, httperr.CodeInvalidInput) {
		t.Fatalf("expected invalid_input, got %v", err)
	}
}

func TestCrearVentaSinLineas(t *testing.T) {
	uc := NewCrearVenta(newFakeVentaRepo())

	_, err := uc.Execute(context.Background(), CrearVentaInput{ClienteID: "CLI001"})

	if !httperr.IsBusiness(err, httperr.CodeInvalidInput) {
		t.Fatalf("expected invalid_input, got %v", err)
	}
}

func TestCrearVentaServicio(t *testing.T) {
	repo := newFakeVentaRepo()
	repo.servicios["SER002"] = 150.00

	uc := NewCrearVenta(repo)

	venta, err := uc.Execute(context.Background(), CrearVentaInput{
		ClienteID: "CLI001",
		Lineas:    []domain.Linea{{Tipo: "servicio", ID: "SER002", Cantidad: 2}},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if venta.MontoTotal != 300.00 {
		t.Errorf("MontoTotal = %v, want 300.00", venta.MontoTotal)
	}
	if len(repo.detalles) != 1 {
		t.Fatalf("detalles = %d, want 1", len(repo.detalles))
	}

	det := repo.detalles[0]
	if det.Subtotal != 300.00 {
		t.Errorf("Subtotal = %v, want 300.00", det.Subtotal)
	}
	if det.PrecioUnitario != 150.00 {
		t.Errorf("PrecioUnitario = %v, want 150.00", det.PrecioUnitario)
	}
	if det.ServicioID == nil || *det.ServicioID != "SER002" {
		t.Errorf("ServicioID = %v, want SER002", det.ServicioID)
	}
	if det.ProductoID != nil {
		t.Errorf("ProductoID = %v, want nil", det.ProductoID)
	}
	if det.VentaID != venta.VentaID {
		t.Errorf("VentaID = %q, want %q", det.VentaID, venta.VentaID)
	}
}

func TestCrearVentaStockInsuficiente(t *testing.T) {
	repo := newFakeVentaRepo()
	repo.productos["PRD001"] = &fakeProducto{precio: 25.00, stock: 3}

	uc := NewCrearVenta(repo)

	_, err := uc.Execute(context.Background(), CrearVentaInput{
		ClienteID: "CLI001",
		Lineas:    []domain.Linea{{Tipo: "producto", ID: "PRD001", Cantidad: 5}},
	})

	if !httperr.IsBusiness(err, httperr.CodeInsufficientStock) {
		t.Fatalf("expected insufficient_stock, got %v", err)
	}

	// Rollback completo: sin venta, sin detalles y el stock intacto.
	if len(repo.ventas) != 0 {
		t.Errorf("ventas persistidas = %d, want 0", len(repo.ventas))
	}
	if len(repo.detalles) != 0 {
		t.Errorf("detalles persistidos = %d, want 0", len(repo.detalles))
	}
	if got := repo.productos["PRD001"].stock; got != 3 {
		t.Errorf("stock = %d, want 3", got)
	}
}

func TestCrearVentaRollbackParcial(t *testing.T) {
	// La primera linea descuenta stock, la segunda falla: nada queda.
	repo := newFakeVentaRepo()
	repo.productos["PRD001"] = &fakeProducto{precio: 10.00, stock: 10}
	repo.productos["PRD002"] = &fakeProducto{precio: 5.00, stock: 1}

	uc := NewCrearVenta(repo)

	_, err := uc.Execute(context.Background(), CrearVentaInput{
		ClienteID: "CLI001",
		Lineas: []domain.Linea{
			{Tipo: "producto", ID: "PRD001", Cantidad: 2},
			{Tipo: "producto", ID: "PRD002", Cantidad: 3},
		},
	})

	if !httperr.IsBusiness(err, httperr.CodeInsufficientStock) {
		t.Fatalf("expected insufficient_stock, got %v", err)
	}
	if got := repo.productos["PRD001"].stock; got != 10 {
		t.Errorf("stock PRD001 = %d, want 10 tras rollback", got)
	}
	if len(repo.ventas) != 0 || len(repo.detalles) != 0 {
		t.Errorf("venta parcial persistida: ventas=%d detalles=%d", len(repo.ventas), len(repo.detalles))
	}
}

func TestCrearVentaServicioInexistente(t *testing.T) {
	uc := NewCrearVenta(newFakeVentaRepo())

	_, err := uc.Execute(context.Background(), CrearVentaInput{
		ClienteID: "CLI001",
		Lineas:    []domain.Linea{{Tipo: "servicio", ID: "SER999", Cantidad: 1}},
	})

	if !httperr.IsBusiness(err, httperr.CodeReferenceNotFound) {
		t.Fatalf("expected reference_not_found, got %v", err)
	}
}

func TestCrearVentaLineasInvalidasSeDescartan(t *testing.T) {
	repo := newFakeVentaRepo()
	repo.servicios["SER001"] = 80.00

	uc := NewCrearVenta(repo)

	venta, err := uc.Execute(context.Background(), CrearVentaInput{
		ClienteID: "CLI001",
		Lineas: []domain.Linea{
			{Tipo: "membresia", ID: "MEM001", Cantidad: 1}, // tipo desconocido
			{Tipo: "servicio", ID: "", Cantidad: 1},        // sin referencia
			{Tipo: "Servicio", ID: "SER001", Cantidad: 0},  // valida: tipo case-insensitive, cantidad 0 -> 1
		},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if len(repo.detalles) != 1 {
		t.Fatalf("detalles = %d, want 1", len(repo.detalles))
	}
	if repo.detalles[0].Cantidad != 1 {
		t.Errorf("Cantidad = %d, want 1", repo.detalles[0].Cantidad)
	}
	if venta.MontoTotal != 80.00 {
		t.Errorf("MontoTotal = %v, want 80.00", venta.MontoTotal)
	}
}

func TestCrearVentaTodasLasLineasDescartadas(t *testing.T) {
	repo := newFakeVentaRepo()
	uc := NewCrearVenta(repo)

	_, err := uc.Execute(context.Background(), CrearVentaInput{
		ClienteID: "CLI001",
		Lineas: []domain.Linea{
			{Tipo: "otro", ID: "X", Cantidad: 1},
			{Tipo: "servicio", ID: "", Cantidad: 1},
		},
	})

	if !httperr.IsBusiness(err, httperr.CodeInvalidInput) {
		t.Fatalf("expected invalid_input, got %v", err)
	}
	if len(repo.ventas) != 0 {
		t.Errorf("ventas persistidas = %d, want 0", len(repo.ventas))
	}
}

func TestCrearVentaMixtaSumaYStock(t *testing.T) {
	repo := newFakeVentaRepo()
	repo.servicios["SER002"] = 150.00
	repo.productos["PRD001"] = &fakeProducto{precio: 33.33, stock: 10}

	uc := NewCrearVenta(repo)

	venta, err := uc.Execute(context.Background(), CrearVentaInput{
		ClienteID: "CLI007",
		Lineas: []domain.Linea{
			{Tipo: "servicio", ID: "SER002", Cantidad: 2},
			{Tipo: "producto", ID: "PRD001", Cantidad: 3},
		},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	// 2*150.00 + 3*33.33 = 399.99
	if venta.MontoTotal != 399.99 {
		t.Errorf("MontoTotal = %v, want 399.99", venta.MontoTotal)
	}
	if got := repo.productos["PRD001"].stock; got != 7 {
		t.Errorf("stock = %d, want 7", got)
	}

	var suma float64
	for _, d := range repo.detalles {
		suma += d.Subtotal
	}
	if suma != venta.MontoTotal {
		t.Errorf("sum(Subtotal) = %v != MontoTotal = %v", suma, venta.MontoTotal)
	}
}

func TestCrearVentaIDsGenerados(t *testing.T) {
	repo := newFakeVentaRepo()
	repo.servicios["SER001"] = 10.00

	uc := NewCrearVenta(repo)

	venta, err := uc.Execute(context.Background(), CrearVentaInput{
		ClienteID: "CLI001",
		Lineas:    []domain.Linea{{Tipo: "servicio", ID: "SER001", Cantidad: 1}},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if venta.VentaID != "VEN001" {
		t.Errorf("VentaID = %q, want VEN001", venta.VentaID)
	}
	if repo.detalles[0].DetalleID != "DET0001" {
		t.Errorf("DetalleID = %q, want DET0001", repo.detalles[0].DetalleID)
	}
}

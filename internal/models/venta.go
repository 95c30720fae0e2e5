package models

import "time"

// MontoTotal es derivado: la cabecera se inserta una sola vez con la suma
// final de los subtotales, nunca con un total provisional.
type Venta struct {
	VentaID string `gorm:"primaryKey;size:10" json:"venta_id"`

	ClienteID string  `gorm:"size:15;index" json:"cliente_id"`
	Cliente   Cliente `gorm:"foreignKey:ClienteID" json:"cliente"`

	MontoTotal float64   `gorm:"type:decimal(10,2)" json:"monto_total"`
	FechaVenta time.Time `json:"fecha_venta"`
}

// DetalleVenta referencia un servicio o un producto, nunca ambos
// (ServicioID XOR ProductoID no nulo).
type DetalleVenta struct {
	DetalleID string `gorm:"primaryKey;size:10" json:"detalle_id"`

	VentaID string `gorm:"size:10;index" json:"venta_id"`

	ServicioID *string `gorm:"size:10" json:"servicio_id"`
	ProductoID *string `gorm:"size:10" json:"producto_id"`

	Cantidad       int     `json:"cantidad"`
	PrecioUnitario float64 `gorm:"type:decimal(10,2)" json:"precio_unitario"`
	Subtotal       float64 `gorm:"type:decimal(10,2)" json:"subtotal"`
}

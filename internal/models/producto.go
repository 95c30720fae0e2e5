package models

import "time"

// StockActual se descuenta unicamente dentro de la transaccion de venta,
// con el UPDATE condicional de internal/infra/repository.
type Producto struct {
	ProductoID string `gorm:"primaryKey;size:10" json:"producto_id"`

	Nombre      string  `gorm:"size:50;not null" json:"nombre"`
	Marca       string  `gorm:"size:30" json:"marca"`
	Descripcion string  `gorm:"size:100" json:"descripcion"`
	PrecioVenta float64 `gorm:"type:decimal(10,2)" json:"precio_venta"`
	Costo       float64 `gorm:"type:decimal(10,2)" json:"costo"`

	StockActual int `json:"stock_actual"`
	StockMinimo int `json:"stock_minimo"`

	FechaEntrada *time.Time `json:"fecha_entrada"`
	FechaSalida  *time.Time `json:"fecha_salida"`
	Imagen       string     `gorm:"size:255" json:"imagen"`
}

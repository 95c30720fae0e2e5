package models

import "time"

type Pago struct {
	PagoID string `gorm:"primaryKey;size:10" json:"pago_id"`

	VentaID string `gorm:"size:10;index" json:"venta_id"`
	Venta   Venta  `gorm:"foreignKey:VentaID" json:"venta"`

	Monto      float64   `gorm:"type:decimal(10,2)" json:"monto"`
	MetodoPago string    `gorm:"size:30" json:"metodo_pago"`
	FechaPago  time.Time `gorm:"type:date" json:"fecha_pago"`
}

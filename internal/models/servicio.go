package models

type Servicio struct {
	ServicioID string `gorm:"primaryKey;size:10" json:"servicio_id"`

	Nombre          string  `gorm:"size:50;not null" json:"nombre"`
	Descripcion     string  `gorm:"size:200" json:"descripcion"`
	Precio          float64 `gorm:"type:decimal(10,2)" json:"precio"`
	DuracionMinutos int     `json:"duracion_minutos"`
	Imagen          string  `gorm:"size:255" json:"imagen"`
}

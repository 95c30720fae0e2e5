package models

import "time"

type Cita struct {
	CitaID string `gorm:"primaryKey;size:10" json:"cita_id"`

	ClienteID string  `gorm:"size:15;index" json:"cliente_id"`
	Cliente   Cliente `gorm:"foreignKey:ClienteID" json:"cliente"`

	BarberoID string  `gorm:"size:15;index" json:"barbero_id"`
	Barbero   Barbero `gorm:"foreignKey:BarberoID" json:"barbero"`

	ServicioID string   `gorm:"size:10" json:"servicio_id"`
	Servicio   Servicio `gorm:"foreignKey:ServicioID" json:"servicio"`

	Fecha      time.Time `gorm:"type:date" json:"fecha"`
	HoraInicio string    `gorm:"size:5" json:"hora_inicio"`
	HoraFin    string    `gorm:"size:5" json:"hora_fin"`

	Estado          string `gorm:"size:1;default:'P'" json:"estado"`
	Notas           string `gorm:"size:200" json:"notas"`
	UsuarioRegistro string `gorm:"size:50" json:"usuario_registro"`
}

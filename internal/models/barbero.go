package models

import "time"

type Barbero struct {
	BarberoID string `gorm:"primaryKey;size:15" json:"barbero_id"`

	Nombre            string     `gorm:"size:50;not null" json:"nombre"`
	Apellido1         string     `gorm:"size:30;not null" json:"apellido1"`
	Apellido2         string     `gorm:"size:30" json:"apellido2"`
	Telefono          string     `gorm:"size:20" json:"telefono"`
	CorreoElectronico string     `gorm:"size:320" json:"correo_electronico"`
	FechaNacimiento   *time.Time `json:"fecha_nacimiento"`

	FechaContratacion time.Time `json:"fecha_contratacion"`
	Estado            string    `gorm:"size:1;default:'A'" json:"estado"`
	UsuarioRegistro   string    `gorm:"size:50;index" json:"usuario_registro"`
}

package models

import "time"

type Usuario struct {
	UsuarioID     string `gorm:"primaryKey;size:10" json:"usuario_id"`
	NombreUsuario string `gorm:"size:30;uniqueIndex;not null" json:"nombre_usuario"`
	Contrasena    string `gorm:"size:128;not null" json:"-"`
	Rol           string `gorm:"size:20;not null" json:"rol"`
	Correo        string `gorm:"size:320" json:"correo"`

	FechaCreacion time.Time  `json:"fecha_creacion"`
	UltimoAcceso  *time.Time `json:"ultimo_acceso"`
}

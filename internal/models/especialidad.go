package models

type Especialidad struct {
	EspecialidadID string `gorm:"primaryKey;size:10" json:"especialidad_id"`

	Nombre      string `gorm:"size:50;not null" json:"nombre"`
	Descripcion string `gorm:"size:200" json:"descripcion"`

	BarberoID string `gorm:"size:15;index" json:"barbero_id"`
}

func (Especialidad) TableName() string { return "especialidades" }

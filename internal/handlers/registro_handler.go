package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/barberia-app/barberia-api/internal/httperr"
	"github.com/barberia-app/barberia-api/internal/httpresp"
	"github.com/barberia-app/barberia-api/internal/models"
	"github.com/barberia-app/barberia-api/internal/seq"
	"github.com/barberia-app/barberia-api/internal/validators"
)

type RegistroHandler struct {
	db *gorm.DB
}

func NewRegistroHandler(db *gorm.DB) *RegistroHandler {
	return &RegistroHandler{db: db}
}

type RegistroRequest struct {
	NombreUsuario string `json:"nombreUsuario" form:"nombreUsuario" binding:"required"`
	Correo        string `json:"correo" form:"correo" binding:"required"`
	Contrasena    string `json:"contrasena" form:"contrasena" binding:"required,min=6"`
	Rol           string `json:"rol" form:"rol" binding:"required,oneof=cliente barbero admin"`

	Nombre          string `json:"nombre" form:"nombre"`
	Apellido1       string `json:"apellido1" form:"apellido1"`
	Apellido2       string `json:"apellido2" form:"apellido2"`
	Telefono        string `json:"telefono" form:"telefono"`
	FechaNacimiento string `json:"fechaNacimiento" form:"fechaNacimiento"` // YYYY-MM-DD
	Direccion       string `json:"direccion" form:"direccion"`
}

func (h *RegistroHandler) Registrar(c *gin.Context) {
	var req RegistroRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidInput, err.Error())
		return
	}

	if req.Rol == "cliente" || req.Rol == "barbero" {
		if !validators.IsNombreValid(req.Nombre) {
			httperr.BadRequest(c, httperr.CodeInvalidInput, "Nombre invalido (solo letras y espacios)")
			return
		}
		if !validators.IsNombreValid(req.Apellido1) {
			httperr.BadRequest(c, httperr.CodeInvalidInput, "Primer apellido invalido")
			return
		}
		if req.Apellido2 != "" && !validators.IsNombreValid(req.Apellido2) {
			httperr.BadRequest(c, httperr.CodeInvalidInput, "Segundo apellido invalido")
			return
		}
		if req.Telefono != "" && !validators.IsTelefonoValid(req.Telefono) {
			httperr.BadRequest(c, httperr.CodeInvalidInput, "Telefono invalido")
			return
		}
	}

	if !validators.IsEmailDomainValid(req.Correo) {
		httperr.BadRequest(c, httperr.CodeInvalidInput, "Correo invalido o con dominio inexistente")
		return
	}

	var fechaNacimiento *time.Time
	if req.FechaNacimiento != "" {
		f, err := time.Parse("2006-01-02", req.FechaNacimiento)
		if err != nil {
			httperr.BadRequest(c, httperr.CodeInvalidInput, "Fecha de nacimiento invalida")
			return
		}
		fechaNacimiento = &f
	}

	nombreUsuario := strings.TrimSpace(req.NombreUsuario)
	hoy := time.Now()

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Contrasena), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, err)
		return
	}

	err = h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {

		var count int64
		if err := tx.Model(&models.Usuario{}).
			Where("nombre_usuario = ?", nombreUsuario).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return httperr.ErrBusinessMsg(httperr.CodeDuplicateUser, "El nombre de usuario ya existe")
		}

		switch req.Rol {
		case "cliente":
			clienteID, err := seq.NextID(tx, "clientes", "cliente_id", "CLI", 3)
			if err != nil {
				return err
			}
			if err := tx.Create(&models.Cliente{
				ClienteID:         clienteID,
				Nombre:            req.Nombre,
				Apellido1:         req.Apellido1,
				Apellido2:         req.Apellido2,
				Telefono:          req.Telefono,
				CorreoElectronico: req.Correo,
				FechaNacimiento:   fechaNacimiento,
				Direccion:         req.Direccion,
				FechaRegistro:     hoy,
				Estado:            "A",
				UsuarioRegistro:   nombreUsuario,
			}).Error; err != nil {
				return err
			}

		case "barbero":
			barberoID, err := seq.NextID(tx, "barberos", "barbero_id", "BAR", 3)
			if err != nil {
				return err
			}
			if err := tx.Create(&models.Barbero{
				BarberoID:         barberoID,
				Nombre:            req.Nombre,
				Apellido1:         req.Apellido1,
				Apellido2:         req.Apellido2,
				Telefono:          req.Telefono,
				CorreoElectronico: req.Correo,
				FechaNacimiento:   fechaNacimiento,
				FechaContratacion: hoy,
				Estado:            "A",
				UsuarioRegistro:   nombreUsuario,
			}).Error; err != nil {
				return err
			}
		}

		usuarioID, err := seq.NextID(tx, "usuarios", "usuario_id", "USU", 3)
		if err != nil {
			return err
		}

		return tx.Create(&models.Usuario{
			UsuarioID:     usuarioID,
			NombreUsuario: nombreUsuario,
			Contrasena:    string(hashed),
			Rol:           req.Rol,
			Correo:        req.Correo,
			FechaCreacion: hoy,
		}).Error
	})
	if err != nil {
		// La carrera que el COUNT no ve la corta el indice unico.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			err = httperr.ErrBusinessMsg(httperr.CodeDuplicateUser, "El nombre de usuario ya existe")
		}
		respondError(c, err)
		return
	}

	httpresp.Created(c, gin.H{"message": "Usuario registrado correctamente. Ya puedes iniciar sesion."})
}

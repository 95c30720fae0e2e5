package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberia-app/barberia-api/internal/httperr"
	"github.com/barberia-app/barberia-api/internal/httpresp"
	"github.com/barberia-app/barberia-api/internal/models"
	"github.com/barberia-app/barberia-api/internal/seq"
)

type BarberoHandler struct {
	db *gorm.DB
}

func NewBarberoHandler(db *gorm.DB) *BarberoHandler {
	return &BarberoHandler{db: db}
}

type BarberoRequest struct {
	Nombre            string `json:"Nombre" form:"Nombre" binding:"required"`
	Apellido1         string `json:"Apellido1" form:"Apellido1" binding:"required"`
	Apellido2         string `json:"Apellido2" form:"Apellido2"`
	Telefono          string `json:"Telefono" form:"Telefono"`
	CorreoElectronico string `json:"CorreoElectronico" form:"CorreoElectronico"`
	Estado            string `json:"Estado" form:"Estado"`
}

func (h *BarberoHandler) List(c *gin.Context) {
	var barberos []models.Barbero
	if err := h.db.WithContext(c.Request.Context()).
		Order("nombre ASC, apellido1 ASC").
		Find(&barberos).Error; err != nil {
		respondError(c, err)
		return
	}
	httpresp.List(c, barberos)
}

func (h *BarberoHandler) Agregar(c *gin.Context) {
	var req BarberoRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidInput, err.Error())
		return
	}

	err := h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		id, err := seq.NextID(tx, "barberos", "barbero_id", "BAR", 3)
		if err != nil {
			return err
		}
		return tx.Create(&models.Barbero{
			BarberoID:         id,
			Nombre:            req.Nombre,
			Apellido1:         req.Apellido1,
			Apellido2:         req.Apellido2,
			Telefono:          req.Telefono,
			CorreoElectronico: req.CorreoElectronico,
			FechaContratacion: time.Now(),
			Estado:            "A",
		}).Error
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/barberos")
}

func (h *BarberoHandler) Editar(c *gin.Context) {
	var req BarberoRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidInput, err.Error())
		return
	}

	campos := map[string]interface{}{
		"nombre":             req.Nombre,
		"apellido1":          req.Apellido1,
		"apellido2":          req.Apellido2,
		"telefono":           req.Telefono,
		"correo_electronico": req.CorreoElectronico,
	}
	if req.Estado != "" {
		campos["estado"] = req.Estado
	}

	res := h.db.WithContext(c.Request.Context()).
		Model(&models.Barbero{}).
		Where("barbero_id = ?", c.Param("id")).
		Updates(campos)
	if res.Error != nil {
		respondError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, httperr.CodeReferenceNotFound, "Barbero no existe")
		return
	}

	c.Redirect(http.StatusSeeOther, "/barberos")
}

func (h *BarberoHandler) Eliminar(c *gin.Context) {
	res := h.db.WithContext(c.Request.Context()).
		Where("barbero_id = ?", c.Param("id")).
		Delete(&models.Barbero{})
	if res.Error != nil {
		respondError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, httperr.CodeReferenceNotFound, "Barbero no existe")
		return
	}

	c.Redirect(http.StatusSeeOther, "/barberos")
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberia-app/barberia-api/internal/httperr"
	"github.com/barberia-app/barberia-api/internal/httpresp"
	"github.com/barberia-app/barberia-api/internal/models"
	"github.com/barberia-app/barberia-api/internal/seq"
)

type EspecialidadHandler struct {
	db *gorm.DB
}

func NewEspecialidadHandler(db *gorm.DB) *EspecialidadHandler {
	return &EspecialidadHandler{db: db}
}

type EspecialidadRequest struct {
	Nombre      string `json:"Nombre" form:"Nombre" binding:"required"`
	Descripcion string `json:"Descripcion" form:"Descripcion"`
	BarberoID   string `json:"BarberoID" form:"BarberoID"`
}

func (h *EspecialidadHandler) List(c *gin.Context) {
	var especialidades []models.Especialidad
	if err := h.db.WithContext(c.Request.Context()).
		Order("nombre ASC").
		Find(&especialidades).Error; err != nil {
		respondError(c, err)
		return
	}
	httpresp.List(c, especialidades)
}

func (h *EspecialidadHandler) Agregar(c *gin.Context) {
	var req EspecialidadRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidInput, err.Error())
		return
	}

	err := h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		id, err := seq.NextID(tx, "especialidades", "especialidad_id", "ESP", 3)
		if err != nil {
			return err
		}
		return tx.Create(&models.Especialidad{
			EspecialidadID: id,
			Nombre:         req.Nombre,
			Descripcion:    req.Descripcion,
			BarberoID:      req.BarberoID,
		}).Error
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/especialidades")
}

func (h *EspecialidadHandler) Eliminar(c *gin.Context) {
	res := h.db.WithContext(c.Request.Context()).
		Where("especialidad_id = ?", c.Param("id")).
		Delete(&models.Especialidad{})
	if res.Error != nil {
		respondError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, httperr.CodeReferenceNotFound, "Especialidad no existe")
		return
	}

	c.Redirect(http.StatusSeeOther, "/especialidades")
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberia-app/barberia-api/internal/httperr"
	"github.com/barberia-app/barberia-api/internal/httpresp"
	"github.com/barberia-app/barberia-api/internal/models"
	"github.com/barberia-app/barberia-api/internal/seq"
	"github.com/barberia-app/barberia-api/internal/storage"
)

type ServicioHandler struct {
	db       *gorm.DB
	uploader *storage.Uploader
}

func NewServicioHandler(db *gorm.DB, uploader *storage.Uploader) *ServicioHandler {
	return &ServicioHandler{db: db, uploader: uploader}
}

type ServicioRequest struct {
	Nombre          string  `json:"Nombre" form:"Nombre" binding:"required"`
	Descripcion     string  `json:"Descripcion" form:"Descripcion"`
	Precio          float64 `json:"Precio" form:"Precio"`
	DuracionMinutos int     `json:"DuracionMinutos" form:"DuracionMinutos"`
}

func (h *ServicioHandler) listado(c *gin.Context) ([]models.Servicio, error) {
	var servicios []models.Servicio
	err := h.db.WithContext(c.Request.Context()).
		Order("nombre ASC").
		Find(&servicios).Error
	return servicios, err
}

// Menu y API son el catalogo publico: nunca exigen sesion y no se cachean.
func (h *ServicioHandler) Menu(c *gin.Context) {
	servicios, err := h.listado(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Cache-Control", "no-store")
	httpresp.List(c, servicios)
}

func (h *ServicioHandler) API(c *gin.Context) {
	servicios, err := h.listado(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Cache-Control", "no-store")
	httpresp.OK(c, servicios)
}

func (h *ServicioHandler) List(c *gin.Context) {
	servicios, err := h.listado(c)
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.List(c, servicios)
}

func (h *ServicioHandler) imagenSubida(c *gin.Context) (string, error) {
	fh, err := c.FormFile("Imagen")
	if err != nil {
		return "", nil // sin imagen
	}
	return h.uploader.SubirImagen(c.Request.Context(), fh, "servicios")
}

func (h *ServicioHandler) Agregar(c *gin.Context) {
	var req ServicioRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidInput, err.Error())
		return
	}

	imagen, err := h.imagenSubida(c)
	if err != nil {
		respondError(c, err)
		return
	}

	err = h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		id, err := seq.NextID(tx, "servicios", "servicio_id", "SER", 3)
		if err != nil {
			return err
		}
		return tx.Create(&models.Servicio{
			ServicioID:      id,
			Nombre:          req.Nombre,
			Descripcion:     req.Descripcion,
			Precio:          req.Precio,
			DuracionMinutos: req.DuracionMinutos,
			Imagen:          imagen,
		}).Error
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/servicios")
}

func (h *ServicioHandler) Editar(c *gin.Context) {
	var req ServicioRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidInput, err.Error())
		return
	}

	campos := map[string]interface{}{
		"nombre":           req.Nombre,
		"descripcion":      req.Descripcion,
		"precio":           req.Precio,
		"duracion_minutos": req.DuracionMinutos,
	}

	imagen, err := h.imagenSubida(c)
	if err != nil {
		respondError(c, err)
		return
	}
	if imagen != "" {
		campos["imagen"] = imagen
	}

	res := h.db.WithContext(c.Request.Context()).
		Model(&models.Servicio{}).
		Where("servicio_id = ?", c.Param("id")).
		Updates(campos)
	if res.Error != nil {
		respondError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, httperr.CodeReferenceNotFound, "Servicio no existe")
		return
	}

	c.Redirect(http.StatusSeeOther, "/servicios")
}

func (h *ServicioHandler) Eliminar(c *gin.Context) {
	res := h.db.WithContext(c.Request.Context()).
		Where("servicio_id = ?", c.Param("id")).
		Delete(&models.Servicio{})
	if res.Error != nil {
		respondError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, httperr.CodeReferenceNotFound, "Servicio no existe")
		return
	}

	c.Redirect(http.StatusSeeOther, "/servicios")
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domainVenta "github.com/barberia-app/barberia-api/internal/domain/venta"
	"github.com/barberia-app/barberia-api/internal/httperr"
	"github.com/barberia-app/barberia-api/internal/httpresp"
	"github.com/barberia-app/barberia-api/internal/models"
	ucVenta "github.com/barberia-app/barberia-api/internal/usecase/venta"
)

type VentaHandler struct {
	db      *gorm.DB
	crearUC *ucVenta.CrearVenta
}

func NewVentaHandler(db *gorm.DB, crearUC *ucVenta.CrearVenta) *VentaHandler {
	return &VentaHandler{db: db, crearUC: crearUC}
}

type NuevaVentaRequest struct {
	ClienteID string              `json:"ClienteID" form:"ClienteID"`
	Lineas    []domainVenta.Linea `json:"lineas"`
}

func (h *VentaHandler) List(c *gin.Context) {
	var ventas []models.Venta
	if err := h.db.WithContext(c.Request.Context()).
		Preload("Cliente").
		Order("fecha_venta DESC, venta_id DESC").
		Find(&ventas).Error; err != nil {
		respondError(c, err)
		return
	}
	httpresp.List(c, ventas)
}

func (h *VentaHandler) Detalle(c *gin.Context) {
	id := c.Param("id")

	var venta models.Venta
	if err := h.db.WithContext(c.Request.Context()).
		Preload("Cliente").
		Where("venta_id = ?", id).
		First(&venta).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "venta_not_found", "Venta no encontrada")
			return
		}
		respondError(c, err)
		return
	}

	var detalles []models.DetalleVenta
	if err := h.db.WithContext(c.Request.Context()).
		Where("venta_id = ?", id).
		Order("detalle_id ASC").
		Find(&detalles).Error; err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"venta":   venta,
		"detalle": detalles,
	})
}

// Nueva crea la venta completa en una transaccion y redirige al listado.
// Los fallos de regla de negocio vuelven como 400 con mensaje legible.
func (h *VentaHandler) Nueva(c *gin.Context) {
	var req NuevaVentaRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidInput, err.Error())
		return
	}

	_, err := h.crearUC.Execute(c.Request.Context(), ucVenta.CrearVentaInput{
		ClienteID: req.ClienteID,
		Lineas:    req.Lineas,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/ventas")
}

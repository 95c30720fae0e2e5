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

type PagoHandler struct {
	db *gorm.DB
}

func NewPagoHandler(db *gorm.DB) *PagoHandler {
	return &PagoHandler{db: db}
}

type NuevoPagoRequest struct {
	VentaID    string  `json:"VentaID" form:"VentaID" binding:"required"`
	Monto      float64 `json:"Monto" form:"Monto" binding:"required,gt=0"`
	MetodoPago string  `json:"MetodoPago" form:"MetodoPago" binding:"required"`
	FechaPago  string  `json:"FechaPago" form:"FechaPago"`
}

func (h *PagoHandler) List(c *gin.Context) {
	var pagos []models.Pago
	if err := h.db.WithContext(c.Request.Context()).
		Preload("Venta").
		Preload("Venta.Cliente").
		Order("fecha_pago DESC").
		Find(&pagos).Error; err != nil {
		respondError(c, err)
		return
	}
	httpresp.List(c, pagos)
}

func (h *PagoHandler) Nuevo(c *gin.Context) {
	var req NuevoPagoRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidInput, err.Error())
		return
	}

	fechaPago := time.Now()
	if req.FechaPago != "" {
		f, err := time.Parse("2006-01-02", req.FechaPago)
		if err != nil {
			httperr.BadRequest(c, httperr.CodeInvalidInput, "Fecha de pago invalida")
			return
		}
		fechaPago = f
	}

	err := h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		var venta models.Venta
		if err := tx.Where("venta_id = ?", req.VentaID).First(&venta).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return httperr.ErrBusinessMsg(httperr.CodeReferenceNotFound, "Venta no existe")
			}
			return err
		}

		pagoID, err := seq.NextID(tx, "pagos", "pago_id", "PAG", 3)
		if err != nil {
			return err
		}

		return tx.Create(&models.Pago{
			PagoID:     pagoID,
			VentaID:    req.VentaID,
			Monto:      req.Monto,
			MetodoPago: req.MetodoPago,
			FechaPago:  fechaPago,
		}).Error
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/pagos")
}

// PorVenta lista los pagos de una venta con el total pagado y el saldo.
func (h *PagoHandler) PorVenta(c *gin.Context) {
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

	var pagos []models.Pago
	if err := h.db.WithContext(c.Request.Context()).
		Where("venta_id = ?", id).
		Order("fecha_pago DESC").
		Find(&pagos).Error; err != nil {
		respondError(c, err)
		return
	}

	var totalPagado float64
	for _, p := range pagos {
		totalPagado += p.Monto
	}

	c.JSON(http.StatusOK, gin.H{
		"venta":       venta,
		"pagos":       pagos,
		"totalPagado": totalPagado,
		"saldo":       venta.MontoTotal - totalPagado,
	})
}

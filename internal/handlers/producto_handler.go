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
	"github.com/barberia-app/barberia-api/internal/storage"
)

type ProductoHandler struct {
	db       *gorm.DB
	uploader *storage.Uploader
}

func NewProductoHandler(db *gorm.DB, uploader *storage.Uploader) *ProductoHandler {
	return &ProductoHandler{db: db, uploader: uploader}
}

type ProductoRequest struct {
	Nombre       string  `json:"Nombre" form:"Nombre" binding:"required"`
	Marca        string  `json:"Marca" form:"Marca"`
	Descripcion  string  `json:"Descripcion" form:"Descripcion"`
	PrecioVenta  float64 `json:"PrecioVenta" form:"PrecioVenta"`
	Costo        float64 `json:"Costo" form:"Costo"`
	StockActual  int     `json:"StockActual" form:"StockActual"`
	StockMinimo  int     `json:"StockMinimo" form:"StockMinimo"`
	FechaEntrada string  `json:"FechaEntrada" form:"FechaEntrada"`
	FechaSalida  string  `json:"FechaSalida" form:"FechaSalida"`
}

func parseFechaOpcional(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	f, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, httperr.ErrBusinessMsg(httperr.CodeInvalidInput, "Fecha invalida")
	}
	return &f, nil
}

func (h *ProductoHandler) listado(c *gin.Context) ([]models.Producto, error) {
	var productos []models.Producto
	err := h.db.WithContext(c.Request.Context()).
		Order("nombre ASC").
		Find(&productos).Error
	return productos, err
}

func (h *ProductoHandler) Menu(c *gin.Context) {
	productos, err := h.listado(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Cache-Control", "no-store")
	httpresp.List(c, productos)
}

func (h *ProductoHandler) API(c *gin.Context) {
	productos, err := h.listado(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Cache-Control", "no-store")
	httpresp.OK(c, productos)
}

func (h *ProductoHandler) List(c *gin.Context) {
	productos, err := h.listado(c)
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.List(c, productos)
}

func (h *ProductoHandler) imagenSubida(c *gin.Context) (string, error) {
	fh, err := c.FormFile("Imagen")
	if err != nil {
		return "", nil
	}
	return h.uploader.SubirImagen(c.Request.Context(), fh, "productos")
}

func (h *ProductoHandler) Nuevo(c *gin.Context) {
	var req ProductoRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidInput, err.Error())
		return
	}

	fechaEntrada, err := parseFechaOpcional(req.FechaEntrada)
	if err != nil {
		respondError(c, err)
		return
	}
	if fechaEntrada == nil {
		now := time.Now()
		fechaEntrada = &now
	}
	fechaSalida, err := parseFechaOpcional(req.FechaSalida)
	if err != nil {
		respondError(c, err)
		return
	}

	imagen, err := h.imagenSubida(c)
	if err != nil {
		respondError(c, err)
		return
	}

	err = h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		id, err := seq.NextID(tx, "productos", "producto_id", "PRD", 3)
		if err != nil {
			return err
		}
		return tx.Create(&models.Producto{
			ProductoID:   id,
			Nombre:       req.Nombre,
			Marca:        req.Marca,
			Descripcion:  req.Descripcion,
			PrecioVenta:  req.PrecioVenta,
			Costo:        req.Costo,
			StockActual:  req.StockActual,
			StockMinimo:  req.StockMinimo,
			FechaEntrada: fechaEntrada,
			FechaSalida:  fechaSalida,
			Imagen:       imagen,
		}).Error
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/productos")
}

// Editar no toca StockActual: el stock solo se mueve por la transaccion
// de venta.
func (h *ProductoHandler) Editar(c *gin.Context) {
	var req ProductoRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidInput, err.Error())
		return
	}

	campos := map[string]interface{}{
		"nombre":       req.Nombre,
		"marca":        req.Marca,
		"descripcion":  req.Descripcion,
		"precio_venta": req.PrecioVenta,
		"costo":        req.Costo,
		"stock_minimo": req.StockMinimo,
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
		Model(&models.Producto{}).
		Where("producto_id = ?", c.Param("id")).
		Updates(campos)
	if res.Error != nil {
		respondError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, httperr.CodeReferenceNotFound, "Producto no existe")
		return
	}

	c.Redirect(http.StatusSeeOther, "/productos")
}

func (h *ProductoHandler) Eliminar(c *gin.Context) {
	res := h.db.WithContext(c.Request.Context()).
		Where("producto_id = ?", c.Param("id")).
		Delete(&models.Producto{})
	if res.Error != nil {
		respondError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, httperr.CodeReferenceNotFound, "Producto no existe")
		return
	}

	c.Redirect(http.StatusSeeOther, "/productos")
}

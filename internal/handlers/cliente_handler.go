package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberia-app/barberia-api/internal/httperr"
	"github.com/barberia-app/barberia-api/internal/httpresp"
	"github.com/barberia-app/barberia-api/internal/models"
	"github.com/barberia-app/barberia-api/internal/scope"
)

type ClienteHandler struct {
	db *gorm.DB
}

func NewClienteHandler(db *gorm.DB) *ClienteHandler {
	return &ClienteHandler{db: db}
}

type ClienteRequest struct {
	Nombre            string `json:"Nombre" form:"Nombre" binding:"required"`
	Apellido1         string `json:"Apellido1" form:"Apellido1" binding:"required"`
	Apellido2         string `json:"Apellido2" form:"Apellido2"`
	Telefono          string `json:"Telefono" form:"Telefono"`
	CorreoElectronico string `json:"CorreoElectronico" form:"CorreoElectronico"`
	Direccion         string `json:"Direccion" form:"Direccion"`
	Estado            string `json:"Estado" form:"Estado"`
}

// List: un cliente solo se ve a si mismo; admin y barbero ven todos.
func (h *ClienteHandler) List(c *gin.Context) {
	sc := scope.FromContext(c)

	q := h.db.WithContext(c.Request.Context()).Order("nombre ASC, apellido1 ASC")
	if sc.ClienteID != "" {
		q = q.Where("cliente_id = ?", sc.ClienteID)
	}

	var clientes []models.Cliente
	if err := q.Find(&clientes).Error; err != nil {
		respondError(c, err)
		return
	}
	httpresp.List(c, clientes)
}

// Editar: un cliente solo puede editarse a si mismo. Cero filas tocadas
// responde forbidden, igual que en citas.
func (h *ClienteHandler) Editar(c *gin.Context) {
	var req ClienteRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidInput, err.Error())
		return
	}

	sc := scope.FromContext(c)

	q := h.db.WithContext(c.Request.Context()).
		Model(&models.Cliente{}).
		Where("cliente_id = ?", c.Param("id"))
	if sc.ClienteID != "" {
		q = q.Where("cliente_id = ?", sc.ClienteID)
	}

	campos := map[string]interface{}{
		"nombre":             req.Nombre,
		"apellido1":          req.Apellido1,
		"apellido2":          req.Apellido2,
		"telefono":           req.Telefono,
		"correo_electronico": req.CorreoElectronico,
		"direccion":          req.Direccion,
	}
	if req.Estado != "" && sc.ClienteID == "" {
		campos["estado"] = req.Estado
	}

	res := q.Updates(campos)
	if res.Error != nil {
		respondError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		httperr.Forbidden(c, httperr.CodeForbidden, "No autorizado o el cliente no existe")
		return
	}

	c.Redirect(http.StatusSeeOther, "/clientes")
}

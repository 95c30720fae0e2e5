package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barberia-app/barberia-api/internal/httperr"
	"github.com/barberia-app/barberia-api/internal/httpresp"
	"github.com/barberia-app/barberia-api/internal/middleware"
	"github.com/barberia-app/barberia-api/internal/scope"
	ucCita "github.com/barberia-app/barberia-api/internal/usecase/cita"
)

type CitaHandler struct {
	listarUC   *ucCita.ListarCitas
	crearUC    *ucCita.CrearCita
	editarUC   *ucCita.EditarCita
	eliminarUC *ucCita.EliminarCita
}

func NewCitaHandler(
	listarUC *ucCita.ListarCitas,
	crearUC *ucCita.CrearCita,
	editarUC *ucCita.EditarCita,
	eliminarUC *ucCita.EliminarCita,
) *CitaHandler {
	return &CitaHandler{
		listarUC:   listarUC,
		crearUC:    crearUC,
		editarUC:   editarUC,
		eliminarUC: eliminarUC,
	}
}

type CitaRequest struct {
	ClienteID  string `json:"ClienteID" form:"ClienteID"`
	BarberoID  string `json:"BarberoID" form:"BarberoID"`
	ServicioID string `json:"ServicioID" form:"ServicioID"`
	Fecha      string `json:"Fecha" form:"Fecha"`
	HoraInicio string `json:"HoraInicio" form:"HoraInicio"`
	HoraFin    string `json:"HoraFin" form:"HoraFin"`
	Estado     string `json:"Estado" form:"Estado"`
	Notas      string `json:"Notas" form:"Notas"`
}

func (h *CitaHandler) List(c *gin.Context) {
	citas, err := h.listarUC.Execute(c.Request.Context(), scope.FromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.List(c, citas)
}

func (h *CitaHandler) Agregar(c *gin.Context) {
	var req CitaRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidInput, err.Error())
		return
	}

	var usuario string
	if sess, ok := middleware.CurrentSession(c); ok {
		usuario = sess.Usuario
	}

	_, err := h.crearUC.Execute(c.Request.Context(), scope.FromContext(c), ucCita.CrearCitaInput{
		ClienteID:  req.ClienteID,
		BarberoID:  req.BarberoID,
		ServicioID: req.ServicioID,
		Fecha:      req.Fecha,
		HoraInicio: req.HoraInicio,
		HoraFin:    req.HoraFin,
		Estado:     req.Estado,
		Notas:      req.Notas,
		Usuario:    usuario,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/citas")
}

func (h *CitaHandler) Editar(c *gin.Context) {
	var req CitaRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidInput, err.Error())
		return
	}

	err := h.editarUC.Execute(c.Request.Context(), scope.FromContext(c), c.Param("id"), ucCita.CrearCitaInput{
		ClienteID:  req.ClienteID,
		BarberoID:  req.BarberoID,
		ServicioID: req.ServicioID,
		Fecha:      req.Fecha,
		HoraInicio: req.HoraInicio,
		HoraFin:    req.HoraFin,
		Estado:     req.Estado,
		Notas:      req.Notas,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/citas")
}

func (h *CitaHandler) Eliminar(c *gin.Context) {
	if err := h.eliminarUC.Execute(c.Request.Context(), scope.FromContext(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/citas")
}

package handlers

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/barberia-app/barberia-api/internal/httperr"
)

// respondError traduce errores de negocio a su status; todo lo demas se
// loguea y sale como 500 generico sin detalle interno.
func respondError(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		log.Printf("internal error: %v", err)
		httperr.Internal(c, "internal_error", "Error interno")
		return
	}

	switch code {
	case httperr.CodeAuthRequired:
		httperr.Unauthorized(c, code, err.Error())
	case httperr.CodeForbidden:
		httperr.Forbidden(c, code, err.Error())
	default:
		httperr.BadRequest(c, code, err.Error())
	}
}

package scope

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberia-app/barberia-api/internal/middleware"
)

// Scope acota lecturas y escrituras a los registros propios del que llama.
// Para admin ambos campos quedan vacios y no se agrega ninguna condicion.
type Scope struct {
	ClienteID string
	BarberoID string
}

func FromContext(c *gin.Context) Scope {
	var s Scope
	if v, ok := c.Get(middleware.ContextClienteID); ok {
		s.ClienteID, _ = v.(string)
	}
	if v, ok := c.Get(middleware.ContextBarberoID); ok {
		s.BarberoID, _ = v.(string)
	}
	return s
}

func (s Scope) IsUnrestricted() bool {
	return s.ClienteID == "" && s.BarberoID == ""
}

// Apply agrega el predicado de pertenencia sobre las columnas de la tabla
// de citas. Se usa igual en SELECT y en el WHERE de UPDATE/DELETE.
func (s Scope) Apply(q *gorm.DB) *gorm.DB {
	if s.ClienteID != "" {
		return q.Where("cliente_id = ?", s.ClienteID)
	}
	if s.BarberoID != "" {
		return q.Where("barbero_id = ?", s.BarberoID)
	}
	return q
}

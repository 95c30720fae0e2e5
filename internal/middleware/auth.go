package middleware

import (
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/barberia-app/barberia-api/internal/config"
	"github.com/barberia-app/barberia-api/internal/domain/rol"
	"github.com/barberia-app/barberia-api/internal/session"
)

const (
	ContextSesion = "sesion"

	// Auto-filtro: IDs propios para acotar las consultas rio abajo.
	ContextClienteID = "soloClienteID"
	ContextBarberoID = "soloBarberoID"
)

// WantsJSON: XHR/fetch reciben JSON, la navegacion normal recibe redirect.
func WantsJSON(c *gin.Context) bool {
	if c.GetHeader("X-Requested-With") == "XMLHttpRequest" {
		return true
	}
	return strings.Contains(c.GetHeader("Accept"), "application/json")
}

func redirectToLogin(c *gin.Context) {
	back := url.QueryEscape(c.Request.URL.RequestURI())
	c.Redirect(http.StatusFound, "/login?next="+back)
	c.Abort()
}

// LoadSession resuelve la cookie firmada y deja la sesion en el contexto.
// No rechaza nada: eso es trabajo de RequireAuth / RequireRole.
func LoadSession(cfg *config.Config, store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(session.CookieName)
		if err != nil || tokenString == "" {
			c.Next()
			return
		}

		sid, err := session.ParseToken(cfg.SessionSecret, tokenString)
		if err != nil {
			c.Next()
			return
		}

		sess, err := store.Get(c.Request.Context(), sid)
		if err != nil {
			if err != session.ErrNotFound {
				log.Printf("session lookup failed: %v", err)
			}
			c.Next()
			return
		}

		c.Set(ContextSesion, sess)
		c.Next()
	}
}

func CurrentSession(c *gin.Context) (*session.Sesion, bool) {
	v, ok := c.Get(ContextSesion)
	if !ok {
		return nil, false
	}
	sess, ok := v.(*session.Sesion)
	return sess, ok
}

// RequireAuth exige una sesion, con cualquier rol.
func RequireAuth() gin.HandlerFunc {
	return RequireRole()
}

// RequireRole exige sesion y, si se indican roles, que el rol este permitido.
// Sin sesion: 401 JSON o redirect a /login con el destino original.
// Rol no permitido: 403.
func RequireRole(roles ...rol.Rol) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := CurrentSession(c)
		if !ok {
			if WantsJSON(c) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "auth_required"})
				return
			}
			redirectToLogin(c)
			return
		}

		if len(roles) > 0 && !sess.Rol.In(roles...) {
			if WantsJSON(c) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
				return
			}
			c.String(http.StatusForbidden, "No autorizado")
			c.Abort()
			return
		}

		c.Next()
	}
}

// OnlySelfCliente y OnlySelfBarbero son aditivos e independientes del orden:
// solo anotan el ID propio, nunca rechazan la peticion.

func OnlySelfCliente() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sess, ok := CurrentSession(c); ok && sess.Rol == rol.Cliente && sess.ClienteID != "" {
			c.Set(ContextClienteID, sess.ClienteID)
		}
		c.Next()
	}
}

func OnlySelfBarbero() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sess, ok := CurrentSession(c); ok && sess.Rol == rol.Barbero && sess.BarberoID != "" {
			c.Set(ContextBarberoID, sess.BarberoID)
		}
		c.Next()
	}
}

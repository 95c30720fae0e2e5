package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/barberia-app/barberia-api/internal/config"
	"github.com/barberia-app/barberia-api/internal/domain/rol"
	"github.com/barberia-app/barberia-api/internal/middleware"
	"github.com/barberia-app/barberia-api/internal/models"
	"github.com/barberia-app/barberia-api/internal/session"
)

type AuthHandler struct {
	db    *gorm.DB
	cfg   *config.Config
	store session.Store
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, store session.Store) *AuthHandler {
	return &AuthHandler{db: db, cfg: cfg, store: store}
}

// --------- Requests ---------

type LoginRequest struct {
	NombreUsuario string `json:"nombreUsuario" form:"nombreUsuario" binding:"required"`
	Contrasena    string `json:"contrasena" form:"contrasena" binding:"required"`
	Recordarme    bool   `json:"recordarme" form:"recordarme"`
	Next          string `json:"next" form:"next"`
}

// sanitizeNext evita open-redirect: solo rutas relativas al sitio y nunca
// de vuelta a /login.
func sanitizeNext(url string) string {
	if url == "" || !strings.HasPrefix(url, "/") {
		return ""
	}
	if strings.HasPrefix(url, "//") || strings.HasPrefix(url, "/login") {
		return ""
	}
	return url
}

// --------- Handlers ---------

// LoginPage: ya autenticado redirige al landing del rol, sin volver a
// pedir credenciales.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	if sess, ok := middleware.CurrentSession(c); ok {
		c.Redirect(http.StatusFound, sess.Rol.Landing())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"next": sanitizeNext(c.Query("next")),
		"out":  c.Query("out") == "1",
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	next := sanitizeNext(req.Next)
	if next == "" {
		next = sanitizeNext(c.Query("next"))
	}

	nombre := strings.TrimSpace(req.NombreUsuario)

	var usuario models.Usuario
	if err := h.db.Where("nombre_usuario = ?", nombre).First(&usuario).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.Contrasena), []byte(req.Contrasena)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	r, err := rol.Parse(usuario.Rol)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_role"})
		return
	}

	// Cliente y barbero deben estar vinculados a su entidad de dominio;
	// sin vinculo el login no sirve para nada util.
	var clienteID, barberoID string
	switch r {
	case rol.Cliente:
		var cliente models.Cliente
		if err := h.db.Where("usuario_registro = ?", usuario.NombreUsuario).
			First(&cliente).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unlinked_account"})
			return
		}
		clienteID = cliente.ClienteID

	case rol.Barbero:
		var barbero models.Barbero
		if err := h.db.Where("usuario_registro = ?", usuario.NombreUsuario).
			First(&barbero).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unlinked_account"})
			return
		}
		barberoID = barbero.BarberoID
	}

	ttl := session.DefaultTTL
	cookieMaxAge := 0 // cookie de sesion de navegador
	if req.Recordarme {
		ttl = session.RememberTTL
		cookieMaxAge = int(session.RememberTTL / time.Second)
	}

	sess := &session.Sesion{
		Usuario:   usuario.NombreUsuario,
		UsuarioID: usuario.UsuarioID,
		Rol:       r,
		ClienteID: clienteID,
		BarberoID: barberoID,
	}

	sid, err := h.store.Create(c.Request.Context(), sess, ttl)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_session"})
		return
	}

	token, err := session.SignToken(h.cfg.SessionSecret, sid, ttl)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_sign_token"})
		return
	}

	c.SetCookie(session.CookieName, token, cookieMaxAge, "/", "", false, true)

	// Best effort, no afecta el login.
	now := time.Now()
	h.db.Model(&models.Usuario{}).
		Where("usuario_id = ?", usuario.UsuarioID).
		Update("ultimo_acceso", now)

	dest := next
	if dest == "" {
		dest = r.Landing()
	}

	if middleware.WantsJSON(c) {
		c.JSON(http.StatusOK, gin.H{
			"usuario":  usuario.NombreUsuario,
			"rol":      r.String(),
			"redirect": dest,
		})
		return
	}
	c.Redirect(http.StatusSeeOther, dest)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if tokenString, err := c.Cookie(session.CookieName); err == nil && tokenString != "" {
		if sid, err := session.ParseToken(h.cfg.SessionSecret, tokenString); err == nil {
			_ = h.store.Delete(c.Request.Context(), sid)
		}
	}

	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login?out=1")
}

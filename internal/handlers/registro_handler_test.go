package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func registroRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewRegistroHandler(nil)
	r := gin.New()
	r.POST("/registro", h.Registrar)
	return r
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func formRegistro() url.Values {
	return url.Values{
		"nombreUsuario": {"juanp"},
		"contrasena":    {"secreto123"},
		"rol":           {"cliente"},
		"correo":        {"juan@example.com"},
		"nombre":        {"Juan"},
		"apellido1":     {"Perez"},
	}
}

func TestRegistrarCorreoInvalido(t *testing.T) {
	r := registroRouter()

	// Formas que fallan antes de cualquier resolucion DNS.
	correos := []string{"sin-arroba", "@dominio.com", "juan@"}
	for _, correo := range correos {
		form := formRegistro()
		form.Set("correo", correo)

		w := postForm(r, "/registro", form)

		if w.Code != http.StatusBadRequest {
			t.Errorf("correo %q: status = %d, want 400", correo, w.Code)
		}
		if !strings.Contains(w.Body.String(), "Correo") {
			t.Errorf("correo %q: body = %s, want mensaje de correo", correo, w.Body.String())
		}
	}
}

func TestRegistrarNombreInvalido(t *testing.T) {
	r := registroRouter()

	form := formRegistro()
	form.Set("nombre", "Juan123") // corta antes de resolver el correo

	w := postForm(r, "/registro", form)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestRegistrarCamposRequeridos(t *testing.T) {
	r := registroRouter()

	form := formRegistro()
	form.Del("contrasena")

	w := postForm(r, "/registro", form)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

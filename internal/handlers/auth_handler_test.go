package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/barberia-app/barberia-api/internal/domain/rol"
	"github.com/barberia-app/barberia-api/internal/middleware"
	"github.com/barberia-app/barberia-api/internal/session"
)

func TestSanitizeNext(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"/citas", "/citas"},
		{"/ventas?page=2", "/ventas?page=2"},
		{"https://evil.example/phish", ""},
		{"//evil.example", ""},
		{"/login", ""},
		{"/login?next=/citas", ""},
		{"citas", ""},
	}

	for _, tc := range cases {
		if got := sanitizeNext(tc.in); got != tc.want {
			t.Errorf("sanitizeNext(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestLoginPageConSesionRedirige(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := &AuthHandler{}
	r := gin.New()
	r.GET("/login", func(c *gin.Context) {
		c.Set(middleware.ContextSesion, &session.Sesion{Usuario: "ana", Rol: rol.Admin})
	}, h.LoginPage)

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/reportes" {
		t.Errorf("Location = %q, want /reportes", loc)
	}
}

func TestLoginPageSinSesion(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := &AuthHandler{}
	r := gin.New()
	r.GET("/login", h.LoginPage)

	req := httptest.NewRequest(http.MethodGet, "/login?next=%2Fcitas&out=1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	if want := `"next":"/citas"`; !strings.Contains(body, want) {
		t.Errorf("body = %s, want %s", body, want)
	}
	if want := `"out":true`; !strings.Contains(body, want) {
		t.Errorf("body = %s, want %s", body, want)
	}
}

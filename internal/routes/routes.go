package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberia-app/barberia-api/internal/config"
	"github.com/barberia-app/barberia-api/internal/domain/rol"
	"github.com/barberia-app/barberia-api/internal/handlers"
	infraRepo "github.com/barberia-app/barberia-api/internal/infra/repository"
	"github.com/barberia-app/barberia-api/internal/middleware"
	"github.com/barberia-app/barberia-api/internal/session"
	"github.com/barberia-app/barberia-api/internal/storage"
	ucCita "github.com/barberia-app/barberia-api/internal/usecase/cita"
	ucVenta "github.com/barberia-app/barberia-api/internal/usecase/venta"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	store session.Store,
	uploader *storage.Uploader,
) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.LoadSession(cfg, store))

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	citaRepo := infraRepo.NewCitaGormRepository(db)
	ventaRepo := infraRepo.NewVentaGormRepository(db)

	// ======================================================
	// USE CASES
	// ======================================================
	listarCitasUC := ucCita.NewListarCitas(citaRepo)
	crearCitaUC := ucCita.NewCrearCita(citaRepo)
	editarCitaUC := ucCita.NewEditarCita(citaRepo)
	eliminarCitaUC := ucCita.NewEliminarCita(citaRepo)

	crearVentaUC := ucVenta.NewCrearVenta(ventaRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, store)
	registroHandler := handlers.NewRegistroHandler(db)

	citaHandler := handlers.NewCitaHandler(listarCitasUC, crearCitaUC, editarCitaUC, eliminarCitaUC)
	ventaHandler := handlers.NewVentaHandler(db, crearVentaUC)
	pagoHandler := handlers.NewPagoHandler(db)

	servicioHandler := handlers.NewServicioHandler(db, uploader)
	productoHandler := handlers.NewProductoHandler(db, uploader)
	clienteHandler := handlers.NewClienteHandler(db)
	barberoHandler := handlers.NewBarberoHandler(db)
	especialidadHandler := handlers.NewEspecialidadHandler(db)
	reporteHandler := handlers.NewReporteHandler(db)

	// ======================================================
	// PUBLICAS (sin sesion)
	// ======================================================
	r.GET("/login", authHandler.LoginPage)
	r.POST("/login", authHandler.Login)
	r.GET("/login/logout", authHandler.Logout)
	r.POST("/registro", registroHandler.Registrar)

	// Catalogo publico: /menu y /api nunca exigen sesion.
	r.GET("/servicios/menu", servicioHandler.Menu)
	r.GET("/servicios/api", servicioHandler.API)
	r.GET("/productos/menu", productoHandler.Menu)
	r.GET("/productos/api", productoHandler.API)

	// ======================================================
	// SOLO ADMIN
	// ======================================================
	reportes := r.Group("/reportes", middleware.RequireRole(rol.Admin))
	{
		reportes.GET("", reporteHandler.Resumen)
		reportes.GET("/export.csv", reporteHandler.ExportCSV)
	}

	// ======================================================
	// ADMIN + BARBERO
	// ======================================================
	adminBarbero := middleware.RequireRole(rol.Admin, rol.Barbero)

	barberos := r.Group("/barberos", adminBarbero)
	{
		barberos.GET("", barberoHandler.List)
		barberos.POST("/agregar", barberoHandler.Agregar)
		barberos.POST("/editar/:id", barberoHandler.Editar)
		barberos.POST("/eliminar/:id", barberoHandler.Eliminar)
	}

	ventas := r.Group("/ventas", adminBarbero)
	{
		ventas.GET("", ventaHandler.List)
		ventas.POST("/nueva", ventaHandler.Nueva)
		ventas.GET("/:id", ventaHandler.Detalle)
	}

	pagos := r.Group("/pagos", adminBarbero)
	{
		pagos.GET("", pagoHandler.List)
		pagos.POST("/nuevo", pagoHandler.Nuevo)
		pagos.GET("/venta/:id", pagoHandler.PorVenta)
	}

	especialidades := r.Group("/especialidades", adminBarbero)
	{
		especialidades.GET("", especialidadHandler.List)
		especialidades.POST("/agregar", especialidadHandler.Agregar)
		especialidades.POST("/eliminar/:id", especialidadHandler.Eliminar)
	}

	servicios := r.Group("/servicios", adminBarbero)
	{
		servicios.GET("", servicioHandler.List)
		servicios.POST("/agregar", servicioHandler.Agregar)
		servicios.POST("/editar/:id", servicioHandler.Editar)
		servicios.POST("/eliminar/:id", servicioHandler.Eliminar)
	}

	productos := r.Group("/productos", adminBarbero)
	{
		productos.GET("", productoHandler.List)
		productos.POST("/nuevo", productoHandler.Nuevo)
		productos.POST("/editar/:id", productoHandler.Editar)
		productos.POST("/eliminar/:id", productoHandler.Eliminar)
	}

	// ======================================================
	// CUALQUIER ROL AUTENTICADO (con auto-filtro)
	// ======================================================
	citas := r.Group("/citas",
		middleware.RequireAuth(),
		middleware.OnlySelfCliente(),
		middleware.OnlySelfBarbero(),
	)
	{
		citas.GET("", citaHandler.List)
		citas.POST("/agregar", citaHandler.Agregar)
		citas.POST("/editar/:id", citaHandler.Editar)
		citas.POST("/eliminar/:id", citaHandler.Eliminar)
	}

	clientes := r.Group("/clientes",
		middleware.RequireAuth(),
		middleware.OnlySelfCliente(),
	)
	{
		clientes.GET("", clienteHandler.List)
		clientes.POST("/editar/:id", clienteHandler.Editar)
	}
}

package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberia-app/barberia-api/internal/csvexport"
)

type ReporteHandler struct {
	db *gorm.DB
}

func NewReporteHandler(db *gorm.DB) *ReporteHandler {
	return &ReporteHandler{db: db}
}

// Rango por defecto: los ultimos 30 dias. El limite superior es exclusivo
// (hasta + 1 dia), para incluir el dia completo.
func parseRango(c *gin.Context) (time.Time, time.Time) {
	hasta := time.Now()
	desde := hasta.AddDate(0, 0, -30)

	if v := c.Query("desde"); v != "" {
		if f, err := time.Parse("2006-01-02", v); err == nil {
			desde = f
		}
	}
	if v := c.Query("hasta"); v != "" {
		if f, err := time.Parse("2006-01-02", v); err == nil {
			hasta = f
		}
	}
	return desde, hasta.AddDate(0, 0, 1)
}

type reporteKPIs struct {
	TotalVentas int64   `json:"total_ventas"`
	MontoTotal  float64 `json:"monto_total"`
}

type ventaPorDia struct {
	Dia   time.Time `json:"dia"`
	Total float64   `json:"total"`
}

type topItem struct {
	Nombre string  `json:"nombre"`
	Total  float64 `json:"total"`
}

func (h *ReporteHandler) Resumen(c *gin.Context) {
	desde, hasta := parseRango(c)
	clienteID := c.Query("cliente")

	db := h.db.WithContext(c.Request.Context())

	filtro := func(q *gorm.DB) *gorm.DB {
		q = q.Where("v.fecha_venta >= ? AND v.fecha_venta < ?", desde, hasta)
		if clienteID != "" {
			q = q.Where("v.cliente_id = ?", clienteID)
		}
		return q
	}

	var kpis reporteKPIs
	if err := filtro(db.Table("ventas v")).
		Select("COUNT(*) AS total_ventas, COALESCE(SUM(v.monto_total), 0) AS monto_total").
		Scan(&kpis).Error; err != nil {
		respondError(c, err)
		return
	}

	ticketPromedio := 0.0
	if kpis.TotalVentas > 0 {
		ticketPromedio = kpis.MontoTotal / float64(kpis.TotalVentas)
	}

	var porDia []ventaPorDia
	if err := filtro(db.Table("ventas v")).
		Select("DATE(v.fecha_venta) AS dia, SUM(v.monto_total) AS total").
		Group("DATE(v.fecha_venta)").
		Order("dia ASC").
		Scan(&porDia).Error; err != nil {
		respondError(c, err)
		return
	}

	var topServicios []topItem
	if err := filtro(db.Table("detalle_ventas d").
		Joins("JOIN ventas v ON v.venta_id = d.venta_id").
		Joins("JOIN servicios s ON s.servicio_id = d.servicio_id")).
		Select("s.nombre AS nombre, SUM(d.subtotal) AS total").
		Group("s.nombre").
		Order("total DESC").
		Limit(5).
		Scan(&topServicios).Error; err != nil {
		respondError(c, err)
		return
	}

	var topProductos []topItem
	if err := filtro(db.Table("detalle_ventas d").
		Joins("JOIN ventas v ON v.venta_id = d.venta_id").
		Joins("JOIN productos p ON p.producto_id = d.producto_id")).
		Select("p.nombre AS nombre, SUM(d.subtotal) AS total").
		Group("p.nombre").
		Order("total DESC").
		Limit(5).
		Scan(&topProductos).Error; err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"kpis": gin.H{
			"total_ventas":    kpis.TotalVentas,
			"monto_total":     kpis.MontoTotal,
			"ticket_promedio": ticketPromedio,
		},
		"por_dia":       porDia,
		"top_servicios": topServicios,
		"top_productos": topProductos,
	})
}

type ventaExport struct {
	VentaID    string
	ClienteID  string
	Cliente    string
	MontoTotal float64
	FechaVenta time.Time
}

func (h *ReporteHandler) ExportCSV(c *gin.Context) {
	desde, hasta := parseRango(c)

	var ventas []ventaExport
	q := h.db.WithContext(c.Request.Context()).
		Table("ventas v").
		Joins("JOIN clientes c ON c.cliente_id = v.cliente_id").
		Select("v.venta_id, v.cliente_id, c.nombre || ' ' || c.apellido1 AS cliente, v.monto_total, v.fecha_venta").
		Where("v.fecha_venta >= ? AND v.fecha_venta < ?", desde, hasta).
		Order("v.fecha_venta DESC, v.venta_id DESC")
	if err := q.Scan(&ventas).Error; err != nil {
		respondError(c, err)
		return
	}

	columns := []string{"VentaID", "ClienteID", "Cliente", "MontoTotal", "FechaVenta"}
	rows := make([]csvexport.Row, 0, len(ventas))
	for _, v := range ventas {
		rows = append(rows, csvexport.Row{
			Columns: columns,
			Values: []string{
				v.VentaID,
				v.ClienteID,
				v.Cliente,
				fmt.Sprintf("%.2f", v.MontoTotal),
				v.FechaVenta.Format("2006-01-02"),
			},
		})
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="ventas.csv"`)
	if err := csvexport.Write(c.Writer, rows); err != nil {
		respondError(c, err)
	}
}

package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Gunvolt24/wb_inventory/pkg/httpx"
)

const serviceName = "inventory-service"

// NewRouter — gin-роутер REST-поверхности: продукты, единицы товара, /ping, /metrics.
// ginMode: debug|release|test (пусто — текущий режим gin).
func NewRouter(h *Handler, ginMode string) *gin.Engine {
	if ginMode != "" {
		gin.SetMode(ginMode)
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true
	// Import/Export и другой регистр пути — редирект на каноничный маршрут (GET 301, PUT 307)
	r.RedirectFixedPath = true
	r.Use(
		gin.Recovery(),
		otelgin.Middleware(serviceName),
		httpx.RequestIDMiddleware(),
		httpx.RequestLogger(h.log, "/metrics", "/ping"),
	)

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	api.GET("/product/:code", h.getProduct)

	items := api.Group("/productitem")
	items.GET("/:product_code", h.listItems)
	items.PUT("/import/:product_code", h.importItems)
	items.PUT("/export/:product_code", h.exportItem)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	return r
}

package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"activityroster/internal/app/dto"
	"activityroster/internal/app/http/handler"
	"activityroster/internal/app/http/middleware"
	"activityroster/internal/app/http/static"
	"activityroster/internal/infrastructure/metrics"
)

func NewRouter(h *handler.Handler, log *zap.Logger, m *metrics.Metrics, gatherer prometheus.Gatherer) *gin.Engine {
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.ZapLogger(log),
		middleware.Metrics(m),
		middleware.ZapRecovery(log),
	)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Detail: "Not Found"})
	})

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusTemporaryRedirect, "/static/index.html")
	})
	r.StaticFS("/static", http.FS(static.FS))

	r.GET("/health", h.Health)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	r.GET("/activities", h.ActivitiesList)
	r.POST("/activities/:activityName/signup", h.ActivitySignUp)
	r.DELETE("/activities/:activityName/unregister", h.ActivityUnregister)

	return r
}

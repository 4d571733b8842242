package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/eletropro/app-core/internal/server/handlers"
)

// New wires the Gin engine with required routes and middlewares.
func New(dashboard *handlers.DashboardHandler, reference *handlers.ReferenceHandler, session *handlers.SessionHandler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/budgets", dashboard.ListBudgets)
	r.GET("/budgets/:id", dashboard.GetBudget)
	r.GET("/material-lists", dashboard.ListMaterialLists)
	r.GET("/material-lists/:id", dashboard.GetMaterialList)

	r.GET("/materials", reference.ListMaterials)
	r.GET("/services", reference.ListServices)
	r.GET("/clients", reference.ListClients)
	r.GET("/clients/:id", reference.GetClient)

	r.POST("/session", session.Login)
	r.DELETE("/session", session.Logout)
	r.GET("/session", session.Profile)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}

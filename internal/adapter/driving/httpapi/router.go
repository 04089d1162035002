package httpapi

import (
	"github.com/gin-gonic/gin"
)

type RouterConfig struct {
	DashboardHandler *DashboardHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.Default()

	r.GET("/healthcheck", cfg.DashboardHandler.HealthCheck)

	api := r.Group("/api/v1")
	{
		api.GET("/dashboard", cfg.DashboardHandler.GetDashboard)
		api.GET("/views/:name", cfg.DashboardHandler.GetView)
	}

	return r
}

type Server struct {
	Engine *gin.Engine
}

func NewServer(cfg RouterConfig) *Server {
	return &Server{Engine: NewRouter(cfg)}
}

func (s *Server) Run(address string) error {
	return s.Engine.Run(address)
}

package http_api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// routes sets up the routes for the HTTP server.
func (s *HTTPServer) routes() {
	s.router.GET("/api/v1/health", s.health)
	s.router.GET("/api/v1/subscriptions/:subscriber", s.subscriptions)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// Package router wires the HTTP routes of the extraction service.
package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	"github.com/juniordjimbi1/africacvpro-sub000/internal/api/handler"
)

// Register mounts all routes on h.
func Register(h *server.Hertz, resume *handler.ResumeHandler) {
	api := h.Group("/api/v1")

	api.GET("/health", resume.HandleHealth)

	res := api.Group("/resume")
	res.POST("/import", resume.HandleImport)
	res.POST("/viewmodel", resume.HandleViewModel)
}

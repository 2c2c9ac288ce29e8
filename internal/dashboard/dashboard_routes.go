package dashboard

import (
	"github.com/sayan-adhikary-2025/zerohr/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	dashGroup := r.Group("/dashboard")
	dashGroup.Use(middleware.AuthMiddleware())
	{
		dashGroup.GET("/summary", h.Summary)
	}
}

package job

import (
	"github.com/sayan-adhikary-2025/zerohr/internal/auth"
	"github.com/sayan-adhikary-2025/zerohr/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	jobGroup := r.Group("/jobs")
	jobGroup.Use(middleware.AuthMiddleware())
	{
		jobGroup.POST("", middleware.RoleMiddleware(auth.UserTypeManager, auth.UserTypeHR), h.Create)
		jobGroup.GET("/user/:username", h.ListForUser)
		jobGroup.GET("/:id", h.GetByID)
	}
}

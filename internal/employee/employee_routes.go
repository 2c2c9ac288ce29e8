package employee

import (
	"github.com/sayan-adhikary-2025/zerohr/internal/auth"
	"github.com/sayan-adhikary-2025/zerohr/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	empGroup := r.Group("/employees")
	empGroup.Use(middleware.AuthMiddleware())
	{
		empGroup.GET("", h.ListByOrg)
		empGroup.GET("/by-username/:username", h.GetByUsername)
		empGroup.GET("/manager/:username", h.DirectReports)
		empGroup.PATCH("/profile", h.UpdateProfile)

		adminGroup := empGroup.Group("")
		adminGroup.Use(middleware.RoleMiddleware(auth.UserTypeManager, auth.UserTypeHR))
		{
			adminGroup.POST("", h.Create)
			adminGroup.PUT("/:user_id", h.Update)
		}
	}
}

package application

import (
	"github.com/sayan-adhikary-2025/zerohr/internal/auth"
	"github.com/sayan-adhikary-2025/zerohr/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	appGroup := r.Group("/applications")
	{
		// Public intake endpoint for external applicants; rate limited.
		appGroup.POST("", middleware.RateLimitByIP(rate.Limit(2), 5), h.Submit)

		// Review endpoints for the hiring side.
		reviewGroup := appGroup.Group("")
		reviewGroup.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(auth.UserTypeManager, auth.UserTypeHR))
		{
			reviewGroup.GET("/org/:org_id", h.ListByOrg)
			reviewGroup.GET("/:id", h.GetByID)
			reviewGroup.PUT("/:id/status", h.UpdateStatus)
		}
	}
}

package leave

import (
	"github.com/sayan-adhikary-2025/zerohr/internal/auth"
	"github.com/sayan-adhikary-2025/zerohr/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rdb *redis.Client) {
	leaveGroup := r.Group("/leave")
	leaveGroup.Use(middleware.AuthMiddleware())
	{
		leaveGroup.POST("/apply", h.Apply)
		leaveGroup.POST("/action",
			middleware.RoleMiddleware(auth.UserTypeManager, auth.UserTypeHR),
			middleware.Idempotency(rdb),
			h.Action,
		)
		leaveGroup.GET("/:user_id", h.Overview)
	}
}

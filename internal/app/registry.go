package app

import (
	"database/sql"

	"github.com/sayan-adhikary-2025/zerohr/internal/application"
	"github.com/sayan-adhikary-2025/zerohr/internal/auth"
	"github.com/sayan-adhikary-2025/zerohr/internal/dashboard"
	"github.com/sayan-adhikary-2025/zerohr/internal/employee"
	"github.com/sayan-adhikary-2025/zerohr/internal/job"
	"github.com/sayan-adhikary-2025/zerohr/internal/leave"
	"github.com/sayan-adhikary-2025/zerohr/internal/messaging/kafka"
	"github.com/sayan-adhikary-2025/zerohr/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	logger := zap.L()

	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	jobRepo := job.NewRepository(gormDB)
	applicationRepo := application.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	dashboardRepo := dashboard.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	authService := auth.NewService(authRepo)
	leaveService := leave.NewService(db, leaveRepo, authRepo, outboxRepo, logger.Named("leave.service"))
	jobService := job.NewService(jobRepo, authRepo, logger.Named("job.service"))
	applicationService := application.NewService(db, applicationRepo, outboxRepo, logger.Named("application.service"))
	employeeService := employee.NewService(db, employeeRepo, authRepo, counterRepo, logger.Named("employee.service"))
	dashboardService := dashboard.NewService(dashboardRepo, rdb, logger.Named("dashboard.service"))

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	leaveHandler := leave.NewHandler(leaveService, rdb)
	jobHandler := job.NewHandler(jobService)
	applicationHandler := application.NewHandler(applicationService)
	employeeHandler := employee.NewHandler(employeeService)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		leave.RegisterRoutes(api, leaveHandler, rdb)
		job.RegisterRoutes(api, jobHandler)
		application.RegisterRoutes(api, applicationHandler)
		employee.RegisterRoutes(api, employeeHandler)
		dashboard.RegisterRoutes(api, dashboardHandler)
	}

	return nil
}

package app

import (
	"context"
	"database/sql"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/ninoyerbas/JHRIS/internal/attendance"
	"github.com/ninoyerbas/JHRIS/internal/auth"
	"github.com/ninoyerbas/JHRIS/internal/employee"
	"github.com/ninoyerbas/JHRIS/internal/leave"
	"github.com/ninoyerbas/JHRIS/internal/messaging/kafka"
	"github.com/ninoyerbas/JHRIS/internal/rbac"
	"github.com/ninoyerbas/JHRIS/internal/rbac/infra"
	"github.com/ninoyerbas/JHRIS/internal/user"
)

func registerModules(
	ctx context.Context,
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService, err := rbac.NewService(enforcer)
	if err != nil {
		return err
	}

	// --- Services ---
	authService := auth.NewService(authRepo)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, outboxRepo, rdb)
	attendanceService := attendance.NewService(attendanceRepo)
	leaveService := leave.NewService(db, leaveRepo, employeeRepo, outboxRepo)
	userService := user.NewService(userRepo)

	if err := leaveService.SeedDefaultTypes(ctx); err != nil {
		return err
	}

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	leaveHandler := leave.NewHandlerWithRedis(leaveService, rdb)
	userHandler := user.NewHandler(userService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		employee.RegisterRoutes(api, employeeHandler, rbacService)
		attendance.RegisterRoutes(api, attendanceHandler, rbacService)
		leave.RegisterRoutes(api, leaveHandler, rbacService, rdb)
		user.RegisterRoutes(api, userHandler, rbacService)
	}

	return nil
}

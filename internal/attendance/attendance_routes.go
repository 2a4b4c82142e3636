package attendance

import (
	"github.com/gin-gonic/gin"

	"github.com/ninoyerbas/JHRIS/internal/middleware"
	"github.com/ninoyerbas/JHRIS/internal/rbac"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	attendance := r.Group("/attendance")
	attendance.Use(middleware.AuthMiddleware())
	{
		attendance.POST("/clock-in", middleware.RBACAuthorize(rbacService, "attendance", "create"), h.ClockIn)
		attendance.POST("/clock-out", middleware.RBACAuthorize(rbacService, "attendance", "create"), h.ClockOut)
		attendance.POST("/mark", middleware.RBACAuthorize(rbacService, "attendance", "mark"), h.Mark)
		attendance.GET("", middleware.RBACAuthorize(rbacService, "attendance", "read_all"), h.GetAll)
		attendance.GET("/employee/:employee_id", middleware.RBACAuthorize(rbacService, "attendance", "read"), h.GetByEmployee)
		attendance.PUT("/:id", middleware.RBACAuthorize(rbacService, "attendance", "update"), h.Update)
	}
}

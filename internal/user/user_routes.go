package user

import (
	"github.com/gin-gonic/gin"

	"github.com/ninoyerbas/JHRIS/internal/middleware"
	"github.com/ninoyerbas/JHRIS/internal/rbac"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.GET("", middleware.RBACAuthorize(rbacService, "user", "read"), h.GetAll)
		users.GET("/:id", middleware.RBACAuthorize(rbacService, "user", "read"), h.GetById)
		users.PUT("/:id/toggle-status", middleware.RBACAuthorize(rbacService, "user", "update"), h.ToggleStatus)
	}
}

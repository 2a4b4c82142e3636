package leave

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/ninoyerbas/JHRIS/internal/middleware"
	"github.com/ninoyerbas/JHRIS/internal/rbac"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service, rdb *redis.Client) {
	leave := r.Group("/leave")
	leave.Use(middleware.AuthMiddleware())
	{
		leave.GET("/types", middleware.RBACAuthorize(rbacService, "leave_type", "read"), h.ListTypes)

		leave.POST("/requests",
			middleware.RBACAuthorize(rbacService, "leave", "create"),
			middleware.Idempotency(rdb),
			h.CreateRequest,
		)
		leave.GET("/requests", middleware.RBACAuthorize(rbacService, "leave", "read"), h.GetAllRequests)
		leave.GET("/requests/:id", middleware.RBACAuthorize(rbacService, "leave", "read"), h.GetRequestByID)
		leave.PUT("/requests/:id/decide", middleware.RBACAuthorize(rbacService, "leave", "decide"), h.Decide)

		leave.GET("/balances/:employee_id", middleware.RBACAuthorize(rbacService, "leave_balance", "read"), h.GetBalances)
		leave.POST("/balances", middleware.RBACAuthorize(rbacService, "leave_balance", "create"), h.InitializeBalance)
	}
}

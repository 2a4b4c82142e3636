package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/ninoyerbas/JHRIS/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", middleware.RateLimitByIP(1, 5), h.Register)
		authGroup.POST("/login", middleware.RateLimitByIP(2, 10), h.Login)
		authGroup.GET("/me", middleware.AuthMiddleware(), h.GetMe)
	}
}

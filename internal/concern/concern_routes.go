package concern

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	logger *zap.Logger,
) {
	concerns := r.Group("/concerns")
	concerns.Use(middleware.AuthMiddleware())
	concerns.Use(middleware.ContextLogger(logger))
	{
		concerns.POST("",
			middleware.RateLimitByUser(0.2, 3),
			middleware.RBACAuthorize(rbacService, "concern", "create"),
			handler.Raise,
		)
		concerns.GET("/me",
			middleware.RBACAuthorize(rbacService, "concern", "read_own"),
			handler.ListMine,
		)
		concerns.GET("/me/:id",
			middleware.RBACAuthorize(rbacService, "concern", "read_own"),
			handler.GetMine,
		)
		concerns.DELETE("/me/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "concern", "delete_own"),
			handler.Withdraw,
		)
		concerns.POST("/me/:id/attachment",
			middleware.RateLimitByUser(0.2, 3),
			middleware.RBACAuthorize(rbacService, "concern", "update_own"),
			handler.Attach,
		)

		concerns.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "concern", "read"),
			handler.List,
		)
		concerns.GET("/:id",
			middleware.RBACAuthorize(rbacService, "concern", "read"),
			handler.GetByID,
		)
		concerns.POST("/:id/respond",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "concern", "respond"),
			handler.Respond,
		)
		concerns.PATCH("/:id/status",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "concern", "respond"),
			handler.UpdateStatus,
		)
		concerns.POST("/:id/close",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "concern", "respond"),
			handler.Close,
		)
	}
}

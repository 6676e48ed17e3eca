package organization

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
	r.POST("/organizations/register",
		middleware.RateLimitByIP(0.2, 2),
		handler.Register,
	)

	organizations := r.Group("/organizations")
	organizations.Use(middleware.AuthMiddleware())
	organizations.Use(middleware.ContextLogger(logger))
	{
		organizations.GET("/me",
			middleware.RBACAuthorize(rbacService, "organization", "read_own"),
			handler.GetMe,
		)

		organizations.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "organization", "read"),
			handler.List,
		)

		organizations.GET("/:id",
			middleware.RBACAuthorize(rbacService, "organization", "read"),
			handler.GetByID,
		)

		organizations.POST("/:id/verify",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "organization", "verify"),
			handler.Verify,
		)

		organizations.POST("/:id/reject-verification",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "organization", "verify"),
			handler.RejectVerification,
		)
	}
}

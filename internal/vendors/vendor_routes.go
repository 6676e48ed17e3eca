package vendors

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
	vendors := r.Group("/vendors")
	vendors.Use(middleware.AuthMiddleware())
	vendors.Use(middleware.ContextLogger(logger))
	{
		vendors.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "vendor", "read"),
			handler.GetAll,
		)
		vendors.GET("/:id",
			middleware.RBACAuthorize(rbacService, "vendor", "read"),
			handler.GetByID,
		)
		vendors.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "vendor", "create"),
			handler.Create,
		)
	}
}

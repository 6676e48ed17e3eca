package vendorpayment

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	r.POST("/vendors/:id/payments",
		middleware.AuthMiddleware(),
		middleware.ContextLogger(logger),
		middleware.RateLimitByUser(1, 5),
		middleware.RBACAuthorize(rbacService, "vendor_payment", "create"),
		middleware.Idempotency(rdb, logger),
		handler.Create,
	)
	r.GET("/vendors/:id/payments",
		middleware.AuthMiddleware(),
		middleware.ContextLogger(logger),
		middleware.RBACAuthorize(rbacService, "vendor_payment", "read"),
		handler.ListByVendor,
	)

	payments := r.Group("/vendor-payments")
	payments.Use(middleware.AuthMiddleware())
	payments.Use(middleware.ContextLogger(logger))
	{
		payments.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "vendor_payment", "read"),
			handler.List,
		)
		payments.GET("/:id",
			middleware.RBACAuthorize(rbacService, "vendor_payment", "read"),
			handler.GetByID,
		)
		payments.PATCH("/:id/status",
			middleware.RBACAuthorize(rbacService, "vendor_payment", "update_status"),
			handler.UpdateStatus,
		)
	}
}

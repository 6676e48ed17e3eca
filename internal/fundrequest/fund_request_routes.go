package fundrequest

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
	requests := r.Group("/fund-requests")
	requests.Use(middleware.AuthMiddleware())
	requests.Use(middleware.ContextLogger(logger))
	{
		requests.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "fund_request", "create"),
			middleware.Idempotency(rdb, logger),
			handler.Create,
		)
		requests.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "fund_request", "read_own"),
			handler.GetAll,
		)
		requests.GET("/:id",
			middleware.RBACAuthorize(rbacService, "fund_request", "read_own"),
			handler.GetByID,
		)
		requests.DELETE("/:id",
			middleware.RBACAuthorize(rbacService, "fund_request", "delete"),
			handler.Delete,
		)
	}

	admin := r.Group("/admin/fund-requests")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.ContextLogger(logger))
	{
		admin.GET("",
			middleware.RBACAuthorize(rbacService, "fund_request", "read"),
			handler.List,
		)
		admin.GET("/:id",
			middleware.RBACAuthorize(rbacService, "fund_request", "read"),
			handler.GetByID,
		)
		admin.POST("/:id/approve",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "fund_request", "approve"),
			handler.Approve,
		)
		admin.POST("/:id/reject",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "fund_request", "approve"),
			handler.Reject,
		)
	}
}

package salarypayment

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
	admin := r.Group("/admin/fund-requests")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.ContextLogger(logger))
	{
		admin.POST("/:id/process",
			middleware.RateLimitByUser(0.2, 1),
			middleware.RBACAuthorize(rbacService, "salary_batch", "process"),
			middleware.Idempotency(rdb, logger),
			handler.Process,
		)
		admin.POST("/:id/resume",
			middleware.RateLimitByUser(0.2, 1),
			middleware.RBACAuthorize(rbacService, "salary_batch", "process"),
			handler.Resume,
		)
		admin.GET("/:id/salary-payments",
			middleware.RBACAuthorize(rbacService, "salary_payment", "read"),
			handler.ListByFundRequest,
		)
	}

	payments := r.Group("/salary-payments")
	payments.Use(middleware.AuthMiddleware())
	payments.Use(middleware.ContextLogger(logger))
	{
		payments.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "salary_payment", "read"),
			handler.ListByPeriod,
		)
		payments.GET("/me",
			middleware.RBACAuthorize(rbacService, "salary_payment", "read_own"),
			handler.ListMine,
		)
		payments.GET("/:id",
			middleware.RBACAuthorize(rbacService, "salary_payment", "read"),
			handler.GetByID,
		)
		payments.GET("/:id/slip",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "salary_payment", "read"),
			handler.DownloadSlip,
		)
	}

	r.GET("/employees/:id/salary-payments",
		middleware.AuthMiddleware(),
		middleware.ContextLogger(logger),
		middleware.RBACAuthorize(rbacService, "salary_payment", "read"),
		handler.ListByEmployee,
	)
	r.GET("/fund-requests/:id/salary-payments",
		middleware.AuthMiddleware(),
		middleware.ContextLogger(logger),
		middleware.RBACAuthorize(rbacService, "salary_payment", "read"),
		handler.ListByFundRequest,
	)
}

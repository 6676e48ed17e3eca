package salarystructure

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
	employees := r.Group("/employees/:id/salary-structures")
	employees.Use(middleware.AuthMiddleware())
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.POST("",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "salary_structure", "create"),
			handler.SetActive,
		)
		employees.GET("",
			middleware.RBACAuthorize(rbacService, "salary_structure", "read"),
			handler.GetHistory,
		)
		employees.GET("/active",
			middleware.RBACAuthorize(rbacService, "salary_structure", "read"),
			handler.GetActive,
		)
	}

	structures := r.Group("/salary-structures")
	structures.Use(middleware.AuthMiddleware())
	structures.Use(middleware.ContextLogger(logger))
	{
		structures.GET("/:id",
			middleware.RBACAuthorize(rbacService, "salary_structure", "read"),
			handler.GetByID,
		)
		structures.PUT("/:id",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "salary_structure", "update"),
			handler.Update,
		)
		structures.POST("/:id/deactivate",
			middleware.RBACAuthorize(rbacService, "salary_structure", "update"),
			handler.Deactivate,
		)
	}
}

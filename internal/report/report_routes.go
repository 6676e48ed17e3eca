package report

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, logger *zap.Logger) {
	reports := r.Group("/reports")
	reports.Use(middleware.AuthMiddleware())
	reports.Use(middleware.ContextLogger(logger))
	reports.Use(middleware.RateLimitByUser(0.5, 3))
	{
		reports.GET("/salary-register",
			middleware.RBACAuthorize(rbacService, "report", "read"),
			handler.SalaryRegister,
		)
		reports.GET("/employees",
			middleware.RBACAuthorize(rbacService, "report", "read"),
			handler.EmployeeList,
		)
		reports.GET("/vendor-payments",
			middleware.RBACAuthorize(rbacService, "report", "read"),
			handler.VendorPayments,
		)
	}
}

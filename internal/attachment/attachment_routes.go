package attachment

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
	organizations := r.Group("/organizations")
	organizations.Use(middleware.AuthMiddleware())
	organizations.Use(middleware.ContextLogger(logger))
	{
		organizations.POST("/me/documents",
			middleware.RateLimitByUser(0.2, 3),
			middleware.RBACAuthorize(rbacService, "document", "create"),
			handler.UploadOrganizationDocument,
		)
		organizations.GET("/me/documents",
			middleware.RBACAuthorize(rbacService, "document", "read"),
			handler.ListMyOrganizationDocuments,
		)
		organizations.GET("/:id/documents",
			middleware.RBACAuthorize(rbacService, "document", "review"),
			handler.ListOrganizationDocuments,
		)
	}

	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.POST("/me/account-proof",
			middleware.RateLimitByUser(0.2, 3),
			middleware.RBACAuthorize(rbacService, "document", "create_own"),
			handler.UploadAccountProof,
		)
		employees.GET("/:id/documents",
			middleware.RBACAuthorize(rbacService, "document", "read"),
			handler.ListEmployeeDocuments,
		)
	}
}

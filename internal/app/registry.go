package app

import (
	"context"
	"database/sql"
	"errors"

	"go-payroll/internal/attachment"
	"go-payroll/internal/concern"
	"go-payroll/internal/config"
	"go-payroll/internal/document"
	"go-payroll/internal/employee"
	"go-payroll/internal/fundrequest"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/middleware"
	"go-payroll/internal/notification"
	"go-payroll/internal/organization"
	"go-payroll/internal/rbac"
	"go-payroll/internal/rbac/infra"
	"go-payroll/internal/report"
	"go-payroll/internal/salarypayment"
	"go-payroll/internal/salarystructure"
	"go-payroll/internal/shared/counter"
	"go-payroll/internal/vendorpayment"
	"go-payroll/internal/vendors"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	organizationRepo := organization.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	salaryStructureRepo := salarystructure.NewRepository(gormDB)
	fundRequestRepo := fundrequest.NewRepository(gormDB)
	salaryPaymentRepo := salarypayment.NewRepository(gormDB)
	vendorRepo := vendors.NewRepository(gormDB)
	vendorPaymentRepo := vendorpayment.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	attachmentRepo := attachment.NewRepository(gormDB)
	concernRepo := concern.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(cfg.RBACModelPath, cfg.RBACPolicyPath)
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer, logger)
	if err := rbacService.Reload(context.Background()); err != nil {
		return err
	}

	// --- Collaborators ---
	notifier := notification.NewOutboxNotifier(outboxRepo, logger)
	store, err := newDocumentStore(cfg, logger)
	if err != nil {
		return err
	}

	// --- Services ---
	organizationService := organization.NewService(organizationRepo, notifier, logger)
	employeeService := employee.NewService(db, employeeRepo, organizationRepo, counterRepo, notifier, rdb, logger)
	salaryStructureService := salarystructure.NewService(db, salaryStructureRepo, employeeRepo, logger)
	fundRequestService := fundrequest.NewService(db, fundRequestRepo, organizationRepo, notifier, logger)
	salaryPaymentService := salarypayment.NewService(salarypayment.Deps{
		DB:            db,
		Repo:          salaryPaymentRepo,
		FundRequests:  fundRequestRepo,
		Organizations: organizationRepo,
		Employees:     employeeRepo,
		Structures:    salaryStructureService,
		Counter:       counterRepo,
		Renderer:      document.NewPDFRenderer(),
		Store:         store,
		Notifier:      notifier,
		Outbox:        outboxRepo,
	}, logger)
	vendorService := vendors.NewService(vendorRepo, organizationRepo, logger)
	vendorPaymentService := vendorpayment.NewService(vendorPaymentRepo, vendorRepo, fundRequestRepo, counterRepo, logger)
	attachmentService := attachment.NewService(attachmentRepo, store, logger)
	concernService := concern.NewService(db, concernRepo, employeeRepo, attachmentService, notifier, logger)
	reportService := report.NewService(report.Deps{
		Organizations:     organizationRepo,
		Employees:         employeeRepo,
		SalaryPayments:    salaryPaymentRepo,
		VendorPaymentRepo: vendorPaymentRepo,
		Vendors:           vendorRepo,
		Store:             store,
	}, logger)

	// --- Handlers ---
	organizationHandler := organization.NewHandler(organizationService, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	salaryStructureHandler := salarystructure.NewHandler(salaryStructureService, logger)
	fundRequestHandler := fundrequest.NewHandler(fundRequestService, logger)
	salaryPaymentHandler := salarypayment.NewHandler(salaryPaymentService, logger)
	vendorHandler := vendors.NewHandler(vendorService, logger)
	vendorPaymentHandler := vendorpayment.NewHandler(vendorPaymentService, logger)
	reportHandler := report.NewHandler(reportService, logger)
	attachmentHandler := attachment.NewHandler(attachmentService, logger)
	concernHandler := concern.NewHandler(concernService, logger)
	rbacHandler := rbac.NewHandler(rbacService)

	// --- Routes Registration ---
	router.Use(middleware.RequestID())

	api := router.Group("/api/v1")
	{
		organization.RegisterRoutes(api, organizationHandler, rbacService, logger)
		employee.RegisterRoutes(api, employeeHandler, rbacService, logger)
		salarystructure.RegisterRoutes(api, salaryStructureHandler, rbacService, logger)
		fundrequest.RegisterRoutes(api, fundRequestHandler, rbacService, rdb, logger)
		salarypayment.RegisterRoutes(api, salaryPaymentHandler, rbacService, rdb, logger)
		vendors.RegisterRoutes(api, vendorHandler, rbacService, logger)
		vendorpayment.RegisterRoutes(api, vendorPaymentHandler, rbacService, rdb, logger)
		report.RegisterRoutes(api, reportHandler, rbacService, logger)
		attachment.RegisterRoutes(api, attachmentHandler, rbacService, logger)
		concern.RegisterRoutes(api, concernHandler, rbacService, logger)
		rbac.RegisterRoutes(api, rbacHandler)
	}

	return nil
}

// newDocumentStore falls back to a store that rejects writes when OSS is not configured.
func newDocumentStore(cfg config.Config, logger *zap.Logger) (document.Store, error) {
	store, err := document.NewOSSStore(cfg.OSS)
	if errors.Is(err, document.ErrStoreNotConfigured) {
		logger.Warn("object storage not configured, documents will not be uploaded")
		return document.NopStore{}, nil
	}
	if err != nil {
		return nil, err
	}
	return store, nil
}

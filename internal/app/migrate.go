package app

import (
	"context"
	"database/sql"
	"fmt"

	"go-payroll/internal/attachment"
	"go-payroll/internal/concern"
	"go-payroll/internal/employee"
	"go-payroll/internal/fundrequest"
	"go-payroll/internal/organization"
	"go-payroll/internal/rbac"
	"go-payroll/internal/salarypayment"
	"go-payroll/internal/salarystructure"
	"go-payroll/internal/vendorpayment"
	"go-payroll/internal/vendors"

	"gorm.io/gorm"
)

// schemaStatements covers tables without a gorm model and indexes gorm tags cannot express.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS outbox_events (
	id             UUID PRIMARY KEY,
	request_id     VARCHAR(64),
	aggregate_type VARCHAR(50) NOT NULL,
	aggregate_id   VARCHAR(64) NOT NULL,
	event_type     VARCHAR(80) NOT NULL,
	topic          VARCHAR(120) NOT NULL,
	payload        JSONB NOT NULL,
	status         VARCHAR(20) NOT NULL DEFAULT 'pending',
	retry_count    INT NOT NULL DEFAULT 0,
	next_retry_at  TIMESTAMPTZ,
	error_message  TEXT,
	processed_at   TIMESTAMPTZ,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`,
	`CREATE INDEX IF NOT EXISTS idx_outbox_events_pending ON outbox_events (status, next_retry_at, created_at)`,
	`CREATE TABLE IF NOT EXISTS organization_counters (
	organization_id VARCHAR(64) NOT NULL,
	counter_type    VARCHAR(40) NOT NULL,
	last_value      BIGINT NOT NULL DEFAULT 0,
	updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	PRIMARY KEY (organization_id, counter_type)
)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_salary_structure_active
	ON salary_structures (employee_id) WHERE is_active`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_fund_request_salary_period
	ON fund_requests (organization_id, month, year)
	WHERE request_type = 'SALARY_DISBURSEMENT' AND status <> 'REJECTED' AND deleted_at IS NULL`,
	// Transaction ids are unique per organization (uq_*_transaction); drop the older global indexes.
	`DROP INDEX IF EXISTS idx_salary_payments_transaction_id`,
	`DROP INDEX IF EXISTS idx_vendor_payments_transaction_id`,
}

func migrate(ctx context.Context, gormDB *gorm.DB, db *sql.DB) error {
	if err := gormDB.WithContext(ctx).AutoMigrate(
		&organization.Organization{},
		&employee.Employee{},
		&salarystructure.SalaryStructure{},
		&fundrequest.FundRequest{},
		&salarypayment.SalaryPayment{},
		&vendors.Vendor{},
		&vendorpayment.VendorPayment{},
		&rbac.Grant{},
		&concern.Concern{},
		&attachment.Attachment{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return applySchema(ctx, db)
}

func applySchema(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d: %w", i, err)
		}
	}
	return nil
}

package report

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-payroll/internal/document"
	"go-payroll/internal/employee"
	"go-payroll/internal/organization"
	reporterrors "go-payroll/internal/report/errors"
	"go-payroll/internal/salarypayment"
	"go-payroll/internal/shared/period"
	"go-payroll/internal/vendorpayment"
	"go-payroll/internal/vendors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type File struct {
	Name string
	Data []byte
}

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	SalaryRegister(ctx context.Context, organizationID, month string, year int) (File, error)
	EmployeeList(ctx context.Context, organizationID string) (File, error)
	VendorPayments(ctx context.Context, organizationID string) (File, error)
	Publish(ctx context.Context, organizationID string, file File) (string, error)
}

type Deps struct {
	Organizations     organization.Repository
	Employees         employee.Repository
	SalaryPayments    salarypayment.Repository
	VendorPaymentRepo vendorpayment.Repository
	Vendors           vendors.Repository
	Store             document.Store
}

type service struct {
	Deps
	now    func() time.Time
	logger *zap.Logger
}

func NewService(deps Deps, logger ...*zap.Logger) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	if deps.Store == nil {
		deps.Store = document.NopStore{}
	}
	return &service{
		Deps:   deps,
		now:    func() time.Time { return time.Now().UTC() },
		logger: l,
	}
}

func (s *service) SalaryRegister(ctx context.Context, organizationID, month string, year int) (File, error) {
	m, err := period.NormalizeMonth(month)
	if err != nil {
		return File{}, reporterrors.ErrInvalidPeriod
	}
	if err := period.ValidateYear(year); err != nil {
		return File{}, reporterrors.ErrInvalidPeriod
	}
	org, err := s.organization(ctx, organizationID)
	if err != nil {
		return File{}, err
	}

	payments, err := s.SalaryPayments.FindAllByOrganizationPeriod(ctx, organizationID, m, year)
	if err != nil {
		s.logger.Error("load salary payments failed", zap.String("organization_id", organizationID), zap.Error(err))
		return File{}, err
	}
	empls, err := s.Employees.FindAllByOrganization(ctx, organizationID)
	if err != nil {
		return File{}, err
	}
	byID := make(map[string]employee.Employee, len(empls))
	for _, e := range empls {
		byID[e.ID.String()] = e
	}

	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.NetSalary)
	}

	wb, err := newWorkbook("Salary Register", 12)
	if err != nil {
		return File{}, err
	}
	defer wb.Close()

	if err := wb.title(fmt.Sprintf("SALARY REGISTER - %s %d", m, year)); err != nil {
		return File{}, err
	}
	if err := wb.title(org.Name); err != nil {
		return File{}, err
	}
	if err := wb.info(
		"Generated on: "+s.now().Format("02-01-2006 15:04:05"),
		fmt.Sprintf("Total Employees: %d", len(payments)),
		"Total Payout: "+total.StringFixed(2),
	); err != nil {
		return File{}, err
	}
	if err := wb.header(
		"Emp No", "Employee Name", "Department", "Basic Salary", "HRA", "DA",
		"Other Allow.", "Gross Salary", "PF", "Net Salary", "Payment Date", "Transaction ID",
	); err != nil {
		return File{}, err
	}

	money := map[int]bool{3: true, 4: true, 5: true, 6: true, 7: true, 8: true, 9: true}
	for i, p := range payments {
		e, ok := byID[p.EmployeeID.String()]
		number, name, dept := "-", "-", "-"
		if ok {
			number, name, dept = e.EmployeeNumber, e.FullName, e.Department
		}
		if err := wb.data(i, []interface{}{
			number,
			name,
			dept,
			p.BasicSalary.InexactFloat64(),
			p.HousingAllowance.InexactFloat64(),
			p.DearnessAllowance.InexactFloat64(),
			p.OtherAllowances.InexactFloat64(),
			p.GrossSalary.InexactFloat64(),
			p.ProvidentFund.InexactFloat64(),
			p.NetSalary.InexactFloat64(),
			p.PaymentDate.Format("02-01-2006"),
			p.TransactionID,
		}, money); err != nil {
			return File{}, err
		}
	}

	data, err := wb.bytes()
	if err != nil {
		return File{}, err
	}
	s.logger.Info("salary register generated",
		zap.String("organization_id", organizationID),
		zap.String("month", m),
		zap.Int("year", year),
		zap.Int("rows", len(payments)),
	)
	return File{
		Name: fmt.Sprintf("salary_register_%s_%s_%d.xlsx", fileSafe(org.Name), m, year),
		Data: data,
	}, nil
}

func (s *service) EmployeeList(ctx context.Context, organizationID string) (File, error) {
	org, err := s.organization(ctx, organizationID)
	if err != nil {
		return File{}, err
	}
	empls, err := s.Employees.FindAllByOrganization(ctx, organizationID)
	if err != nil {
		return File{}, err
	}

	wb, err := newWorkbook("Employees", 8)
	if err != nil {
		return File{}, err
	}
	defer wb.Close()

	if err := wb.title("EMPLOYEE LIST - " + org.Name); err != nil {
		return File{}, err
	}
	if err := wb.info(
		"Generated on: "+s.now().Format("02-01-2006 15:04:05"),
		fmt.Sprintf("Total Employees: %d", len(empls)),
	); err != nil {
		return File{}, err
	}
	if err := wb.header("Emp No", "Name", "Email", "Phone", "Department", "Designation", "Hire Date", "Status"); err != nil {
		return File{}, err
	}
	for i, e := range empls {
		if err := wb.data(i, []interface{}{
			e.EmployeeNumber,
			e.FullName,
			e.Email,
			e.Phone,
			e.Department,
			e.Designation,
			e.HireDate.Format("02-01-2006"),
			e.Status,
		}, nil); err != nil {
			return File{}, err
		}
	}

	data, err := wb.bytes()
	if err != nil {
		return File{}, err
	}
	return File{Name: fmt.Sprintf("employee_list_%s.xlsx", fileSafe(org.Name)), Data: data}, nil
}

func (s *service) VendorPayments(ctx context.Context, organizationID string) (File, error) {
	org, err := s.organization(ctx, organizationID)
	if err != nil {
		return File{}, err
	}
	payments, err := s.VendorPaymentRepo.FindAllByOrganization(ctx, organizationID)
	if err != nil {
		return File{}, err
	}
	vendorList, err := s.Vendors.FindAllByOrganization(ctx, organizationID)
	if err != nil {
		return File{}, err
	}
	names := make(map[string]string, len(vendorList))
	for _, v := range vendorList {
		names[v.ID.String()] = v.Name
	}

	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.Amount)
	}

	wb, err := newWorkbook("Vendor Payments", 8)
	if err != nil {
		return File{}, err
	}
	defer wb.Close()

	if err := wb.title("VENDOR PAYMENTS - " + org.Name); err != nil {
		return File{}, err
	}
	if err := wb.info(
		"Generated on: "+s.now().Format("02-01-2006 15:04:05"),
		fmt.Sprintf("Payments: %d", len(payments)),
		"Total Amount: "+total.StringFixed(2),
	); err != nil {
		return File{}, err
	}
	if err := wb.header("Vendor", "Invoice No", "Invoice Date", "Amount", "Payment Date", "Status", "Transaction ID", "Description"); err != nil {
		return File{}, err
	}
	for i, p := range payments {
		vendor := names[p.VendorID.String()]
		if vendor == "" {
			vendor = "-"
		}
		desc := ""
		if p.Description != nil {
			desc = *p.Description
		}
		if err := wb.data(i, []interface{}{
			vendor,
			p.InvoiceNumber,
			p.InvoiceDate.Format("02-01-2006"),
			p.Amount.InexactFloat64(),
			p.PaymentDate.Format("02-01-2006"),
			p.Status,
			p.TransactionID,
			desc,
		}, map[int]bool{3: true}); err != nil {
			return File{}, err
		}
	}

	data, err := wb.bytes()
	if err != nil {
		return File{}, err
	}
	return File{Name: fmt.Sprintf("vendor_payments_%s.xlsx", fileSafe(org.Name)), Data: data}, nil
}

func (s *service) Publish(ctx context.Context, organizationID string, file File) (string, error) {
	url, err := s.Store.Put(ctx, document.ReportKey(organizationID, file.Name), file.Data, ContentTypeXLSX)
	if err != nil {
		if errors.Is(err, document.ErrStoreNotConfigured) {
			return "", reporterrors.ErrStorageUnavailable
		}
		s.logger.Error("publish report failed",
			zap.String("organization_id", organizationID),
			zap.String("file", file.Name),
			zap.Error(err),
		)
		return "", err
	}
	return url, nil
}

func (s *service) organization(ctx context.Context, organizationID string) (*organization.Organization, error) {
	if organizationID == "" {
		return nil, reporterrors.ErrOrganizationRequired
	}
	org, err := s.Organizations.FindByID(ctx, organizationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, reporterrors.ErrOrganizationNotFound
		}
		return nil, err
	}
	return org, nil
}

func fileSafe(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			return r
		default:
			return '_'
		}
	}, strings.TrimSpace(name))
}

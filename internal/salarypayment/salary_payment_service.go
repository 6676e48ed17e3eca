package salarypayment

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-payroll/internal/document"
	"go-payroll/internal/employee"
	"go-payroll/internal/events"
	"go-payroll/internal/fundrequest"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/notification"
	"go-payroll/internal/organization"
	salarypaymenterrors "go-payroll/internal/salarypayment/errors"
	"go-payroll/internal/salarystructure"
	salarystructureerrors "go-payroll/internal/salarystructure/errors"
	"go-payroll/internal/shared/contextutil"
	"go-payroll/internal/shared/counter"
	"go-payroll/internal/shared/paymentstatus"
	"go-payroll/internal/shared/period"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const batchCompletedType = "salary_batch_completed"

//go:generate mockgen -source=salary_payment_service.go -destination=mock/salary_payment_service_mock.go -package=mock
type Service interface {
	Process(ctx context.Context, fundRequestID string) (BatchResult, error)
	Resume(ctx context.Context, fundRequestID string) (BatchResult, error)
	GetByID(ctx context.Context, organizationID, id string) (SalaryPaymentResponse, error)
	RenderSlip(ctx context.Context, organizationID, id string) ([]byte, error)
	ListByEmployee(ctx context.Context, organizationID, employeeID string, year *int) ([]SalaryPaymentResponse, error)
	ListByOrganizationPeriod(ctx context.Context, organizationID, month string, year int) ([]SalaryPaymentResponse, error)
	ListByFundRequest(ctx context.Context, organizationID, fundRequestID string) ([]SalaryPaymentResponse, error)
}

type Deps struct {
	DB            *sql.DB
	Repo          Repository
	FundRequests  fundrequest.Repository
	Organizations organization.Repository
	Employees     employee.Repository
	Structures    salarystructure.Resolver
	Counter       counter.Repository
	Renderer      document.Renderer
	Store         document.Store
	Notifier      notification.Notifier
	Outbox        kafka.OutboxRepository
}

type service struct {
	Deps
	now    func() time.Time
	logger *zap.Logger
}

func NewService(deps Deps, logger ...*zap.Logger) Service {
	l := zap.L().Named("salarypayment.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salarypayment.service")
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

// Process runs the disbursement batch for an APPROVED salary request.
func (s *service) Process(ctx context.Context, fundRequestID string) (BatchResult, error) {
	return s.run(ctx, fundRequestID, false)
}

// Resume re-enters a batch left in PROCESSING, or re-runs a COMPLETED one.
// Employees already paid for the period are skipped.
func (s *service) Resume(ctx context.Context, fundRequestID string) (BatchResult, error) {
	return s.run(ctx, fundRequestID, true)
}

func (s *service) run(ctx context.Context, fundRequestID string, resume bool) (BatchResult, error) {
	rid := contextutil.GetRequestID(ctx)
	log := s.logger.With(
		zap.String("request_id", rid),
		zap.String("fund_request_id", fundRequestID),
		zap.Bool("resume", resume),
	)
	log.Debug("salary batch requested")

	fr, org, err := s.start(ctx, fundRequestID, resume)
	if err != nil {
		log.Warn("salary batch not started", zap.Error(err))
		return BatchResult{}, err
	}

	employees, err := s.Employees.FindByOrganizationAndStatuses(ctx, org.ID.String(), employee.PayableStatuses)
	if err != nil {
		log.Error("salary batch load employees failed", zap.Error(err))
		return BatchResult{}, err
	}

	result := BatchResult{
		FundRequestID: fr.ID.String(),
		Records:       []SalaryPaymentResponse{},
		Outcomes:      make([]Outcome, 0, len(employees)),
		Summary:       Summary{Eligible: len(employees), TotalNet: decimal.Zero},
	}
	for _, empl := range employees {
		outcome, record, err := s.payEmployee(ctx, fr, org, empl)
		if err != nil {
			log.Error("salary batch aborted, request left in PROCESSING",
				zap.String("employee_id", empl.ID.String()),
				zap.Error(err),
			)
			return BatchResult{}, err
		}
		result.Outcomes = append(result.Outcomes, outcome)
		result.Summary.add(outcome)
		if record != nil {
			result.Records = append(result.Records, mapToResponse(*record))
			result.Summary.TotalNet = result.Summary.TotalNet.Add(record.Amount)
		}
	}

	status, err := s.finish(ctx, fr.ID.String(), result.Summary)
	if err != nil {
		log.Error("salary batch completion failed", zap.Error(err))
		return BatchResult{}, err
	}
	result.Status = status

	log.Info("salary batch completed",
		zap.Int("eligible", result.Summary.Eligible),
		zap.Int("created", result.Summary.Created),
		zap.Int("skipped", result.Summary.Skipped),
		zap.Int("warnings", result.Summary.Warnings),
	)
	return result, nil
}

// start locks the request, checks it can be run and flips APPROVED to PROCESSING.
func (s *service) start(ctx context.Context, fundRequestID string, resume bool) (*fundrequest.FundRequest, *organization.Organization, error) {
	if _, err := uuid.Parse(fundRequestID); err != nil {
		return nil, nil, salarypaymenterrors.ErrFundRequestNotFound
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, err
	}
	defer tx.Rollback()

	qtx := s.FundRequests.WithTx(tx)
	fr, err := qtx.FindByIDForUpdate(ctx, fundRequestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, salarypaymenterrors.ErrFundRequestNotFound
		}
		return nil, nil, err
	}
	if fr.RequestType != fundrequest.TypeSalaryDisbursement {
		return nil, nil, salarypaymenterrors.ErrNotSalaryRequest
	}

	switch fr.Status {
	case fundrequest.StatusApproved:
	case fundrequest.StatusProcessing:
		if !resume {
			return nil, nil, salarypaymenterrors.ErrBatchInProgress
		}
	case fundrequest.StatusCompleted:
		if !resume {
			return nil, nil, salarypaymenterrors.ErrNotApproved
		}
	default:
		return nil, nil, salarypaymenterrors.ErrNotApproved
	}

	org, err := s.Organizations.FindByID(ctx, fr.OrganizationID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, salarypaymenterrors.ErrOrganizationNotFound
		}
		return nil, nil, err
	}

	if fr.Status == fundrequest.StatusApproved {
		if err := fr.TransitionTo(fundrequest.StatusProcessing); err != nil {
			return nil, nil, err
		}
		if err := qtx.Update(ctx, fr); err != nil {
			return nil, nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, err
	}
	return fr, org, nil
}

// payEmployee returns an error only for storage failures that should stop the batch.
func (s *service) payEmployee(
	ctx context.Context,
	fr *fundrequest.FundRequest,
	org *organization.Organization,
	empl employee.Employee,
) (Outcome, *SalaryPayment, error) {
	outcome := Outcome{
		EmployeeID:     empl.ID.String(),
		EmployeeNumber: empl.EmployeeNumber,
		Result:         OutcomeSkipped,
	}

	paid, err := s.Repo.ExistsForPeriod(ctx, empl.ID.String(), fr.Month, fr.Year)
	if err != nil {
		return outcome, nil, err
	}
	if paid {
		outcome.Reason = ReasonAlreadyPaid
		return outcome, nil, nil
	}

	structure, err := s.Structures.ResolveActive(ctx, empl.ID.String())
	if errors.Is(err, salarystructureerrors.ErrActiveStructureNotFound) || (err == nil && !structure.IsActive) {
		outcome.Reason = ReasonNoActiveStructure
		return outcome, nil, nil
	}
	if err != nil {
		return outcome, nil, err
	}

	seq, err := s.Counter.GetNextValue(ctx, org.ID.String(), counter.TypeSalaryTransaction)
	if err != nil {
		return outcome, nil, err
	}

	record := &SalaryPayment{
		ID:                uuid.New(),
		OrganizationID:    org.ID,
		EmployeeID:        empl.ID,
		FundRequestID:     fr.ID,
		Month:             fr.Month,
		Year:              fr.Year,
		BasicSalary:       structure.BasicSalary,
		HousingAllowance:  structure.HousingAllowance,
		DearnessAllowance: structure.DearnessAllowance,
		OtherAllowances:   structure.OtherAllowances,
		ProvidentFund:     structure.ProvidentFund,
		GrossSalary:       structure.GrossSalary,
		NetSalary:         structure.NetSalary,
		Amount:            structure.NetSalary,
		PaymentDate:       s.now(),
		Status:            paymentstatus.Completed,
		TransactionID:     counter.TransactionID("TXN", period.Key(fr.Month, fr.Year), org.ID.String(), seq),
	}
	if err := s.Repo.Create(ctx, record); err != nil {
		if isDuplicatePayment(err) {
			outcome.Reason = ReasonDuplicateOnInsert
			return outcome, nil, nil
		}
		return outcome, nil, err
	}

	outcome.Result = OutcomeCreated
	outcome.SalaryPaymentID = record.ID.String()
	if reason := s.deliverSlip(ctx, org, empl, record); reason != "" {
		outcome.Result = OutcomeWarning
		outcome.Reason = reason
	}
	return outcome, record, nil
}

// deliverSlip stores the slip and announces the payment. The record is already durable,
// so failures here become warning reasons and are never returned. The notification
// goes out even when the slip could not be stored, just without an attachment.
func (s *service) deliverSlip(
	ctx context.Context,
	org *organization.Organization,
	empl employee.Employee,
	record *SalaryPayment,
) string {
	log := s.logger.With(
		zap.String("salary_payment_id", record.ID.String()),
		zap.String("employee_id", empl.ID.String()),
	)

	var reasons []string
	url, reason := s.storeSlip(ctx, log, org, empl, record)
	if reason != "" {
		reasons = append(reasons, reason)
	}
	if reason := s.notifyCredited(ctx, log, org, empl, record, url); reason != "" {
		reasons = append(reasons, reason)
	}
	return strings.Join(reasons, reasonSeparator)
}

func (s *service) storeSlip(
	ctx context.Context,
	log *zap.Logger,
	org *organization.Organization,
	empl employee.Employee,
	record *SalaryPayment,
) (string, string) {
	pdf, err := s.Renderer.RenderSalarySlip(buildSlip(org, empl, record))
	if err != nil {
		log.Warn("salary slip render failed", zap.Error(err))
		return "", ReasonSlipRenderFailed
	}

	key := document.SalarySlipKey(org.ID.String(), period.Key(record.Month, record.Year), record.TransactionID)
	url, err := s.Store.Put(ctx, key, pdf, document.ContentTypePDF)
	if err != nil {
		log.Warn("salary slip store failed", zap.Error(err))
		return "", ReasonSlipStoreFailed
	}

	if err := s.Repo.UpdateSlip(ctx, record.ID.String(), url); err != nil {
		log.Warn("salary slip url persist failed", zap.Error(err))
		return "", ReasonSlipPersistFailed
	}
	record.SlipURL = &url
	return url, ""
}

func (s *service) notifyCredited(
	ctx context.Context,
	log *zap.Logger,
	org *organization.Organization,
	empl employee.Employee,
	record *SalaryPayment,
	slipURL string,
) string {
	if s.Notifier == nil {
		return ""
	}
	err := s.Notifier.Notify(ctx, notification.Message{
		Kind:          notification.KindSalaryCredited,
		AggregateType: "salary_payment",
		AggregateID:   record.ID.String(),
		Recipient:     empl.Email,
		Subject:       fmt.Sprintf("Salary credited for %s %d", record.Month, record.Year),
		Body: fmt.Sprintf("Dear %s, your salary of %s for %s %d has been credited by %s. Transaction ID: %s.",
			empl.FullName, record.Amount.StringFixed(2), record.Month, record.Year, org.Name, record.TransactionID),
		AttachmentURL: slipURL,
	})
	if err != nil {
		log.Warn("salary notification failed", zap.Error(err))
		return ReasonNotificationFailed
	}
	return ""
}

// finish marks the request COMPLETED, stores the summary and queues the
// batch-completed event in the same transaction.
func (s *service) finish(ctx context.Context, fundRequestID string, summary Summary) (string, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	qtx := s.FundRequests.WithTx(tx)
	fr, err := qtx.FindByIDForUpdate(ctx, fundRequestID)
	if err != nil {
		return "", err
	}
	if fr.Status == fundrequest.StatusProcessing {
		if err := fr.TransitionTo(fundrequest.StatusCompleted); err != nil {
			return "", err
		}
	}

	raw, err := json.Marshal(summary)
	if err != nil {
		return "", err
	}
	now := s.now()
	fr.ProcessingSummary = datatypes.JSON(raw)
	fr.ProcessedAt = &now
	if err := qtx.Update(ctx, fr); err != nil {
		return "", err
	}

	if s.Outbox != nil {
		rid := contextutil.GetRequestID(ctx)
		payload, err := json.Marshal(events.SalaryBatchCompletedEvent{
			EventType:      batchCompletedType,
			RequestID:      rid,
			FundRequestID:  fr.ID.String(),
			OrganizationID: fr.OrganizationID.String(),
			Month:          fr.Month,
			Year:           fr.Year,
			Created:        summary.Created,
			Skipped:        summary.Skipped,
			Warnings:       summary.Warnings,
			OccurredAt:     now,
		})
		if err != nil {
			return "", err
		}
		if err := s.Outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "fund_request",
			AggregateID:   fr.ID.String(),
			EventType:     batchCompletedType,
			Topic:         events.SalaryBatchCompletedTopic,
			Payload:       payload,
		}); err != nil {
			return "", err
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return fr.Status, nil
}

func (s *service) GetByID(ctx context.Context, organizationID, id string) (SalaryPaymentResponse, error) {
	p, err := s.find(ctx, organizationID, id)
	if err != nil {
		return SalaryPaymentResponse{}, err
	}
	return mapToResponse(*p), nil
}

func (s *service) RenderSlip(ctx context.Context, organizationID, id string) ([]byte, error) {
	p, err := s.find(ctx, organizationID, id)
	if err != nil {
		return nil, err
	}

	empl, err := s.Employees.FindByID(ctx, p.EmployeeID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, salarypaymenterrors.ErrEmployeeNotFound
		}
		return nil, err
	}
	org, err := s.Organizations.FindByID(ctx, p.OrganizationID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, salarypaymenterrors.ErrOrganizationNotFound
		}
		return nil, err
	}

	pdf, err := s.Renderer.RenderSalarySlip(buildSlip(org, *empl, p))
	if err != nil {
		s.logger.Error("render salary slip failed", zap.String("salary_payment_id", id), zap.Error(err))
		return nil, err
	}
	return pdf, nil
}

func (s *service) ListByEmployee(ctx context.Context, organizationID, employeeID string, year *int) ([]SalaryPaymentResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, salarypaymenterrors.ErrInvalidEmployeeID
	}
	if organizationID != "" {
		if _, err := s.Employees.FindByIDAndOrganization(ctx, organizationID, employeeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, salarypaymenterrors.ErrEmployeeNotFound
			}
			return nil, err
		}
	}

	payments, err := s.Repo.FindAllByEmployee(ctx, employeeID, year)
	if err != nil {
		s.logger.Error("list salary payments by employee failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}
	return mapToListResponse(payments), nil
}

func (s *service) ListByOrganizationPeriod(ctx context.Context, organizationID, month string, year int) ([]SalaryPaymentResponse, error) {
	m, err := period.NormalizeMonth(month)
	if err != nil {
		return nil, salarypaymenterrors.ErrInvalidPeriod
	}
	if err := period.ValidateYear(year); err != nil {
		return nil, salarypaymenterrors.ErrInvalidPeriod
	}

	payments, err := s.Repo.FindAllByOrganizationPeriod(ctx, organizationID, m, year)
	if err != nil {
		s.logger.Error("list salary payments by period failed", zap.String("organization_id", organizationID), zap.Error(err))
		return nil, err
	}
	return mapToListResponse(payments), nil
}

func (s *service) ListByFundRequest(ctx context.Context, organizationID, fundRequestID string) ([]SalaryPaymentResponse, error) {
	if _, err := uuid.Parse(fundRequestID); err != nil {
		return nil, salarypaymenterrors.ErrFundRequestNotFound
	}

	var err error
	if organizationID == "" {
		_, err = s.FundRequests.FindByID(ctx, fundRequestID)
	} else {
		_, err = s.FundRequests.FindByIDAndOrganization(ctx, organizationID, fundRequestID)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, salarypaymenterrors.ErrFundRequestNotFound
		}
		return nil, err
	}

	payments, err := s.Repo.FindAllByFundRequest(ctx, fundRequestID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(payments), nil
}

func (s *service) find(ctx context.Context, organizationID, id string) (*SalaryPayment, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, salarypaymenterrors.ErrInvalidSalaryPaymentID
	}
	p, err := s.Repo.FindByID(ctx, organizationID, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return p, nil
}

func buildSlip(org *organization.Organization, empl employee.Employee, p *SalaryPayment) document.SalarySlip {
	return document.SalarySlip{
		OrganizationName:  org.Name,
		EmployeeName:      empl.FullName,
		EmployeeNumber:    empl.EmployeeNumber,
		Designation:       empl.Designation,
		BankAccountNumber: empl.BankAccountNumber,
		BankName:          empl.BankName,
		Month:             p.Month,
		Year:              p.Year,
		TransactionID:     p.TransactionID,
		PaymentDate:       p.PaymentDate,
		BasicSalary:       p.BasicSalary,
		HousingAllowance:  p.HousingAllowance,
		DearnessAllowance: p.DearnessAllowance,
		OtherAllowances:   p.OtherAllowances,
		GrossSalary:       p.GrossSalary,
		ProvidentFund:     p.ProvidentFund,
		NetSalary:         p.NetSalary,
	}
}

func mapToResponse(p SalaryPayment) SalaryPaymentResponse {
	return SalaryPaymentResponse{
		ID:                p.ID.String(),
		OrganizationID:    p.OrganizationID.String(),
		EmployeeID:        p.EmployeeID.String(),
		FundRequestID:     p.FundRequestID.String(),
		Month:             p.Month,
		Year:              p.Year,
		BasicSalary:       p.BasicSalary,
		HousingAllowance:  p.HousingAllowance,
		DearnessAllowance: p.DearnessAllowance,
		OtherAllowances:   p.OtherAllowances,
		ProvidentFund:     p.ProvidentFund,
		GrossSalary:       p.GrossSalary,
		NetSalary:         p.NetSalary,
		Amount:            p.Amount,
		PaymentDate:       p.PaymentDate.Format("2006-01-02"),
		Status:            p.Status,
		TransactionID:     p.TransactionID,
		SlipURL:           p.SlipURL,
		CreatedAt:         p.CreatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(payments []SalaryPayment) []SalaryPaymentResponse {
	resp := make([]SalaryPaymentResponse, len(payments))
	for i, p := range payments {
		resp[i] = mapToResponse(p)
	}
	return resp
}

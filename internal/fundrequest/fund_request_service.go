package fundrequest

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	fundrequesterrors "go-payroll/internal/fundrequest/errors"
	"go-payroll/internal/notification"
	"go-payroll/internal/organization"
	"go-payroll/internal/shared/contextutil"
	"go-payroll/internal/shared/period"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=fund_request_service.go -destination=mock/fund_request_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, organizationID, actorID string, req CreateFundRequestRequest) (FundRequestResponse, error)
	GetByID(ctx context.Context, organizationID, id string) (FundRequestResponse, error)
	GetAllByOrganization(ctx context.Context, organizationID string) ([]FundRequestResponse, error)
	GetAll(ctx context.Context, status string) ([]FundRequestResponse, error)
	Approve(ctx context.Context, id, approverID string) (FundRequestResponse, error)
	Reject(ctx context.Context, id, approverID, reason string) (FundRequestResponse, error)
	Delete(ctx context.Context, organizationID, id string) error
}

type service struct {
	db            *sql.DB
	repo          Repository
	organizations organization.Repository
	notifier      notification.Notifier
	logger        *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	organizations organization.Repository,
	notifier notification.Notifier,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("fundrequest.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("fundrequest.service")
	}
	return &service{
		db:            db,
		repo:          repo,
		organizations: organizations,
		notifier:      notifier,
		logger:        l,
	}
}

func (s *service) Create(
	ctx context.Context,
	organizationID, actorID string,
	req CreateFundRequestRequest,
) (FundRequestResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create fund request requested",
		zap.String("request_id", rid),
		zap.String("organization_id", organizationID),
		zap.String("request_type", req.RequestType),
		zap.String("month", req.Month),
		zap.Int("year", req.Year),
	)

	org, err := organization.LoadVerified(ctx, s.organizations, organizationID)
	if err != nil {
		return FundRequestResponse{}, err
	}

	if !IsValidType(req.RequestType) {
		return FundRequestResponse{}, fundrequesterrors.ErrInvalidRequestType
	}
	if !req.TotalAmount.IsPositive() {
		return FundRequestResponse{}, fundrequesterrors.ErrInvalidAmount
	}
	month, err := period.NormalizeMonth(req.Month)
	if err != nil {
		return FundRequestResponse{}, fundrequesterrors.ErrInvalidMonth
	}
	if err := period.ValidateYear(req.Year); err != nil {
		return FundRequestResponse{}, fundrequesterrors.ErrInvalidYear
	}

	fr := &FundRequest{
		ID:             uuid.New(),
		OrganizationID: org.ID,
		RequestType:    req.RequestType,
		TotalAmount:    req.TotalAmount.Round(2),
		EmployeeCount:  req.EmployeeCount,
		Month:          month,
		Year:           req.Year,
		Status:         StatusPending,
	}
	if r := strings.TrimSpace(req.Remarks); r != "" {
		fr.Remarks = &r
	}
	if actor, err := uuid.Parse(actorID); err == nil {
		fr.CreatedBy = &actor
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create fund request begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return FundRequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if fr.RequestType == TypeSalaryDisbursement {
		exists, err := qtx.HasActiveSalaryRequest(ctx, organizationID, month, req.Year)
		if err != nil {
			s.logger.Error("create fund request duplicate check failed", zap.Error(err))
			return FundRequestResponse{}, err
		}
		if exists {
			s.logger.Warn("create fund request duplicate salary period",
				zap.String("organization_id", organizationID),
				zap.String("month", month),
				zap.Int("year", req.Year),
			)
			return FundRequestResponse{}, fundrequesterrors.ErrDuplicateRequest
		}
	}

	if err := qtx.Create(ctx, fr); err != nil {
		s.logger.Warn("create fund request persist failed", zap.String("request_id", rid), zap.Error(err))
		return FundRequestResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create fund request commit failed", zap.String("request_id", rid), zap.Error(err))
		return FundRequestResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("fund request created",
		zap.String("request_id", rid),
		zap.String("fund_request_id", fr.ID.String()),
		zap.String("organization_id", organizationID),
	)
	return mapToResponse(*fr), nil
}

func (s *service) GetByID(ctx context.Context, organizationID, id string) (FundRequestResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return FundRequestResponse{}, fundrequesterrors.ErrInvalidFundRequestID
	}

	var (
		fr  *FundRequest
		err error
	)
	if organizationID == "" {
		fr, err = s.repo.FindByID(ctx, id)
	} else {
		fr, err = s.repo.FindByIDAndOrganization(ctx, organizationID, id)
	}
	if err != nil {
		return FundRequestResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*fr), nil
}

func (s *service) GetAllByOrganization(ctx context.Context, organizationID string) ([]FundRequestResponse, error) {
	frs, err := s.repo.FindAllByOrganization(ctx, organizationID)
	if err != nil {
		s.logger.Error("list fund requests failed", zap.String("organization_id", organizationID), zap.Error(err))
		return nil, err
	}
	return mapToListResponse(frs), nil
}

func (s *service) GetAll(ctx context.Context, status string) ([]FundRequestResponse, error) {
	status = strings.ToUpper(strings.TrimSpace(status))
	if status != "" && !IsValidStatus(status) {
		return nil, fundrequesterrors.ErrInvalidStatus
	}
	frs, err := s.repo.FindAll(ctx, status)
	if err != nil {
		s.logger.Error("list fund requests by status failed", zap.String("status", status), zap.Error(err))
		return nil, err
	}
	return mapToListResponse(frs), nil
}

func (s *service) Approve(ctx context.Context, id, approverID string) (FundRequestResponse, error) {
	return s.decide(ctx, id, approverID, StatusApproved, "")
}

func (s *service) Reject(ctx context.Context, id, approverID, reason string) (FundRequestResponse, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return FundRequestResponse{}, fundrequesterrors.ErrRejectionReasonRequired
	}
	return s.decide(ctx, id, approverID, StatusRejected, reason)
}

func (s *service) decide(ctx context.Context, id, approverID, target, reason string) (FundRequestResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("fund request decision requested",
		zap.String("request_id", rid),
		zap.String("fund_request_id", id),
		zap.String("approver_id", approverID),
		zap.String("target_status", target),
	)

	if _, err := uuid.Parse(id); err != nil {
		return FundRequestResponse{}, fundrequesterrors.ErrInvalidFundRequestID
	}
	approver, err := uuid.Parse(approverID)
	if err != nil {
		return FundRequestResponse{}, fundrequesterrors.ErrInvalidApproverID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("fund request decision begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return FundRequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	fr, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		return FundRequestResponse{}, mapRepositoryError(err)
	}
	if fr.Status != StatusPending {
		s.logger.Warn("fund request already processed",
			zap.String("fund_request_id", id),
			zap.String("status", fr.Status),
			zap.String("target_status", target),
		)
		return FundRequestResponse{}, fundrequesterrors.ErrAlreadyProcessed
	}
	if err := fr.TransitionTo(target); err != nil {
		return FundRequestResponse{}, err
	}

	now := time.Now().UTC()
	fr.ApprovedBy = &approver
	fr.ApprovedAt = &now
	fr.RejectionReason = nil
	if target == StatusRejected {
		fr.RejectionReason = &reason
	}

	if err := qtx.Update(ctx, fr); err != nil {
		s.logger.Error("fund request decision persist failed", zap.String("fund_request_id", id), zap.Error(err))
		return FundRequestResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("fund request decision commit failed", zap.String("fund_request_id", id), zap.Error(err))
		return FundRequestResponse{}, err
	}

	s.logger.Info("fund request decided",
		zap.String("request_id", rid),
		zap.String("fund_request_id", id),
		zap.String("status", fr.Status),
	)
	s.notifyDecision(ctx, *fr)

	return mapToResponse(*fr), nil
}

func (s *service) Delete(ctx context.Context, organizationID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fundrequesterrors.ErrInvalidFundRequestID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	fr, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if organizationID != "" && fr.OrganizationID.String() != organizationID {
		return fundrequesterrors.ErrFundRequestNotFound
	}
	if !fr.Deletable() {
		s.logger.Warn("delete fund request blocked", zap.String("fund_request_id", id), zap.String("status", fr.Status))
		return fundrequesterrors.ErrCannotDelete
	}

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete fund request failed", zap.String("fund_request_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.Info("fund request deleted", zap.String("fund_request_id", id))
	return nil
}

// notifyDecision runs after commit. Failures never undo the decision.
func (s *service) notifyDecision(ctx context.Context, fr FundRequest) {
	if s.notifier == nil {
		return
	}

	org, err := s.organizations.FindByID(ctx, fr.OrganizationID.String())
	if err != nil {
		s.logger.Warn("fund request notification skipped, organization lookup failed",
			zap.String("fund_request_id", fr.ID.String()),
			zap.Error(err),
		)
		return
	}

	label := fmt.Sprintf("%s request for %s %d (%s)",
		strings.ReplaceAll(strings.ToLower(fr.RequestType), "_", " "), fr.Month, fr.Year, fr.TotalAmount.StringFixed(2))
	msg := notification.Message{
		AggregateType: "fund_request",
		AggregateID:   fr.ID.String(),
		Recipient:     org.Email,
	}
	if fr.Status == StatusApproved {
		msg.Kind = notification.KindFundRequestApproved
		msg.Subject = "Fund request approved"
		msg.Body = "Dear " + org.Name + ", your " + label + " has been approved."
	} else {
		msg.Kind = notification.KindFundRequestRejected
		msg.Subject = "Fund request rejected"
		msg.Body = "Dear " + org.Name + ", your " + label + " has been rejected."
		if fr.RejectionReason != nil {
			msg.Body += " Reason: " + *fr.RejectionReason
		}
	}

	if err := s.notifier.Notify(ctx, msg); err != nil {
		s.logger.Warn("fund request notification failed",
			zap.String("fund_request_id", fr.ID.String()),
			zap.Error(err),
		)
	}
}

func mapToResponse(fr FundRequest) FundRequestResponse {
	resp := FundRequestResponse{
		ID:              fr.ID.String(),
		OrganizationID:  fr.OrganizationID.String(),
		RequestType:     fr.RequestType,
		TotalAmount:     fr.TotalAmount,
		EmployeeCount:   fr.EmployeeCount,
		Month:           fr.Month,
		Year:            fr.Year,
		Status:          fr.Status,
		Remarks:         fr.Remarks,
		RejectionReason: fr.RejectionReason,
		CreatedAt:       fr.CreatedAt.Format(time.RFC3339),
	}
	if fr.ApprovedBy != nil {
		v := fr.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	if fr.ApprovedAt != nil {
		v := fr.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &v
	}
	if len(fr.ProcessingSummary) > 0 {
		resp.ProcessingSummary = []byte(fr.ProcessingSummary)
	}
	if fr.ProcessedAt != nil {
		v := fr.ProcessedAt.Format(time.RFC3339)
		resp.ProcessedAt = &v
	}
	return resp
}

func mapToListResponse(frs []FundRequest) []FundRequestResponse {
	resp := make([]FundRequestResponse, len(frs))
	for i, fr := range frs {
		resp[i] = mapToResponse(fr)
	}
	return resp
}

package concern

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"go-payroll/internal/attachment"
	concernerrors "go-payroll/internal/concern/errors"
	"go-payroll/internal/employee"
	employeeerrors "go-payroll/internal/employee/errors"
	"go-payroll/internal/notification"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=concern_service.go -destination=mock/concern_service_mock.go -package=mock
type Service interface {
	Raise(ctx context.Context, organizationID, employeeID string, req RaiseConcernRequest) (ConcernResponse, error)
	ListMine(ctx context.Context, organizationID, employeeID string) ([]ConcernResponse, error)
	GetMine(ctx context.Context, organizationID, employeeID, id string) (ConcernResponse, error)
	Withdraw(ctx context.Context, organizationID, employeeID, id string) error
	Attach(ctx context.Context, organizationID, employeeID, id string, file attachment.File) (ConcernResponse, error)
	List(ctx context.Context, organizationID, status string) ([]ConcernResponse, error)
	GetByID(ctx context.Context, organizationID, id string) (ConcernResponse, error)
	Respond(ctx context.Context, organizationID, responderID, id string, req RespondRequest) (ConcernResponse, error)
	UpdateStatus(ctx context.Context, organizationID, id string, req UpdateStatusRequest) (ConcernResponse, error)
	Close(ctx context.Context, organizationID, id string) (ConcernResponse, error)
}

type service struct {
	db          *sql.DB
	repo        Repository
	employees   employee.Repository
	attachments attachment.Service
	notifier    notification.Notifier
	logger      *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	employees employee.Repository,
	attachments attachment.Service,
	notifier notification.Notifier,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("concern.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("concern.service")
	}
	return &service{
		db:          db,
		repo:        repo,
		employees:   employees,
		attachments: attachments,
		notifier:    notifier,
		logger:      l,
	}
}

func (s *service) Raise(ctx context.Context, organizationID, employeeID string, req RaiseConcernRequest) (ConcernResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return ConcernResponse{}, apperror.ErrForbidden
	}
	empl, err := s.employees.FindByIDAndOrganization(ctx, organizationID, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ConcernResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return ConcernResponse{}, err
	}

	priority := req.Priority
	if priority == "" {
		priority = PriorityMedium
	}
	now := time.Now().UTC()
	c := &Concern{
		ID:             uuid.New(),
		OrganizationID: empl.OrganizationID,
		EmployeeID:     empl.ID,
		Subject:        strings.TrimSpace(req.Subject),
		Description:    strings.TrimSpace(req.Description),
		Priority:       priority,
		Status:         StatusOpen,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		s.logger.Error("raise concern failed", zap.String("employee_id", employeeID), zap.Error(err))
		return ConcernResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("concern raised",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("concern_id", c.ID.String()),
		zap.String("employee_id", employeeID),
		zap.String("priority", priority),
	)
	return mapToResponse(*c), nil
}

func (s *service) ListMine(ctx context.Context, organizationID, employeeID string) ([]ConcernResponse, error) {
	items, err := s.repo.FindByEmployee(ctx, organizationID, employeeID)
	if err != nil {
		s.logger.Error("list employee concerns failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}
	return mapToResponses(items), nil
}

func (s *service) GetMine(ctx context.Context, organizationID, employeeID, id string) (ConcernResponse, error) {
	c, err := s.findOwned(ctx, organizationID, employeeID, id)
	if err != nil {
		return ConcernResponse{}, err
	}
	return mapToResponse(*c), nil
}

// Withdraw soft-deletes the caller's own concern.
func (s *service) Withdraw(ctx context.Context, organizationID, employeeID, id string) error {
	if _, err := s.findOwned(ctx, organizationID, employeeID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("withdraw concern failed", zap.String("concern_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}
	s.logger.Info("concern withdrawn", zap.String("concern_id", id), zap.String("employee_id", employeeID))
	return nil
}

// Attach stores the file and points the concern at it; earlier uploads stay listed as attachments.
func (s *service) Attach(ctx context.Context, organizationID, employeeID, id string, file attachment.File) (ConcernResponse, error) {
	c, err := s.findOwned(ctx, organizationID, employeeID, id)
	if err != nil {
		return ConcernResponse{}, err
	}
	if c.Status == StatusClosed {
		return ConcernResponse{}, concernerrors.ErrAttachToClosed
	}

	uploaded, err := s.attachments.Upload(ctx, attachment.Upload{
		OrganizationID: organizationID,
		EntityType:     attachment.EntityConcern,
		EntityID:       id,
		DocumentType:   attachment.TypeConcernAttachment,
		UploadedBy:     employeeID,
		File:           file,
	})
	if err != nil {
		return ConcernResponse{}, err
	}

	updated, err := s.mutate(ctx, organizationID, id, func(c *Concern) error {
		if c.Status == StatusClosed {
			return concernerrors.ErrAttachToClosed
		}
		c.AttachmentURL = &uploaded.URL
		return nil
	})
	if err != nil {
		return ConcernResponse{}, err
	}
	return mapToResponse(*updated), nil
}

func (s *service) List(ctx context.Context, organizationID, status string) ([]ConcernResponse, error) {
	if status != "" && !IsValidStatus(status) {
		return nil, concernerrors.ErrInvalidStatus
	}
	items, err := s.repo.FindByOrganization(ctx, organizationID, status)
	if err != nil {
		s.logger.Error("list organization concerns failed", zap.String("organization_id", organizationID), zap.Error(err))
		return nil, err
	}
	return mapToResponses(items), nil
}

func (s *service) GetByID(ctx context.Context, organizationID, id string) (ConcernResponse, error) {
	c, err := s.find(ctx, organizationID, id)
	if err != nil {
		return ConcernResponse{}, err
	}
	return mapToResponse(*c), nil
}

// Respond records the organization's answer and moves the concern to IN_PROGRESS.
func (s *service) Respond(
	ctx context.Context,
	organizationID, responderID, id string,
	req RespondRequest,
) (ConcernResponse, error) {
	text := strings.TrimSpace(req.Response)
	updated, err := s.mutate(ctx, organizationID, id, func(c *Concern) error {
		if c.Status == StatusClosed {
			return concernerrors.ErrConcernClosed
		}
		now := time.Now().UTC()
		c.Response = &text
		c.RespondedAt = &now
		c.RespondedBy = nil
		if responder, err := uuid.Parse(responderID); err == nil {
			c.RespondedBy = &responder
		}
		c.Status = StatusInProgress
		return nil
	})
	if err != nil {
		return ConcernResponse{}, err
	}

	s.logger.Info("concern responded", zap.String("concern_id", id), zap.String("responder_id", responderID))
	s.notifyResponded(ctx, *updated)
	return mapToResponse(*updated), nil
}

func (s *service) UpdateStatus(ctx context.Context, organizationID, id string, req UpdateStatusRequest) (ConcernResponse, error) {
	if !IsValidStatus(req.Status) {
		return ConcernResponse{}, concernerrors.ErrInvalidStatus
	}
	updated, err := s.mutate(ctx, organizationID, id, func(c *Concern) error {
		return transition(c, req.Status)
	})
	if err != nil {
		return ConcernResponse{}, err
	}
	s.logger.Info("concern status updated", zap.String("concern_id", id), zap.String("status", req.Status))
	return mapToResponse(*updated), nil
}

func (s *service) Close(ctx context.Context, organizationID, id string) (ConcernResponse, error) {
	updated, err := s.mutate(ctx, organizationID, id, func(c *Concern) error {
		return transition(c, StatusClosed)
	})
	if err != nil {
		return ConcernResponse{}, err
	}
	s.logger.Info("concern closed", zap.String("concern_id", id))
	return mapToResponse(*updated), nil
}

// transition enforces that CLOSED is terminal and only reachable once answered.
func transition(c *Concern, status string) error {
	if c.Status == StatusClosed && status != StatusClosed {
		return concernerrors.ErrCannotReopen
	}
	if status == StatusClosed && !c.HasResponse() {
		return concernerrors.ErrCloseWithoutResponse
	}
	c.Status = status
	return nil
}

// mutate applies fn to the locked row and persists it in one transaction.
func (s *service) mutate(ctx context.Context, organizationID, id string, fn func(c *Concern) error) (*Concern, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, concernerrors.ErrInvalidConcernID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("concern begin tx failed", zap.String("concern_id", id), zap.Error(err))
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	c, err := qtx.FindByIDForUpdate(ctx, organizationID, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	if err := fn(c); err != nil {
		return nil, err
	}
	if err := qtx.Update(ctx, c); err != nil {
		s.logger.Error("update concern failed", zap.String("concern_id", id), zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("concern commit failed", zap.String("concern_id", id), zap.Error(err))
		return nil, err
	}
	return c, nil
}

func (s *service) find(ctx context.Context, organizationID, id string) (*Concern, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, concernerrors.ErrInvalidConcernID
	}
	c, err := s.repo.FindByID(ctx, organizationID, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return c, nil
}

// findOwned hides concerns raised by other employees behind NOT_FOUND.
func (s *service) findOwned(ctx context.Context, organizationID, employeeID, id string) (*Concern, error) {
	c, err := s.find(ctx, organizationID, id)
	if err != nil {
		return nil, err
	}
	if c.EmployeeID.String() != employeeID {
		return nil, concernerrors.ErrConcernNotFound
	}
	return c, nil
}

func (s *service) notifyResponded(ctx context.Context, c Concern) {
	if s.notifier == nil {
		return
	}

	empl, err := s.employees.FindByIDAndOrganization(ctx, c.OrganizationID.String(), c.EmployeeID.String())
	if err != nil {
		s.logger.Warn("concern response notification skipped, employee lookup failed",
			zap.String("concern_id", c.ID.String()),
			zap.Error(err),
		)
		return
	}

	msg := notification.Message{
		Kind:          notification.KindConcernResponded,
		AggregateType: "concern",
		AggregateID:   c.ID.String(),
		Recipient:     empl.Email,
		Subject:       "Response to your concern: " + c.Subject,
		Body:          "Dear " + empl.FullName + ", your concern \"" + c.Subject + "\" has received a response: " + *c.Response,
	}
	if err := s.notifier.Notify(ctx, msg); err != nil {
		s.logger.Warn("concern response notification failed",
			zap.String("concern_id", c.ID.String()),
			zap.Error(err),
		)
	}
}

func mapToResponses(items []Concern) []ConcernResponse {
	resp := make([]ConcernResponse, 0, len(items))
	for _, c := range items {
		resp = append(resp, mapToResponse(c))
	}
	return resp
}

func mapToResponse(c Concern) ConcernResponse {
	resp := ConcernResponse{
		ID:            c.ID.String(),
		EmployeeID:    c.EmployeeID.String(),
		Subject:       c.Subject,
		Description:   c.Description,
		Priority:      c.Priority,
		Status:        c.Status,
		AttachmentURL: c.AttachmentURL,
		Response:      c.Response,
		RaisedAt:      c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     c.UpdatedAt.Format(time.RFC3339),
	}
	if c.RespondedAt != nil {
		v := c.RespondedAt.Format(time.RFC3339)
		resp.RespondedAt = &v
	}
	return resp
}

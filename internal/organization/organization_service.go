package organization

import (
	"context"
	"strings"
	"time"

	"go-payroll/internal/notification"
	organizationerrors "go-payroll/internal/organization/errors"
	"go-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=organization_service.go -destination=mock/organization_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterOrganizationRequest) (OrganizationResponse, error)
	GetByID(ctx context.Context, id string) (OrganizationResponse, error)
	List(ctx context.Context, verified *bool) ([]OrganizationResponse, error)
	Verify(ctx context.Context, id string, req VerificationRequest) (OrganizationResponse, error)
	RejectVerification(ctx context.Context, id string, req VerificationRequest) (OrganizationResponse, error)
}

type service struct {
	repo     Repository
	notifier notification.Notifier
	logger   *zap.Logger
}

func NewService(repo Repository, notifier notification.Notifier, logger ...*zap.Logger) Service {
	l := zap.L().Named("organization.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("organization.service")
	}
	return &service{repo: repo, notifier: notifier, logger: l}
}

// LoadVerified fetches the organization and requires it to be verified.
func LoadVerified(ctx context.Context, repo Repository, id string) (*Organization, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, organizationerrors.ErrInvalidOrganizationID
	}
	org, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	if !org.Verified {
		return nil, organizationerrors.ErrOrganizationNotVerified
	}
	return org, nil
}

func (s *service) Register(ctx context.Context, req RegisterOrganizationRequest) (OrganizationResponse, error) {
	org := &Organization{
		ID:                 uuid.New(),
		Name:               strings.TrimSpace(req.Name),
		Email:              strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:              req.Phone,
		Address:            req.Address,
		RegistrationNumber: req.RegistrationNumber,
	}
	if err := s.repo.Create(ctx, org); err != nil {
		s.logger.Error("register organization failed", zap.String("email", org.Email), zap.Error(err))
		return OrganizationResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("organization registered",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("organization_id", org.ID.String()),
	)
	return mapToResponse(*org), nil
}

func (s *service) GetByID(ctx context.Context, id string) (OrganizationResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return OrganizationResponse{}, organizationerrors.ErrInvalidOrganizationID
	}
	org, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return OrganizationResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*org), nil
}

func (s *service) List(ctx context.Context, verified *bool) ([]OrganizationResponse, error) {
	orgs, err := s.repo.FindAll(ctx, verified)
	if err != nil {
		s.logger.Error("list organizations failed", zap.Error(err))
		return nil, err
	}
	resp := make([]OrganizationResponse, 0, len(orgs))
	for _, o := range orgs {
		resp = append(resp, mapToResponse(o))
	}
	return resp, nil
}

func (s *service) Verify(ctx context.Context, id string, req VerificationRequest) (OrganizationResponse, error) {
	return s.setVerification(ctx, id, true, req.Remarks)
}

func (s *service) RejectVerification(ctx context.Context, id string, req VerificationRequest) (OrganizationResponse, error) {
	return s.setVerification(ctx, id, false, req.Remarks)
}

func (s *service) setVerification(ctx context.Context, id string, verified bool, remarks string) (OrganizationResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return OrganizationResponse{}, organizationerrors.ErrInvalidOrganizationID
	}
	org, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return OrganizationResponse{}, mapRepositoryError(err)
	}

	org.Verified = verified
	org.VerificationRemarks = nil
	if r := strings.TrimSpace(remarks); r != "" {
		org.VerificationRemarks = &r
	}
	org.VerifiedAt = nil
	if verified {
		now := time.Now().UTC()
		org.VerifiedAt = &now
	}

	if err := s.repo.Update(ctx, org); err != nil {
		s.logger.Error("update organization verification failed",
			zap.String("organization_id", id),
			zap.Error(err),
		)
		return OrganizationResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("organization verification updated",
		zap.String("organization_id", id),
		zap.Bool("verified", verified),
	)
	s.notifyVerification(ctx, *org)

	return mapToResponse(*org), nil
}

func (s *service) notifyVerification(ctx context.Context, org Organization) {
	if s.notifier == nil {
		return
	}

	msg := notification.Message{
		AggregateType: "organization",
		AggregateID:   org.ID.String(),
		Recipient:     org.Email,
	}
	if org.Verified {
		msg.Kind = notification.KindOrganizationVerified
		msg.Subject = "Your organization has been verified"
		msg.Body = "Dear " + org.Name + ", your organization is verified and can now submit fund requests."
	} else {
		msg.Kind = notification.KindOrganizationRejected
		msg.Subject = "Organization verification rejected"
		msg.Body = "Dear " + org.Name + ", your verification request was not approved."
	}
	if org.VerificationRemarks != nil {
		msg.Body += " Remarks: " + *org.VerificationRemarks
	}

	if err := s.notifier.Notify(ctx, msg); err != nil {
		s.logger.Warn("organization verification notification failed",
			zap.String("organization_id", org.ID.String()),
			zap.Error(err),
		)
	}
}

func mapToResponse(org Organization) OrganizationResponse {
	resp := OrganizationResponse{
		ID:                  org.ID.String(),
		Name:                org.Name,
		Email:               org.Email,
		Phone:               org.Phone,
		Address:             org.Address,
		RegistrationNumber:  org.RegistrationNumber,
		Verified:            org.Verified,
		VerificationRemarks: org.VerificationRemarks,
		CreatedAt:           org.CreatedAt.Format(time.RFC3339),
	}
	if org.VerifiedAt != nil {
		v := org.VerifiedAt.Format(time.RFC3339)
		resp.VerifiedAt = &v
	}
	return resp
}

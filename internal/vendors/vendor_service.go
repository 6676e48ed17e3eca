package vendors

import (
	"context"
	"strings"

	"go-payroll/internal/organization"
	vendorerrors "go-payroll/internal/vendors/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=vendor_service.go -destination=mock/vendor_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, organizationID string, req CreateVendorRequest) (VendorResponse, error)
	GetByID(ctx context.Context, organizationID, id string) (VendorResponse, error)
	GetAll(ctx context.Context, organizationID string) ([]VendorResponse, error)
}

type service struct {
	repo          Repository
	organizations organization.Repository
	logger        *zap.Logger
}

func NewService(repo Repository, organizations organization.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("vendor.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("vendor.service")
	}
	return &service{repo: repo, organizations: organizations, logger: l}
}

func (s *service) Create(ctx context.Context, organizationID string, req CreateVendorRequest) (VendorResponse, error) {
	org, err := organization.LoadVerified(ctx, s.organizations, organizationID)
	if err != nil {
		return VendorResponse{}, err
	}

	v := &Vendor{
		ID:                uuid.New(),
		OrganizationID:    org.ID,
		Name:              strings.TrimSpace(req.Name),
		Email:             strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:             req.Phone,
		Address:           req.Address,
		ServiceType:       req.ServiceType,
		BankAccountNumber: req.BankAccountNumber,
		BankName:          req.BankName,
		IFSCCode:          req.IFSCCode,
		TaxID:             req.TaxID,
		Status:            StatusActive,
	}
	if err := s.repo.Create(ctx, v); err != nil {
		s.logger.Error("create vendor failed", zap.String("organization_id", organizationID), zap.Error(err))
		return VendorResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("vendor created", zap.String("vendor_id", v.ID.String()))
	return mapToResponse(*v), nil
}

func (s *service) GetByID(ctx context.Context, organizationID, id string) (VendorResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return VendorResponse{}, vendorerrors.ErrInvalidVendorID
	}
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return VendorResponse{}, mapRepositoryError(err)
	}
	if organizationID != "" && v.OrganizationID.String() != organizationID {
		return VendorResponse{}, vendorerrors.ErrVendorNotFound
	}
	return mapToResponse(*v), nil
}

func (s *service) GetAll(ctx context.Context, organizationID string) ([]VendorResponse, error) {
	vendors, err := s.repo.FindAllByOrganization(ctx, organizationID)
	if err != nil {
		s.logger.Error("list vendors failed", zap.Error(err))
		return nil, err
	}
	resp := make([]VendorResponse, len(vendors))
	for i, v := range vendors {
		resp[i] = mapToResponse(v)
	}
	return resp, nil
}

func mapToResponse(v Vendor) VendorResponse {
	return VendorResponse{
		ID:                v.ID.String(),
		OrganizationID:    v.OrganizationID.String(),
		Name:              v.Name,
		Email:             v.Email,
		Phone:             v.Phone,
		Address:           v.Address,
		ServiceType:       v.ServiceType,
		BankAccountNumber: v.BankAccountNumber,
		BankName:          v.BankName,
		IFSCCode:          v.IFSCCode,
		TaxID:             v.TaxID,
		Status:            v.Status,
	}
}

package vendorpayment

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-payroll/internal/fundrequest"
	"go-payroll/internal/shared/counter"
	"go-payroll/internal/shared/paymentstatus"
	vendorpaymenterrors "go-payroll/internal/vendorpayment/errors"
	"go-payroll/internal/vendors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=vendor_payment_service.go -destination=mock/vendor_payment_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, organizationID, vendorID, fundRequestID string, req CreateVendorPaymentRequest) (VendorPaymentResponse, error)
	UpdateStatus(ctx context.Context, organizationID, id, status string) (VendorPaymentResponse, error)
	GetByID(ctx context.Context, organizationID, id string) (VendorPaymentResponse, error)
	ListByVendor(ctx context.Context, organizationID, vendorID string) ([]VendorPaymentResponse, error)
	ListByOrganization(ctx context.Context, organizationID string) ([]VendorPaymentResponse, error)
}

type service struct {
	repo         Repository
	vendors      vendors.Repository
	fundRequests fundrequest.Repository
	counter      counter.Repository
	now          func() time.Time
	logger       *zap.Logger
}

func NewService(
	repo Repository,
	vendorRepo vendors.Repository,
	fundRequests fundrequest.Repository,
	counterRepo counter.Repository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("vendorpayment.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("vendorpayment.service")
	}
	return &service{
		repo:         repo,
		vendors:      vendorRepo,
		fundRequests: fundRequests,
		counter:      counterRepo,
		now:          func() time.Time { return time.Now().UTC() },
		logger:       l,
	}
}

func (s *service) Create(
	ctx context.Context,
	organizationID, vendorID, fundRequestID string,
	req CreateVendorPaymentRequest,
) (VendorPaymentResponse, error) {
	if _, err := uuid.Parse(vendorID); err != nil {
		return VendorPaymentResponse{}, vendorpaymenterrors.ErrInvalidID
	}
	if _, err := uuid.Parse(fundRequestID); err != nil {
		return VendorPaymentResponse{}, vendorpaymenterrors.ErrInvalidID
	}
	if !req.Amount.IsPositive() {
		return VendorPaymentResponse{}, vendorpaymenterrors.ErrInvalidAmount
	}
	invoiceDate, err := time.Parse("2006-01-02", req.InvoiceDate)
	if err != nil {
		return VendorPaymentResponse{}, vendorpaymenterrors.ErrInvalidInvoiceDate
	}
	today := s.now().Truncate(24 * time.Hour)
	if invoiceDate.After(today) {
		return VendorPaymentResponse{}, vendorpaymenterrors.ErrInvalidInvoiceDate
	}

	v, err := s.vendors.FindByID(ctx, vendorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return VendorPaymentResponse{}, vendorpaymenterrors.ErrVendorNotFound
		}
		return VendorPaymentResponse{}, err
	}
	if organizationID != "" && v.OrganizationID.String() != organizationID {
		return VendorPaymentResponse{}, vendorpaymenterrors.ErrVendorNotFound
	}

	fr, err := s.fundRequests.FindByIDAndOrganization(ctx, v.OrganizationID.String(), fundRequestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return VendorPaymentResponse{}, vendorpaymenterrors.ErrFundRequestNotFound
		}
		return VendorPaymentResponse{}, err
	}
	if fr.RequestType != fundrequest.TypeVendorPayment {
		s.logger.Warn("vendor payment against non-vendor request",
			zap.String("fund_request_id", fundRequestID),
			zap.String("request_type", fr.RequestType),
		)
		return VendorPaymentResponse{}, vendorpaymenterrors.ErrNotVendorRequest
	}

	seq, err := s.counter.GetNextValue(ctx, v.OrganizationID.String(), counter.TypeVendorTransaction)
	if err != nil {
		s.logger.Error("generate vendor transaction id failed", zap.String("vendor_id", vendorID), zap.Error(err))
		return VendorPaymentResponse{}, err
	}

	p := &VendorPayment{
		ID:                 uuid.New(),
		OrganizationID:     v.OrganizationID,
		VendorID:           v.ID,
		FundRequestID:      fr.ID,
		Amount:             req.Amount.Round(2),
		InvoiceNumber:      strings.TrimSpace(req.InvoiceNumber),
		InvoiceDate:        invoiceDate,
		InvoiceDocumentURL: optional(req.InvoiceDocumentURL),
		PaymentDate:        today,
		Status:             paymentstatus.Pending,
		TransactionID:      counter.TransactionID("VTX", today.Format("20060102"), v.OrganizationID.String(), seq),
		Description:        optional(req.Description),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Error("create vendor payment failed", zap.String("vendor_id", vendorID), zap.Error(err))
		return VendorPaymentResponse{}, err
	}

	s.logger.Info("vendor payment recorded",
		zap.String("vendor_payment_id", p.ID.String()),
		zap.String("transaction_id", p.TransactionID),
	)
	resp := mapToResponse(*p)
	resp.VendorName = v.Name
	return resp, nil
}

func (s *service) UpdateStatus(ctx context.Context, organizationID, id, status string) (VendorPaymentResponse, error) {
	status = paymentstatus.Normalize(status)
	if !paymentstatus.IsValid(status) {
		return VendorPaymentResponse{}, vendorpaymenterrors.ErrInvalidStatus
	}
	p, err := s.find(ctx, organizationID, id)
	if err != nil {
		return VendorPaymentResponse{}, err
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return VendorPaymentResponse{}, mapRepositoryError(err)
	}
	s.logger.Info("vendor payment status updated",
		zap.String("vendor_payment_id", id),
		zap.String("from", p.Status),
		zap.String("to", status),
	)
	p.Status = status
	return mapToResponse(*p), nil
}

func (s *service) GetByID(ctx context.Context, organizationID, id string) (VendorPaymentResponse, error) {
	p, err := s.find(ctx, organizationID, id)
	if err != nil {
		return VendorPaymentResponse{}, err
	}
	resp := mapToResponse(*p)
	if v, err := s.vendors.FindByID(ctx, p.VendorID.String()); err == nil {
		resp.VendorName = v.Name
	}
	return resp, nil
}

func (s *service) ListByVendor(ctx context.Context, organizationID, vendorID string) ([]VendorPaymentResponse, error) {
	if _, err := uuid.Parse(vendorID); err != nil {
		return nil, vendorpaymenterrors.ErrInvalidID
	}
	v, err := s.vendors.FindByID(ctx, vendorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, vendorpaymenterrors.ErrVendorNotFound
		}
		return nil, err
	}
	if organizationID != "" && v.OrganizationID.String() != organizationID {
		return nil, vendorpaymenterrors.ErrVendorNotFound
	}

	payments, err := s.repo.FindAllByVendor(ctx, vendorID)
	if err != nil {
		s.logger.Error("list vendor payments failed", zap.String("vendor_id", vendorID), zap.Error(err))
		return nil, err
	}
	out := mapToListResponse(payments)
	for i := range out {
		out[i].VendorName = v.Name
	}
	return out, nil
}

func (s *service) ListByOrganization(ctx context.Context, organizationID string) ([]VendorPaymentResponse, error) {
	payments, err := s.repo.FindAllByOrganization(ctx, organizationID)
	if err != nil {
		s.logger.Error("list organization vendor payments failed", zap.String("organization_id", organizationID), zap.Error(err))
		return nil, err
	}
	return mapToListResponse(payments), nil
}

func (s *service) find(ctx context.Context, organizationID, id string) (*VendorPayment, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, vendorpaymenterrors.ErrInvalidID
	}
	p, err := s.repo.FindByID(ctx, organizationID, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return p, nil
}

func optional(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

func mapToResponse(p VendorPayment) VendorPaymentResponse {
	return VendorPaymentResponse{
		ID:                 p.ID.String(),
		OrganizationID:     p.OrganizationID.String(),
		VendorID:           p.VendorID.String(),
		FundRequestID:      p.FundRequestID.String(),
		Amount:             p.Amount,
		InvoiceNumber:      p.InvoiceNumber,
		InvoiceDate:        p.InvoiceDate.Format("2006-01-02"),
		InvoiceDocumentURL: p.InvoiceDocumentURL,
		PaymentDate:        p.PaymentDate.Format("2006-01-02"),
		Status:             p.Status,
		TransactionID:      p.TransactionID,
		Description:        p.Description,
		CreatedAt:          p.CreatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(payments []VendorPayment) []VendorPaymentResponse {
	out := make([]VendorPaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, mapToResponse(p))
	}
	return out
}

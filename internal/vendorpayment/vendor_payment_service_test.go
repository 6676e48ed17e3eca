package vendorpayment_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"go-payroll/internal/fundrequest"
	fundrequestMock "go-payroll/internal/fundrequest/mock"
	"go-payroll/internal/shared/counter"
	counterMock "go-payroll/internal/shared/counter/mock"
	"go-payroll/internal/shared/paymentstatus"
	"go-payroll/internal/vendorpayment"
	vendorpaymenterrors "go-payroll/internal/vendorpayment/errors"
	vendorpaymentMock "go-payroll/internal/vendorpayment/mock"
	"go-payroll/internal/vendors"
	vendorsMock "go-payroll/internal/vendors/mock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type serviceDeps struct {
	service  vendorpayment.Service
	repo     *vendorpaymentMock.MockRepository
	vendors  *vendorsMock.MockRepository
	requests *fundrequestMock.MockRepository
	counter  *counterMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	deps := &serviceDeps{
		repo:     vendorpaymentMock.NewMockRepository(ctrl),
		vendors:  vendorsMock.NewMockRepository(ctrl),
		requests: fundrequestMock.NewMockRepository(ctrl),
		counter:  counterMock.NewMockRepository(ctrl),
	}
	deps.service = vendorpayment.NewService(deps.repo, deps.vendors, deps.requests, deps.counter, zap.NewNop())
	return deps
}

func validRequest() vendorpayment.CreateVendorPaymentRequest {
	return vendorpayment.CreateVendorPaymentRequest{
		Amount:        decimal.RequireFromString("1250.50"),
		InvoiceNumber: " INV-001 ",
		InvoiceDate:   "2025-01-15",
		Description:   "Office cleaning",
	}
}

func TestVendorPaymentService_Create(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New()
	vendor := &vendors.Vendor{ID: uuid.New(), OrganizationID: orgID, Name: "CleanCo"}
	request := &fundrequest.FundRequest{
		ID:             uuid.New(),
		OrganizationID: orgID,
		RequestType:    fundrequest.TypeVendorPayment,
		Status:         fundrequest.StatusApproved,
	}

	t.Run("records pending payment", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.vendors.EXPECT().FindByID(ctx, vendor.ID.String()).Return(vendor, nil)
		deps.requests.EXPECT().FindByIDAndOrganization(ctx, orgID.String(), request.ID.String()).Return(request, nil)
		deps.counter.EXPECT().GetNextValue(ctx, orgID.String(), counter.TypeVendorTransaction).Return(int64(7), nil)

		var saved *vendorpayment.VendorPayment
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p *vendorpayment.VendorPayment) error {
			saved = p
			return nil
		})

		resp, err := deps.service.Create(ctx, orgID.String(), vendor.ID.String(), request.ID.String(), validRequest())

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, paymentstatus.Pending, resp.Status)
		assert.Equal(t, "CleanCo", resp.VendorName)
		assert.Equal(t, "INV-001", saved.InvoiceNumber)
		assert.True(t, saved.Amount.Equal(decimal.RequireFromString("1250.50")))
		assert.Regexp(t, regexp.MustCompile(`^VTX-\d{8}-`+counter.OrganizationCode(orgID.String())+`-00000007$`), saved.TransactionID)
		assert.Equal(t, time.Now().UTC().Format("2006-01-02"), resp.PaymentDate)
		require.NotNil(t, saved.Description)
		assert.Nil(t, saved.InvoiceDocumentURL)
	})

	t.Run("accepts request regardless of approval status", func(t *testing.T) {
		deps := setupServiceTest(t)
		pending := *request
		pending.Status = fundrequest.StatusPending
		deps.vendors.EXPECT().FindByID(ctx, vendor.ID.String()).Return(vendor, nil)
		deps.requests.EXPECT().FindByIDAndOrganization(ctx, orgID.String(), request.ID.String()).Return(&pending, nil)
		deps.counter.EXPECT().GetNextValue(ctx, orgID.String(), counter.TypeVendorTransaction).Return(int64(1), nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		_, err := deps.service.Create(ctx, orgID.String(), vendor.ID.String(), request.ID.String(), validRequest())

		assert.NoError(t, err)
	})

	t.Run("vendor not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.vendors.EXPECT().FindByID(ctx, vendor.ID.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Create(ctx, orgID.String(), vendor.ID.String(), request.ID.String(), validRequest())

		assert.ErrorIs(t, err, vendorpaymenterrors.ErrVendorNotFound)
	})

	t.Run("vendor of another organization", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.vendors.EXPECT().FindByID(ctx, vendor.ID.String()).Return(vendor, nil)

		_, err := deps.service.Create(ctx, uuid.NewString(), vendor.ID.String(), request.ID.String(), validRequest())

		assert.ErrorIs(t, err, vendorpaymenterrors.ErrVendorNotFound)
	})

	t.Run("fund request not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.vendors.EXPECT().FindByID(ctx, vendor.ID.String()).Return(vendor, nil)
		deps.requests.EXPECT().FindByIDAndOrganization(ctx, orgID.String(), request.ID.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Create(ctx, orgID.String(), vendor.ID.String(), request.ID.String(), validRequest())

		assert.ErrorIs(t, err, vendorpaymenterrors.ErrFundRequestNotFound)
	})

	t.Run("salary request rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		salary := *request
		salary.RequestType = fundrequest.TypeSalaryDisbursement
		deps.vendors.EXPECT().FindByID(ctx, vendor.ID.String()).Return(vendor, nil)
		deps.requests.EXPECT().FindByIDAndOrganization(ctx, orgID.String(), request.ID.String()).Return(&salary, nil)

		_, err := deps.service.Create(ctx, orgID.String(), vendor.ID.String(), request.ID.String(), validRequest())

		assert.ErrorIs(t, err, vendorpaymenterrors.ErrNotVendorRequest)
	})

	t.Run("input validation", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*vendorpayment.CreateVendorPaymentRequest)
			want   error
		}{
			{"zero amount", func(r *vendorpayment.CreateVendorPaymentRequest) { r.Amount = decimal.Zero }, vendorpaymenterrors.ErrInvalidAmount},
			{"negative amount", func(r *vendorpayment.CreateVendorPaymentRequest) { r.Amount = decimal.NewFromInt(-5) }, vendorpaymenterrors.ErrInvalidAmount},
			{"future invoice", func(r *vendorpayment.CreateVendorPaymentRequest) {
				r.InvoiceDate = time.Now().AddDate(0, 0, 3).Format("2006-01-02")
			}, vendorpaymenterrors.ErrInvalidInvoiceDate},
			{"malformed invoice date", func(r *vendorpayment.CreateVendorPaymentRequest) { r.InvoiceDate = "15/01/2025" }, vendorpaymenterrors.ErrInvalidInvoiceDate},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				deps := setupServiceTest(t)
				req := validRequest()
				tt.mutate(&req)

				_, err := deps.service.Create(ctx, orgID.String(), vendor.ID.String(), request.ID.String(), req)

				assert.ErrorIs(t, err, tt.want)
			})
		}
	})

	t.Run("counter failure", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.vendors.EXPECT().FindByID(ctx, vendor.ID.String()).Return(vendor, nil)
		deps.requests.EXPECT().FindByIDAndOrganization(ctx, orgID.String(), request.ID.String()).Return(request, nil)
		deps.counter.EXPECT().GetNextValue(ctx, orgID.String(), counter.TypeVendorTransaction).Return(int64(0), errors.New("db down"))

		_, err := deps.service.Create(ctx, orgID.String(), vendor.ID.String(), request.ID.String(), validRequest())

		assert.EqualError(t, err, "db down")
	})
}

func TestVendorPaymentService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("any status may follow any other", func(t *testing.T) {
		transitions := [][2]string{
			{paymentstatus.Completed, paymentstatus.Pending},
			{paymentstatus.Cancelled, paymentstatus.Processing},
			{paymentstatus.Failed, paymentstatus.Completed},
		}
		for _, tr := range transitions {
			deps := setupServiceTest(t)
			deps.repo.EXPECT().FindByID(ctx, "", id.String()).
				Return(&vendorpayment.VendorPayment{ID: id, Status: tr[0]}, nil)
			deps.repo.EXPECT().UpdateStatus(ctx, id.String(), tr[1]).Return(nil)

			resp, err := deps.service.UpdateStatus(ctx, "", id.String(), tr[1])

			require.NoError(t, err)
			assert.Equal(t, tr[1], resp.Status)
		}
	})

	t.Run("normalizes case", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByID(ctx, "", id.String()).
			Return(&vendorpayment.VendorPayment{ID: id, Status: paymentstatus.Pending}, nil)
		deps.repo.EXPECT().UpdateStatus(ctx, id.String(), paymentstatus.Completed).Return(nil)

		resp, err := deps.service.UpdateStatus(ctx, "", id.String(), " completed ")

		require.NoError(t, err)
		assert.Equal(t, paymentstatus.Completed, resp.Status)
	})

	t.Run("invalid status", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.UpdateStatus(ctx, "", id.String(), "PAID")

		assert.ErrorIs(t, err, vendorpaymenterrors.ErrInvalidStatus)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByID(ctx, "", id.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.UpdateStatus(ctx, "", id.String(), paymentstatus.Failed)

		assert.ErrorIs(t, err, vendorpaymenterrors.ErrVendorPaymentNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.UpdateStatus(ctx, "", "nope", paymentstatus.Failed)

		assert.ErrorIs(t, err, vendorpaymenterrors.ErrInvalidID)
	})
}

func TestVendorPaymentService_ListByVendor(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New()
	vendor := &vendors.Vendor{ID: uuid.New(), OrganizationID: orgID, Name: "CleanCo"}

	t.Run("fills vendor name", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.vendors.EXPECT().FindByID(ctx, vendor.ID.String()).Return(vendor, nil)
		deps.repo.EXPECT().FindAllByVendor(ctx, vendor.ID.String()).Return([]vendorpayment.VendorPayment{
			{ID: uuid.New(), VendorID: vendor.ID, Status: paymentstatus.Pending},
			{ID: uuid.New(), VendorID: vendor.ID, Status: paymentstatus.Completed},
		}, nil)

		resp, err := deps.service.ListByVendor(ctx, orgID.String(), vendor.ID.String())

		require.NoError(t, err)
		require.Len(t, resp, 2)
		assert.Equal(t, "CleanCo", resp[1].VendorName)
	})

	t.Run("foreign vendor hidden", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.vendors.EXPECT().FindByID(ctx, vendor.ID.String()).Return(vendor, nil)

		_, err := deps.service.ListByVendor(ctx, uuid.NewString(), vendor.ID.String())

		assert.ErrorIs(t, err, vendorpaymenterrors.ErrVendorNotFound)
	})
}

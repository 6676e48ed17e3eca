package fundrequest_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"go-payroll/internal/fundrequest"
	fundrequesterrors "go-payroll/internal/fundrequest/errors"
	fundrequestMock "go-payroll/internal/fundrequest/mock"
	"go-payroll/internal/notification"
	notificationMock "go-payroll/internal/notification/mock"
	"go-payroll/internal/organization"
	organizationerrors "go-payroll/internal/organization/errors"
	organizationMock "go-payroll/internal/organization/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db       *sql.DB
	sqlMock  sqlmock.Sqlmock
	service  fundrequest.Service
	repo     *fundrequestMock.MockRepository
	orgs     *organizationMock.MockRepository
	notifier *notificationMock.MockNotifier
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := fundrequestMock.NewMockRepository(ctrl)
	orgs := organizationMock.NewMockRepository(ctrl)
	notifier := notificationMock.NewMockNotifier(ctrl)

	return &serviceDeps{
		db:       db,
		sqlMock:  sqlMock,
		service:  fundrequest.NewService(db, repo, orgs, notifier, zap.NewNop()),
		repo:     repo,
		orgs:     orgs,
		notifier: notifier,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func salaryRequest(month string) fundrequest.CreateFundRequestRequest {
	return fundrequest.CreateFundRequestRequest{
		RequestType: fundrequest.TypeSalaryDisbursement,
		TotalAmount: decimal.NewFromInt(120000),
		Month:       month,
		Year:        2025,
	}
}

func TestFundRequestService_Create(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New()
	actorID := uuid.New().String()
	verifiedOrg := &organization.Organization{ID: orgID, Name: "Acme", Email: "finance@acme.test", Verified: true}

	t.Run("salary request normalizes month", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.orgs.EXPECT().FindByID(ctx, orgID.String()).Return(verifiedOrg, nil)
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().HasActiveSalaryRequest(ctx, orgID.String(), "March", 2025).Return(false, nil)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, fr *fundrequest.FundRequest) error {
				assert.Equal(t, fundrequest.StatusPending, fr.Status)
				assert.Equal(t, "March", fr.Month)
				assert.Equal(t, orgID, fr.OrganizationID)
				require.NotNil(t, fr.CreatedBy)
				assert.Equal(t, actorID, fr.CreatedBy.String())
				return nil
			})

		resp, err := deps.service.Create(ctx, orgID.String(), actorID, salaryRequest("mar"))
		assert.NoError(t, err)
		assert.Equal(t, fundrequest.StatusPending, resp.Status)
		assert.Equal(t, "March", resp.Month)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("vendor requests skip the period check", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.orgs.EXPECT().FindByID(ctx, orgID.String()).Return(verifiedOrg, nil)
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		req := salaryRequest("March")
		req.RequestType = fundrequest.TypeVendorPayment
		_, err := deps.service.Create(ctx, orgID.String(), actorID, req)
		assert.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unverified organization", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.orgs.EXPECT().
			FindByID(ctx, orgID.String()).
			Return(&organization.Organization{ID: orgID}, nil)

		_, err := deps.service.Create(ctx, orgID.String(), actorID, salaryRequest("March"))
		assert.ErrorIs(t, err, organizationerrors.ErrOrganizationNotVerified)
	})

	t.Run("duplicate salary period", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.orgs.EXPECT().FindByID(ctx, orgID.String()).Return(verifiedOrg, nil)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().HasActiveSalaryRequest(ctx, orgID.String(), "March", 2025).Return(true, nil)

		_, err := deps.service.Create(ctx, orgID.String(), actorID, salaryRequest("March"))
		assert.ErrorIs(t, err, fundrequesterrors.ErrDuplicateRequest)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("concurrent insert hits the period index", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.orgs.EXPECT().FindByID(ctx, orgID.String()).Return(verifiedOrg, nil)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().HasActiveSalaryRequest(ctx, orgID.String(), "March", 2025).Return(false, nil)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_fund_request_salary_period"})

		_, err := deps.service.Create(ctx, orgID.String(), actorID, salaryRequest("March"))
		assert.ErrorIs(t, err, fundrequesterrors.ErrDuplicateRequest)
	})

	t.Run("invalid input", func(t *testing.T) {
		cases := []struct {
			name string
			mut  func(*fundrequest.CreateFundRequestRequest)
			want error
		}{
			{"month", func(r *fundrequest.CreateFundRequestRequest) { r.Month = "Smarch" }, fundrequesterrors.ErrInvalidMonth},
			{"year", func(r *fundrequest.CreateFundRequestRequest) { r.Year = 1999 }, fundrequesterrors.ErrInvalidYear},
			{"amount", func(r *fundrequest.CreateFundRequestRequest) { r.TotalAmount = decimal.Zero }, fundrequesterrors.ErrInvalidAmount},
			{"type", func(r *fundrequest.CreateFundRequestRequest) { r.RequestType = "BONUS" }, fundrequesterrors.ErrInvalidRequestType},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				deps := setupServiceTest(t)
				deps.orgs.EXPECT().FindByID(ctx, orgID.String()).Return(verifiedOrg, nil)

				req := salaryRequest("March")
				tc.mut(&req)
				_, err := deps.service.Create(ctx, orgID.String(), actorID, req)
				assert.ErrorIs(t, err, tc.want)
			})
		}
	})
}

func TestFundRequestService_DuplicateThenReject(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New()
	approverID := uuid.New().String()
	verifiedOrg := &organization.Organization{ID: orgID, Name: "Acme", Email: "finance@acme.test", Verified: true}
	deps := setupServiceTest(t)

	var stored *fundrequest.FundRequest
	deps.orgs.EXPECT().FindByID(gomock.Any(), orgID.String()).Return(verifiedOrg, nil).AnyTimes()
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo).AnyTimes()
	deps.repo.EXPECT().
		HasActiveSalaryRequest(gomock.Any(), orgID.String(), "March", 2025).
		DoAndReturn(func(context.Context, string, string, int) (bool, error) {
			return stored != nil && stored.Status != fundrequest.StatusRejected, nil
		}).
		Times(3)
	deps.repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fr *fundrequest.FundRequest) error {
			cp := *fr
			stored = &cp
			return nil
		}).
		Times(2)
	deps.repo.EXPECT().
		FindByIDForUpdate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string) (*fundrequest.FundRequest, error) {
			cp := *stored
			return &cp, nil
		})
	deps.repo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fr *fundrequest.FundRequest) error {
			cp := *fr
			stored = &cp
			return nil
		})
	deps.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)

	expectTx(t, deps.sqlMock, true)
	first, err := deps.service.Create(ctx, orgID.String(), "", salaryRequest("March"))
	require.NoError(t, err)

	expectTx(t, deps.sqlMock, false)
	_, err = deps.service.Create(ctx, orgID.String(), "", salaryRequest("March"))
	assert.ErrorIs(t, err, fundrequesterrors.ErrDuplicateRequest)

	expectTx(t, deps.sqlMock, true)
	_, err = deps.service.Reject(ctx, first.ID, approverID, "budget exceeded")
	require.NoError(t, err)

	expectTx(t, deps.sqlMock, true)
	second, err := deps.service.Create(ctx, orgID.String(), "", salaryRequest("March"))
	assert.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestFundRequestService_Approve(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New()
	id := uuid.New()
	approverID := uuid.New().String()
	org := &organization.Organization{ID: orgID, Name: "Acme", Email: "finance@acme.test", Verified: true}

	t.Run("success notifies organization", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindByIDForUpdate(ctx, id.String()).
			Return(&fundrequest.FundRequest{ID: id, OrganizationID: orgID, Status: fundrequest.StatusPending, RequestType: fundrequest.TypeSalaryDisbursement}, nil)
		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, fr *fundrequest.FundRequest) error {
				assert.Equal(t, fundrequest.StatusApproved, fr.Status)
				require.NotNil(t, fr.ApprovedBy)
				assert.Equal(t, approverID, fr.ApprovedBy.String())
				assert.NotNil(t, fr.ApprovedAt)
				return nil
			})
		deps.orgs.EXPECT().FindByID(ctx, orgID.String()).Return(org, nil)
		deps.notifier.EXPECT().
			Notify(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, msg notification.Message) error {
				assert.Equal(t, notification.KindFundRequestApproved, msg.Kind)
				assert.Equal(t, "finance@acme.test", msg.Recipient)
				assert.Equal(t, id.String(), msg.AggregateID)
				return nil
			})

		resp, err := deps.service.Approve(ctx, id.String(), approverID)
		assert.NoError(t, err)
		assert.Equal(t, fundrequest.StatusApproved, resp.Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("notification failure keeps approval", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindByIDForUpdate(ctx, id.String()).
			Return(&fundrequest.FundRequest{ID: id, OrganizationID: orgID, Status: fundrequest.StatusPending}, nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)
		deps.orgs.EXPECT().FindByID(ctx, orgID.String()).Return(org, nil)
		deps.notifier.EXPECT().Notify(ctx, gomock.Any()).Return(errors.New("outbox down"))

		resp, err := deps.service.Approve(ctx, id.String(), approverID)
		assert.NoError(t, err)
		assert.Equal(t, fundrequest.StatusApproved, resp.Status)
	})

	t.Run("second approval fails and leaves status", func(t *testing.T) {
		deps := setupServiceTest(t)
		current := &fundrequest.FundRequest{ID: id, OrganizationID: orgID, Status: fundrequest.StatusPending}
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo).Times(2)
		deps.repo.EXPECT().
			FindByIDForUpdate(ctx, id.String()).
			DoAndReturn(func(context.Context, string) (*fundrequest.FundRequest, error) {
				cp := *current
				return &cp, nil
			}).
			Times(2)
		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, fr *fundrequest.FundRequest) error {
				current = fr
				return nil
			})
		deps.orgs.EXPECT().FindByID(ctx, orgID.String()).Return(org, nil)
		deps.notifier.EXPECT().Notify(ctx, gomock.Any()).Return(nil)

		expectTx(t, deps.sqlMock, true)
		_, err := deps.service.Approve(ctx, id.String(), approverID)
		require.NoError(t, err)

		expectTx(t, deps.sqlMock, false)
		_, err = deps.service.Approve(ctx, id.String(), approverID)
		assert.ErrorIs(t, err, fundrequesterrors.ErrAlreadyProcessed)
		assert.Equal(t, fundrequest.StatusApproved, current.Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDForUpdate(ctx, id.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Approve(ctx, id.String(), approverID)
		assert.ErrorIs(t, err, fundrequesterrors.ErrFundRequestNotFound)
	})
}

func TestFundRequestService_Reject(t *testing.T) {
	ctx := context.Background()
	id := uuid.New().String()

	t.Run("reason required", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Reject(ctx, id, uuid.New().String(), "  ")
		assert.ErrorIs(t, err, fundrequesterrors.ErrRejectionReasonRequired)
	})

	t.Run("completed request", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindByIDForUpdate(ctx, id).
			Return(&fundrequest.FundRequest{Status: fundrequest.StatusCompleted}, nil)

		_, err := deps.service.Reject(ctx, id, uuid.New().String(), "late")
		assert.ErrorIs(t, err, fundrequesterrors.ErrAlreadyProcessed)
	})
}

func TestFundRequestService_Delete(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New()
	id := uuid.New().String()

	t.Run("approved request cannot be deleted", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindByIDForUpdate(ctx, id).
			Return(&fundrequest.FundRequest{OrganizationID: orgID, Status: fundrequest.StatusApproved}, nil)

		err := deps.service.Delete(ctx, orgID.String(), id)
		assert.ErrorIs(t, err, fundrequesterrors.ErrCannotDelete)
	})

	t.Run("other organization", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindByIDForUpdate(ctx, id).
			Return(&fundrequest.FundRequest{OrganizationID: uuid.New(), Status: fundrequest.StatusPending}, nil)

		err := deps.service.Delete(ctx, orgID.String(), id)
		assert.ErrorIs(t, err, fundrequesterrors.ErrFundRequestNotFound)
	})

	t.Run("pending request", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindByIDForUpdate(ctx, id).
			Return(&fundrequest.FundRequest{OrganizationID: orgID, Status: fundrequest.StatusPending}, nil)
		deps.repo.EXPECT().Delete(ctx, id).Return(nil)

		assert.NoError(t, deps.service.Delete(ctx, orgID.String(), id))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestFundRequestService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("filters by normalized status", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().
			FindAll(ctx, fundrequest.StatusPending).
			Return([]fundrequest.FundRequest{{ID: uuid.New(), Status: fundrequest.StatusPending}}, nil)

		resp, err := deps.service.GetAll(ctx, "pending")
		assert.NoError(t, err)
		assert.Len(t, resp, 1)
	})

	t.Run("unknown status", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.GetAll(ctx, "ARCHIVED")
		assert.ErrorIs(t, err, fundrequesterrors.ErrInvalidStatus)
	})
}

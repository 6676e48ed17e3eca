package salarypayment_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-payroll/internal/document"
	documentMock "go-payroll/internal/document/mock"
	"go-payroll/internal/employee"
	employeeMock "go-payroll/internal/employee/mock"
	"go-payroll/internal/events"
	"go-payroll/internal/fundrequest"
	fundrequestMock "go-payroll/internal/fundrequest/mock"
	"go-payroll/internal/messaging/kafka"
	kafkaMock "go-payroll/internal/messaging/kafka/mock"
	"go-payroll/internal/notification"
	notificationMock "go-payroll/internal/notification/mock"
	"go-payroll/internal/organization"
	organizationMock "go-payroll/internal/organization/mock"
	"go-payroll/internal/salarypayment"
	salarypaymenterrors "go-payroll/internal/salarypayment/errors"
	salarypaymentMock "go-payroll/internal/salarypayment/mock"
	"go-payroll/internal/salarystructure"
	salarystructureerrors "go-payroll/internal/salarystructure/errors"
	salarystructureMock "go-payroll/internal/salarystructure/mock"
	"go-payroll/internal/shared/counter"
	counterMock "go-payroll/internal/shared/counter/mock"
	"go-payroll/internal/shared/paymentstatus"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type serviceDeps struct {
	sqlMock    sqlmock.Sqlmock
	service    salarypayment.Service
	repo       *salarypaymentMock.MockRepository
	requests   *fundrequestMock.MockRepository
	orgs       *organizationMock.MockRepository
	employees  *employeeMock.MockRepository
	structures *salarystructureMock.MockResolver
	counter    *counterMock.MockRepository
	renderer   *documentMock.MockRenderer
	store      *documentMock.MockStore
	notifier   *notificationMock.MockNotifier
	outbox     *kafkaMock.MockOutboxRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	deps := &serviceDeps{
		sqlMock:    sqlMock,
		repo:       salarypaymentMock.NewMockRepository(ctrl),
		requests:   fundrequestMock.NewMockRepository(ctrl),
		orgs:       organizationMock.NewMockRepository(ctrl),
		employees:  employeeMock.NewMockRepository(ctrl),
		structures: salarystructureMock.NewMockResolver(ctrl),
		counter:    counterMock.NewMockRepository(ctrl),
		renderer:   documentMock.NewMockRenderer(ctrl),
		store:      documentMock.NewMockStore(ctrl),
		notifier:   notificationMock.NewMockNotifier(ctrl),
		outbox:     kafkaMock.NewMockOutboxRepository(ctrl),
	}
	deps.service = salarypayment.NewService(salarypayment.Deps{
		DB:            db,
		Repo:          deps.repo,
		FundRequests:  deps.requests,
		Organizations: deps.orgs,
		Employees:     deps.employees,
		Structures:    deps.structures,
		Counter:       deps.counter,
		Renderer:      deps.renderer,
		Store:         deps.store,
		Notifier:      deps.notifier,
		Outbox:        deps.outbox,
	}, zap.NewNop())
	return deps
}

type fixture struct {
	org     *organization.Organization
	request *fundrequest.FundRequest
}

func newFixture(status string) *fixture {
	orgID := uuid.New()
	return &fixture{
		org: &organization.Organization{ID: orgID, Name: "Acme", Email: "finance@acme.test", Verified: true},
		request: &fundrequest.FundRequest{
			ID:             uuid.New(),
			OrganizationID: orgID,
			RequestType:    fundrequest.TypeSalaryDisbursement,
			Month:          "March",
			Year:           2025,
			Status:         status,
		},
	}
}

// expectRequestStore serves the fund request from f and records updates so the
// second lock in the batch sees the PROCESSING status written by the first.
func (f *fixture) expectRequestStore(deps *serviceDeps) {
	deps.requests.EXPECT().WithTx(gomock.Any()).Return(deps.requests).AnyTimes()
	deps.requests.EXPECT().
		FindByIDForUpdate(gomock.Any(), f.request.ID.String()).
		DoAndReturn(func(context.Context, string) (*fundrequest.FundRequest, error) {
			cp := *f.request
			return &cp, nil
		}).
		AnyTimes()
	deps.requests.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fr *fundrequest.FundRequest) error {
			cp := *fr
			f.request = &cp
			return nil
		}).
		AnyTimes()
	deps.orgs.EXPECT().FindByID(gomock.Any(), f.org.ID.String()).Return(f.org, nil).AnyTimes()
}

func expectBatchCompleted(t *testing.T, deps *serviceDeps) {
	deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
	deps.outbox.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev kafka.OutboxEvent) error {
			assert.Equal(t, events.SalaryBatchCompletedTopic, ev.Topic)
			return nil
		})
}

func activeEmployee(name string) employee.Employee {
	return employee.Employee{
		ID:             uuid.New(),
		EmployeeNumber: "EMP-" + name,
		FullName:       name,
		Email:          name + "@acme.test",
		Status:         employee.StatusActive,
	}
}

func structureWithNet(net int64) *salarystructure.SalaryStructure {
	s := &salarystructure.SalaryStructure{
		ID:            uuid.New(),
		BasicSalary:   decimal.NewFromInt(net),
		ProvidentFund: decimal.Zero,
		IsActive:      true,
	}
	s.Recalculate()
	return s
}

func TestSalaryPaymentService_Process_PaysEligibleEmployees(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	f := newFixture(fundrequest.StatusApproved)
	f.expectRequestStore(deps)

	alice, bob := activeEmployee("alice"), activeEmployee("bob")
	nets := map[uuid.UUID]int64{alice.ID: 50000, bob.ID: 70000}

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()
	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()

	deps.employees.EXPECT().
		FindByOrganizationAndStatuses(ctx, f.org.ID.String(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, statuses []string) ([]employee.Employee, error) {
			assert.ElementsMatch(t, []string{employee.StatusActive, employee.StatusOnLeave}, statuses)
			return []employee.Employee{alice, bob}, nil
		})
	deps.repo.EXPECT().ExistsForPeriod(ctx, gomock.Any(), "March", 2025).Return(false, nil).Times(2)
	deps.structures.EXPECT().
		ResolveActive(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, id string) (*salarystructure.SalaryStructure, error) {
			return structureWithNet(nets[uuid.MustParse(id)]), nil
		}).
		Times(2)
	seq := int64(0)
	deps.counter.EXPECT().
		GetNextValue(ctx, f.org.ID.String(), counter.TypeSalaryTransaction).
		DoAndReturn(func(context.Context, string, string) (int64, error) {
			seq++
			return seq, nil
		}).
		Times(2)
	deps.repo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, p *salarypayment.SalaryPayment) error {
			assert.Equal(t, paymentstatus.Completed, p.Status)
			assert.True(t, p.Amount.Equal(p.NetSalary))
			assert.Regexp(t, `^TXN-202503-`+counter.OrganizationCode(f.org.ID.String())+`-0000000[12]$`, p.TransactionID)
			return nil
		}).
		Times(2)
	deps.renderer.EXPECT().RenderSalarySlip(gomock.Any()).Return([]byte("%PDF"), nil).Times(2)
	deps.store.EXPECT().
		Put(ctx, gomock.Any(), []byte("%PDF"), document.ContentTypePDF).
		Return("https://cdn.test/slip.pdf", nil).
		Times(2)
	deps.repo.EXPECT().UpdateSlip(ctx, gomock.Any(), "https://cdn.test/slip.pdf").Return(nil).Times(2)
	deps.notifier.EXPECT().
		Notify(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, msg notification.Message) error {
			assert.Equal(t, notification.KindSalaryCredited, msg.Kind)
			assert.Equal(t, "https://cdn.test/slip.pdf", msg.AttachmentURL)
			return nil
		}).
		Times(2)
	expectBatchCompleted(t, deps)

	result, err := deps.service.Process(ctx, f.request.ID.String())
	require.NoError(t, err)

	assert.Equal(t, fundrequest.StatusCompleted, result.Status)
	assert.Equal(t, fundrequest.StatusCompleted, f.request.Status)
	require.Len(t, result.Records, 2)
	amounts := []string{result.Records[0].Amount.StringFixed(0), result.Records[1].Amount.StringFixed(0)}
	assert.ElementsMatch(t, []string{"50000", "70000"}, amounts)
	assert.Equal(t, 2, result.Summary.Created)
	assert.Equal(t, 0, result.Summary.Warnings)
	assert.True(t, result.Summary.TotalNet.Equal(decimal.NewFromInt(120000)))
	assert.NotEmpty(t, f.request.ProcessingSummary)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestSalaryPaymentService_Resume_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	f := newFixture(fundrequest.StatusCompleted)
	f.expectRequestStore(deps)

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()
	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()

	deps.employees.EXPECT().
		FindByOrganizationAndStatuses(ctx, f.org.ID.String(), gomock.Any()).
		Return([]employee.Employee{activeEmployee("alice"), activeEmployee("bob")}, nil)
	deps.repo.EXPECT().ExistsForPeriod(ctx, gomock.Any(), "March", 2025).Return(true, nil).Times(2)
	expectBatchCompleted(t, deps)

	result, err := deps.service.Resume(ctx, f.request.ID.String())
	require.NoError(t, err)
	assert.Empty(t, result.Records)
	assert.Equal(t, 2, result.Summary.Skipped)
	for _, o := range result.Outcomes {
		assert.Equal(t, salarypayment.OutcomeSkipped, o.Result)
		assert.Equal(t, salarypayment.ReasonAlreadyPaid, o.Reason)
	}
	assert.Equal(t, fundrequest.StatusCompleted, result.Status)
}

func TestSalaryPaymentService_Process_SkipsAndWarnings(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	f := newFixture(fundrequest.StatusApproved)
	f.expectRequestStore(deps)

	noStructure, racer, unlucky := activeEmployee("nostructure"), activeEmployee("racer"), activeEmployee("unlucky")

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()
	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()

	deps.employees.EXPECT().
		FindByOrganizationAndStatuses(ctx, f.org.ID.String(), gomock.Any()).
		Return([]employee.Employee{noStructure, racer, unlucky}, nil)
	deps.repo.EXPECT().ExistsForPeriod(ctx, gomock.Any(), "March", 2025).Return(false, nil).Times(3)
	deps.structures.EXPECT().
		ResolveActive(ctx, noStructure.ID.String()).
		Return(nil, salarystructureerrors.ErrActiveStructureNotFound)
	deps.structures.EXPECT().ResolveActive(ctx, racer.ID.String()).Return(structureWithNet(1000), nil)
	deps.structures.EXPECT().ResolveActive(ctx, unlucky.ID.String()).Return(structureWithNet(2000), nil)
	deps.counter.EXPECT().GetNextValue(ctx, gomock.Any(), gomock.Any()).Return(int64(7), nil).Times(2)
	deps.repo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, p *salarypayment.SalaryPayment) error {
			if p.EmployeeID == racer.ID {
				return &pgconn.PgError{Code: "23505", ConstraintName: "uq_salary_payment_employee_period"}
			}
			return nil
		}).
		Times(2)
	deps.renderer.EXPECT().RenderSalarySlip(gomock.Any()).Return(nil, errors.New("renderer down"))
	deps.notifier.EXPECT().
		Notify(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, msg notification.Message) error {
			assert.Equal(t, unlucky.Email, msg.Recipient)
			assert.Empty(t, msg.AttachmentURL)
			return nil
		})
	expectBatchCompleted(t, deps)

	result, err := deps.service.Process(ctx, f.request.ID.String())
	require.NoError(t, err)

	require.Len(t, result.Outcomes, 3)
	assert.Equal(t, salarypayment.ReasonNoActiveStructure, result.Outcomes[0].Reason)
	assert.Equal(t, salarypayment.ReasonDuplicateOnInsert, result.Outcomes[1].Reason)
	assert.Equal(t, salarypayment.OutcomeWarning, result.Outcomes[2].Result)
	assert.Equal(t, salarypayment.ReasonSlipRenderFailed, result.Outcomes[2].Reason)
	require.Len(t, result.Records, 1)
	assert.Equal(t, unlucky.ID.String(), result.Records[0].EmployeeID)
	assert.Equal(t, 2, result.Summary.Skipped)
	assert.Equal(t, 1, result.Summary.Warnings)
	assert.Equal(t, fundrequest.StatusCompleted, result.Status)
}

func TestSalaryPaymentService_Process_SlipFailureStillNotifies(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name       string
		notifyErr  error
		wantReason string
	}{
		{"store failure", nil, salarypayment.ReasonSlipStoreFailed},
		{"store and notify failure", errors.New("outbox down"), salarypayment.ReasonSlipStoreFailed + "," + salarypayment.ReasonNotificationFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			deps := setupServiceTest(t)
			f := newFixture(fundrequest.StatusApproved)
			f.expectRequestStore(deps)
			alice := activeEmployee("alice")

			deps.sqlMock.ExpectBegin()
			deps.sqlMock.ExpectCommit()
			deps.sqlMock.ExpectBegin()
			deps.sqlMock.ExpectCommit()

			deps.employees.EXPECT().FindByOrganizationAndStatuses(ctx, gomock.Any(), gomock.Any()).Return([]employee.Employee{alice}, nil)
			deps.repo.EXPECT().ExistsForPeriod(ctx, alice.ID.String(), "March", 2025).Return(false, nil)
			deps.structures.EXPECT().ResolveActive(ctx, alice.ID.String()).Return(structureWithNet(1000), nil)
			deps.counter.EXPECT().GetNextValue(ctx, gomock.Any(), gomock.Any()).Return(int64(1), nil)
			deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
			deps.renderer.EXPECT().RenderSalarySlip(gomock.Any()).Return([]byte("%PDF"), nil)
			deps.store.EXPECT().Put(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return("", document.ErrStoreNotConfigured)
			deps.notifier.EXPECT().
				Notify(ctx, gomock.Any()).
				DoAndReturn(func(_ context.Context, msg notification.Message) error {
					assert.Equal(t, notification.KindSalaryCredited, msg.Kind)
					assert.Equal(t, alice.Email, msg.Recipient)
					assert.Empty(t, msg.AttachmentURL)
					return tc.notifyErr
				})
			expectBatchCompleted(t, deps)

			result, err := deps.service.Process(ctx, f.request.ID.String())
			require.NoError(t, err)
			require.Len(t, result.Outcomes, 1)
			assert.Equal(t, salarypayment.OutcomeWarning, result.Outcomes[0].Result)
			assert.Equal(t, tc.wantReason, result.Outcomes[0].Reason)
			require.Len(t, result.Records, 1)
			assert.Nil(t, result.Records[0].SlipURL)
			assert.Equal(t, fundrequest.StatusCompleted, result.Status)
		})
	}
}

func TestSalaryPaymentService_Process_TransactionIDsDistinctAcrossOrganizations(t *testing.T) {
	ctx := context.Background()
	issued := map[string]bool{}

	runBatch := func(t *testing.T) (string, salarypayment.BatchResult, error) {
		deps := setupServiceTest(t)
		f := newFixture(fundrequest.StatusApproved)
		f.expectRequestStore(deps)
		alice := activeEmployee("alice")

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.employees.EXPECT().FindByOrganizationAndStatuses(ctx, gomock.Any(), gomock.Any()).Return([]employee.Employee{alice}, nil)
		deps.repo.EXPECT().ExistsForPeriod(ctx, alice.ID.String(), "March", 2025).Return(false, nil)
		deps.structures.EXPECT().ResolveActive(ctx, alice.ID.String()).Return(structureWithNet(1000), nil)
		deps.counter.EXPECT().GetNextValue(ctx, f.org.ID.String(), counter.TypeSalaryTransaction).Return(int64(1), nil)

		var txn string
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, p *salarypayment.SalaryPayment) error {
				txn = p.TransactionID
				if issued[p.TransactionID] {
					return &pgconn.PgError{Code: "23505", ConstraintName: "uq_salary_payment_transaction"}
				}
				issued[p.TransactionID] = true
				return nil
			})
		deps.renderer.EXPECT().RenderSalarySlip(gomock.Any()).Return([]byte("%PDF"), nil)
		deps.store.EXPECT().Put(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return("https://cdn.test/slip.pdf", nil)
		deps.repo.EXPECT().UpdateSlip(ctx, gomock.Any(), gomock.Any()).Return(nil)
		deps.notifier.EXPECT().Notify(ctx, gomock.Any()).Return(nil)
		expectBatchCompleted(t, deps)

		result, err := deps.service.Process(ctx, f.request.ID.String())
		return txn, result, err
	}

	txnA, resultA, err := runBatch(t)
	require.NoError(t, err)
	txnB, resultB, err := runBatch(t)
	require.NoError(t, err)

	assert.NotEqual(t, txnA, txnB)
	assert.Equal(t, fundrequest.StatusCompleted, resultA.Status)
	assert.Equal(t, fundrequest.StatusCompleted, resultB.Status)
	assert.Equal(t, 1, resultB.Summary.Created)
}

func TestSalaryPaymentService_Process_Preconditions(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name   string
		status string
		kind   string
		want   error
	}{
		{"pending", fundrequest.StatusPending, fundrequest.TypeSalaryDisbursement, salarypaymenterrors.ErrNotApproved},
		{"rejected", fundrequest.StatusRejected, fundrequest.TypeSalaryDisbursement, salarypaymenterrors.ErrNotApproved},
		{"processing", fundrequest.StatusProcessing, fundrequest.TypeSalaryDisbursement, salarypaymenterrors.ErrBatchInProgress},
		{"completed", fundrequest.StatusCompleted, fundrequest.TypeSalaryDisbursement, salarypaymenterrors.ErrNotApproved},
		{"vendor request", fundrequest.StatusApproved, fundrequest.TypeVendorPayment, salarypaymenterrors.ErrNotSalaryRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			deps := setupServiceTest(t)
			f := newFixture(tc.status)
			f.request.RequestType = tc.kind
			f.expectRequestStore(deps)
			deps.sqlMock.ExpectBegin()
			deps.sqlMock.ExpectRollback()

			_, err := deps.service.Process(ctx, f.request.ID.String())
			assert.ErrorIs(t, err, tc.want)
			assert.Equal(t, tc.status, f.request.Status)
			assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		})
	}
}

func TestSalaryPaymentService_Process_StorageFailureLeavesProcessing(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	f := newFixture(fundrequest.StatusApproved)
	f.expectRequestStore(deps)

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()

	deps.employees.EXPECT().
		FindByOrganizationAndStatuses(ctx, gomock.Any(), gomock.Any()).
		Return([]employee.Employee{activeEmployee("alice")}, nil)
	deps.repo.EXPECT().ExistsForPeriod(ctx, gomock.Any(), "March", 2025).Return(false, errors.New("connection reset"))

	_, err := deps.service.Process(ctx, f.request.ID.String())
	assert.Error(t, err)
	assert.Equal(t, fundrequest.StatusProcessing, f.request.Status)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestSalaryPaymentService_ListByOrganizationPeriod(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New().String()

	t.Run("normalizes month", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().
			FindAllByOrganizationPeriod(ctx, orgID, "March", 2025).
			Return([]salarypayment.SalaryPayment{{ID: uuid.New(), PaymentDate: time.Now()}}, nil)

		resp, err := deps.service.ListByOrganizationPeriod(ctx, orgID, "3", 2025)
		assert.NoError(t, err)
		assert.Len(t, resp, 1)
	})

	t.Run("invalid month", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.ListByOrganizationPeriod(ctx, orgID, "13", 2025)
		assert.ErrorIs(t, err, salarypaymenterrors.ErrInvalidPeriod)
	})
}

func TestSalaryPaymentService_RenderSlip(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New()
	emplID := uuid.New()
	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().
			FindByID(ctx, orgID.String(), id.String()).
			Return(&salarypayment.SalaryPayment{ID: id, OrganizationID: orgID, EmployeeID: emplID, Month: "March", Year: 2025, TransactionID: "TXN-202503-00000001"}, nil)
		deps.employees.EXPECT().FindByID(ctx, emplID.String()).Return(&employee.Employee{ID: emplID, FullName: "Alice"}, nil)
		deps.orgs.EXPECT().FindByID(ctx, orgID.String()).Return(&organization.Organization{ID: orgID, Name: "Acme"}, nil)
		deps.renderer.EXPECT().
			RenderSalarySlip(gomock.Any()).
			DoAndReturn(func(slip document.SalarySlip) ([]byte, error) {
				assert.Equal(t, "Alice", slip.EmployeeName)
				assert.Equal(t, "Acme", slip.OrganizationName)
				return []byte("%PDF"), nil
			})

		pdf, err := deps.service.RenderSlip(ctx, orgID.String(), id.String())
		assert.NoError(t, err)
		assert.Equal(t, []byte("%PDF"), pdf)
	})

	t.Run("invalid id", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.RenderSlip(ctx, orgID.String(), "x")
		assert.ErrorIs(t, err, salarypaymenterrors.ErrInvalidSalaryPaymentID)
	})
}

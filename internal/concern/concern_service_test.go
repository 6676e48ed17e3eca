package concern_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"go-payroll/internal/attachment"
	attachmentMock "go-payroll/internal/attachment/mock"
	"go-payroll/internal/concern"
	concernerrors "go-payroll/internal/concern/errors"
	concernMock "go-payroll/internal/concern/mock"
	"go-payroll/internal/employee"
	employeeerrors "go-payroll/internal/employee/errors"
	employeeMock "go-payroll/internal/employee/mock"
	"go-payroll/internal/notification"
	notificationMock "go-payroll/internal/notification/mock"
	"go-payroll/internal/shared/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db          *sql.DB
	sqlMock     sqlmock.Sqlmock
	service     concern.Service
	repo        *concernMock.MockRepository
	employees   *employeeMock.MockRepository
	attachments *attachmentMock.MockService
	notifier    *notificationMock.MockNotifier
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := concernMock.NewMockRepository(ctrl)
	employees := employeeMock.NewMockRepository(ctrl)
	attachments := attachmentMock.NewMockService(ctrl)
	notifier := notificationMock.NewMockNotifier(ctrl)

	return &serviceDeps{
		db:          db,
		sqlMock:     sqlMock,
		service:     concern.NewService(db, repo, employees, attachments, notifier, zap.NewNop()),
		repo:        repo,
		employees:   employees,
		attachments: attachments,
		notifier:    notifier,
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

// expectLocked routes WithTx back to the same mock and returns c from the locking read.
func (d *serviceDeps) expectLocked(c *concern.Concern) {
	d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
	d.repo.EXPECT().FindByIDForUpdate(gomock.Any(), c.OrganizationID.String(), c.ID.String()).Return(c, nil)
}

func newConcern(status string) *concern.Concern {
	return &concern.Concern{
		ID:             uuid.New(),
		OrganizationID: uuid.New(),
		EmployeeID:     uuid.New(),
		Subject:        "Salary not credited",
		Description:    "My March salary has not arrived yet.",
		Priority:       concern.PriorityHigh,
		Status:         status,
	}
}

func answered(c *concern.Concern) *concern.Concern {
	text := "Payment was re-sent this morning."
	c.Response = &text
	return c
}

func TestConcernService_Raise(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New()
	empl := &employee.Employee{ID: uuid.New(), OrganizationID: orgID, FullName: "Asha Rao", Email: "asha@acme.test"}

	t.Run("defaults to open and medium priority", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.employees.EXPECT().FindByIDAndOrganization(ctx, orgID.String(), empl.ID.String()).Return(empl, nil)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, c *concern.Concern) error {
				assert.Equal(t, concern.StatusOpen, c.Status)
				assert.Equal(t, concern.PriorityMedium, c.Priority)
				assert.Equal(t, orgID, c.OrganizationID)
				assert.Equal(t, empl.ID, c.EmployeeID)
				assert.Equal(t, "Payslip missing", c.Subject)
				return nil
			})

		resp, err := deps.service.Raise(ctx, orgID.String(), empl.ID.String(), concern.RaiseConcernRequest{
			Subject:     "  Payslip missing ",
			Description: "I cannot find my payslip for March.",
		})

		require.NoError(t, err)
		assert.Equal(t, concern.StatusOpen, resp.Status)
	})

	t.Run("unknown employee", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.employees.EXPECT().FindByIDAndOrganization(ctx, orgID.String(), empl.ID.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Raise(ctx, orgID.String(), empl.ID.String(), concern.RaiseConcernRequest{})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("non employee caller", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Raise(ctx, orgID.String(), "", concern.RaiseConcernRequest{})

		assert.ErrorIs(t, err, apperror.ErrForbidden)
	})
}

func TestConcernService_GetMine(t *testing.T) {
	ctx := context.Background()

	t.Run("own concern", func(t *testing.T) {
		deps := setupServiceTest(t)
		c := newConcern(concern.StatusOpen)
		deps.repo.EXPECT().FindByID(ctx, c.OrganizationID.String(), c.ID.String()).Return(c, nil)

		resp, err := deps.service.GetMine(ctx, c.OrganizationID.String(), c.EmployeeID.String(), c.ID.String())

		require.NoError(t, err)
		assert.Equal(t, c.ID.String(), resp.ID)
	})

	t.Run("colleague's concern is hidden", func(t *testing.T) {
		deps := setupServiceTest(t)
		c := newConcern(concern.StatusOpen)
		deps.repo.EXPECT().FindByID(ctx, c.OrganizationID.String(), c.ID.String()).Return(c, nil)

		_, err := deps.service.GetMine(ctx, c.OrganizationID.String(), uuid.NewString(), c.ID.String())

		assert.ErrorIs(t, err, concernerrors.ErrConcernNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.GetMine(ctx, uuid.NewString(), uuid.NewString(), "abc")

		assert.ErrorIs(t, err, concernerrors.ErrInvalidConcernID)
	})
}

func TestConcernService_Withdraw(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		c := newConcern(concern.StatusInProgress)
		deps.repo.EXPECT().FindByID(ctx, c.OrganizationID.String(), c.ID.String()).Return(c, nil)
		deps.repo.EXPECT().Delete(ctx, c.ID.String()).Return(nil)

		err := deps.service.Withdraw(ctx, c.OrganizationID.String(), c.EmployeeID.String(), c.ID.String())

		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		orgID, id := uuid.NewString(), uuid.NewString()
		deps.repo.EXPECT().FindByID(ctx, orgID, id).Return(nil, gorm.ErrRecordNotFound)

		err := deps.service.Withdraw(ctx, orgID, uuid.NewString(), id)

		assert.ErrorIs(t, err, concernerrors.ErrConcernNotFound)
	})
}

func TestConcernService_Attach(t *testing.T) {
	ctx := context.Background()
	file := attachment.File{Name: "proof.pdf", Data: []byte("%PDF-1.4")}

	t.Run("stores file and links it", func(t *testing.T) {
		deps := setupServiceTest(t)
		c := newConcern(concern.StatusOpen)
		deps.repo.EXPECT().FindByID(ctx, c.OrganizationID.String(), c.ID.String()).Return(c, nil)
		deps.attachments.EXPECT().
			Upload(ctx, attachment.Upload{
				OrganizationID: c.OrganizationID.String(),
				EntityType:     attachment.EntityConcern,
				EntityID:       c.ID.String(),
				DocumentType:   attachment.TypeConcernAttachment,
				UploadedBy:     c.EmployeeID.String(),
				File:           file,
			}).
			Return(attachment.AttachmentResponse{URL: "https://bucket.example/proof.pdf"}, nil)
		expectTx(t, deps.sqlMock, true)
		deps.expectLocked(c)
		deps.repo.EXPECT().Update(gomock.Any(), c).Return(nil)

		resp, err := deps.service.Attach(ctx, c.OrganizationID.String(), c.EmployeeID.String(), c.ID.String(), file)

		require.NoError(t, err)
		require.NotNil(t, resp.AttachmentURL)
		assert.Equal(t, "https://bucket.example/proof.pdf", *resp.AttachmentURL)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("closed concern", func(t *testing.T) {
		deps := setupServiceTest(t)
		c := answered(newConcern(concern.StatusClosed))
		deps.repo.EXPECT().FindByID(ctx, c.OrganizationID.String(), c.ID.String()).Return(c, nil)

		_, err := deps.service.Attach(ctx, c.OrganizationID.String(), c.EmployeeID.String(), c.ID.String(), file)

		assert.ErrorIs(t, err, concernerrors.ErrAttachToClosed)
	})

	t.Run("upload failure leaves concern untouched", func(t *testing.T) {
		deps := setupServiceTest(t)
		c := newConcern(concern.StatusOpen)
		uploadErr := errors.New("storage down")
		deps.repo.EXPECT().FindByID(ctx, c.OrganizationID.String(), c.ID.String()).Return(c, nil)
		deps.attachments.EXPECT().Upload(ctx, gomock.Any()).Return(attachment.AttachmentResponse{}, uploadErr)

		_, err := deps.service.Attach(ctx, c.OrganizationID.String(), c.EmployeeID.String(), c.ID.String(), file)

		assert.ErrorIs(t, err, uploadErr)
		assert.Nil(t, c.AttachmentURL)
	})
}

func TestConcernService_List(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.NewString()

	t.Run("filters by status", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().
			FindByOrganization(ctx, orgID, concern.StatusOpen).
			Return([]concern.Concern{*newConcern(concern.StatusOpen)}, nil)

		resp, err := deps.service.List(ctx, orgID, concern.StatusOpen)

		require.NoError(t, err)
		assert.Len(t, resp, 1)
	})

	t.Run("unknown status", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.List(ctx, orgID, "PENDING")

		assert.ErrorIs(t, err, concernerrors.ErrInvalidStatus)
	})
}

func TestConcernService_Respond(t *testing.T) {
	ctx := context.Background()
	responderID := uuid.New()
	req := concern.RespondRequest{Response: "  We have re-sent the payment.  "}

	t.Run("records response and notifies the employee", func(t *testing.T) {
		deps := setupServiceTest(t)
		c := newConcern(concern.StatusOpen)
		expectTx(t, deps.sqlMock, true)
		deps.expectLocked(c)
		deps.repo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, updated *concern.Concern) error {
				assert.Equal(t, concern.StatusInProgress, updated.Status)
				require.NotNil(t, updated.Response)
				assert.Equal(t, "We have re-sent the payment.", *updated.Response)
				require.NotNil(t, updated.RespondedBy)
				assert.Equal(t, responderID, *updated.RespondedBy)
				assert.NotNil(t, updated.RespondedAt)
				return nil
			})
		deps.employees.EXPECT().
			FindByIDAndOrganization(ctx, c.OrganizationID.String(), c.EmployeeID.String()).
			Return(&employee.Employee{ID: c.EmployeeID, FullName: "Asha Rao", Email: "asha@acme.test"}, nil)
		deps.notifier.EXPECT().
			Notify(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, msg notification.Message) error {
				assert.Equal(t, notification.KindConcernResponded, msg.Kind)
				assert.Equal(t, "asha@acme.test", msg.Recipient)
				assert.Equal(t, c.ID.String(), msg.AggregateID)
				assert.Contains(t, msg.Body, "We have re-sent the payment.")
				return nil
			})

		resp, err := deps.service.Respond(ctx, c.OrganizationID.String(), responderID.String(), c.ID.String(), req)

		require.NoError(t, err)
		assert.Equal(t, concern.StatusInProgress, resp.Status)
		assert.NotNil(t, resp.RespondedAt)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("notification failure does not fail the response", func(t *testing.T) {
		deps := setupServiceTest(t)
		c := newConcern(concern.StatusOpen)
		expectTx(t, deps.sqlMock, true)
		deps.expectLocked(c)
		deps.repo.EXPECT().Update(gomock.Any(), c).Return(nil)
		deps.employees.EXPECT().
			FindByIDAndOrganization(ctx, c.OrganizationID.String(), c.EmployeeID.String()).
			Return(&employee.Employee{ID: c.EmployeeID, Email: "asha@acme.test"}, nil)
		deps.notifier.EXPECT().Notify(ctx, gomock.Any()).Return(errors.New("outbox unavailable"))

		_, err := deps.service.Respond(ctx, c.OrganizationID.String(), responderID.String(), c.ID.String(), req)

		assert.NoError(t, err)
	})

	t.Run("closed concern", func(t *testing.T) {
		deps := setupServiceTest(t)
		c := answered(newConcern(concern.StatusClosed))
		expectTx(t, deps.sqlMock, false)
		deps.expectLocked(c)

		_, err := deps.service.Respond(ctx, c.OrganizationID.String(), responderID.String(), c.ID.String(), req)

		assert.ErrorIs(t, err, concernerrors.ErrConcernClosed)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		orgID, id := uuid.NewString(), uuid.NewString()
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDForUpdate(gomock.Any(), orgID, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Respond(ctx, orgID, responderID.String(), id, req)

		assert.ErrorIs(t, err, concernerrors.ErrConcernNotFound)
	})
}

func TestConcernService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		current    *concern.Concern
		target     string
		wantErr    error
		wantStatus string
	}{
		{"resolve an answered concern", answered(newConcern(concern.StatusInProgress)), concern.StatusResolved, nil, concern.StatusResolved},
		{"closed cannot reopen", answered(newConcern(concern.StatusClosed)), concern.StatusOpen, concernerrors.ErrCannotReopen, ""},
		{"close needs a response", newConcern(concern.StatusOpen), concern.StatusClosed, concernerrors.ErrCloseWithoutResponse, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := setupServiceTest(t)
			expectTx(t, deps.sqlMock, tt.wantErr == nil)
			deps.expectLocked(tt.current)
			if tt.wantErr == nil {
				deps.repo.EXPECT().Update(gomock.Any(), tt.current).Return(nil)
			}

			resp, err := deps.service.UpdateStatus(ctx, tt.current.OrganizationID.String(), tt.current.ID.String(),
				concern.UpdateStatusRequest{Status: tt.target})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		})
	}

	t.Run("unknown status", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.UpdateStatus(ctx, uuid.NewString(), uuid.NewString(), concern.UpdateStatusRequest{Status: "DONE"})

		assert.ErrorIs(t, err, concernerrors.ErrInvalidStatus)
	})
}

func TestConcernService_Close(t *testing.T) {
	ctx := context.Background()

	t.Run("answered concern closes", func(t *testing.T) {
		deps := setupServiceTest(t)
		c := answered(newConcern(concern.StatusInProgress))
		expectTx(t, deps.sqlMock, true)
		deps.expectLocked(c)
		deps.repo.EXPECT().Update(gomock.Any(), c).Return(nil)

		resp, err := deps.service.Close(ctx, c.OrganizationID.String(), c.ID.String())

		require.NoError(t, err)
		assert.Equal(t, concern.StatusClosed, resp.Status)
	})

	t.Run("unanswered concern", func(t *testing.T) {
		deps := setupServiceTest(t)
		c := newConcern(concern.StatusOpen)
		expectTx(t, deps.sqlMock, false)
		deps.expectLocked(c)

		_, err := deps.service.Close(ctx, c.OrganizationID.String(), c.ID.String())

		assert.ErrorIs(t, err, concernerrors.ErrCloseWithoutResponse)
		assert.Equal(t, concern.StatusOpen, c.Status)
	})

	t.Run("invalid id", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Close(ctx, uuid.NewString(), "x")

		assert.ErrorIs(t, err, concernerrors.ErrInvalidConcernID)
	})
}

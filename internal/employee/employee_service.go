package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	employeeerrors "go-payroll/internal/employee/errors"
	"go-payroll/internal/notification"
	"go-payroll/internal/organization"
	"go-payroll/internal/shared/contextutil"
	"go-payroll/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const EmployeeOptionsKeyPrefix = "employees:options:"

func GetEmployeeOptionsKey(organizationID string) string {
	return EmployeeOptionsKeyPrefix + organizationID
}

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, organizationID string, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, organizationID string) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context, organizationID string) ([]EmployeeOptionResponse, error)
	GetByID(ctx context.Context, organizationID, id string) (EmployeeResponse, error)
	Update(ctx context.Context, organizationID, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	UpdateStatus(ctx context.Context, organizationID, id string, status string) (EmployeeResponse, error)
}

type service struct {
	db            *sql.DB
	repo          Repository
	organizations organization.Repository
	counter       counter.Repository
	notifier      notification.Notifier
	rdb           *redis.Client
	sf            *singleflight.Group
	logger        *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	organizations organization.Repository,
	counter counter.Repository,
	notifier notification.Notifier,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:            db,
		repo:          repo,
		organizations: organizations,
		counter:       counter,
		notifier:      notifier,
		rdb:           rdb,
		sf:            &singleflight.Group{},
		logger:        l,
	}
}

func (s *service) Create(
	ctx context.Context,
	organizationID string,
	req CreateEmployeeRequest,
) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("organization_id", organizationID),
		zap.String("email", req.Email),
	)

	org, err := organization.LoadVerified(ctx, s.organizations, organizationID)
	if err != nil {
		return EmployeeResponse{}, err
	}

	hireDate, err := time.Parse("2006-01-02", req.HireDate)
	if err != nil {
		s.logger.Warn("create employee invalid hire_date", zap.String("hire_date", req.HireDate))
		return EmployeeResponse{}, employeeerrors.ErrInvalidHireDate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	if strings.TrimSpace(req.EmployeeNumber) == "" {
		nextVal, err := s.counter.GetNextValue(ctx, organizationID, counter.TypeEmployeeNumber)
		if err != nil {
			s.logger.Error("create employee generate number failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		req.EmployeeNumber = fmt.Sprintf("EMP-%06d", nextVal)
	}

	empl := &Employee{
		ID:                uuid.New(),
		OrganizationID:    org.ID,
		EmployeeNumber:    req.EmployeeNumber,
		FullName:          strings.TrimSpace(req.FullName),
		Email:             strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:             req.Phone,
		Designation:       req.Designation,
		Department:        req.Department,
		HireDate:          hireDate,
		Status:            StatusActive,
		BankAccountNumber: req.BankAccountNumber,
		BankName:          req.BankName,
		IFSCCode:          req.IFSCCode,
	}

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptions(ctx, organizationID)
	s.notifyOnboarded(ctx, org, empl)

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
	)
	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context, organizationID string) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested", zap.String("organization_id", organizationID))
	empls, err := s.repo.FindAllByOrganization(ctx, organizationID)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(empls), nil
}

func (s *service) GetOptions(ctx context.Context, organizationID string) ([]EmployeeOptionResponse, error) {
	cacheKey := GetEmployeeOptionsKey(organizationID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []EmployeeOptionResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		empls, err := s.repo.FindOptionsByOrganization(ctx, organizationID)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := make([]EmployeeOptionResponse, 0, len(empls))
		for _, e := range empls {
			resp = append(resp, EmployeeOptionResponse{
				ID:             e.ID.String(),
				EmployeeNumber: e.EmployeeNumber,
				FullName:       e.FullName,
				Status:         e.Status,
			})
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, jsonData, time.Hour).Err(); err != nil {
					s.logger.Warn("cache employee options failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]EmployeeOptionResponse), nil
}

func (s *service) GetByID(ctx context.Context, organizationID, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	empl, err := s.repo.FindByIDAndOrganization(ctx, organizationID, id)
	if err != nil {
		s.logger.Warn("get employee by id failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*empl), nil
}

func (s *service) Update(
	ctx context.Context,
	organizationID, id string,
	req UpdateEmployeeRequest,
) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	empl, err := s.repo.FindByIDAndOrganization(ctx, organizationID, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	empl.FullName = strings.TrimSpace(req.FullName)
	empl.Email = strings.ToLower(strings.TrimSpace(req.Email))
	empl.Phone = req.Phone
	empl.Designation = req.Designation
	empl.Department = req.Department
	empl.BankAccountNumber = req.BankAccountNumber
	empl.BankName = req.BankName
	empl.IFSCCode = req.IFSCCode

	if err := s.repo.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptions(ctx, organizationID)
	s.logger.Info("update employee success", zap.String("employee_id", id))
	return mapToResponse(*empl), nil
}

// UpdateStatus moves an employee between statuses. TERMINATED is final.
func (s *service) UpdateStatus(ctx context.Context, organizationID, id string, status string) (EmployeeResponse, error) {
	status = strings.ToUpper(strings.TrimSpace(status))
	if !IsValidStatus(status) {
		return EmployeeResponse{}, employeeerrors.ErrInvalidStatus
	}
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	empl, err := s.repo.FindByIDAndOrganization(ctx, organizationID, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	if empl.Status == status {
		return mapToResponse(*empl), nil
	}
	if empl.Status == StatusTerminated {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeTerminated
	}

	previous := empl.Status
	empl.Status = status
	if err := s.repo.Update(ctx, empl); err != nil {
		s.logger.Error("update employee status failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptions(ctx, organizationID)
	s.logger.Info("employee status changed",
		zap.String("employee_id", id),
		zap.String("from", previous),
		zap.String("to", status),
	)
	return mapToResponse(*empl), nil
}

func (s *service) invalidateOptions(ctx context.Context, organizationID string) {
	if s.rdb == nil {
		return
	}
	cacheKey := GetEmployeeOptionsKey(organizationID)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.Error(err),
			zap.String("key", cacheKey),
		)
	}
}

func (s *service) notifyOnboarded(ctx context.Context, org *organization.Organization, empl *Employee) {
	if s.notifier == nil {
		return
	}
	err := s.notifier.Notify(ctx, notification.Message{
		Kind:          notification.KindEmployeeOnboarded,
		AggregateType: "employee",
		AggregateID:   empl.ID.String(),
		Recipient:     empl.Email,
		Subject:       "Welcome to " + org.Name,
		Body: fmt.Sprintf("Dear %s, you have been added to the %s payroll with employee number %s.",
			empl.FullName, org.Name, empl.EmployeeNumber),
	})
	if err != nil {
		s.logger.Warn("employee onboarding notification failed",
			zap.String("employee_id", empl.ID.String()),
			zap.Error(err),
		)
	}
}

func mapToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:                empl.ID.String(),
		OrganizationID:    empl.OrganizationID.String(),
		EmployeeNumber:    empl.EmployeeNumber,
		FullName:          empl.FullName,
		Email:             empl.Email,
		Phone:             empl.Phone,
		Designation:       empl.Designation,
		Department:        empl.Department,
		HireDate:          empl.HireDate.Format("2006-01-02"),
		Status:            empl.Status,
		BankAccountNumber: empl.BankAccountNumber,
		BankName:          empl.BankName,
		IFSCCode:          empl.IFSCCode,
	}
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}

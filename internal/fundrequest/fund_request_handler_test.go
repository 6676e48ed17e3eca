package fundrequest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-payroll/internal/fundrequest"
	fundrequesterrors "go-payroll/internal/fundrequest/errors"
	"go-payroll/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFundRequestService struct {
	fundrequest.Service
	CreateFn  func(ctx context.Context, organizationID, actorID string, req fundrequest.CreateFundRequestRequest) (fundrequest.FundRequestResponse, error)
	GetAllFn  func(ctx context.Context, status string) ([]fundrequest.FundRequestResponse, error)
	ApproveFn func(ctx context.Context, id, approverID string) (fundrequest.FundRequestResponse, error)
	RejectFn  func(ctx context.Context, id, approverID, reason string) (fundrequest.FundRequestResponse, error)
}

func (f *fakeFundRequestService) Create(ctx context.Context, organizationID, actorID string, req fundrequest.CreateFundRequestRequest) (fundrequest.FundRequestResponse, error) {
	return f.CreateFn(ctx, organizationID, actorID, req)
}
func (f *fakeFundRequestService) GetAll(ctx context.Context, status string) ([]fundrequest.FundRequestResponse, error) {
	return f.GetAllFn(ctx, status)
}
func (f *fakeFundRequestService) Approve(ctx context.Context, id, approverID string) (fundrequest.FundRequestResponse, error) {
	return f.ApproveFn(ctx, id, approverID)
}
func (f *fakeFundRequestService) Reject(ctx context.Context, id, approverID, reason string) (fundrequest.FundRequestResponse, error) {
	return f.RejectFn(ctx, id, approverID, reason)
}

type envelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Meta  *struct {
		Total int64 `json:"total"`
	} `json:"meta"`
	Error *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	return gin.New()
}

func withClaims(userID, organizationID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		if organizationID != "" {
			c.Set("organization_id", organizationID)
		}
		c.Next()
	}
}

func TestFundRequestHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeFundRequestService{
			CreateFn: func(ctx context.Context, oid, actor string, req fundrequest.CreateFundRequestRequest) (fundrequest.FundRequestResponse, error) {
				assert.Equal(t, "org-1", oid)
				assert.Equal(t, "user-1", actor)
				assert.Equal(t, "March", req.Month)
				return fundrequest.FundRequestResponse{ID: "fr-1", Status: fundrequest.StatusPending}, nil
			},
		}
		r := setupRouter()
		r.POST("/fund-requests", withClaims("user-1", "org-1"), fundrequest.NewHandler(svc).Create)

		body := []byte(`{"request_type":"SALARY_DISBURSEMENT","total_amount":"120000","month":"March","year":2025}`)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/fund-requests", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("duplicate maps to conflict", func(t *testing.T) {
		svc := &fakeFundRequestService{
			CreateFn: func(context.Context, string, string, fundrequest.CreateFundRequestRequest) (fundrequest.FundRequestResponse, error) {
				return fundrequest.FundRequestResponse{}, fundrequesterrors.ErrDuplicateRequest
			},
		}
		r := setupRouter()
		r.POST("/fund-requests", withClaims("user-1", "org-1"), fundrequest.NewHandler(svc).Create)

		body := []byte(`{"request_type":"SALARY_DISBURSEMENT","total_amount":1,"month":"March","year":2025}`)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/fund-requests", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		var env envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		require.NotNil(t, env.Error)
		assert.Equal(t, apperror.CodeConflict, env.Error.Code)
	})

	t.Run("unknown request type", func(t *testing.T) {
		r := setupRouter()
		r.POST("/fund-requests", fundrequest.NewHandler(&fakeFundRequestService{}).Create)

		body := []byte(`{"request_type":"BONUS","total_amount":1,"month":"March","year":2025}`)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/fund-requests", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestFundRequestHandler_List(t *testing.T) {
	svc := &fakeFundRequestService{
		GetAllFn: func(ctx context.Context, status string) ([]fundrequest.FundRequestResponse, error) {
			assert.Equal(t, "PENDING", status)
			return []fundrequest.FundRequestResponse{{ID: "a"}, {ID: "b"}, {ID: "c"}}, nil
		},
	}
	r := setupRouter()
	r.GET("/admin/fund-requests", fundrequest.NewHandler(svc).List)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/fund-requests?status=PENDING&page=1&page_size=2", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var items []fundrequest.FundRequestResponse
	require.NoError(t, json.Unmarshal(env.Data, &items))
	assert.Len(t, items, 2)
	require.NotNil(t, env.Meta)
	assert.Equal(t, int64(3), env.Meta.Total)
}

func TestFundRequestHandler_ApproveReject(t *testing.T) {
	svc := &fakeFundRequestService{
		ApproveFn: func(ctx context.Context, id, approver string) (fundrequest.FundRequestResponse, error) {
			assert.Equal(t, "admin-1", approver)
			return fundrequest.FundRequestResponse{}, fundrequesterrors.ErrAlreadyProcessed
		},
		RejectFn: func(ctx context.Context, id, approver, reason string) (fundrequest.FundRequestResponse, error) {
			assert.Equal(t, "missing payroll sheet", reason)
			return fundrequest.FundRequestResponse{ID: id, Status: fundrequest.StatusRejected}, nil
		},
	}
	h := fundrequest.NewHandler(svc)
	r := setupRouter()
	r.POST("/admin/fund-requests/:id/approve", withClaims("admin-1", ""), h.Approve)
	r.POST("/admin/fund-requests/:id/reject", withClaims("admin-1", ""), h.Reject)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/admin/fund-requests/fr-1/approve", nil))
	assert.Equal(t, http.StatusConflict, w.Code)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/fund-requests/fr-1/reject", bytes.NewReader([]byte(`{"reason":"missing payroll sheet"}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

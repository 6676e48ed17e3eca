package vendors_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/vendors"
	vendorerrors "go-payroll/internal/vendors/errors"
	vendorMock "go-payroll/internal/vendors/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func setupRouter(t *testing.T) (*gin.Engine, *vendorMock.MockService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	apperror.Init()

	svc := vendorMock.NewMockService(gomock.NewController(t))
	handler := vendors.NewHandler(svc, zap.NewNop())

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("organization_id", "org-1")
		c.Next()
	})
	r.POST("/vendors", handler.Create)
	r.GET("/vendors", handler.GetAll)
	r.GET("/vendors/:id", handler.GetByID)
	return r, svc
}

func TestVendorHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		r, svc := setupRouter(t)
		svc.EXPECT().
			Create(gomock.Any(), "org-1", vendors.CreateVendorRequest{Name: "Office Supplies Co", Email: "billing@supplies.test"}).
			Return(vendors.VendorResponse{ID: "v-1", Name: "Office Supplies Co", Status: vendors.StatusActive}, nil)

		body := `{"name":"Office Supplies Co","email":"billing@supplies.test"}`
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/vendors", bytes.NewBufferString(body)))

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("missing name", func(t *testing.T) {
		r, _ := setupRouter(t)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/vendors", bytes.NewBufferString(`{"email":"a@b.test"}`)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Name is required")
	})

	t.Run("duplicate name", func(t *testing.T) {
		r, svc := setupRouter(t)
		svc.EXPECT().Create(gomock.Any(), "org-1", gomock.Any()).Return(vendors.VendorResponse{}, vendorerrors.ErrVendorAlreadyExists)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/vendors", bytes.NewBufferString(`{"name":"Office Supplies Co"}`)))

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestVendorHandler_GetAll(t *testing.T) {
	r, svc := setupRouter(t)
	list := make([]vendors.VendorResponse, 0, 12)
	for i := 0; i < 12; i++ {
		list = append(list, vendors.VendorResponse{ID: fmt.Sprintf("v-%d", i)})
	}
	svc.EXPECT().GetAll(gomock.Any(), "org-1").Return(list, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/vendors?page=2&page_size=5", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var env struct {
		Data []vendors.VendorResponse `json:"data"`
		Meta map[string]any           `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Len(t, env.Data, 5)
	assert.Equal(t, "v-5", env.Data[0].ID)
	assert.EqualValues(t, 12, env.Meta["total"])
	assert.EqualValues(t, 3, env.Meta["totalPages"])
}

func TestVendorHandler_GetByID(t *testing.T) {
	r, svc := setupRouter(t)
	svc.EXPECT().GetByID(gomock.Any(), "org-1", "missing").Return(vendors.VendorResponse{}, vendorerrors.ErrVendorNotFound)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/vendors/missing", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

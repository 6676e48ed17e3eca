package salarypayment

import (
	"fmt"
	"net/http"
	"strconv"

	salarypaymenterrors "go-payroll/internal/salarypayment/errors"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("salarypayment.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salarypayment.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("salary payment request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Process(c *gin.Context) {
	resp, err := h.service.Process(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Resume(c *gin.Context) {
	resp, err := h.service.Resume(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.GetString("organization_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DownloadSlip(c *gin.Context) {
	pdf, err := h.service.RenderSlip(c.Request.Context(), c.GetString("organization_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="salary-slip-%s.pdf"`, c.Param("id")))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (h *Handler) ListByEmployee(c *gin.Context) {
	h.listByEmployee(c, c.GetString("organization_id"), c.Param("id"))
}

func (h *Handler) ListMine(c *gin.Context) {
	h.listByEmployee(c, c.GetString("organization_id"), c.GetString("employee_id"))
}

func (h *Handler) listByEmployee(c *gin.Context, organizationID, employeeID string) {
	var year *int
	if v := c.Query("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil {
			h.writeServiceError(c, salarypaymenterrors.ErrInvalidPeriod)
			return
		}
		year = &y
	}

	resp, err := h.service.ListByEmployee(c.Request.Context(), organizationID, employeeID, year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	page, pageSize := response.PageParams(c)
	items, meta := response.Paginate(resp, page, pageSize)
	response.Success(c, http.StatusOK, items, &meta)
}

func (h *Handler) ListByPeriod(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		h.writeServiceError(c, salarypaymenterrors.ErrInvalidPeriod)
		return
	}

	resp, err := h.service.ListByOrganizationPeriod(c.Request.Context(), c.GetString("organization_id"), c.Query("month"), year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	page, pageSize := response.PageParams(c)
	items, meta := response.Paginate(resp, page, pageSize)
	response.Success(c, http.StatusOK, items, &meta)
}

func (h *Handler) ListByFundRequest(c *gin.Context) {
	resp, err := h.service.ListByFundRequest(c.Request.Context(), c.GetString("organization_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	page, pageSize := response.PageParams(c)
	items, meta := response.Paginate(resp, page, pageSize)
	response.Success(c, http.StatusOK, items, &meta)
}

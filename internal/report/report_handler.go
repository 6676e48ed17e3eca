package report

import (
	"fmt"
	"net/http"
	"strconv"

	reporterrors "go-payroll/internal/report/errors"
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
	l := zap.L().Named("report.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.handler")
	}
	return &Handler{service: service, logger: l}
}

type PublishedReport struct {
	URL      string `json:"url"`
	FileName string `json:"file_name"`
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("report request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) SalaryRegister(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		h.writeServiceError(c, reporterrors.ErrInvalidPeriod)
		return
	}
	file, err := h.service.SalaryRegister(c.Request.Context(), c.GetString("organization_id"), c.Query("month"), year)
	h.deliver(c, file, err)
}

func (h *Handler) EmployeeList(c *gin.Context) {
	file, err := h.service.EmployeeList(c.Request.Context(), c.GetString("organization_id"))
	h.deliver(c, file, err)
}

func (h *Handler) VendorPayments(c *gin.Context) {
	file, err := h.service.VendorPayments(c.Request.Context(), c.GetString("organization_id"))
	h.deliver(c, file, err)
}

// deliver streams the workbook, or stores it and returns the URL when ?publish=true.
func (h *Handler) deliver(c *gin.Context, file File, err error) {
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if publish, _ := strconv.ParseBool(c.Query("publish")); publish {
		url, err := h.service.Publish(c.Request.Context(), c.GetString("organization_id"), file)
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		response.Success(c, http.StatusCreated, PublishedReport{URL: url, FileName: file.Name}, nil)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, file.Name))
	c.Data(http.StatusOK, ContentTypeXLSX, file.Data)
}

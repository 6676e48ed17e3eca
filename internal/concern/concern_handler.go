package concern

import (
	"net/http"

	"go-payroll/internal/attachment"
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
	l := zap.L().Named("concern.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("concern.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("concern request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// employeeScope returns the caller's organization and employee ids, or false for non-employee tokens.
func employeeScope(c *gin.Context) (string, string, bool) {
	orgID, employeeID := c.GetString("organization_id"), c.GetString("employee_id")
	return orgID, employeeID, orgID != "" && employeeID != ""
}

func (h *Handler) Raise(c *gin.Context) {
	orgID, employeeID, ok := employeeScope(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrForbidden)
		return
	}

	var req RaiseConcernRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Raise(c.Request.Context(), orgID, employeeID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) ListMine(c *gin.Context) {
	orgID, employeeID, ok := employeeScope(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrForbidden)
		return
	}

	resp, err := h.service.ListMine(c.Request.Context(), orgID, employeeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	page, pageSize := response.PageParams(c)
	items, meta := response.Paginate(resp, page, pageSize)
	response.Success(c, http.StatusOK, items, &meta)
}

func (h *Handler) GetMine(c *gin.Context) {
	orgID, employeeID, ok := employeeScope(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrForbidden)
		return
	}

	resp, err := h.service.GetMine(c.Request.Context(), orgID, employeeID, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Withdraw(c *gin.Context) {
	orgID, employeeID, ok := employeeScope(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrForbidden)
		return
	}

	if err := h.service.Withdraw(c.Request.Context(), orgID, employeeID, c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": c.Param("id")}, nil)
}

func (h *Handler) Attach(c *gin.Context) {
	orgID, employeeID, ok := employeeScope(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrForbidden)
		return
	}

	file, err := attachment.ReadFormFile(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.Attach(c.Request.Context(), orgID, employeeID, c.Param("id"), file)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) List(c *gin.Context) {
	resp, err := h.service.List(c.Request.Context(), c.GetString("organization_id"), c.Query("status"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	page, pageSize := response.PageParams(c)
	items, meta := response.Paginate(resp, page, pageSize)
	response.Success(c, http.StatusOK, items, &meta)
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.GetString("organization_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Respond(c *gin.Context) {
	var req RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Respond(c.Request.Context(), c.GetString("organization_id"), c.GetString("user_id"), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.UpdateStatus(c.Request.Context(), c.GetString("organization_id"), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Close(c *gin.Context) {
	resp, err := h.service.Close(c.Request.Context(), c.GetString("organization_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

package attachment

import (
	"io"
	"net/http"

	attachmenterrors "go-payroll/internal/attachment/errors"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const formFileField = "file"

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("attachment.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attachment.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("attachment request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// ReadFormFile loads the multipart "file" field into memory, refusing anything over MaxFileSize.
func ReadFormFile(c *gin.Context) (File, error) {
	fh, err := c.FormFile(formFileField)
	if err != nil {
		return File{}, attachmenterrors.ErrFileRequired
	}
	if fh.Size > MaxFileSize {
		return File{}, attachmenterrors.ErrFileTooLarge
	}
	f, err := fh.Open()
	if err != nil {
		return File{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxFileSize+1))
	if err != nil {
		return File{}, err
	}
	return File{Name: fh.Filename, Data: data}, nil
}

func (h *Handler) UploadOrganizationDocument(c *gin.Context) {
	orgID := c.GetString("organization_id")
	if orgID == "" {
		h.writeServiceError(c, apperror.ErrForbidden)
		return
	}

	var req OrganizationDocumentRequest
	if err := c.ShouldBind(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	file, err := ReadFormFile(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.Upload(c.Request.Context(), Upload{
		OrganizationID: orgID,
		EntityType:     EntityOrganization,
		EntityID:       orgID,
		DocumentType:   req.DocumentType,
		UploadedBy:     c.GetString("user_id"),
		File:           file,
	})
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) ListMyOrganizationDocuments(c *gin.Context) {
	orgID := c.GetString("organization_id")
	if orgID == "" {
		h.writeServiceError(c, apperror.ErrForbidden)
		return
	}
	h.list(c, orgID, EntityOrganization, orgID)
}

func (h *Handler) ListOrganizationDocuments(c *gin.Context) {
	h.list(c, "", EntityOrganization, c.Param("id"))
}

func (h *Handler) UploadAccountProof(c *gin.Context) {
	orgID := c.GetString("organization_id")
	employeeID := c.GetString("employee_id")
	if orgID == "" || employeeID == "" {
		h.writeServiceError(c, apperror.ErrForbidden)
		return
	}

	file, err := ReadFormFile(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.Upload(c.Request.Context(), Upload{
		OrganizationID: orgID,
		EntityType:     EntityEmployee,
		EntityID:       employeeID,
		DocumentType:   TypeAccountProof,
		UploadedBy:     c.GetString("user_id"),
		File:           file,
	})
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

// ListEmployeeDocuments is tenant scoped for organization callers; bank admins carry no organization.
func (h *Handler) ListEmployeeDocuments(c *gin.Context) {
	h.list(c, c.GetString("organization_id"), EntityEmployee, c.Param("id"))
}

func (h *Handler) list(c *gin.Context, organizationID, entityType, entityID string) {
	resp, err := h.service.List(c.Request.Context(), organizationID, entityType, entityID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	page, pageSize := response.PageParams(c)
	items, meta := response.Paginate(resp, page, pageSize)
	response.Success(c, http.StatusOK, items, &meta)
}

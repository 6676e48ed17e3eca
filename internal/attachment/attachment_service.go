package attachment

import (
	"context"
	"errors"
	"net/http"
	"path"
	"strings"
	"time"
	"unicode/utf8"

	attachmenterrors "go-payroll/internal/attachment/errors"
	"go-payroll/internal/document"
	"go-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	MaxFileSize     = 10 << 20
	maxFileNameSize = 255

	// Content type for anything outside knownContentTypes; stored objects of this type are download-only.
	contentTypeBinary = "application/octet-stream"
)

// Sniffed content types that are stored under their own type, with the object extension.
var knownContentTypes = map[string]string{
	"application/pdf": ".pdf",
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
}

//go:generate mockgen -source=attachment_service.go -destination=mock/attachment_service_mock.go -package=mock
type Service interface {
	Upload(ctx context.Context, in Upload) (AttachmentResponse, error)
	List(ctx context.Context, organizationID, entityType, entityID string) ([]AttachmentResponse, error)
}

type service struct {
	repo   Repository
	store  document.Store
	logger *zap.Logger
}

func NewService(repo Repository, store document.Store, logger ...*zap.Logger) Service {
	l := zap.L().Named("attachment.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attachment.service")
	}
	return &service{repo: repo, store: store, logger: l}
}

func (s *service) Upload(ctx context.Context, in Upload) (AttachmentResponse, error) {
	orgID, err := uuid.Parse(in.OrganizationID)
	if err != nil {
		return AttachmentResponse{}, attachmenterrors.ErrInvalidOwner
	}
	entityID, err := uuid.Parse(in.EntityID)
	if err != nil {
		return AttachmentResponse{}, attachmenterrors.ErrInvalidOwner
	}
	if len(in.File.Data) == 0 {
		return AttachmentResponse{}, attachmenterrors.ErrFileRequired
	}
	if len(in.File.Data) > MaxFileSize {
		return AttachmentResponse{}, attachmenterrors.ErrFileTooLarge
	}
	contentType, ext := DetectContentType(in.File.Data)

	id := uuid.New()
	key, ok := objectKey(in.EntityType, orgID.String(), entityID.String(), id.String()+ext)
	if !ok {
		return AttachmentResponse{}, attachmenterrors.ErrInvalidOwner
	}

	url, err := s.store.Put(ctx, key, in.File.Data, contentType)
	if errors.Is(err, document.ErrStoreNotConfigured) {
		s.logger.Warn("upload rejected, object storage not configured", zap.String("object_key", key))
		return AttachmentResponse{}, attachmenterrors.ErrStorageUnavailable
	}
	if err != nil {
		s.logger.Error("upload to object storage failed", zap.String("object_key", key), zap.Error(err))
		return AttachmentResponse{}, attachmenterrors.ErrUploadFailed.WithCause(err)
	}

	record := &Attachment{
		ID:             id,
		OrganizationID: orgID,
		EntityType:     in.EntityType,
		EntityID:       entityID,
		DocumentType:   in.DocumentType,
		FileName:       cleanFileName(in.File.Name, ext),
		ContentType:    contentType,
		SizeBytes:      int64(len(in.File.Data)),
		ObjectKey:      key,
		URL:            url,
		CreatedAt:      time.Now().UTC(),
	}
	if uploader, err := uuid.Parse(in.UploadedBy); err == nil {
		record.UploadedBy = &uploader
	}
	if err := s.repo.Create(ctx, record); err != nil {
		s.logger.Error("record attachment failed",
			zap.String("object_key", key),
			zap.String("entity_type", in.EntityType),
			zap.String("entity_id", in.EntityID),
			zap.Error(err),
		)
		return AttachmentResponse{}, err
	}

	s.logger.Info("attachment uploaded",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("attachment_id", id.String()),
		zap.String("entity_type", in.EntityType),
		zap.String("entity_id", in.EntityID),
		zap.String("document_type", in.DocumentType),
	)
	return mapToResponse(*record), nil
}

func (s *service) List(ctx context.Context, organizationID, entityType, entityID string) ([]AttachmentResponse, error) {
	if _, err := uuid.Parse(entityID); err != nil {
		return nil, attachmenterrors.ErrInvalidOwner
	}
	items, err := s.repo.FindByEntity(ctx, organizationID, entityType, entityID)
	if err != nil {
		s.logger.Error("list attachments failed",
			zap.String("entity_type", entityType),
			zap.String("entity_id", entityID),
			zap.Error(err),
		)
		return nil, err
	}
	resp := make([]AttachmentResponse, 0, len(items))
	for _, a := range items {
		resp = append(resp, mapToResponse(a))
	}
	return resp, nil
}

// DetectContentType labels the payload from its leading bytes. Types other than
// PDF, JPEG and PNG are labelled application/octet-stream with a ".bin" extension.
func DetectContentType(data []byte) (contentType, ext string) {
	contentType = http.DetectContentType(data)
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = contentType[:i]
	}
	if ext, ok := knownContentTypes[contentType]; ok {
		return contentType, ext
	}
	return contentTypeBinary, ".bin"
}

func objectKey(entityType, organizationID, entityID, objectName string) (string, bool) {
	switch entityType {
	case EntityOrganization:
		return document.OrganizationDocumentKey(organizationID, objectName), true
	case EntityEmployee:
		return document.AccountProofKey(organizationID, entityID, objectName), true
	case EntityConcern:
		return document.ConcernAttachmentKey(organizationID, entityID, objectName), true
	}
	return "", false
}

func cleanFileName(name, ext string) string {
	name = strings.TrimSpace(path.Base(strings.ReplaceAll(name, `\`, "/")))
	if name == "" || name == "." || name == "/" {
		return "upload" + ext
	}
	for len(name) > maxFileNameSize {
		_, size := utf8.DecodeLastRuneInString(name)
		name = name[:len(name)-size]
	}
	return name
}

func mapToResponse(a Attachment) AttachmentResponse {
	return AttachmentResponse{
		ID:           a.ID.String(),
		EntityType:   a.EntityType,
		EntityID:     a.EntityID.String(),
		DocumentType: a.DocumentType,
		FileName:     a.FileName,
		ContentType:  a.ContentType,
		SizeBytes:    a.SizeBytes,
		URL:          a.URL,
		CreatedAt:    a.CreatedAt.Format(time.RFC3339),
	}
}

package document

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

const ContentTypePDF = "application/pdf"

var ErrStoreNotConfigured = errors.New("document store is not configured")

//go:generate mockgen -source=store.go -destination=mock/store_mock.go -package=mock
type Store interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// ObjectPutter is the subset of *oss.Bucket used by OSSStore.
type ObjectPutter interface {
	PutObject(objectKey string, reader io.Reader, options ...oss.Option) error
}

type OSSConfig struct {
	Endpoint        string
	AccessKeyID     string
	AccessKeySecret string
	SecurityToken   string
	Bucket          string
	Prefix          string
	PublicBaseURL   string
}

func (c OSSConfig) Enabled() bool {
	return c.Endpoint != "" && c.AccessKeyID != "" && c.AccessKeySecret != "" && c.Bucket != ""
}

type OSSStore struct {
	bucket  ObjectPutter
	cfg     OSSConfig
	baseURL string
}

func NewOSSStore(cfg OSSConfig) (*OSSStore, error) {
	if !cfg.Enabled() {
		return nil, ErrStoreNotConfigured
	}

	var opts []oss.ClientOption
	if cfg.SecurityToken != "" {
		opts = append(opts, oss.SecurityToken(cfg.SecurityToken))
	}
	client, err := oss.New(cfg.Endpoint, cfg.AccessKeyID, cfg.AccessKeySecret, opts...)
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}

	bucket, err := client.Bucket(cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}

	return NewOSSStoreWithBucket(bucket, cfg), nil
}

func NewOSSStoreWithBucket(bucket ObjectPutter, cfg OSSConfig) *OSSStore {
	return &OSSStore{bucket: bucket, cfg: cfg, baseURL: publicBaseURL(cfg)}
}

func (s *OSSStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if key == "" {
		return "", errors.New("empty object key")
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	objectKey := key
	if prefix := strings.Trim(s.cfg.Prefix, "/"); prefix != "" {
		objectKey = path.Join(prefix, key)
	}

	err := s.bucket.PutObject(objectKey, bytes.NewReader(data),
		oss.WithContext(ctx),
		oss.ContentType(contentType),
		oss.ContentDisposition("inline"),
	)
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", objectKey, err)
	}

	return s.baseURL + "/" + objectKey, nil
}

func publicBaseURL(cfg OSSConfig) string {
	if base := strings.TrimSpace(cfg.PublicBaseURL); base != "" {
		return strings.TrimRight(base, "/")
	}
	end := strings.TrimPrefix(strings.TrimPrefix(cfg.Endpoint, "https://"), "http://")
	return fmt.Sprintf("https://%s.%s", cfg.Bucket, strings.TrimRight(end, "/"))
}

// NopStore rejects every write. Callers record the failure and carry on.
type NopStore struct{}

func (NopStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	return "", ErrStoreNotConfigured
}

func SalarySlipKey(organizationID, periodKey, transactionID string) string {
	return path.Join("salary-slips", organizationID, periodKey, transactionID+".pdf")
}

func ReportKey(organizationID, name string) string {
	return path.Join("reports", organizationID, name)
}

func OrganizationDocumentKey(organizationID, objectName string) string {
	return path.Join("organization-documents", organizationID, objectName)
}

func AccountProofKey(organizationID, employeeID, objectName string) string {
	return path.Join("employee-account-proofs", organizationID, employeeID, objectName)
}

func ConcernAttachmentKey(organizationID, concernID, objectName string) string {
	return path.Join("concern-attachments", organizationID, concernID, objectName)
}

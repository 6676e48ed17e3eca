package attachment

// File is an uploaded file already read into memory.
type File struct {
	Name string
	Data []byte
}

// Upload describes one file to store against an owner.
type Upload struct {
	OrganizationID string
	EntityType     string
	EntityID       string
	DocumentType   string
	UploadedBy     string
	File           File
}

type OrganizationDocumentRequest struct {
	DocumentType string `form:"document_type" binding:"required,oneof=REGISTRATION_CERTIFICATE TAX_CERTIFICATE BANK_STATEMENT ADDRESS_PROOF OTHER"`
}

type AttachmentResponse struct {
	ID           string `json:"id"`
	EntityType   string `json:"entity_type"`
	EntityID     string `json:"entity_id"`
	DocumentType string `json:"document_type"`
	FileName     string `json:"file_name"`
	ContentType  string `json:"content_type"`
	SizeBytes    int64  `json:"size_bytes"`
	URL          string `json:"url"`
	CreatedAt    string `json:"created_at"`
}

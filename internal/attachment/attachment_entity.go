package attachment

import (
	"time"

	"github.com/google/uuid"
)

// Owners an attachment can hang off.
const (
	EntityOrganization = "ORGANIZATION"
	EntityEmployee     = "EMPLOYEE"
	EntityConcern      = "CONCERN"
)

const (
	TypeRegistrationCertificate = "REGISTRATION_CERTIFICATE"
	TypeTaxCertificate          = "TAX_CERTIFICATE"
	TypeBankStatement           = "BANK_STATEMENT"
	TypeAddressProof            = "ADDRESS_PROOF"
	TypeOther                   = "OTHER"
	TypeAccountProof            = "ACCOUNT_PROOF"
	TypeConcernAttachment       = "CONCERN_ATTACHMENT"
)

type Attachment struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID  `gorm:"type:uuid;not null;index"`
	EntityType     string     `gorm:"type:varchar(20);not null;index:idx_attachment_entity,priority:1"`
	EntityID       uuid.UUID  `gorm:"type:uuid;not null;index:idx_attachment_entity,priority:2"`
	DocumentType   string     `gorm:"type:varchar(40);not null"`
	FileName       string     `gorm:"type:varchar(255);not null"`
	ContentType    string     `gorm:"type:varchar(100);not null"`
	SizeBytes      int64      `gorm:"not null"`
	ObjectKey      string     `gorm:"type:varchar(500);not null"`
	URL            string     `gorm:"type:varchar(1000);not null"`
	UploadedBy     *uuid.UUID `gorm:"type:uuid"`
	CreatedAt      time.Time  `gorm:"not null;default:now()"`
}

func (Attachment) TableName() string {
	return "attachments"
}

package audit_logs

import (
	"time"

	"github.com/google/uuid"
)

// AuditRecord is one immutable fact per handled request. Records are only
// ever inserted; nothing in the codebase updates or deletes them.
type AuditRecord struct {
	ID        uuid.UUID `json:"-"         gorm:"column:id"`
	RequestID uuid.UUID `json:"requestId" gorm:"column:request_id"`
	Timestamp time.Time `json:"timestamp" gorm:"column:timestamp"`
	Method    string    `json:"method"    gorm:"column:method"`
	Path      string    `json:"path"      gorm:"column:path"`
	ClientAddress string `json:"clientAddress" gorm:"column:client_address"`
	UserAgent     string `json:"userAgent"     gorm:"column:user_agent"`
	// sha256 of the presented secret, or SentinelNoKey; never the raw value
	CredentialFingerprint string `json:"credentialFingerprint" gorm:"column:credential_fingerprint"`
	StatusCode            int    `json:"statusCode"            gorm:"column:status_code"`
	Success               bool   `json:"success"               gorm:"column:success"`
}

func (AuditRecord) TableName() string {
	return "api_logs"
}

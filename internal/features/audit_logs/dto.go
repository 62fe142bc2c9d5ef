package audit_logs

import "time"

type GetAuditRecordsRequest struct {
	Limit  int    `form:"limit"  json:"limit"`
	Before string `form:"before" json:"before"`
}

type GetAuditRecordsResponse struct {
	Records []*AuditRecord `json:"records"`
	Limit   int            `json:"limit"`
}

type auditQuery struct {
	limit  int
	before *time.Time
}

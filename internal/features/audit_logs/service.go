package audit_logs

import (
	"context"
	"log/slog"
	"time"

	time_parser "deskstore/internal/util/time"
)

const (
	// audit writes must never stall a request indefinitely
	writeTimeout = 5 * time.Second

	defaultQueryLimit = 100
	maxQueryLimit     = 1000
)

type AuditLogService struct {
	auditRecordRepository *AuditRecordRepository
	logger                *slog.Logger
}

// Record persists one audit record. The write survives client disconnects
// (the parent context's cancellation is stripped) and is bounded by
// writeTimeout. Failures are reported to the operator log and swallowed:
// auditing must never change the outcome of the primary request.
func (s *AuditLogService) Record(ctx context.Context, record *AuditRecord) {
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), writeTimeout)
	defer cancel()

	if err := s.auditRecordRepository.Create(writeCtx, record); err != nil {
		s.logger.Error("failed to write audit record",
			"error", err,
			"requestId", record.RequestID,
			"method", record.Method,
			"path", record.Path)
	}
}

func (s *AuditLogService) GetRecentRecords(request *GetAuditRecordsRequest) (*GetAuditRecordsResponse, error) {
	query := s.normalizeQuery(request)

	records, err := s.auditRecordRepository.GetRecent(query.limit, query.before)
	if err != nil {
		return nil, err
	}

	return &GetAuditRecordsResponse{
		Records: records,
		Limit:   query.limit,
	}, nil
}

func (s *AuditLogService) normalizeQuery(request *GetAuditRecordsRequest) auditQuery {
	limit := request.Limit
	if limit <= 0 || limit > maxQueryLimit {
		limit = defaultQueryLimit
	}

	return auditQuery{
		limit:  limit,
		before: time_parser.ParseQueryTimestamp(request.Before),
	}
}

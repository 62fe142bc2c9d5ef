package audit_logs

import (
	"deskstore/internal/util/logger"
)

var auditRecordRepository = &AuditRecordRepository{}

var auditLogService = &AuditLogService{
	auditRecordRepository: auditRecordRepository,
	logger:                logger.GetLogger(),
}

var auditLogController = &AuditLogController{
	auditLogService: auditLogService,
}

func GetAuditLogService() *AuditLogService {
	return auditLogService
}

func GetAuditLogController() *AuditLogController {
	return auditLogController
}

package audit_logs

import (
	"net/http"
	"time"

	"deskstore/internal/features/credentials"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SentinelNoKey marks requests that carried no credential at all.
const SentinelNoKey = "NO_API_KEY"

// RequestAuditMiddleware wraps the whole handler chain and emits exactly one
// audit record per request, whatever the exit path: normal completion,
// authorization rejection, or a panic escaping the inner middlewares. It
// must be registered before everything else so its deferred write runs last.
func RequestAuditMiddleware(auditLogService *AuditLogService, headerName string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := uuid.New()
		startedAt := time.Now().UTC()

		fingerprint := SentinelNoKey
		if secret := ctx.GetHeader(headerName); secret != "" {
			fingerprint = credentials.FingerprintSecret(secret)
		}

		ctx.Header("X-Request-Id", requestID.String())

		defer func() {
			if recovered := recover(); recovered != nil {
				auditLogService.logger.Error("panic while handling request",
					"requestId", requestID,
					"panic", recovered)

				if !ctx.Writer.Written() {
					ctx.AbortWithStatus(http.StatusInternalServerError)
				}
			}

			statusCode := ctx.Writer.Status()

			auditLogService.Record(ctx.Request.Context(), &AuditRecord{
				ID:                    uuid.New(),
				RequestID:             requestID,
				Timestamp:             startedAt,
				Method:                ctx.Request.Method,
				Path:                  ctx.Request.URL.Path,
				ClientAddress:         ctx.ClientIP(),
				UserAgent:             ctx.Request.UserAgent(),
				CredentialFingerprint: fingerprint,
				StatusCode:            statusCode,
				Success:               statusCode >= 200 && statusCode < 300,
			})
		}()

		ctx.Next()
	}
}

package credentials_middleware

import (
	"net/http"

	"deskstore/internal/features/credentials"
	"deskstore/internal/features/principals"
	"deskstore/internal/util/logger"

	"github.com/gin-gonic/gin"
)

const principalContextKey = "principal"

// AuthMiddleware validates the API key carried in the configured header and
// adds the owning principal to the request context. Every rejection kind is
// answered with the same message; the real reason only reaches the log.
func AuthMiddleware(credentialService *credentials.CredentialService, headerName string) gin.HandlerFunc {
	log := logger.GetLogger()

	return func(ctx *gin.Context) {
		secret := ctx.GetHeader(headerName)

		principal, err := credentialService.Authorize(secret)
		if err != nil {
			if credentials.IsRejection(err) {
				log.Debug("request rejected by authorization gate",
					"reason", err.Error(),
					"path", ctx.Request.URL.Path)
				ctx.JSON(http.StatusUnauthorized, gin.H{"error": credentials.UniformRejectionMessage})
				ctx.Abort()
				return
			}

			log.Error("authorization gate store failure", "error", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			ctx.Abort()
			return
		}

		ctx.Set(principalContextKey, principal)
		ctx.Next()
	}
}

// GetPrincipalFromContext extracts the authorized principal set by AuthMiddleware.
func GetPrincipalFromContext(ctx *gin.Context) (*principals.Principal, bool) {
	principalInterface, exists := ctx.Get(principalContextKey)
	if !exists {
		return nil, false
	}

	principal, ok := principalInterface.(*principals.Principal)

	return principal, ok
}

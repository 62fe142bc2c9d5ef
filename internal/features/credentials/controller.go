package credentials

import (
	"errors"
	"net/http"

	"deskstore/internal/features/principals"

	"github.com/gin-gonic/gin"
)

type CredentialController struct {
	credentialService *CredentialService
}

func (c *CredentialController) RegisterRoutes(router *gin.RouterGroup, middleware ...gin.HandlerFunc) {
	keyRoutes := router.Group("/keys")
	keyRoutes.Use(middleware...)

	keyRoutes.POST("/issue", c.IssueKey)
	keyRoutes.POST("/rotate", c.RotateKey)
}

// IssueKey
// @Summary Issue an API key
// @Description Exchange an email and one-time registration token for an API key. Any previously issued key for the same user is deactivated.
// @Tags keys
// @Accept json
// @Produce json
// @Param request body IssueKeyRequestDTO true "Registration claims"
// @Success 200 {object} KeyResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /keys/issue [post]
func (c *CredentialController) IssueKey(ctx *gin.Context) {
	var request IssueKeyRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	credential, err := c.credentialService.IssueKeyForRegistration(request.Email, request.RegistrationToken)
	if err != nil {
		switch {
		case errors.Is(err, principals.ErrInvalidRegistrationToken):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, ErrPrincipalNotActivated):
			ctx.JSON(http.StatusForbidden, gin.H{"error": "user account is deactivated"})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue API key"})
		}
		return
	}

	ctx.JSON(http.StatusOK, KeyResponseDTO{
		Secret:    credential.Secret,
		ExpiresAt: credential.ExpiresAt,
	})
}

// RotateKey
// @Summary Rotate an API key
// @Description Retire the presented secret and return a fresh one with a new expiry
// @Tags keys
// @Accept json
// @Produce json
// @Param request body RotateKeyRequestDTO true "Current secret"
// @Success 200 {object} KeyResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /keys/rotate [post]
func (c *CredentialController) RotateKey(ctx *gin.Context) {
	var request RotateKeyRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	credential, err := c.credentialService.RotateKey(request.Secret)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredential):
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		case errors.Is(err, ErrPrincipalNotActivated):
			ctx.JSON(http.StatusForbidden, gin.H{"error": "user account is deactivated"})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rotate API key"})
		}
		return
	}

	ctx.JSON(http.StatusOK, KeyResponseDTO{
		Secret:    credential.Secret,
		ExpiresAt: credential.ExpiresAt,
	})
}

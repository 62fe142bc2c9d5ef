package principals

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PrincipalController struct {
	principalService *PrincipalService
}

func (c *PrincipalController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/users/register", c.Register)
}

func (c *PrincipalController) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.GET("/users/:userId", c.GetPrincipal)
	router.POST("/users/:userId/activation", c.SetActivation)
}

// Register
// @Summary Register a new user
// @Description Create a user account and return its one-time registration token
// @Tags users
// @Accept json
// @Produce json
// @Param request body RegisterRequestDTO true "Registration data"
// @Success 200 {object} RegisterResponseDTO
// @Failure 400 {object} map[string]string
// @Router /users/register [post]
func (c *PrincipalController) Register(ctx *gin.Context) {
	var request RegisterRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	response, err := c.principalService.Register(&request)
	if err != nil {
		if errors.Is(err, ErrPrincipalExists) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetPrincipal
// @Summary Get user details
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Param userId path string true "User ID"
// @Success 200 {object} Principal
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /users/{userId} [get]
func (c *PrincipalController) GetPrincipal(ctx *gin.Context) {
	principalID, err := uuid.Parse(ctx.Param("userId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	principal, err := c.principalService.GetByID(principalID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get user"})
		return
	}

	if principal == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	ctx.JSON(http.StatusOK, principal)
}

// SetActivation
// @Summary Enable or disable a user account
// @Description Deactivated accounts have every credential refused by the gate
// @Tags users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param userId path string true "User ID"
// @Param request body SetActivationRequestDTO true "Activation flag"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /users/{userId}/activation [post]
func (c *PrincipalController) SetActivation(ctx *gin.Context) {
	principalID, err := uuid.Parse(ctx.Param("userId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var request SetActivationRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := c.principalService.SetActivation(principalID, *request.Activated); err != nil {
		if errors.Is(err, ErrPrincipalNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update activation"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Activation updated successfully"})
}

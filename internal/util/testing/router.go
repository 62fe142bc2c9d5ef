package test_utils

import (
	"github.com/gin-gonic/gin"
)

type RouteRegistrar interface {
	RegisterRoutes(router *gin.RouterGroup)
}

// CreateTestRouter builds an in-process router with the given controllers
// mounted under the production path prefix.
func CreateTestRouter(controllers ...RouteRegistrar) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	v1 := router.Group("/api/v1")

	for _, controller := range controllers {
		controller.RegisterRoutes(v1)
	}

	return router
}

package users_testing

import (
	users_controllers "safetybot-backend/internal/features/users/controllers"
	users_middleware "safetybot-backend/internal/features/users/middleware"
	users_services "safetybot-backend/internal/features/users/services"

	"github.com/gin-gonic/gin"
)

type ControllerInterface interface {
	RegisterRoutes(router gin.IRoutes)
}

// CreateTestRouter builds a router with auth routes mounted and the given
// controllers behind the auth middleware, mirroring the production wiring.
func CreateTestRouter(controllers ...ControllerInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	v1 := router.Group("/api/v1")
	users_controllers.GetUserController().RegisterRoutes(v1)

	protected := v1.Group("").Use(users_middleware.AuthMiddleware(users_services.GetUserService()))
	users_controllers.GetUserController().RegisterProtectedRoutes(protected)

	for _, controller := range controllers {
		controller.RegisterRoutes(protected)
	}

	return router
}

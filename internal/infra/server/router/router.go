// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/fintrack/backend/internal/integration/entrypoint/controller"
	"github.com/fintrack/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	transactionController *controller.TransactionController
	budgetController      *controller.BudgetController
	categoryController    *controller.CategoryController
	profileController     *controller.ProfileController
	registerRateLimiter   *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	transactionController *controller.TransactionController,
	budgetController *controller.BudgetController,
	categoryController *controller.CategoryController,
	profileController *controller.ProfileController,
	registerRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		transactionController: transactionController,
		budgetController:      budgetController,
		categoryController:    categoryController,
		profileController:     profileController,
		registerRateLimiter:   registerRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Default middleware: logger and recovery
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes. Every /api route requires a
// verified bearer token.
func (r *Router) setupAPIRoutes() {
	api := r.engine.Group("/api")
	api.Use(r.authMiddleware.Authenticate())
	{
		transactions := api.Group("/transactions")
		{
			transactions.GET("", r.transactionController.List)
			transactions.POST("", r.transactionController.Create)
			transactions.GET("/stats", r.transactionController.Stats)
			transactions.POST("/suggest-category", r.transactionController.SuggestCategory)
			transactions.PUT("/:id", r.transactionController.Update)
			transactions.DELETE("/:id", r.transactionController.Delete)
		}

		budgets := api.Group("/budgets")
		{
			budgets.GET("", r.budgetController.List)
			budgets.POST("", r.budgetController.Create)
			budgets.GET("/stats/overview", r.budgetController.Overview)
			budgets.GET("/:id", r.budgetController.Get)
			budgets.PUT("/:id", r.budgetController.Update)
			budgets.DELETE("/:id", r.budgetController.Delete)
		}

		categories := api.Group("/categories")
		{
			categories.GET("", r.categoryController.List)
			categories.POST("", r.categoryController.Create)
		}

		profile := api.Group("/auth/profile")
		{
			profile.GET("", r.profileController.Get)
			if r.registerRateLimiter != nil {
				profile.POST("", r.registerRateLimiter.Middleware(), r.profileController.Create)
			} else {
				profile.POST("", r.profileController.Create)
			}
			profile.PUT("", r.profileController.Update)
			profile.DELETE("", r.profileController.Delete)
			profile.DELETE("/categories/:type/:category", r.profileController.RemoveCategory)
		}
	}
}

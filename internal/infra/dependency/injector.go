// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/fintrack/backend/config"
	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/application/usecase/budget"
	"github.com/fintrack/backend/internal/application/usecase/category"
	"github.com/fintrack/backend/internal/application/usecase/profile"
	"github.com/fintrack/backend/internal/application/usecase/transaction"
	"github.com/fintrack/backend/internal/infra/server/router"
	"github.com/fintrack/backend/internal/integration/adapters"
	"github.com/fintrack/backend/internal/integration/email"
	"github.com/fintrack/backend/internal/integration/email/templates"
	"github.com/fintrack/backend/internal/integration/entrypoint/controller"
	"github.com/fintrack/backend/internal/integration/entrypoint/middleware"
	"github.com/fintrack/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	EmailWorker *email.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Create adapters/services
	tokenVerifier := adapters.NewTokenVerifier(cfg.Auth.TokenSecret)

	var statsCache adapter.StatsCache
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		statsCache = adapters.NewRedisStatsCache(redisClient)
	}

	var suggester adapter.CategorySuggester
	if cfg.AI.GeminiAPIKey != "" {
		suggester = adapters.NewGeminiService(cfg.AI.GeminiAPIKey)
	}

	var emailService adapter.EmailService
	var emailWorker *email.Worker
	if cfg.Email.ResendAPIKey != "" {
		emailService = email.NewService(emailQueueRepo)
		renderer, err := templates.NewRenderer()
		if err != nil {
			slog.Error("Failed to load email templates, worker disabled", "error", err)
		} else {
			sender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
			emailWorker = email.NewWorker(emailQueueRepo, sender, renderer, email.WorkerConfig{
				PollInterval: cfg.Email.PollInterval,
				BatchSize:    cfg.Email.BatchSize,
			})
		}
	}

	// Alert checks run after expense writes; a nil email service disables them.
	alertChecker := budget.NewAlertChecker(budgetRepo, transactionRepo, userRepo, emailService)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, statsCache, alertChecker)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, statsCache, alertChecker)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, statsCache)
	getStatsUseCase := transaction.NewGetStatsUseCase(transactionRepo, statsCache)
	suggestCategoryUseCase := transaction.NewSuggestCategoryUseCase(categoryRepo, suggester)

	// Create budget use cases
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo)
	getBudgetUseCase := budget.NewGetBudgetUseCase(budgetRepo)
	createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo)
	updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRepo)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo)
	getOverviewUseCase := budget.NewGetOverviewUseCase(budgetRepo)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)

	// Create profile use cases
	ensureProfileUseCase := profile.NewEnsureProfileUseCase(userRepo, categoryRepo)
	getProfileUseCase := profile.NewGetProfileUseCase(userRepo)
	createProfileUseCase := profile.NewCreateProfileUseCase(userRepo, categoryRepo)
	updateProfileUseCase := profile.NewUpdateProfileUseCase(userRepo)
	deleteProfileUseCase := profile.NewDeleteProfileUseCase(userRepo, transactionRepo, budgetRepo, categoryRepo)
	removeCategoryUseCase := profile.NewRemoveCategoryUseCase(userRepo)

	// Create controllers
	healthController := controller.NewHealthController()
	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		getStatsUseCase,
		suggestCategoryUseCase,
	)
	budgetController := controller.NewBudgetController(
		listBudgetsUseCase,
		getBudgetUseCase,
		createBudgetUseCase,
		updateBudgetUseCase,
		deleteBudgetUseCase,
		getOverviewUseCase,
	)
	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
	)
	profileController := controller.NewProfileController(
		getProfileUseCase,
		createProfileUseCase,
		updateProfileUseCase,
		deleteProfileUseCase,
		removeCategoryUseCase,
	)

	// Create middleware
	// Use higher rate limits for test environments to prevent flaky tests
	var registerRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		registerRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		registerRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenVerifier, ensureProfileUseCase)

	r := router.NewRouter(
		healthController,
		transactionController,
		budgetController,
		categoryController,
		profileController,
		registerRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		EmailWorker: emailWorker,
	}
}

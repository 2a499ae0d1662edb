package controller

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/application/usecase/profile"
	"github.com/fintrack/backend/internal/domain/entity"
	"github.com/fintrack/backend/internal/integration/entrypoint/dto"
	"github.com/fintrack/backend/internal/integration/entrypoint/middleware"
)

// ProfileController handles user profile endpoints.
type ProfileController struct {
	getUseCase            *profile.GetProfileUseCase
	createUseCase         *profile.CreateProfileUseCase
	updateUseCase         *profile.UpdateProfileUseCase
	deleteUseCase         *profile.DeleteProfileUseCase
	removeCategoryUseCase *profile.RemoveCategoryUseCase
}

// NewProfileController creates a new profile controller instance.
func NewProfileController(
	getUseCase *profile.GetProfileUseCase,
	createUseCase *profile.CreateProfileUseCase,
	updateUseCase *profile.UpdateProfileUseCase,
	deleteUseCase *profile.DeleteProfileUseCase,
	removeCategoryUseCase *profile.RemoveCategoryUseCase,
) *ProfileController {
	return &ProfileController{
		getUseCase:            getUseCase,
		createUseCase:         createUseCase,
		updateUseCase:         updateUseCase,
		deleteUseCase:         deleteUseCase,
		removeCategoryUseCase: removeCategoryUseCase,
	}
}

// Get handles GET /api/auth/profile requests.
func (c *ProfileController) Get(ctx *gin.Context) {
	ownerID, ok := middleware.GetOwnerIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), profile.GetProfileInput{OwnerID: ownerID})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ProfileFromEntity(output.User))
}

// Create handles POST /api/auth/profile requests.
func (c *ProfileController) Create(ctx *gin.Context) {
	ownerID, ok := middleware.GetOwnerIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}
	email, _ := middleware.GetOwnerEmailFromContext(ctx)

	// Body is optional for registration; only the display name can be set.
	var req dto.CreateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondBadRequest(ctx, "Invalid request body")
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), profile.CreateProfileInput{
		Identity: adapter.Identity{
			OwnerID: ownerID,
			Email:   email,
		},
		DisplayName: req.DisplayName,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ProfileFromEntity(output.User))
}

// Update handles PUT /api/auth/profile requests.
func (c *ProfileController) Update(ctx *gin.Context) {
	ownerID, ok := middleware.GetOwnerIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request body")
		return
	}

	input := profile.UpdateProfileInput{
		OwnerID:     ownerID,
		DisplayName: req.DisplayName,
	}
	if req.Preferences != nil {
		if req.Preferences.Currency != nil {
			currency := entity.Currency(*req.Preferences.Currency)
			input.Currency = &currency
		}
		if req.Preferences.Theme != nil {
			theme := entity.Theme(*req.Preferences.Theme)
			input.Theme = &theme
		}
		if req.Preferences.Notifications != nil {
			input.NotifyEmail = req.Preferences.Notifications.Email
			input.NotifyPush = req.Preferences.Notifications.Push
			input.BudgetAlerts = req.Preferences.Notifications.BudgetAlerts
			input.WeeklyReport = req.Preferences.Notifications.WeeklyReport
		}
		if req.Preferences.Categories != nil {
			input.IncomeCategories = req.Preferences.Categories.Income
			input.ExpenseCategories = req.Preferences.Categories.Expense
		}
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ProfileFromEntity(output.User))
}

// Delete handles DELETE /api/auth/profile requests. It removes the profile
// along with all of the owner's transactions, budgets and categories.
func (c *ProfileController) Delete(ctx *gin.Context) {
	ownerID, ok := middleware.GetOwnerIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), profile.DeleteProfileInput{OwnerID: ownerID}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Profile deleted"})
}

// RemoveCategory handles DELETE /api/auth/profile/categories/:type/:category requests.
func (c *ProfileController) RemoveCategory(ctx *gin.Context) {
	ownerID, ok := middleware.GetOwnerIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.removeCategoryUseCase.Execute(ctx.Request.Context(), profile.RemoveCategoryInput{
		OwnerID:  ownerID,
		ListType: ctx.Param("type"),
		Category: ctx.Param("category"),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CategoryListsFromEntity(output.Categories))
}

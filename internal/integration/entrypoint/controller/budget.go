package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fintrack/backend/internal/application/usecase/budget"
	"github.com/fintrack/backend/internal/domain/entity"
	"github.com/fintrack/backend/internal/integration/entrypoint/dto"
	"github.com/fintrack/backend/internal/integration/entrypoint/middleware"
)

// BudgetController handles budget endpoints.
type BudgetController struct {
	listUseCase     *budget.ListBudgetsUseCase
	getUseCase      *budget.GetBudgetUseCase
	createUseCase   *budget.CreateBudgetUseCase
	updateUseCase   *budget.UpdateBudgetUseCase
	deleteUseCase   *budget.DeleteBudgetUseCase
	overviewUseCase *budget.GetOverviewUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	listUseCase *budget.ListBudgetsUseCase,
	getUseCase *budget.GetBudgetUseCase,
	createUseCase *budget.CreateBudgetUseCase,
	updateUseCase *budget.UpdateBudgetUseCase,
	deleteUseCase *budget.DeleteBudgetUseCase,
	overviewUseCase *budget.GetOverviewUseCase,
) *BudgetController {
	return &BudgetController{
		listUseCase:     listUseCase,
		getUseCase:      getUseCase,
		createUseCase:   createUseCase,
		updateUseCase:   updateUseCase,
		deleteUseCase:   deleteUseCase,
		overviewUseCase: overviewUseCase,
	}
}

// List handles GET /api/budgets requests.
func (c *BudgetController) List(ctx *gin.Context) {
	ownerID, ok := middleware.GetOwnerIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), budget.ListBudgetsInput{OwnerID: ownerID})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.BudgetsFromEntities(output.Budgets))
}

// Get handles GET /api/budgets/:id requests.
func (c *BudgetController) Get(ctx *gin.Context) {
	ownerID, ok := middleware.GetOwnerIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondNotFound(ctx, "Budget not found")
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), budget.GetBudgetInput{
		ID:      id,
		OwnerID: ownerID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.BudgetFromEntity(output.Budget))
}

// Create handles POST /api/budgets requests.
func (c *BudgetController) Create(ctx *gin.Context) {
	ownerID, ok := middleware.GetOwnerIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request body")
		return
	}

	input := budget.CreateBudgetInput{
		OwnerID:  ownerID,
		Category: req.Category,
		Amount:   req.Amount,
		Period:   entity.BudgetPeriod(req.Period),
	}
	if req.StartDate != nil {
		input.StartDate = *req.StartDate
	}
	if req.Notifications != nil {
		notifications := entity.BudgetNotifications{
			Enabled:   true,
			Threshold: entity.DefaultAlertThreshold,
		}
		if req.Notifications.Enabled != nil {
			notifications.Enabled = *req.Notifications.Enabled
		}
		if req.Notifications.Threshold != nil {
			notifications.Threshold = *req.Notifications.Threshold
		}
		input.Notifications = &notifications
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.BudgetFromEntity(output.Budget))
}

// Update handles PUT /api/budgets/:id requests.
func (c *BudgetController) Update(ctx *gin.Context) {
	ownerID, ok := middleware.GetOwnerIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondNotFound(ctx, "Budget not found")
		return
	}

	var req dto.UpdateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request body")
		return
	}

	input := budget.UpdateBudgetInput{
		ID:        id,
		OwnerID:   ownerID,
		Category:  req.Category,
		Amount:    req.Amount,
		StartDate: req.StartDate,
	}
	if req.Period != nil {
		period := entity.BudgetPeriod(*req.Period)
		input.Period = &period
	}
	if req.Notifications != nil {
		input.NotificationsEnabled = req.Notifications.Enabled
		input.Threshold = req.Notifications.Threshold
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.BudgetFromEntity(output.Budget))
}

// Delete handles DELETE /api/budgets/:id requests.
func (c *BudgetController) Delete(ctx *gin.Context) {
	ownerID, ok := middleware.GetOwnerIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondNotFound(ctx, "Budget not found")
		return
	}

	input := budget.DeleteBudgetInput{
		ID:      id,
		OwnerID: ownerID,
	}
	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Budget deleted"})
}

// Overview handles GET /api/budgets/stats/overview requests.
func (c *BudgetController) Overview(ctx *gin.Context) {
	ownerID, ok := middleware.GetOwnerIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.overviewUseCase.Execute(ctx.Request.Context(), budget.GetOverviewInput{OwnerID: ownerID})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.BudgetOverviewFromEntity(&output.Overview))
}

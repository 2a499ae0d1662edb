package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fintrack/backend/internal/application/usecase/transaction"
	"github.com/fintrack/backend/internal/domain/entity"
	"github.com/fintrack/backend/internal/integration/entrypoint/dto"
	"github.com/fintrack/backend/internal/integration/entrypoint/middleware"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	listUseCase    *transaction.ListTransactionsUseCase
	createUseCase  *transaction.CreateTransactionUseCase
	updateUseCase  *transaction.UpdateTransactionUseCase
	deleteUseCase  *transaction.DeleteTransactionUseCase
	statsUseCase   *transaction.GetStatsUseCase
	suggestUseCase *transaction.SuggestCategoryUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	listUseCase *transaction.ListTransactionsUseCase,
	createUseCase *transaction.CreateTransactionUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
	statsUseCase *transaction.GetStatsUseCase,
	suggestUseCase *transaction.SuggestCategoryUseCase,
) *TransactionController {
	return &TransactionController{
		listUseCase:    listUseCase,
		createUseCase:  createUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
		statsUseCase:   statsUseCase,
		suggestUseCase: suggestUseCase,
	}
}

// List handles GET /api/transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
	ownerID, ok := middleware.GetOwnerIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := transaction.ListTransactionsInput{
		OwnerID:  ownerID,
		Category: ctx.Query("category"),
	}

	if startDateStr := ctx.Query("startDate"); startDateStr != "" {
		startDate, err := time.Parse("2006-01-02", startDateStr)
		if err != nil {
			respondBadRequest(ctx, "startDate must be in YYYY-MM-DD format")
			return
		}
		input.StartDate = &startDate
	}
	if endDateStr := ctx.Query("endDate"); endDateStr != "" {
		endDate, err := time.Parse("2006-01-02", endDateStr)
		if err != nil {
			respondBadRequest(ctx, "endDate must be in YYYY-MM-DD format")
			return
		}
		input.EndDate = &endDate
	}
	if typeStr := ctx.Query("type"); typeStr != "" {
		txnType := entity.TransactionType(typeStr)
		input.Type = &txnType
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TransactionsFromEntities(output.Transactions))
}

// Create handles POST /api/transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	ownerID, ok := middleware.GetOwnerIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request body")
		return
	}

	input := transaction.CreateTransactionInput{
		OwnerID:            ownerID,
		Type:               entity.TransactionType(req.Type),
		Category:           req.Category,
		Amount:             req.Amount,
		Description:        req.Description,
		Tags:               req.Tags,
		Recurring:          req.Recurring,
		RecurringFrequency: entity.RecurringFrequency(req.RecurringFrequency),
	}
	if req.Date != nil {
		input.Date = *req.Date
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.TransactionFromEntity(output.Transaction))
}

// Update handles PUT /api/transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	ownerID, ok := middleware.GetOwnerIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondNotFound(ctx, "Transaction not found")
		return
	}

	var req dto.UpdateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request body")
		return
	}

	input := transaction.UpdateTransactionInput{
		ID:          id,
		OwnerID:     ownerID,
		Category:    req.Category,
		Amount:      req.Amount,
		Description: req.Description,
		Date:        req.Date,
		Tags:        req.Tags,
		Recurring:   req.Recurring,
	}
	if req.Type != nil {
		txnType := entity.TransactionType(*req.Type)
		input.Type = &txnType
	}
	if req.RecurringFrequency != nil {
		frequency := entity.RecurringFrequency(*req.RecurringFrequency)
		input.RecurringFrequency = &frequency
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TransactionFromEntity(output.Transaction))
}

// Delete handles DELETE /api/transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	ownerID, ok := middleware.GetOwnerIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondNotFound(ctx, "Transaction not found")
		return
	}

	input := transaction.DeleteTransactionInput{
		ID:      id,
		OwnerID: ownerID,
	}
	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Transaction deleted"})
}

// Stats handles GET /api/transactions/stats requests.
func (c *TransactionController) Stats(ctx *gin.Context) {
	ownerID, ok := middleware.GetOwnerIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := transaction.GetStatsInput{
		OwnerID: ownerID,
		Period:  transaction.StatsPeriod(ctx.Query("period")),
	}

	output, err := c.statsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TypeStatsFromEntities(output.Stats))
}

// SuggestCategory handles POST /api/transactions/suggest-category requests.
func (c *TransactionController) SuggestCategory(ctx *gin.Context) {
	ownerID, ok := middleware.GetOwnerIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.SuggestCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request body")
		return
	}

	output, err := c.suggestUseCase.Execute(ctx.Request.Context(), transaction.SuggestCategoryInput{
		OwnerID:     ownerID,
		Description: req.Description,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuggestCategoryResponse{Category: output.Category})
}

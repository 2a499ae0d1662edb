// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/fintrack/backend/internal/domain/error"
	"github.com/fintrack/backend/internal/integration/entrypoint/dto"
)

// respondError translates domain errors into HTTP responses. Resources that
// exist but belong to another owner surface as not found, never as forbidden.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domainerror.ErrTransactionNotFound):
		respondNotFound(ctx, "Transaction not found")
		return
	case errors.Is(err, domainerror.ErrBudgetNotFound):
		respondNotFound(ctx, "Budget not found")
		return
	case errors.Is(err, domainerror.ErrCategoryNotFound):
		respondNotFound(ctx, "Category not found")
		return
	case errors.Is(err, domainerror.ErrUserNotFound):
		respondNotFound(ctx, "Profile not found")
		return
	case errors.Is(err, domainerror.ErrProfileAlreadyExists):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{
			Message: "Profile already exists",
			Code:    string(domainerror.ErrCodeProfileExists),
		})
		return
	case errors.Is(err, domainerror.ErrCategoryAlreadyExists):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{
			Message: "Category already exists",
			Code:    string(domainerror.ErrCodeCategoryAlreadyExists),
		})
		return
	}

	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: txnErr.Message,
			Code:    string(txnErr.Code),
		})
		return
	}

	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: budgetErr.Message,
			Code:    string(budgetErr.Code),
		})
		return
	}

	var categoryErr *domainerror.CategoryError
	if errors.As(err, &categoryErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: categoryErr.Message,
			Code:    string(categoryErr.Code),
		})
		return
	}

	var userErr *domainerror.UserError
	if errors.As(err, &userErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: userErr.Message,
			Code:    string(userErr.Code),
		})
		return
	}

	slog.Error("Unhandled error in request", "error", err, "path", ctx.FullPath())
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Message: "Internal server error",
	})
}

func respondNotFound(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: message})
}

// respondUnauthenticated is the fallback when the auth middleware did not run
// or failed to populate the caller identity.
func respondUnauthenticated(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Message: "No token provided",
		Code:    string(domainerror.ErrCodeMissingToken),
	})
}

func respondBadRequest(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: message})
}

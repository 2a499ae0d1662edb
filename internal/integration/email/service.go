// Package email provides email queueing functionality.
package email

import (
	"context"
	"fmt"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue adapter.EmailQueueRepository
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository) *Service {
	return &Service{
		queue: queue,
	}
}

// QueueBudgetAlertEmail queues a budget threshold alert email.
func (s *Service) QueueBudgetAlertEmail(ctx context.Context, input adapter.QueueBudgetAlertInput) error {
	subject := fmt.Sprintf("Budget alert: %s at %d%%", input.Category, input.Percentage)

	templateData := map[string]interface{}{
		"user_name":  input.UserName,
		"category":   input.Category,
		"spent":      input.Spent,
		"limit":      input.Limit,
		"percentage": input.Percentage,
		"threshold":  input.Threshold,
		"period":     input.Period,
	}

	job := entity.NewEmailJob(
		entity.TemplateBudgetAlert,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue budget alert email",
			err,
		)
	}

	return nil
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)

// Package email provides email queueing functionality.
package email

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
	"github.com/fintrack/backend/internal/integration/email/templates"
)

type fakeQueueRepo struct {
	jobs map[uuid.UUID]*entity.EmailJob
}

func newFakeQueueRepo() *fakeQueueRepo {
	return &fakeQueueRepo{jobs: make(map[uuid.UUID]*entity.EmailJob)}
}

func (f *fakeQueueRepo) Create(_ context.Context, job *entity.EmailJob) error {
	f.jobs[job.ID] = job
	return nil
}

func (f *fakeQueueRepo) GetPendingJobs(_ context.Context, limit int) ([]*entity.EmailJob, error) {
	now := time.Now().UTC()
	var pending []*entity.EmailJob
	for _, job := range f.jobs {
		if job.Status == entity.EmailStatusPending && !job.ScheduledAt.After(now) {
			pending = append(pending, job)
		}
		if len(pending) == limit {
			break
		}
	}
	return pending, nil
}

func (f *fakeQueueRepo) Update(_ context.Context, job *entity.EmailJob) error {
	f.jobs[job.ID] = job
	return nil
}

func (f *fakeQueueRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.EmailJob, error) {
	job, ok := f.jobs[id]
	if !ok {
		return nil, domainerror.ErrEmailJobNotFound
	}
	return job, nil
}

func (f *fakeQueueRepo) DeleteOldSentJobs(_ context.Context, _ int) (int64, error) {
	return 0, nil
}

func newTestWorker(t *testing.T) (*Worker, *fakeQueueRepo, *MockEmailSender) {
	t.Helper()

	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("failed to load templates: %v", err)
	}

	queue := newFakeQueueRepo()
	sender := NewMockEmailSender()
	worker := NewWorker(queue, sender, renderer, DefaultWorkerConfig())
	return worker, queue, sender
}

func queueAlert(t *testing.T, queue adapter.EmailQueueRepository) *entity.EmailJob {
	t.Helper()

	service := NewService(queue)
	err := service.QueueBudgetAlertEmail(context.Background(), adapter.QueueBudgetAlertInput{
		UserEmail:  "user-a@example.com",
		UserName:   "User A",
		Category:   "Food",
		Spent:      "90.00",
		Limit:      "100.00",
		Percentage: 90,
		Threshold:  80,
		Period:     "monthly",
	})
	if err != nil {
		t.Fatalf("failed to queue alert: %v", err)
	}

	jobs, err := queue.GetPendingJobs(context.Background(), 10)
	if err != nil || len(jobs) != 1 {
		t.Fatalf("expected 1 pending job, got %d (err %v)", len(jobs), err)
	}
	return jobs[0]
}

func TestWorker_ProcessNow(t *testing.T) {
	ctx := context.Background()

	t.Run("renders and sends a queued budget alert", func(t *testing.T) {
		worker, queue, sender := newTestWorker(t)
		job := queueAlert(t, queue)

		worker.ProcessNow(ctx)

		if len(sender.SentEmails) != 1 {
			t.Fatalf("expected 1 sent email, got %d", len(sender.SentEmails))
		}

		sent := sender.SentEmails[0]
		if sent.To != "user-a@example.com" {
			t.Errorf("expected recipient user-a@example.com, got %s", sent.To)
		}
		if sent.Subject != "Budget alert: Food at 90%" {
			t.Errorf("unexpected subject: %s", sent.Subject)
		}
		if !strings.Contains(sent.HTML, "Food") || !strings.Contains(sent.HTML, "90.00") {
			t.Error("expected the HTML body to carry the category and spend")
		}
		if !strings.Contains(sent.Text, "100.00") {
			t.Error("expected the text body to carry the limit")
		}

		stored, err := queue.GetByID(ctx, job.ID)
		if err != nil {
			t.Fatalf("expected the job to remain stored, got %v", err)
		}
		if stored.Status != entity.EmailStatusSent {
			t.Errorf("expected status sent, got %s", stored.Status)
		}
		if stored.ProviderID == "" {
			t.Error("expected a provider id after sending")
		}
		if stored.ProcessedAt == nil {
			t.Error("expected a processed timestamp")
		}
	})

	t.Run("temporary failures go back to pending with a retry schedule", func(t *testing.T) {
		worker, queue, sender := newTestWorker(t)
		job := queueAlert(t, queue)
		sender.SetFailure(errors.New("rate limited"), false)

		worker.ProcessNow(ctx)

		stored, _ := queue.GetByID(ctx, job.ID)
		if stored.Status != entity.EmailStatusPending {
			t.Errorf("expected status pending, got %s", stored.Status)
		}
		if stored.Attempts != 1 {
			t.Errorf("expected 1 attempt, got %d", stored.Attempts)
		}
		if stored.LastError == "" {
			t.Error("expected the failure to be recorded")
		}
	})

	t.Run("permanent failures fail the job immediately", func(t *testing.T) {
		worker, queue, sender := newTestWorker(t)
		job := queueAlert(t, queue)
		sender.SetFailure(errors.New("invalid recipient"), true)

		worker.ProcessNow(ctx)

		stored, _ := queue.GetByID(ctx, job.ID)
		if stored.Status != entity.EmailStatusFailed {
			t.Errorf("expected status failed, got %s", stored.Status)
		}
	})

	t.Run("temporary failures exhaust after max attempts", func(t *testing.T) {
		worker, queue, sender := newTestWorker(t)
		job := queueAlert(t, queue)
		sender.SetFailure(errors.New("still down"), false)

		// Force every retry to be due immediately.
		for i := 0; i < job.MaxAttempts; i++ {
			worker.ProcessNow(ctx)
			stored, _ := queue.GetByID(ctx, job.ID)
			stored.ScheduledAt = time.Now().UTC().Add(-time.Second)
		}

		stored, _ := queue.GetByID(ctx, job.ID)
		if stored.Status != entity.EmailStatusFailed {
			t.Errorf("expected status failed after %d attempts, got %s", job.MaxAttempts, stored.Status)
		}
		if stored.Attempts != job.MaxAttempts {
			t.Errorf("expected %d attempts, got %d", job.MaxAttempts, stored.Attempts)
		}
	})

	t.Run("unknown templates fail permanently", func(t *testing.T) {
		worker, queue, sender := newTestWorker(t)
		job := entity.NewEmailJob("weekly_report", "user-a@example.com", "User A", "Weekly report", nil)
		if err := queue.Create(ctx, job); err != nil {
			t.Fatalf("failed to queue job: %v", err)
		}

		worker.ProcessNow(ctx)

		if len(sender.SentEmails) != 0 {
			t.Errorf("expected nothing sent, got %d", len(sender.SentEmails))
		}
		stored, _ := queue.GetByID(ctx, job.ID)
		if stored.Status != entity.EmailStatusFailed {
			t.Errorf("expected status failed, got %s", stored.Status)
		}
	})
}

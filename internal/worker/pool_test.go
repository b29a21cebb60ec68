package worker

import (
	"errors"
	"testing"

	"quizzy-backend/internal/services"
)

func newDevEmailService() *services.EmailService {
	// Empty SMTP host puts the service in dev mode: emails are logged, not sent.
	return services.NewEmailService("", "", "", "", "noreply@quizzy.app", "http://localhost:5173")
}

func TestPool_EnqueueAndDrain(t *testing.T) {
	pool := NewPool(newDevEmailService(), 2, 8)
	pool.Start()

	for i := 0; i < 5; i++ {
		err := pool.Enqueue(EmailJob{
			Kind:        JobQuizResults,
			To:          "student@example.com",
			StudentName: "Alice",
			Score:       8,
			Total:       10,
			Percentage:  80,
			Passed:      true,
		})
		if err != nil {
			t.Fatalf("enqueue %d: %v", i, err)
		}
	}

	// Stop drains queued jobs before returning.
	pool.Stop()

	if len(pool.jobs) != 0 {
		t.Errorf("expected drained queue, %d jobs left", len(pool.jobs))
	}
}

func TestPool_EnqueueFullQueue(t *testing.T) {
	// No workers started, so nothing consumes the queue.
	pool := NewPool(newDevEmailService(), 1, 2)

	if err := pool.Enqueue(EmailJob{Kind: JobVerification, To: "a@example.com"}); err != nil {
		t.Fatalf("first enqueue: %v", err)
	}
	if err := pool.Enqueue(EmailJob{Kind: JobVerification, To: "b@example.com"}); err != nil {
		t.Fatalf("second enqueue: %v", err)
	}

	err := pool.Enqueue(EmailJob{Kind: JobVerification, To: "c@example.com"})
	if !errors.Is(err, ErrQueueFull) {
		t.Fatalf("expected ErrQueueFull, got %v", err)
	}
}

func TestNewPool_ClampsInvalidSizes(t *testing.T) {
	pool := NewPool(newDevEmailService(), 0, 0)

	if pool.workerCount != 1 {
		t.Errorf("expected worker count clamped to 1, got %d", pool.workerCount)
	}
	if cap(pool.jobs) != 64 {
		t.Errorf("expected queue size clamped to 64, got %d", cap(pool.jobs))
	}
}

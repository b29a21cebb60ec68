package worker

import (
	"errors"
	"log"
	"sync"

	"quizzy-backend/internal/services"
)

// ErrQueueFull is returned when the email queue cannot take another job.
var ErrQueueFull = errors.New("email queue is full")

const (
	JobQuizResults   = "quiz_results"
	JobVerification  = "verification"
	JobPasswordReset = "password_reset"
)

// EmailJob is one queued outbound email.
type EmailJob struct {
	Kind        string
	To          string
	StudentName string
	Token       string
	Score       int
	Total       int
	Percentage  float64
	Passed      bool
}

// Pool dispatches queued emails on a fixed set of goroutines so request
// latency stays independent of SMTP round trips.
type Pool struct {
	email       *services.EmailService
	jobs        chan EmailJob
	workerCount int
	stopChan    chan struct{}
	wg          sync.WaitGroup
}

func NewPool(email *services.EmailService, workerCount, queueSize int) *Pool {
	if workerCount < 1 {
		workerCount = 1
	}
	if queueSize < 1 {
		queueSize = 64
	}
	return &Pool{
		email:       email,
		jobs:        make(chan EmailJob, queueSize),
		workerCount: workerCount,
		stopChan:    make(chan struct{}),
	}
}

func (p *Pool) Start() {
	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
	log.Printf("Started %d email worker goroutines", p.workerCount)
}

// Stop shuts the workers down after draining jobs already in the queue.
func (p *Pool) Stop() {
	close(p.stopChan)
	p.wg.Wait()
}

// Enqueue queues a job without blocking; a full queue is reported to the
// caller instead of stalling the request.
func (p *Pool) Enqueue(job EmailJob) error {
	select {
	case p.jobs <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobs:
			p.process(id, job)
		case <-p.stopChan:
			// Drain remaining jobs before exiting.
			for {
				select {
				case job := <-p.jobs:
					p.process(id, job)
				default:
					log.Printf("Email worker %d shutting down", id)
					return
				}
			}
		}
	}
}

func (p *Pool) process(id int, job EmailJob) {
	var err error
	switch job.Kind {
	case JobQuizResults:
		err = p.email.SendQuizResults(job.To, job.StudentName, job.Score, job.Total, job.Percentage, job.Passed)
	case JobVerification:
		err = p.email.SendVerificationEmail(job.To, job.Token)
	case JobPasswordReset:
		err = p.email.SendPasswordResetEmail(job.To, job.Token)
	default:
		log.Printf("Email worker %d: unknown job kind %q", id, job.Kind)
		return
	}
	if err != nil {
		log.Printf("Email worker %d: failed to send %s email to %s: %v", id, job.Kind, job.To, err)
	}
}

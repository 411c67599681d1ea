// Package services wires validation, the relay attempt and the durable
// local write into the single entry point the presentation layer calls
// per submission.
package services

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/argossea/courier/internal/logging"
	"github.com/argossea/courier/internal/models"
	"github.com/argossea/courier/internal/relay"
	"github.com/argossea/courier/internal/storage"
)

// Result is what a finished submission hands back to the caller. The
// message is committed locally; Remote reports how the advisory relay
// leg went and is surfaced as a soft warning at most.
type Result struct {
	Message models.Message
	Remote  relay.Outcome
}

// SubmissionService is the caller-facing API of the intake subsystem.
type SubmissionService interface {
	// Submit validates fields, attempts the relay exactly once, and
	// always persists locally. A validation failure short-circuits
	// before any side effect; a persistence failure fails the whole
	// submission even if the relay accepted.
	Submit(ctx context.Context, fields models.Fields) (*Result, error)

	// List returns the committed messages, newest first.
	List(ctx context.Context) ([]models.Message, error)

	// Clear removes every committed message.
	Clear(ctx context.Context) error

	// Busy reports whether a submission is currently in flight.
	// Callers must check it before invoking Submit again; re-entrant
	// submits are a caller error, not a coordinator-enforced lock.
	Busy() bool
}

type submissionService struct {
	store     storage.Store
	submitter relay.Submitter
	log       logging.Logger
	now       func() time.Time

	// mu serializes appends against the single store: the store
	// contract is read-modify-write over the whole collection.
	mu   sync.Mutex
	busy atomic.Bool
}

func NewSubmissionService(store storage.Store, submitter relay.Submitter, log logging.Logger) SubmissionService {
	return &submissionService{
		store:     store,
		submitter: submitter,
		log:       log,
		now:       time.Now,
	}
}

func (s *submissionService) Busy() bool {
	return s.busy.Load()
}

func (s *submissionService) Submit(ctx context.Context, fields models.Fields) (*Result, error) {
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	s.busy.Store(true)
	defer s.busy.Store(false)

	msg := models.New(fields, s.now())

	// One attempt, outcome advisory: the local write below proceeds
	// whichever way the remote leg resolves.
	outcome := s.submitter.Submit(ctx, fields)
	if !outcome.Accepted() {
		s.log.Warn(ctx, "relay attempt failed",
			"id", msg.Id, "status", string(outcome.Status), "reason", outcome.Reason)
	}

	s.mu.Lock()
	_, err := s.store.Append(ctx, msg)
	s.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("saving message: %w", err)
	}

	return &Result{Message: msg, Remote: outcome}, nil
}

func (s *submissionService) List(ctx context.Context) ([]models.Message, error) {
	msgs, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading messages: %w", err)
	}
	return msgs, nil
}

func (s *submissionService) Clear(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clearing messages: %w", err)
	}
	return nil
}

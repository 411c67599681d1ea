// Package models defines the record types persisted by the courier
// store.
package models

import (
	"fmt"
	"time"

	"github.com/argossea/courier/internal/common"
	"github.com/google/uuid"
)

// CreatedAtLayout is the human-readable layout captured on every
// message. It mirrors the dd/mm/yyyy locale string the portal always
// stored, so older backups stay readable.
const CreatedAtLayout = "02/01/2006, 15:04:05"

// Fields carries the user-entered values of one submission attempt.
// The same structure is the payload of the outbound relay request.
type Fields struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Validate checks the required fields. Message may be empty; name and
// email must not be. Email gets no format check beyond emptiness.
func (f Fields) Validate() error {
	if f.Name == "" {
		return fmt.Errorf("%w: name is required", common.ErrValidation)
	}
	if f.Email == "" {
		return fmt.Errorf("%w: email is required", common.ErrValidation)
	}
	return nil
}

// Message is one persisted contact submission. Every field is fixed at
// creation; nothing mutates a message once the store has it.
type Message struct {
	// Id is a globally unique identifier, never reassigned and never
	// reused after the registry is cleared.
	Id string `json:"id"`

	Name  string `json:"name"`
	Email string `json:"email"`

	// Body is the free-text part of the submission. Persisted under
	// the key "message"; "body" and "text" are historical aliases
	// accepted on import.
	Body string `json:"message"`

	// CreatedAt is the formatted capture time, see CreatedAtLayout.
	CreatedAt string `json:"createdAt"`
}

// New builds a Message from already-validated fields, assigning a fresh
// id and stamping the given time.
func New(f Fields, now time.Time) Message {
	return Message{
		Id:        uuid.NewString(),
		Name:      f.Name,
		Email:     f.Email,
		Body:      f.Message,
		CreatedAt: now.Format(CreatedAtLayout),
	}
}

// Package relay implements the best-effort outbound leg of a
// submission. The relay is advisory only: it never touches the local
// store and its failure never blocks a local commit.
package relay

import (
	"context"

	"github.com/argossea/courier/internal/models"
)

// Status classifies how a delivery attempt resolved.
type Status string

const (
	// StatusAccepted means the acceptor confirmed receipt.
	StatusAccepted Status = "accepted"
	// StatusRejected means the acceptor answered and declined.
	StatusRejected Status = "rejected"
	// StatusUnreachable means no answer arrived at all.
	StatusUnreachable Status = "unreachable"
)

// Outcome reports the result of a single delivery attempt. Rejected and
// Unreachable differ only for diagnostics; callers must treat both as
// "remote leg failed" and never branch on which one occurred.
type Outcome struct {
	Status Status
	Reason string
}

// Accepted reports whether the acceptor confirmed receipt.
func (o Outcome) Accepted() bool {
	return o.Status == StatusAccepted
}

// Submitter hands submitted field values to an external acceptor.
// Exactly one attempt per call: no retry policy, no store side effects.
type Submitter interface {
	Submit(ctx context.Context, fields models.Fields) Outcome
}

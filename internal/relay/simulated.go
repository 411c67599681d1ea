package relay

import (
	"context"
	"time"

	"github.com/argossea/courier/internal/models"
)

// Simulated is the acceptor used when no relay endpoint is configured.
// It resolves Accepted after a fixed artificial delay, mimicking the
// latency of a real exchange without leaving the device.
type Simulated struct {
	delay time.Duration
}

func NewSimulated(delay time.Duration) *Simulated {
	return &Simulated{delay: delay}
}

func (s *Simulated) Submit(ctx context.Context, _ models.Fields) Outcome {
	if s.delay > 0 {
		t := time.NewTimer(s.delay)
		defer t.Stop()
		select {
		case <-t.C:
		case <-ctx.Done():
			// A canceled wait only cuts the delay short; the simulated
			// acceptor still accepts.
		}
	}
	return Outcome{Status: StatusAccepted}
}

package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/argossea/courier/internal/models"
)

// maxErrorBody bounds how much of a rejection body is kept as the
// diagnostic reason.
const maxErrorBody = 512

// HTTPSubmitter posts submissions as JSON to a hosted relay endpoint,
// Formspree-style: a 2xx answer is an accept, anything else a reject,
// and a transport error or timeout means the relay was unreachable.
type HTTPSubmitter struct {
	endpoint   string
	httpClient *http.Client
}

// NewHTTPSubmitter returns a submitter targeting endpoint. The timeout
// bounds the whole exchange; after it the attempt resolves Unreachable.
func NewHTTPSubmitter(endpoint string, timeout time.Duration) *HTTPSubmitter {
	return &HTTPSubmitter{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (s *HTTPSubmitter) Submit(ctx context.Context, fields models.Fields) Outcome {
	payload, err := json.Marshal(fields)
	if err != nil {
		return Outcome{Status: StatusRejected, Reason: fmt.Sprintf("encoding payload: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return Outcome{Status: StatusUnreachable, Reason: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return Outcome{Status: StatusUnreachable, Reason: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return Outcome{Status: StatusAccepted}
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	reason := resp.Status
	if b := strings.TrimSpace(string(body)); b != "" {
		reason = fmt.Sprintf("%s: %s", resp.Status, b)
	}
	return Outcome{Status: StatusRejected, Reason: reason}
}

// Package backup serializes the full local registry to a portable JSON
// document and restores a registry from one.
package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/argossea/courier/internal/common"
	"github.com/argossea/courier/internal/models"
	"github.com/argossea/courier/internal/storage"
)

// DefaultPrefix names export files when no prefix is configured.
const DefaultPrefix = "courier_backup"

// Adapter exports and imports the whole store in one piece.
type Adapter struct {
	store  storage.Store
	prefix string
	now    func() time.Time
}

func NewAdapter(store storage.Store, prefix string) *Adapter {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Adapter{store: store, prefix: prefix, now: time.Now}
}

// Export returns the pretty-printed registry snapshot together with the
// download file name derived from the current date, e.g.
// courier_backup_2024-06-07.json.
func (a *Adapter) Export(ctx context.Context) ([]byte, string, error) {
	doc, err := a.store.Snapshot(ctx)
	if err != nil {
		return nil, "", err
	}
	name := fmt.Sprintf("%s_%s.json", a.prefix, a.now().Format("2006-01-02"))
	return doc, name, nil
}

// entry mirrors one message in a backup document. Pointer fields let
// Import tell an absent field from an empty one. The text field has
// historically appeared as "message", "body" or "text"; all three are
// accepted and canonicalized to "message".
type entry struct {
	Id        *string `json:"id"`
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	Message   *string `json:"message"`
	Body      *string `json:"body"`
	Text      *string `json:"text"`
	CreatedAt *string `json:"createdAt"`
}

func (e entry) toMessage() (models.Message, error) {
	if e.Id == nil || *e.Id == "" {
		return models.Message{}, fmt.Errorf("%w: missing id", common.ErrImport)
	}
	if e.Name == nil || *e.Name == "" {
		return models.Message{}, fmt.Errorf("%w: missing name", common.ErrImport)
	}
	if e.Email == nil || *e.Email == "" {
		return models.Message{}, fmt.Errorf("%w: missing email", common.ErrImport)
	}
	if e.CreatedAt == nil || *e.CreatedAt == "" {
		return models.Message{}, fmt.Errorf("%w: missing createdAt", common.ErrImport)
	}

	body := e.Message
	if body == nil {
		body = e.Body
	}
	if body == nil {
		body = e.Text
	}
	if body == nil {
		return models.Message{}, fmt.Errorf("%w: missing message", common.ErrImport)
	}

	return models.Message{
		Id:        *e.Id,
		Name:      *e.Name,
		Email:     *e.Email,
		Body:      *body,
		CreatedAt: *e.CreatedAt,
	}, nil
}

// Import parses doc, validates every entry, and replaces the whole
// registry with the parsed sequence in the order given. Any malformed
// entry rejects the document wholesale; the existing registry is left
// untouched.
func (a *Adapter) Import(ctx context.Context, doc []byte) ([]models.Message, error) {
	var entries []entry
	if err := json.Unmarshal(doc, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrImport, err)
	}

	msgs := make([]models.Message, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))
	for i, e := range entries {
		m, err := e.toMessage()
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		if _, dup := seen[m.Id]; dup {
			return nil, fmt.Errorf("entry %d: %w: duplicate id %s", i, common.ErrImport, m.Id)
		}
		seen[m.Id] = struct{}{}
		msgs = append(msgs, m)
	}

	if err := a.store.ReplaceAll(ctx, msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

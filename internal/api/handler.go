// Package api exposes the self-hosted HTTP acceptor. It plays the role
// of the externally hosted relay for installations that don't use one:
// it validates an inbound submission and persists it into its own
// registry, answering with the committed message.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/argossea/courier/internal/logging"
	"github.com/argossea/courier/internal/models"
	"github.com/argossea/courier/internal/storage"
)

const maxBodySize = 1 << 20 // 1MB

// NewHandler builds the acceptor router around the given registry.
func NewHandler(store storage.Store, log logging.Logger) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", handleHealth)
	r.Post("/api/submissions", handleSubmit(store, log))
	r.Get("/api/submissions", handleList(store, log))

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func handleSubmit(store storage.Store, log logging.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var fields models.Fields
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
		if err := dec.Decode(&fields); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		if err := fields.Validate(); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		msg := models.New(fields, time.Now())
		if _, err := store.Append(r.Context(), msg); err != nil {
			log.Error(r.Context(), "failed to persist submission", "id", msg.Id, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to persist submission")
			return
		}

		log.Info(r.Context(), "submission accepted", "id", msg.Id)
		writeJSON(w, http.StatusCreated, msg)
	}
}

func handleList(store storage.Store, log logging.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		msgs, err := store.LoadAll(r.Context())
		if err != nil {
			log.Error(r.Context(), "failed to load submissions", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to load submissions")
			return
		}
		writeJSON(w, http.StatusOK, msgs)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

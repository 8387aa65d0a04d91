package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"passvault/internal/middleware"
	"passvault/internal/model"
	"passvault/internal/repo"
	"passvault/internal/service"
)

// EntryHandler serves the credential CRUD.
type EntryHandler struct {
	Service *service.EntryService
	Logger  *zap.SugaredLogger
}

func NewEntryHandler(entryService *service.EntryService, logger *zap.SugaredLogger) *EntryHandler {
	return &EntryHandler{Service: entryService, Logger: logger}
}

// entryDTO is the wire shape of one entry.
type entryDTO struct {
	ID       int64  `json:"id"`
	Service  string `json:"service"`
	Login    string `json:"login"`
	Password string `json:"password"`
}

type createRequest struct {
	Service  string `json:"service"`
	Login    string `json:"login"`
	Password string `json:"password"`
}

type updateRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

func toDTO(e model.Entry) entryDTO {
	return entryDTO{ID: e.ID, Service: e.Service, Login: e.Login, Password: e.Password}
}

func (h *EntryHandler) userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}
	return id, ok
}

func entryID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// List returns all entries of the authenticated user in insertion order.
func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	entries, err := h.Service.List(r.Context(), userID)
	if err != nil {
		h.Logger.Errorw("List failed", "user_id", userID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	dtos := make([]entryDTO, 0, len(entries))
	for _, e := range entries {
		dtos = append(dtos, toDTO(e))
	}
	writeJSON(w, dtos)
}

// Create stores a new entry and returns it with the server-assigned id.
func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	e, err := h.Service.Create(r.Context(), userID, req.Service, req.Login, req.Password)
	if err != nil {
		h.respondEntryError(w, userID, err)
		return
	}
	writeJSON(w, toDTO(*e))
}

// Update replaces login and password of an entry.
func (h *EntryHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, err := entryID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	e, err := h.Service.Update(r.Context(), userID, id, req.Login, req.Password)
	if err != nil {
		h.respondEntryError(w, userID, err)
		return
	}
	writeJSON(w, toDTO(*e))
}

// Delete removes an entry.
func (h *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, err := entryID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	if err := h.Service.Delete(r.Context(), userID, id); err != nil {
		h.respondEntryError(w, userID, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *EntryHandler) respondEntryError(w http.ResponseWriter, userID int64, err error) {
	switch {
	case errors.Is(err, repo.ErrEntryNotFound):
		http.Error(w, "entry not found", http.StatusNotFound)
	case errors.Is(err, service.ErrInvalidEntry):
		http.Error(w, "service and login are required", http.StatusBadRequest)
	default:
		h.Logger.Errorw("entry operation failed", "user_id", userID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

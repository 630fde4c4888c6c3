package http

import (
	"encoding/json"
	"net/http"

	"github.com/enzg/one-big-key-sub004/internal/logger"
	"github.com/enzg/one-big-key-sub004/internal/utils"
	"github.com/enzg/one-big-key-sub004/models"
)

// upload accepts a batch of encrypted items. Conflict resolution is per item:
// the response reports accepted ids and, for losing items, the current server
// revision.
func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.UploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("upload request rejected by validation")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp, err := h.services.SyncService.Upload(ctx, userID, req)
	if err != nil {
		log.Err(err).Msg("upload failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Debug().
		Int64("user_id", userID).
		Int("accepted", len(resp.Accepted)).
		Int("rejected", len(resp.Rejected)).
		Msg("upload resolved")

	utils.WriteJSON(w, resp, http.StatusOK)
}

// fetch returns the user's stored items matching the request filters.
func (h *Handler) fetch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.FetchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("fetch request rejected by validation")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp, err := h.services.SyncService.Fetch(ctx, userID, req)
	if err != nil {
		log.Err(err).Msg("fetch failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

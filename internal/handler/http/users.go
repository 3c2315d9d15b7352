package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/footy-tipping/internal/logger"
	"github.com/MKhiriev/footy-tipping/internal/service"
	"github.com/MKhiriev/footy-tipping/internal/utils"
	"github.com/MKhiriev/footy-tipping/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) authenticateUser(w http.ResponseWriter, r *http.Request) {
	var req models.AuthenticateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.services.UserService.Authenticate(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Int64("user_id", resp.ID).Msg("user authenticated")
	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.UserService.Register(r.Context(), req); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteMessage(w, models.MessageRegistrationSuccessful, http.StatusOK)
}

func (h *Handler) getAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.GetAll(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	// an empty table is written as [] rather than null
	if users == nil {
		users = []models.User{}
	}
	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) getUserByID(w http.ResponseWriter, r *http.Request) {
	id, err := userIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, err := userIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.UpdateRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.UserService.Update(r.Context(), id, req); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteMessage(w, models.MessageUserUpdated, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := userIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.UserService.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteMessage(w, models.MessageUserDeleted, http.StatusOK)
}

// decodeJSON reports any undecodable body as invalid data. The decoder
// error is logged, not returned to the caller.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("invalid JSON was passed")
		return service.ErrInvalidDataProvided
	}
	return nil
}

func userIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidUserID
	}
	return id, nil
}

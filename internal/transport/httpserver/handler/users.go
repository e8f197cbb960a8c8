package handler

import (
	"errors"
	"net/http"

	userdomain "band-app-go/internal/domain/user"
	"band-app-go/internal/transport/httpserver/middleware"
)

type signupRequest struct {
	Name         string  `json:"name"`
	Biography    *string `json:"biography"`
	ThumbnailURL *string `json:"thumbnailUrl"`
	Role         string  `json:"role"`
	Part         *string `json:"part"`
}

type editUserRequest struct {
	Name         string  `json:"name"`
	Biography    *string `json:"biography"`
	ThumbnailURL *string `json:"thumbnailUrl"`
	Part         *string `json:"part"`
}

type userResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Biography    *string `json:"biography"`
	ThumbnailURL *string `json:"thumbnailUrl"`
	Role         string  `json:"role"`
	Part         *string `json:"part"`
}

func toUserResponse(u *userdomain.User) userResponse {
	return userResponse{
		ID:           u.ID,
		Name:         u.Name,
		Biography:    u.Biography,
		ThumbnailURL: u.ThumbnailURL,
		Role:         u.Role,
		Part:         u.Part,
	}
}

func (h *Handlers) Signup(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	var req signupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	result, err := h.Users.Signup(r.Context(), identity.ProviderID, userdomain.SignupInput{
		Name:         req.Name,
		Biography:    req.Biography,
		ThumbnailURL: req.ThumbnailURL,
		Role:         req.Role,
		Part:         req.Part,
	})
	if err != nil {
		switch {
		case errors.Is(err, userdomain.ErrUserExists):
			h.log.BusinessError("users.signup: already signed up", err, "provider_id", identity.ProviderID)
			writeError(w, http.StatusConflict, "user_exists", "user already exists")
		case errors.Is(err, userdomain.ErrInvalidRole):
			writeError(w, http.StatusBadRequest, "invalid_role", "role must be fan or artist")
		case errors.Is(err, userdomain.ErrArtistPartMissing):
			writeError(w, http.StatusBadRequest, "invalid_request", "artist part is required")
		default:
			h.log.InternalError("users.signup: signup failed", err, "provider_id", identity.ProviderID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, toUserResponse(result))
}

func (h *Handlers) AuthMe(w http.ResponseWriter, r *http.Request) {
	account, ok := requireAccount(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(account))
}

func (h *Handlers) EditUser(w http.ResponseWriter, r *http.Request) {
	account, ok := requireAccount(w, r)
	if !ok {
		return
	}

	var req editUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	result, err := h.Users.EditUser(r.Context(), account.ID, userdomain.EditUserInput{
		Name:         req.Name,
		Biography:    req.Biography,
		ThumbnailURL: req.ThumbnailURL,
		Part:         req.Part,
	})
	if err != nil {
		if errors.Is(err, userdomain.ErrUserNotFound) {
			h.log.BusinessError("users.edit: user not found", err, "user_id", account.ID)
			writeError(w, http.StatusNotFound, "user_not_found", "user not found")
			return
		}
		h.log.InternalError("users.edit: edit failed", err, "user_id", account.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(result))
}

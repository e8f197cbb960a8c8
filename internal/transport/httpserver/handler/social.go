package handler

import (
	"context"
	"errors"
	"net/http"

	socialdomain "band-app-go/internal/domain/social"
	"github.com/go-chi/chi/v5"
)

type targetRequest struct {
	ID string `json:"id"`
}

func (h *Handlers) FollowGroup(w http.ResponseWriter, r *http.Request) {
	h.applyEdge(w, r, "social.follow_group", h.Social.FollowGroup)
}

func (h *Handlers) UnfollowGroup(w http.ResponseWriter, r *http.Request) {
	h.applyEdge(w, r, "social.unfollow_group", h.Social.UnfollowGroup)
}

func (h *Handlers) FollowUser(w http.ResponseWriter, r *http.Request) {
	h.applyEdge(w, r, "social.follow_user", h.Social.FollowUser)
}

func (h *Handlers) UnfollowUser(w http.ResponseWriter, r *http.Request) {
	h.applyEdge(w, r, "social.unfollow_user", h.Social.UnfollowUser)
}

func (h *Handlers) LikeLive(w http.ResponseWriter, r *http.Request) {
	h.applyEdge(w, r, "social.like_live", h.Social.LikeLive)
}

func (h *Handlers) UnlikeLive(w http.ResponseWriter, r *http.Request) {
	h.applyEdge(w, r, "social.unlike_live", h.Social.UnlikeLive)
}

func (h *Handlers) LikeFeed(w http.ResponseWriter, r *http.Request) {
	h.applyEdge(w, r, "social.like_feed", h.Social.LikeFeed)
}

func (h *Handlers) UnlikeFeed(w http.ResponseWriter, r *http.Request) {
	h.applyEdge(w, r, "social.unlike_feed", h.Social.UnlikeFeed)
}

// applyEdge is the shared shape of every edge mutation: the body names a
// target id, the actor comes from the request context, and success is an
// empty 200 even when the write was a no-op.
func (h *Handlers) applyEdge(w http.ResponseWriter, r *http.Request, op string, apply func(ctx context.Context, userID, targetID string) error) {
	account, ok := requireAccount(w, r)
	if !ok {
		return
	}

	var req targetRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if req.ID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "id is required")
		return
	}

	if err := apply(r.Context(), account.ID, req.ID); err != nil {
		switch {
		case errors.Is(err, socialdomain.ErrSelfFollow):
			writeError(w, http.StatusBadRequest, "self_follow", "cannot follow yourself")
		case errors.Is(err, socialdomain.ErrGroupNotFound):
			h.log.BusinessError(op+": group not found", err, "target_id", req.ID)
			writeError(w, http.StatusNotFound, "group_not_found", "group not found")
		case errors.Is(err, socialdomain.ErrUserNotFound):
			h.log.BusinessError(op+": user not found", err, "target_id", req.ID)
			writeError(w, http.StatusNotFound, "user_not_found", "user not found")
		default:
			h.log.InternalError(op+": edge write failed", err, "user_id", account.ID, "target_id", req.ID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handlers) FollowingGroups(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAccount(w, r); !ok {
		return
	}

	page, per, err := parsePageParams(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	userID := chi.URLParam(r, "user_id")
	result, err := h.Social.FollowingGroups(r.Context(), userID, page, per)
	if err != nil {
		h.log.InternalError("social.following_groups: list failed", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *Handlers) GroupFollowers(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAccount(w, r); !ok {
		return
	}

	page, per, err := parsePageParams(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	groupID := chi.URLParam(r, "group_id")
	result, err := h.Social.GroupFollowers(r.Context(), groupID, page, per)
	if err != nil {
		h.log.InternalError("social.group_followers: list failed", err, "group_id", groupID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *Handlers) FollowingUsers(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAccount(w, r); !ok {
		return
	}

	page, per, err := parsePageParams(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	userID := chi.URLParam(r, "user_id")
	result, err := h.Social.FollowingUsers(r.Context(), userID, page, per)
	if err != nil {
		h.log.InternalError("social.following_users: list failed", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *Handlers) UserFollowers(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAccount(w, r); !ok {
		return
	}

	page, per, err := parsePageParams(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	userID := chi.URLParam(r, "user_id")
	result, err := h.Social.UserFollowers(r.Context(), userID, page, per)
	if err != nil {
		h.log.InternalError("social.user_followers: list failed", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	groupdomain "band-app-go/internal/domain/group"
	"github.com/go-chi/chi/v5"
)

type createGroupRequest struct {
	Name        string  `json:"name"`
	EnglishName *string `json:"englishName"`
	Biography   *string `json:"biography"`
	Since       *string `json:"since"`
	ArtworkURL  *string `json:"artworkUrl"`
	Hometown    *string `json:"hometown"`
}

type inviteGroupRequest struct {
	GroupID string `json:"groupId"`
}

type joinGroupRequest struct {
	InvitationID string `json:"invitationId"`
}

type groupResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	EnglishName *string    `json:"englishName"`
	Biography   *string    `json:"biography"`
	Since       *time.Time `json:"since"`
	ArtworkURL  *string    `json:"artworkUrl"`
	Hometown    *string    `json:"hometown"`
}

type groupDetailResponse struct {
	groupResponse
	IsMember bool `json:"isMember"`
}

type invitationResponse struct {
	ID string `json:"id"`
}

type membershipResponse struct {
	GroupID string `json:"groupId"`
	UserID  string `json:"userId"`
}

func toGroupResponse(g *groupdomain.Group) groupResponse {
	return groupResponse{
		ID:          g.ID,
		Name:        g.Name,
		EnglishName: g.EnglishName,
		Biography:   g.Biography,
		Since:       g.Since,
		ArtworkURL:  g.ArtworkURL,
		Hometown:    g.Hometown,
	}
}

func (h *Handlers) CreateGroup(w http.ResponseWriter, r *http.Request) {
	account, ok := requireAccount(w, r)
	if !ok {
		return
	}

	var req createGroupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "name is required")
		return
	}
	since, err := parseTimeParam(req.Since)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid since timestamp")
		return
	}

	result, err := h.Groups.CreateGroup(r.Context(), account.ID, groupdomain.CreateGroupInput{
		Name:        req.Name,
		EnglishName: req.EnglishName,
		Biography:   req.Biography,
		Since:       since,
		ArtworkURL:  req.ArtworkURL,
		Hometown:    req.Hometown,
	})
	if err != nil {
		h.log.InternalError("groups.create: create failed", err, "user_id", account.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toGroupResponse(result))
}

func (h *Handlers) GetGroup(w http.ResponseWriter, r *http.Request) {
	account, ok := requireAccount(w, r)
	if !ok {
		return
	}

	groupID := chi.URLParam(r, "group_id")
	result, err := h.Groups.GetGroup(r.Context(), groupID, account.ID)
	if err != nil {
		if errors.Is(err, groupdomain.ErrGroupNotFound) {
			h.log.BusinessError("groups.get: group not found", err, "group_id", groupID)
			writeError(w, http.StatusNotFound, "group_not_found", "group not found")
			return
		}
		h.log.InternalError("groups.get: get failed", err, "group_id", groupID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, groupDetailResponse{
		groupResponse: toGroupResponse(&result.Group),
		IsMember:      result.IsMember,
	})
}

func (h *Handlers) ListGroups(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAccount(w, r); !ok {
		return
	}

	page, per, err := parsePageParams(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	result, err := h.Groups.ListGroups(r.Context(), page, per)
	if err != nil {
		h.log.InternalError("groups.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	items := make([]groupResponse, 0, len(result.Items))
	for i := range result.Items {
		items = append(items, toGroupResponse(&result.Items[i]))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"items":   items,
		"hasMore": result.HasMore,
	})
}

func (h *Handlers) EditGroup(w http.ResponseWriter, r *http.Request) {
	account, ok := requireAccount(w, r)
	if !ok {
		return
	}

	groupID := chi.URLParam(r, "group_id")

	var req createGroupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	since, err := parseTimeParam(req.Since)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid since timestamp")
		return
	}

	result, err := h.Groups.EditGroup(r.Context(), groupID, account.ID, groupdomain.EditGroupInput{
		Name:        req.Name,
		EnglishName: req.EnglishName,
		Biography:   req.Biography,
		Since:       since,
		ArtworkURL:  req.ArtworkURL,
		Hometown:    req.Hometown,
	})
	if err != nil {
		switch {
		case errors.Is(err, groupdomain.ErrGroupNotFound):
			h.log.BusinessError("groups.edit: group not found", err, "group_id", groupID)
			writeError(w, http.StatusNotFound, "group_not_found", "group not found")
		case errors.Is(err, groupdomain.ErrNotAMember):
			h.log.BusinessError("groups.edit: not a member", err, "group_id", groupID, "user_id", account.ID)
			writeError(w, http.StatusForbidden, "not_a_member", "not a member of the group")
		default:
			h.log.InternalError("groups.edit: edit failed", err, "group_id", groupID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, toGroupResponse(result))
}

func (h *Handlers) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	account, ok := requireAccount(w, r)
	if !ok {
		return
	}

	groupID := chi.URLParam(r, "group_id")
	if err := h.Groups.DeleteGroup(r.Context(), groupID, account.ID); err != nil {
		switch {
		case errors.Is(err, groupdomain.ErrGroupNotFound):
			h.log.BusinessError("groups.delete: group not found", err, "group_id", groupID)
			writeError(w, http.StatusNotFound, "group_not_found", "group not found")
		case errors.Is(err, groupdomain.ErrNotAMember):
			h.log.BusinessError("groups.delete: not a member", err, "group_id", groupID, "user_id", account.ID)
			writeError(w, http.StatusForbidden, "not_a_member", "not a member of the group")
		default:
			h.log.InternalError("groups.delete: delete failed", err, "group_id", groupID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) InviteGroup(w http.ResponseWriter, r *http.Request) {
	account, ok := requireAccount(w, r)
	if !ok {
		return
	}

	var req inviteGroupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if req.GroupID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "groupId is required")
		return
	}

	result, err := h.Groups.Invite(r.Context(), req.GroupID, account.ID)
	if err != nil {
		switch {
		case errors.Is(err, groupdomain.ErrGroupNotFound):
			h.log.BusinessError("groups.invite: group not found", err, "group_id", req.GroupID)
			writeError(w, http.StatusNotFound, "group_not_found", "group not found")
		case errors.Is(err, groupdomain.ErrNotAMember):
			h.log.BusinessError("groups.invite: not a member", err, "group_id", req.GroupID, "user_id", account.ID)
			writeError(w, http.StatusForbidden, "not_a_member", "not a member of the group")
		default:
			h.log.InternalError("groups.invite: invite failed", err, "group_id", req.GroupID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, invitationResponse{ID: result.ID})
}

func (h *Handlers) JoinGroup(w http.ResponseWriter, r *http.Request) {
	account, ok := requireAccount(w, r)
	if !ok {
		return
	}

	var req joinGroupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if req.InvitationID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "invitationId is required")
		return
	}

	result, err := h.Groups.Join(r.Context(), req.InvitationID, account.ID)
	if err != nil {
		switch {
		case errors.Is(err, groupdomain.ErrInvitationNotFound):
			h.log.BusinessError("groups.join: invitation not found", err, "invitation_id", req.InvitationID)
			writeError(w, http.StatusNotFound, "invitation_not_found", "invitation not found")
		case errors.Is(err, groupdomain.ErrInvitationConsumed):
			h.log.BusinessError("groups.join: invitation consumed", err, "invitation_id", req.InvitationID, "user_id", account.ID)
			writeError(w, http.StatusConflict, "invitation_consumed", "invitation already consumed")
		case errors.Is(err, groupdomain.ErrAlreadyMember):
			h.log.BusinessError("groups.join: already a member", err, "invitation_id", req.InvitationID, "user_id", account.ID)
			writeError(w, http.StatusConflict, "already_member", "already a member of the group")
		default:
			h.log.InternalError("groups.join: join failed", err, "invitation_id", req.InvitationID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, membershipResponse{GroupID: result.GroupID, UserID: result.UserID})
}

func (h *Handlers) ListMemberships(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAccount(w, r); !ok {
		return
	}

	userID := chi.URLParam(r, "user_id")
	groups, err := h.Groups.Memberships(r.Context(), userID)
	if err != nil {
		h.log.InternalError("groups.memberships: list failed", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	items := make([]groupResponse, 0, len(groups))
	for i := range groups {
		items = append(items, toGroupResponse(&groups[i]))
	}
	writeJSON(w, http.StatusOK, items)
}

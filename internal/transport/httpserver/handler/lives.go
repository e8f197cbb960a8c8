package handler

import (
	"errors"
	"net/http"
	"time"

	livedomain "band-app-go/internal/domain/live"
	"github.com/go-chi/chi/v5"
)

type createLiveRequest struct {
	Title             string   `json:"title"`
	Style             string   `json:"style"`
	HostGroupID       string   `json:"hostGroupId"`
	ArtworkURL        *string  `json:"artworkUrl"`
	OpenAt            *string  `json:"openAt"`
	StartAt           string   `json:"startAt"`
	EndAt             string   `json:"endAt"`
	PerformerGroupIDs []string `json:"performerGroupIds"`
}

type liveResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Style       string     `json:"style"`
	HostGroupID string     `json:"hostGroupId"`
	AuthorID    string     `json:"authorId"`
	ArtworkURL  *string    `json:"artworkUrl"`
	OpenAt      *time.Time `json:"openAt"`
	StartAt     time.Time  `json:"startAt"`
	EndAt       time.Time  `json:"endAt"`
}

func toLiveResponse(l *livedomain.Live) liveResponse {
	return liveResponse{
		ID:          l.ID,
		Title:       l.Title,
		Style:       l.Style,
		HostGroupID: l.HostGroupID,
		AuthorID:    l.AuthorID,
		ArtworkURL:  l.ArtworkURL,
		OpenAt:      l.OpenAt,
		StartAt:     l.StartAt,
		EndAt:       l.EndAt,
	}
}

func (h *Handlers) CreateLive(w http.ResponseWriter, r *http.Request) {
	account, ok := requireAccount(w, r)
	if !ok {
		return
	}

	var req createLiveRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	openAt, err := parseTimeParam(req.OpenAt)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid openAt timestamp")
		return
	}
	startAt, err := time.Parse(time.RFC3339, req.StartAt)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid startAt timestamp")
		return
	}
	endAt, err := time.Parse(time.RFC3339, req.EndAt)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid endAt timestamp")
		return
	}

	result, err := h.Lives.CreateLive(r.Context(), *account, livedomain.CreateLiveInput{
		Title:             req.Title,
		Style:             req.Style,
		HostGroupID:       req.HostGroupID,
		ArtworkURL:        req.ArtworkURL,
		OpenAt:            openAt,
		StartAt:           startAt,
		EndAt:             endAt,
		PerformerGroupIDs: req.PerformerGroupIDs,
	})
	if err != nil {
		switch {
		case errors.Is(err, livedomain.ErrFanCannotCreate):
			h.log.BusinessError("lives.create: fan cannot create", err, "user_id", account.ID)
			writeError(w, http.StatusForbidden, "fan_cannot_create_live", "fans cannot create lives")
		case errors.Is(err, livedomain.ErrNotHostGroupMember):
			h.log.BusinessError("lives.create: not a host group member", err, "user_id", account.ID, "group_id", req.HostGroupID)
			writeError(w, http.StatusForbidden, "not_host_group_member", "not a member of the host group")
		case errors.Is(err, livedomain.ErrInvalidStyle), errors.Is(err, livedomain.ErrInvalidSchedule):
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		default:
			h.log.InternalError("lives.create: create failed", err, "user_id", account.ID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, toLiveResponse(result))
}

func (h *Handlers) GetLive(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAccount(w, r); !ok {
		return
	}

	liveID := chi.URLParam(r, "live_id")
	result, err := h.Lives.GetLive(r.Context(), liveID)
	if err != nil {
		if errors.Is(err, livedomain.ErrLiveNotFound) {
			h.log.BusinessError("lives.get: live not found", err, "live_id", liveID)
			writeError(w, http.StatusNotFound, "live_not_found", "live not found")
			return
		}
		h.log.InternalError("lives.get: get failed", err, "live_id", liveID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"live":              toLiveResponse(&result.Live),
		"performerGroupIds": result.PerformerGroupIDs,
	})
}

func (h *Handlers) ListLives(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAccount(w, r); !ok {
		return
	}

	page, per, err := parsePageParams(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	result, err := h.Lives.ListLives(r.Context(), page, per)
	if err != nil {
		h.log.InternalError("lives.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	items := make([]liveResponse, 0, len(result.Items))
	for i := range result.Items {
		items = append(items, toLiveResponse(&result.Items[i]))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"items":   items,
		"hasMore": result.HasMore,
	})
}

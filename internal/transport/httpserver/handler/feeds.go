package handler

import (
	"errors"
	"net/http"
	"time"

	feeddomain "band-app-go/internal/domain/feed"
	"band-app-go/pkg/pagination"
	"github.com/go-chi/chi/v5"
)

type createFeedRequest struct {
	Text         string  `json:"text"`
	OGPURL       *string `json:"ogpUrl"`
	ThumbnailURL *string `json:"thumbnailUrl"`
}

type feedResponse struct {
	ID           string    `json:"id"`
	AuthorID     string    `json:"authorId"`
	Text         string    `json:"text"`
	OGPURL       *string   `json:"ogpUrl"`
	ThumbnailURL *string   `json:"thumbnailUrl"`
	CreatedAt    time.Time `json:"createdAt"`
}

type feedSummaryResponse struct {
	feedResponse
	AuthorName   string `json:"authorName"`
	LikeCount    int    `json:"likeCount"`
	CommentCount int    `json:"commentCount"`
}

type feedCommentRequest struct {
	FeedID string `json:"feedId"`
	Text   string `json:"text"`
}

type feedCommentResponse struct {
	ID         string    `json:"id"`
	FeedID     string    `json:"feedId"`
	AuthorID   string    `json:"authorId"`
	AuthorName string    `json:"authorName"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toFeedCommentResponse(c *feeddomain.FeedCommentView) feedCommentResponse {
	return feedCommentResponse{
		ID:         c.ID,
		FeedID:     c.FeedID,
		AuthorID:   c.AuthorID,
		AuthorName: c.AuthorName,
		Text:       c.Text,
		CreatedAt:  c.CreatedAt,
	}
}

type liveSummaryResponse struct {
	liveResponse
	IsLiked bool `json:"isLiked"`
}

func toArtistFeedResponse(f *feeddomain.ArtistFeed) feedResponse {
	return feedResponse{
		ID:           f.ID,
		AuthorID:     f.AuthorID,
		Text:         f.Text,
		OGPURL:       f.OGPURL,
		ThumbnailURL: f.ThumbnailURL,
		CreatedAt:    f.CreatedAt,
	}
}

func toUserFeedResponse(f *feeddomain.UserFeed) feedResponse {
	return feedResponse{
		ID:           f.ID,
		AuthorID:     f.AuthorID,
		Text:         f.Text,
		OGPURL:       f.OGPURL,
		ThumbnailURL: f.ThumbnailURL,
		CreatedAt:    f.CreatedAt,
	}
}

func (h *Handlers) CreateArtistFeed(w http.ResponseWriter, r *http.Request) {
	account, ok := requireAccount(w, r)
	if !ok {
		return
	}

	var req createFeedRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	result, err := h.Feeds.CreateArtistFeed(r.Context(), *account, feeddomain.CreateFeedInput{
		Text:         req.Text,
		OGPURL:       req.OGPURL,
		ThumbnailURL: req.ThumbnailURL,
	})
	if err != nil {
		if errors.Is(err, feeddomain.ErrFanCannotCreateFeed) {
			h.log.BusinessError("feeds.create_artist: fan cannot create", err, "user_id", account.ID)
			writeError(w, http.StatusForbidden, "fan_cannot_create_feed", "fans cannot create artist feeds")
			return
		}
		h.log.InternalError("feeds.create_artist: create failed", err, "user_id", account.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toArtistFeedResponse(result))
}

func (h *Handlers) CreateUserFeed(w http.ResponseWriter, r *http.Request) {
	account, ok := requireAccount(w, r)
	if !ok {
		return
	}

	var req createFeedRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	result, err := h.Feeds.CreateUserFeed(r.Context(), account.ID, feeddomain.CreateFeedInput{
		Text:         req.Text,
		OGPURL:       req.OGPURL,
		ThumbnailURL: req.ThumbnailURL,
	})
	if err != nil {
		h.log.InternalError("feeds.create_user: create failed", err, "user_id", account.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toUserFeedResponse(result))
}

func (h *Handlers) FollowedGroupFeeds(w http.ResponseWriter, r *http.Request) {
	account, ok := requireAccount(w, r)
	if !ok {
		return
	}

	page, per, err := parsePageParams(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	result, err := h.Feeds.FollowedGroupFeeds(r.Context(), account.ID, page, per)
	if err != nil {
		h.log.InternalError("feeds.group_feeds: aggregation failed", err, "user_id", account.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toArtistFeedPage(result))
}

func (h *Handlers) FollowedUserFeeds(w http.ResponseWriter, r *http.Request) {
	account, ok := requireAccount(w, r)
	if !ok {
		return
	}

	page, per, err := parsePageParams(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	result, err := h.Feeds.FollowedUserFeeds(r.Context(), account.ID, page, per)
	if err != nil {
		h.log.InternalError("feeds.user_feeds: aggregation failed", err, "user_id", account.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	items := make([]feedSummaryResponse, 0, len(result.Items))
	for i := range result.Items {
		items = append(items, feedSummaryResponse{
			feedResponse: toUserFeedResponse(&result.Items[i].UserFeed),
			AuthorName:   result.Items[i].AuthorName,
			LikeCount:    result.Items[i].LikeCount,
			CommentCount: result.Items[i].CommentCount,
		})
	}
	writeJSON(w, http.StatusOK, pagination.Page[feedSummaryResponse]{Items: items, HasMore: result.HasMore})
}

func toArtistFeedPage(result pagination.Page[feeddomain.ArtistFeedSummary]) pagination.Page[feedSummaryResponse] {
	items := make([]feedSummaryResponse, 0, len(result.Items))
	for i := range result.Items {
		items = append(items, feedSummaryResponse{
			feedResponse: toArtistFeedResponse(&result.Items[i].ArtistFeed),
			AuthorName:   result.Items[i].AuthorName,
			LikeCount:    result.Items[i].LikeCount,
			CommentCount: result.Items[i].CommentCount,
		})
	}
	return pagination.Page[feedSummaryResponse]{Items: items, HasMore: result.HasMore}
}

// GroupFeeds lists the posts written by one group's members.
func (h *Handlers) GroupFeeds(w http.ResponseWriter, r *http.Request) {
	account, ok := requireAccount(w, r)
	if !ok {
		return
	}

	groupID := chi.URLParam(r, "group_id")
	page, per, err := parsePageParams(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	result, err := h.Feeds.GroupFeeds(r.Context(), groupID, page, per)
	if err != nil {
		if errors.Is(err, feeddomain.ErrGroupNotFound) {
			h.log.BusinessError("feeds.group: group not found", err, "group_id", groupID)
			writeError(w, http.StatusNotFound, "group_not_found", "group not found")
			return
		}
		h.log.InternalError("feeds.group: listing failed", err, "group_id", groupID, "user_id", account.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toArtistFeedPage(result))
}

func (h *Handlers) DeleteArtistFeed(w http.ResponseWriter, r *http.Request) {
	account, ok := requireAccount(w, r)
	if !ok {
		return
	}

	var req targetRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	if err := h.Feeds.DeleteArtistFeed(r.Context(), account.ID, req.ID); err != nil {
		switch {
		case errors.Is(err, feeddomain.ErrFeedNotFound):
			h.log.BusinessError("feeds.delete: feed not found", err, "feed_id", req.ID)
			writeError(w, http.StatusNotFound, "feed_not_found", "feed not found")
		case errors.Is(err, feeddomain.ErrNotFeedAuthor):
			h.log.BusinessError("feeds.delete: not the author", err, "feed_id", req.ID, "user_id", account.ID)
			writeError(w, http.StatusForbidden, "not_feed_author", "only the author may delete a feed")
		default:
			h.log.InternalError("feeds.delete: delete failed", err, "feed_id", req.ID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) PostFeedComment(w http.ResponseWriter, r *http.Request) {
	account, ok := requireAccount(w, r)
	if !ok {
		return
	}

	var req feedCommentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	result, err := h.Feeds.CommentOnFeed(r.Context(), *account, feeddomain.CreateCommentInput{
		FeedID: req.FeedID,
		Text:   req.Text,
	})
	if err != nil {
		if errors.Is(err, feeddomain.ErrFeedNotFound) {
			h.log.BusinessError("feeds.comment: feed not found", err, "feed_id", req.FeedID)
			writeError(w, http.StatusNotFound, "feed_not_found", "feed not found")
			return
		}
		h.log.InternalError("feeds.comment: create failed", err, "feed_id", req.FeedID, "user_id", account.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toFeedCommentResponse(result))
}

func (h *Handlers) FeedComments(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAccount(w, r); !ok {
		return
	}

	feedID := chi.URLParam(r, "feed_id")
	page, per, err := parsePageParams(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	result, err := h.Feeds.FeedComments(r.Context(), feedID, page, per)
	if err != nil {
		h.log.InternalError("feeds.comments: listing failed", err, "feed_id", feedID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	items := make([]feedCommentResponse, 0, len(result.Items))
	for i := range result.Items {
		items = append(items, toFeedCommentResponse(&result.Items[i]))
	}
	writeJSON(w, http.StatusOK, pagination.Page[feedCommentResponse]{Items: items, HasMore: result.HasMore})
}

func (h *Handlers) UpcomingLives(w http.ResponseWriter, r *http.Request) {
	account, ok := requireAccount(w, r)
	if !ok {
		return
	}

	page, per, err := parsePageParams(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	result, err := h.Feeds.UpcomingLives(r.Context(), account.ID, page, per)
	if err != nil {
		h.log.InternalError("feeds.upcoming_lives: aggregation failed", err, "user_id", account.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	items := make([]liveSummaryResponse, 0, len(result.Items))
	for i := range result.Items {
		items = append(items, liveSummaryResponse{
			liveResponse: toLiveResponse(&result.Items[i].Live),
			IsLiked:      result.Items[i].IsLiked,
		})
	}
	writeJSON(w, http.StatusOK, pagination.Page[liveSummaryResponse]{Items: items, HasMore: result.HasMore})
}

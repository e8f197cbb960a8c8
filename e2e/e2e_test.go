//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"band-app-go/internal/config"
	"band-app-go/internal/db"
	feeddomain "band-app-go/internal/domain/feed"
	groupdomain "band-app-go/internal/domain/group"
	livedomain "band-app-go/internal/domain/live"
	socialdomain "band-app-go/internal/domain/social"
	userdomain "band-app-go/internal/domain/user"
	feedrepo "band-app-go/internal/repository/postgres/feed"
	grouprepo "band-app-go/internal/repository/postgres/group"
	liverepo "band-app-go/internal/repository/postgres/live"
	socialrepo "band-app-go/internal/repository/postgres/social"
	userrepo "band-app-go/internal/repository/postgres/user"
	"band-app-go/internal/transport/httpserver"
	"band-app-go/internal/transport/httpserver/handler"
	"band-app-go/pkg/logger"
	"gorm.io/gorm"
)

type testEnv struct {
	server     *httptest.Server
	authServer *httptest.Server
	db         *gorm.DB
}

func setupE2E(t *testing.T) *testEnv {
	t.Helper()

	dsn := os.Getenv("E2E_DB_DSN")
	if dsn == "" {
		t.Skip("E2E_DB_DSN not set; skipping e2e tests")
	}

	authServer := newAuthServer(t)
	log := logger.New(io.Discard, slog.LevelError, "json")

	cfg := config.Config{
		DB: config.DBConfig{DSN: dsn},
		Auth: config.AuthConfig{
			ProviderURL: authServer.URL,
			APIKey:      "test-key",
			Timeout:     2 * time.Second,
		},
	}

	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		t.Fatalf("db connect: %v", err)
	}

	if err := db.Migrate(dbConn); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	if err := cleanDB(dbConn); err != nil {
		t.Fatalf("clean db: %v", err)
	}

	userService := userdomain.NewService(userrepo.NewPostgres(dbConn))
	groups := grouprepo.NewPostgres(dbConn)
	groupService := groupdomain.NewService(groups)
	lives := liverepo.NewPostgres(dbConn)
	liveService := livedomain.NewService(lives, groups)
	social := socialrepo.NewPostgres(dbConn)
	socialService := socialdomain.NewService(social)
	feedService := feeddomain.NewService(feedrepo.NewPostgres(dbConn), social, groups, lives)

	handlers := handler.New(userService, groupService, liveService, socialService, feedService, log)
	router := httpserver.NewRouter(cfg, handlers, userService, log)
	server := httptest.NewServer(router)

	return &testEnv{server: server, authServer: authServer, db: dbConn}
}

func (e *testEnv) Close() {
	e.server.Close()
	e.authServer.Close()
	sqlDB, err := e.db.DB()
	if err == nil {
		_ = sqlDB.Close()
	}
}

func newAuthServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("apikey") != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		auth := r.Header.Get("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
		if token == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		payload := map[string]interface{}{
			"id":    token,
			"email": token + "@example.com",
			"user_metadata": map[string]interface{}{
				"name": "User " + token,
			},
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(payload)
	}))
}

func cleanDB(dbConn *gorm.DB) error {
	return dbConn.WithContext(context.Background()).Exec(
		"TRUNCATE TABLE feed_comments, feed_likes, user_feeds, artist_feeds, live_likes, user_follows, group_follows, performers, lives, invitations, memberships, groups, users RESTART IDENTITY CASCADE",
	).Error
}

func requestJSON(t *testing.T, client *http.Client, method, url, token string, payload interface{}) (*http.Response, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}

	return resp, respBody
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type userResponse struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Role string  `json:"role"`
	Part *string `json:"part"`
}

type groupResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type groupDetailResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsMember bool   `json:"isMember"`
}

type invitationResponse struct {
	ID string `json:"id"`
}

type liveResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	HostGroupID string `json:"hostGroupId"`
}

func signup(t *testing.T, client *http.Client, baseURL, token, name, role string, part *string) userResponse {
	t.Helper()

	resp, body := requestJSON(t, client, http.MethodPost, baseURL+"/api/users/signup", token, map[string]interface{}{
		"name": name,
		"role": role,
		"part": part,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("signup expected 201, got %d: %s", resp.StatusCode, string(body))
	}
	var user userResponse
	if err := json.Unmarshal(body, &user); err != nil {
		t.Fatalf("decode user: %v", err)
	}
	return user
}

func TestE2EHealthAndAuth(t *testing.T) {
	env := setupE2E(t)
	defer env.Close()

	client := &http.Client{Timeout: 5 * time.Second}

	resp, body := requestJSON(t, client, http.MethodGet, env.server.URL+"/api/health", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, string(body))
	}

	resp, body = requestJSON(t, client, http.MethodGet, env.server.URL+"/api/users/me", "", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", resp.StatusCode, string(body))
	}
	var errResp errorEnvelope
	if err := json.Unmarshal(body, &errResp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if errResp.Error.Code != "invalid_token" {
		t.Fatalf("expected invalid_token, got %q", errResp.Error.Code)
	}

	// A valid token without a signup must be told to sign up.
	resp, body = requestJSON(t, client, http.MethodGet, env.server.URL+"/api/users/me", "prov-new", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", resp.StatusCode, string(body))
	}
	if err := json.Unmarshal(body, &errResp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if errResp.Error.Code != "signup_required" {
		t.Fatalf("expected signup_required, got %q", errResp.Error.Code)
	}

	signup(t, client, env.server.URL, "prov-new", "Newcomer", "fan", nil)

	resp, body = requestJSON(t, client, http.MethodGet, env.server.URL+"/api/users/me", "prov-new", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, string(body))
	}
	var me userResponse
	if err := json.Unmarshal(body, &me); err != nil {
		t.Fatalf("decode me: %v", err)
	}
	if me.Name != "Newcomer" || me.Role != "fan" {
		t.Fatalf("unexpected me %+v", me)
	}
}

func TestE2EGroupAndInvitationFlow(t *testing.T) {
	env := setupE2E(t)
	defer env.Close()

	client := &http.Client{Timeout: 5 * time.Second}

	part := "vocal"
	signup(t, client, env.server.URL, "prov-1", "Founder", "artist", &part)
	signup(t, client, env.server.URL, "prov-2", "Joiner", "artist", &part)
	signup(t, client, env.server.URL, "prov-3", "Latecomer", "artist", &part)

	resp, body := requestJSON(t, client, http.MethodPost, env.server.URL+"/api/groups", "prov-1", map[string]string{
		"name": "The Band",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.StatusCode, string(body))
	}
	var group groupResponse
	if err := json.Unmarshal(body, &group); err != nil {
		t.Fatalf("decode group: %v", err)
	}

	// The founder is a member; outsiders cannot invite.
	resp, body = requestJSON(t, client, http.MethodPost, env.server.URL+"/api/groups/invite", "prov-2", map[string]string{
		"groupId": group.ID,
	})
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", resp.StatusCode, string(body))
	}

	resp, body = requestJSON(t, client, http.MethodPost, env.server.URL+"/api/groups/invite", "prov-1", map[string]string{
		"groupId": group.ID,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.StatusCode, string(body))
	}
	var invitation invitationResponse
	if err := json.Unmarshal(body, &invitation); err != nil {
		t.Fatalf("decode invitation: %v", err)
	}

	resp, body = requestJSON(t, client, http.MethodPost, env.server.URL+"/api/groups/join", "prov-2", map[string]string{
		"invitationId": invitation.ID,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, string(body))
	}

	// The invitation is spent; a replay by a third user conflicts.
	resp, body = requestJSON(t, client, http.MethodPost, env.server.URL+"/api/groups/join", "prov-3", map[string]string{
		"invitationId": invitation.ID,
	})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", resp.StatusCode, string(body))
	}
	var errResp errorEnvelope
	if err := json.Unmarshal(body, &errResp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if errResp.Error.Code != "invitation_consumed" {
		t.Fatalf("expected invitation_consumed, got %q", errResp.Error.Code)
	}

	resp, body = requestJSON(t, client, http.MethodGet, env.server.URL+"/api/groups/"+group.ID, "prov-2", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, string(body))
	}
	var detail groupDetailResponse
	if err := json.Unmarshal(body, &detail); err != nil {
		t.Fatalf("decode detail: %v", err)
	}
	if !detail.IsMember {
		t.Fatalf("expected prov-2 to be a member after join")
	}

	resp, body = requestJSON(t, client, http.MethodDelete, env.server.URL+"/api/groups/"+group.ID, "prov-3", nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", resp.StatusCode, string(body))
	}

	resp, body = requestJSON(t, client, http.MethodDelete, env.server.URL+"/api/groups/"+group.ID, "prov-1", nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", resp.StatusCode, string(body))
	}

	resp, body = requestJSON(t, client, http.MethodGet, env.server.URL+"/api/groups/"+group.ID, "prov-1", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", resp.StatusCode, string(body))
	}
}

func TestE2EDeleteGroupWithHostedLive(t *testing.T) {
	env := setupE2E(t)
	defer env.Close()

	client := &http.Client{Timeout: 5 * time.Second}

	part := "drums"
	signup(t, client, env.server.URL, "prov-host", "Host", "artist", &part)

	resp, body := requestJSON(t, client, http.MethodPost, env.server.URL+"/api/groups", "prov-host", map[string]string{
		"name": "Short Lived",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.StatusCode, string(body))
	}
	var group groupResponse
	if err := json.Unmarshal(body, &group); err != nil {
		t.Fatalf("decode group: %v", err)
	}

	start := time.Now().Add(24 * time.Hour).UTC().Format(time.RFC3339)
	end := time.Now().Add(27 * time.Hour).UTC().Format(time.RFC3339)

	resp, body = requestJSON(t, client, http.MethodPost, env.server.URL+"/api/lives", "prov-host", map[string]interface{}{
		"title":       "Farewell Show",
		"style":       "oneman",
		"hostGroupId": group.ID,
		"startAt":     start,
		"endAt":       end,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.StatusCode, string(body))
	}
	var live liveResponse
	if err := json.Unmarshal(body, &live); err != nil {
		t.Fatalf("decode live: %v", err)
	}

	// A hosted live must not block group deletion; it goes down with the group.
	resp, body = requestJSON(t, client, http.MethodDelete, env.server.URL+"/api/groups/"+group.ID, "prov-host", nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", resp.StatusCode, string(body))
	}

	resp, body = requestJSON(t, client, http.MethodGet, env.server.URL+"/api/lives/"+live.ID, "prov-host", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for the cascaded live, got %d: %s", resp.StatusCode, string(body))
	}

	resp, body = requestJSON(t, client, http.MethodGet, env.server.URL+"/api/groups/"+group.ID, "prov-host", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for the deleted group, got %d: %s", resp.StatusCode, string(body))
	}
}

func TestE2EGroupFeedsAndComments(t *testing.T) {
	env := setupE2E(t)
	defer env.Close()

	client := &http.Client{Timeout: 5 * time.Second}

	part := "bass"
	signup(t, client, env.server.URL, "prov-poster", "Poster", "artist", &part)
	signup(t, client, env.server.URL, "prov-reader", "Reader", "fan", nil)

	resp, body := requestJSON(t, client, http.MethodPost, env.server.URL+"/api/groups", "prov-poster", map[string]string{
		"name": "Posters",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.StatusCode, string(body))
	}
	var group groupResponse
	if err := json.Unmarshal(body, &group); err != nil {
		t.Fatalf("decode group: %v", err)
	}

	resp, body = requestJSON(t, client, http.MethodPost, env.server.URL+"/api/artist_feeds", "prov-poster", map[string]string{
		"text": "rehearsal clip",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.StatusCode, string(body))
	}
	var feed struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &feed); err != nil {
		t.Fatalf("decode feed: %v", err)
	}

	type feedPage struct {
		Items []struct {
			ID           string `json:"id"`
			Text         string `json:"text"`
			CommentCount int    `json:"commentCount"`
		} `json:"items"`
		HasMore bool `json:"hasMore"`
	}

	resp, body = requestJSON(t, client, http.MethodGet, env.server.URL+"/api/groups/"+group.ID+"/feeds", "prov-reader", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, string(body))
	}
	var page feedPage
	if err := json.Unmarshal(body, &page); err != nil {
		t.Fatalf("decode feed page: %v", err)
	}
	if len(page.Items) != 1 || page.Items[0].ID != feed.ID || page.Items[0].CommentCount != 0 {
		t.Fatalf("expected the fresh feed with zero comments, got %+v", page.Items)
	}

	resp, body = requestJSON(t, client, http.MethodPost, env.server.URL+"/api/user_social/feed_comment", "prov-reader", map[string]string{
		"feedId": feed.ID,
		"text":   "see you there",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.StatusCode, string(body))
	}
	var comment struct {
		AuthorName string `json:"authorName"`
		Text       string `json:"text"`
	}
	if err := json.Unmarshal(body, &comment); err != nil {
		t.Fatalf("decode comment: %v", err)
	}
	if comment.AuthorName != "Reader" || comment.Text != "see you there" {
		t.Fatalf("unexpected comment %+v", comment)
	}

	resp, body = requestJSON(t, client, http.MethodGet, env.server.URL+"/api/user_social/feed_comment/"+feed.ID, "prov-poster", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, string(body))
	}
	var comments struct {
		Items []struct {
			Text string `json:"text"`
		} `json:"items"`
	}
	if err := json.Unmarshal(body, &comments); err != nil {
		t.Fatalf("decode comments: %v", err)
	}
	if len(comments.Items) != 1 || comments.Items[0].Text != "see you there" {
		t.Fatalf("expected the posted comment, got %+v", comments.Items)
	}

	resp, body = requestJSON(t, client, http.MethodGet, env.server.URL+"/api/groups/"+group.ID+"/feeds", "prov-reader", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, string(body))
	}
	if err := json.Unmarshal(body, &page); err != nil {
		t.Fatalf("decode feed page: %v", err)
	}
	if len(page.Items) != 1 || page.Items[0].CommentCount != 1 {
		t.Fatalf("expected comment count 1, got %+v", page.Items)
	}

	// Only the author may delete, and a second delete finds nothing.
	resp, body = requestJSON(t, client, http.MethodDelete, env.server.URL+"/api/groups/delete_feed", "prov-reader", map[string]string{
		"id": feed.ID,
	})
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", resp.StatusCode, string(body))
	}

	resp, body = requestJSON(t, client, http.MethodDelete, env.server.URL+"/api/groups/delete_feed", "prov-poster", map[string]string{
		"id": feed.ID,
	})
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", resp.StatusCode, string(body))
	}

	resp, body = requestJSON(t, client, http.MethodDelete, env.server.URL+"/api/groups/delete_feed", "prov-poster", map[string]string{
		"id": feed.ID,
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 on repeat delete, got %d: %s", resp.StatusCode, string(body))
	}

	resp, body = requestJSON(t, client, http.MethodGet, env.server.URL+"/api/groups/"+group.ID+"/feeds", "prov-reader", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, string(body))
	}
	if err := json.Unmarshal(body, &page); err != nil {
		t.Fatalf("decode feed page: %v", err)
	}
	if len(page.Items) != 0 {
		t.Fatalf("expected empty group feed after delete, got %+v", page.Items)
	}
}

func TestE2ELivesAndSocialFlow(t *testing.T) {
	env := setupE2E(t)
	defer env.Close()

	client := &http.Client{Timeout: 5 * time.Second}

	part := "guitar"
	signup(t, client, env.server.URL, "prov-artist", "Artist", "artist", &part)
	signup(t, client, env.server.URL, "prov-fan", "Fan", "fan", nil)

	resp, body := requestJSON(t, client, http.MethodPost, env.server.URL+"/api/groups", "prov-artist", map[string]string{
		"name": "Hosts",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.StatusCode, string(body))
	}
	var group groupResponse
	if err := json.Unmarshal(body, &group); err != nil {
		t.Fatalf("decode group: %v", err)
	}

	start := time.Now().Add(24 * time.Hour).UTC().Format(time.RFC3339)
	end := time.Now().Add(27 * time.Hour).UTC().Format(time.RFC3339)

	resp, body = requestJSON(t, client, http.MethodPost, env.server.URL+"/api/lives", "prov-fan", map[string]interface{}{
		"title":       "Night Show",
		"style":       "oneman",
		"hostGroupId": group.ID,
		"startAt":     start,
		"endAt":       end,
	})
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for fan, got %d: %s", resp.StatusCode, string(body))
	}

	resp, body = requestJSON(t, client, http.MethodPost, env.server.URL+"/api/lives", "prov-artist", map[string]interface{}{
		"title":       "Night Show",
		"style":       "oneman",
		"hostGroupId": group.ID,
		"startAt":     start,
		"endAt":       end,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.StatusCode, string(body))
	}
	var live liveResponse
	if err := json.Unmarshal(body, &live); err != nil {
		t.Fatalf("decode live: %v", err)
	}

	resp, body = requestJSON(t, client, http.MethodPost, env.server.URL+"/api/user_social/follow_group", "prov-fan", map[string]string{
		"id": group.ID,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, string(body))
	}
	// Retried follow stays silent.
	resp, body = requestJSON(t, client, http.MethodPost, env.server.URL+"/api/user_social/follow_group", "prov-fan", map[string]string{
		"id": group.ID,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 on repeat, got %d: %s", resp.StatusCode, string(body))
	}

	resp, body = requestJSON(t, client, http.MethodPost, env.server.URL+"/api/user_social/like_live", "prov-fan", map[string]string{
		"id": live.ID,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, string(body))
	}

	resp, body = requestJSON(t, client, http.MethodPost, env.server.URL+"/api/artist_feeds", "prov-artist", map[string]string{
		"text": "new song out",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.StatusCode, string(body))
	}

	resp, body = requestJSON(t, client, http.MethodGet, env.server.URL+"/api/user_social/group_feeds", "prov-fan", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, string(body))
	}
	var feedPage struct {
		Items []struct {
			Text string `json:"text"`
		} `json:"items"`
		HasMore bool `json:"hasMore"`
	}
	if err := json.Unmarshal(body, &feedPage); err != nil {
		t.Fatalf("decode feed page: %v", err)
	}
	if len(feedPage.Items) != 1 || feedPage.Items[0].Text != "new song out" {
		t.Fatalf("expected the artist feed, got %+v", feedPage.Items)
	}

	resp, body = requestJSON(t, client, http.MethodGet, env.server.URL+"/api/user_social/upcoming_lives", "prov-fan", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, string(body))
	}
	var livePage struct {
		Items []struct {
			ID      string `json:"id"`
			IsLiked bool   `json:"isLiked"`
		} `json:"items"`
	}
	if err := json.Unmarshal(body, &livePage); err != nil {
		t.Fatalf("decode live page: %v", err)
	}
	if len(livePage.Items) != 1 || livePage.Items[0].ID != live.ID || !livePage.Items[0].IsLiked {
		t.Fatalf("expected the liked upcoming live, got %+v", livePage.Items)
	}
}

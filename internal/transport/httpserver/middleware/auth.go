package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"band-app-go/internal/config"
	userdomain "band-app-go/internal/domain/user"
	"band-app-go/pkg/logger"
)

// Identity is what the external identity provider asserts about the caller.
// The domain account is looked up separately; a valid token without a signed
// up account still carries an Identity so the signup endpoint can work.
type Identity struct {
	ProviderID string
	Email      string
	Name       string
}

// AccountResolver loads the domain account for a provider identity.
// user.Service satisfies this.
type AccountResolver interface {
	GetUserByProvider(ctx context.Context, providerID string) (*userdomain.User, error)
}

type Auth struct {
	providerURL  string
	apiKey       string
	client       *http.Client
	accounts     AccountResolver
	log          logger.Logger
	skipAuth     bool
	mockIdentity Identity
}

type contextKey int

const (
	identityKey contextKey = iota
	accountKey
)

type providerUserResponse struct {
	ID           string                 `json:"id"`
	Sub          string                 `json:"sub"`
	Email        string                 `json:"email"`
	UserMetadata map[string]interface{} `json:"user_metadata"`
}

func NewAuth(cfg config.AuthConfig, accounts AccountResolver, log logger.Logger) *Auth {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 5 * time.Second
	}

	return &Auth{
		providerURL: strings.TrimRight(cfg.ProviderURL, "/"),
		apiKey:      cfg.APIKey,
		client:      &http.Client{Timeout: timeout},
		accounts:    accounts,
		log:         log,
		skipAuth:    cfg.SkipAuth,
		mockIdentity: Identity{
			ProviderID: strings.TrimSpace(cfg.MockUserID),
			Name:       strings.TrimSpace(cfg.MockUserName),
		},
	}
}

func (a *Auth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a.skipAuth {
			if a.mockIdentity.ProviderID == "" {
				writeError(w, http.StatusInternalServerError, "auth_not_configured", "auth mock user id not configured")
				return
			}
			a.serveWithIdentity(w, r, next, a.mockIdentity)
			return
		}

		if a.providerURL == "" {
			writeError(w, http.StatusInternalServerError, "auth_not_configured", "auth not configured")
			return
		}

		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			unauthorized(w)
			return
		}

		identity, ok := a.verifyToken(r.Context(), token)
		if !ok {
			unauthorized(w)
			return
		}

		a.serveWithIdentity(w, r, next, identity)
	})
}

func (a *Auth) serveWithIdentity(w http.ResponseWriter, r *http.Request, next http.Handler, identity Identity) {
	ctx := WithIdentity(r.Context(), identity)

	account, err := a.accounts.GetUserByProvider(ctx, identity.ProviderID)
	switch {
	case err == nil:
		ctx = WithAccount(ctx, account)
	case errors.Is(err, userdomain.ErrUserNotFound):
		// Valid token, no signup yet. Handlers that need an account reject.
	default:
		a.log.InternalError("auth: account lookup failed", err, "provider_id", identity.ProviderID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	next.ServeHTTP(w, r.WithContext(ctx))
}

func (a *Auth) verifyToken(ctx context.Context, token string) (Identity, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.providerURL+"/user", nil)
	if err != nil {
		return Identity{}, false
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if a.apiKey != "" {
		req.Header.Set("apikey", a.apiKey)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return Identity{}, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Identity{}, false
	}

	var payload providerUserResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Identity{}, false
	}

	providerID := payload.ID
	if providerID == "" {
		providerID = payload.Sub
	}
	if providerID == "" {
		return Identity{}, false
	}

	return Identity{
		ProviderID: providerID,
		Email:      payload.Email,
		Name:       stringFromMap(payload.UserMetadata, "name"),
	}, true
}

func bearerToken(value string) (string, bool) {
	parts := strings.Fields(value)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

func unauthorized(w http.ResponseWriter) {
	writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
}

func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey).(Identity)
	if !ok || identity.ProviderID == "" {
		return Identity{}, false
	}
	return identity, true
}

func WithAccount(ctx context.Context, account *userdomain.User) context.Context {
	return context.WithValue(ctx, accountKey, account)
}

func AccountFromContext(ctx context.Context) (*userdomain.User, bool) {
	account, ok := ctx.Value(accountKey).(*userdomain.User)
	if !ok || account == nil || account.ID == "" {
		return nil, false
	}
	return account, true
}

func stringFromMap(values map[string]interface{}, key string) string {
	if values == nil {
		return ""
	}
	if value, ok := values[key].(string); ok {
		return value
	}
	return ""
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}

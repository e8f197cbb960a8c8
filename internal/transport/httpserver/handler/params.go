package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	userdomain "band-app-go/internal/domain/user"
	"band-app-go/internal/transport/httpserver/middleware"
	"band-app-go/pkg/pagination"
)

// requireAccount fetches the signed-up domain account from the request
// context, writing the error response itself when there is none.
func requireAccount(w http.ResponseWriter, r *http.Request) (*userdomain.User, bool) {
	account, ok := middleware.AccountFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "signup_required", "no account for this token")
		return nil, false
	}
	return account, true
}

func parsePageParams(query url.Values) (int, int, error) {
	page, err := parseIntParam(query.Get("page"), 1)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid page")
	}
	per, err := parseIntParam(query.Get("per"), pagination.DefaultPer)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid per")
	}
	return page, per, nil
}

func parseIntParam(value string, fallback int) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 {
		return 0, fmt.Errorf("invalid int")
	}
	return parsed, nil
}

func parseTimeParam(value *string) (*time.Time, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, strings.TrimSpace(*value))
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

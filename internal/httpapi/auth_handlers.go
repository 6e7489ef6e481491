package httpapi

import (
	"errors"
	"net/http"
	"time"

	"st29.ru/authcore/internal/auth"
	"st29.ru/authcore/internal/obs"
)

type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type loginResponse struct {
	ExpiresAt time.Time `json:"expires_at"`
}

type validateResponse struct {
	Valid bool `json:"valid"`
}

func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}

	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	token, expiresAt, err := a.login.Login(r.Context(), req.Login, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			// One message for unknown login and wrong password.
			writeError(w, r, http.StatusUnauthorized, "invalid login or password")
		default:
			obs.Error("login failed", err, map[string]any{
				"request_id": RequestIDFromContext(r.Context()),
			})
			writeError(w, r, http.StatusInternalServerError, "login unavailable")
		}
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		Domain:   a.cookieDomain,
		Expires:  expiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, loginResponse{ExpiresAt: expiresAt})
}

// handleValidate reports whether the presented session is live. Bad or
// missing tokens are a negative answer, not an error.
func (a *API) handleValidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}

	token := sessionToken(r)
	if token == "" {
		writeJSON(w, http.StatusOK, validateResponse{Valid: false})
		return
	}
	if _, err := a.sessions.Validate(r.Context(), token); err != nil {
		if errors.Is(err, auth.ErrInvalidSession) {
			writeJSON(w, http.StatusOK, validateResponse{Valid: false})
			return
		}
		obs.Error("session validation failed", err, map[string]any{
			"request_id": RequestIDFromContext(r.Context()),
		})
		writeError(w, r, http.StatusInternalServerError, "validation unavailable")
		return
	}
	writeJSON(w, http.StatusOK, validateResponse{Valid: true})
}

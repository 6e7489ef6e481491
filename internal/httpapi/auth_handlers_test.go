package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestLoginSetsSessionCookie(t *testing.T) {
	env := newTestEnv(t)

	body := strings.NewReader(`{"login":"alice","password":"secret-password"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", body)
	rr := httptest.NewRecorder()
	env.api.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var cookie *http.Cookie
	for _, c := range rr.Result().Cookies() {
		if c.Name == sessionCookie {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatal("expected session cookie")
	}
	if !cookie.HttpOnly {
		t.Fatal("session cookie must be HttpOnly")
	}
	if len(cookie.Value) != 64 {
		t.Fatalf("expected 64-char token, got %d", len(cookie.Value))
	}

	var resp loginResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !resp.ExpiresAt.After(time.Now()) {
		t.Fatalf("expected future expiry, got %v", resp.ExpiresAt)
	}

	// the cookie must be usable immediately
	validate := withCookie(httptest.NewRequest(http.MethodPost, "/v1/auth/validate", nil), cookie.Value)
	rr2 := httptest.NewRecorder()
	env.api.mux.ServeHTTP(rr2, validate)
	if rr2.Code != http.StatusOK {
		t.Fatalf("validate: expected 200, got %d", rr2.Code)
	}
	var v validateResponse
	if err := json.Unmarshal(rr2.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode validate body: %v", err)
	}
	if !v.Valid {
		t.Fatal("expected fresh session to be valid")
	}
}

func TestLoginRejectsBadCredentialsUniformly(t *testing.T) {
	env := newTestEnv(t)

	cases := []string{
		`{"login":"alice","password":"wrong"}`,
		`{"login":"nobody","password":"secret-password"}`,
		`{"login":"","password":"secret-password"}`,
	}
	for _, payload := range cases {
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", strings.NewReader(payload))
		rr := httptest.NewRecorder()
		env.api.mux.ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("payload %s: expected 401, got %d", payload, rr.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		// unknown user and wrong password must be indistinguishable
		if body["error"] != "invalid login or password" {
			t.Fatalf("payload %s: unexpected message %v", payload, body["error"])
		}
	}
}

func TestLoginRejectsUnknownFields(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login",
		strings.NewReader(`{"login":"alice","password":"x","extra":true}`))
	rr := httptest.NewRecorder()
	env.api.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestValidateWithoutCookieIsFalseNotError(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/validate", nil)
	rr := httptest.NewRecorder()
	env.api.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var v validateResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if v.Valid {
		t.Fatal("expected invalid")
	}
}

func TestValidateWithGarbageTokenIsFalse(t *testing.T) {
	env := newTestEnv(t)

	req := withCookie(httptest.NewRequest(http.MethodPost, "/v1/auth/validate", nil), "garbage")
	rr := httptest.NewRecorder()
	env.api.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var v validateResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if v.Valid {
		t.Fatal("expected invalid")
	}
}

func TestLoginMethodNotAllowed(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/auth/login", nil)
	rr := httptest.NewRecorder()
	env.api.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rr.Code)
	}
	if rr.Header().Get("Allow") != http.MethodPost {
		t.Fatalf("unexpected Allow header: %q", rr.Header().Get("Allow"))
	}
}

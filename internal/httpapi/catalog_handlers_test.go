package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"st29.ru/authcore/internal/auth"
)

// extra fakeCatalogStore behavior for the CRUD handlers

func (f *fakeCatalogStore) CreateUser(_ context.Context, user auth.User) (auth.User, error) {
	for _, u := range f.usersByID {
		if u.Username == user.Username {
			return auth.User{}, auth.ErrConflict
		}
	}
	user.ID = "user-new"
	user.CreatedAt = time.Now().UTC()
	if f.usersByID == nil {
		f.usersByID = map[string]auth.User{}
	}
	f.usersByID[user.ID] = user
	return user, nil
}

func (f *fakeCatalogStore) CreatePermission(_ context.Context, perm auth.Permission) (auth.Permission, error) {
	if perm.Code == "billing:invoice:read" {
		return auth.Permission{}, auth.ErrConflict
	}
	perm.ID = "perm-new"
	return perm, nil
}

func (f *fakeCatalogStore) ListRoles(_ context.Context, page, limit int) ([]auth.Role, int, error) {
	roles := []auth.Role{
		{ID: "r1", Name: "admin"},
		{ID: "r2", Name: "viewer"},
		{ID: "r3", Name: "auditor"},
	}
	return roles, 7, nil
}

func (f *fakeCatalogStore) AssignRole(_ context.Context, userID, roleID string) (auth.RoleAssignment, error) {
	if _, ok := f.usersByID[userID]; !ok {
		return auth.RoleAssignment{}, auth.ErrNotFound
	}
	return auth.RoleAssignment{UserID: userID, RoleID: roleID, GrantedAt: time.Now().UTC()}, nil
}

func adminRequest(t *testing.T, env *testEnv, method, path, body string) *http.Request {
	t.Helper()
	env.graph.codes["user-alice"] = []string{"all:all:all"}
	token := env.openSession(t, "user-alice")
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	return withCookie(httptest.NewRequest(method, path, reader), token)
}

func TestCreateUserHidesPasswordHash(t *testing.T) {
	env := newTestEnv(t)

	req := adminRequest(t, env, http.MethodPost, "/v1/users",
		`{"name":"Bob","surname":"Ray","username":"bob","password":"hunter2-hunter2"}`)
	rr := httptest.NewRecorder()
	env.api.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	if loc := rr.Header().Get("Location"); loc != "/v1/users/user-new" {
		t.Fatalf("unexpected Location: %q", loc)
	}
	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if _, ok := body["password_hash"]; ok {
		t.Fatal("password hash must never be serialized")
	}
	if strings.Contains(rr.Body.String(), "hunter2") {
		t.Fatal("plaintext password leaked into response")
	}
}

func TestCreateUserDuplicateUsernameConflict(t *testing.T) {
	env := newTestEnv(t)

	req := adminRequest(t, env, http.MethodPost, "/v1/users",
		`{"username":"alice","password":"whatever-password"}`)
	rr := httptest.NewRecorder()
	env.api.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rr.Code)
	}
}

func TestCreatePermissionRejectsMalformedCode(t *testing.T) {
	env := newTestEnv(t)

	for _, code := range []string{"toofew:parts", "a:b:c:d", "a::c", "", "billing"} {
		payload := `{"code":"` + code + `","name":"x"}`
		req := adminRequest(t, env, http.MethodPost, "/v1/permissions", payload)
		rr := httptest.NewRecorder()
		env.api.mux.ServeHTTP(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("code %q: expected 400, got %d", code, rr.Code)
		}
	}
}

func TestCreatePermissionConflict(t *testing.T) {
	env := newTestEnv(t)

	req := adminRequest(t, env, http.MethodPost, "/v1/permissions",
		`{"code":"billing:invoice:read","name":"Read invoices"}`)
	rr := httptest.NewRecorder()
	env.api.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rr.Code)
	}
}

func TestListRolesPaginationEnvelope(t *testing.T) {
	env := newTestEnv(t)

	req := adminRequest(t, env, http.MethodGet, "/v1/roles?page=2&limit=3", "")
	rr := httptest.NewRecorder()
	env.api.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var page struct {
		Items []auth.Role `json:"items"`
		Total int         `json:"total"`
		Page  int         `json:"page"`
		Pages int         `json:"pages"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &page); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if page.Total != 7 || page.Page != 2 || page.Pages != 3 {
		t.Fatalf("unexpected envelope: %+v", page)
	}
	if len(page.Items) != 3 {
		t.Fatalf("unexpected items: %+v", page.Items)
	}
}

func TestListRolesRejectsBadPageParam(t *testing.T) {
	env := newTestEnv(t)

	req := adminRequest(t, env, http.MethodGet, "/v1/roles?page=0", "")
	rr := httptest.NewRecorder()
	env.api.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestGetUnknownUserIs404(t *testing.T) {
	env := newTestEnv(t)

	req := adminRequest(t, env, http.MethodGet, "/v1/users/no-such-id", "")
	rr := httptest.NewRecorder()
	env.api.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestAssignRoleToUser(t *testing.T) {
	env := newTestEnv(t)

	req := adminRequest(t, env, http.MethodPost, "/v1/users/user-alice/assignments",
		`{"role_id":"r1"}`)
	rr := httptest.NewRecorder()
	env.api.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	var a auth.RoleAssignment
	if err := json.Unmarshal(rr.Body.Bytes(), &a); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if a.UserID != "user-alice" || a.RoleID != "r1" {
		t.Fatalf("unexpected assignment: %+v", a)
	}
}

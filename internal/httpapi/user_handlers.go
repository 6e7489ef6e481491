package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"st29.ru/authcore/internal/auth"
)

type createUserRequest struct {
	Name       string     `json:"name"`
	Surname    string     `json:"surname"`
	Patronymic string     `json:"patronymic"`
	Username   string     `json:"username"`
	Birthday   *time.Time `json:"birthday"`
	Password   string     `json:"password"`
	Status     string     `json:"status"`
}

type updateUserRequest struct {
	Name       *string    `json:"name"`
	Surname    *string    `json:"surname"`
	Patronymic *string    `json:"patronymic"`
	Username   *string    `json:"username"`
	Birthday   *time.Time `json:"birthday"`
	Password   *string    `json:"password"`
	Status     *string    `json:"status"`
}

type assignRoleRequest struct {
	RoleID string `json:"role_id"`
}

func (a *API) handleUsers(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		a.withPermission("user", "create", a.createUser)(w, r)
	case http.MethodGet:
		a.withPermission("user", "read", a.listUsers)(w, r)
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPost)
	}
}

func (a *API) createUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	user := auth.User{
		Name:       req.Name,
		Surname:    req.Surname,
		Patronymic: req.Patronymic,
		Username:   req.Username,
		Status:     req.Status,
	}
	if req.Birthday != nil {
		user.Birthday = *req.Birthday
	}
	created, err := a.catalog.CreateUser(r.Context(), user, req.Password)
	if err != nil {
		handleCatalogError(w, r, err)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/v1/users/%s", created.ID))
	writeJSON(w, http.StatusCreated, created)
}

func (a *API) listUsers(w http.ResponseWriter, r *http.Request) {
	page, limit, err := pageParams(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	result, err := a.catalog.ListUsers(r.Context(), page, limit)
	if err != nil {
		handleCatalogError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *API) handleUserResource(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/v1/users/")
	path = strings.Trim(path, "/")
	if path == "" {
		writeError(w, r, http.StatusNotFound, "resource not found")
		return
	}
	parts := strings.Split(path, "/")

	if parts[0] == "me" {
		a.handleMe(w, r, parts[1:])
		return
	}

	userID := parts[0]
	switch {
	case len(parts) == 1:
		switch r.Method {
		case http.MethodGet:
			a.withPermission("user", "read", func(w http.ResponseWriter, r *http.Request) {
				a.getUser(w, r, userID)
			})(w, r)
		case http.MethodPut:
			a.withPermission("user", "update", func(w http.ResponseWriter, r *http.Request) {
				a.updateUser(w, r, userID)
			})(w, r)
		case http.MethodDelete:
			a.withPermission("user", "delete", func(w http.ResponseWriter, r *http.Request) {
				a.deleteUser(w, r, userID)
			})(w, r)
		default:
			methodNotAllowed(w, r, http.MethodGet, http.MethodPut, http.MethodDelete)
		}
	case len(parts) == 2 && parts[1] == "assignments":
		if r.Method != http.MethodPost {
			methodNotAllowed(w, r, http.MethodPost)
			return
		}
		a.withPermission("user", "update", func(w http.ResponseWriter, r *http.Request) {
			a.assignRole(w, r, userID)
		})(w, r)
	case len(parts) == 3 && parts[1] == "assignments":
		if r.Method != http.MethodDelete {
			methodNotAllowed(w, r, http.MethodDelete)
			return
		}
		roleID := parts[2]
		a.withPermission("user", "update", func(w http.ResponseWriter, r *http.Request) {
			a.removeAssignment(w, r, userID, roleID)
		})(w, r)
	default:
		writeError(w, r, http.StatusNotFound, "resource not found")
	}
}

// handleMe serves the caller's own record and effective permissions. A live
// session is enough; no catalog permission is required.
func (a *API) handleMe(w http.ResponseWriter, r *http.Request, rest []string) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	switch {
	case len(rest) == 0:
		a.withSession(a.me)(w, r)
	case len(rest) == 2 && rest[0] == "permissions":
		serviceID := rest[1]
		a.withSession(func(w http.ResponseWriter, r *http.Request) {
			a.myPermissions(w, r, serviceID)
		})(w, r)
	default:
		writeError(w, r, http.StatusNotFound, "resource not found")
	}
}

func (a *API) me(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeAuthError(w, r, auth.ErrMissingCredential)
		return
	}
	user, err := a.catalog.GetUser(r.Context(), userID)
	if err != nil {
		handleCatalogError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (a *API) myPermissions(w http.ResponseWriter, r *http.Request, serviceID string) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeAuthError(w, r, auth.ErrMissingCredential)
		return
	}
	perms, err := a.resolver.EffectivePermissions(r.Context(), userID, serviceID)
	if err != nil {
		handleCatalogError(w, r, err)
		return
	}
	if perms == nil {
		perms = []auth.Permission{}
	}
	writeJSON(w, http.StatusOK, perms)
}

func (a *API) getUser(w http.ResponseWriter, r *http.Request, id string) {
	user, err := a.catalog.GetUser(r.Context(), id)
	if err != nil {
		handleCatalogError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (a *API) updateUser(w http.ResponseWriter, r *http.Request, id string) {
	var req updateUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	user, err := a.catalog.UpdateUser(r.Context(), id, auth.UserUpdate{
		Name:       req.Name,
		Surname:    req.Surname,
		Patronymic: req.Patronymic,
		Username:   req.Username,
		Birthday:   req.Birthday,
		Password:   req.Password,
		Status:     req.Status,
	})
	if err != nil {
		handleCatalogError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (a *API) deleteUser(w http.ResponseWriter, r *http.Request, id string) {
	if err := a.catalog.DeleteUser(r.Context(), id); err != nil {
		handleCatalogError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) assignRole(w http.ResponseWriter, r *http.Request, userID string) {
	var req assignRoleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	assignment, err := a.catalog.AssignRole(r.Context(), userID, req.RoleID)
	if err != nil {
		handleCatalogError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, assignment)
}

func (a *API) removeAssignment(w http.ResponseWriter, r *http.Request, userID, roleID string) {
	if err := a.catalog.RemoveRoleAssignment(r.Context(), userID, roleID); err != nil {
		handleCatalogError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

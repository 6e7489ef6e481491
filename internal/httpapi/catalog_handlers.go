package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"st29.ru/authcore/internal/auth"
	"st29.ru/authcore/internal/obs"
)

type createRoleRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ServiceID   *string `json:"service_id"`
	IsGlobal    bool    `json:"is_global"`
}

type updateRoleRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsGlobal    *bool   `json:"is_global"`
}

type attachPermissionRequest struct {
	PermissionID string `json:"permission_id"`
}

type createPermissionRequest struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ServiceID   *string `json:"service_id"`
}

type updatePermissionRequest struct {
	Code        *string `json:"code"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type createServiceRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Prefix      string `json:"prefix"`
}

type updateServiceRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	Prefix      *string `json:"prefix"`
}

// --- roles ---

func (a *API) handleRoles(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		a.withPermission("role", "create", a.createRole)(w, r)
	case http.MethodGet:
		a.withPermission("role", "read", a.listRoles)(w, r)
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPost)
	}
}

func (a *API) createRole(w http.ResponseWriter, r *http.Request) {
	var req createRoleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	role, err := a.catalog.CreateRole(r.Context(), auth.Role{
		Name:        req.Name,
		Description: req.Description,
		ServiceID:   req.ServiceID,
		IsGlobal:    req.IsGlobal,
	})
	if err != nil {
		handleCatalogError(w, r, err)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/v1/roles/%s", role.ID))
	writeJSON(w, http.StatusCreated, role)
}

func (a *API) listRoles(w http.ResponseWriter, r *http.Request) {
	page, limit, err := pageParams(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	result, err := a.catalog.ListRoles(r.Context(), page, limit)
	if err != nil {
		handleCatalogError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *API) handleRoleResource(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/v1/roles/")
	path = strings.Trim(path, "/")
	if path == "" {
		writeError(w, r, http.StatusNotFound, "resource not found")
		return
	}
	parts := strings.Split(path, "/")
	roleID := parts[0]

	switch {
	case len(parts) == 1:
		switch r.Method {
		case http.MethodGet:
			a.withPermission("role", "read", func(w http.ResponseWriter, r *http.Request) {
				a.getRole(w, r, roleID)
			})(w, r)
		case http.MethodPut:
			a.withPermission("role", "update", func(w http.ResponseWriter, r *http.Request) {
				a.updateRole(w, r, roleID)
			})(w, r)
		case http.MethodDelete:
			a.withPermission("role", "delete", func(w http.ResponseWriter, r *http.Request) {
				a.deleteRole(w, r, roleID)
			})(w, r)
		default:
			methodNotAllowed(w, r, http.MethodGet, http.MethodPut, http.MethodDelete)
		}
	case len(parts) == 2 && parts[1] == "permissions":
		if r.Method != http.MethodPost {
			methodNotAllowed(w, r, http.MethodPost)
			return
		}
		a.withPermission("role", "update", func(w http.ResponseWriter, r *http.Request) {
			a.attachPermission(w, r, roleID)
		})(w, r)
	case len(parts) == 3 && parts[1] == "permissions":
		if r.Method != http.MethodDelete {
			methodNotAllowed(w, r, http.MethodDelete)
			return
		}
		permissionID := parts[2]
		a.withPermission("role", "update", func(w http.ResponseWriter, r *http.Request) {
			a.detachPermission(w, r, roleID, permissionID)
		})(w, r)
	default:
		writeError(w, r, http.StatusNotFound, "resource not found")
	}
}

func (a *API) getRole(w http.ResponseWriter, r *http.Request, id string) {
	role, err := a.catalog.GetRole(r.Context(), id)
	if err != nil {
		handleCatalogError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, role)
}

func (a *API) updateRole(w http.ResponseWriter, r *http.Request, id string) {
	var req updateRoleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	role, err := a.catalog.UpdateRole(r.Context(), id, auth.RoleUpdate{
		Name:        req.Name,
		Description: req.Description,
		IsGlobal:    req.IsGlobal,
	})
	if err != nil {
		handleCatalogError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, role)
}

func (a *API) deleteRole(w http.ResponseWriter, r *http.Request, id string) {
	if err := a.catalog.DeleteRole(r.Context(), id); err != nil {
		handleCatalogError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) attachPermission(w http.ResponseWriter, r *http.Request, roleID string) {
	var req attachPermissionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	grant, err := a.catalog.AttachPermission(r.Context(), roleID, req.PermissionID)
	if err != nil {
		handleCatalogError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, grant)
}

func (a *API) detachPermission(w http.ResponseWriter, r *http.Request, roleID, permissionID string) {
	if err := a.catalog.DetachPermission(r.Context(), roleID, permissionID); err != nil {
		handleCatalogError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- permissions ---

func (a *API) handlePermissions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		a.withPermission("permission", "create", a.createPermission)(w, r)
	case http.MethodGet:
		a.withPermission("permission", "read", a.listPermissions)(w, r)
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPost)
	}
}

func (a *API) createPermission(w http.ResponseWriter, r *http.Request) {
	var req createPermissionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	perm, err := a.catalog.CreatePermission(r.Context(), auth.Permission{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
		ServiceID:   req.ServiceID,
	})
	if err != nil {
		handleCatalogError(w, r, err)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/v1/permissions/%s", perm.ID))
	writeJSON(w, http.StatusCreated, perm)
}

func (a *API) listPermissions(w http.ResponseWriter, r *http.Request) {
	page, limit, err := pageParams(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	result, err := a.catalog.ListPermissions(r.Context(), page, limit)
	if err != nil {
		handleCatalogError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *API) handlePermissionResource(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/v1/permissions/")
	path = strings.Trim(path, "/")
	if path == "" || strings.Contains(path, "/") {
		writeError(w, r, http.StatusNotFound, "resource not found")
		return
	}
	id := path

	switch r.Method {
	case http.MethodGet:
		a.withPermission("permission", "read", func(w http.ResponseWriter, r *http.Request) {
			a.getPermission(w, r, id)
		})(w, r)
	case http.MethodPut:
		a.withPermission("permission", "update", func(w http.ResponseWriter, r *http.Request) {
			a.updatePermission(w, r, id)
		})(w, r)
	case http.MethodDelete:
		a.withPermission("permission", "delete", func(w http.ResponseWriter, r *http.Request) {
			a.deletePermission(w, r, id)
		})(w, r)
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPut, http.MethodDelete)
	}
}

func (a *API) getPermission(w http.ResponseWriter, r *http.Request, id string) {
	perm, err := a.catalog.GetPermission(r.Context(), id)
	if err != nil {
		handleCatalogError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, perm)
}

func (a *API) updatePermission(w http.ResponseWriter, r *http.Request, id string) {
	var req updatePermissionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	perm, err := a.catalog.UpdatePermission(r.Context(), id, auth.PermissionUpdate{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		handleCatalogError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, perm)
}

func (a *API) deletePermission(w http.ResponseWriter, r *http.Request, id string) {
	if err := a.catalog.DeletePermission(r.Context(), id); err != nil {
		handleCatalogError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- services ---

func (a *API) handleServices(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		a.withPermission("service", "create", a.createService)(w, r)
	case http.MethodGet:
		a.withPermission("service", "read", a.listServices)(w, r)
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPost)
	}
}

func (a *API) createService(w http.ResponseWriter, r *http.Request) {
	var req createServiceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	svc, err := a.catalog.CreateService(r.Context(), auth.Service{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Prefix:      req.Prefix,
	})
	if err != nil {
		handleCatalogError(w, r, err)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/v1/services/%s", svc.ID))
	writeJSON(w, http.StatusCreated, svc)
}

func (a *API) listServices(w http.ResponseWriter, r *http.Request) {
	page, limit, err := pageParams(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	result, err := a.catalog.ListServices(r.Context(), page, limit)
	if err != nil {
		handleCatalogError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *API) handleServiceResource(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/v1/services/")
	path = strings.Trim(path, "/")
	if path == "" {
		writeError(w, r, http.StatusNotFound, "resource not found")
		return
	}
	parts := strings.Split(path, "/")
	serviceID := parts[0]

	switch {
	case len(parts) == 1:
		switch r.Method {
		case http.MethodGet:
			a.withPermission("service", "read", func(w http.ResponseWriter, r *http.Request) {
				a.getService(w, r, serviceID)
			})(w, r)
		case http.MethodPut:
			a.withPermission("service", "update", func(w http.ResponseWriter, r *http.Request) {
				a.updateService(w, r, serviceID)
			})(w, r)
		case http.MethodDelete:
			a.withPermission("service", "delete", func(w http.ResponseWriter, r *http.Request) {
				a.deleteService(w, r, serviceID)
			})(w, r)
		default:
			methodNotAllowed(w, r, http.MethodGet, http.MethodPut, http.MethodDelete)
		}
	case len(parts) == 2 && parts[1] == "permissions":
		if r.Method != http.MethodGet {
			methodNotAllowed(w, r, http.MethodGet)
			return
		}
		a.withPermission("permission", "read", func(w http.ResponseWriter, r *http.Request) {
			a.servicePermissions(w, r, serviceID)
		})(w, r)
	default:
		writeError(w, r, http.StatusNotFound, "resource not found")
	}
}

func (a *API) getService(w http.ResponseWriter, r *http.Request, id string) {
	svc, err := a.catalog.GetService(r.Context(), id)
	if err != nil {
		handleCatalogError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, svc)
}

func (a *API) updateService(w http.ResponseWriter, r *http.Request, id string) {
	var req updateServiceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	svc, err := a.catalog.UpdateService(r.Context(), id, auth.ServiceUpdate{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Prefix:      req.Prefix,
	})
	if err != nil {
		handleCatalogError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, svc)
}

func (a *API) deleteService(w http.ResponseWriter, r *http.Request, id string) {
	if err := a.catalog.DeleteService(r.Context(), id); err != nil {
		handleCatalogError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) servicePermissions(w http.ResponseWriter, r *http.Request, serviceID string) {
	page, limit, err := pageParams(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	perms, err := a.catalog.PermissionsByService(r.Context(), serviceID, page, limit)
	if err != nil {
		handleCatalogError(w, r, err)
		return
	}
	if perms == nil {
		perms = []auth.Permission{}
	}
	writeJSON(w, http.StatusOK, perms)
}

// --- shared helpers ---

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	reader := http.MaxBytesReader(w, r.Body, 1<<20)
	defer reader.Close()
	dec := json.NewDecoder(reader)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is required")
		}
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err == nil {
			return errors.New("unexpected data after JSON body")
		}
		return err
	}
	return nil
}

func handleCatalogError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, auth.ErrInvalidInput):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, auth.ErrConflict):
		writeError(w, r, http.StatusConflict, err.Error())
	case errors.Is(err, auth.ErrNotFound):
		writeError(w, r, http.StatusNotFound, err.Error())
	default:
		obs.Error("catalog operation failed", err, map[string]any{
			"request_id": RequestIDFromContext(r.Context()),
			"path":       r.URL.Path,
		})
		writeError(w, r, http.StatusInternalServerError, "catalog operation failed")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, code int, msg string) {
	payload := map[string]any{
		"error": msg,
	}
	if rid := RequestIDFromContext(r.Context()); rid != "" {
		payload["request_id"] = rid
	}
	writeJSON(w, code, payload)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
}

func pageParams(r *http.Request) (page, limit int, err error) {
	page, err = parsePositiveInt(r.URL.Query().Get("page"), 1)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid page: %w", err)
	}
	limit, err = parsePositiveInt(r.URL.Query().Get("limit"), 10)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid limit: %w", err)
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit, nil
}

func parsePositiveInt(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, fmt.Errorf("must be positive, got %d", n)
	}
	return n, nil
}

package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Wildcard is the literal that matches any value in one code segment.
const Wildcard = "all"

// GraphReader is the one read interface the resolver needs for the boolean
// authorization gate: every permission code the user holds through any of
// their roles. Keeping the traversal behind this interface lets the store
// index or cache it independently.
type GraphReader interface {
	EffectivePermissionCodes(ctx context.Context, userID string) ([]string, error)
}

// PermissionCatalog is the read view used by EffectivePermissions, which
// lists (rather than gates) a user's permissions for one service.
type PermissionCatalog interface {
	ServiceByID(ctx context.Context, id string) (Service, error)
	UserPermissions(ctx context.Context, userID string) ([]Permission, error)
}

// ValidCode reports whether a permission code has the required shape:
// exactly three non-empty colon-separated segments.
func ValidCode(code string) bool {
	parts := strings.Split(code, ":")
	if len(parts) != 3 {
		return false
	}
	for _, p := range parts {
		if p == "" {
			return false
		}
	}
	return true
}

// CandidateCodes expands a requested capability into the fixed set of eight
// codes that cover it, one per wildcard combination. A held permission
// grants the capability iff it equals any of them.
func CandidateCodes(service, entity, action string) []string {
	return []string{
		service + ":" + entity + ":" + action,
		service + ":" + entity + ":" + Wildcard,
		service + ":" + Wildcard + ":" + action,
		service + ":" + Wildcard + ":" + Wildcard,
		Wildcard + ":" + entity + ":" + action,
		Wildcard + ":" + entity + ":" + Wildcard,
		Wildcard + ":" + Wildcard + ":" + action,
		Wildcard + ":" + Wildcard + ":" + Wildcard,
	}
}

// Resolver decides permission membership for a user.
type Resolver struct {
	graph   GraphReader
	catalog PermissionCatalog
}

// NewResolver constructs a Resolver. catalog may be nil when only the
// boolean Allowed gate is needed.
func NewResolver(graph GraphReader, catalog PermissionCatalog) (*Resolver, error) {
	if graph == nil {
		return nil, errors.New("graph reader is required")
	}
	return &Resolver{graph: graph, catalog: catalog}, nil
}

// Allowed reports whether the user holds, through any role, a permission
// covering the requested (service, entity, action). Held codes that do not
// have the three-segment shape never match. Any storage failure fails
// closed with an error.
func (r *Resolver) Allowed(ctx context.Context, userID, service, entity, action string) (bool, error) {
	if userID == "" || service == "" || entity == "" || action == "" {
		return false, nil
	}
	held, err := r.graph.EffectivePermissionCodes(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("%w: read permission graph: %v", ErrStoreUnavailable, err)
	}
	candidates := CandidateCodes(service, entity, action)
	for _, code := range held {
		if !ValidCode(code) {
			continue
		}
		for _, want := range candidates {
			if code == want {
				return true, nil
			}
		}
	}
	return false, nil
}

// EffectivePermissions lists the user's permissions relevant to one service:
// those bound to the service id, plus those whose code names the service by
// name or wildcards it. Codes embed the service name, not its id, so the
// match here is by name; the id-based association stays as a known
// inconsistency that existing permission codes depend on. An unknown service
// id yields an empty list, not an error.
func (r *Resolver) EffectivePermissions(ctx context.Context, userID, serviceID string) ([]Permission, error) {
	if r.catalog == nil {
		return nil, errors.New("permission catalog is not configured")
	}
	if userID == "" || serviceID == "" {
		return []Permission{}, nil
	}
	svc, err := r.catalog.ServiceByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return []Permission{}, nil
		}
		return nil, fmt.Errorf("%w: read service: %v", ErrStoreUnavailable, err)
	}
	perms, err := r.catalog.UserPermissions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: read user permissions: %v", ErrStoreUnavailable, err)
	}
	result := []Permission{}
	for _, p := range perms {
		if p.ServiceID != nil && *p.ServiceID == serviceID {
			result = append(result, p)
			continue
		}
		segment, _, ok := strings.Cut(p.Code, ":")
		if !ok {
			continue
		}
		if segment == svc.Name || segment == Wildcard {
			result = append(result, p)
		}
	}
	return result, nil
}

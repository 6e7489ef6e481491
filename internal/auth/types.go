package auth

import "time"

// Service is a catalog entry grouping roles and permissions by subsystem.
// It is used for filtering and display; the authorization decision itself
// works on permission codes, not service rows.
type Service struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	Prefix      string    `json:"prefix,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// User is an account that can hold role assignments and open sessions.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Surname      string    `json:"surname"`
	Patronymic   string    `json:"patronymic,omitempty"`
	Username     string    `json:"username"`
	Birthday     time.Time `json:"birthday,omitzero"`
	PasswordHash string    `json:"-"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// Role is a named bundle of permissions. ServiceID scopes the role to one
// service; a global role (nil ServiceID) may carry wildcard or cross-service
// permissions.
type Role struct {
	ID          string    `json:"id"`
	ServiceID   *string   `json:"service_id,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	IsGlobal    bool      `json:"is_global"`
	CreatedAt   time.Time `json:"created_at"`
}

// Permission is one grantable capability. Code is the unit of matching:
// exactly three colon-separated segments, service:entity:action, where any
// segment may be the wildcard literal "all". ServiceID is a display/filter
// association only.
type Permission struct {
	ID          string    `json:"id"`
	ServiceID   *string   `json:"service_id,omitempty"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Session binds a user to a validity window. Only the SHA-256 hash of the
// bearer token is ever stored; the raw token exists client-side only.
type Session struct {
	UserID    string    `json:"user_id"`
	TokenHash string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// RoleAssignment links a user to a role.
type RoleAssignment struct {
	UserID    string    `json:"user_id"`
	RoleID    string    `json:"role_id"`
	GrantedAt time.Time `json:"granted_at"`
}

// RoleGrant links a role to a permission.
type RoleGrant struct {
	RoleID       string    `json:"role_id"`
	PermissionID string    `json:"permission_id"`
	GrantedAt    time.Time `json:"granted_at"`
}

const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

// Page is a pagination envelope for catalog listings.
type Page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Pages int `json:"pages"`
}

// NewPage wraps items with pagination metadata. Pages is the total page
// count for the given limit.
func NewPage[T any](items []T, total, page, limit int) Page[T] {
	if items == nil {
		items = []T{}
	}
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return Page[T]{Items: items, Total: total, Page: page, Pages: pages}
}

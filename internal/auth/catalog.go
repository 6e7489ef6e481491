package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// CatalogStore is the persistence surface for catalog management: users,
// roles, permissions and services, plus the join relations between them.
// Deleting a user must cascade its sessions; deleting a role or permission
// cascades its join rows.
type CatalogStore interface {
	CreateService(ctx context.Context, svc Service) (Service, error)
	ListServices(ctx context.Context, page, limit int) ([]Service, int, error)
	ServiceByID(ctx context.Context, id string) (Service, error)
	UpdateService(ctx context.Context, id string, upd ServiceUpdate) (Service, error)
	DeleteService(ctx context.Context, id string) error

	CreateUser(ctx context.Context, user User) (User, error)
	ListUsers(ctx context.Context, page, limit int) ([]User, int, error)
	ListAllUsers(ctx context.Context) ([]User, error)
	UserByID(ctx context.Context, id string) (User, error)
	UserByUsername(ctx context.Context, username string) (User, error)
	UpdateUser(ctx context.Context, id string, upd UserUpdate) (User, error)
	DeleteUser(ctx context.Context, id string) error

	CreateRole(ctx context.Context, role Role) (Role, error)
	ListRoles(ctx context.Context, page, limit int) ([]Role, int, error)
	RoleByID(ctx context.Context, id string) (Role, error)
	UpdateRole(ctx context.Context, id string, upd RoleUpdate) (Role, error)
	DeleteRole(ctx context.Context, id string) error
	AssignRole(ctx context.Context, userID, roleID string) (RoleAssignment, error)
	RemoveRoleAssignment(ctx context.Context, userID, roleID string) error
	RolesOfUser(ctx context.Context, userID string) ([]Role, error)

	CreatePermission(ctx context.Context, perm Permission) (Permission, error)
	ListPermissions(ctx context.Context, page, limit int) ([]Permission, int, error)
	PermissionsByService(ctx context.Context, serviceID string, page, limit int) ([]Permission, error)
	PermissionByID(ctx context.Context, id string) (Permission, error)
	UpdatePermission(ctx context.Context, id string, upd PermissionUpdate) (Permission, error)
	DeletePermission(ctx context.Context, id string) error
	AttachPermission(ctx context.Context, roleID, permissionID string) (RoleGrant, error)
	DetachPermission(ctx context.Context, roleID, permissionID string) error
	UserPermissions(ctx context.Context, userID string) ([]Permission, error)
}

// ServiceUpdate carries optional field changes for a service. Renaming a
// service is allowed even though permission codes embed service names; that
// policy gap is inherited and documented rather than resolved here.
type ServiceUpdate struct {
	Name        *string
	Description *string
	ImageURL    *string
	Prefix      *string
}

// UserUpdate carries optional field changes for a user.
type UserUpdate struct {
	Name       *string
	Surname    *string
	Patronymic *string
	Username   *string
	Birthday   *time.Time
	Password   *string
	Status     *string
}

// RoleUpdate carries optional field changes for a role.
type RoleUpdate struct {
	Name        *string
	Description *string
	IsGlobal    *bool
}

// PermissionUpdate carries optional field changes for a permission.
type PermissionUpdate struct {
	Code        *string
	Name        *string
	Description *string
}

// Catalog provides validated catalog management on top of a CatalogStore.
type Catalog struct {
	store CatalogStore
}

// NewCatalog constructs a Catalog.
func NewCatalog(store CatalogStore) (*Catalog, error) {
	if store == nil {
		return nil, errors.New("catalog store is required")
	}
	return &Catalog{store: store}, nil
}

// Services -----------------------------------------------------------------

func (c *Catalog) CreateService(ctx context.Context, svc Service) (Service, error) {
	svc.Name = strings.TrimSpace(svc.Name)
	if svc.Name == "" {
		return Service{}, fmt.Errorf("%w: service name is required", ErrInvalidInput)
	}
	svc.Description = strings.TrimSpace(svc.Description)
	svc.Prefix = strings.TrimSpace(svc.Prefix)
	if len(svc.Prefix) > 5 {
		return Service{}, fmt.Errorf("%w: prefix must be at most 5 characters", ErrInvalidInput)
	}
	return c.store.CreateService(ctx, svc)
}

func (c *Catalog) ListServices(ctx context.Context, page, limit int) (Page[Service], error) {
	items, total, err := c.store.ListServices(ctx, page, limit)
	if err != nil {
		return Page[Service]{}, err
	}
	return NewPage(items, total, page, limit), nil
}

func (c *Catalog) GetService(ctx context.Context, id string) (Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Service{}, fmt.Errorf("%w: service id is required", ErrInvalidInput)
	}
	return c.store.ServiceByID(ctx, id)
}

func (c *Catalog) UpdateService(ctx context.Context, id string, upd ServiceUpdate) (Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Service{}, fmt.Errorf("%w: service id is required", ErrInvalidInput)
	}
	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return Service{}, fmt.Errorf("%w: service name is required", ErrInvalidInput)
		}
		upd.Name = &name
	}
	return c.store.UpdateService(ctx, id, upd)
}

func (c *Catalog) DeleteService(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: service id is required", ErrInvalidInput)
	}
	return c.store.DeleteService(ctx, id)
}

// Users ---------------------------------------------------------------------

// CreateUser hashes the plaintext password before it reaches the store.
func (c *Catalog) CreateUser(ctx context.Context, user User, password string) (User, error) {
	user.Username = strings.TrimSpace(user.Username)
	if user.Username == "" {
		return User{}, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	user.Name = strings.TrimSpace(user.Name)
	user.Surname = strings.TrimSpace(user.Surname)
	user.Patronymic = strings.TrimSpace(user.Patronymic)
	if user.Status == "" {
		user.Status = UserStatusActive
	}
	if user.Status != UserStatusActive && user.Status != UserStatusDisabled {
		return User{}, fmt.Errorf("%w: unsupported status %s", ErrInvalidInput, user.Status)
	}
	hash, err := HashPassword(password)
	if err != nil {
		return User{}, err
	}
	user.PasswordHash = hash
	return c.store.CreateUser(ctx, user)
}

func (c *Catalog) ListUsers(ctx context.Context, page, limit int) (Page[User], error) {
	items, total, err := c.store.ListUsers(ctx, page, limit)
	if err != nil {
		return Page[User]{}, err
	}
	return NewPage(items, total, page, limit), nil
}

func (c *Catalog) ListAllUsers(ctx context.Context) ([]User, error) {
	return c.store.ListAllUsers(ctx)
}

func (c *Catalog) GetUser(ctx context.Context, id string) (User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return User{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	return c.store.UserByID(ctx, id)
}

func (c *Catalog) UpdateUser(ctx context.Context, id string, upd UserUpdate) (User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return User{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if upd.Username != nil {
		username := strings.TrimSpace(*upd.Username)
		if username == "" {
			return User{}, fmt.Errorf("%w: username is required", ErrInvalidInput)
		}
		upd.Username = &username
	}
	if upd.Status != nil {
		status := strings.TrimSpace(strings.ToLower(*upd.Status))
		if status != UserStatusActive && status != UserStatusDisabled {
			return User{}, fmt.Errorf("%w: unsupported status %s", ErrInvalidInput, status)
		}
		upd.Status = &status
	}
	if upd.Password != nil {
		if *upd.Password == "" {
			return User{}, fmt.Errorf("%w: password is required", ErrInvalidInput)
		}
		hash, err := HashPassword(*upd.Password)
		if err != nil {
			return User{}, err
		}
		upd.Password = &hash
	}
	return c.store.UpdateUser(ctx, id, upd)
}

// DeleteUser removes the user. The store cascades the user's sessions first;
// otherwise the sessions foreign key blocks the delete.
func (c *Catalog) DeleteUser(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	return c.store.DeleteUser(ctx, id)
}

// Roles ---------------------------------------------------------------------

func (c *Catalog) CreateRole(ctx context.Context, role Role) (Role, error) {
	role.Name = strings.TrimSpace(role.Name)
	if role.Name == "" {
		return Role{}, fmt.Errorf("%w: role name is required", ErrInvalidInput)
	}
	role.Description = strings.TrimSpace(role.Description)
	if role.ServiceID != nil {
		id := strings.TrimSpace(*role.ServiceID)
		if id == "" {
			role.ServiceID = nil
		} else {
			role.ServiceID = &id
		}
	}
	return c.store.CreateRole(ctx, role)
}

func (c *Catalog) ListRoles(ctx context.Context, page, limit int) (Page[Role], error) {
	items, total, err := c.store.ListRoles(ctx, page, limit)
	if err != nil {
		return Page[Role]{}, err
	}
	return NewPage(items, total, page, limit), nil
}

func (c *Catalog) GetRole(ctx context.Context, id string) (Role, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Role{}, fmt.Errorf("%w: role id is required", ErrInvalidInput)
	}
	return c.store.RoleByID(ctx, id)
}

func (c *Catalog) UpdateRole(ctx context.Context, id string, upd RoleUpdate) (Role, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Role{}, fmt.Errorf("%w: role id is required", ErrInvalidInput)
	}
	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return Role{}, fmt.Errorf("%w: role name is required", ErrInvalidInput)
		}
		upd.Name = &name
	}
	return c.store.UpdateRole(ctx, id, upd)
}

func (c *Catalog) DeleteRole(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: role id is required", ErrInvalidInput)
	}
	return c.store.DeleteRole(ctx, id)
}

func (c *Catalog) AssignRole(ctx context.Context, userID, roleID string) (RoleAssignment, error) {
	userID = strings.TrimSpace(userID)
	roleID = strings.TrimSpace(roleID)
	if userID == "" || roleID == "" {
		return RoleAssignment{}, fmt.Errorf("%w: user id and role id are required", ErrInvalidInput)
	}
	return c.store.AssignRole(ctx, userID, roleID)
}

func (c *Catalog) RemoveRoleAssignment(ctx context.Context, userID, roleID string) error {
	userID = strings.TrimSpace(userID)
	roleID = strings.TrimSpace(roleID)
	if userID == "" || roleID == "" {
		return fmt.Errorf("%w: user id and role id are required", ErrInvalidInput)
	}
	return c.store.RemoveRoleAssignment(ctx, userID, roleID)
}

func (c *Catalog) RolesOfUser(ctx context.Context, userID string) ([]Role, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	return c.store.RolesOfUser(ctx, userID)
}

// Permissions ---------------------------------------------------------------

func (c *Catalog) CreatePermission(ctx context.Context, perm Permission) (Permission, error) {
	perm.Code = strings.TrimSpace(perm.Code)
	if !ValidCode(perm.Code) {
		return Permission{}, fmt.Errorf("%w: code must have the form service:entity:action", ErrInvalidInput)
	}
	perm.Name = strings.TrimSpace(perm.Name)
	if perm.Name == "" {
		return Permission{}, fmt.Errorf("%w: permission name is required", ErrInvalidInput)
	}
	perm.Description = strings.TrimSpace(perm.Description)
	return c.store.CreatePermission(ctx, perm)
}

func (c *Catalog) ListPermissions(ctx context.Context, page, limit int) (Page[Permission], error) {
	items, total, err := c.store.ListPermissions(ctx, page, limit)
	if err != nil {
		return Page[Permission]{}, err
	}
	return NewPage(items, total, page, limit), nil
}

func (c *Catalog) PermissionsByService(ctx context.Context, serviceID string, page, limit int) ([]Permission, error) {
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return nil, fmt.Errorf("%w: service id is required", ErrInvalidInput)
	}
	return c.store.PermissionsByService(ctx, serviceID, page, limit)
}

func (c *Catalog) GetPermission(ctx context.Context, id string) (Permission, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Permission{}, fmt.Errorf("%w: permission id is required", ErrInvalidInput)
	}
	return c.store.PermissionByID(ctx, id)
}

func (c *Catalog) UpdatePermission(ctx context.Context, id string, upd PermissionUpdate) (Permission, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Permission{}, fmt.Errorf("%w: permission id is required", ErrInvalidInput)
	}
	if upd.Code != nil {
		code := strings.TrimSpace(*upd.Code)
		if !ValidCode(code) {
			return Permission{}, fmt.Errorf("%w: code must have the form service:entity:action", ErrInvalidInput)
		}
		upd.Code = &code
	}
	return c.store.UpdatePermission(ctx, id, upd)
}

func (c *Catalog) DeletePermission(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: permission id is required", ErrInvalidInput)
	}
	return c.store.DeletePermission(ctx, id)
}

func (c *Catalog) AttachPermission(ctx context.Context, roleID, permissionID string) (RoleGrant, error) {
	roleID = strings.TrimSpace(roleID)
	permissionID = strings.TrimSpace(permissionID)
	if roleID == "" || permissionID == "" {
		return RoleGrant{}, fmt.Errorf("%w: role id and permission id are required", ErrInvalidInput)
	}
	return c.store.AttachPermission(ctx, roleID, permissionID)
}

func (c *Catalog) DetachPermission(ctx context.Context, roleID, permissionID string) error {
	roleID = strings.TrimSpace(roleID)
	permissionID = strings.TrimSpace(permissionID)
	if roleID == "" || permissionID == "" {
		return fmt.Errorf("%w: role id and permission id are required", ErrInvalidInput)
	}
	return c.store.DetachPermission(ctx, roleID, permissionID)
}

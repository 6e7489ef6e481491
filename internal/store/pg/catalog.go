package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"st29.ru/authcore/internal/auth"
)

const (
	pgErrUniqueViolation     = "23505"
	pgErrForeignKeyViolation = "23503"
)

func maybePgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

func translateWriteError(err error) error {
	if pgErr, ok := maybePgError(err); ok {
		switch pgErr.Code {
		case pgErrUniqueViolation:
			return auth.ErrConflict
		case pgErrForeignKeyViolation:
			return fmt.Errorf("%w: referenced row does not exist", auth.ErrNotFound)
		}
	}
	return err
}

func pageBounds(page, limit int) (offset, capped int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return (page - 1) * limit, limit
}

// Services -----------------------------------------------------------------

func (s *Store) CreateService(ctx context.Context, svc auth.Service) (auth.Service, error) {
	if svc.ID == "" {
		svc.ID = uuid.NewString()
	}
	row := s.db.QueryRowContext(ctx, `
		insert into services(id, name, description, image_url, prefix)
		values ($1, $2, $3, $4, $5)
		returning id, name, description, image_url, prefix, created_at
	`, svc.ID, svc.Name, svc.Description, svc.ImageURL, svc.Prefix)
	var out auth.Service
	if err := row.Scan(&out.ID, &out.Name, &out.Description, &out.ImageURL, &out.Prefix, &out.CreatedAt); err != nil {
		return auth.Service{}, translateWriteError(err)
	}
	return out, nil
}

func (s *Store) ListServices(ctx context.Context, page, limit int) ([]auth.Service, int, error) {
	var total int
	if err := s.db.QueryRowContext(ctx, `select count(*) from services`).Scan(&total); err != nil {
		return nil, 0, err
	}
	offset, limit := pageBounds(page, limit)
	rows, err := s.db.QueryContext(ctx, `
		select id, name, description, image_url, prefix, created_at
		from services order by created_at offset $1 limit $2
	`, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var services []auth.Service
	for rows.Next() {
		var svc auth.Service
		if err := rows.Scan(&svc.ID, &svc.Name, &svc.Description, &svc.ImageURL, &svc.Prefix, &svc.CreatedAt); err != nil {
			return nil, 0, err
		}
		services = append(services, svc)
	}
	return services, total, rows.Err()
}

func (s *Store) ServiceByID(ctx context.Context, id string) (auth.Service, error) {
	row := s.db.QueryRowContext(ctx, `
		select id, name, description, image_url, prefix, created_at
		from services where id = $1
	`, id)
	var svc auth.Service
	if err := row.Scan(&svc.ID, &svc.Name, &svc.Description, &svc.ImageURL, &svc.Prefix, &svc.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return auth.Service{}, auth.ErrNotFound
		}
		return auth.Service{}, err
	}
	return svc, nil
}

func (s *Store) UpdateService(ctx context.Context, id string, upd auth.ServiceUpdate) (auth.Service, error) {
	sets, args := updateClauses(map[string]any{
		"name":        deref(upd.Name),
		"description": deref(upd.Description),
		"image_url":   deref(upd.ImageURL),
		"prefix":      deref(upd.Prefix),
	})
	if len(sets) == 0 {
		return s.ServiceByID(ctx, id)
	}
	args = append(args, id)
	query := fmt.Sprintf(`
		update services set %s where id = $%d
		returning id, name, description, image_url, prefix, created_at
	`, strings.Join(sets, ", "), len(args))
	var svc auth.Service
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(
		&svc.ID, &svc.Name, &svc.Description, &svc.ImageURL, &svc.Prefix, &svc.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return auth.Service{}, auth.ErrNotFound
		}
		return auth.Service{}, translateWriteError(err)
	}
	return svc, nil
}

func (s *Store) DeleteService(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `delete from services where id = $1`, id)
	if err != nil {
		return translateWriteError(err)
	}
	return requireAffected(res)
}

// Users ---------------------------------------------------------------------

const userColumns = `id, name, surname, patronymic, username, birthday, password_hash, status, created_at`

func scanUser(row interface{ Scan(...any) error }) (auth.User, error) {
	var (
		user     auth.User
		birthday sql.NullTime
	)
	err := row.Scan(&user.ID, &user.Name, &user.Surname, &user.Patronymic, &user.Username,
		&birthday, &user.PasswordHash, &user.Status, &user.CreatedAt)
	if err != nil {
		return auth.User{}, err
	}
	if birthday.Valid {
		user.Birthday = birthday.Time
	}
	return user, nil
}

func (s *Store) CreateUser(ctx context.Context, user auth.User) (auth.User, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	var birthday sql.NullTime
	if !user.Birthday.IsZero() {
		birthday = sql.NullTime{Time: user.Birthday, Valid: true}
	}
	row := s.db.QueryRowContext(ctx, `
		insert into users(id, name, surname, patronymic, username, birthday, password_hash, status)
		values ($1, $2, $3, $4, $5, $6, $7, $8)
		returning `+userColumns+`
	`, user.ID, user.Name, user.Surname, user.Patronymic, user.Username, birthday, user.PasswordHash, user.Status)
	out, err := scanUser(row)
	if err != nil {
		return auth.User{}, translateWriteError(err)
	}
	return out, nil
}

func (s *Store) ListUsers(ctx context.Context, page, limit int) ([]auth.User, int, error) {
	var total int
	if err := s.db.QueryRowContext(ctx, `select count(*) from users`).Scan(&total); err != nil {
		return nil, 0, err
	}
	offset, limit := pageBounds(page, limit)
	rows, err := s.db.QueryContext(ctx, `
		select `+userColumns+` from users order by created_at offset $1 limit $2
	`, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var users []auth.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, user)
	}
	return users, total, rows.Err()
}

func (s *Store) ListAllUsers(ctx context.Context) ([]auth.User, error) {
	rows, err := s.db.QueryContext(ctx, `select `+userColumns+` from users order by created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []auth.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (s *Store) UserByID(ctx context.Context, id string) (auth.User, error) {
	row := s.db.QueryRowContext(ctx, `select `+userColumns+` from users where id = $1`, id)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return auth.User{}, auth.ErrNotFound
		}
		return auth.User{}, err
	}
	return user, nil
}

func (s *Store) UserByUsername(ctx context.Context, username string) (auth.User, error) {
	row := s.db.QueryRowContext(ctx, `select `+userColumns+` from users where username = $1`, username)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return auth.User{}, auth.ErrNotFound
		}
		return auth.User{}, err
	}
	return user, nil
}

func (s *Store) UpdateUser(ctx context.Context, id string, upd auth.UserUpdate) (auth.User, error) {
	fields := map[string]any{
		"name":       deref(upd.Name),
		"surname":    deref(upd.Surname),
		"patronymic": deref(upd.Patronymic),
		"username":   deref(upd.Username),
		"status":     deref(upd.Status),
	}
	if upd.Birthday != nil {
		fields["birthday"] = *upd.Birthday
	}
	if upd.Password != nil {
		// Catalog has already hashed it by the time it reaches the store.
		fields["password_hash"] = *upd.Password
	}
	sets, args := updateClauses(fields)
	if len(sets) == 0 {
		return s.UserByID(ctx, id)
	}
	args = append(args, id)
	query := fmt.Sprintf(`update users set %s where id = $%d returning `+userColumns,
		strings.Join(sets, ", "), len(args))
	user, err := scanUser(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return auth.User{}, auth.ErrNotFound
		}
		return auth.User{}, translateWriteError(err)
	}
	return user, nil
}

// DeleteUser removes the user inside one transaction, deleting its sessions
// first: the sessions foreign key would otherwise block the delete. Role
// assignments cascade at the schema level.
func (s *Store) DeleteUser(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `delete from sessions where user_id = $1`, id); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `delete from users where id = $1`, id)
	if err != nil {
		return translateWriteError(err)
	}
	if err := requireAffected(res); err != nil {
		return err
	}
	return tx.Commit()
}

// Roles ---------------------------------------------------------------------

func (s *Store) CreateRole(ctx context.Context, role auth.Role) (auth.Role, error) {
	if role.ID == "" {
		role.ID = uuid.NewString()
	}
	row := s.db.QueryRowContext(ctx, `
		insert into roles(id, service_id, name, description, is_global)
		values ($1, $2, $3, $4, $5)
		returning id, service_id, name, description, is_global, created_at
	`, role.ID, role.ServiceID, role.Name, role.Description, role.IsGlobal)
	var out auth.Role
	if err := row.Scan(&out.ID, &out.ServiceID, &out.Name, &out.Description, &out.IsGlobal, &out.CreatedAt); err != nil {
		return auth.Role{}, translateWriteError(err)
	}
	return out, nil
}

func (s *Store) ListRoles(ctx context.Context, page, limit int) ([]auth.Role, int, error) {
	var total int
	if err := s.db.QueryRowContext(ctx, `select count(*) from roles`).Scan(&total); err != nil {
		return nil, 0, err
	}
	offset, limit := pageBounds(page, limit)
	rows, err := s.db.QueryContext(ctx, `
		select id, service_id, name, description, is_global, created_at
		from roles order by created_at offset $1 limit $2
	`, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var roles []auth.Role
	for rows.Next() {
		var role auth.Role
		if err := rows.Scan(&role.ID, &role.ServiceID, &role.Name, &role.Description, &role.IsGlobal, &role.CreatedAt); err != nil {
			return nil, 0, err
		}
		roles = append(roles, role)
	}
	return roles, total, rows.Err()
}

func (s *Store) RoleByID(ctx context.Context, id string) (auth.Role, error) {
	row := s.db.QueryRowContext(ctx, `
		select id, service_id, name, description, is_global, created_at from roles where id = $1
	`, id)
	var role auth.Role
	if err := row.Scan(&role.ID, &role.ServiceID, &role.Name, &role.Description, &role.IsGlobal, &role.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return auth.Role{}, auth.ErrNotFound
		}
		return auth.Role{}, err
	}
	return role, nil
}

func (s *Store) UpdateRole(ctx context.Context, id string, upd auth.RoleUpdate) (auth.Role, error) {
	fields := map[string]any{
		"name":        deref(upd.Name),
		"description": deref(upd.Description),
	}
	if upd.IsGlobal != nil {
		fields["is_global"] = *upd.IsGlobal
	}
	sets, args := updateClauses(fields)
	if len(sets) == 0 {
		return s.RoleByID(ctx, id)
	}
	args = append(args, id)
	query := fmt.Sprintf(`
		update roles set %s where id = $%d
		returning id, service_id, name, description, is_global, created_at
	`, strings.Join(sets, ", "), len(args))
	var role auth.Role
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(
		&role.ID, &role.ServiceID, &role.Name, &role.Description, &role.IsGlobal, &role.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return auth.Role{}, auth.ErrNotFound
		}
		return auth.Role{}, translateWriteError(err)
	}
	return role, nil
}

func (s *Store) DeleteRole(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `delete from roles where id = $1`, id)
	if err != nil {
		return translateWriteError(err)
	}
	return requireAffected(res)
}

func (s *Store) AssignRole(ctx context.Context, userID, roleID string) (auth.RoleAssignment, error) {
	row := s.db.QueryRowContext(ctx, `
		insert into user_roles(user_id, role_id)
		values ($1, $2)
		on conflict (user_id, role_id) do update set user_id = excluded.user_id
		returning user_id, role_id, granted_at
	`, userID, roleID)
	var a auth.RoleAssignment
	if err := row.Scan(&a.UserID, &a.RoleID, &a.GrantedAt); err != nil {
		return auth.RoleAssignment{}, translateWriteError(err)
	}
	return a, nil
}

func (s *Store) RemoveRoleAssignment(ctx context.Context, userID, roleID string) error {
	res, err := s.db.ExecContext(ctx, `
		delete from user_roles where user_id = $1 and role_id = $2
	`, userID, roleID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (s *Store) RolesOfUser(ctx context.Context, userID string) ([]auth.Role, error) {
	rows, err := s.db.QueryContext(ctx, `
		select r.id, r.service_id, r.name, r.description, r.is_global, r.created_at
		from roles r
		join user_roles ur on ur.role_id = r.id
		where ur.user_id = $1
		order by r.created_at
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []auth.Role
	for rows.Next() {
		var role auth.Role
		if err := rows.Scan(&role.ID, &role.ServiceID, &role.Name, &role.Description, &role.IsGlobal, &role.CreatedAt); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

// Permissions ---------------------------------------------------------------

const permissionColumns = `id, service_id, code, name, description, created_at`

func scanPermission(row interface{ Scan(...any) error }) (auth.Permission, error) {
	var perm auth.Permission
	err := row.Scan(&perm.ID, &perm.ServiceID, &perm.Code, &perm.Name, &perm.Description, &perm.CreatedAt)
	return perm, err
}

func (s *Store) CreatePermission(ctx context.Context, perm auth.Permission) (auth.Permission, error) {
	if perm.ID == "" {
		perm.ID = uuid.NewString()
	}
	row := s.db.QueryRowContext(ctx, `
		insert into permissions(id, service_id, code, name, description)
		values ($1, $2, $3, $4, $5)
		returning `+permissionColumns+`
	`, perm.ID, perm.ServiceID, perm.Code, perm.Name, perm.Description)
	out, err := scanPermission(row)
	if err != nil {
		return auth.Permission{}, translateWriteError(err)
	}
	return out, nil
}

func (s *Store) ListPermissions(ctx context.Context, page, limit int) ([]auth.Permission, int, error) {
	var total int
	if err := s.db.QueryRowContext(ctx, `select count(*) from permissions`).Scan(&total); err != nil {
		return nil, 0, err
	}
	offset, limit := pageBounds(page, limit)
	rows, err := s.db.QueryContext(ctx, `
		select `+permissionColumns+` from permissions order by code offset $1 limit $2
	`, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var perms []auth.Permission
	for rows.Next() {
		perm, err := scanPermission(rows)
		if err != nil {
			return nil, 0, err
		}
		perms = append(perms, perm)
	}
	return perms, total, rows.Err()
}

func (s *Store) PermissionsByService(ctx context.Context, serviceID string, page, limit int) ([]auth.Permission, error) {
	offset, limit := pageBounds(page, limit)
	rows, err := s.db.QueryContext(ctx, `
		select `+permissionColumns+` from permissions
		where service_id = $1 order by code offset $2 limit $3
	`, serviceID, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var perms []auth.Permission
	for rows.Next() {
		perm, err := scanPermission(rows)
		if err != nil {
			return nil, err
		}
		perms = append(perms, perm)
	}
	return perms, rows.Err()
}

func (s *Store) PermissionByID(ctx context.Context, id string) (auth.Permission, error) {
	row := s.db.QueryRowContext(ctx, `select `+permissionColumns+` from permissions where id = $1`, id)
	perm, err := scanPermission(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return auth.Permission{}, auth.ErrNotFound
		}
		return auth.Permission{}, err
	}
	return perm, nil
}

func (s *Store) UpdatePermission(ctx context.Context, id string, upd auth.PermissionUpdate) (auth.Permission, error) {
	sets, args := updateClauses(map[string]any{
		"code":        deref(upd.Code),
		"name":        deref(upd.Name),
		"description": deref(upd.Description),
	})
	if len(sets) == 0 {
		return s.PermissionByID(ctx, id)
	}
	args = append(args, id)
	query := fmt.Sprintf(`update permissions set %s where id = $%d returning `+permissionColumns,
		strings.Join(sets, ", "), len(args))
	perm, err := scanPermission(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return auth.Permission{}, auth.ErrNotFound
		}
		return auth.Permission{}, translateWriteError(err)
	}
	return perm, nil
}

func (s *Store) DeletePermission(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `delete from permissions where id = $1`, id)
	if err != nil {
		return translateWriteError(err)
	}
	return requireAffected(res)
}

func (s *Store) AttachPermission(ctx context.Context, roleID, permissionID string) (auth.RoleGrant, error) {
	row := s.db.QueryRowContext(ctx, `
		insert into role_permissions(role_id, permission_id)
		values ($1, $2)
		on conflict (role_id, permission_id) do update set role_id = excluded.role_id
		returning role_id, permission_id, granted_at
	`, roleID, permissionID)
	var grant auth.RoleGrant
	if err := row.Scan(&grant.RoleID, &grant.PermissionID, &grant.GrantedAt); err != nil {
		return auth.RoleGrant{}, translateWriteError(err)
	}
	return grant, nil
}

func (s *Store) DetachPermission(ctx context.Context, roleID, permissionID string) error {
	res, err := s.db.ExecContext(ctx, `
		delete from role_permissions where role_id = $1 and permission_id = $2
	`, roleID, permissionID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (s *Store) UserPermissions(ctx context.Context, userID string) ([]auth.Permission, error) {
	rows, err := s.db.QueryContext(ctx, `
		select distinct p.id, p.service_id, p.code, p.name, p.description, p.created_at
		from permissions p
		join role_permissions rp on rp.permission_id = p.id
		join user_roles ur on ur.role_id = rp.role_id
		where ur.user_id = $1
		order by p.code
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var perms []auth.Permission
	for rows.Next() {
		perm, err := scanPermission(rows)
		if err != nil {
			return nil, err
		}
		perms = append(perms, perm)
	}
	return perms, rows.Err()
}

// Helpers -------------------------------------------------------------------

func deref(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

// updateClauses builds "col = $n" fragments for the non-nil fields, in a
// stable order so generated SQL stays predictable in tests.
func updateClauses(fields map[string]any) ([]string, []any) {
	keys := make([]string, 0, len(fields))
	for k, v := range fields {
		if v == nil {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var (
		sets []string
		args []any
	)
	for i, k := range keys {
		sets = append(sets, fmt.Sprintf("%s = $%d", k, i+1))
		args = append(args, fields[k])
	}
	return sets, args
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return auth.ErrNotFound
	}
	return nil
}

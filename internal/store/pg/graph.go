package pg

import (
	"context"
)

// EffectivePermissionCodes traverses user -> roles -> permissions in one
// joined query and returns the distinct permission codes the user holds.
// This is the single hot path of every authorization decision; anything
// smarter (caching, denormalization) hides behind this method.
func (s *Store) EffectivePermissionCodes(ctx context.Context, userID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		select distinct p.code
		from permissions p
		join role_permissions rp on rp.permission_id = p.id
		join user_roles ur on ur.role_id = rp.role_id
		where ur.user_id = $1
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}
	return codes, rows.Err()
}

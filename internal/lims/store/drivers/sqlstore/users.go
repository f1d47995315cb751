package sqlstore

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/ancestrybio/internal/lims/domain"
)

type usersRepo struct{ q *Queries }

const userColumns = `id, email, display_name, password_hash, role, created_at, last_login`

func scanUser(row scanner) (domain.User, error) {
	var (
		u         domain.User
		role      string
		lastLogin sql.NullTime
	)
	if err := row.Scan(&u.ID, &u.Email, &u.DisplayName, &u.PasswordHash, &role, &u.CreatedAt, &lastLogin); err != nil {
		return domain.User{}, err
	}
	u.Role = domain.Role(role)
	u.CreatedAt = u.CreatedAt.UTC()
	u.LastLogin = mapNullTimePtr(lastLogin)
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.q.exec(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Email, u.DisplayName, u.PasswordHash, string(u.Role), u.CreatedAt.UTC(), mapOptionalTime(u.LastLogin),
	)
	return r.q.mapWriteErr(err)
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	u, err := scanUser(r.q.queryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id))
	return u, mapNotFound(err)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	u, err := scanUser(r.q.queryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email))
	return u, mapNotFound(err)
}

func (r *usersRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.q.query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *usersRepo) UpdateUserRole(ctx context.Context, userID string, role domain.Role) error {
	return r.q.execOne(ctx, `UPDATE users SET role = ? WHERE id = ?`, string(role), userID)
}

func (r *usersRepo) UpdateDisplayName(ctx context.Context, userID, displayName string) error {
	return r.q.execOne(ctx, `UPDATE users SET display_name = ? WHERE id = ?`, displayName, userID)
}

func (r *usersRepo) TouchLastLogin(ctx context.Context, userID string) error {
	return r.q.execOne(ctx, `UPDATE users SET last_login = ? WHERE id = ?`, time.Now().UTC(), userID)
}

func (r *usersRepo) IsEmpty(ctx context.Context) (bool, error) {
	var n int64
	if err := r.q.queryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return false, err
	}
	return n == 0, nil
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"userservice/internal/domain"
)

// UserRepo is the persistent user.UserRepo implementation.
// Email uniqueness is enforced by a unique index on users(email).
type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// ---------- helpers ----------

const userColumns = `id, email, password_hash, active, created_at, updated_at`

func scanUser(row *sql.Row) (userRow, error) {
	var ur userRow
	err := row.Scan(
		&ur.ID,
		&ur.Email,
		&ur.PasswordHash,
		&ur.Active,
		&ur.CreatedAt,
		&ur.UpdatedAt,
	)
	return ur, err
}

func toDomainUser(ur userRow) domain.User {
	return domain.User{
		ID:           ur.ID,
		Email:        ur.Email,
		PasswordHash: ur.PasswordHash,
		Active:       ur.Active,
		CreatedAt:    ur.CreatedAt.UTC(),
		UpdatedAt:    ur.UpdatedAt.UTC(),
	}
}

func isUniqueViolation(err error) bool {
	// pgx stdlib surfaces pg errors as strings here; 23505 is unique_violation.
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "23505") || strings.Contains(msg, "duplicate")
}

// ---------- user.UserRepo ----------

func (r *UserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	if u.ID == "" {
		return domain.User{}, domain.ErrMissingField("id")
	}
	if u.Email == "" {
		return domain.User{}, domain.ErrMissingField("email")
	}
	if u.PasswordHash == "" {
		return domain.User{}, domain.ErrMissingField("password_hash")
	}

	const q = `
INSERT INTO users (id, email, password_hash, active, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6)
RETURNING ` + userColumns + `;
`
	ur, err := scanUser(r.db.QueryRowContext(ctx, q,
		u.ID, u.Email, u.PasswordHash, u.Active, u.CreatedAt, u.UpdatedAt,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return domain.User{}, domain.ErrEmailAlreadyExists()
		}
		return domain.User{}, domain.ErrDBUnavailable(err)
	}
	return toDomainUser(ur), nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (domain.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.User{}, domain.ErrMissingField("id")
	}

	const q = `
SELECT ` + userColumns + `
FROM users
WHERE id = $1
LIMIT 1;
`
	ur, err := scanUser(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound()
		}
		return domain.User{}, domain.ErrDBUnavailable(err)
	}
	return toDomainUser(ur), nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return domain.User{}, domain.ErrMissingField("email")
	}

	const q = `
SELECT ` + userColumns + `
FROM users
WHERE email = $1
LIMIT 1;
`
	ur, err := scanUser(r.db.QueryRowContext(ctx, q, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound()
		}
		return domain.User{}, domain.ErrDBUnavailable(err)
	}
	return toDomainUser(ur), nil
}

// List returns a page of active users in creation order.
func (r *UserRepo) List(ctx context.Context, skip, limit int) ([]domain.User, error) {
	const q = `
SELECT ` + userColumns + `
FROM users
WHERE active
ORDER BY created_at, id
OFFSET $1 LIMIT $2;
`
	rows, err := r.db.QueryContext(ctx, q, skip, limit)
	if err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	defer rows.Close()

	var out []domain.User
	for rows.Next() {
		var ur userRow
		if err := rows.Scan(&ur.ID, &ur.Email, &ur.PasswordHash, &ur.Active, &ur.CreatedAt, &ur.UpdatedAt); err != nil {
			return nil, domain.ErrDBUnavailable(err)
		}
		out = append(out, toDomainUser(ur))
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	return out, nil
}

// Update replaces the whole record in one statement.
func (r *UserRepo) Update(ctx context.Context, u domain.User) (domain.User, error) {
	if u.ID == "" {
		return domain.User{}, domain.ErrMissingField("id")
	}

	const q = `
UPDATE users
SET email = $2,
    password_hash = $3,
    active = $4,
    updated_at = $5
WHERE id = $1
RETURNING ` + userColumns + `;
`
	ur, err := scanUser(r.db.QueryRowContext(ctx, q,
		u.ID, u.Email, u.PasswordHash, u.Active, u.UpdatedAt,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound()
		}
		if isUniqueViolation(err) {
			return domain.User{}, domain.ErrEmailAlreadyExists()
		}
		return domain.User{}, domain.ErrDBUnavailable(err)
	}
	return toDomainUser(ur), nil
}

func (r *UserRepo) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.ErrMissingField("id")
	}

	const q = `DELETE FROM users WHERE id = $1;`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return domain.ErrDBUnavailable(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return domain.ErrUserNotFound()
	}
	return nil
}

func (r *UserRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users;`).Scan(&n); err != nil {
		return 0, domain.ErrDBUnavailable(err)
	}
	return n, nil
}

func (r *UserRepo) CountActive(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE active;`).Scan(&n); err != nil {
		return 0, domain.ErrDBUnavailable(err)
	}
	return n, nil
}

package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/domain"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (name, email, password_hash, role, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, now(), now()) RETURNING id, created_on, updated_on`
	var createdOn, updatedOn time.Time
	err := r.db.QueryRowContext(ctx, query, u.Name, u.Email, u.PasswordHash, u.Role).
		Scan(&u.ID, &createdOn, &updatedOn)
	if err != nil {
		return translateError("user.create", "user", err)
	}
	u.CreatedOn = createdOn.Format(dateLayout)
	u.UpdatedOn = updatedOn.Format(dateLayout)
	return nil
}

// Default projection: password_hash is deliberately absent.
const userColumns = `id, name, email, role, created_on, updated_on`

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id), "user.get_by_id")
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1)`
	return r.scanUser(r.db.QueryRowContext(ctx, query, email), "user.get_by_email")
}

func (r *userRepository) GetByEmailWithCredential(ctx context.Context, email string) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, name, email, password_hash, role, created_on, updated_on
	          FROM users WHERE LOWER(email) = LOWER($1)`
	var createdOn, updatedOn time.Time
	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &createdOn, &updatedOn)
	if err != nil {
		return nil, translateError("user.get_with_credential", "user", err)
	}
	u.CreatedOn = createdOn.Format(dateLayout)
	u.UpdatedOn = updatedOn.Format(dateLayout)
	return u, nil
}

func (r *userRepository) List(ctx context.Context, page, limit int32) ([]domain.User, int32, error) {
	var total int32
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return nil, 0, translateError("user.list", "user", err)
	}

	query := `SELECT ` + userColumns + ` FROM users ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, translateError("user.list", "user", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		var createdOn, updatedOn time.Time
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &createdOn, &updatedOn); err != nil {
			return nil, 0, translateError("user.list", "user", err)
		}
		u.CreatedOn = createdOn.Format(dateLayout)
		u.UpdatedOn = updatedOn.Format(dateLayout)
		users = append(users, u)
	}
	return users, total, rows.Err()
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET name=$1, email=$2, role=$3, updated_on=now() WHERE id=$4`
	res, err := r.db.ExecContext(ctx, query, u.Name, u.Email, u.Role, u.ID)
	if err != nil {
		return translateError("user.update", "user", err)
	}
	return requireRow(res, "user.update")
}

func (r *userRepository) UpdatePassword(ctx context.Context, id int32, passwordHash string) error {
	query := `UPDATE users SET password_hash=$1, updated_on=now() WHERE id=$2`
	res, err := r.db.ExecContext(ctx, query, passwordHash, id)
	if err != nil {
		return translateError("user.update_password", "user", err)
	}
	return requireRow(res, "user.update_password")
}

func (r *userRepository) scanUser(row *sql.Row, op string) (*domain.User, error) {
	u := &domain.User{}
	var createdOn, updatedOn time.Time
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &createdOn, &updatedOn)
	if err != nil {
		return nil, translateError(op, "user", err)
	}
	u.CreatedOn = createdOn.Format(dateLayout)
	u.UpdatedOn = updatedOn.Format(dateLayout)
	return u, nil
}

package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/domain"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/repository"
)

type passwordResetTokenRepository struct {
	db *sql.DB
}

func NewPasswordResetTokenRepository(db *sql.DB) repository.PasswordResetTokenRepository {
	return &passwordResetTokenRepository{db: db}
}

func (r *passwordResetTokenRepository) Create(ctx context.Context, t *domain.PasswordResetToken) error {
	query := `INSERT INTO passwordresettokens (user_id, token, expires_on, created_on)
	          VALUES ($1, $2, $3, now()) RETURNING id, created_on`
	err := r.db.QueryRowContext(ctx, query, t.UserID, t.Token, t.ExpiresOn).
		Scan(&t.ID, &t.CreatedOn)
	if err != nil {
		return translateError("resettoken.create", "passwordResetToken", err)
	}
	return nil
}

func (r *passwordResetTokenRepository) GetByToken(ctx context.Context, token string) (*domain.PasswordResetToken, error) {
	t := &domain.PasswordResetToken{}
	query := `SELECT id, user_id, token, expires_on, used_on, created_on
	          FROM passwordresettokens WHERE token = $1`
	var usedOn sql.NullTime
	err := r.db.QueryRowContext(ctx, query, token).
		Scan(&t.ID, &t.UserID, &t.Token, &t.ExpiresOn, &usedOn, &t.CreatedOn)
	if err != nil {
		return nil, translateError("resettoken.get", "passwordResetToken", err)
	}
	if usedOn.Valid {
		v := usedOn.Time
		t.UsedOn = &v
	}
	return t, nil
}

func (r *passwordResetTokenRepository) MarkUsed(ctx context.Context, id int32, usedOn time.Time) error {
	query := `UPDATE passwordresettokens SET used_on=$1 WHERE id=$2 AND used_on IS NULL`
	res, err := r.db.ExecContext(ctx, query, usedOn, id)
	if err != nil {
		return translateError("resettoken.mark_used", "passwordResetToken", err)
	}
	// A second consumer of the same token loses here: the row was already
	// marked and zero rows match.
	return requireRow(res, "resettoken.mark_used")
}

func (r *passwordResetTokenRepository) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `DELETE FROM passwordresettokens WHERE expires_on < $1 OR used_on IS NOT NULL`
	res, err := r.db.ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, translateError("resettoken.delete_expired", "passwordResetToken", err)
	}
	return res.RowsAffected()
}

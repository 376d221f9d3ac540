package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/domain"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/logger"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/repository"
)

type activityLogRepository struct {
	db *sql.DB
}

func NewActivityLogRepository(db *sql.DB) repository.ActivityLogRepository {
	return &activityLogRepository{db: db}
}

func (r *activityLogRepository) Create(ctx context.Context, l *domain.ActivityLog) error {
	logger.DatabaseCall("INSERT", "activitylogs", "entity", l.EntityType, "action", l.Action)
	query := `INSERT INTO activitylogs (user_id, entity_type, entity_id, action, detail, created_on)
	          VALUES ($1, $2, $3, $4, $5, now()) RETURNING id, created_on`
	var createdOn time.Time
	err := r.db.QueryRowContext(ctx, query, l.UserID, l.EntityType, l.EntityID, l.Action, l.Detail).
		Scan(&l.ID, &createdOn)
	if err != nil {
		logger.DatabaseResult("INSERT", 0, err, "table", "activitylogs")
		return translateError("activitylog.create", "activityLog", err)
	}
	l.CreatedOn = createdOn.Format(dateLayout)
	return nil
}

func (r *activityLogRepository) List(ctx context.Context, entityType string, page, limit int32) ([]domain.ActivityLog, int32, error) {
	var total int32
	countQuery := `SELECT COUNT(*) FROM activitylogs WHERE ($1 = '' OR entity_type = $1)`
	if err := r.db.QueryRowContext(ctx, countQuery, entityType).Scan(&total); err != nil {
		return nil, 0, translateError("activitylog.list", "activityLog", err)
	}

	query := `SELECT id, user_id, entity_type, entity_id, action, detail, created_on
	          FROM activitylogs WHERE ($1 = '' OR entity_type = $1)
	          ORDER BY id DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, entityType, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, translateError("activitylog.list", "activityLog", err)
	}
	defer rows.Close()

	var logs []domain.ActivityLog
	for rows.Next() {
		var l domain.ActivityLog
		var createdOn time.Time
		if err := rows.Scan(&l.ID, &l.UserID, &l.EntityType, &l.EntityID, &l.Action, &l.Detail, &createdOn); err != nil {
			return nil, 0, translateError("activitylog.list", "activityLog", err)
		}
		l.CreatedOn = createdOn.Format(dateLayout)
		logs = append(logs, l)
	}
	return logs, total, rows.Err()
}

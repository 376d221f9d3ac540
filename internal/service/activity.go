package service

import (
	"context"

	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/domain"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/logger"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/repository"
)

// recordActivity appends an audit row for a mutating operation. The primary
// write has already committed when this runs, so a log failure is reported
// but does not fail the operation.
func recordActivity(ctx context.Context, repo repository.ActivityLogRepository, userID int32, entityType string, entityID int32, action domain.LogAction, detail string) {
	err := repo.Create(ctx, &domain.ActivityLog{
		UserID:     userID,
		EntityType: entityType,
		EntityID:   entityID,
		Action:     action,
		Detail:     detail,
	})
	if err != nil {
		logger.Warn("Failed to record activity log",
			"entity_type", entityType, "entity_id", entityID, "action", action, "error", err)
	}
}

type activityLogService struct {
	logRepo repository.ActivityLogRepository
}

func NewActivityLogService(logRepo repository.ActivityLogRepository) ActivityLogService {
	return &activityLogService{logRepo: logRepo}
}

func (s *activityLogService) List(ctx context.Context, entityType string, page, limit int32) ([]domain.ActivityLog, int32, error) {
	return s.logRepo.List(ctx, entityType, page, limit)
}

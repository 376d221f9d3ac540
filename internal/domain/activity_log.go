package domain

type LogAction string

const (
	LogActionCreate LogAction = "create"
	LogActionUpdate LogAction = "update"
	LogActionDelete LogAction = "delete"
)

func (a LogAction) Valid() bool {
	return a == LogActionCreate || a == LogActionUpdate || a == LogActionDelete
}

// ActivityLog is the append-only audit trail. Rows are never updated or
// deleted once written.
type ActivityLog struct {
	ID         int32     `json:"id"`
	UserID     int32     `json:"user_id"`
	EntityType string    `json:"entity_type"`
	EntityID   int32     `json:"entity_id"`
	Action     LogAction `json:"action"`
	Detail     string    `json:"detail"`
	CreatedOn  string    `json:"created_on"`
}

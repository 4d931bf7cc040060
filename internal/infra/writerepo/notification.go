package writerepo

import (
	"context"
	"time"

	"slotbooker/internal/infra"
	"slotbooker/internal/infra/db"
)

// NotificationRepository enqueues outbound jobs in the same transaction
// as the state change that triggered them. A separate worker drains the
// table; this process never sends anything itself.
type NotificationRepository struct {
	db db.DBTX
}

func NewNotificationRepository(db db.DBTX) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	const query = `
		INSERT INTO notification_jobs (kind, topic, payload, run_at)
		VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(ctx, query, kind, topic, payload, runAt)
	if err != nil {
		return infra.WrapRepoErr("failed to enqueue notification job", err)
	}
	return nil
}

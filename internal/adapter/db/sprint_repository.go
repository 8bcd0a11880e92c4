package db

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"bussola/internal/core/domain"
	"bussola/internal/core/ports"
)

type SprintRepository struct {
	db *sqlx.DB
}

type sprintRow struct {
	ActionID  string    `db:"action_id"`
	UserID    string    `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
}

var _ ports.SprintRepository = (*SprintRepository)(nil)

func NewSprintRepository(db *sqlx.DB) *SprintRepository {
	return &SprintRepository{db: db}
}

// Add is idempotent: adding an existing marker is a no-op.
func (r *SprintRepository) Add(ctx context.Context, sprint domain.Sprint) error {
	var count int
	err := r.db.GetContext(ctx, &count,
		r.db.Rebind("SELECT COUNT(*) FROM sprints WHERE action_id = ? AND user_id = ?"),
		sprint.ActionID, sprint.UserID,
	)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	_, err = r.db.ExecContext(ctx,
		r.db.Rebind("INSERT INTO sprints (action_id, user_id, created_at) VALUES (?, ?, ?)"),
		sprint.ActionID, sprint.UserID, sprint.CreatedAt.UTC(),
	)
	return err
}

func (r *SprintRepository) Remove(ctx context.Context, actionID, userID string) error {
	_, err := r.db.ExecContext(ctx,
		r.db.Rebind("DELETE FROM sprints WHERE action_id = ? AND user_id = ?"),
		actionID, userID,
	)
	return err
}

func (r *SprintRepository) ListByUser(ctx context.Context, userID string) ([]domain.Sprint, error) {
	var rows []sprintRow
	err := r.db.SelectContext(ctx, &rows,
		r.db.Rebind("SELECT action_id, user_id, created_at FROM sprints WHERE user_id = ? ORDER BY created_at"),
		userID,
	)
	if err != nil {
		return nil, err
	}

	sprints := make([]domain.Sprint, 0, len(rows))
	for _, row := range rows {
		sprints = append(sprints, domain.Sprint{ActionID: row.ActionID, UserID: row.UserID, CreatedAt: row.CreatedAt})
	}
	return sprints, nil
}

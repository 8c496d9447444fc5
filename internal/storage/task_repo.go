package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type TaskRepo struct {
	db DBTX
}

func NewTaskRepo(db DBTX) *TaskRepo {
	return &TaskRepo{db: db}
}

type TaskInsert struct {
	ID           string
	UserID       string
	Name         string
	XPReward     int
	DateAssigned string
}

func (r *TaskRepo) Insert(ctx context.Context, in TaskInsert) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO daily_tasks (id, user_id, task_name, xp_reward, date_assigned)
		VALUES (?, ?, ?, ?, ?)
	`, in.ID, in.UserID, in.Name, in.XPReward, in.DateAssigned)
	if err != nil {
		return fmt.Errorf("task insert: %w", err)
	}
	return nil
}

func (r *TaskRepo) Get(ctx context.Context, id string) (*Task, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, task_name, xp_reward, date_assigned, is_completed, created_at, completed_at
		FROM daily_tasks
		WHERE id = ?
	`, id)
	return scanTask(row)
}

// ResolveID expands a task ID or unique ID prefix to the full ID.
// Returns "" when nothing matches and an error when the prefix is ambiguous.
func (r *TaskRepo) ResolveID(ctx context.Context, userID, prefix string) (string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id FROM daily_tasks
		WHERE user_id = ? AND id LIKE ? || '%'
		LIMIT 2
	`, userID, prefix)
	if err != nil {
		return "", fmt.Errorf("task resolve id: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", fmt.Errorf("task resolve scan: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("task resolve rows: %w", err)
	}
	switch len(ids) {
	case 0:
		return "", nil
	case 1:
		return ids[0], nil
	default:
		return "", fmt.Errorf("task id prefix %q is ambiguous", prefix)
	}
}

func (r *TaskRepo) ListByDate(ctx context.Context, userID, date string) ([]Task, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, task_name, xp_reward, date_assigned, is_completed, created_at, completed_at
		FROM daily_tasks
		WHERE user_id = ? AND date_assigned = ?
		ORDER BY created_at ASC, id ASC
	`, userID, date)
	if err != nil {
		return nil, fmt.Errorf("task list: %w", err)
	}
	defer rows.Close()

	var out []Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("task list rows: %w", err)
	}
	return out, nil
}

func (r *TaskRepo) CountByDate(ctx context.Context, userID, date string) (int, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM daily_tasks
		WHERE user_id = ? AND date_assigned = ?
	`, userID, date)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("task count: %w", err)
	}
	return n, nil
}

// Complete flips the completion flag and reports whether this call actually
// transitioned the row. The conditional WHERE is the serialization point for
// the whole reward workflow: a second attempt sees zero rows changed.
func (r *TaskRepo) Complete(ctx context.Context, id string, completedAt time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE daily_tasks
		SET is_completed = 1, completed_at = ?
		WHERE id = ? AND is_completed = 0
	`, completedAt, id)
	if err != nil {
		return false, fmt.Errorf("task complete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("task complete rows affected: %w", err)
	}
	return n > 0, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(row scanner) (*Task, error) {
	var (
		t           Task
		isCompleted int
		completedAt sql.NullTime
	)
	if err := row.Scan(&t.ID, &t.UserID, &t.Name, &t.XPReward, &t.DateAssigned, &isCompleted, &t.CreatedAt, &completedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("task scan: %w", err)
	}
	t.IsCompleted = isCompleted != 0
	if completedAt.Valid {
		v := completedAt.Time
		t.CompletedAt = &v
	}
	return &t, nil
}

package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS profiles (
			user_id TEXT PRIMARY KEY,
			current_xp INTEGER NOT NULL DEFAULT 0,
			current_streak INTEGER NOT NULL DEFAULT 0,
			best_streak INTEGER NOT NULL DEFAULT 0,
			last_task_date TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS daily_tasks (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			task_name TEXT NOT NULL,
			xp_reward INTEGER NOT NULL,
			date_assigned TEXT NOT NULL,
			is_completed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			completed_at DATETIME,

			FOREIGN KEY(user_id) REFERENCES profiles(user_id)
		);`,
		// Audit of every XP grant; feeds the history view and keeps the
		// ledger reconstructable if a profile row is ever reset.
		`CREATE TABLE IF NOT EXISTS xp_awards (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			task_id TEXT NOT NULL,
			user_id TEXT NOT NULL,
			awarded_at DATETIME NOT NULL,
			awarded_date TEXT NOT NULL,
			xp INTEGER NOT NULL,
			FOREIGN KEY(task_id) REFERENCES daily_tasks(id)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_daily_tasks_user_date ON daily_tasks(user_id, date_assigned);`,
		`CREATE INDEX IF NOT EXISTS idx_xp_awards_user_date ON xp_awards(user_id, awarded_date);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

package storage

import "time"

// Profile holds the per-user progression state. Level is never stored; it is
// recomputed from CurrentXP on every read.
type Profile struct {
	UserID        string
	CurrentXP     int
	CurrentStreak int
	BestStreak    int
	LastTaskDate  *string // ISO YYYY-MM-DD, nil before any completion
}

// Task is one assignable, completable unit of work for a calendar day.
// IsCompleted is write-once: it only ever transitions false → true.
type Task struct {
	ID           string
	UserID       string
	Name         string
	XPReward     int
	DateAssigned string // ISO YYYY-MM-DD
	IsCompleted  bool
	CreatedAt    time.Time
	CompletedAt  *time.Time
}

// XPAward is one row of the grant ledger.
type XPAward struct {
	ID        int64
	TaskID    string
	UserID    string
	AwardedAt time.Time
	XP        int
}

// DayTotal summarizes one calendar day of activity for the history view.
type DayTotal struct {
	Date      string
	Completed int
	XP        int
}

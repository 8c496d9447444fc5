package engine

import "fmt"

// NotFoundError is returned when a task ID does not resolve to a row.
// No state is changed.
type NotFoundError struct {
	ID string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("task %s not found", e.ID)
}

// RewardRangeError is returned when a user-authored reward is outside the
// allowed range.
type RewardRangeError struct {
	XP int
}

func (e RewardRangeError) Error() string {
	return fmt.Sprintf("xp reward %d out of range (%d-%d)", e.XP, MinTaskXP, MaxTaskXP)
}

// TasksExistError is returned when template generation targets a day that
// already has tasks assigned.
type TasksExistError struct {
	Date  Date
	Count int
}

func (e TasksExistError) Error() string {
	return fmt.Sprintf("%d task(s) already assigned for %s", e.Count, e.Date)
}

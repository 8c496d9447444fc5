package engine

import (
	"context"
	"database/sql"
	"time"

	"github.com/Elias-Missa/ascendency-rpg/internal/storage"
)

// CompleteResult is what the UI needs after a completion attempt:
// the new ledger total, the level transition, and the streak event (if any).
type CompleteResult struct {
	TaskID           string
	TaskName         string
	XPAwarded        int
	NewXP            int
	LevelBefore      int
	NewLevel         int
	LeveledUp        bool
	AlreadyCompleted bool

	CurrentStreak int
	BestStreak    int
	StreakEvent   *StreakEvent
}

// CompleteTask transitions one task from incomplete to complete and applies
// its reward. The flag write, the XP write, and the streak write commit
// together or not at all; a task can never end up complete without its
// reward being durable.
//
// The conditional flag update is the only serialization point: if it reports
// no change the task was already complete and the call is a benign no-op
// (XP is granted at most once per task, however many attempts race).
//
// Streak fields advance only when the task's assigned date equals today;
// tasks for other days may still be completed for XP.
func (s *Service) CompleteTask(ctx context.Context, taskID string, today Date) (*CompleteResult, error) {
	var res *CompleteResult
	err := storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		tasks := storage.NewTaskRepo(tx)
		profiles := storage.NewProfileRepo(tx)
		awards := storage.NewAwardRepo(tx)

		task, err := tasks.Get(ctx, taskID)
		if err != nil {
			return err
		}
		if task == nil || task.UserID != s.userID {
			return NotFoundError{ID: taskID}
		}

		now := time.Now().UTC()
		changed, err := tasks.Complete(ctx, task.ID, now)
		if err != nil {
			return err
		}

		p, err := profiles.GetOrCreate(ctx, s.userID)
		if err != nil {
			return err
		}

		if !changed {
			res = &CompleteResult{
				TaskID:           task.ID,
				TaskName:         task.Name,
				AlreadyCompleted: true,
				NewXP:            p.CurrentXP,
				LevelBefore:      LevelForXP(p.CurrentXP),
				NewLevel:         LevelForXP(p.CurrentXP),
				CurrentStreak:    p.CurrentStreak,
				BestStreak:       p.BestStreak,
			}
			return nil
		}

		levelBefore := LevelForXP(p.CurrentXP)
		p.CurrentXP += task.XPReward
		newLevel := LevelForXP(p.CurrentXP)

		var event *StreakEvent
		if task.DateAssigned == today.String() {
			var st StreakState
			st, event = streakState(p).Advance(today)
			applyStreakState(p, st)
		}

		if err := profiles.Update(ctx, p); err != nil {
			return err
		}
		if _, err := awards.Insert(ctx, task.ID, s.userID, now, today.String(), task.XPReward); err != nil {
			return err
		}

		res = &CompleteResult{
			TaskID:        task.ID,
			TaskName:      task.Name,
			XPAwarded:     task.XPReward,
			NewXP:         p.CurrentXP,
			LevelBefore:   levelBefore,
			NewLevel:      newLevel,
			LeveledUp:     newLevel > levelBefore,
			CurrentStreak: p.CurrentStreak,
			BestStreak:    p.BestStreak,
			StreakEvent:   event,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

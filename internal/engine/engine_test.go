package engine

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Elias-Missa/ascendency-rpg/internal/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := storage.Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewService(db, "tester")
}

func setProfileXP(t *testing.T, svc *Service, xp int) {
	t.Helper()
	ctx := context.Background()
	p, err := svc.ProfileRepo().GetOrCreate(ctx, svc.UserID())
	require.NoError(t, err)
	p.CurrentXP = xp
	require.NoError(t, svc.ProfileRepo().Update(ctx, p))
}

func TestCompleteAwardsXPWithoutLevelUp(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	today := Today()

	task, err := svc.AddTask(ctx, "Apply moisturizer", 15, today)
	require.NoError(t, err)

	res, err := svc.CompleteTask(ctx, task.ID, today)
	require.NoError(t, err)

	assert.Equal(t, 15, res.XPAwarded)
	assert.Equal(t, 15, res.NewXP)
	assert.Equal(t, 1, res.NewLevel)
	assert.False(t, res.LeveledUp)

	p, err := svc.ProfileRepo().Get(ctx, svc.UserID())
	require.NoError(t, err)
	assert.Equal(t, 15, p.CurrentXP)
}

func TestCompleteCrossesLevelBoundary(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	today := Today()

	setProfileXP(t, svc, 95)
	task, err := svc.AddTask(ctx, "Do facial exercises", 10, today)
	require.NoError(t, err)

	res, err := svc.CompleteTask(ctx, task.ID, today)
	require.NoError(t, err)

	assert.Equal(t, 105, res.NewXP)
	assert.Equal(t, 1, res.LevelBefore)
	assert.Equal(t, 2, res.NewLevel)
	assert.True(t, res.LeveledUp)
}

func TestCompleteUnknownTask(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CompleteTask(ctx, "nope", Today())
	require.Error(t, err)
	assert.ErrorAs(t, err, &NotFoundError{})

	p, err := svc.ProfileRepo().GetOrCreate(ctx, svc.UserID())
	require.NoError(t, err)
	assert.Equal(t, 0, p.CurrentXP)
}

func TestSecondCompletionIsBenignNoOp(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	today := Today()

	task, err := svc.AddTask(ctx, "Apply sunscreen", 10, today)
	require.NoError(t, err)

	first, err := svc.CompleteTask(ctx, task.ID, today)
	require.NoError(t, err)
	require.Equal(t, 10, first.XPAwarded)

	second, err := svc.CompleteTask(ctx, task.ID, today)
	require.NoError(t, err)
	assert.True(t, second.AlreadyCompleted)
	assert.Equal(t, 0, second.XPAwarded)
	assert.Equal(t, 10, second.NewXP)

	n, err := svc.AwardRepo().CountByTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "exactly one ledger row per task")
}

func TestConcurrentCompletionGrantsOnce(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	today := Today()

	task, err := svc.AddTask(ctx, "Drink 8 glasses of water", 10, today)
	require.NoError(t, err)

	const attempts = 8
	results := make([]*CompleteResult, attempts)
	errs := make([]error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = svc.CompleteTask(ctx, task.ID, today)
		}(i)
	}
	wg.Wait()

	granted := 0
	for i := 0; i < attempts; i++ {
		require.NoError(t, errs[i])
		if results[i].XPAwarded > 0 {
			granted++
		} else {
			assert.True(t, results[i].AlreadyCompleted)
		}
	}
	assert.Equal(t, 1, granted, "XP granted exactly once across %d attempts", attempts)

	p, err := svc.ProfileRepo().Get(ctx, svc.UserID())
	require.NoError(t, err)
	assert.Equal(t, 10, p.CurrentXP)
	assert.Equal(t, 1, p.CurrentStreak)
}

func TestStreakAcrossCompletions(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	today := Today()

	// Simulate an existing four-day run that ended yesterday.
	p, err := svc.ProfileRepo().GetOrCreate(ctx, svc.UserID())
	require.NoError(t, err)
	p.CurrentStreak = 4
	p.BestStreak = 4
	y := today.AddDays(-1).String()
	p.LastTaskDate = &y
	require.NoError(t, svc.ProfileRepo().Update(ctx, p))

	t1, err := svc.AddTask(ctx, "Apply moisturizer", 10, today)
	require.NoError(t, err)
	t2, err := svc.AddTask(ctx, "Floss and brush twice", 10, today)
	require.NoError(t, err)

	res, err := svc.CompleteTask(ctx, t1.ID, today)
	require.NoError(t, err)
	assert.Equal(t, 5, res.CurrentStreak)
	assert.Equal(t, 5, res.BestStreak)
	require.NotNil(t, res.StreakEvent)
	assert.Equal(t, StreakBest, res.StreakEvent.Type)
	assert.Equal(t, 5, res.StreakEvent.Count)

	// Second completion the same day leaves the streak alone.
	res2, err := svc.CompleteTask(ctx, t2.ID, today)
	require.NoError(t, err)
	assert.Equal(t, 5, res2.CurrentStreak)
	assert.Nil(t, res2.StreakEvent)
}

func TestFirstEverCompletionStartsStreakQuietly(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	today := Today()

	task, err := svc.AddTask(ctx, "Apply sunscreen", 10, today)
	require.NoError(t, err)

	res, err := svc.CompleteTask(ctx, task.ID, today)
	require.NoError(t, err)
	assert.Equal(t, 1, res.CurrentStreak)
	assert.Equal(t, 1, res.BestStreak)
	assert.Nil(t, res.StreakEvent, "no milestone toast on day one")
}

func TestBackdatedCompletionSkipsStreak(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	today := Today()

	task, err := svc.AddTask(ctx, "30 minutes of cardio", 20, today.AddDays(-2))
	require.NoError(t, err)

	res, err := svc.CompleteTask(ctx, task.ID, today)
	require.NoError(t, err)
	assert.Equal(t, 20, res.XPAwarded, "XP still granted for past-day tasks")
	assert.Equal(t, 0, res.CurrentStreak)
	assert.Nil(t, res.StreakEvent)

	p, err := svc.ProfileRepo().Get(ctx, svc.UserID())
	require.NoError(t, err)
	assert.Nil(t, p.LastTaskDate)
}

func TestAddTaskValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	today := Today()

	_, err := svc.AddTask(ctx, "   ", 10, today)
	require.Error(t, err)

	_, err = svc.AddTask(ctx, "Too cheap", MinTaskXP-1, today)
	require.Error(t, err)
	assert.ErrorAs(t, err, &RewardRangeError{})

	_, err = svc.AddTask(ctx, "Too rich", MaxTaskXP+1, today)
	require.Error(t, err)

	task, err := svc.AddTask(ctx, "  Practice mewing  ", MaxTaskXP, today)
	require.NoError(t, err)
	assert.Equal(t, "Practice mewing", task.Name)
	assert.False(t, task.IsCompleted)
}

func TestGenerateTasks(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	today := Today()

	tasks, err := svc.GenerateTasks(ctx, today)
	require.NoError(t, err)
	require.Len(t, tasks, DailyTaskCount)

	seen := map[string]bool{}
	for _, task := range tasks {
		assert.False(t, seen[task.Name], "template %q sampled twice", task.Name)
		seen[task.Name] = true
		assert.GreaterOrEqual(t, task.XPReward, MinTaskXP)
		assert.LessOrEqual(t, task.XPReward, MaxTaskXP)
		assert.Equal(t, today.String(), task.DateAssigned)
	}

	_, err = svc.GenerateTasks(ctx, today)
	require.Error(t, err)
	assert.ErrorAs(t, err, &TasksExistError{})

	// A different day is still fair game.
	_, err = svc.GenerateTasks(ctx, today.AddDays(1))
	require.NoError(t, err)
}

func TestResolveTaskIDPrefix(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	today := Today()

	task, err := svc.AddTask(ctx, "Apply moisturizer", 10, today)
	require.NoError(t, err)

	id, err := svc.TaskRepo().ResolveID(ctx, svc.UserID(), task.ID[:8])
	require.NoError(t, err)
	assert.Equal(t, task.ID, id)

	id, err = svc.TaskRepo().ResolveID(ctx, svc.UserID(), "zzzzzzzz")
	require.NoError(t, err)
	assert.Empty(t, id)
}

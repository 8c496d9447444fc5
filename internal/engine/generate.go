package engine

import (
	"context"
	"math/rand"

	"github.com/google/uuid"

	"github.com/Elias-Missa/ascendency-rpg/internal/storage"
)

const (
	// MinTaskXP and MaxTaskXP bound user-authored rewards.
	MinTaskXP = 5
	MaxTaskXP = 50

	// DailyTaskCount is how many template tasks one generation inserts.
	DailyTaskCount = 5
)

// TaskTemplate is one entry of the fixed generation menu.
type TaskTemplate struct {
	Name     string
	XPReward int
}

// taskTemplates is the template menu. No personalization, no adaptive
// difficulty: generation samples this list without replacement.
var taskTemplates = []TaskTemplate{
	{Name: "Apply moisturizer", XPReward: 10},
	{Name: "Practice mewing for 10 minutes", XPReward: 15},
	{Name: "Drink 8 glasses of water", XPReward: 10},
	{Name: "Do facial exercises", XPReward: 15},
	{Name: "Apply sunscreen", XPReward: 10},
	{Name: "Finish your shower cold", XPReward: 15},
	{Name: "10 minutes of posture work", XPReward: 15},
	{Name: "Floss and brush twice", XPReward: 10},
	{Name: "30 minutes of cardio", XPReward: 20},
}

// Templates returns a copy of the generation menu.
func Templates() []TaskTemplate {
	out := make([]TaskTemplate, len(taskTemplates))
	copy(out, taskTemplates)
	return out
}

// AddTask creates one user-authored task for the given date.
func (s *Service) AddTask(ctx context.Context, name string, xpReward int, date Date) (*storage.Task, error) {
	n, err := normalizeName(name)
	if err != nil {
		return nil, err
	}
	if xpReward < MinTaskXP || xpReward > MaxTaskXP {
		return nil, RewardRangeError{XP: xpReward}
	}

	if _, err := s.profiles.GetOrCreate(ctx, s.userID); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	if err := s.tasks.Insert(ctx, storage.TaskInsert{
		ID:           id,
		UserID:       s.userID,
		Name:         n,
		XPReward:     xpReward,
		DateAssigned: date.String(),
	}); err != nil {
		return nil, err
	}
	return s.tasks.Get(ctx, id)
}

// GenerateTasks populates an empty day with DailyTaskCount tasks sampled
// from the template menu without replacement. A day that already has tasks
// is refused; the reference UI only offers generation for an empty day.
func (s *Service) GenerateTasks(ctx context.Context, date Date) ([]storage.Task, error) {
	if _, err := s.profiles.GetOrCreate(ctx, s.userID); err != nil {
		return nil, err
	}

	existing, err := s.tasks.CountByDate(ctx, s.userID, date.String())
	if err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, TasksExistError{Date: date, Count: existing}
	}

	picks := rand.Perm(len(taskTemplates))[:DailyTaskCount]

	var out []storage.Task
	for _, i := range picks {
		tpl := taskTemplates[i]
		id := uuid.NewString()
		if err := s.tasks.Insert(ctx, storage.TaskInsert{
			ID:           id,
			UserID:       s.userID,
			Name:         tpl.Name,
			XPReward:     tpl.XPReward,
			DateAssigned: date.String(),
		}); err != nil {
			return nil, err
		}
		t, err := s.tasks.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	return out, nil
}

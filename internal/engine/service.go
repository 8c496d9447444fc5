package engine

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/Elias-Missa/ascendency-rpg/internal/storage"
)

// Service is the caller-facing API over the profile and task stores. All
// reads and writes go through the repos; nothing progression-related is
// cached in memory between calls.
type Service struct {
	db       *sql.DB
	userID   string
	profiles *storage.ProfileRepo
	tasks    *storage.TaskRepo
	awards   *storage.AwardRepo
}

func NewService(db *sql.DB, userID string) *Service {
	if userID == "" {
		userID = storage.DefaultProfileID
	}
	return &Service{
		db:       db,
		userID:   userID,
		profiles: storage.NewProfileRepo(db),
		tasks:    storage.NewTaskRepo(db),
		awards:   storage.NewAwardRepo(db),
	}
}

func (s *Service) UserID() string { return s.userID }

func (s *Service) ProfileRepo() *storage.ProfileRepo { return s.profiles }
func (s *Service) TaskRepo() *storage.TaskRepo       { return s.tasks }
func (s *Service) AwardRepo() *storage.AwardRepo     { return s.awards }

func normalizeName(name string) (string, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return "", errors.New("task name is required")
	}
	return n, nil
}

// streakState converts the persisted profile fields into a StreakState.
// An unparseable stored date is treated as absent rather than failing the
// completion; the next advance simply starts a fresh streak.
func streakState(p *storage.Profile) StreakState {
	st := StreakState{Current: p.CurrentStreak, Best: p.BestStreak}
	if p.LastTaskDate != nil {
		if d, err := ParseDate(*p.LastTaskDate); err == nil {
			st.LastDate = d
		}
	}
	return st
}

func applyStreakState(p *storage.Profile, st StreakState) {
	p.CurrentStreak = st.Current
	p.BestStreak = st.Best
	if !st.LastDate.IsZero() {
		v := st.LastDate.String()
		p.LastTaskDate = &v
	}
}

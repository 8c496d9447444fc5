package engine

// StreakEventType tells the caller which toast to show.
type StreakEventType string

const (
	// StreakContinue means the streak grew but is below the personal best.
	StreakContinue StreakEventType = "continue"
	// StreakBest means the streak reached (or set) a new personal best.
	StreakBest StreakEventType = "best"
)

// StreakEvent is signalled when a completion advanced the streak past day one.
type StreakEvent struct {
	Type  StreakEventType
	Count int
}

// StreakState mirrors the streak fields persisted on a profile.
// A zero LastDate means no task has ever advanced the streak.
type StreakState struct {
	Current  int
	Best     int
	LastDate Date
}

// Advance applies one "today" completion to the streak.
//
// Rules:
//   - no prior date, or last date was yesterday: streak grows by one
//   - last date is already today: unchanged (at most one increment per day)
//   - any longer gap: today is day one of a new streak
//
// Best is always rewritten as max(Best, Current), never merely checked.
// The event is nil on the trivial first day and on same-day repeats.
func (s StreakState) Advance(today Date) (StreakState, *StreakEvent) {
	next := s

	advanced := false
	switch {
	case s.LastDate == today:
		// Second completion today; nothing to do.
	case s.LastDate.IsZero() || today.DaysSince(s.LastDate) == 1:
		next.Current = s.Current + 1
		advanced = true
	default:
		next.Current = 1
		advanced = true
	}

	if next.Current > next.Best {
		next.Best = next.Current
	}
	next.LastDate = today

	if !advanced || next.Current <= 1 {
		return next, nil
	}
	ev := &StreakEvent{Type: StreakContinue, Count: next.Current}
	if next.Current >= s.Best {
		ev.Type = StreakBest
	}
	return next, ev
}

package gamification

import (
	"time"

	"FitGenius-Backend/internal/utils"
)

// MealXP is awarded for every logged meal.
const MealXP = 10

// baseXPToNextLevel is the level-1 threshold; each level-up raises the
// threshold to level*100.
const baseXPToNextLevel = 100

const (
	AchFirstMeal = "first_meal"
	AchStreak3   = "streak_3"
	AchStreak7   = "streak_7"
	AchStreak30  = "streak_30"
	AchMeals10   = "meals_10"
	AchMeals50   = "meals_50"
	AchMeals100  = "meals_100"
	AchLevel5    = "level_5"
)

type (
	// State is the pure, in-memory gamification snapshot. All updates go
	// through value-semantics functions that return a new State plus the
	// keys of achievements unlocked by that update; nothing here touches
	// storage or the wall clock.
	State struct {
		CurrentStreak    int
		LongestStreak    int
		TotalMealsLogged int
		TotalDaysActive  int
		Level            int
		XP               int
		XPToNextLevel    int
		LastActiveDate   string // "2006-01-02", empty before first activity
		Achievements     []Achievement
	}

	Achievement struct {
		Key         string
		Title       string
		Description string
		Unlocked    bool
		Progress    int
		Target      int
	}

	catalogEntry struct {
		key         string
		title       string
		description string
		target      int
	}
)

// The fixed achievement catalog, instantiated once per state. Never added to
// or removed at runtime.
var catalog = []catalogEntry{
	{AchFirstMeal, "First Step", "Log your first meal", 1},
	{AchStreak3, "Warming Up", "Log meals 3 days in a row", 3},
	{AchStreak7, "One Full Week", "Log meals 7 days in a row", 7},
	{AchStreak30, "Unstoppable", "Log meals 30 days in a row", 30},
	{AchMeals10, "Getting Serious", "Log 10 meals", 10},
	{AchMeals50, "Habit Formed", "Log 50 meals", 50},
	{AchMeals100, "Century Club", "Log 100 meals", 100},
	{AchLevel5, "Rising Star", "Reach level 5", 5},
}

// NewState returns a fresh snapshot with the full achievement catalog locked.
func NewState() State {
	achievements := make([]Achievement, 0, len(catalog))
	for _, entry := range catalog {
		achievements = append(achievements, Achievement{
			Key:         entry.key,
			Title:       entry.title,
			Description: entry.description,
			Target:      entry.target,
		})
	}

	return State{
		Level:         1,
		XPToNextLevel: baseXPToNextLevel,
		Achievements:  achievements,
	}
}

// clone copies the state including its achievement slice so updates never
// alias the caller's snapshot.
func (s State) clone() State {
	out := s
	out.Achievements = make([]Achievement, len(s.Achievements))
	copy(out.Achievements, s.Achievements)
	return out
}

// unlock flips an achievement to unlocked and pins its progress to the
// target. Unlocking is idempotent: an already-unlocked key is a no-op and
// produces no notification.
func (s *State) unlock(key string, newly []string) []string {
	for i := range s.Achievements {
		if s.Achievements[i].Key != key || s.Achievements[i].Unlocked {
			continue
		}
		s.Achievements[i].Unlocked = true
		s.Achievements[i].Progress = s.Achievements[i].Target
		newly = append(newly, key)
	}
	return newly
}

// AddXP awards XP and cascades level-ups while the remaining XP covers the
// current threshold. The threshold is recomputed after each level increment,
// so a single large award can jump several levels in one call.
func AddXP(s State, amount int) (State, []string) {
	out := s.clone()
	var newly []string

	out.XP += amount
	for out.XP >= out.XPToNextLevel {
		out.XP -= out.XPToNextLevel
		out.Level++
		out.XPToNextLevel = out.Level * baseXPToNextLevel

		if out.Level >= 5 {
			newly = out.unlock(AchLevel5, newly)
		}
	}

	return out, newly
}

// applyDayBoundary runs the once-per-calendar-day streak update. It self-gates
// on LastActiveDate, so calling it repeatedly within the same day is a no-op.
func applyDayBoundary(s State, now time.Time) (State, []string) {
	today := utils.LocalDate(now)
	if s.LastActiveDate == today {
		return s, nil
	}

	out := s.clone()
	var newly []string

	yesterday := utils.LocalDate(now.AddDate(0, 0, -1))
	if s.LastActiveDate == yesterday {
		out.CurrentStreak++
	} else {
		out.CurrentStreak = 1
	}

	if out.CurrentStreak > out.LongestStreak {
		out.LongestStreak = out.CurrentStreak
	}
	out.TotalDaysActive++

	if out.CurrentStreak >= 3 {
		newly = out.unlock(AchStreak3, newly)
	}
	if out.CurrentStreak >= 7 {
		newly = out.unlock(AchStreak7, newly)
	}
	if out.CurrentStreak >= 30 {
		newly = out.unlock(AchStreak30, newly)
	}

	out.LastActiveDate = today
	return out, newly
}

// ApplyMealLogged processes a meal-logged event at the given local time:
// XP award, day-boundary streak check, meal counters, threshold unlocks and
// a full progress resync against the updated counters.
func ApplyMealLogged(s State, loggedAt time.Time) (State, []string) {
	out, newly := AddXP(s, MealXP)

	var streakNewly []string
	out, streakNewly = applyDayBoundary(out, loggedAt)
	newly = append(newly, streakNewly...)

	out.TotalMealsLogged++

	if out.TotalMealsLogged >= 1 {
		newly = out.unlock(AchFirstMeal, newly)
	}
	if out.TotalMealsLogged >= 10 {
		newly = out.unlock(AchMeals10, newly)
	}
	if out.TotalMealsLogged >= 50 {
		newly = out.unlock(AchMeals50, newly)
	}
	if out.TotalMealsLogged >= 100 {
		newly = out.unlock(AchMeals100, newly)
	}

	out.resyncProgress()
	return out, newly
}

// resyncProgress pins every meals_* and streak_* progress counter to the
// current totals rather than incrementing, so progress stays correct even if
// thresholds were crossed out of order. Unlocked achievements keep their
// target as progress so the unlock stays consistent when a streak later
// resets.
func (s *State) resyncProgress() {
	for i := range s.Achievements {
		ach := &s.Achievements[i]
		if ach.Unlocked {
			continue
		}
		switch {
		case hasPrefix(ach.Key, "meals_") || ach.Key == AchFirstMeal:
			ach.Progress = minInt(s.TotalMealsLogged, ach.Target)
		case hasPrefix(ach.Key, "streak_"):
			ach.Progress = minInt(s.CurrentStreak, ach.Target)
		case ach.Key == AchLevel5:
			ach.Progress = minInt(s.Level, ach.Target)
		}
	}
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

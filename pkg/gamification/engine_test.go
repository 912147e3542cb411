package gamification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(dayOfMonth int) time.Time {
	return time.Date(2025, time.March, dayOfMonth, 12, 0, 0, 0, time.UTC)
}

func achievementByKey(t *testing.T, s State, key string) Achievement {
	t.Helper()
	for _, a := range s.Achievements {
		if a.Key == key {
			return a
		}
	}
	t.Fatalf("achievement %q not in state", key)
	return Achievement{}
}

func TestNewState(t *testing.T) {
	s := NewState()

	assert.Equal(t, 1, s.Level)
	assert.Equal(t, 0, s.XP)
	assert.Equal(t, 100, s.XPToNextLevel)
	assert.Equal(t, 0, s.CurrentStreak)
	assert.Empty(t, s.LastActiveDate)
	require.Len(t, s.Achievements, 8)
	for _, a := range s.Achievements {
		assert.False(t, a.Unlocked, a.Key)
		assert.Equal(t, 0, a.Progress, a.Key)
		assert.Positive(t, a.Target, a.Key)
	}
}

func TestAddXPCascadesLevels(t *testing.T) {
	s, newly := AddXP(NewState(), 100)
	assert.Equal(t, 2, s.Level)
	assert.Equal(t, 0, s.XP)
	assert.Equal(t, 200, s.XPToNextLevel)
	assert.Empty(t, newly)

	s, newly = AddXP(s, 250)
	assert.Equal(t, 3, s.Level)
	assert.Equal(t, 50, s.XP)
	assert.Equal(t, 300, s.XPToNextLevel)
	assert.Empty(t, newly)
}

func TestAddXPMultiLevelJump(t *testing.T) {
	// 100+200+300+400 thresholds are consumed exactly by one award.
	s, newly := AddXP(NewState(), 1000)

	assert.Equal(t, 5, s.Level)
	assert.Equal(t, 0, s.XP)
	assert.Equal(t, 500, s.XPToNextLevel)
	assert.Equal(t, []string{AchLevel5}, newly)
	assert.True(t, achievementByKey(t, s, AchLevel5).Unlocked)
}

func TestAddXPDoesNotMutateInput(t *testing.T) {
	in := NewState()
	_, _ = AddXP(in, 1000)

	assert.Equal(t, 1, in.Level)
	assert.Equal(t, 0, in.XP)
	assert.False(t, achievementByKey(t, in, AchLevel5).Unlocked)
}

func TestApplyMealLoggedFirstMeal(t *testing.T) {
	s, newly := ApplyMealLogged(NewState(), day(1))

	assert.Equal(t, 10, s.XP)
	assert.Equal(t, 1, s.Level)
	assert.Equal(t, 1, s.TotalMealsLogged)
	assert.Equal(t, 1, s.CurrentStreak)
	assert.Equal(t, 1, s.LongestStreak)
	assert.Equal(t, 1, s.TotalDaysActive)
	assert.Equal(t, "2025-03-01", s.LastActiveDate)
	assert.Equal(t, []string{AchFirstMeal}, newly)

	first := achievementByKey(t, s, AchFirstMeal)
	assert.True(t, first.Unlocked)
	assert.Equal(t, first.Target, first.Progress)
}

func TestApplyMealLoggedSameDayKeepsStreak(t *testing.T) {
	s, _ := ApplyMealLogged(NewState(), day(1))
	s, newly := ApplyMealLogged(s, day(1).Add(4*time.Hour))

	assert.Equal(t, 1, s.CurrentStreak)
	assert.Equal(t, 1, s.TotalDaysActive)
	assert.Equal(t, 2, s.TotalMealsLogged)
	assert.Equal(t, 20, s.XP)
	assert.Empty(t, newly)
}

func TestApplyMealLoggedConsecutiveDays(t *testing.T) {
	s := NewState()
	var newly []string
	for d := 1; d <= 3; d++ {
		s, newly = ApplyMealLogged(s, day(d))
	}

	assert.Equal(t, 3, s.CurrentStreak)
	assert.Equal(t, 3, s.LongestStreak)
	assert.Equal(t, 3, s.TotalDaysActive)
	assert.Equal(t, []string{AchStreak3}, newly)
}

func TestApplyMealLoggedGapResetsStreak(t *testing.T) {
	s := NewState()
	for d := 1; d <= 3; d++ {
		s, _ = ApplyMealLogged(s, day(d))
	}

	// Day 4 skipped.
	s, _ = ApplyMealLogged(s, day(5))

	assert.Equal(t, 1, s.CurrentStreak)
	assert.Equal(t, 3, s.LongestStreak)
	assert.Equal(t, 4, s.TotalDaysActive)

	// The unlock survives the reset, progress pinned at target.
	streak3 := achievementByKey(t, s, AchStreak3)
	assert.True(t, streak3.Unlocked)
	assert.Equal(t, streak3.Target, streak3.Progress)

	// Locked streak achievements track the live counter.
	streak7 := achievementByKey(t, s, AchStreak7)
	assert.False(t, streak7.Unlocked)
	assert.Equal(t, 1, streak7.Progress)
}

func TestApplyMealLoggedWeekStreak(t *testing.T) {
	s := NewState()
	var newly []string
	for d := 1; d <= 7; d++ {
		s, newly = ApplyMealLogged(s, day(d))
	}

	assert.Equal(t, 7, s.CurrentStreak)
	assert.Equal(t, []string{AchStreak7}, newly)
	assert.True(t, achievementByKey(t, s, AchStreak7).Unlocked)
}

func TestApplyMealLoggedMealCountUnlocks(t *testing.T) {
	s := NewState()
	var last []string
	for i := 0; i < 10; i++ {
		s, last = ApplyMealLogged(s, day(1).Add(time.Duration(i)*time.Minute))
	}

	assert.Equal(t, 10, s.TotalMealsLogged)
	assert.Equal(t, []string{AchMeals10}, last)
	assert.True(t, achievementByKey(t, s, AchMeals10).Unlocked)

	meals50 := achievementByKey(t, s, AchMeals50)
	assert.False(t, meals50.Unlocked)
	assert.Equal(t, 10, meals50.Progress)
}

func TestApplyMealLoggedMealXPFeedsLevels(t *testing.T) {
	s := NewState()
	for i := 0; i < 10; i++ {
		s, _ = ApplyMealLogged(s, day(1).Add(time.Duration(i)*time.Minute))
	}

	// 10 meals x 10 XP crosses the level-1 threshold exactly.
	assert.Equal(t, 2, s.Level)
	assert.Equal(t, 0, s.XP)
	assert.Equal(t, 200, s.XPToNextLevel)
}

func TestUnlockIsIdempotent(t *testing.T) {
	s := NewState()
	newly := s.unlock(AchFirstMeal, nil)
	assert.Equal(t, []string{AchFirstMeal}, newly)

	newly = s.unlock(AchFirstMeal, nil)
	assert.Empty(t, newly)
}

func TestInvariantsHoldOverLongRun(t *testing.T) {
	s := NewState()
	for d := 1; d <= 31; d++ {
		for meal := 0; meal < 3; meal++ {
			s, _ = ApplyMealLogged(s, day(d).Add(time.Duration(meal)*time.Hour))
		}
	}

	assert.GreaterOrEqual(t, s.LongestStreak, s.CurrentStreak)
	assert.Less(t, s.XP, s.XPToNextLevel)
	assert.Equal(t, s.Level*100, s.XPToNextLevel)
	for _, a := range s.Achievements {
		assert.LessOrEqual(t, a.Progress, a.Target, a.Key)
		if a.Unlocked {
			assert.Equal(t, a.Target, a.Progress, a.Key)
		}
	}

	assert.True(t, achievementByKey(t, s, AchStreak30).Unlocked)
	assert.True(t, achievementByKey(t, s, AchMeals50).Unlocked)
	assert.False(t, achievementByKey(t, s, AchMeals100).Unlocked)
	assert.Equal(t, 93, achievementByKey(t, s, AchMeals100).Progress)
}

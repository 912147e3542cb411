package gamification

import (
	"context"
	"errors"
	"time"

	"FitGenius-Backend/domain"
	"FitGenius-Backend/entities"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	GamificationService interface {
		// RecordMealLogged applies a meal-logged event and persists the
		// updated snapshot. It returns the new stats plus the achievements
		// unlocked by this call, in unlock order.
		RecordMealLogged(ctx context.Context, userID string, loggedAt time.Time) (domain.GamificationResponse, []domain.AchievementResponse, error)
		GetStats(ctx context.Context, userID string) (domain.GamificationResponse, error)
	}

	gamificationService struct {
		gamificationRepository GamificationRepository
	}
)

func NewGamificationService(gamificationRepository GamificationRepository) GamificationService {
	return &gamificationService{gamificationRepository: gamificationRepository}
}

func (s *gamificationService) RecordMealLogged(ctx context.Context, userID string, loggedAt time.Time) (domain.GamificationResponse, []domain.AchievementResponse, error) {
	ent, err := s.loadOrInitState(ctx, userID)
	if err != nil {
		return domain.GamificationResponse{}, nil, err
	}

	state := fromEntity(ent)
	updated, newlyUnlocked := ApplyMealLogged(state, loggedAt)
	applyToEntity(ent, updated)

	if err := s.gamificationRepository.SaveState(ctx, ent); err != nil {
		return domain.GamificationResponse{}, nil, err
	}

	resp := toResponse(updated)
	return resp, pickAchievements(resp.Achievements, newlyUnlocked), nil
}

func (s *gamificationService) GetStats(ctx context.Context, userID string) (domain.GamificationResponse, error) {
	ent, err := s.loadOrInitState(ctx, userID)
	if err != nil {
		return domain.GamificationResponse{}, err
	}
	return toResponse(fromEntity(ent)), nil
}

// loadOrInitState fetches the persisted snapshot, creating a fresh one with
// the full catalog when none exists. An unreadable snapshot also falls back
// to the initial state rather than failing the request.
func (s *gamificationService) loadOrInitState(ctx context.Context, userID string) (*entities.GamificationState, error) {
	ent, err := s.gamificationRepository.GetStateByUserID(ctx, userID)
	if err == nil {
		return ent, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Errorf("failed to load gamification state for %s, reinitializing: %v", userID, err)
	}

	userUUID, parseErr := uuid.Parse(userID)
	if parseErr != nil {
		return nil, domain.ErrParseUUID
	}

	fresh := NewState()
	ent = &entities.GamificationState{
		ID:     uuid.New(),
		UserID: userUUID,
	}
	applyToEntity(ent, fresh)

	if err := s.gamificationRepository.CreateState(ctx, ent); err != nil {
		return nil, err
	}
	return ent, nil
}

func fromEntity(ent *entities.GamificationState) State {
	state := State{
		CurrentStreak:    ent.CurrentStreak,
		LongestStreak:    ent.LongestStreak,
		TotalMealsLogged: ent.TotalMealsLogged,
		TotalDaysActive:  ent.TotalDaysActive,
		Level:            ent.Level,
		XP:               ent.XP,
		XPToNextLevel:    ent.XPToNextLevel,
		LastActiveDate:   ent.LastActiveDate,
	}
	for _, ach := range ent.Achievements {
		state.Achievements = append(state.Achievements, Achievement{
			Key:         ach.Key,
			Title:       ach.Title,
			Description: ach.Description,
			Unlocked:    ach.Unlocked,
			Progress:    ach.Progress,
			Target:      ach.Target,
		})
	}
	return state
}

// applyToEntity writes the pure state back onto the persisted row set,
// matching achievement rows by key so row identities survive updates.
func applyToEntity(ent *entities.GamificationState, state State) {
	ent.CurrentStreak = state.CurrentStreak
	ent.LongestStreak = state.LongestStreak
	ent.TotalMealsLogged = state.TotalMealsLogged
	ent.TotalDaysActive = state.TotalDaysActive
	ent.Level = state.Level
	ent.XP = state.XP
	ent.XPToNextLevel = state.XPToNextLevel
	ent.LastActiveDate = state.LastActiveDate

	existing := make(map[string]*entities.Achievement, len(ent.Achievements))
	for i := range ent.Achievements {
		existing[ent.Achievements[i].Key] = &ent.Achievements[i]
	}

	for _, ach := range state.Achievements {
		row, ok := existing[ach.Key]
		if !ok {
			ent.Achievements = append(ent.Achievements, entities.Achievement{
				ID:          uuid.New(),
				StateID:     ent.ID,
				Key:         ach.Key,
				Title:       ach.Title,
				Description: ach.Description,
				Unlocked:    ach.Unlocked,
				Progress:    ach.Progress,
				Target:      ach.Target,
			})
			continue
		}
		row.Unlocked = ach.Unlocked
		row.Progress = ach.Progress
		row.Target = ach.Target
	}
}

func toResponse(state State) domain.GamificationResponse {
	resp := domain.GamificationResponse{
		CurrentStreak:    state.CurrentStreak,
		LongestStreak:    state.LongestStreak,
		TotalMealsLogged: state.TotalMealsLogged,
		TotalDaysActive:  state.TotalDaysActive,
		Level:            state.Level,
		XP:               state.XP,
		XPToNextLevel:    state.XPToNextLevel,
		Achievements:     make([]domain.AchievementResponse, 0, len(state.Achievements)),
	}
	for _, ach := range state.Achievements {
		resp.Achievements = append(resp.Achievements, domain.AchievementResponse{
			Key:         ach.Key,
			Title:       ach.Title,
			Description: ach.Description,
			Unlocked:    ach.Unlocked,
			Progress:    ach.Progress,
			Target:      ach.Target,
		})
	}
	return resp
}

func pickAchievements(all []domain.AchievementResponse, keys []string) []domain.AchievementResponse {
	picked := make([]domain.AchievementResponse, 0, len(keys))
	for _, key := range keys {
		for _, ach := range all {
			if ach.Key == key {
				picked = append(picked, ach)
				break
			}
		}
	}
	return picked
}

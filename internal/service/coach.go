package service

import (
	"context"
	"strings"

	"github.com/hoopsim/league-service/internal/model"
	"github.com/hoopsim/league-service/internal/repository"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

type coachService struct {
	coaches repository.CoachRepository
	clock   clockwork.Clock
	log     zerolog.Logger
}

func NewCoachService(coaches repository.CoachRepository, clock clockwork.Clock, logger zerolog.Logger) CoachService {
	l := logger.With().Str("module", "service").Str("component", "coach").Logger()
	return &coachService{coaches: coaches, clock: clock, log: l}
}

func (s *coachService) CreateCoach(ctx context.Context, name, currentTeam string) (model.Coach, error) {
	trimmed, ferrs := validName(name)
	if err := newInvalidInput(ferrs); err != nil {
		return model.Coach{}, err
	}

	now := s.clock.Now()
	coach := model.Coach{
		Name:        trimmed,
		CurrentTeam: currentTeam,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	out, err := s.coaches.Create(ctx, coach)
	if err != nil {
		s.log.Error().Err(err).Str("name", trimmed).Msg("create coach failed")
		return model.Coach{}, err
	}
	s.log.Info().Str("coach_id", out.ID).Msg("coach created")
	return out, nil
}

func (s *coachService) GetCoach(ctx context.Context, id string) (model.Coach, error) {
	if id == "" {
		return model.Coach{}, newInvalidInput([]FieldError{{Field: "id", Message: "must not be empty"}})
	}
	return s.coaches.GetByID(ctx, id)
}

func (s *coachService) ListCoaches(ctx context.Context) ([]model.Coach, error) {
	coaches, err := s.coaches.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("list coaches failed")
		return nil, err
	}
	return coaches, nil
}

func (s *coachService) UpdateCoach(ctx context.Context, id string, upd CoachUpdate) (model.Coach, error) {
	coach, err := s.coaches.GetByID(ctx, id)
	if err != nil {
		return model.Coach{}, err
	}

	if upd.Name != nil {
		trimmed := strings.TrimSpace(*upd.Name)
		if trimmed == "" {
			return model.Coach{}, newInvalidInput([]FieldError{{Field: "name", Message: "must not be empty"}})
		}
		coach.Name = trimmed
	}
	if upd.CurrentTeam != nil {
		coach.CurrentTeam = *upd.CurrentTeam
	}
	coach.UpdatedAt = s.clock.Now()
	return s.coaches.Update(ctx, coach)
}

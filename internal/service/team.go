package service

import (
	"context"
	"time"

	"github.com/hoopsim/league-service/internal/model"
	"github.com/hoopsim/league-service/internal/repository"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

// teamService holds team use-case logic: validation + orchestration, no
// transport or driver details.
type teamService struct {
	teams   repository.TeamRepository
	players repository.PlayerRepository
	coaches repository.CoachRepository
	clock   clockwork.Clock
	log     zerolog.Logger
}

func NewTeamService(teams repository.TeamRepository, players repository.PlayerRepository, coaches repository.CoachRepository, clock clockwork.Clock, logger zerolog.Logger) TeamService {
	l := logger.With().Str("module", "service").Str("component", "team").Logger()
	return &teamService{teams: teams, players: players, coaches: coaches, clock: clock, log: l}
}

func (s *teamService) CreateTeam(ctx context.Context, name string, conference model.Conference) (model.Team, error) {
	start := time.Now()

	trimmed, ferrs := validName(name)
	if !isValidConference(conference) {
		ferrs = append(ferrs, FieldError{Field: "conference", Message: "must be EAST or WEST"})
	}
	if err := newInvalidInput(ferrs); err != nil {
		s.log.Debug().Str("name_raw", name).Interface("field_errors", ferrs).Msg("team validation failed")
		return model.Team{}, err
	}

	now := s.clock.Now()
	team := model.Team{
		Name:       trimmed,
		Conference: conference,
		Lineup:     make(map[model.Position]*model.Player),
		Record:     model.TeamRecord{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	out, err := s.teams.Create(ctx, team)
	if err != nil {
		// Repository surfaces domain-level errors already, do not wrap.
		s.log.Error().Err(err).Str("name", trimmed).Msg("create team failed")
		return model.Team{}, err
	}
	s.log.Info().Dur("took", time.Since(start)).Str("team_id", out.ID).Msg("team created")
	return out, nil
}

func (s *teamService) GetTeam(ctx context.Context, id string) (model.Team, error) {
	if id == "" {
		return model.Team{}, newInvalidInput([]FieldError{{Field: "id", Message: "must not be empty"}})
	}
	return s.teams.GetByID(ctx, id)
}

func (s *teamService) ListTeams(ctx context.Context) ([]model.Team, error) {
	teams, err := s.teams.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("list teams failed")
		return nil, err
	}
	return teams, nil
}

func (s *teamService) RenameTeam(ctx context.Context, id, name string) (model.Team, error) {
	trimmed, ferrs := validName(name)
	if id == "" {
		ferrs = append(ferrs, FieldError{Field: "id", Message: "must not be empty"})
	}
	if err := newInvalidInput(ferrs); err != nil {
		return model.Team{}, err
	}

	team, err := s.teams.GetByID(ctx, id)
	if err != nil {
		return model.Team{}, err
	}
	team.Name = trimmed
	team.UpdatedAt = s.clock.Now()
	return s.teams.Update(ctx, team)
}

// AssignPlayer puts the player into the lineup slot for its position. The
// player record gets the team reference and, like every player edit, falls
// back to pending approval.
func (s *teamService) AssignPlayer(ctx context.Context, teamID, playerID string) (model.Team, error) {
	team, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		return model.Team{}, err
	}
	player, err := s.players.GetByID(ctx, playerID)
	if err != nil {
		return model.Team{}, err
	}

	now := s.clock.Now()
	player.CurrentTeam = team.ID
	player.Approved = false
	player.UpdatedAt = now
	if _, err := s.players.Update(ctx, player); err != nil {
		return model.Team{}, err
	}

	if team.Lineup == nil {
		team.Lineup = make(map[model.Position]*model.Player)
	}
	slot := player
	team.Lineup[player.Position] = &slot
	team.UpdatedAt = now
	out, err := s.teams.Update(ctx, team)
	if err != nil {
		s.log.Error().Err(err).Str("team_id", teamID).Str("player_id", playerID).Msg("assign player failed")
		return model.Team{}, err
	}
	s.log.Info().Str("team_id", teamID).Str("player_id", playerID).Str("position", string(player.Position)).Msg("player assigned")
	return out, nil
}

func (s *teamService) RemovePlayer(ctx context.Context, teamID, playerID string) (model.Team, error) {
	team, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		return model.Team{}, err
	}
	player, err := s.players.GetByID(ctx, playerID)
	if err != nil {
		return model.Team{}, err
	}

	now := s.clock.Now()
	delete(team.Lineup, player.Position)
	team.UpdatedAt = now
	out, err := s.teams.Update(ctx, team)
	if err != nil {
		return model.Team{}, err
	}

	player.CurrentTeam = ""
	player.UpdatedAt = now
	if _, err := s.players.Update(ctx, player); err != nil {
		return model.Team{}, err
	}
	return out, nil
}

func (s *teamService) AssignCoach(ctx context.Context, teamID, coachID string) (model.Team, error) {
	team, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		return model.Team{}, err
	}
	coach, err := s.coaches.GetByID(ctx, coachID)
	if err != nil {
		return model.Team{}, err
	}

	now := s.clock.Now()
	coach.CurrentTeam = team.ID
	coach.UpdatedAt = now
	if _, err := s.coaches.Update(ctx, coach); err != nil {
		return model.Team{}, err
	}

	team.Coach = &coach
	team.UpdatedAt = now
	out, err := s.teams.Update(ctx, team)
	if err != nil {
		s.log.Error().Err(err).Str("team_id", teamID).Str("coach_id", coachID).Msg("assign coach failed")
		return model.Team{}, err
	}
	return out, nil
}

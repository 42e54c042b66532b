package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hoopsim/league-service/internal/model"
	"github.com/hoopsim/league-service/internal/repository"
	"github.com/hoopsim/league-service/internal/sim"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

// EngineFactory builds a fresh simulation engine per match. Engines carry
// their own random source and are not safe for concurrent use, so every
// PlayMatch call gets its own.
type EngineFactory func() *sim.Engine

type matchService struct {
	matches     repository.MatchRepository
	archive     repository.ArchiveRepository
	logs        repository.PossessionRepository
	teams       repository.TeamRepository
	standings   StandingsService
	newEngine   EngineFactory
	possessions int
	clock       clockwork.Clock
	log         zerolog.Logger
}

func NewMatchService(
	matches repository.MatchRepository,
	archive repository.ArchiveRepository,
	logs repository.PossessionRepository,
	teams repository.TeamRepository,
	standings StandingsService,
	newEngine EngineFactory,
	possessions int,
	clock clockwork.Clock,
	logger zerolog.Logger,
) MatchService {
	l := logger.With().Str("module", "service").Str("component", "match").Logger()
	if newEngine == nil {
		newEngine = func() *sim.Engine { return sim.NewEngine(time.Now().UnixNano()) }
	}
	if possessions <= 0 {
		possessions = sim.DefaultPossessions
	}
	return &matchService{
		matches:     matches,
		archive:     archive,
		logs:        logs,
		teams:       teams,
		standings:   standings,
		newEngine:   newEngine,
		possessions: possessions,
		clock:       clock,
		log:         l,
	}
}

// SetupMatch schedules a match between two existing teams. It starts
// unplayed and unapproved.
func (s *matchService) SetupMatch(ctx context.Context, homeTeamID, awayTeamID string) (model.Match, error) {
	var ferrs []FieldError
	if homeTeamID == "" {
		ferrs = append(ferrs, FieldError{Field: "home_team", Message: "must not be empty"})
	}
	if awayTeamID == "" {
		ferrs = append(ferrs, FieldError{Field: "away_team", Message: "must not be empty"})
	}
	if homeTeamID != "" && homeTeamID == awayTeamID {
		ferrs = append(ferrs, FieldError{Field: "teams", Message: "home and away must differ"})
	}
	if err := newInvalidInput(ferrs); err != nil {
		return model.Match{}, err
	}

	// Resolve both ids so a dangling reference never becomes a scheduled match.
	home, err := s.teams.GetByID(ctx, homeTeamID)
	if err != nil {
		return model.Match{}, err
	}
	away, err := s.teams.GetByID(ctx, awayTeamID)
	if err != nil {
		return model.Match{}, err
	}

	match := model.Match{
		HomeTeam:  home.ID,
		AwayTeam:  away.ID,
		Played:    false,
		Approved:  false,
		CreatedAt: s.clock.Now(),
	}
	out, err := s.matches.Create(ctx, match)
	if err != nil {
		s.log.Error().Err(err).Str("home", homeTeamID).Str("away", awayTeamID).Msg("setup match failed")
		return model.Match{}, err
	}
	s.log.Info().Str("match_id", out.ID).Str("home", home.ID).Str("away", away.ID).Msg("match scheduled")
	return out, nil
}

func (s *matchService) GetMatch(ctx context.Context, id string) (model.Match, error) {
	if id == "" {
		return model.Match{}, newInvalidInput([]FieldError{{Field: "id", Message: "must not be empty"}})
	}
	return s.matches.GetByID(ctx, id)
}

func (s *matchService) ListMatches(ctx context.Context) ([]model.Match, error) {
	return s.matches.List(ctx)
}

// PlayMatch simulates the match and commits the possession log. The match
// document is only touched after the complete log is persisted, so a failed
// simulation leaves it unplayed and unmodified. Approval never happens here.
func (s *matchService) PlayMatch(ctx context.Context, id string) (model.Match, error) {
	start := time.Now()
	match, err := s.GetMatch(ctx, id)
	if err != nil {
		return model.Match{}, err
	}
	if match.Played {
		return model.Match{}, fmt.Errorf("match %s already played: %w", id, ErrInvalidTransition)
	}

	home, err := s.teams.GetByID(ctx, match.HomeTeam)
	if err != nil {
		return model.Match{}, err
	}
	away, err := s.teams.GetByID(ctx, match.AwayTeam)
	if err != nil {
		return model.Match{}, err
	}

	events, err := s.newEngine().Simulate(home, away, s.possessions)
	if err != nil {
		s.log.Warn().Err(err).Str("match_id", id).Msg("simulation aborted")
		return model.Match{}, err
	}

	log, err := s.logs.Create(ctx, events)
	if err != nil {
		return model.Match{}, err
	}

	match.Possessions = log.ID
	match.Played = true
	match.Approved = false
	out, err := s.matches.Update(ctx, match)
	if err != nil {
		s.log.Error().Err(err).Str("match_id", id).Msg("persisting played match failed")
		return model.Match{}, err
	}
	s.log.Info().
		Dur("took", time.Since(start)).
		Str("match_id", id).
		Str("log_id", log.ID).
		Int("possessions", len(events)).
		Msg("match played")
	return out, nil
}

// ReviewMatch resolves a played match. Approval scores the log, moves the
// match to the archive, bumps both team records and refreshes the season
// standings; rejection discards the match from the pending collection.
//
// The cascade after archival is best effort: if a record or standings write
// fails the match stays archived and the error surfaces, there is no
// compensating rollback.
func (s *matchService) ReviewMatch(ctx context.Context, id string, approved bool) (ReviewResult, error) {
	if id == "" {
		return ReviewResult{}, newInvalidInput([]FieldError{{Field: "id", Message: "must not be empty"}})
	}

	match, err := s.matches.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// A match absent from pending but present in the archive was
			// already approved; re-reviewing it is a lifecycle violation,
			// not a missing document.
			if _, aerr := s.archive.GetByID(ctx, id); aerr == nil {
				return ReviewResult{}, fmt.Errorf("match %s already archived: %w", id, ErrInvalidTransition)
			}
		}
		return ReviewResult{}, err
	}
	if !match.Played {
		return ReviewResult{}, fmt.Errorf("match %s not played yet: %w", id, ErrInvalidTransition)
	}

	if !approved {
		if err := s.matches.Delete(ctx, id); err != nil {
			return ReviewResult{}, err
		}
		match.Approved = false
		s.log.Info().Str("match_id", id).Msg("match rejected and discarded")
		return ReviewResult{Approved: false, Match: &match}, nil
	}

	home, err := s.teams.GetByID(ctx, match.HomeTeam)
	if err != nil {
		return ReviewResult{}, err
	}
	away, err := s.teams.GetByID(ctx, match.AwayTeam)
	if err != nil {
		return ReviewResult{}, err
	}
	log, err := s.logs.GetByID(ctx, match.Possessions)
	if err != nil {
		return ReviewResult{}, err
	}

	now := s.clock.Now()
	archived, err := sim.Score(match, home, away, log.Events, now)
	if err != nil {
		return ReviewResult{}, err
	}
	archived.Approved = true

	if _, err := s.archive.Create(ctx, archived); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return ReviewResult{}, fmt.Errorf("match %s already archived: %w", id, ErrInvalidTransition)
		}
		return ReviewResult{}, err
	}
	if err := s.matches.Delete(ctx, id); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return ReviewResult{}, fmt.Errorf("match %s archived but pending copy not removed: %w", id, err)
	}

	loser := archived.HomeTeam
	if archived.Outcome.Winner == archived.HomeTeam {
		loser = archived.AwayTeam
	}
	if _, err := s.teams.IncrementRecord(ctx, archived.Outcome.Winner, true, now); err != nil {
		return ReviewResult{}, fmt.Errorf("match %s archived but winner record not updated: %w", id, err)
	}
	if _, err := s.teams.IncrementRecord(ctx, loser, false, now); err != nil {
		return ReviewResult{}, fmt.Errorf("match %s archived but loser record not updated: %w", id, err)
	}

	season := SeasonID(now)
	if _, err := s.standings.UpdateSeasonStandings(ctx, season); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return ReviewResult{}, fmt.Errorf("match %s archived but standings not updated: %w", id, err)
		}
		// First approval of the season: the standings document may not exist
		// yet, create it instead of failing the review.
		if _, err := s.standings.CreateSeasonStandings(ctx); err != nil {
			return ReviewResult{}, fmt.Errorf("match %s archived but standings not created: %w", id, err)
		}
	}

	s.log.Info().
		Str("match_id", id).
		Str("winner", archived.Outcome.Winner).
		Int("home_score", archived.Outcome.HomeScore).
		Int("away_score", archived.Outcome.AwayScore).
		Msg("match approved and archived")
	return ReviewResult{Approved: true, Archived: &archived}, nil
}

func (s *matchService) ListGames(ctx context.Context) ([]model.ArchivedMatch, error) {
	return s.archive.List(ctx)
}

func (s *matchService) GetGame(ctx context.Context, id string) (model.ArchivedMatch, error) {
	if id == "" {
		return model.ArchivedMatch{}, newInvalidInput([]FieldError{{Field: "id", Message: "must not be empty"}})
	}
	return s.archive.GetByID(ctx, id)
}

func (s *matchService) GetPossessions(ctx context.Context, logID string) (model.PossessionLog, error) {
	if logID == "" {
		return model.PossessionLog{}, newInvalidInput([]FieldError{{Field: "id", Message: "must not be empty"}})
	}
	return s.logs.GetByID(ctx, logID)
}

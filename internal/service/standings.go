package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hoopsim/league-service/internal/model"
	"github.com/hoopsim/league-service/internal/repository"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

// SeasonID derives the standings key for the season containing t,
// e.g. 2026 -> "2026-2027".
func SeasonID(t time.Time) string {
	year := t.Year()
	return fmt.Sprintf("%d-%d", year, year+1)
}

// outseeds reports whether a team with the given win count displaces the
// current conference leader. Non-strict on purpose: the last team iterated
// with at least as many wins takes the seed. Flip to > here if the league
// ever wants first-seen tie-breaking; nothing else changes.
func outseeds(wins, leaderWins int) bool { return wins >= leaderWins }

type standingsService struct {
	standings repository.StandingsRepository
	teams     repository.TeamRepository
	clock     clockwork.Clock
	log       zerolog.Logger
}

func NewStandingsService(standings repository.StandingsRepository, teams repository.TeamRepository, clock clockwork.Clock, logger zerolog.Logger) StandingsService {
	l := logger.With().Str("module", "service").Str("component", "standings").Logger()
	return &standingsService{standings: standings, teams: teams, clock: clock, log: l}
}

// UpdateConferences rebuilds both conference tables from live team records.
// Nothing is cached: every call walks all teams.
func (s *standingsService) UpdateConferences(ctx context.Context) (ConferenceUpdate, error) {
	teams, err := s.teams.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("list teams for standings failed")
		return ConferenceUpdate{}, err
	}

	east := model.ConferenceStandings{Conference: model.ConferenceEast, Teams: []model.TeamStanding{}}
	west := model.ConferenceStandings{Conference: model.ConferenceWest, Teams: []model.TeamStanding{}}
	var topEastWins, topWestWins int

	for _, team := range teams {
		standing := model.TeamStanding{ID: team.ID, Name: team.Name, Record: team.Record}
		switch team.Conference {
		case model.ConferenceEast:
			if east.TopSeed == nil || outseeds(team.Record.Wins, topEastWins) {
				seed := standing
				east.TopSeed = &seed
				topEastWins = team.Record.Wins
			}
			east.Teams = append(east.Teams, standing)
		case model.ConferenceWest:
			if west.TopSeed == nil || outseeds(team.Record.Wins, topWestWins) {
				seed := standing
				west.TopSeed = &seed
				topWestWins = team.Record.Wins
			}
			west.Teams = append(west.Teams, standing)
		}
	}

	// League-wide seed: East only on strictly more wins, so an across-
	// conference tie goes West.
	var top *model.TeamStanding
	switch {
	case west.TopSeed == nil:
		top = east.TopSeed
	case east.TopSeed == nil:
		top = west.TopSeed
	case topEastWins > topWestWins:
		top = east.TopSeed
	default:
		top = west.TopSeed
	}

	return ConferenceUpdate{East: east, West: west, TopSeed: top}, nil
}

// CreateSeasonStandings creates the current season's document, or returns the
// existing one: at most one standings document per season. A concurrent
// create losing the insert race falls back to reading the winner's document.
func (s *standingsService) CreateSeasonStandings(ctx context.Context) (model.LeagueStandings, error) {
	season := SeasonID(s.clock.Now())

	existing, err := s.standings.GetBySeason(ctx, season)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return model.LeagueStandings{}, err
	}

	update, err := s.UpdateConferences(ctx)
	if err != nil {
		return model.LeagueStandings{}, err
	}
	now := s.clock.Now()
	standings := model.LeagueStandings{
		Season:    season,
		East:      update.East,
		West:      update.West,
		TopSeed:   update.TopSeed,
		CreatedAt: now,
		UpdatedAt: now,
	}
	out, err := s.standings.Create(ctx, standings)
	if errors.Is(err, repository.ErrAlreadyExists) {
		return s.standings.GetBySeason(ctx, season)
	}
	if err != nil {
		s.log.Error().Err(err).Str("season", season).Msg("create standings failed")
		return model.LeagueStandings{}, err
	}
	s.log.Info().Str("season", season).Msg("season standings created")
	return out, nil
}

// UpdateSeasonStandings recomputes both conferences and writes them onto the
// given season's document in place.
func (s *standingsService) UpdateSeasonStandings(ctx context.Context, season string) (model.LeagueStandings, error) {
	if season == "" {
		return model.LeagueStandings{}, newInvalidInput([]FieldError{{Field: "season", Message: "must not be empty"}})
	}
	standings, err := s.standings.GetBySeason(ctx, season)
	if err != nil {
		return model.LeagueStandings{}, err
	}
	update, err := s.UpdateConferences(ctx)
	if err != nil {
		return model.LeagueStandings{}, err
	}
	standings.East = update.East
	standings.West = update.West
	standings.TopSeed = update.TopSeed
	standings.UpdatedAt = s.clock.Now()
	return s.standings.Update(ctx, standings)
}

func (s *standingsService) GetStandings(ctx context.Context) ([]model.LeagueStandings, error) {
	return s.standings.List(ctx)
}

func (s *standingsService) GetSeason(ctx context.Context, season string) (model.LeagueStandings, error) {
	if season == "" {
		return model.LeagueStandings{}, newInvalidInput([]FieldError{{Field: "season", Message: "must not be empty"}})
	}
	return s.standings.GetBySeason(ctx, season)
}

// Package service holds business logic orchestration across repositories and
// handlers. Kept intentionally lean: only use-case coordination, validation
// and domain error shaping.
package service

import (
	"context"
	"errors"

	"github.com/hoopsim/league-service/internal/model"
)

// ErrInvalidInput is the marker error for aggregated validation failures
// (maps to HTTP 400). Field-level details are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// ErrInvalidTransition reports a lifecycle violation: reviewing an unplayed
// match, replaying a played one, or re-reviewing a match that already left
// the pending collection.
var ErrInvalidTransition = errors.New("invalid transition")

// FieldError describes a single invalid field in a client request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to
// ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

// newInvalidInput builds an aggregated validation error if any field errors
// are present.
func newInvalidInput(fe []FieldError) error {
	if len(fe) == 0 { // protective case
		return nil
	}
	return &invalidInputError{fields: fe}
}

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	type feIface interface{ Fields() []FieldError }
	if v, ok := err.(feIface); ok && errors.Is(err, ErrInvalidInput) {
		return v.Fields()
	}
	return nil
}

// TeamService defines team-oriented use cases.
type TeamService interface {
	CreateTeam(ctx context.Context, name string, conference model.Conference) (model.Team, error)
	GetTeam(ctx context.Context, id string) (model.Team, error)
	ListTeams(ctx context.Context) ([]model.Team, error)
	RenameTeam(ctx context.Context, id, name string) (model.Team, error)
	// AssignPlayer slots the player into its position on the team; the player
	// drops back to pending approval like any other edit.
	AssignPlayer(ctx context.Context, teamID, playerID string) (model.Team, error)
	RemovePlayer(ctx context.Context, teamID, playerID string) (model.Team, error)
	AssignCoach(ctx context.Context, teamID, coachID string) (model.Team, error)
}

// CreatePlayerInput carries everything needed to register a new player.
type CreatePlayerInput struct {
	Name        string
	Position    model.Position
	CurrentTeam string
	Possession  int
	Three       int
	Layup       int
	Defense     int
}

// PlayerUpdate is a partial edit; nil fields are left untouched. Any applied
// update reverts the player to pending approval.
type PlayerUpdate struct {
	Name        *string
	Position    *model.Position
	CurrentTeam *string
	Possession  *int
	Three       *int
	Layup       *int
	Defense     *int
}

// PlayerService defines player-oriented use cases.
type PlayerService interface {
	CreatePlayer(ctx context.Context, in CreatePlayerInput) (model.Player, error)
	GetPlayer(ctx context.Context, id string) (model.Player, error)
	// ListPlayers returns approved players only; this is the general query.
	ListPlayers(ctx context.Context) ([]model.Player, error)
	ListPendingPlayers(ctx context.Context) ([]model.Player, error)
	ListAllPlayers(ctx context.Context) ([]model.Player, error)
	ReviewPlayer(ctx context.Context, id string, approved bool) (model.Player, error)
	UpdatePlayer(ctx context.Context, id string, upd PlayerUpdate) (model.Player, error)
}

// CoachUpdate is a partial coach edit; nil fields are left untouched.
type CoachUpdate struct {
	Name        *string
	CurrentTeam *string
}

// CoachService defines coach-oriented use cases.
type CoachService interface {
	CreateCoach(ctx context.Context, name, currentTeam string) (model.Coach, error)
	GetCoach(ctx context.Context, id string) (model.Coach, error)
	ListCoaches(ctx context.Context) ([]model.Coach, error)
	UpdateCoach(ctx context.Context, id string, upd CoachUpdate) (model.Coach, error)
}

// ReviewResult is the outcome of reviewing a played match: exactly one of
// Match (rejected) or Archived (approved) is set.
type ReviewResult struct {
	Approved bool                 `json:"approved"`
	Match    *model.Match         `json:"match,omitempty"`
	Archived *model.ArchivedMatch `json:"archived,omitempty"`
}

// MatchService drives the match lifecycle: setup, simulation, review, and
// possession log access.
type MatchService interface {
	SetupMatch(ctx context.Context, homeTeamID, awayTeamID string) (model.Match, error)
	GetMatch(ctx context.Context, id string) (model.Match, error)
	ListMatches(ctx context.Context) ([]model.Match, error)
	PlayMatch(ctx context.Context, id string) (model.Match, error)
	ReviewMatch(ctx context.Context, id string, approved bool) (ReviewResult, error)
	ListGames(ctx context.Context) ([]model.ArchivedMatch, error)
	GetGame(ctx context.Context, id string) (model.ArchivedMatch, error)
	GetPossessions(ctx context.Context, logID string) (model.PossessionLog, error)
}

// ConferenceUpdate is the freshly recomputed pair of conference tables plus
// the league-wide top seed.
type ConferenceUpdate struct {
	East    model.ConferenceStandings `json:"east"`
	West    model.ConferenceStandings `json:"west"`
	TopSeed *model.TeamStanding       `json:"top_seed,omitempty"`
}

// StandingsService recomputes conference tables from live team records and
// maintains the one-document-per-season league standings.
type StandingsService interface {
	UpdateConferences(ctx context.Context) (ConferenceUpdate, error)
	CreateSeasonStandings(ctx context.Context) (model.LeagueStandings, error)
	UpdateSeasonStandings(ctx context.Context, season string) (model.LeagueStandings, error)
	GetStandings(ctx context.Context) ([]model.LeagueStandings, error)
	GetSeason(ctx context.Context, season string) (model.LeagueStandings, error)
}

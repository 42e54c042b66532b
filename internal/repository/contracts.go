package repository

import (
	"context"
	"time"

	"github.com/hoopsim/league-service/internal/model"
)

// Pinger represents a minimal readiness probe capability.
// I use it to decouple health checks from storage implementation details.
type Pinger interface {
	Ping(ctx context.Context) error
}

// TeamRepository declares persistence operations for teams.
// I return domain models and surface domain errors from errors.go rather than
// driver codes.
type TeamRepository interface {
	Create(ctx context.Context, t model.Team) (model.Team, error)
	GetByID(ctx context.Context, id string) (model.Team, error)
	List(ctx context.Context) ([]model.Team, error)
	Update(ctx context.Context, t model.Team) (model.Team, error)
	// IncrementRecord bumps the win or loss counter atomically at the store
	// layer, so concurrent match approvals touching the same team cannot lose
	// updates to a read-modify-write race.
	IncrementRecord(ctx context.Context, id string, win bool, at time.Time) (model.Team, error)
}

// PlayerRepository declares persistence operations for players.
type PlayerRepository interface {
	Create(ctx context.Context, p model.Player) (model.Player, error)
	GetByID(ctx context.Context, id string) (model.Player, error)
	List(ctx context.Context) ([]model.Player, error)
	// ListByApproval filters on the approval flag; general queries only ever
	// see approved players, admin review queries only pending ones.
	ListByApproval(ctx context.Context, approved bool) ([]model.Player, error)
	Update(ctx context.Context, p model.Player) (model.Player, error)
}

// CoachRepository declares persistence operations for coaches.
type CoachRepository interface {
	Create(ctx context.Context, c model.Coach) (model.Coach, error)
	GetByID(ctx context.Context, id string) (model.Coach, error)
	List(ctx context.Context) ([]model.Coach, error)
	Update(ctx context.Context, c model.Coach) (model.Coach, error)
}

// MatchRepository holds pending matches: scheduled and played-but-unreviewed.
// An approved match leaves this collection for the archive; the two are
// disjoint at all times.
type MatchRepository interface {
	Create(ctx context.Context, m model.Match) (model.Match, error)
	GetByID(ctx context.Context, id string) (model.Match, error)
	List(ctx context.Context) ([]model.Match, error)
	Update(ctx context.Context, m model.Match) (model.Match, error)
	Delete(ctx context.Context, id string) error
}

// ArchiveRepository holds finalized matches. Create keeps the id of the
// pending match it replaces; documents are never updated afterwards.
type ArchiveRepository interface {
	Create(ctx context.Context, m model.ArchivedMatch) (model.ArchivedMatch, error)
	GetByID(ctx context.Context, id string) (model.ArchivedMatch, error)
	List(ctx context.Context) ([]model.ArchivedMatch, error)
}

// PossessionRepository persists ordered possession logs.
type PossessionRepository interface {
	Create(ctx context.Context, events []model.Possession) (model.PossessionLog, error)
	GetByID(ctx context.Context, id string) (model.PossessionLog, error)
}

// StandingsRepository persists one LeagueStandings document per season,
// keyed by the season string. Create fails with ErrAlreadyExists when the
// season document is already present.
type StandingsRepository interface {
	Create(ctx context.Context, s model.LeagueStandings) (model.LeagueStandings, error)
	GetBySeason(ctx context.Context, season string) (model.LeagueStandings, error)
	List(ctx context.Context) ([]model.LeagueStandings, error)
	Update(ctx context.Context, s model.LeagueStandings) (model.LeagueStandings, error)
}

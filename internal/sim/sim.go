// Package sim is the match engine: it turns two staffed rosters into an
// ordered possession log and reduces a finished log into a boxscore. It is
// pure computation over domain models; persistence and workflow live in the
// service layer.
package sim

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/hoopsim/league-service/internal/model"
)

const (
	// DefaultPossessions is the fixed length of a simulated match. The count
	// is historical league behavior, kept as the default and overridable via
	// config.
	DefaultPossessions = 111

	// One of the three uniformly drawn shot categories is an outright miss
	// before the make-probability model ever runs. Historical behavior: it
	// cuts the effective make rate by about a third. Kept verbatim.
	shotCategories     = 3
	forcedMissCategory = 1

	// Defense weighs heavier against threes than layups.
	layupDefenseWeight = 0.15
	threeDefenseWeight = 0.25
)

// ErrIncompleteRoster reports a lineup with an unfilled position slot. The
// engine refuses to simulate rather than picking a partial lineup.
var ErrIncompleteRoster = errors.New("incomplete roster")

// Engine generates possessions from an injected random source so tests can
// seed it deterministically. Not safe for concurrent use; give each
// in-flight simulation its own Engine.
type Engine struct {
	rng *rand.Rand
}

// NewEngine returns an engine seeded with the given value.
func NewEngine(seed int64) *Engine {
	return &Engine{rng: rand.New(rand.NewSource(seed))}
}

// Lineup returns a team's five players in canonical position order, failing
// fast when any slot is empty.
func Lineup(t model.Team) ([]model.Player, error) {
	players := make([]model.Player, 0, len(model.Positions))
	for _, pos := range model.Positions {
		p, ok := t.Lineup[pos]
		if !ok || p == nil {
			return nil, fmt.Errorf("team %s has no %s: %w", t.ID, pos, ErrIncompleteRoster)
		}
		players = append(players, *p)
	}
	return players, nil
}

// Simulate plays a full match: a 50/50 jump ball decides the opening
// possession, then offense alternates unconditionally for exactly count
// possessions. Every possession is one shot attempt; there are no extra
// possessions for offensive rebounds.
func (e *Engine) Simulate(home, away model.Team, count int) ([]model.Possession, error) {
	// Validate both rosters up front so a half-simulated match can never
	// escape this function.
	if _, err := Lineup(home); err != nil {
		return nil, err
	}
	if _, err := Lineup(away); err != nil {
		return nil, err
	}
	if count <= 0 {
		count = DefaultPossessions
	}

	teams := [2]model.Team{home, away}
	offense := e.rng.Intn(2) // jump ball

	events := make([]model.Possession, 0, count)
	for i := 0; i < count; i++ {
		p, err := e.GeneratePossession(teams[offense], teams[1-offense])
		if err != nil {
			return nil, err
		}
		events = append(events, p)
		offense = 1 - offense
	}
	return events, nil
}

package service_test

import (
	"context"
	"fmt"
	"time"

	"github.com/hoopsim/league-service/internal/model"
	"github.com/hoopsim/league-service/internal/repository"
)

// In-memory repository fakes. They keep insertion order so list-based
// assertions are deterministic, and they return the same domain errors the
// mongodb implementations map to.

type fakeTeamRepo struct {
	order []string
	teams map[string]model.Team
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{teams: map[string]model.Team{}}
}

func (r *fakeTeamRepo) Create(_ context.Context, t model.Team) (model.Team, error) {
	if t.ID == "" {
		t.ID = fmt.Sprintf("team-%d", len(r.order)+1)
	}
	if _, ok := r.teams[t.ID]; ok {
		return model.Team{}, repository.ErrAlreadyExists
	}
	r.teams[t.ID] = t
	r.order = append(r.order, t.ID)
	return t, nil
}

func (r *fakeTeamRepo) GetByID(_ context.Context, id string) (model.Team, error) {
	t, ok := r.teams[id]
	if !ok {
		return model.Team{}, repository.ErrNotFound
	}
	return t, nil
}

func (r *fakeTeamRepo) List(_ context.Context) ([]model.Team, error) {
	out := make([]model.Team, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.teams[id])
	}
	return out, nil
}

func (r *fakeTeamRepo) Update(_ context.Context, t model.Team) (model.Team, error) {
	if _, ok := r.teams[t.ID]; !ok {
		return model.Team{}, repository.ErrNotFound
	}
	r.teams[t.ID] = t
	return t, nil
}

func (r *fakeTeamRepo) IncrementRecord(_ context.Context, id string, win bool, at time.Time) (model.Team, error) {
	t, ok := r.teams[id]
	if !ok {
		return model.Team{}, repository.ErrNotFound
	}
	if win {
		t.Record.Wins++
	} else {
		t.Record.Losses++
	}
	t.UpdatedAt = at
	r.teams[id] = t
	return t, nil
}

type fakePlayerRepo struct {
	order   []string
	players map[string]model.Player
}

func newFakePlayerRepo() *fakePlayerRepo {
	return &fakePlayerRepo{players: map[string]model.Player{}}
}

func (r *fakePlayerRepo) Create(_ context.Context, p model.Player) (model.Player, error) {
	if p.ID == "" {
		p.ID = fmt.Sprintf("player-%d", len(r.order)+1)
	}
	if _, ok := r.players[p.ID]; ok {
		return model.Player{}, repository.ErrAlreadyExists
	}
	r.players[p.ID] = p
	r.order = append(r.order, p.ID)
	return p, nil
}

func (r *fakePlayerRepo) GetByID(_ context.Context, id string) (model.Player, error) {
	p, ok := r.players[id]
	if !ok {
		return model.Player{}, repository.ErrNotFound
	}
	return p, nil
}

func (r *fakePlayerRepo) List(_ context.Context) ([]model.Player, error) {
	out := make([]model.Player, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.players[id])
	}
	return out, nil
}

func (r *fakePlayerRepo) ListByApproval(_ context.Context, approved bool) ([]model.Player, error) {
	out := []model.Player{}
	for _, id := range r.order {
		if p := r.players[id]; p.Approved == approved {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePlayerRepo) Update(_ context.Context, p model.Player) (model.Player, error) {
	if _, ok := r.players[p.ID]; !ok {
		return model.Player{}, repository.ErrNotFound
	}
	r.players[p.ID] = p
	return p, nil
}

type fakeCoachRepo struct {
	order   []string
	coaches map[string]model.Coach
}

func newFakeCoachRepo() *fakeCoachRepo {
	return &fakeCoachRepo{coaches: map[string]model.Coach{}}
}

func (r *fakeCoachRepo) Create(_ context.Context, c model.Coach) (model.Coach, error) {
	if c.ID == "" {
		c.ID = fmt.Sprintf("coach-%d", len(r.order)+1)
	}
	if _, ok := r.coaches[c.ID]; ok {
		return model.Coach{}, repository.ErrAlreadyExists
	}
	r.coaches[c.ID] = c
	r.order = append(r.order, c.ID)
	return c, nil
}

func (r *fakeCoachRepo) GetByID(_ context.Context, id string) (model.Coach, error) {
	c, ok := r.coaches[id]
	if !ok {
		return model.Coach{}, repository.ErrNotFound
	}
	return c, nil
}

func (r *fakeCoachRepo) List(_ context.Context) ([]model.Coach, error) {
	out := make([]model.Coach, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.coaches[id])
	}
	return out, nil
}

func (r *fakeCoachRepo) Update(_ context.Context, c model.Coach) (model.Coach, error) {
	if _, ok := r.coaches[c.ID]; !ok {
		return model.Coach{}, repository.ErrNotFound
	}
	r.coaches[c.ID] = c
	return c, nil
}

type fakeMatchRepo struct {
	order   []string
	matches map[string]model.Match
}

func newFakeMatchRepo() *fakeMatchRepo {
	return &fakeMatchRepo{matches: map[string]model.Match{}}
}

func (r *fakeMatchRepo) Create(_ context.Context, m model.Match) (model.Match, error) {
	if m.ID == "" {
		m.ID = fmt.Sprintf("match-%d", len(r.order)+1)
	}
	if _, ok := r.matches[m.ID]; ok {
		return model.Match{}, repository.ErrAlreadyExists
	}
	r.matches[m.ID] = m
	r.order = append(r.order, m.ID)
	return m, nil
}

func (r *fakeMatchRepo) GetByID(_ context.Context, id string) (model.Match, error) {
	m, ok := r.matches[id]
	if !ok {
		return model.Match{}, repository.ErrNotFound
	}
	return m, nil
}

func (r *fakeMatchRepo) List(_ context.Context) ([]model.Match, error) {
	out := make([]model.Match, 0, len(r.order))
	for _, id := range r.order {
		if m, ok := r.matches[id]; ok {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMatchRepo) Update(_ context.Context, m model.Match) (model.Match, error) {
	if _, ok := r.matches[m.ID]; !ok {
		return model.Match{}, repository.ErrNotFound
	}
	r.matches[m.ID] = m
	return m, nil
}

func (r *fakeMatchRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.matches[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.matches, id)
	return nil
}

type fakeArchiveRepo struct {
	order    []string
	archived map[string]model.ArchivedMatch
}

func newFakeArchiveRepo() *fakeArchiveRepo {
	return &fakeArchiveRepo{archived: map[string]model.ArchivedMatch{}}
}

func (r *fakeArchiveRepo) Create(_ context.Context, m model.ArchivedMatch) (model.ArchivedMatch, error) {
	if _, ok := r.archived[m.ID]; ok {
		return model.ArchivedMatch{}, repository.ErrAlreadyExists
	}
	r.archived[m.ID] = m
	r.order = append(r.order, m.ID)
	return m, nil
}

func (r *fakeArchiveRepo) GetByID(_ context.Context, id string) (model.ArchivedMatch, error) {
	m, ok := r.archived[id]
	if !ok {
		return model.ArchivedMatch{}, repository.ErrNotFound
	}
	return m, nil
}

func (r *fakeArchiveRepo) List(_ context.Context) ([]model.ArchivedMatch, error) {
	out := make([]model.ArchivedMatch, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.archived[id])
	}
	return out, nil
}

type fakePossessionRepo struct {
	order []string
	logs  map[string]model.PossessionLog
}

func newFakePossessionRepo() *fakePossessionRepo {
	return &fakePossessionRepo{logs: map[string]model.PossessionLog{}}
}

func (r *fakePossessionRepo) Create(_ context.Context, events []model.Possession) (model.PossessionLog, error) {
	log := model.PossessionLog{
		ID:     fmt.Sprintf("log-%d", len(r.order)+1),
		Events: append([]model.Possession(nil), events...),
	}
	r.logs[log.ID] = log
	r.order = append(r.order, log.ID)
	return log, nil
}

func (r *fakePossessionRepo) GetByID(_ context.Context, id string) (model.PossessionLog, error) {
	log, ok := r.logs[id]
	if !ok {
		return model.PossessionLog{}, repository.ErrNotFound
	}
	return log, nil
}

type fakeStandingsRepo struct {
	order   []string
	seasons map[string]model.LeagueStandings

	// missFirstGet makes the first GetBySeason report not-found even when the
	// document exists, to force the lost-insert-race path in create.
	missFirstGet bool
}

func newFakeStandingsRepo() *fakeStandingsRepo {
	return &fakeStandingsRepo{seasons: map[string]model.LeagueStandings{}}
}

func (r *fakeStandingsRepo) Create(_ context.Context, s model.LeagueStandings) (model.LeagueStandings, error) {
	if _, ok := r.seasons[s.Season]; ok {
		return model.LeagueStandings{}, repository.ErrAlreadyExists
	}
	r.seasons[s.Season] = s
	r.order = append(r.order, s.Season)
	return s, nil
}

func (r *fakeStandingsRepo) GetBySeason(_ context.Context, season string) (model.LeagueStandings, error) {
	if r.missFirstGet {
		r.missFirstGet = false
		return model.LeagueStandings{}, repository.ErrNotFound
	}
	s, ok := r.seasons[season]
	if !ok {
		return model.LeagueStandings{}, repository.ErrNotFound
	}
	return s, nil
}

func (r *fakeStandingsRepo) List(_ context.Context) ([]model.LeagueStandings, error) {
	out := make([]model.LeagueStandings, 0, len(r.order))
	for _, season := range r.order {
		out = append(out, r.seasons[season])
	}
	return out, nil
}

func (r *fakeStandingsRepo) Update(_ context.Context, s model.LeagueStandings) (model.LeagueStandings, error) {
	if _, ok := r.seasons[s.Season]; !ok {
		return model.LeagueStandings{}, repository.ErrNotFound
	}
	r.seasons[s.Season] = s
	return s, nil
}

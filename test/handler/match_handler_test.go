package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hoopsim/league-service/internal/handler"
	"github.com/hoopsim/league-service/internal/model"
	"github.com/hoopsim/league-service/internal/repository"
	"github.com/hoopsim/league-service/internal/service"
	"github.com/hoopsim/league-service/internal/sim"
)

// stubMatchService lets us control each method outcome.
type stubMatchService struct {
	setup struct {
		match model.Match
		err   error
	}
	get struct {
		match model.Match
		err   error
	}
	play struct {
		match model.Match
		err   error
	}
	review struct {
		result service.ReviewResult
		err    error
	}
	games struct {
		list []model.ArchivedMatch
		one  model.ArchivedMatch
		err  error
	}
	log struct {
		log model.PossessionLog
		err error
	}
}

func (s *stubMatchService) SetupMatch(ctx context.Context, homeTeamID, awayTeamID string) (model.Match, error) {
	return s.setup.match, s.setup.err
}
func (s *stubMatchService) GetMatch(ctx context.Context, id string) (model.Match, error) {
	return s.get.match, s.get.err
}
func (s *stubMatchService) ListMatches(ctx context.Context) ([]model.Match, error) {
	return []model.Match{s.get.match}, s.get.err
}
func (s *stubMatchService) PlayMatch(ctx context.Context, id string) (model.Match, error) {
	return s.play.match, s.play.err
}
func (s *stubMatchService) ReviewMatch(ctx context.Context, id string, approved bool) (service.ReviewResult, error) {
	return s.review.result, s.review.err
}
func (s *stubMatchService) ListGames(ctx context.Context) ([]model.ArchivedMatch, error) {
	return s.games.list, s.games.err
}
func (s *stubMatchService) GetGame(ctx context.Context, id string) (model.ArchivedMatch, error) {
	return s.games.one, s.games.err
}
func (s *stubMatchService) GetPossessions(ctx context.Context, logID string) (model.PossessionLog, error) {
	return s.log.log, s.log.err
}

func newMatchRouter(ms service.MatchService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler.Register(r, stubPingerNoop{}, nil, nil, nil, ms, nil)
	return r
}

func TestMatchHandler_Setup_OK(t *testing.T) {
	stub := &stubMatchService{}
	stub.setup.match = model.Match{ID: "m1", HomeTeam: "t1", AwayTeam: "t2"}
	r := newMatchRouter(stub)
	body, _ := json.Marshal(map[string]string{"home_team": "t1", "away_team": "t2"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/matches", bytes.NewReader(body)))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var resp model.Match
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || resp.ID != "m1" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestMatchHandler_Play_OK(t *testing.T) {
	stub := &stubMatchService{}
	stub.play.match = model.Match{ID: "m1", Played: true, Possessions: "log-1"}
	r := newMatchRouter(stub)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/matches/m1/play", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("log-1")) {
		t.Fatalf("expected log id in body: %s", w.Body.String())
	}
}

func TestMatchHandler_Play_AlreadyPlayed(t *testing.T) {
	stub := &stubMatchService{}
	stub.play.err = fmt.Errorf("match m1 already played: %w", service.ErrInvalidTransition)
	r := newMatchRouter(stub)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/matches/m1/play", nil))
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("invalid_transition")) {
		t.Fatalf("expected invalid_transition, body=%s", w.Body.String())
	}
}

func TestMatchHandler_Play_IncompleteRoster(t *testing.T) {
	stub := &stubMatchService{}
	stub.play.err = fmt.Errorf("team t2 has no C: %w", sim.ErrIncompleteRoster)
	r := newMatchRouter(stub)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/matches/m1/play", nil))
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", w.Code, w.Body.String())
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("incomplete_roster")) {
		t.Fatalf("expected incomplete_roster, body=%s", w.Body.String())
	}
}

func TestMatchHandler_Review_Approve_OK(t *testing.T) {
	stub := &stubMatchService{}
	stub.review.result = service.ReviewResult{
		Approved: true,
		Archived: &model.ArchivedMatch{
			Match:   model.Match{ID: "m1", Approved: true},
			Outcome: model.Outcome{Winner: "t1", HomeScore: 101, AwayScore: 99},
		},
	}
	r := newMatchRouter(stub)
	body, _ := json.Marshal(map[string]bool{"approved": true})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/matches/m1/review", bytes.NewReader(body)))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("winner")) {
		t.Fatalf("expected outcome in body: %s", w.Body.String())
	}
}

func TestMatchHandler_Review_MissingVerdict(t *testing.T) {
	stub := &stubMatchService{}
	r := newMatchRouter(stub)
	body, _ := json.Marshal(map[string]string{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/matches/m1/review", bytes.NewReader(body)))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestMatchHandler_Review_AlreadyArchived(t *testing.T) {
	stub := &stubMatchService{}
	stub.review.err = fmt.Errorf("match m1 already archived: %w", service.ErrInvalidTransition)
	r := newMatchRouter(stub)
	body, _ := json.Marshal(map[string]bool{"approved": true})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/matches/m1/review", bytes.NewReader(body)))
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}
}

func TestMatchHandler_GetGame_NotFound(t *testing.T) {
	stub := &stubMatchService{}
	stub.games.err = repository.ErrNotFound
	r := newMatchRouter(stub)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/games/m9", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestMatchHandler_GetPossessions_OK(t *testing.T) {
	stub := &stubMatchService{}
	stub.log.log = model.PossessionLog{ID: "log-1", Events: []model.Possession{{Offense: "t1"}}}
	r := newMatchRouter(stub)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/possessions/log-1", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("events")) {
		t.Fatalf("expected events in body: %s", w.Body.String())
	}
}

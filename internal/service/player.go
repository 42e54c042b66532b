package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/hoopsim/league-service/internal/model"
	"github.com/hoopsim/league-service/internal/repository"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

type playerService struct {
	players  repository.PlayerRepository
	validate *validator.Validate
	clock    clockwork.Clock
	log      zerolog.Logger
}

func NewPlayerService(players repository.PlayerRepository, clock clockwork.Clock, logger zerolog.Logger) PlayerService {
	l := logger.With().Str("module", "service").Str("component", "player").Logger()
	return &playerService{players: players, validate: validator.New(), clock: clock, log: l}
}

func (s *playerService) CreatePlayer(ctx context.Context, in CreatePlayerInput) (model.Player, error) {
	start := time.Now()

	trimmed, ferrs := validName(in.Name)
	if !isValidPosition(in.Position) {
		ferrs = append(ferrs, FieldError{Field: "position", Message: "must be one of PG, SG, SF, PF, C"})
	}
	if err := newInvalidInput(ferrs); err != nil {
		s.log.Debug().Str("name_raw", in.Name).Interface("field_errors", ferrs).Msg("player validation failed")
		return model.Player{}, err
	}

	now := s.clock.Now()
	// Players always start pending; only an explicit admin review approves.
	player := model.Player{
		Name:        trimmed,
		Position:    in.Position,
		Possession:  in.Possession,
		Three:       in.Three,
		Layup:       in.Layup,
		Defense:     in.Defense,
		Approved:    false,
		CurrentTeam: in.CurrentTeam,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if ferrs := s.ratingErrors(player); len(ferrs) > 0 {
		return model.Player{}, newInvalidInput(ferrs)
	}

	out, err := s.players.Create(ctx, player)
	if err != nil {
		s.log.Error().Err(err).Str("name", trimmed).Msg("create player failed")
		return model.Player{}, err
	}
	s.log.Info().Dur("took", time.Since(start)).Str("player_id", out.ID).Msg("player created")
	return out, nil
}

func (s *playerService) GetPlayer(ctx context.Context, id string) (model.Player, error) {
	if id == "" {
		return model.Player{}, newInvalidInput([]FieldError{{Field: "id", Message: "must not be empty"}})
	}
	return s.players.GetByID(ctx, id)
}

func (s *playerService) ListPlayers(ctx context.Context) ([]model.Player, error) {
	return s.players.ListByApproval(ctx, true)
}

func (s *playerService) ListPendingPlayers(ctx context.Context) ([]model.Player, error) {
	return s.players.ListByApproval(ctx, false)
}

func (s *playerService) ListAllPlayers(ctx context.Context) ([]model.Player, error) {
	return s.players.List(ctx)
}

func (s *playerService) ReviewPlayer(ctx context.Context, id string, approved bool) (model.Player, error) {
	player, err := s.players.GetByID(ctx, id)
	if err != nil {
		return model.Player{}, err
	}
	player.Approved = approved
	player.UpdatedAt = s.clock.Now()
	out, err := s.players.Update(ctx, player)
	if err != nil {
		s.log.Error().Err(err).Str("player_id", id).Msg("review player failed")
		return model.Player{}, err
	}
	s.log.Info().Str("player_id", id).Bool("approved", approved).Msg("player reviewed")
	return out, nil
}

// UpdatePlayer applies the partial edit and always reverts the player to
// pending: every change requires re-approval.
func (s *playerService) UpdatePlayer(ctx context.Context, id string, upd PlayerUpdate) (model.Player, error) {
	player, err := s.players.GetByID(ctx, id)
	if err != nil {
		return model.Player{}, err
	}

	var ferrs []FieldError
	if upd.Name != nil {
		trimmed := strings.TrimSpace(*upd.Name)
		if trimmed == "" {
			ferrs = append(ferrs, FieldError{Field: "name", Message: "must not be empty"})
		} else {
			player.Name = trimmed
		}
	}
	if upd.Position != nil {
		if !isValidPosition(*upd.Position) {
			ferrs = append(ferrs, FieldError{Field: "position", Message: "must be one of PG, SG, SF, PF, C"})
		} else {
			player.Position = *upd.Position
		}
	}
	if upd.CurrentTeam != nil {
		player.CurrentTeam = *upd.CurrentTeam
	}
	if upd.Possession != nil {
		player.Possession = *upd.Possession
	}
	if upd.Three != nil {
		player.Three = *upd.Three
	}
	if upd.Layup != nil {
		player.Layup = *upd.Layup
	}
	if upd.Defense != nil {
		player.Defense = *upd.Defense
	}
	ferrs = append(ferrs, s.ratingErrors(player)...)
	if err := newInvalidInput(ferrs); err != nil {
		return model.Player{}, err
	}

	player.Approved = false
	player.UpdatedAt = s.clock.Now()
	return s.players.Update(ctx, player)
}

// ratingErrors runs the struct-tag bounds on the four skill ratings and
// shapes violations as field errors.
func (s *playerService) ratingErrors(p model.Player) []FieldError {
	err := s.validate.StructPartial(p, "Possession", "Three", "Layup", "Defense")
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "ratings", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, ve := range verrs {
		out = append(out, FieldError{Field: strings.ToLower(ve.Field()), Message: "must be between 0 and 100"})
	}
	return out
}

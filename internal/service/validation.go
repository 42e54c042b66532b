package service

import (
	"strings"

	"github.com/hoopsim/league-service/internal/model"
)

func validName(name string) (string, []FieldError) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", []FieldError{{Field: "name", Message: "must not be empty"}}
	}
	if ln := len([]rune(trimmed)); ln < 2 || ln > 50 {
		return "", []FieldError{{Field: "name", Message: "length must be between 2 and 50"}}
	}
	return trimmed, nil
}

func isValidConference(c model.Conference) bool {
	switch c {
	case model.ConferenceEast, model.ConferenceWest:
		return true
	default:
		return false
	}
}

func isValidPosition(pos model.Position) bool {
	switch pos {
	case model.PointGuard, model.ShootingGuard, model.SmallForward, model.PowerForward, model.Centre:
		return true
	default:
		return false
	}
}


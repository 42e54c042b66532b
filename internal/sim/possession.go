package sim

import (
	"github.com/hoopsim/league-service/internal/model"
)

// GeneratePossession produces one possession outcome for the given offense
// and defense. The shooter is a weighted draw over the offense's possession
// ratings; the defender is the defense player in the same position slot.
func (e *Engine) GeneratePossession(offense, defense model.Team) (model.Possession, error) {
	offPlayers, err := Lineup(offense)
	if err != nil {
		return model.Possession{}, err
	}
	defPlayers, err := Lineup(defense)
	if err != nil {
		return model.Possession{}, err
	}

	shooterIdx := e.pickShooter(offPlayers)
	shooter := offPlayers[shooterIdx]
	defender := defPlayers[shooterIdx]

	// Shot category is uniform over {forced miss, layup, three}. The forced
	// miss skips the probability model entirely; it is a separate outcome,
	// not a failed attempt.
	category := e.rng.Intn(shotCategories) + 1

	shot := model.ShotMiss
	made := false
	if category != forcedMissCategory {
		var probability float64
		if category == 2 {
			shot = model.ShotLayup
			probability = float64(shooter.Layup) - float64(defender.Defense)*layupDefenseWeight
		} else {
			shot = model.ShotThree
			probability = float64(shooter.Three) - float64(defender.Defense)*threeDefenseWeight
		}
		roll := e.rng.Intn(100)
		made = probability > float64(roll)
		if !made {
			shot = model.ShotMiss
		}
	}

	p := model.Possession{
		Offense:  offense.ID,
		Shooter:  model.PlayerRef{ID: shooter.ID, Name: shooter.Name},
		Defender: model.PlayerRef{ID: defender.ID, Name: defender.Name},
		Shot:     shot,
	}

	if made {
		// A make credits a uniformly random teammate with the assist, never
		// the shooter, and no rebound.
		assist := e.pickTeammate(offPlayers, shooterIdx)
		p.Assist = &model.PlayerRef{ID: assist.ID, Name: assist.Name}
	} else {
		// Any miss, forced or failed, goes to a uniformly random defensive
		// rebounder and credits no assist.
		rebounder := defPlayers[e.rng.Intn(len(defPlayers))]
		p.Rebound = &model.PlayerRef{ID: rebounder.ID, Name: rebounder.Name}
	}

	return p, nil
}

// pickShooter runs a cumulative-weight roulette over possession ratings:
// draw in [0, sum), walk the lineup subtracting each rating, and the first
// player that brings the draw to zero or below shoots. Ties resolve to the
// earlier slot; an all-zero lineup always yields the point guard.
func (e *Engine) pickShooter(players []model.Player) int {
	total := 0
	for _, p := range players {
		total += p.Possession
	}
	draw := e.rng.Float64() * float64(total)
	for i, p := range players {
		draw -= float64(p.Possession)
		if draw <= 0 {
			return i
		}
	}
	return len(players) - 1
}

// pickTeammate selects uniformly among the lineup excluding the given index.
func (e *Engine) pickTeammate(players []model.Player, exclude int) model.Player {
	i := e.rng.Intn(len(players) - 1)
	if i >= exclude {
		i++
	}
	return players[i]
}

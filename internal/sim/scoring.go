package sim

import (
	"fmt"
	"time"

	"github.com/hoopsim/league-service/internal/model"
)

// Score reduces a completed possession log into an ArchivedMatch: per-player
// boxscore rows, team totals, and the final outcome. Events credit the
// shooter's points and either an opposing rebound (miss) or a same-team
// assist (make).
func Score(match model.Match, home, away model.Team, events []model.Possession, finishedAt time.Time) (model.ArchivedMatch, error) {
	homeRows, homeIdx, err := emptyRows(home)
	if err != nil {
		return model.ArchivedMatch{}, err
	}
	awayRows, awayIdx, err := emptyRows(away)
	if err != nil {
		return model.ArchivedMatch{}, err
	}

	var homeScore, awayScore int
	for _, ev := range events {
		offRows, offIdx := awayRows, awayIdx
		defRows, defIdx := homeRows, homeIdx
		if ev.Offense == match.HomeTeam {
			offRows, offIdx = homeRows, homeIdx
			defRows, defIdx = awayRows, awayIdx
		}

		i, ok := offIdx[ev.Shooter.ID]
		if !ok {
			return model.ArchivedMatch{}, fmt.Errorf("shooter %s not on team %s roster", ev.Shooter.ID, ev.Offense)
		}
		offRows[i].Points += int(ev.Shot)
		if ev.Offense == match.HomeTeam {
			homeScore += int(ev.Shot)
		} else {
			awayScore += int(ev.Shot)
		}

		switch {
		case ev.Shot == model.ShotMiss && ev.Rebound != nil:
			j, ok := defIdx[ev.Rebound.ID]
			if !ok {
				return model.ArchivedMatch{}, fmt.Errorf("rebounder %s not on defending roster", ev.Rebound.ID)
			}
			defRows[j].Rebounds++
		case ev.Shot != model.ShotMiss && ev.Assist != nil:
			j, ok := offIdx[ev.Assist.ID]
			if !ok {
				return model.ArchivedMatch{}, fmt.Errorf("assister %s not on team %s roster", ev.Assist.ID, ev.Offense)
			}
			offRows[j].Assists++
		default:
			return model.ArchivedMatch{}, fmt.Errorf("possession event missing rebound/assist credit")
		}
	}

	archived := model.ArchivedMatch{
		Match: match,
		Outcome: model.Outcome{
			Winner:    winner(match, homeScore, awayScore),
			HomeScore: homeScore,
			AwayScore: awayScore,
		},
		BoxScore:   model.BoxScore{Home: homeRows, Away: awayRows},
		FinishedAt: finishedAt,
	}
	return archived, nil
}

// winner is the team with the strictly higher score. A tied game goes to the
// away team; the tie policy lives here so changing it never touches the
// aggregation above.
func winner(match model.Match, homeScore, awayScore int) string {
	if homeScore > awayScore {
		return match.HomeTeam
	}
	return match.AwayTeam
}

func emptyRows(t model.Team) ([]model.BoxScoreRow, map[string]int, error) {
	players, err := Lineup(t)
	if err != nil {
		return nil, nil, err
	}
	rows := make([]model.BoxScoreRow, len(players))
	index := make(map[string]int, len(players))
	for i, p := range players {
		rows[i] = model.BoxScoreRow{PlayerID: p.ID, PlayerName: p.Name}
		index[p.ID] = i
	}
	return rows, index, nil
}

// Package model contains domain entities and DTOs used across layers.
// I keep it lean and focused on data shapes without behavior.
package model

import "time"

// Conference is one of the two league halves a team competes in.
type Conference string

const (
	ConferenceEast Conference = "EAST"
	ConferenceWest Conference = "WEST"
)

// Position is one of the five roster slots a team must fill to be
// simulation-eligible.
type Position string

const (
	PointGuard    Position = "PG"
	ShootingGuard Position = "SG"
	SmallForward  Position = "SF"
	PowerForward  Position = "PF"
	Centre        Position = "C"
)

// Positions is the canonical slot order. Offense and defense lineups are
// indexed by it, so the defender for a shooter is always the opponent in the
// same slot.
var Positions = [5]Position{PointGuard, ShootingGuard, SmallForward, PowerForward, Centre}

// Shot encodes the outcome of a single attempt as its point value.
type Shot int

const (
	ShotMiss  Shot = 0
	ShotLayup Shot = 2
	ShotThree Shot = 3
)

// TeamRecord is a running won-loss count.
type TeamRecord struct {
	Wins   int `json:"wins" bson:"wins"`
	Losses int `json:"losses" bson:"losses"`
}

// Team represents a league franchise. The lineup is keyed by position rather
// than five named fields so offense/defense indexing cannot drift.
type Team struct {
	ID         string               `json:"id" bson:"_id"`
	Name       string               `json:"name" bson:"name"`
	Conference Conference           `json:"conference" bson:"conference"`
	Lineup     map[Position]*Player `json:"lineup" bson:"lineup"`
	Coach      *Coach               `json:"coach,omitempty" bson:"coach,omitempty"`
	Record     TeamRecord           `json:"record" bson:"record"`
	CreatedAt  time.Time            `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at" bson:"updated_at"`
}

// Player represents an athlete. Ratings live in [0,100]: possession drives
// the weighted shooter draw, three and layup are make propensities, defense
// suppresses opponent makes. A player is created unapproved and any edit
// drops it back to unapproved until an admin reviews it again.
type Player struct {
	ID          string    `json:"id" bson:"_id"`
	Name        string    `json:"name" bson:"name"`
	Position    Position  `json:"position" bson:"position"`
	Possession  int       `json:"possession" bson:"possession" validate:"gte=0,lte=100"`
	Three       int       `json:"three" bson:"three" validate:"gte=0,lte=100"`
	Layup       int       `json:"layup" bson:"layup" validate:"gte=0,lte=100"`
	Defense     int       `json:"defense" bson:"defense" validate:"gte=0,lte=100"`
	Approved    bool      `json:"approved" bson:"approved"`
	CurrentTeam string    `json:"current_team,omitempty" bson:"current_team,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

// Coach represents a team's coach.
type Coach struct {
	ID          string    `json:"id" bson:"_id"`
	Name        string    `json:"name" bson:"name"`
	CurrentTeam string    `json:"current_team,omitempty" bson:"current_team,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

// Match is a scheduled game between two teams. Played flips when simulation
// commits a possession log; Approved only ever flips during review, never as
// a side effect of playing.
type Match struct {
	ID          string    `json:"id" bson:"_id"`
	HomeTeam    string    `json:"home_team" bson:"home_team"`
	AwayTeam    string    `json:"away_team" bson:"away_team"`
	Played      bool      `json:"played" bson:"played"`
	Approved    bool      `json:"approved" bson:"approved"`
	Possessions string    `json:"possessions,omitempty" bson:"possessions,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// Outcome is the final result of an archived match.
type Outcome struct {
	Winner    string `json:"winner" bson:"winner"`
	HomeScore int    `json:"home_score" bson:"home_score"`
	AwayScore int    `json:"away_score" bson:"away_score"`
}

// BoxScoreRow carries one player's accumulated line for a match.
type BoxScoreRow struct {
	PlayerID   string `json:"player_id" bson:"player_id"`
	PlayerName string `json:"player_name" bson:"player_name"`
	Points     int    `json:"points" bson:"points"`
	Assists    int    `json:"assists" bson:"assists"`
	Rebounds   int    `json:"rebounds" bson:"rebounds"`
}

// BoxScore groups per-player rows for both sides.
type BoxScore struct {
	Home []BoxScoreRow `json:"home" bson:"home"`
	Away []BoxScoreRow `json:"away" bson:"away"`
}

// ArchivedMatch is a reviewed-and-approved match with its finalized score and
// boxscore. Immutable once written; it shares its id with the match it
// replaced so the pending and archived collections stay disjoint.
type ArchivedMatch struct {
	Match      `bson:",inline"`
	Outcome    Outcome   `json:"outcome" bson:"outcome"`
	BoxScore   BoxScore  `json:"box_score" bson:"box_score"`
	FinishedAt time.Time `json:"finished_at" bson:"finished_at"`
}

// PlayerRef is the identity pair recorded on possession events.
type PlayerRef struct {
	ID   string `json:"id" bson:"id"`
	Name string `json:"name" bson:"name"`
}

// Possession is one offense-to-defense exchange: a single shot attempt.
// Exactly one of Rebound/Assist is non-nil: a miss yields a defensive
// rebound, a make yields an offensive assist.
type Possession struct {
	Offense  string     `json:"offense" bson:"offense"`
	Shooter  PlayerRef  `json:"shooter" bson:"shooter"`
	Defender PlayerRef  `json:"defender" bson:"defender"`
	Shot     Shot       `json:"shot" bson:"shot"`
	Rebound  *PlayerRef `json:"rebound,omitempty" bson:"rebound,omitempty"`
	Assist   *PlayerRef `json:"assist,omitempty" bson:"assist,omitempty"`
}

// PossessionLog is the ordered event sequence produced by simulating one
// match.
type PossessionLog struct {
	ID     string       `json:"id" bson:"_id"`
	Events []Possession `json:"events" bson:"events"`
}

// TeamStanding summarizes one team inside a conference table.
type TeamStanding struct {
	ID     string     `json:"id" bson:"id"`
	Name   string     `json:"name" bson:"name"`
	Record TeamRecord `json:"record" bson:"record"`
}

// ConferenceStandings is one conference's table plus its current top seed.
type ConferenceStandings struct {
	Conference Conference     `json:"conference" bson:"conference"`
	TopSeed    *TeamStanding  `json:"top_seed,omitempty" bson:"top_seed,omitempty"`
	Teams      []TeamStanding `json:"teams" bson:"teams"`
}

// LeagueStandings aggregates both conferences for one season. Keyed by the
// season string ("YYYY-YYYY+1"), one document per season, updated in place.
type LeagueStandings struct {
	Season    string              `json:"season" bson:"_id"`
	East      ConferenceStandings `json:"east" bson:"east"`
	West      ConferenceStandings `json:"west" bson:"west"`
	TopSeed   *TeamStanding       `json:"top_seed,omitempty" bson:"top_seed,omitempty"`
	CreatedAt time.Time           `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time           `json:"updated_at" bson:"updated_at"`
}

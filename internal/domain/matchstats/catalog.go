package matchstats

import "strings"

// Side selects the home team, away team, or head-to-head block of a match document.
type Side string

const (
	SideHomeTeam Side = "homeTeam"
	SideAwayTeam Side = "awayTeam"
	SideH2H      Side = "h2h"
)

var allSides = []Side{SideHomeTeam, SideAwayTeam, SideH2H}

// StatKind names a single statistic inside a stat block.
type StatKind string

const (
	StatCornerKicks     StatKind = "cornerKicks"
	StatShotsOnGoal     StatKind = "shotsOnGoal"
	StatShotsOffGoal    StatKind = "shotsOffGoal"
	StatTotalShots      StatKind = "totalShots"
	StatBlockedShots    StatKind = "blockedShots"
	StatGoals           StatKind = "goals"
	StatBallPossession  StatKind = "ballPossession"
	StatFouls           StatKind = "fouls"
	StatOffsides        StatKind = "offsides"
	StatYellowCards     StatKind = "yellowCards"
	StatRedCards        StatKind = "redCards"
	StatThrowIns        StatKind = "throwIns"
	StatGoalKicks       StatKind = "goalKicks"
	StatFreeKicks       StatKind = "freeKicks"
	StatGoalkeeperSaves StatKind = "goalkeeperSaves"
	StatPenalties       StatKind = "penalties"
)

var allStatKinds = []StatKind{
	StatCornerKicks,
	StatShotsOnGoal,
	StatShotsOffGoal,
	StatTotalShots,
	StatBlockedShots,
	StatGoals,
	StatBallPossession,
	StatFouls,
	StatOffsides,
	StatYellowCards,
	StatRedCards,
	StatThrowIns,
	StatGoalKicks,
	StatFreeKicks,
	StatGoalkeeperSaves,
	StatPenalties,
}

var (
	sideSet     = make(map[Side]struct{}, len(allSides))
	statKindSet = make(map[StatKind]struct{}, len(allStatKinds))
)

func init() {
	for _, s := range allSides {
		sideSet[s] = struct{}{}
	}
	for _, k := range allStatKinds {
		statKindSet[k] = struct{}{}
	}
}

// AllSides returns the side selectors in display order.
func AllSides() []Side {
	return append([]Side(nil), allSides...)
}

// AllStatKinds returns the stat kind selectors in display order.
func AllStatKinds() []StatKind {
	return append([]StatKind(nil), allStatKinds...)
}

func (s Side) Valid() bool {
	_, ok := sideSet[s]
	return ok
}

func (k StatKind) Valid() bool {
	_, ok := statKindSet[k]
	return ok
}

// ParseSide accepts exact catalog values only. Matching is case-sensitive.
func ParseSide(raw string) (Side, bool) {
	s := Side(strings.TrimSpace(raw))
	if !s.Valid() {
		return "", false
	}
	return s, true
}

// ParseStatKind accepts exact catalog values only. Matching is case-sensitive.
func ParseStatKind(raw string) (StatKind, bool) {
	k := StatKind(strings.TrimSpace(raw))
	if !k.Valid() {
		return "", false
	}
	return k, true
}

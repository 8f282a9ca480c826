// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"math"

	"github.com/danielhkuo/starter-vote/models"
)

// Leader is the derived leader state. It is either LeaderNone, LeaderTie
// or the id of the single leading starter, and doubles as the theme name.
type Leader string

const (
	LeaderNone Leader = "none"
	LeaderTie  Leader = "tie"
)

// ComputeLeader derives the leader from a tally. It is recomputed on every
// render and never stored.
func ComputeLeader(t models.Tally) Leader {
	if t.Total() == 0 {
		return LeaderNone
	}

	var top int64 = -1
	var leader models.Starter
	tied := false
	for _, s := range models.Starters {
		n := t.Count(s)
		switch {
		case n > top:
			top, leader, tied = n, s, false
		case n == top:
			tied = true
		}
	}

	if tied {
		return LeaderTie
	}
	return Leader(leader)
}

// Starter returns the leading starter, or false for none and tie.
func (l Leader) Starter() (models.Starter, bool) {
	if models.IsValidStarter(string(l)) {
		return models.Starter(l), true
	}
	return "", false
}

// Percentage returns round(count/total*100), or 0 when total is 0.
func Percentage(count, total int64) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}

// ButtonState is what a starter's vote control shows.
type ButtonState int

const (
	ButtonAvailable ButtonState = iota // no vote cast yet
	ButtonMine                         // this client voted for this starter
	ButtonVoted                        // this client voted for another starter
)

func (b ButtonState) Label() string {
	switch b {
	case ButtonMine:
		return "Your Pick!"
	case ButtonVoted:
		return "Already Voted"
	default:
		return "I Choose You!"
	}
}

func buttonState(card, voted models.Starter) ButtonState {
	switch {
	case voted == "":
		return ButtonAvailable
	case voted == card:
		return ButtonMine
	default:
		return ButtonVoted
	}
}

package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// Player identifies a seat. Valid players are PlayerOne and PlayerTwo.
type Player int

const (
	NoPlayer  Player = 0
	PlayerOne Player = 1
	PlayerTwo Player = 2
)

// Players lists every seat in turn order.
var Players = [NumPlayers]Player{PlayerOne, PlayerTwo}

func (p Player) Valid() bool {
	return p == PlayerOne || p == PlayerTwo
}

// Other returns the opponent in a two-player match.
func (p Player) Other() Player {
	if p == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

// Index is the zero-based position of p in per-player arrays.
func (p Player) Index() int {
	return int(p) - 1
}

func (p Player) String() string {
	return fmt.Sprintf("player %d", int(p))
}

type StateHash uint64

// Reveal is the public result of the most recent challenge.
type Reveal struct {
	Valid      bool
	Bid        Bid
	Count      int    // Dice matching Bid.Face, wild ones included
	Challenger Player // Player who disputed the bid
	Loser      Player // Player who lost a die
}

// Successful reports whether the challenger was right.
func (r Reveal) Successful() bool {
	return r.Valid && r.Loser != r.Challenger
}

// MatchState is an immutable snapshot of the public match state. It holds
// no references into the engine, so copies are independent.
type MatchState struct {
	DiceCounts       [NumPlayers]int
	Bid              Bid
	Turn             Player
	LastWasChallenge bool
	Scores           [NumPlayers]int
	Opening          bool // No bid placed since the match started or the last challenge
	Seq              int  // Number of actions applied so far
	Reveal           Reveal
}

func (s MatchState) DiceCount(p Player) int {
	return s.DiceCounts[p.Index()]
}

func (s MatchState) Score(p Player) int {
	return s.Scores[p.Index()]
}

// TotalDice is the number of dice still in play.
func (s MatchState) TotalDice() int {
	total := 0
	for _, n := range s.DiceCounts {
		total += n
	}
	return total
}

func (s MatchState) IsTerminal() bool {
	for _, n := range s.DiceCounts {
		if n == 0 {
			return true
		}
	}
	return false
}

// Winner returns the surviving player once the match is over.
func (s MatchState) Winner() (Player, bool) {
	for _, p := range Players {
		if s.DiceCount(p) == 0 {
			return p.Other(), true
		}
	}
	return NoPlayer, false
}

// Hash fingerprints the public fields that shape future play. Seq and the
// reveal are excluded so transpositions share a hash.
func (s MatchState) Hash() StateHash {
	h := fnv.New64a()
	buf := make([]byte, 8)
	write := func(v int) {
		binary.LittleEndian.PutUint64(buf, uint64(v))
		h.Write(buf)
	}
	for i := range s.DiceCounts {
		write(s.DiceCounts[i])
		write(s.Scores[i])
	}
	write(s.Bid.Quantity)
	write(s.Bid.Face)
	write(int(s.Turn))
	if s.LastWasChallenge {
		write(1)
	} else {
		write(0)
	}
	if s.Opening {
		write(1)
	} else {
		write(0)
	}
	return StateHash(h.Sum64())
}

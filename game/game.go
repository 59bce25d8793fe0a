package game

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrGameOver         = errors.New("game is over - no moves allowed")
	ErrNotYourTurn      = errors.New("not this player's turn")
	ErrIllegalBid       = errors.New("illegal bid")
	ErrIllegalChallenge = errors.New("illegal challenge")
	ErrUnknownAction    = errors.New("unknown action kind")
)

// Outcome describes what an applied action did.
type Outcome struct {
	Action   Action
	Player   Player
	Resolved bool    // A challenge was resolved
	Reveal   Reveal  // Set when Resolved
	Hands    [][]int // Dice revealed by the challenge, indexed like Players
	GameOver bool
}

// Option configures a Game.
type Option func(g *Game)

// WithRoller sets the source of die faces.
func WithRoller(roller Roller) Option {
	return func(g *Game) {
		if roller != nil {
			g.roller = roller
		}
	}
}

// WithSeed makes dice reproducible.
func WithSeed(seed uint64) Option {
	return func(g *Game) {
		g.roller = NewSeededRoller(seed)
	}
}

// Game owns the authoritative match state. It is not safe for concurrent
// mutation: each match gets its own Game.
type Game struct {
	roller Roller
	hands  [NumPlayers][]int
	state  MatchState
}

// New starts a fresh match.
func New(options ...Option) *Game {
	g := &Game{}
	for _, option := range options {
		option(g)
	}
	if g.roller == nil {
		g.roller = NewSeededRoller(uint64(time.Now().UnixNano()))
	}
	g.Reset()
	return g
}

// Restore builds a playable engine from a public snapshot. Hidden dice are
// rolled afresh from roller, so the result is one plausible world consistent
// with what the snapshot shows.
func Restore(state MatchState, roller Roller) *Game {
	g := &Game{roller: roller, state: state}
	g.roll()
	return g
}

// Reset starts a fresh match. The engine never resets on its own.
func (g *Game) Reset() {
	g.state = MatchState{
		Bid:     OpeningBid,
		Turn:    PlayerOne,
		Opening: true,
	}
	for _, p := range Players {
		g.state.DiceCounts[p.Index()] = StartingDice
	}
	g.roll()
}

// Clone deep-copies the engine. The clone shares the roller, so give it its
// own with WithRoller when both are used concurrently.
func (g *Game) Clone(options ...Option) *Game {
	c := &Game{roller: g.roller, state: g.state}
	for i, hand := range g.hands {
		c.hands[i] = append([]int(nil), hand...)
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// State returns a snapshot of the public state.
func (g *Game) State() MatchState {
	return g.state
}

// Dice returns a copy of a player's hidden dice.
func (g *Game) Dice(p Player) []int {
	if !p.Valid() {
		return nil
	}
	return append([]int(nil), g.hands[p.Index()]...)
}

func (g *Game) IsTerminal() bool {
	return g.state.IsTerminal()
}

func (g *Game) Winner() (Player, bool) {
	return g.state.Winner()
}

// Apply performs action for the player to act.
func (g *Game) Apply(action Action) (Outcome, error) {
	switch action.Kind {
	case BidKind:
		player := g.state.Turn
		if err := g.Bid(player, action.Quantity, action.Face); err != nil {
			return Outcome{}, err
		}
		return Outcome{Action: action, Player: player}, nil
	case ChallengeKind:
		return g.Challenge(g.state.Turn)
	}
	return Outcome{}, fmt.Errorf("%w: %d", ErrUnknownAction, action.Kind)
}

// Bid raises the current bid. A rejected bid leaves the state untouched.
func (g *Game) Bid(player Player, quantity, face int) error {
	if err := g.checkTurn(player); err != nil {
		return err
	}
	bid := Bid{Quantity: quantity, Face: face}
	if !CanBid(g.state, bid) {
		return fmt.Errorf("%w: %s over %s", ErrIllegalBid, bid, g.state.Bid)
	}

	g.state.Bid = bid
	g.state.LastWasChallenge = false
	g.state.Opening = false
	g.state.Turn = player.Other()
	g.state.Seq++
	return nil
}

// Challenge disputes the current bid: all dice are revealed and counted, the
// loser of the round gives up a die, and surviving dice are rerolled.
func (g *Game) Challenge(challenger Player) (Outcome, error) {
	if err := g.checkTurn(challenger); err != nil {
		return Outcome{}, err
	}
	if !CanChallenge(g.state) {
		return Outcome{}, ErrIllegalChallenge
	}

	bid := g.state.Bid
	bidder := challenger.Other()
	hands := g.revealHands()
	count := CountMatches(hands, bid.Face)

	loser := bidder
	if count >= bid.Quantity { // Bid stands
		loser = challenger
	}
	winner := loser.Other()

	g.state.DiceCounts[loser.Index()]--
	g.state.Scores[winner.Index()] += RoundPoints
	g.state.Scores[loser.Index()] = max(0, g.state.Scores[loser.Index()]-RoundPoints)
	g.state.Bid = NoBid
	g.state.LastWasChallenge = true
	g.state.Opening = true
	g.state.Turn = winner
	g.state.Seq++
	g.state.Reveal = Reveal{
		Valid:      true,
		Bid:        bid,
		Count:      count,
		Challenger: challenger,
		Loser:      loser,
	}
	g.roll()

	return Outcome{
		Action:   Challenge(),
		Player:   challenger,
		Resolved: true,
		Reveal:   g.state.Reveal,
		Hands:    hands,
		GameOver: g.state.IsTerminal(),
	}, nil
}

func (g *Game) checkTurn(player Player) error {
	if g.state.IsTerminal() {
		return ErrGameOver
	}
	if player != g.state.Turn {
		return fmt.Errorf("%w: %s to act, got %s", ErrNotYourTurn, g.state.Turn, player)
	}
	return nil
}

func (g *Game) revealHands() [][]int {
	hands := make([][]int, NumPlayers)
	for i, hand := range g.hands {
		hands[i] = append([]int(nil), hand...)
	}
	return hands
}

// roll rerolls every surviving die, sizing hands to the die counts.
func (g *Game) roll() {
	for i, n := range g.state.DiceCounts {
		hand := make([]int, n)
		for j := range hand {
			hand[j] = g.roller.Roll()
		}
		g.hands[i] = hand
	}
}

package gamemaster

import (
	"errors"
	"reflect"
	"testing"

	"liarsdice/game"
)

func TestNewMatch(t *testing.T) {
	match, state := NewMatch(game.WithSeed(1))

	if match == nil {
		t.Fatal("expected a match, got nil")
	}
	if state.DiceCount(game.PlayerOne) != 5 || state.DiceCount(game.PlayerTwo) != 5 {
		t.Errorf("expected 5 dice each, got %+v", state.DiceCounts)
	}
	if state.Bid != game.OpeningBid {
		t.Errorf("expected opening bid %s, got %s", game.OpeningBid, state.Bid)
	}
	if IsTerminal(state) {
		t.Error("fresh match should not be terminal")
	}
	if _, ok := Winner(state); ok {
		t.Error("fresh match should have no winner")
	}
	if len(match.Updates()) != 0 {
		t.Errorf("expected no updates yet, got %d", len(match.Updates()))
	}
}

func TestMatchApply_ValidBid(t *testing.T) {
	match, state := NewMatch(game.WithSeed(1))

	next, outcome, err := match.Apply(state, game.NewBid(3, 4))
	if err != nil {
		t.Fatalf("expected no error for a valid bid, got %v", err)
	}

	if next.Bid != (game.Bid{Quantity: 3, Face: 4}) {
		t.Errorf("expected bid 3x4, got %s", next.Bid)
	}
	if next.Turn != game.PlayerTwo {
		t.Errorf("expected player 2 to act, got %s", next.Turn)
	}
	if next.LastWasChallenge {
		t.Error("expected last action not to be a challenge")
	}
	if Reward(outcome) != 0 {
		t.Errorf("expected a neutral reward for a bid, got %f", Reward(outcome))
	}
	updates := match.Updates()
	if len(updates) != 1 || updates[0].State != next {
		t.Errorf("expected one update holding the new state, got %+v", updates)
	}
}

func TestMatchApply_IllegalMove(t *testing.T) {
	match, state := NewMatch(game.WithSeed(1))

	// Nothing to dispute before the first bid
	next, _, err := match.Apply(state, game.Challenge())
	if !errors.Is(err, game.ErrIllegalChallenge) {
		t.Errorf("expected illegal challenge error, got %v", err)
	}
	if next != state {
		t.Error("rejected move should leave the state unchanged")
	}

	_, _, err = match.Apply(state, game.NewBid(11, 2))
	if !errors.Is(err, game.ErrIllegalBid) {
		t.Errorf("expected illegal bid error, got %v", err)
	}
}

func TestMatchApply_StaleState(t *testing.T) {
	match, state := NewMatch(game.WithSeed(1))
	if _, _, err := match.Apply(state, game.NewBid(2, 2)); err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	_, _, err := match.Apply(state, game.NewBid(3, 3))
	if !errors.Is(err, ErrStaleState) {
		t.Errorf("expected stale state error, got %v", err)
	}
}

func TestMatchApply_GameOver(t *testing.T) {
	match, state := NewMatch(game.WithRoller(&game.ScriptedRoller{Faces: []int{2}}))

	// Every bid of ten sixes gets caught, so the players trade dice until player one runs out
	for !IsTerminal(state) {
		var err error
		if state.Opening {
			state, _, err = match.Apply(state, game.NewBid(10, 6))
		} else {
			var outcome game.Outcome
			state, outcome, err = match.Apply(state, game.Challenge())
			if err == nil && Reward(outcome) != 1 {
				t.Errorf("expected the challenger to be rewarded, got %f", Reward(outcome))
			}
		}
		if err != nil {
			t.Fatalf("unexpected error %v", err)
		}
	}

	winner, ok := Winner(state)
	if !ok || winner != game.PlayerTwo {
		t.Errorf("expected player 2 to win, got %v (%v)", winner, ok)
	}

	_, _, err := match.Apply(state, game.NewBid(1, 2))
	if err == nil || err.Error() != "game is over - no moves allowed" {
		t.Errorf("expected 'game is over - no moves allowed' error, got %v", err)
	}
}

func TestMatch_IdenticalInitStates(t *testing.T) {
	_, state1 := NewMatch(game.WithSeed(1))
	_, state2 := NewMatch(game.WithSeed(2))

	if !reflect.DeepEqual(state1, state2) {
		t.Error("expected the same initial public state, got differences")
	}
}

package searcher

import (
	"liarsdice/game"
	"sync"

	"golang.org/x/exp/rand"
)

type decision struct {
	sync.RWMutex
	parent   Node
	player   game.Player // Rewards are kept from this player's perspective
	state    game.MatchState
	hash     game.StateHash
	untried  []game.ActionID
	actions  []game.ActionID // Expanded actions, aligned with children
	children []Node
	rewards  float64
	visits   float64
}

func newDecision(parent Node, player game.Player, state game.MatchState, rng *rand.Rand) *decision {
	untried := game.LegalActions(state)
	if rng != nil {
		rng.Shuffle(len(untried), func(i, j int) {
			untried[i], untried[j] = untried[j], untried[i]
		})
	}

	return &decision{
		parent:   parent,
		player:   player,
		state:    state,
		hash:     state.Hash(),
		untried:  untried,
		actions:  make([]game.ActionID, 0, len(untried)),
		children: make([]Node, 0, len(untried)),
	}
}

func (d *decision) SelectOrExpand(ep *episode) (Node, bool) {
	d.Lock()
	defer d.Unlock()

	if len(d.untried) == 0 && len(d.children) == 0 { // Terminal node
		return d, false
	}

	if len(d.untried) > 0 { // Expandable node
		child := d.addChild(ep)
		child.applyLoss()
		return child, false
	}

	// Fully expanded node
	ith := d.pickChild(ep.cSquared)
	child := d.children[ith]
	ep.play(d.actions[ith])
	child.applyLoss()
	return child, true
}

func (d *decision) addChild(ep *episode) Node {
	last := len(d.untried) - 1
	id := d.untried[last]
	d.untried = d.untried[:last]

	outcome := ep.play(id)
	var child Node
	if outcome.Resolved {
		child = newChance(d)
	} else {
		child = newDecision(d, d.state.Turn, ep.game.State(), ep.rng)
	}
	d.actions = append(d.actions, id)
	d.children = append(d.children, child)
	return child
}

// pickChild returns the child scoring highest for the player to act, the
// earliest expanded one on ties.
func (d *decision) pickChild(cSquared float64) int {
	N := 0.0
	for _, child := range d.children {
		_, visits := child.stats()
		N += visits
	}
	if N == 0 {
		panic("node has children but no visits")
	}
	policy := newUCT(cSquared, N)

	maxIndex := 0
	maxScore := d.children[0].score(policy)
	for i, child := range d.children[1:] {
		if score := child.score(policy); score > maxScore {
			maxScore = score
			maxIndex = i + 1
		}
	}
	return maxIndex
}

func (d *decision) applyLoss() {
	d.Lock()
	defer d.Unlock()

	d.rewards += Loss
	d.visits++
}

func (d *decision) score(policy *uct) float64 {
	d.RLock()
	defer d.RUnlock()

	return policy.evaluate(d.rewards, d.visits)
}

func (d *decision) stats() (float64, float64) {
	d.RLock()
	defer d.RUnlock()

	return d.rewards, d.visits
}

func (d *decision) Backup(reward func(game.Player) float64) Node {
	d.Lock()
	defer d.Unlock()

	if d.parent != nil { // Non-root node
		d.reverseLoss()
	}

	d.rewards += reward(d.player)
	d.visits++

	return d.parent
}

func (d *decision) reverseLoss() {
	d.rewards -= Loss
	d.visits--
}

// Stats lists each expanded action with its child's statistics, in
// expansion order.
func (d *decision) Stats() []ActionStat {
	d.RLock()
	defer d.RUnlock()

	stats := make([]ActionStat, len(d.children))
	for i, child := range d.children {
		rewards, visits := child.stats()
		stats[i] = ActionStat{Action: d.actions[i], Rewards: rewards, Visits: visits}
	}
	return stats
}

package searcher

import (
	"liarsdice/game"
	"sync"
)

// chance follows a challenge: its children are the states the reveal and
// reroll led to, told apart by state hash.
type chance struct {
	sync.RWMutex
	parent   Node
	player   game.Player
	children []*decision
	rewards  float64
	visits   float64
}

func newChance(parent *decision) *chance {
	return &chance{
		parent: parent,
		player: parent.state.Turn,
	}
}

func (c *chance) SelectOrExpand(ep *episode) (Node, bool) {
	c.Lock()
	defer c.Unlock()

	state := ep.game.State()
	// Select if explored outcome
	selected := true
	child := c.selects(state.Hash())
	// Expand if unexplored outcome
	if child == nil {
		child = c.expands(state, ep)
		selected = false
	}

	child.applyLoss()
	return child, selected
}

func (c *chance) selects(hash game.StateHash) *decision {
	for _, child := range c.children {
		if child.hash == hash {
			return child
		}
	}
	return nil
}

func (c *chance) expands(state game.MatchState, ep *episode) *decision {
	child := newDecision(c, c.player, state, ep.rng)
	c.children = append(c.children, child)
	return child
}

func (c *chance) applyLoss() {
	c.Lock()
	defer c.Unlock()

	c.rewards += Loss
	c.visits++
}

func (c *chance) score(policy *uct) float64 {
	c.RLock()
	defer c.RUnlock()

	return policy.evaluate(c.rewards, c.visits)
}

func (c *chance) stats() (float64, float64) {
	c.RLock()
	defer c.RUnlock()

	return c.rewards, c.visits
}

func (c *chance) Backup(reward func(game.Player) float64) Node {
	c.Lock()
	defer c.Unlock()

	c.reverseLoss()

	c.rewards += reward(c.player)
	c.visits++

	return c.parent
}

func (c *chance) reverseLoss() {
	c.rewards -= Loss
	c.visits--
}

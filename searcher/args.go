package searcher

// Hyperparameters for MCTS

const Win = 1.0   // Reward for winning a challenge round
const Loss = -Win // Virtual loss applied while an episode is in flight

const MaxCutoff = 1000      // Rollout depth limit when none is given
const DefaultEpisodes = 200 // Episodes per decision when none is given

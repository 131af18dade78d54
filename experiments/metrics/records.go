package metrics

const (
	KindMinimax   = "minimax"
	KindAlphaBeta = "alphabeta"
	KindRandom    = "random"
	KindHuman     = "human"
)

// AgentConfig describes one participant of a match.
type AgentConfig struct {
	ID         int    `yaml:"id"`
	Kind       string `yaml:"kind"`
	Depth      int    `yaml:"depth,omitempty"`      // Search agents only
	Goroutines int    `yaml:"goroutines,omitempty"` // Search agents only
}

type GameRecord struct {
	Game       int // Index within the match
	BlackAgent int // AgentConfig.ID
	WhiteAgent int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.Game
	MoveMetric
}

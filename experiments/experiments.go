package experiments

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"konane/engine"
	"konane/experiments/metrics"
	"konane/game"
	"konane/meta"
	"konane/searcher/agent"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Match is a series of games between two agents that swap sides every game.
type Match struct {
	ID          string // Generated when empty
	Size        int
	Games       int
	Concurrency int
	Seed        uint64
	Agents      [2]metrics.AgentConfig
	Render      io.Writer // Board output, nil disables
	Input       io.Reader // Human agents read moves here
	Output      io.Writer // Human agents prompt here
}

// NewMatch builds a match from a validated config.
func NewMatch(config meta.Config, in io.Reader, out io.Writer) Match {
	m := Match{
		Size:        config.Size,
		Games:       config.Games,
		Concurrency: config.Concurrency,
		Seed:        config.Seed,
		Agents:      [2]metrics.AgentConfig{config.Agents[0], config.Agents[1]},
		Input:       in,
		Output:      out,
	}
	if config.Show {
		m.Render = out
	}
	return m
}

type Tally struct {
	Agent  metrics.AgentConfig
	Name   string
	Wins   int
	Losses int
}

func (t Tally) String() string {
	return fmt.Sprintf("%s Wins:%d Losses:%d", t.Name, t.Wins, t.Losses)
}

type Result struct {
	ID      string
	Tallies [2]Tally
	Games   []metrics.GameRecord
	Moves   []metrics.MoveRecord
}

type gameResult struct {
	winner int // Index into Match.Agents
	names  [2]string
	record metrics.GameRecord
	moves  []metrics.MoveRecord
}

// RunMatch plays every game of the match. Agent 0 plays Black in even games
// and agent 1 in odd games. Games can run concurrently; each one builds its own
// agents, so results do not depend on scheduling.
func RunMatch(ctx context.Context, m Match) (Result, error) {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.Games < 1 {
		return Result{}, fmt.Errorf("match %s: need at least one game, got %d", m.ID, m.Games)
	}
	concurrency := max(1, m.Concurrency)
	for _, a := range m.Agents {
		if a.Kind == metrics.KindHuman {
			concurrency = 1
		}
	}
	if m.Render != nil {
		concurrency = 1
	}
	if m.Input != nil {
		// Shared so consecutive human agents do not lose buffered input
		m.Input = bufio.NewReader(m.Input)
	}

	logger := log.With().Str("match", m.ID).Logger()
	logger.Info().Msgf("starting %d games on a %dx%d board between agent1=%+v and agent2=%+v...",
		m.Games, m.Size, m.Size, m.Agents[0], m.Agents[1])

	results := make([]gameResult, m.Games)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i := 0; i < m.Games; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := m.playGame(i)
			if err != nil {
				return err
			}
			results[i] = result
			logger.Info().Msgf("completed game %d of %d with winner: %s", i+1, m.Games, result.names[result.winner])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, fmt.Errorf("match %s: %w", m.ID, err)
	}

	res := Result{ID: m.ID}
	for i := range res.Tallies {
		res.Tallies[i] = Tally{Agent: m.Agents[i], Name: results[0].names[i]}
	}
	for _, r := range results {
		res.Tallies[r.winner].Wins++
		res.Tallies[1-r.winner].Losses++
		res.Games = append(res.Games, r.record)
		res.Moves = append(res.Moves, r.moves...)
	}

	logger.Info().Msgf("completed match: %s; %s", res.Tallies[0], res.Tallies[1])
	return res, nil
}

func (m Match) playGame(i int) (gameResult, error) {
	var agents [2]agent.Agent
	for a := range agents {
		created, err := agent.New(m.Agents[a], m.Seed+uint64(2*i+a), m.Input, m.Output)
		if err != nil {
			return gameResult{}, fmt.Errorf("game %d: %w", i, err)
		}
		agents[a] = created
	}

	black := i % 2 // Index of the agent playing Black
	seated := [2]agent.Agent{agents[black], agents[1-black]}
	options := []engine.Option{engine.WithGameID(uuid.NewString())}
	if m.Render != nil {
		options = append(options, engine.WithRender(m.Render))
	}

	winner, gameMetric, moveMetrics := engine.LocalEngine(seated, m.Size, options...).Run()

	result := gameResult{
		winner: 1 - black,
		names:  [2]string{agents[0].Name(), agents[1].Name()},
		record: metrics.GameRecord{
			Game:       i,
			BlackAgent: m.Agents[black].ID,
			WhiteAgent: m.Agents[1-black].ID,
			GameMetric: gameMetric,
		},
	}
	if winner == game.Black {
		result.winner = black
	}
	for _, mm := range moveMetrics {
		result.moves = append(result.moves, metrics.MoveRecord{Game: i, MoveMetric: mm})
	}
	return result, nil
}

// Store writes the match's agent configs, game records and move records
// under dir/<match id>.
func (r Result) Store(dir string) (string, error) {
	writer, err := metrics.NewWriter(dir, r.ID)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs([]metrics.AgentConfig{r.Tallies[0].Agent, r.Tallies[1].Agent})
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(r.Games)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(r.Moves)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

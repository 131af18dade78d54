package experiments

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"konane/experiments/metrics"
	"konane/meta"

	"github.com/stretchr/testify/require"
)

func randomMatch(games, concurrency int) Match {
	return Match{
		Size:        4,
		Games:       games,
		Concurrency: concurrency,
		Seed:        11,
		Agents: [2]metrics.AgentConfig{
			{ID: 1, Kind: metrics.KindRandom},
			{ID: 2, Kind: metrics.KindRandom},
		},
	}
}

func TestRunMatchTallies(t *testing.T) {
	result, err := RunMatch(context.Background(), randomMatch(6, 2))

	require.NoError(t, err)
	require.NotEmpty(t, result.ID)
	first, second := result.Tallies[0], result.Tallies[1]
	require.Equal(t, 6, first.Wins+first.Losses)
	require.Equal(t, first.Wins, second.Losses)
	require.Equal(t, first.Losses, second.Wins)

	require.Len(t, result.Games, 6)
	for i, record := range result.Games {
		require.Equal(t, i, record.Game)
		if i%2 == 0 {
			require.Equal(t, 1, record.BlackAgent, "Agent 1 should play Black in even games")
			require.Equal(t, 2, record.WhiteAgent)
		} else {
			require.Equal(t, 2, record.BlackAgent, "Agents should swap sides every game")
			require.Equal(t, 1, record.WhiteAgent)
		}
		require.NotEmpty(t, record.ID)
	}
}

func TestRunMatchDeterministic(t *testing.T) {
	sequential, err := RunMatch(context.Background(), randomMatch(5, 1))
	require.NoError(t, err)
	concurrent, err := RunMatch(context.Background(), randomMatch(5, 3))
	require.NoError(t, err)

	require.Equal(t, sequential.Tallies[0].Wins, concurrent.Tallies[0].Wins)
	for i := range sequential.Games {
		require.Equal(t, sequential.Games[i].Winner, concurrent.Games[i].Winner)
		require.Equal(t, sequential.Games[i].TotalMoves, concurrent.Games[i].TotalMoves)
	}
	require.Len(t, concurrent.Moves, len(sequential.Moves))
}

func TestRunMatchSearchAgents(t *testing.T) {
	m := Match{
		Size:  6,
		Games: 2,
		Seed:  3,
		Agents: [2]metrics.AgentConfig{
			{ID: 1, Kind: metrics.KindAlphaBeta, Depth: 2},
			{ID: 2, Kind: metrics.KindRandom},
		},
	}

	result, err := RunMatch(context.Background(), m)

	require.NoError(t, err)
	require.Equal(t, "AlphaBeta depth 2", result.Tallies[0].Name)
	require.Equal(t, "Random", result.Tallies[1].Name)
	require.Equal(t, 2, result.Tallies[0].Wins+result.Tallies[0].Losses)
	require.NotEmpty(t, result.Moves)
	require.Equal(t, 2, result.Moves[0].Depth, "Search agent plays first in game 0")
	require.Equal(t, "AlphaBeta depth 2 Wins:1 Losses:1",
		Tally{Name: "AlphaBeta depth 2", Wins: 1, Losses: 1}.String())
}

func TestRunMatchHuman(t *testing.T) {
	out := &bytes.Buffer{}
	m := Match{
		Size:  4,
		Games: 1,
		Agents: [2]metrics.AgentConfig{
			{ID: 1, Kind: metrics.KindHuman},
			{ID: 2, Kind: metrics.KindRandom},
		},
		Input:  strings.NewReader("-1\n"),
		Output: out,
	}

	result, err := RunMatch(context.Background(), m)

	require.NoError(t, err)
	require.Equal(t, 0, result.Tallies[0].Wins, "Conceding human should lose")
	require.Equal(t, 1, result.Tallies[1].Wins)
	require.Contains(t, out.String(), "Enter index of chosen move")
}

func TestRunMatchErrors(t *testing.T) {
	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := RunMatch(ctx, randomMatch(3, 1))
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("unknown agent", func(t *testing.T) {
		m := randomMatch(1, 1)
		m.Agents[1].Kind = "oracle"

		_, err := RunMatch(context.Background(), m)
		require.Error(t, err)
	})

	t.Run("no games", func(t *testing.T) {
		_, err := RunMatch(context.Background(), randomMatch(0, 1))
		require.Error(t, err)
	})
}

func TestNewMatch(t *testing.T) {
	config := meta.Default()
	config.Show = true
	out := &bytes.Buffer{}

	m := NewMatch(config, strings.NewReader(""), out)

	require.Equal(t, config.Size, m.Size)
	require.Equal(t, config.Agents[0], m.Agents[0])
	require.Equal(t, config.Agents[1], m.Agents[1])
	require.Same(t, out, m.Render)
}

func TestResultStore(t *testing.T) {
	m := randomMatch(2, 1)
	m.ID = "fixed-id"
	result, err := RunMatch(context.Background(), m)
	require.NoError(t, err)

	dir, err := result.Store(t.TempDir())

	require.NoError(t, err)
	require.Equal(t, "fixed-id", filepath.Base(dir))
	for _, name := range []string{"agent_configs.csv", "game_records.csv", "move_records.csv"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		require.Greater(t, len(lines), 1, "%s should hold a header and rows", name)
	}
}

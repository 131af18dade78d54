package metrics

import (
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"konane/game"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counts concurrently", func(t *testing.T) {
		c := NewCollector()
		c.Start(4, 3)

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					c.AddNode()
					c.AddEvaluation()
				}
				c.AddCutoff()
			}()
		}
		wg.Wait()

		metric := c.Complete()
		require.Equal(t, 800, metric.Nodes)
		require.Equal(t, 800, metric.Evaluations)
		require.Equal(t, 8, metric.Cutoffs)
		require.Equal(t, 4, metric.Goroutines)
		require.Equal(t, 3, metric.Depth)
	})

	t.Run("start resets counters", func(t *testing.T) {
		c := NewCollector()
		c.Start(1, 1)
		c.AddNode()
		c.Start(1, 1)

		require.Zero(t, c.Complete().Nodes)
	})

	t.Run("dummy collects nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(2, 2)
		c.AddNode()
		require.Equal(t, SearchMetric{}, c.Complete())
	})
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	base := t.TempDir()
	w, err := NewWriter(base, "match-1")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(base, "match-1"), w.Dir())

	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, w.WriteAgentConfigs([]AgentConfig{
		{ID: 1, Kind: KindAlphaBeta, Depth: 3, Goroutines: 2},
		{ID: 2, Kind: KindRandom},
	}))
	require.NoError(t, w.WriteGameRecords([]GameRecord{{
		Game:       0,
		BlackAgent: 1,
		WhiteAgent: 2,
		GameMetric: GameMetric{
			ID:         "g",
			Black:      "AlphaBeta depth 3",
			White:      "Random",
			Winner:     game.White,
			Reason:     "no legal move",
			StartTime:  start,
			EndTime:    start.Add(time.Second),
			Duration:   time.Second,
			TotalMoves: 12,
		},
	}}))
	require.NoError(t, w.WriteMoveRecords([]MoveRecord{{
		Game: 0,
		MoveMetric: MoveMetric{
			Step:         1,
			Player:       game.Black,
			Move:         game.Removal(3, 3),
			SearchMetric: SearchMetric{Value: math.Inf(1), Nodes: 9, Evaluations: 5, Cutoffs: 1},
		},
	}}))

	configs := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
	require.Equal(t, [][]string{
		{"id", "kind", "depth", "goroutines"},
		{"1", "alphabeta", "3", "2"},
		{"2", "random", "0", "0"},
	}, configs)

	games := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
	require.Len(t, games, 2)
	require.Equal(t, []string{"0", "g", "1", "2", "AlphaBeta depth 3", "Random", "O", "no legal move",
		"12", "2026-01-02T03:04:05Z", "2026-01-02T03:04:06Z", "1s"}, games[1])

	moves := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
	require.Len(t, moves, 2)
	require.Equal(t, []string{"0", "1", "X", "(4,4)", "+Inf", "9", "5", "1", "0s"}, moves[1])
}

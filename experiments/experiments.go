package experiments

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"reversi/engine"
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/player"
)

type pairing struct {
	id    int
	black metrics.AgentConfig
	white metrics.AgentConfig
}

// Run plays every matchup of c, writes the records under c.OutputDir and returns the run's directory.
func Run(ctx context.Context, c Config) (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}
	runID := uuid.NewString()

	// Even games keep the matchup's colors, odd games swap them
	var games []pairing
	for _, m := range c.MatchUps {
		for i := 0; i < c.Games; i++ {
			black, white := c.agent(m.Black), c.agent(m.White)
			if i%2 == 1 {
				black, white = white, black
			}
			games = append(games, pairing{id: len(games) + 1, black: black, white: white})
		}
	}

	log.Info().Str("run", runID).Msgf("starting %s experiment with %d games...", c.Name, len(games))

	gameRecords := make([]metrics.GameRecord, len(games))
	moveRecords := make([][]metrics.MoveRecord, len(games))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.Parallel)
	for i, gm := range games {
		g.Go(func() error {
			log.Info().Msgf("starting game %d of %d between agent%d and agent%d...", gm.id, len(games), gm.black.ID, gm.white.ID)

			winner, gameMetric, moveMetrics, err := runGame(ctx, c, gm)
			if err != nil {
				return fmt.Errorf("game %d: %w", gm.id, err)
			}
			gameRecords[i] = metrics.GameRecord{
				ID:         gm.id,
				Agent1:     gm.black.ID,
				Agent2:     gm.white.ID,
				GameMetric: gameMetric,
			}
			for _, mm := range moveMetrics {
				moveRecords[i] = append(moveRecords[i], metrics.MoveRecord{
					Game:       gm.id,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed game %d with winner: %s", gm.id, winner)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	log.Info().Msgf("completed %s experiment", c.Name)
	logStandings(c, gameRecords)

	// Store experiment metadata and results
	writer, err := metrics.NewWriter(c.OutputDir, runID)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(c.Agents)
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	var flat []metrics.MoveRecord
	for _, records := range moveRecords {
		flat = append(flat, records...)
	}
	err = writer.WriteMoveRecords(flat)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

// runGame executes a single game between two agents and returns the winner
func runGame(ctx context.Context, c Config, gm pairing) (game.Color, metrics.GameMetric, []metrics.MoveMetric, error) {
	black, err := newPlayer(c, gm.black, game.Black, gm.id)
	if err != nil {
		return game.Empty, metrics.GameMetric{}, nil, err
	}
	white, err := newPlayer(c, gm.white, game.White, gm.id)
	if err != nil {
		return game.Empty, metrics.GameMetric{}, nil, err
	}

	// The whole block's time is the hard cap on any single move
	e := engine.LocalEngine(black, white, c.TimePerK)
	return e.Run(ctx)
}

func newPlayer(c Config, config metrics.AgentConfig, color game.Color, gameID int) (player.Player, error) {
	switch config.Kind {
	case KindAlphaBeta, KindMiniMax:
		options := []player.Option{player.WithMetrics(metrics.NewCollector())}
		if !config.Book {
			options = append(options, player.WithoutBook())
		}
		if config.MaxDepth > 0 {
			options = append(options, player.WithMaxDepth(config.MaxDepth))
		}
		if config.Kind == KindMiniMax {
			options = append(options, player.WithoutPruning())
		}
		return player.NewAgent(c.SetupTime, color, c.TimePerK, c.K, options...)
	case KindGreedy:
		return player.NewGreedy(color), nil
	case KindRandom:
		return player.NewRandom(config.Seed + uint64(gameID)), nil
	}
	return nil, fmt.Errorf("%w: unknown agent kind %q", ErrBadConfig, config.Kind)
}

func logStandings(c Config, records []metrics.GameRecord) {
	wins := make(map[int]int, len(c.Agents))
	draws, forfeits := 0, 0
	for _, r := range records {
		switch r.Winner {
		case game.Black.String():
			wins[r.Agent1]++
		case game.White.String():
			wins[r.Agent2]++
		default:
			draws++
		}
		if r.Forfeit {
			forfeits++
		}
	}
	for _, a := range c.Agents {
		log.Info().Int("agent", a.ID).Str("kind", a.Kind).Int("wins", wins[a.ID]).Msg("standings")
	}
	log.Info().Int("draws", draws).Int("forfeits", forfeits).Msg("standings")
}

package solution

import (
	"context"
	"fmt"
	"time"

	"github.com/povarna/generative-ai-with-go/aoc/internal/input"
	"github.com/rs/zerolog"
)

type Runner struct {
	registry *Registry
	loader   input.Loader
	logger   *zerolog.Logger
}

func NewRunner(registry *Registry, loader input.Loader, logger *zerolog.Logger) *Runner {
	return &Runner{
		registry: registry,
		loader:   loader,
		logger:   logger,
	}
}

// Run loads the input for day and solves it. Any failure aborts the day;
// no partial answers are reported.
func (r *Runner) Run(ctx context.Context, day int) (Report, error) {
	solver, err := r.registry.Get(day)
	if err != nil {
		return Report{}, err
	}

	text, err := r.loader.Load(ctx, day)
	if err != nil {
		return Report{}, fmt.Errorf("failed to load input for day %d: %w", day, err)
	}

	start := time.Now()
	pair, err := solver(text)
	duration := time.Since(start)
	if err != nil {
		r.logger.Error().Err(err).Int("day", day).Msg("solver failed")
		return Report{}, fmt.Errorf("day %d: %w", day, err)
	}

	r.logger.
		Info().
		Int("day", day).
		Uint64("part1", pair.Part1).
		Uint64("part2", pair.Part2).
		Dur("duration", duration).
		Msg("day solved")

	return Report{Day: day, Pair: pair, Duration: duration}, nil
}

// RunAll runs days in the given order and stops at the first failure.
func (r *Runner) RunAll(ctx context.Context, days []int) ([]Report, error) {
	reports := make([]Report, 0, len(days))
	for _, day := range days {
		if err := ctx.Err(); err != nil {
			return reports, err
		}
		report, err := r.Run(ctx, day)
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

package setup

import (
	aoc2023day01 "github.com/povarna/generative-ai-with-go/aoc/aoc/2023/day01"
	aoc2023day02 "github.com/povarna/generative-ai-with-go/aoc/aoc/2023/day02"
	aoc2023day03 "github.com/povarna/generative-ai-with-go/aoc/aoc/2023/day03"
	aoc2023day04 "github.com/povarna/generative-ai-with-go/aoc/aoc/2023/day04"
	"github.com/povarna/generative-ai-with-go/aoc/internal/config"
	"github.com/povarna/generative-ai-with-go/aoc/internal/input"
	"github.com/povarna/generative-ai-with-go/aoc/internal/solution"
	"github.com/rs/zerolog"
)

type Dependencies struct {
	Registry *solution.Registry
	Loader   input.Loader
	Runner   *solution.Runner
	Logger   *zerolog.Logger
}

func NewRegistry(cfg *config.Config) *solution.Registry {
	registry := solution.NewRegistry()
	registry.Register(1, aoc2023day01.Solve)
	registry.Register(2, aoc2023day02.NewSolver(aoc2023day02.Limits{
		Red:   cfg.CubeLimits.Red,
		Green: cfg.CubeLimits.Green,
		Blue:  cfg.CubeLimits.Blue,
	}))
	registry.Register(3, aoc2023day03.Solve)
	registry.Register(4, aoc2023day04.Solve)
	return registry
}

func Wire(cfg *config.Config, logger *zerolog.Logger) *Dependencies {
	registry := NewRegistry(cfg)
	loader := input.NewFileLoader(cfg.InputDir, cfg.InputPaths())

	return &Dependencies{
		Registry: registry,
		Loader:   loader,
		Runner:   solution.NewRunner(registry, loader, logger),
		Logger:   logger,
	}
}

// Days picks what to run: a single requested day, otherwise the days enabled
// in the config, otherwise every registered day.
func (d *Dependencies) Days(cfg *config.Config, requested int) []int {
	if requested != 0 {
		return []int{requested}
	}
	if days := cfg.EnabledDays(); len(days) > 0 {
		return days
	}
	return d.Registry.Days()
}

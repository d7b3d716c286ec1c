package main

import (
	"context"
	"flag"
	"fmt"
	"math/big"
	"os"
	"os/signal"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-with-go/aoc/internal/config"
	"github.com/povarna/generative-ai-with-go/aoc/internal/setup"
	"github.com/povarna/generative-ai-with-go/aoc/internal/setup/logger"
	"github.com/povarna/generative-ai-with-go/aoc/internal/solution"
	"github.com/rs/zerolog/log"
)

func main() {
	day := flag.Int("day", 0, "Day to run; 0 runs every configured day")
	inputFile := flag.String("inputFile", "", "Relative path to the input file (requires -day)")
	configPath := flag.String("config", "", "Path to the YAML config (default $AOC_CONFIG_PATH or configs/aoc.yaml)")
	logLevel := flag.String("log-level", "", "Log level override")

	flag.Parse()

	log.Logger = logger.New(*logLevel)

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	l := logger.New(cfg.LogLevel)
	log.Logger = l

	if *inputFile != "" {
		if *day == 0 {
			log.Fatal().Msg("-inputFile requires -day")
		}
		cfg.Days[*day] = config.DayConfig{Input: *inputFile}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	deps := setup.Wire(cfg, &l)
	days := deps.Days(cfg, *day)

	log.Info().Ints("days", days).Msg("Running solvers")

	reports, err := deps.Runner.RunAll(ctx, days)
	for _, report := range reports {
		printReport(report)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Solver run failed")
	}
}

func printReport(report solution.Report) {
	fmt.Printf("AoC2023, Day%d, Part1 solution is: %s\n", report.Day, formatAnswer(report.Pair.Part1))
	fmt.Printf("AoC2023, Day%d, Part2 solution is: %s\n", report.Day, formatAnswer(report.Pair.Part2))
}

func formatAnswer(v uint64) string {
	return humanize.BigComma(new(big.Int).SetUint64(v))
}

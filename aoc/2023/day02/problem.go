package aoc2023day02

import (
	"errors"
	"fmt"
	"strings"

	"github.com/povarna/generative-ai-with-go/aoc/internal/parse"
	"github.com/povarna/generative-ai-with-go/aoc/internal/solution"
	"github.com/povarna/generative-ai-with-go/aoc/utils"
)

// Limits is the bag content a game is checked against in part 1.
type Limits struct {
	Red   uint64 `yaml:"red"`
	Green uint64 `yaml:"green"`
	Blue  uint64 `yaml:"blue"`
}

var DefaultLimits = Limits{Red: 12, Green: 13, Blue: 14}

type Round struct {
	Red   uint64
	Green uint64
	Blue  uint64
}

type Game struct {
	ID     uint64
	Rounds []Round
}

func Solve(input string) (solution.Pair, error) {
	return NewSolver(DefaultLimits)(input)
}

// NewSolver returns a solver that checks part 1 against limits.
func NewSolver(limits Limits) solution.Solver {
	return func(input string) (solution.Pair, error) {
		games, err := parseInput(input)
		if err != nil {
			return solution.Pair{}, err
		}
		return solution.Pair{
			Part1: part1(games, limits),
			Part2: part2(games),
		}, nil
	}
}

func part1(games []Game, limits Limits) uint64 {
	var total uint64
	for _, game := range games {
		if game.IsPossible(limits) {
			total += game.ID
		}
	}
	return total
}

func part2(games []Game) uint64 {
	var total uint64
	for _, game := range games {
		total += game.MinSet().Power()
	}
	return total
}

func parseInput(input string) ([]Game, error) {
	lines := utils.Lines(input)
	games := make([]Game, 0, len(lines))
	for i, line := range lines {
		game, err := ParseGame(line)
		if err != nil {
			return nil, parse.NewParseError(i+1, line, "invalid game", err)
		}
		games = append(games, game)
	}
	return games, nil
}

// ParseGame reads "Game <id>: <n> <color>, ...; <n> <color>, ...".
func ParseGame(line string) (Game, error) {
	header, body, ok := strings.Cut(line, ":")
	if !ok {
		return Game{}, errors.New("missing ':' after game header")
	}
	if !strings.HasPrefix(strings.TrimSpace(header), "Game") {
		return Game{}, fmt.Errorf("header %q does not start with Game", header)
	}

	idToken, ok := parse.FirstDigitRun(header)
	if !ok {
		return Game{}, errors.New("missing game id")
	}
	id, err := utils.ToUint(idToken.Value)
	if err != nil {
		return Game{}, err
	}

	game := Game{ID: id}
	for _, roundText := range strings.Split(body, ";") {
		round, err := ParseRound(roundText)
		if err != nil {
			return Game{}, err
		}
		game.Rounds = append(game.Rounds, round)
	}

	return game, nil
}

// ParseRound reads "<n> <color>, <n> <color>". Counts for a repeated color add up.
func ParseRound(s string) (Round, error) {
	round := Round{}
	for _, part := range strings.Split(s, ",") {
		fields := strings.Fields(part)
		if len(fields) != 2 {
			return Round{}, fmt.Errorf("expected '<count> <color>', got %q", strings.TrimSpace(part))
		}

		count, err := utils.ToUint(fields[0])
		if err != nil {
			return Round{}, err
		}

		switch fields[1] {
		case "red":
			round.Red += count
		case "green":
			round.Green += count
		case "blue":
			round.Blue += count
		default:
			return Round{}, &parse.SemanticError{Token: fields[1], Reason: "unknown color"}
		}
	}
	return round, nil
}

func (r Round) IsPossible(limits Limits) bool {
	return r.Red <= limits.Red && r.Green <= limits.Green && r.Blue <= limits.Blue
}

func (r Round) Max(other Round) Round {
	return Round{
		Red:   max(r.Red, other.Red),
		Green: max(r.Green, other.Green),
		Blue:  max(r.Blue, other.Blue),
	}
}

func (r Round) Power() uint64 {
	return r.Red * r.Green * r.Blue
}

func (r Round) String() string {
	return fmt.Sprintf("%d red, %d green, %d blue", r.Red, r.Green, r.Blue)
}

func (g Game) IsPossible(limits Limits) bool {
	for _, round := range g.Rounds {
		if !round.IsPossible(limits) {
			return false
		}
	}
	return true
}

// MinSet is the fewest cubes of each color that make every round possible.
func (g Game) MinSet() Round {
	minSet := Round{}
	for _, round := range g.Rounds {
		minSet = minSet.Max(round)
	}
	return minSet
}

func (g Game) String() string {
	rounds := make([]string, 0, len(g.Rounds))
	for _, round := range g.Rounds {
		rounds = append(rounds, round.String())
	}
	return fmt.Sprintf("Game %d: %s", g.ID, strings.Join(rounds, "; "))
}

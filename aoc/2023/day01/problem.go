package aoc2023day01

import (
	"fmt"
	"strconv"

	"github.com/povarna/generative-ai-with-go/aoc/internal/parse"
	"github.com/povarna/generative-ai-with-go/aoc/internal/solution"
	"github.com/povarna/generative-ai-with-go/aoc/utils"
)

var words = map[string]uint64{
	"one":   1,
	"two":   2,
	"three": 3,
	"four":  4,
	"five":  5,
	"six":   6,
	"seven": 7,
	"eight": 8,
	"nine":  9,
}

// digitTokens includes "0" so a zero is still matched as a digit; readDigit
// then rejects it.
var (
	digitTokens   = []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}
	spelledTokens = append(append([]string{}, digitTokens...),
		"one", "two", "three", "four", "five", "six", "seven", "eight", "nine")
)

func Solve(input string) (solution.Pair, error) {
	p1, err := part1(input)
	if err != nil {
		return solution.Pair{}, fmt.Errorf("part1: %w", err)
	}
	p2, err := part2(input)
	if err != nil {
		return solution.Pair{}, fmt.Errorf("part2: %w", err)
	}
	return solution.Pair{Part1: p1, Part2: p2}, nil
}

func part1(input string) (uint64, error) {
	return calibrate(input, digitTokens)
}

func part2(input string) (uint64, error) {
	return calibrate(input, spelledTokens)
}

// calibrate sums first*10+last over all lines, where first and last are the
// earliest and latest tokens from table found anywhere in the line.
func calibrate(input string, table []string) (uint64, error) {
	values := []uint64{}

	for i, line := range utils.Lines(input) {
		tokens := parse.Overlapping(line, table)
		if len(tokens) == 0 {
			return 0, parse.NewParseError(i+1, line, "no digit found", nil)
		}

		first, err := readDigit(tokens[0].Value)
		if err != nil {
			return 0, parse.NewParseError(i+1, line, "invalid first digit", err)
		}
		last, err := readDigit(tokens[len(tokens)-1].Value)
		if err != nil {
			return 0, parse.NewParseError(i+1, line, "invalid last digit", err)
		}

		values = append(values, first*10+last)
	}

	return utils.Sum(values), nil
}

func readDigit(token string) (uint64, error) {
	if v, ok := words[token]; ok {
		return v, nil
	}
	if len(token) == 1 && token[0] >= '1' && token[0] <= '9' {
		n, _ := strconv.ParseUint(token, 10, 64)
		return n, nil
	}
	return 0, &parse.SemanticError{Token: token, Reason: "not a valid digit"}
}

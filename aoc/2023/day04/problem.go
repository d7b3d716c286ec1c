package aoc2023day04

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/povarna/generative-ai-with-go/aoc/internal/parse"
	"github.com/povarna/generative-ai-with-go/aoc/internal/solution"
	"github.com/povarna/generative-ai-with-go/aoc/utils"
)

type Set map[uint64]struct{}

// Sorted returns the members in ascending order.
func (s Set) Sorted() []uint64 {
	values := make([]uint64, 0, len(s))
	for v := range s {
		values = append(values, v)
	}
	slices.Sort(values)
	return values
}

type Card struct {
	ID      int
	Winning Set
	Held    Set
}

func Solve(input string) (solution.Pair, error) {
	cards, err := parseInput(input)
	if err != nil {
		return solution.Pair{}, err
	}
	return solution.Pair{
		Part1: part1(cards),
		Part2: part2(cards),
	}, nil
}

func part1(cards []Card) uint64 {
	var total uint64
	for _, card := range cards {
		total += card.Score()
	}
	return total
}

// part2 counts every card once plus each copy won by the cascade. Card i
// only feeds cards with a greater id, so one forward pass is enough.
func part2(cards []Card) uint64 {
	copies := make([]uint64, len(cards))
	for i := range copies {
		copies[i] = 1
	}

	for i, card := range cards {
		for j := i + 1; j <= i+card.Matches() && j < len(copies); j++ {
			copies[j] += copies[i]
		}
	}

	return utils.Sum(copies)
}

// parseInput also checks that ids run 1..N in input order, since the
// cascade indexes copies by id-1.
func parseInput(input string) ([]Card, error) {
	lines := utils.Lines(input)
	cards := make([]Card, 0, len(lines))
	for i, line := range lines {
		card, err := ParseCard(line)
		if err != nil {
			return nil, parse.NewParseError(i+1, line, "invalid card", err)
		}
		if card.ID != i+1 {
			return nil, parse.NewParseError(i+1, line,
				fmt.Sprintf("expected card id %d, got %d", i+1, card.ID), nil)
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// ParseCard reads "Card <id>: <winning numbers> | <held numbers>".
func ParseCard(line string) (Card, error) {
	header, rest, ok := strings.Cut(line, ":")
	if !ok {
		return Card{}, errors.New("missing ':' separator")
	}
	winningText, heldText, ok := strings.Cut(rest, "|")
	if !ok {
		return Card{}, errors.New("missing '|' separator")
	}
	if strings.ContainsAny(heldText, ":|") {
		return Card{}, errors.New("unexpected extra separator")
	}

	idToken, ok := parse.FirstDigitRun(header)
	if !ok {
		return Card{}, errors.New("missing card id")
	}
	id, err := utils.ToInt(idToken.Value)
	if err != nil {
		return Card{}, err
	}

	winning, err := parseSet(winningText)
	if err != nil {
		return Card{}, fmt.Errorf("winning numbers: %w", err)
	}
	held, err := parseSet(heldText)
	if err != nil {
		return Card{}, fmt.Errorf("held numbers: %w", err)
	}

	return Card{ID: id, Winning: winning, Held: held}, nil
}

func parseSet(s string) (Set, error) {
	set := Set{}
	for _, token := range parse.DigitRuns(s) {
		n, err := utils.ToUint(token.Value)
		if err != nil {
			return nil, err
		}
		set[n] = struct{}{}
	}
	return set, nil
}

// Matches is the size of the intersection of winning and held numbers.
func (c Card) Matches() int {
	count := 0
	for n := range c.Held {
		if _, ok := c.Winning[n]; ok {
			count++
		}
	}
	return count
}

// Score is 0 without matches, otherwise 2^(matches-1).
func (c Card) Score() uint64 {
	m := c.Matches()
	if m == 0 {
		return 0
	}
	return 1 << (m - 1)
}

func (c Card) String() string {
	return fmt.Sprintf("Card %d: %s | %s", c.ID, join(c.Winning.Sorted()), join(c.Held.Sorted()))
}

func join(values []uint64) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, fmt.Sprint(v))
	}
	return strings.Join(parts, " ")
}

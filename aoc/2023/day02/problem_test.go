package aoc2023day02

import (
	_ "embed"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/povarna/generative-ai-with-go/aoc/internal/parse"
)

//go:embed testdata/sample.txt
var sample string

func TestSolve(t *testing.T) {
	pair, err := Solve(sample)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pair.Part1 != 8 {
		t.Errorf("part1 = %d, want 8", pair.Part1)
	}
	if pair.Part2 != 2286 {
		t.Errorf("part2 = %d, want 2286", pair.Part2)
	}
}

func TestNewSolver_CustomLimits(t *testing.T) {
	pair, err := NewSolver(Limits{Red: 20, Green: 13, Blue: 15})(sample)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// games 3 and 4 become possible once red 20 and blue 15 are allowed
	if pair.Part1 != 15 {
		t.Errorf("part1 = %d, want 15", pair.Part1)
	}
}

func TestParseRound(t *testing.T) {
	round, err := ParseRound("6 red, 1 blue, 3 green")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if round != (Round{Red: 6, Green: 3, Blue: 1}) {
		t.Errorf("unexpected round %+v", round)
	}
}

func TestParseRound_RepeatedColorAddsUp(t *testing.T) {
	tests := []struct {
		input string
		want  Round
	}{
		{input: "1 red, 2 red", want: Round{Red: 3}},
		{input: "4 blue, 1 green, 5 blue", want: Round{Green: 1, Blue: 9}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			round, err := ParseRound(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if round != tt.want {
				t.Errorf("ParseRound(%q) = %+v, want %+v", tt.input, round, tt.want)
			}
		})
	}
}

func TestRound_Max(t *testing.T) {
	a, _ := ParseRound("6 red, 1 blue, 3 green")
	b, _ := ParseRound("6 red, 2 blue, 1 green")

	if got := a.Max(b); got != (Round{Red: 6, Green: 3, Blue: 2}) {
		t.Errorf("Max = %+v", got)
	}
}

func TestParseGame(t *testing.T) {
	game, err := ParseGame("Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Game{
		ID: 1,
		Rounds: []Round{
			{Red: 4, Green: 0, Blue: 3},
			{Red: 1, Green: 2, Blue: 6},
			{Red: 0, Green: 2, Blue: 0},
		},
	}
	if diff := cmp.Diff(want, game); diff != "" {
		t.Errorf("ParseGame mismatch (-want +got):\n%s", diff)
	}
	if game.MinSet().Power() != 48 {
		t.Errorf("power = %d, want 48", game.MinSet().Power())
	}
}

func TestGame_RoundTrip(t *testing.T) {
	games, err := parseInput(sample)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, game := range games {
		again, err := ParseGame(game.String())
		if err != nil {
			t.Fatalf("re-parsing %q: %v", game.String(), err)
		}
		if diff := cmp.Diff(game, again); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestParseInput_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		semantic bool
	}{
		{name: "missing colon", input: "Game 1 3 blue"},
		{name: "missing id", input: "Game : 3 blue"},
		{name: "wrong header", input: "Card 1: 3 blue"},
		{name: "bad count", input: "Game 1: x blue"},
		{name: "empty round", input: "Game 1: 3 blue;"},
		{name: "unknown color", input: "Game 1: 3 purple", semantic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Solve(tt.input)

			var pe *parse.ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected ParseError, got %v", err)
			}
			if pe.Line != 1 || pe.Text != tt.input {
				t.Errorf("error should reference the line, got %+v", pe)
			}

			var se *parse.SemanticError
			if errors.As(err, &se) != tt.semantic {
				t.Errorf("SemanticError present = %v, want %v", !tt.semantic, tt.semantic)
			}
		})
	}
}

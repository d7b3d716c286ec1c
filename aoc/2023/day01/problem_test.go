package aoc2023day01

import (
	_ "embed"
	"errors"
	"testing"

	"github.com/povarna/generative-ai-with-go/aoc/internal/parse"
)

//go:embed testdata/sample1.txt
var sample1 string

//go:embed testdata/sample2.txt
var sample2 string

func TestPart1(t *testing.T) {
	got, err := part1(sample1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 142 {
		t.Errorf("part1 = %d, want 142", got)
	}
}

func TestPart2(t *testing.T) {
	got, err := part2(sample2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 281 {
		t.Errorf("part2 = %d, want 281", got)
	}
}

func TestSolve(t *testing.T) {
	pair, err := Solve(sample1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pair.Part1 != 142 || pair.Part2 != 142 {
		t.Errorf("Solve = %v, want (142, 142)", pair)
	}
}

func TestPart2_Lines(t *testing.T) {
	tests := []struct {
		line string
		want uint64
	}{
		{line: "two1nine", want: 29},
		{line: "eightwothree", want: 83},
		{line: "twone", want: 21},
		{line: "oneight", want: 18},
		{line: "7", want: 77},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := part2(tt.line)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("part2(%q) = %d, want %d", tt.line, got, tt.want)
			}
		})
	}
}

func TestPart1_NoDigit(t *testing.T) {
	_, err := part1("12\neightwothree\n")

	var pe *parse.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if pe.Line != 2 || pe.Text != "eightwothree" {
		t.Errorf("error should reference line 2, got %+v", pe)
	}
}

func TestSolve_FailsWithoutPartialResult(t *testing.T) {
	pair, err := Solve("abc")
	if err == nil {
		t.Fatal("expected error")
	}
	if pair.Part1 != 0 || pair.Part2 != 0 {
		t.Errorf("expected zero pair, got %v", pair)
	}
}

func TestSolve_ZeroDigitIsRejected(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "leading zero", input: "0abc5\n"},
		{name: "spelled line with zero", input: "zero0nine\n"},
		{name: "trailing zero", input: "12\nabc0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pair, err := Solve(tt.input)

			var pe *parse.ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected ParseError, got %v", err)
			}
			var se *parse.SemanticError
			if !errors.As(err, &se) || se.Token != "0" {
				t.Errorf("expected SemanticError for token 0, got %v", err)
			}
			if pair.Part1 != 0 || pair.Part2 != 0 {
				t.Errorf("expected zero pair, got %v", pair)
			}
		})
	}
}

func TestReadDigit(t *testing.T) {
	if v, err := readDigit("seven"); err != nil || v != 7 {
		t.Errorf("readDigit(seven) = %d, %v", v, err)
	}
	if v, err := readDigit("4"); err != nil || v != 4 {
		t.Errorf("readDigit(4) = %d, %v", v, err)
	}

	for _, token := range []string{"ten", "0"} {
		_, err := readDigit(token)
		var se *parse.SemanticError
		if !errors.As(err, &se) || se.Token != token {
			t.Errorf("expected SemanticError for %s, got %v", token, err)
		}
	}
}

package aoc2023day03

import (
	"fmt"
	"strings"

	"github.com/povarna/generative-ai-with-go/aoc/internal/parse"
	"github.com/povarna/generative-ai-with-go/aoc/internal/solution"
	"github.com/povarna/generative-ai-with-go/aoc/utils"
)

const (
	symbols = "+/-$=&#%@*"
	gear    = '*'
	empty   = '.'
)

// Coordinate is one cell of the engine schematic.
type Coordinate struct {
	Row  int
	Col  int
	Rows int
	Cols int
}

// IsAdjacent reports whether the Chebyshev distance between c and other is
// at most 1. A cell is adjacent to itself.
func (c Coordinate) IsAdjacent(other Coordinate) bool {
	return max(abs(c.Row-other.Row), abs(c.Col-other.Col)) <= 1
}

type Number struct {
	Value       uint64
	Coordinates []Coordinate
}

func (n Number) IsAdjacent(c Coordinate) bool {
	for _, coord := range n.Coordinates {
		if coord.IsAdjacent(c) {
			return true
		}
	}
	return false
}

type Symbol struct {
	Value      rune
	Coordinate Coordinate
}

func (s Symbol) IsAdjacent(n Number) bool {
	return n.IsAdjacent(s.Coordinate)
}

// GearRatio returns the product of the two numbers next to a '*' symbol.
// Any other symbol, or a '*' touching a different count of numbers, has no ratio.
func (s Symbol) GearRatio(numbers []Number) (uint64, bool) {
	if s.Value != gear {
		return 0, false
	}

	var candidates []Number
	for _, n := range numbers {
		if s.IsAdjacent(n) {
			candidates = append(candidates, n)
		}
	}
	if len(candidates) != 2 {
		return 0, false
	}

	return candidates[0].Value * candidates[1].Value, true
}

type Schema struct {
	Numbers []Number
	Symbols []Symbol
}

func Solve(input string) (solution.Pair, error) {
	schema, err := ParseSchema(input)
	if err != nil {
		return solution.Pair{}, err
	}
	return solution.Pair{
		Part1: part1(schema),
		Part2: part2(schema),
	}, nil
}

func part1(schema Schema) uint64 {
	var total uint64
	for _, n := range schema.Numbers {
		for _, s := range schema.Symbols {
			if n.IsAdjacent(s.Coordinate) {
				total += n.Value
				break
			}
		}
	}
	return total
}

func part2(schema Schema) uint64 {
	var total uint64
	for _, s := range schema.Symbols {
		if ratio, ok := s.GearRatio(schema.Numbers); ok {
			total += ratio
		}
	}
	return total
}

// ParseSchema scans the grid line by line. Rows and columns are tracked
// directly, so line terminators never shift a coordinate.
func ParseSchema(input string) (Schema, error) {
	lines := utils.Lines(input)
	if len(lines) == 0 {
		return Schema{}, parse.NewParseError(0, "", "empty schema", nil)
	}

	rows := len(lines)
	cols := len(lines[0])
	schema := Schema{}

	for row, line := range lines {
		// Cols comes from the first row; a ragged row would break Col < Cols,
		// so it is rejected even though the grid itself could still be scanned.
		if len(line) != cols {
			return Schema{}, parse.NewParseError(row+1, line,
				fmt.Sprintf("expected %d columns, got %d", cols, len(line)), nil)
		}

		at := func(col int) Coordinate {
			return Coordinate{Row: row, Col: col, Rows: rows, Cols: cols}
		}

		start := -1
		flush := func(end int) error {
			if start < 0 {
				return nil
			}
			value, err := utils.ToUint(line[start:end])
			if err != nil {
				return parse.NewParseError(row+1, line, "invalid number", err)
			}
			number := Number{Value: value}
			for col := start; col < end; col++ {
				number.Coordinates = append(number.Coordinates, at(col))
			}
			schema.Numbers = append(schema.Numbers, number)
			start = -1
			return nil
		}

		for col := 0; col < cols; col++ {
			c := line[col]
			if c >= '0' && c <= '9' {
				if start < 0 {
					start = col
				}
				continue
			}
			if err := flush(col); err != nil {
				return Schema{}, err
			}
			if c == empty {
				continue
			}
			if !strings.ContainsRune(symbols, rune(c)) {
				return Schema{}, parse.NewParseError(row+1, line,
					fmt.Sprintf("unrecognised symbol %q at column %d", c, col+1), nil)
			}
			schema.Symbols = append(schema.Symbols, Symbol{Value: rune(c), Coordinate: at(col)})
		}
		if err := flush(cols); err != nil {
			return Schema{}, err
		}
	}

	return schema, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

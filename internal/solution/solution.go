package solution

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

var ErrUnknownDay = errors.New("no solver registered for day")

// Pair holds the answers for both parts of a day.
type Pair struct {
	Part1 uint64 `json:"part1"`
	Part2 uint64 `json:"part2"`
}

func (p Pair) String() string {
	return fmt.Sprintf("(%d, %d)", p.Part1, p.Part2)
}

// Solver turns a day's raw input into its answers.
type Solver func(input string) (Pair, error)

// Report is the outcome of running one day.
type Report struct {
	Day      int           `json:"day"`
	Pair     Pair          `json:"pair"`
	Duration time.Duration `json:"duration_ns"`
}

type Registry struct {
	solvers map[int]Solver
}

func NewRegistry() *Registry {
	return &Registry{
		solvers: make(map[int]Solver),
	}
}

// Register adds a solver for day. Registering the same day twice panics.
func (r *Registry) Register(day int, solver Solver) {
	if _, ok := r.solvers[day]; ok {
		panic(fmt.Sprintf("duplicate solver registered for day %d", day))
	}
	r.solvers[day] = solver
}

func (r *Registry) Get(day int) (Solver, error) {
	solver, ok := r.solvers[day]
	if !ok {
		return nil, fmt.Errorf("%w %d", ErrUnknownDay, day)
	}
	return solver, nil
}

// Days returns the registered days in ascending order.
func (r *Registry) Days() []int {
	days := make([]int, 0, len(r.solvers))
	for day := range r.solvers {
		days = append(days, day)
	}
	slices.Sort(days)
	return days
}

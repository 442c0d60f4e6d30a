// Package puzzle defines the contract every daily solver implements and a
// registry that maps day numbers to solvers.
package puzzle

import (
	"context"
	"fmt"
	"sort"
	"sync"

	suberrors "github.com/conneroisu/subsea/internal/errors"
)

// Solver solves one day's puzzle from its input lines.
type Solver interface {
	Day() int
	Name() string
	Solve(ctx context.Context, lines []string) (*Result, error)
}

// Part is one labelled answer.
type Part struct {
	Label string `json:"label" yaml:"label"`
	Value int64  `json:"value" yaml:"value"`
}

// Result collects a solver's answers.
type Result struct {
	Day   int    `json:"day" yaml:"day"`
	Name  string `json:"name" yaml:"name"`
	Parts []Part `json:"parts" yaml:"parts"`
}

// NewResult starts a result for solver.
func NewResult(solver Solver) *Result {
	return &Result{Day: solver.Day(), Name: solver.Name()}
}

// Add appends a labelled answer and returns the result for chaining.
func (r *Result) Add(label string, value int64) *Result {
	r.Parts = append(r.Parts, Part{Label: label, Value: value})
	return r
}

// Registry is a concurrency-safe set of solvers keyed by day.
type Registry struct {
	mu      sync.RWMutex
	solvers map[int]Solver
}

// NewRegistry creates a registry holding solvers.
func NewRegistry(solvers ...Solver) *Registry {
	r := &Registry{solvers: make(map[int]Solver)}
	for _, s := range solvers {
		r.Register(s)
	}
	return r
}

// Register adds or replaces the solver for its day.
func (r *Registry) Register(solver Solver) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.solvers[solver.Day()] = solver
}

// Get returns the solver for day.
func (r *Registry) Get(day int) (Solver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	solver, ok := r.solvers[day]
	if !ok {
		return nil, suberrors.NewValidationError(suberrors.ErrCodeUnknownDay, fmt.Sprintf("no solver registered for day %d", day)).
			WithContext("day", day)
	}
	return solver, nil
}

// Days returns the registered days in ascending order.
func (r *Registry) Days() []int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	days := make([]int, 0, len(r.solvers))
	for day := range r.solvers {
		days = append(days, day)
	}
	sort.Ints(days)
	return days
}

// Solvers returns the registered solvers ordered by day.
func (r *Registry) Solvers() []Solver {
	days := r.Days()

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Solver, 0, len(days))
	for _, day := range days {
		out = append(out, r.solvers[day])
	}
	return out
}

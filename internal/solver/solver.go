package solver

import (
	"fmt"
	"time"

	"github.com/karimzakaria/timetabler/pkg/model"
)

// DefaultTimeout bounds an optimize run when the caller does not set one.
const DefaultTimeout = 300 * time.Second

// Solver is the constraint-satisfaction engine. One Solver may run Solve
// any number of times; the derived lookups and domain cache are shared
// across runs since they depend only on the static input.
type Solver struct {
	index *entityIndex

	// Progress, when set, receives the number of unscheduled
	// section-classes at every search frame.
	Progress func(remaining int)
}

// New builds the entity index from validated input. It fails when the
// curriculum demands something the entity set cannot express at all, such
// as a year with no sections.
func New(data model.TimetableData) (*Solver, error) {
	index, err := newEntityIndex(data)
	if err != nil {
		return nil, err
	}
	return &Solver{index: index}, nil
}

// Solve runs the backtracking search. In find-first mode it returns the
// first feasible timetable; in optimize mode it explores alternatives until
// exhaustion or timeout and returns the best-scoring one found. found is
// false when no complete timetable exists (or none was found in time),
// which is an outcome, not an error. Any panic escaping the search is
// recovered here, once, and surfaced as a single wrapped failure.
func (solver *Solver) Solve(mode model.Mode, timeout time.Duration) (solution model.Solution, found bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			solution, found = model.Solution{}, false
			err = fmt.Errorf("solver failure: %v", r)
		}
	}()

	if mode != model.FindFirst && mode != model.Optimize {
		return model.Solution{}, false, fmt.Errorf("unknown solver mode %q", mode)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	state := newSearchState(solver.index, mode, time.Now().Add(timeout), solver.Progress)

	switch mode {
	case model.FindFirst:
		if !state.backtrack() {
			return model.Solution{}, false, nil
		}
		return solver.index.formatSolution(state.assignment), true, nil
	default:
		state.backtrack()
		if !state.hasBest {
			return model.Solution{}, false, nil
		}
		return solver.index.formatSolution(state.best), true, nil
	}
}

// formatSolution converts the internal assignment into the externally
// consumed schedule representation and scores it.
func (index *entityIndex) formatSolution(assignment []placement) model.Solution {
	schedule := index.formatSchedule(assignment)
	return model.Solution{
		Schedule: schedule,
		Score:    calculateScore(schedule),
	}
}

func (index *entityIndex) formatSchedule(assignment []placement) []model.ScheduledClass {
	schedule := make([]model.ScheduledClass, 0, len(assignment))
	for _, placed := range assignment {
		schedule = append(schedule, model.ScheduledClass{
			Course:     placed.course,
			TimeSlot:   placed.domain.slot,
			Room:       placed.domain.room,
			Instructor: placed.domain.instructor,
			Sections:   placed.sections.sorted(),
		})
	}
	return schedule
}

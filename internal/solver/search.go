package solver

import (
	"time"

	"github.com/karimzakaria/timetabler/pkg/model"
)

// searchState owns one depth-first run: the growing assignment, the
// pending-work state, and (in optimize mode) the best complete timetable
// recorded so far. The search is strictly sequential; branch isolation is
// guaranteed by an undo discipline rather than copying, and the cancel flag
// is plain shared state with the search loop as its only writer.
type searchState struct {
	index    *entityIndex
	mode     model.Mode
	deadline time.Time
	progress func(remaining int)

	assignment []placement
	pending    map[courseYear]sectionSet

	cancelled bool
	best      []placement
	bestScore float64
	hasBest   bool
}

func newSearchState(index *entityIndex, mode model.Mode, deadline time.Time, progress func(remaining int)) *searchState {
	return &searchState{
		index:    index,
		mode:     mode,
		deadline: deadline,
		progress: progress,
		pending:  index.initialPending(),
	}
}

func (state *searchState) expired() bool {
	if state.cancelled {
		return true
	}
	if state.mode == model.Optimize && time.Now().After(state.deadline) {
		state.cancelled = true
	}
	return state.cancelled
}

// backtrack is the recursive search. In find-first mode the return value
// propagates the first completion straight up; in optimize mode completions
// are recorded and false is returned to force exploration of the remaining
// alternatives.
func (state *searchState) backtrack() bool {
	if state.mode == model.Optimize && state.expired() {
		return false
	}

	remaining := 0
	for _, sections := range state.pending {
		remaining += len(sections)
	}
	if state.progress != nil {
		state.progress(remaining)
	}

	if remaining == 0 {
		if state.mode == model.FindFirst {
			return true
		}
		state.recordIfBest()
		return false
	}

	next, ok := state.index.selectNextDemand(state.pending)
	if !ok || len(next.domains) == 0 {
		return false
	}

	course := state.index.courses[next.demand.course]
	pendingSections := state.pending[next.demand]

	for _, domain := range next.domains {
		if state.mode == model.Optimize && state.expired() {
			return false
		}

		bundles := newGroupingIterator(pendingSections, domain.room)
		for bundle, more := bundles.next(); more; bundle, more = bundles.next() {
			if state.mode == model.Optimize && state.expired() {
				return false
			}

			candidate := placement{
				course:   course,
				year:     next.demand.year,
				sections: newSectionSet(bundle...),
				domain:   domain,
			}
			if consistent, _ := isConsistent(candidate, state.assignment); !consistent {
				continue
			}

			state.assignment = append(state.assignment, candidate)
			state.pending[next.demand] = pendingSections.minus(bundle)

			if state.backtrack() && state.mode == model.FindFirst {
				// Leave the trail in place: the assignment is the result.
				return true
			}

			state.pending[next.demand] = pendingSections
			state.assignment = state.assignment[:len(state.assignment)-1]
		}
	}

	return false
}

// recordIfBest scores the completed assignment and keeps it when it beats
// the best seen so far. The kept copy snapshots the placement slice; the
// section sets inside are never mutated, so sharing them is safe.
func (state *searchState) recordIfBest() {
	score := calculateScore(state.index.formatSchedule(state.assignment))
	if state.hasBest && score >= state.bestScore {
		return
	}
	state.best = append([]placement(nil), state.assignment...)
	state.bestScore = score
	state.hasBest = true
}

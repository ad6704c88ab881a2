package solver

import (
	"slices"

	"github.com/karimzakaria/timetabler/pkg/model"
	"github.com/samber/lo"
)

// standardSectionSize is the per-section enrollment unit used for room
// capacity planning; room capacity divided by it bounds how many sections
// may share one physical session.
const standardSectionSize = 15

// groupingIterator lazily enumerates every legal co-teaching bundle of
// pending sections for one candidate domain. Sections of different group
// numbers are never mixed. Within a group, bundles are produced largest
// first so that candidates consuming the most remaining work are tried
// before smaller ones, and combinations of equal size are produced in
// lexicographic order over the group's canonical section order.
//
// The iterator is single-pass: once next returns false it stays exhausted.
type groupingIterator struct {
	groups [][]model.Section // partition by group number, ascending

	groupIdx int
	size     int   // current bundle size, counts down to 1
	combo    []int // current combination indices into groups[groupIdx]
	maxSize  int
	started  bool
	done     bool
}

func newGroupingIterator(pending sectionSet, room *model.Room) *groupingIterator {
	iterator := &groupingIterator{}

	if room == nil {
		// Projects take the whole remaining cohort in one bundle.
		if len(pending) > 0 {
			iterator.groups = [][]model.Section{pending.sorted()}
			iterator.groupIdx = -1 // whole-cohort sentinel, see next
		} else {
			iterator.done = true
		}
		return iterator
	}

	byGroup := lo.GroupBy(pending.sorted(), func(section model.Section) uint64 {
		return section.GroupNumber
	})
	groupNumbers := lo.Keys(byGroup)
	slices.Sort(groupNumbers)
	iterator.groups = lo.Map(groupNumbers, func(number uint64, _ int) []model.Section {
		return byGroup[number]
	})

	iterator.maxSize = int(room.Capacity / standardSectionSize)
	iterator.done = len(iterator.groups) == 0
	return iterator
}

func (iterator *groupingIterator) next() ([]model.Section, bool) {
	if iterator.done {
		return nil, false
	}

	// Whole-cohort mode (no room): a single bundle.
	if iterator.groupIdx == -1 {
		iterator.done = true
		return iterator.groups[0], true
	}

	for iterator.groupIdx < len(iterator.groups) {
		group := iterator.groups[iterator.groupIdx]

		if !iterator.started {
			iterator.size = min(iterator.maxSize, len(group))
			iterator.started = true
			if iterator.size >= 1 {
				iterator.combo = firstCombination(iterator.size)
				return pick(group, iterator.combo), true
			}
			// Room too small for even one section of this group.
		} else if nextCombination(iterator.combo, len(group)) {
			return pick(group, iterator.combo), true
		} else if iterator.size > 1 {
			iterator.size--
			iterator.combo = firstCombination(iterator.size)
			return pick(group, iterator.combo), true
		}

		iterator.groupIdx++
		iterator.started = false
	}

	iterator.done = true
	return nil, false
}

func pick(group []model.Section, combo []int) []model.Section {
	return lo.Map(combo, func(index int, _ int) model.Section { return group[index] })
}

func firstCombination(size int) []int {
	combo := make([]int, size)
	for i := range combo {
		combo[i] = i
	}
	return combo
}

// nextCombination advances combo to the next k-combination of indices in
// [0, n) in lexicographic order, returning false when exhausted.
func nextCombination(combo []int, n int) bool {
	k := len(combo)
	for i := k - 1; i >= 0; i-- {
		if combo[i] < n-k+i {
			combo[i]++
			for j := i + 1; j < k; j++ {
				combo[j] = combo[j-1] + 1
			}
			return true
		}
	}
	return false
}

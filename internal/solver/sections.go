package solver

import (
	"slices"

	"github.com/karimzakaria/timetabler/pkg/model"
)

// sectionSet is an immutable-by-convention set of sections. The search never
// mutates a set it has handed out; derived sets are built with minus.
type sectionSet map[model.Section]struct{}

func newSectionSet(sections ...model.Section) sectionSet {
	set := make(sectionSet, len(sections))
	for _, section := range sections {
		set[section] = struct{}{}
	}
	return set
}

func (set sectionSet) contains(section model.Section) bool {
	_, ok := set[section]
	return ok
}

func (set sectionSet) intersects(other sectionSet) bool {
	small, large := set, other
	if len(large) < len(small) {
		small, large = large, small
	}
	for section := range small {
		if large.contains(section) {
			return true
		}
	}
	return false
}

func (set sectionSet) minus(sections []model.Section) sectionSet {
	result := make(sectionSet, len(set))
	for section := range set {
		result[section] = struct{}{}
	}
	for _, section := range sections {
		delete(result, section)
	}
	return result
}

// sorted returns the members ordered by group number then section id, the
// canonical order used everywhere a deterministic traversal is needed.
func (set sectionSet) sorted() []model.Section {
	sections := make([]model.Section, 0, len(set))
	for section := range set {
		sections = append(sections, section)
	}
	slices.SortFunc(sections, func(a, b model.Section) int {
		if a.GroupNumber != b.GroupNumber {
			return int(a.GroupNumber) - int(b.GroupNumber)
		}
		return int(a.ID) - int(b.ID)
	})
	return sections
}

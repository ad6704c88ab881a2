package solver

import "github.com/karimzakaria/timetabler/pkg/model"

// Violation names the hard rule a candidate placement breaks.
type Violation string

const (
	NoViolation        Violation = ""
	InstructorConflict Violation = "Instructor Conflict"
	RoomConflict       Violation = "Room Conflict"
	SectionConflict    Violation = "Section Conflict"
	ProjectDayConflict Violation = "Project Day Conflict"
)

// placement binds one variable (course-session + section bundle) to the
// domain value chosen for it.
type placement struct {
	course   model.Course
	year     uint64
	sections sectionSet
	domain   domainValue
}

// isConsistent checks the candidate against every placement already in the
// assignment and reports the first violated hard rule. Evaluation order only
// affects which violation is named, never the verdict.
func isConsistent(candidate placement, assignment []placement) (bool, Violation) {
	if projectDayConflict(candidate, assignment) {
		return false, ProjectDayConflict
	}
	for i := range assignment {
		existing := &assignment[i]
		if instructorConflict(candidate.domain, existing.domain) {
			return false, InstructorConflict
		}
		if roomConflict(candidate.domain, existing.domain) {
			return false, RoomConflict
		}
		if sectionConflict(candidate, existing) {
			return false, SectionConflict
		}
	}
	return true, NoViolation
}

func instructorConflict(proposed, existing domainValue) bool {
	if proposed.instructor == nil || existing.instructor == nil {
		return false
	}
	return proposed.instructor.ID == existing.instructor.ID &&
		proposed.slot.ID == existing.slot.ID
}

func roomConflict(proposed, existing domainValue) bool {
	if proposed.room == nil || existing.room == nil {
		return false
	}
	return proposed.room.ID == existing.room.ID &&
		proposed.slot.ID == existing.slot.ID
}

func sectionConflict(candidate placement, existing *placement) bool {
	if candidate.domain.slot.ID != existing.domain.slot.ID {
		return false
	}
	return candidate.sections.intersects(existing.sections)
}

// projectDayConflict enforces year-wide day exclusivity for Project
// sessions: a Project reserves its year's whole day, so no other class of
// that year may share the day, in either direction. Unlike the pairwise
// resource clashes this scans the full assignment regardless of time slot
// overlap.
func projectDayConflict(candidate placement, assignment []placement) bool {
	candidateIsProject := candidate.course.Type == model.Project
	for i := range assignment {
		existing := &assignment[i]
		if !candidateIsProject && existing.course.Type != model.Project {
			continue
		}
		if candidate.year == existing.year &&
			candidate.domain.slot.Day == existing.domain.slot.Day {
			return true
		}
	}
	return false
}

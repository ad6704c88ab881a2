package solver

import (
	"fmt"

	"github.com/karimzakaria/timetabler/pkg/model"
	"github.com/samber/lo"
)

// courseYear identifies one curriculum demand: a course-session that must be
// delivered to every section of one academic year. A course required by two
// years yields two independent demands, since sections of different years
// are never co-taught.
type courseYear struct {
	course model.CourseKey
	year   uint64
}

// entityIndex holds the fast lookup structures derived once from the
// validated input. Everything in it is static for the whole search.
type entityIndex struct {
	data model.TimetableData

	courses     map[model.CourseKey]model.Course
	curriculum  map[uint64][]string           // year -> required course ids
	sections    map[uint64][]model.Section    // year -> sections
	instructors map[string][]model.Instructor // course id -> qualified instructors
	rooms       map[model.SessionType][]model.Room

	// demandOrder freezes the scan order of demands so that variable
	// selection (and with it the whole search) is deterministic.
	demandOrder []courseYear
	pending     map[courseYear]sectionSet

	domainCache map[model.CourseKey][]domainValue
}

func newEntityIndex(data model.TimetableData) (*entityIndex, error) {
	index := &entityIndex{
		data:        data,
		courses:     make(map[model.CourseKey]model.Course),
		curriculum:  make(map[uint64][]string),
		sections:    make(map[uint64][]model.Section),
		instructors: make(map[string][]model.Instructor),
		rooms:       make(map[model.SessionType][]model.Room),
		pending:     make(map[courseYear]sectionSet),
		domainCache: make(map[model.CourseKey][]domainValue),
	}

	for _, course := range data.Courses {
		index.courses[course.Key()] = course
	}
	for _, rule := range data.Curriculum {
		index.curriculum[rule.Year] = append(index.curriculum[rule.Year], rule.CourseID)
	}
	for _, section := range data.Sections {
		index.sections[section.Year] = append(index.sections[section.Year], section)
	}
	for _, instructor := range data.Instructors {
		for _, qualification := range instructor.Qualifications {
			index.instructors[qualification] = append(index.instructors[qualification], instructor)
		}
	}
	for _, room := range data.Rooms {
		for _, roomType := range room.Types {
			index.rooms[roomType] = append(index.rooms[roomType], room)
		}
	}

	// Build the pending-work state: one demand per (required course session,
	// year). Curriculum input order is preserved.
	for _, rule := range data.Curriculum {
		sectionsForYear := index.sections[rule.Year]
		if len(sectionsForYear) == 0 {
			return nil, fmt.Errorf("no sections exist for curriculum year %v (course %q)", rule.Year, rule.CourseID)
		}

		matched := false
		for _, sessionType := range model.SessionTypes {
			key := model.CourseKey{ID: rule.CourseID, Type: sessionType}
			course, ok := index.courses[key]
			if !ok {
				continue
			}
			matched = true
			demand := courseYear{course: course.Key(), year: rule.Year}
			if _, ok := index.pending[demand]; ok {
				continue
			}
			index.demandOrder = append(index.demandOrder, demand)
			index.pending[demand] = newSectionSet(sectionsForYear...)
		}
		if !matched {
			return nil, fmt.Errorf("curriculum course %q for year %v has no schedulable sessions", rule.CourseID, rule.Year)
		}
	}

	return index, nil
}

// initialPending returns a fresh copy of the pending-work state so that one
// index can back several solve runs.
func (index *entityIndex) initialPending() map[courseYear]sectionSet {
	return lo.MapValues(index.pending, func(set sectionSet, _ courseYear) sectionSet {
		return set.minus(nil)
	})
}

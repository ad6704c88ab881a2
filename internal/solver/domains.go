package solver

import (
	"github.com/karimzakaria/timetabler/pkg/model"
	"github.com/samber/lo"
)

// domainValue is one concrete assignment candidate: a time slot plus the
// room and instructor delivering the session. Room and instructor are nil
// exactly for Project sessions, which need no physical resource.
type domainValue struct {
	slot       model.TimeSlot
	room       *model.Room
	instructor *model.Instructor
}

// validDomains enumerates every legal (slot, room, instructor) triple for
// the course. The result depends only on static data, never on the partial
// assignment, so it is computed once per course key and cached.
func (index *entityIndex) validDomains(key model.CourseKey) []domainValue {
	if domains, ok := index.domainCache[key]; ok {
		return domains
	}
	domains := index.buildDomains(index.courses[key])
	index.domainCache[key] = domains
	return domains
}

func (index *entityIndex) buildDomains(course model.Course) []domainValue {
	if course.Type == model.Project {
		return lo.Map(index.data.TimeSlots, func(slot model.TimeSlot, _ int) domainValue {
			return domainValue{slot: slot}
		})
	}

	rooms := lo.Filter(index.rooms[course.Type], func(room model.Room, _ int) bool {
		return room.Hosts(course.Type)
	})

	var instructors []model.Instructor
	switch course.Type {
	case model.Lecture:
		instructors = lo.Filter(index.instructors[course.ID], func(instructor model.Instructor, _ int) bool {
			return instructor.Role == model.Professor || instructor.Role == model.Doctor
		})
	case model.Lab, model.Tutorial:
		instructors = lo.Filter(index.instructors[course.ID], func(instructor model.Instructor, _ int) bool {
			return instructor.Role == model.TeachingAssistant
		})
	}

	// Either resource pool being empty makes the course structurally
	// unschedulable: no domain exists regardless of the partial assignment.
	if len(rooms) == 0 || len(instructors) == 0 {
		return nil
	}

	domains := make([]domainValue, 0, len(index.data.TimeSlots)*len(rooms)*len(instructors))
	for _, slot := range index.data.TimeSlots {
		for i := range rooms {
			for j := range instructors {
				domains = append(domains, domainValue{
					slot:       slot,
					room:       &rooms[i],
					instructor: &instructors[j],
				})
			}
		}
	}
	return domains
}

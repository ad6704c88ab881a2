package model

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

func InputFromJson(file string) (TimetableData, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return TimetableData{}, err
	}
	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return TimetableData{}, err
	}

	var data TimetableData
	if err := mapstructure.Decode(inputJson, &data); err != nil {
		return TimetableData{}, err
	}
	return data, data.Validate()
}

// Validate checks vocabulary fields and referential integrity. The solver
// assumes both hold and never re-checks them.
func (data TimetableData) Validate() error {
	courseKeys := make(map[CourseKey]bool)
	for _, course := range data.Courses {
		if !lo.Contains(SessionTypes, course.Type) {
			return fmt.Errorf("course %q has unknown session type %q", course.ID, course.Type)
		}
		if courseKeys[course.Key()] {
			return fmt.Errorf("duplicate course %q (%v)", course.ID, course.Type)
		}
		courseKeys[course.Key()] = true
	}

	courseIDs := lo.Uniq(lo.Map(data.Courses, func(course Course, _ int) string { return course.ID }))

	for _, instructor := range data.Instructors {
		if !lo.Contains(InstructorRoles, instructor.Role) {
			return fmt.Errorf("instructor %q has unknown role %q", instructor.Name, instructor.Role)
		}
		for _, qualification := range instructor.Qualifications {
			if !lo.Contains(courseIDs, qualification) {
				return fmt.Errorf("instructor %q is qualified for unknown course %q", instructor.Name, qualification)
			}
		}
	}

	for _, room := range data.Rooms {
		for _, roomType := range room.Types {
			if !lo.Contains(SessionTypes, roomType) {
				return fmt.Errorf("room %v has unknown session type %q", room.ID, roomType)
			}
		}
	}

	for _, slot := range data.TimeSlots {
		if !lo.Contains(Days, slot.Day) {
			return fmt.Errorf("time slot %v has unknown day %q", slot.ID, slot.Day)
		}
	}

	for _, rule := range data.Curriculum {
		if !lo.Contains(courseIDs, rule.CourseID) {
			return fmt.Errorf("curriculum rule for year %v references unknown course %q", rule.Year, rule.CourseID)
		}
	}

	return nil
}

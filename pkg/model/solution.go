package model

import "encoding/json"

// Mode selects the search strategy: stop at the first feasible timetable or
// keep searching for the best-scoring one until exhaustion or timeout.
type Mode string

const (
	FindFirst Mode = "find_first"
	Optimize  Mode = "optimize"
)

// ScheduledClass is one row of the final timetable: a course-session taught
// to a bundle of sections at a slot, in a room, by an instructor. Room and
// Instructor are nil exactly when the course's session type is Project.
type ScheduledClass struct {
	Course     Course      `json:"course"`
	TimeSlot   TimeSlot    `json:"timeslot"`
	Room       *Room       `json:"room"`
	Instructor *Instructor `json:"instructor"`
	Sections   []Section   `json:"sections"`
}

// Year returns the academic year the class belongs to. All sections of one
// class share a year since bundles never cross curriculum years.
func (cls ScheduledClass) Year() uint64 {
	return cls.Sections[0].Year
}

// Solution is a complete, consistent timetable plus its soft-constraint
// score (lower is better).
type Solution struct {
	Schedule []ScheduledClass `json:"schedule"`
	Score    float64          `json:"score"`
}

func (solution Solution) ToJson() ([]byte, error) {
	return json.MarshalIndent(solution, "", "  ")
}

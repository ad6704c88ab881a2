package model

import "slices"

type SessionType string

const (
	Lecture  SessionType = "Lecture"
	Lab      SessionType = "Lab"
	Tutorial SessionType = "Tutorial"
	Project  SessionType = "Project"
)

var SessionTypes = []SessionType{Lecture, Lab, Tutorial, Project}

type DayOfWeek string

const (
	Sunday    DayOfWeek = "Sunday"
	Monday    DayOfWeek = "Monday"
	Tuesday   DayOfWeek = "Tuesday"
	Wednesday DayOfWeek = "Wednesday"
	Thursday  DayOfWeek = "Thursday"
)

// Days holds the academic week in chronological order.
var Days = []DayOfWeek{Sunday, Monday, Tuesday, Wednesday, Thursday}

type InstructorRole string

const (
	Professor         InstructorRole = "Professor"
	Doctor            InstructorRole = "Doctor"
	TeachingAssistant InstructorRole = "TeachingAssistant"
)

var InstructorRoles = []InstructorRole{Professor, Doctor, TeachingAssistant}

// CourseKey identifies a schedulable course-session. A subject may need both
// a Lecture and a Lab entry under the same course id; they are distinct keys.
type CourseKey struct {
	ID   string
	Type SessionType
}

type Course struct {
	ID   string      `json:"course_id"`
	Name string      `json:"course_name"`
	Type SessionType `json:"type"`
}

func (c Course) Key() CourseKey {
	return CourseKey{ID: c.ID, Type: c.Type}
}

type Instructor struct {
	ID             uint64         `json:"instructor_id"`
	Name           string         `json:"name"`
	Role           InstructorRole `json:"role"`
	Qualifications []string       `json:"qualifications"` // Course ids the instructor may teach
}

func (i Instructor) QualifiedFor(courseID string) bool {
	return slices.Contains(i.Qualifications, courseID)
}

type Room struct {
	ID       uint64        `json:"room_id"`
	Types    []SessionType `json:"types"`
	Capacity uint64        `json:"capacity"`
}

func (r Room) Hosts(sessionType SessionType) bool {
	return slices.Contains(r.Types, sessionType)
}

// TimeSlot is one discrete slot of the weekly grid. Start and end times are
// "HH:MM" strings; the canonical daily start times are known to the scorer.
type TimeSlot struct {
	ID        uint64    `json:"time_slot_id"`
	Day       DayOfWeek `json:"day"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
}

// Section is a plain comparable value: two sections with identical fields are
// the same section, which makes Section directly usable as a map key.
type Section struct {
	ID           uint64 `json:"section_id"`
	GroupNumber  uint64 `json:"group_number"`
	Year         uint64 `json:"year"`
	StudentCount uint64 `json:"student_count"`
}

// Curriculum states that every section of Year must take the course.
type Curriculum struct {
	Year     uint64 `json:"year"`
	CourseID string `json:"course_id"`
}

// TimetableData is the validated entity set the solver consumes.
type TimetableData struct {
	Courses     []Course
	Instructors []Instructor
	Rooms       []Room
	TimeSlots   []TimeSlot
	Sections    []Section
	Curriculum  []Curriculum
}

// Package csvio loads the timetable entity tables from a directory of CSV
// files and exports solved schedules. The solver core never touches the
// file system; this package is its data-loading collaborator.
package csvio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/samber/lo"

	"github.com/karimzakaria/timetabler/pkg/model"
)

// Expected file names inside the data directory.
const (
	CoursesFile     = "courses.csv"
	InstructorsFile = "instructors.csv"
	RoomsFile       = "rooms.csv"
	TimeSlotsFile   = "timeslots.csv"
	SectionsFile    = "sections.csv"
	CurriculumFile  = "curriculum.csv"
)

type courseRow struct {
	ID    string `csv:"course_id"`
	Name  string `csv:"course_name"`
	Types string `csv:"type"` // comma-separated session types
}

type instructorRow struct {
	ID             uint64 `csv:"instructor_id"`
	Name           string `csv:"name"`
	Role           string `csv:"role"`
	Qualifications string `csv:"qualifications"` // comma-separated course ids
}

type roomRow struct {
	ID       uint64 `csv:"room_id"`
	Types    string `csv:"type"` // comma-separated session types
	Capacity uint64 `csv:"capacity"`
}

type timeSlotRow struct {
	ID        uint64 `csv:"time_slot_id"`
	Day       string `csv:"day"`
	StartTime string `csv:"start_time"`
	EndTime   string `csv:"end_time"`
}

type sectionRow struct {
	ID           uint64 `csv:"section_id"`
	GroupNumber  uint64 `csv:"group_number"`
	Year         uint64 `csv:"year"`
	StudentCount uint64 `csv:"student_count"`
}

type curriculumRow struct {
	Year     uint64 `csv:"year"`
	CourseID string `csv:"course_id"`
}

// LoadTimetableData reads all six entity tables from dir and returns the
// validated entity set, or a load error naming the offending file.
func LoadTimetableData(dir string) (model.TimetableData, error) {
	var data model.TimetableData

	courses, err := readRows[courseRow](filepath.Join(dir, CoursesFile))
	if err != nil {
		return model.TimetableData{}, err
	}
	// A subject listing several session types becomes one Course per type.
	for _, row := range courses {
		for _, sessionType := range splitList(row.Types) {
			data.Courses = append(data.Courses, model.Course{
				ID:   row.ID,
				Name: row.Name,
				Type: model.SessionType(sessionType),
			})
		}
	}

	instructors, err := readRows[instructorRow](filepath.Join(dir, InstructorsFile))
	if err != nil {
		return model.TimetableData{}, err
	}
	data.Instructors = lo.Map(instructors, func(row instructorRow, _ int) model.Instructor {
		return model.Instructor{
			ID:             row.ID,
			Name:           row.Name,
			Role:           model.InstructorRole(row.Role),
			Qualifications: splitList(row.Qualifications),
		}
	})

	rooms, err := readRows[roomRow](filepath.Join(dir, RoomsFile))
	if err != nil {
		return model.TimetableData{}, err
	}
	data.Rooms = lo.Map(rooms, func(row roomRow, _ int) model.Room {
		return model.Room{
			ID: row.ID,
			Types: lo.Map(splitList(row.Types), func(sessionType string, _ int) model.SessionType {
				return model.SessionType(sessionType)
			}),
			Capacity: row.Capacity,
		}
	})

	timeslots, err := readRows[timeSlotRow](filepath.Join(dir, TimeSlotsFile))
	if err != nil {
		return model.TimetableData{}, err
	}
	data.TimeSlots = lo.Map(timeslots, func(row timeSlotRow, _ int) model.TimeSlot {
		return model.TimeSlot{
			ID:        row.ID,
			Day:       model.DayOfWeek(row.Day),
			StartTime: row.StartTime,
			EndTime:   row.EndTime,
		}
	})

	sections, err := readRows[sectionRow](filepath.Join(dir, SectionsFile))
	if err != nil {
		return model.TimetableData{}, err
	}
	data.Sections = lo.Map(sections, func(row sectionRow, _ int) model.Section {
		return model.Section{
			ID:           row.ID,
			GroupNumber:  row.GroupNumber,
			Year:         row.Year,
			StudentCount: row.StudentCount,
		}
	})

	curriculum, err := readRows[curriculumRow](filepath.Join(dir, CurriculumFile))
	if err != nil {
		return model.TimetableData{}, err
	}
	data.Curriculum = lo.Map(curriculum, func(row curriculumRow, _ int) model.Curriculum {
		return model.Curriculum{Year: row.Year, CourseID: row.CourseID}
	})

	return data, data.Validate()
}

func readRows[Row any](path string) ([]Row, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open %v: %w", path, err)
	}
	defer file.Close()

	rows := []Row{}
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("cannot parse %v: %w", path, err)
	}
	return rows, nil
}

// splitList parses a comma-separated cell into its trimmed, non-empty items.
func splitList(value string) []string {
	return lo.FilterMap(strings.Split(value, ","), func(item string, _ int) (string, bool) {
		trimmed := strings.TrimSpace(item)
		return trimmed, trimmed != ""
	})
}

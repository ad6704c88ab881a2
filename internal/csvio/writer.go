package csvio

import (
	"os"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/samber/lo"

	"github.com/karimzakaria/timetabler/pkg/model"
)

type scheduleRow struct {
	Year       uint64 `csv:"year"`
	Day        string `csv:"day"`
	StartTime  string `csv:"start_time"`
	EndTime    string `csv:"end_time"`
	CourseID   string `csv:"course_id"`
	CourseName string `csv:"course_name"`
	Type       string `csv:"type"`
	Instructor string `csv:"instructor"`
	Room       string `csv:"room"`
	Sections   string `csv:"sections"`
}

// ExportSchedule writes the flat schedule as one CSV row per class.
func ExportSchedule(solution model.Solution, path string) error {
	rows := lo.Map(solution.Schedule, func(class model.ScheduledClass, _ int) scheduleRow {
		row := scheduleRow{
			Year:       class.Year(),
			Day:        string(class.TimeSlot.Day),
			StartTime:  class.TimeSlot.StartTime,
			EndTime:    class.TimeSlot.EndTime,
			CourseID:   class.Course.ID,
			CourseName: class.Course.Name,
			Type:       string(class.Course.Type),
			Sections: strings.Join(lo.Map(class.Sections, func(section model.Section, _ int) string {
				return formatUint(section.ID)
			}), ","),
		}
		if class.Instructor != nil {
			row.Instructor = class.Instructor.Name
		}
		if class.Room != nil {
			row.Room = formatUint(class.Room.ID)
		}
		return row
	})

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()
	return gocsv.MarshalFile(&rows, out)
}

// ExportSolutionJson writes the full solution document, the structured form
// handed to storage or download.
func ExportSolutionJson(solution model.Solution, path string) error {
	bytes, err := solution.ToJson()
	if err != nil {
		return err
	}
	return os.WriteFile(path, bytes, 0666)
}

func formatUint(value uint64) string {
	return strconv.FormatUint(value, 10)
}

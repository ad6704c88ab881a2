// Package display pivots a flat solved schedule into per-cohort calendar
// grids and renders them as text. It is the presentation collaborator of
// the solver core.
package display

import (
	"fmt"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/samber/lo"

	"github.com/karimzakaria/timetabler/pkg/model"
)

var roleAliases = map[model.InstructorRole]string{
	model.Professor:         "Prof.",
	model.Doctor:            "Dr.",
	model.TeachingAssistant: "TA",
}

// GridKey identifies one calendar grid: a (year, group number) cohort.
type GridKey struct {
	Year  uint64
	Group uint64
}

// Grid is one cohort's weekly timetable: one row per time slot, one column
// per weekday, cells already formatted for display.
type Grid struct {
	Times []string            // row labels, chronological
	Cells map[string][]string // time label -> one cell per model.Days entry
}

// BuildGrids pivots the schedule into one grid per (year, group) cohort,
// mirroring how students read a timetable.
func BuildGrids(solution model.Solution) map[GridKey]*Grid {
	grids := make(map[GridKey]*Grid)

	for _, class := range solution.Schedule {
		timeLabel := fmt.Sprintf("%v - %v", class.TimeSlot.StartTime, class.TimeSlot.EndTime)
		dayIndex := slices.Index(model.Days, class.TimeSlot.Day)
		if dayIndex < 0 {
			continue
		}

		for _, group := range cohortGroups(class) {
			key := GridKey{Year: class.Year(), Group: group}
			grid, ok := grids[key]
			if !ok {
				grid = &Grid{Cells: make(map[string][]string)}
				grids[key] = grid
			}
			if _, ok := grid.Cells[timeLabel]; !ok {
				grid.Times = append(grid.Times, timeLabel)
				grid.Cells[timeLabel] = make([]string, len(model.Days))
			}
			grid.Cells[timeLabel][dayIndex] = cellContent(class)
		}
	}

	for _, grid := range grids {
		slices.Sort(grid.Times) // "HH:MM - HH:MM" labels sort chronologically
	}
	return grids
}

func cohortGroups(class model.ScheduledClass) []uint64 {
	return lo.Uniq(lo.Map(class.Sections, func(section model.Section, _ int) uint64 {
		return section.GroupNumber
	}))
}

func cellContent(class model.ScheduledClass) string {
	sectionIDs := lo.Uniq(lo.Map(class.Sections, func(section model.Section, _ int) string {
		return fmt.Sprintf("%v", section.ID)
	}))

	instructor := "N/A"
	if class.Instructor != nil {
		instructor = fmt.Sprintf("%v %v", roleAliases[class.Instructor.Role], class.Instructor.Name)
	}
	room := "N/A"
	if class.Room != nil {
		room = fmt.Sprintf("%v", class.Room.ID)
	}

	return fmt.Sprintf("%v (%v) (%v) | %v | Room %v | Sec: %v",
		class.Course.Name, class.Course.ID, class.Course.Type,
		instructor, room, strings.Join(sectionIDs, ", "))
}

// Render writes every grid, sorted by year then group, as aligned text.
func Render(grids map[GridKey]*Grid) string {
	keys := lo.Keys(grids)
	slices.SortFunc(keys, func(a, b GridKey) int {
		if a.Year != b.Year {
			return int(a.Year) - int(b.Year)
		}
		return int(a.Group) - int(b.Group)
	})

	var builder strings.Builder
	for _, key := range keys {
		fmt.Fprintf(&builder, "Year %v, Group %v\n", key.Year, key.Group)

		writer := tabwriter.NewWriter(&builder, 0, 0, 2, ' ', 0)
		fmt.Fprintf(writer, "Time\t%v\n", joinDays())
		for _, timeLabel := range grids[key].Times {
			fmt.Fprintf(writer, "%v\t%v\n", timeLabel, strings.Join(grids[key].Cells[timeLabel], "\t"))
		}
		writer.Flush()
		builder.WriteString("\n")
	}
	return builder.String()
}

func joinDays() string {
	return strings.Join(lo.Map(model.Days, func(day model.DayOfWeek, _ int) string {
		return string(day)
	}), "\t")
}

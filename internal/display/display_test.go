package display

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/karimzakaria/timetabler/pkg/model"
)

func sampleSolution() model.Solution {
	room := model.Room{ID: 7, Types: []model.SessionType{model.Lecture}, Capacity: 30}
	professor := model.Instructor{ID: 1, Name: "Salma Adel", Role: model.Professor}
	return model.Solution{
		Score: 3.4,
		Schedule: []model.ScheduledClass{
			{
				Course:     model.Course{ID: "MATH101", Name: "Calculus", Type: model.Lecture},
				TimeSlot:   model.TimeSlot{ID: 1, Day: model.Sunday, StartTime: "09:00", EndTime: "10:30"},
				Room:       &room,
				Instructor: &professor,
				Sections: []model.Section{
					{ID: 1, GroupNumber: 1, Year: 1, StudentCount: 15},
					{ID: 2, GroupNumber: 1, Year: 1, StudentCount: 14},
				},
			},
			{
				Course:   model.Course{ID: "PROJ1", Name: "First Year Project", Type: model.Project},
				TimeSlot: model.TimeSlot{ID: 5, Day: model.Monday, StartTime: "10:45", EndTime: "12:15"},
				Sections: []model.Section{
					{ID: 3, GroupNumber: 2, Year: 1, StudentCount: 15},
				},
			},
		},
	}
}

func TestBuildGrids(t *testing.T) {
	t.Run("one grid per year and group", func(t *testing.T) {
		grids := BuildGrids(sampleSolution())

		assert.Len(t, grids, 2)
		assert.Contains(t, grids, GridKey{Year: 1, Group: 1})
		assert.Contains(t, grids, GridKey{Year: 1, Group: 2})
	})

	t.Run("cells land on the right day and time", func(t *testing.T) {
		grids := BuildGrids(sampleSolution())

		grid := grids[GridKey{Year: 1, Group: 1}]
		assert.Equal(t, []string{"09:00 - 10:30"}, grid.Times)
		cell := grid.Cells["09:00 - 10:30"][0] // Sunday column
		assert.Contains(t, cell, "Calculus (MATH101) (Lecture)")
		assert.Contains(t, cell, "Prof. Salma Adel")
		assert.Contains(t, cell, "Room 7")
		assert.Contains(t, cell, "Sec: 1, 2")
	})

	t.Run("project cells have no room or instructor", func(t *testing.T) {
		grids := BuildGrids(sampleSolution())

		grid := grids[GridKey{Year: 1, Group: 2}]
		cell := grid.Cells["10:45 - 12:15"][1] // Monday column
		assert.Contains(t, cell, "First Year Project")
		assert.Contains(t, cell, "N/A")
	})
}

func TestRender(t *testing.T) {
	output := Render(BuildGrids(sampleSolution()))

	assert.Contains(t, output, "Year 1, Group 1")
	assert.Contains(t, output, "Year 1, Group 2")
	assert.Contains(t, output, "Sunday")
	assert.Contains(t, output, "Thursday")
	assert.Contains(t, output, "Calculus (MATH101) (Lecture)")
	// Year 1 group 1 precedes group 2.
	assert.Less(t,
		strings.Index(output, "Year 1, Group 1"),
		strings.Index(output, "Year 1, Group 2"))
}

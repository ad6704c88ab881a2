package solver

import "github.com/karimzakaria/timetabler/pkg/model"

// slot builds one time slot; ids are assigned by the caller.
func slot(id uint64, day model.DayOfWeek, start, end string) model.TimeSlot {
	return model.TimeSlot{ID: id, Day: day, StartTime: start, EndTime: end}
}

func section(id, group, year uint64) model.Section {
	return model.Section{ID: id, GroupNumber: group, Year: year, StudentCount: 15}
}

// twoCourseData is a small feasible instance: one year, two sections in one
// group, two lecture courses with one qualified professor each, one lecture
// room, four slots over two days.
func twoCourseData() model.TimetableData {
	return model.TimetableData{
		Courses: []model.Course{
			{ID: "MATH101", Name: "Calculus", Type: model.Lecture},
			{ID: "PHYS101", Name: "Mechanics", Type: model.Lecture},
		},
		Instructors: []model.Instructor{
			{ID: 1, Name: "Salma Adel", Role: model.Professor, Qualifications: []string{"MATH101"}},
			{ID: 2, Name: "Omar Fathy", Role: model.Doctor, Qualifications: []string{"PHYS101"}},
		},
		Rooms: []model.Room{
			{ID: 1, Types: []model.SessionType{model.Lecture}, Capacity: 30},
		},
		TimeSlots: []model.TimeSlot{
			slot(1, model.Sunday, "09:00", "10:30"),
			slot(2, model.Sunday, "10:45", "12:15"),
			slot(3, model.Monday, "09:00", "10:30"),
			slot(4, model.Monday, "10:45", "12:15"),
		},
		Sections: []model.Section{
			section(1, 1, 1),
			section(2, 1, 1),
		},
		Curriculum: []model.Curriculum{
			{Year: 1, CourseID: "MATH101"},
			{Year: 1, CourseID: "PHYS101"},
		},
	}
}

// mixedSessionData exercises every session type across two years: a lecture
// plus lab under the same course id, a tutorial, and a project.
func mixedSessionData() model.TimetableData {
	return model.TimetableData{
		Courses: []model.Course{
			{ID: "CS201", Name: "Data Structures", Type: model.Lecture},
			{ID: "CS201", Name: "Data Structures", Type: model.Lab},
			{ID: "MATH201", Name: "Linear Algebra", Type: model.Tutorial},
			{ID: "PROJ2", Name: "Term Project", Type: model.Project},
			{ID: "HIST101", Name: "History of Science", Type: model.Lecture},
		},
		Instructors: []model.Instructor{
			{ID: 1, Name: "Salma Adel", Role: model.Professor, Qualifications: []string{"CS201", "HIST101"}},
			{ID: 2, Name: "Omar Fathy", Role: model.Doctor, Qualifications: []string{"CS201"}},
			{ID: 3, Name: "Nour Hassan", Role: model.TeachingAssistant, Qualifications: []string{"CS201", "MATH201"}},
			{ID: 4, Name: "Youssef Gamal", Role: model.TeachingAssistant, Qualifications: []string{"MATH201"}},
		},
		Rooms: []model.Room{
			{ID: 1, Types: []model.SessionType{model.Lecture, model.Tutorial}, Capacity: 45},
			{ID: 2, Types: []model.SessionType{model.Lab}, Capacity: 15},
			{ID: 3, Types: []model.SessionType{model.Lecture}, Capacity: 30},
		},
		TimeSlots: []model.TimeSlot{
			slot(1, model.Sunday, "09:00", "10:30"),
			slot(2, model.Sunday, "10:45", "12:15"),
			slot(3, model.Sunday, "12:30", "14:00"),
			slot(4, model.Monday, "09:00", "10:30"),
			slot(5, model.Monday, "10:45", "12:15"),
			slot(6, model.Tuesday, "09:00", "10:30"),
			slot(7, model.Tuesday, "10:45", "12:15"),
			slot(8, model.Wednesday, "09:00", "10:30"),
			slot(9, model.Wednesday, "10:45", "12:15"),
			slot(10, model.Thursday, "09:00", "10:30"),
		},
		Sections: []model.Section{
			section(1, 1, 2),
			section(2, 1, 2),
			section(3, 1, 1),
		},
		Curriculum: []model.Curriculum{
			{Year: 2, CourseID: "CS201"},
			{Year: 2, CourseID: "MATH201"},
			{Year: 2, CourseID: "PROJ2"},
			{Year: 1, CourseID: "HIST101"},
		},
	}
}

func mustIndex(data model.TimetableData) *entityIndex {
	index, err := newEntityIndex(data)
	if err != nil {
		panic(err)
	}
	return index
}

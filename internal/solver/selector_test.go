package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/samber/lo"

	"github.com/karimzakaria/timetabler/pkg/model"
)

func TestSelectNextDemand(t *testing.T) {
	t.Run("picks the most constrained demand", func(t *testing.T) {
		index := mustIndex(mixedSessionData())
		pending := index.initialPending()

		next, ok := index.selectNextDemand(pending)

		assert.True(t, ok)
		// CS201 Lab has a single assistant and a single lab room, the
		// smallest domain of the instance.
		assert.Equal(t, model.CourseKey{ID: "CS201", Type: model.Lab}, next.demand.course)
		assert.Len(t, next.domains, len(index.data.TimeSlots))
	})

	t.Run("completed demands are skipped", func(t *testing.T) {
		index := mustIndex(mixedSessionData())
		pending := index.initialPending()
		labDemand := courseYear{course: model.CourseKey{ID: "CS201", Type: model.Lab}, year: 2}
		pending[labDemand] = newSectionSet()

		next, ok := index.selectNextDemand(pending)

		assert.True(t, ok)
		assert.NotEqual(t, labDemand, next.demand)
	})

	t.Run("dead-end demand is returned immediately with no domains", func(t *testing.T) {
		data := mixedSessionData()
		data.Instructors = lo.Filter(data.Instructors, func(instructor model.Instructor, _ int) bool {
			return instructor.Role != model.TeachingAssistant
		})
		index := mustIndex(data)

		next, ok := index.selectNextDemand(index.initialPending())

		assert.True(t, ok)
		assert.Empty(t, next.domains)
		// The first structurally unschedulable demand in curriculum order.
		assert.Equal(t, model.CourseKey{ID: "CS201", Type: model.Lab}, next.demand.course)
	})

	t.Run("nothing pending means success", func(t *testing.T) {
		index := mustIndex(twoCourseData())
		pending := lo.MapValues(index.initialPending(), func(sectionSet, courseYear) sectionSet {
			return newSectionSet()
		})

		_, ok := index.selectNextDemand(pending)

		assert.False(t, ok)
	})
}

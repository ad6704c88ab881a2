package solver

import (
	"math"
	"slices"

	"github.com/karimzakaria/timetabler/pkg/model"
	"github.com/samber/lo"
)

// Soft-constraint scoring policy. The weights and the canonical slot order
// are fixed constants, not derived from input data.
const (
	gapPenaltyWeight       = 10.0
	undesirableSlotPenalty = 3.0
)

// slotOrder ranks the four canonical daily start times. The first and last
// ordinals mark the undesirable earliest/latest slots of a day.
var slotOrder = map[string]int{
	"09:00": 0,
	"10:45": 1,
	"12:30": 2,
	"14:15": 3,
}

const (
	firstSlotOrdinal = 0
	lastSlotOrdinal  = 3
)

// sectionKey identifies one (year, section) pair for per-student scoring.
type sectionKey struct {
	year uint64
	id   uint64
}

// calculateScore computes the soft-constraint penalty of a complete
// timetable. Lower is better; zero is a perfect schedule.
func calculateScore(schedule []model.ScheduledClass) float64 {
	slotsBySection := make(map[sectionKey][]model.TimeSlot)
	for _, class := range schedule {
		for _, section := range class.Sections {
			key := sectionKey{year: section.Year, id: section.ID}
			slotsBySection[key] = append(slotsBySection[key], class.TimeSlot)
		}
	}

	return studentGapPenalty(slotsBySection) +
		undesirableSlotsPenalty(schedule) +
		distributionPenalty(slotsBySection)
}

// studentGapPenalty charges each idle slot a section sits through between
// two classes on the same day.
func studentGapPenalty(slotsBySection map[sectionKey][]model.TimeSlot) float64 {
	score := 0.0
	for _, slots := range slotsBySection {
		byDay := lo.GroupBy(slots, func(slot model.TimeSlot) model.DayOfWeek { return slot.Day })
		for _, daySlots := range byDay {
			if len(daySlots) < 2 {
				continue
			}
			ordinals := lo.FilterMap(daySlots, func(slot model.TimeSlot, _ int) (int, bool) {
				ordinal, ok := slotOrder[slot.StartTime]
				return ordinal, ok
			})
			slices.Sort(ordinals)
			for i := 0; i < len(ordinals)-1; i++ {
				if gap := ordinals[i+1] - ordinals[i] - 1; gap > 0 {
					score += gapPenaltyWeight * float64(gap)
				}
			}
		}
	}
	return score
}

// undesirableSlotsPenalty charges every class placed in the earliest or
// latest slot of a day.
func undesirableSlotsPenalty(schedule []model.ScheduledClass) float64 {
	count := lo.CountBy(schedule, func(class model.ScheduledClass) bool {
		ordinal, ok := slotOrder[class.TimeSlot.StartTime]
		return ok && (ordinal == firstSlotOrdinal || ordinal == lastSlotOrdinal)
	})
	return float64(count) * undesirableSlotPenalty
}

// distributionPenalty charges uneven spread of a section's classes across
// the week: the population standard deviation of the per-day class counts,
// taken over all five days so that cramming into few days is penalized.
func distributionPenalty(slotsBySection map[sectionKey][]model.TimeSlot) float64 {
	score := 0.0
	for _, slots := range slotsBySection {
		counts := lo.Map(model.Days, func(day model.DayOfWeek, _ int) float64 {
			return float64(lo.CountBy(slots, func(slot model.TimeSlot) bool { return slot.Day == day }))
		})
		score += populationStdDev(counts)
	}
	return score
}

func populationStdDev(values []float64) float64 {
	mean := lo.Sum(values) / float64(len(values))
	variance := lo.SumBy(values, func(value float64) float64 {
		return (value - mean) * (value - mean)
	}) / float64(len(values))
	return math.Sqrt(variance)
}

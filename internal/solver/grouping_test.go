package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/karimzakaria/timetabler/pkg/model"
)

func collectBundles(iterator *groupingIterator) [][]model.Section {
	bundles := [][]model.Section{}
	for bundle, ok := iterator.next(); ok; bundle, ok = iterator.next() {
		bundles = append(bundles, bundle)
	}
	return bundles
}

func TestGroupingIterator(t *testing.T) {
	t.Run("pair fits before singletons", func(t *testing.T) {
		// Arrange
		first, second := section(1, 1, 1), section(2, 1, 1)
		room := model.Room{ID: 1, Types: []model.SessionType{model.Lecture}, Capacity: 2 * standardSectionSize}

		// Act
		bundles := collectBundles(newGroupingIterator(newSectionSet(first, second), &room))

		// Assert
		assert.Equal(t, [][]model.Section{
			{first, second},
			{first},
			{second},
		}, bundles)
	})

	t.Run("combinations of equal size are lexicographic", func(t *testing.T) {
		a, b, c := section(1, 1, 1), section(2, 1, 1), section(3, 1, 1)
		room := model.Room{ID: 1, Capacity: 2 * standardSectionSize}

		bundles := collectBundles(newGroupingIterator(newSectionSet(a, b, c), &room))

		assert.Equal(t, [][]model.Section{
			{a, b}, {a, c}, {b, c},
			{a}, {b}, {c},
		}, bundles)
	})

	t.Run("group numbers are never mixed", func(t *testing.T) {
		first, second := section(1, 1, 1), section(2, 2, 1)
		room := model.Room{ID: 1, Capacity: 10 * standardSectionSize}

		bundles := collectBundles(newGroupingIterator(newSectionSet(first, second), &room))

		assert.Equal(t, [][]model.Section{{first}, {second}}, bundles)
	})

	t.Run("room smaller than one section yields nothing for the group", func(t *testing.T) {
		room := model.Room{ID: 1, Capacity: standardSectionSize - 1}

		bundles := collectBundles(newGroupingIterator(newSectionSet(section(1, 1, 1)), &room))

		assert.Empty(t, bundles)
	})

	t.Run("no room takes the whole cohort once", func(t *testing.T) {
		first, second, third := section(1, 1, 1), section(2, 1, 1), section(3, 2, 1)

		bundles := collectBundles(newGroupingIterator(newSectionSet(first, second, third), nil))

		assert.Equal(t, [][]model.Section{{first, second, third}}, bundles)
	})

	t.Run("no room with empty pending yields nothing", func(t *testing.T) {
		bundles := collectBundles(newGroupingIterator(newSectionSet(), nil))

		assert.Empty(t, bundles)
	})

	t.Run("iterator is exhausted after the last bundle", func(t *testing.T) {
		iterator := newGroupingIterator(newSectionSet(section(1, 1, 1)), nil)

		_, ok := iterator.next()
		assert.True(t, ok)
		_, ok = iterator.next()
		assert.False(t, ok)
		_, ok = iterator.next()
		assert.False(t, ok)
	})
}

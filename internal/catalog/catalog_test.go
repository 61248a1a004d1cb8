package catalog_test

import (
	"testing"

	"fitweek/fitness-tracker/internal/catalog"
	"fitweek/fitness-tracker/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_TrainingDaysHavePlans(t *testing.T) {
	for _, day := range catalog.TrainingDays() {
		plan, ok := catalog.Lookup(day)
		require.True(t, ok, "expected a plan for %s", day)
		assert.NotEmpty(t, plan.Name)
		assert.NotEmpty(t, plan.Exercises)
		for _, ex := range plan.Exercises {
			assert.NotEmpty(t, ex.ID)
			assert.NotEmpty(t, ex.Name)
		}
	}
}

func TestLookup_RestDaysHaveNoPlan(t *testing.T) {
	for _, day := range []string{"Saturday", "Sunday"} {
		_, ok := catalog.Lookup(day)
		assert.False(t, ok, "%s is a rest day", day)
	}
}

func TestLookup_UnknownKeyIsNotAnError(t *testing.T) {
	_, ok := catalog.Lookup("Funday")
	assert.False(t, ok)
	_, ok = catalog.Lookup("")
	assert.False(t, ok)
}

func TestLookupByRoute(t *testing.T) {
	plan, ok := catalog.LookupByRoute("monday")
	require.True(t, ok)
	assert.Equal(t, "monday", plan.ID)

	_, ok = catalog.LookupByRoute("saturday")
	assert.False(t, ok)

	_, ok = catalog.LookupByRoute("")
	assert.False(t, ok)
}

func TestDaily_AppliesEveryDay(t *testing.T) {
	daily := catalog.Daily()
	require.NotEmpty(t, daily.Exercises)
	for _, ex := range daily.Exercises {
		assert.Equal(t, domain.CategoryDaily, ex.Category)
	}
}

func TestCatalog_CategoriesAreFromClosedSet(t *testing.T) {
	valid := map[domain.ExerciseCategory]bool{
		domain.CategoryPrimary:  true,
		domain.CategoryOptional: true,
		domain.CategoryCardio:   true,
		domain.CategoryCircuit:  true,
		domain.CategoryDaily:    true,
	}
	days := append(catalog.TrainingDays(), catalog.DailyKey)
	for _, day := range days {
		plan, ok := catalog.Lookup(day)
		require.True(t, ok)
		for _, ex := range plan.Exercises {
			assert.True(t, valid[ex.Category], "%s/%s has unknown category %q", day, ex.ID, ex.Category)
		}
	}
}

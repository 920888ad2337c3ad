package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoalLabel(t *testing.T) {
	assert.Equal(t, "PCOS-friendly", GoalPCOSFriendly.Label())
	assert.Equal(t, "light & weight-friendly", GoalWeightLoss.Label())
	assert.Equal(t, "high-protein", GoalHighProtein.Label())
	assert.Equal(t, "balanced", GoalBalanced.Label())
	// Unknown values read as balanced.
	assert.Equal(t, "balanced", Goal("keto").Label())
}

func TestDietLabel(t *testing.T) {
	assert.Equal(t, "vegetarian", DietVegetarian.Label())
	assert.Equal(t, "vegan", DietVegan.Label())
	assert.Equal(t, "non-vegetarian", DietNonVeg.Label())
	assert.Equal(t, "non-vegetarian", Diet("pescatarian").Label())
}

func TestOrDefault(t *testing.T) {
	assert.Equal(t, DefaultGoal, Goal("").OrDefault())
	assert.Equal(t, GoalWeightLoss, GoalWeightLoss.OrDefault())
	assert.Equal(t, DefaultDiet, Diet("").OrDefault())
	assert.Equal(t, DietVegan, DietVegan.OrDefault())
}

func TestDefaultProfile(t *testing.T) {
	p := DefaultProfile()
	assert.Equal(t, DietVegetarian, p.Diet)
	assert.Equal(t, GoalPCOSFriendly, p.Goal)
	assert.Empty(t, p.Allergies)
}

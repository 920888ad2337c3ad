package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutricoach/backend/internal/types"
)

func TestFallbackRecipesShape(t *testing.T) {
	goals := []types.Goal{types.GoalPCOSFriendly, types.GoalWeightLoss, types.GoalHighProtein, types.GoalBalanced}
	diets := []types.Diet{types.DietVegetarian, types.DietVegan, types.DietNonVeg}

	for _, goal := range goals {
		for _, diet := range diets {
			recipes := FallbackRecipes("oats, curd", goal, diet)

			require.Len(t, recipes, 2, "goal=%s diet=%s", goal, diet)
			assert.Equal(t, 1, recipes[0].ID)
			assert.Equal(t, 2, recipes[1].ID)

			for _, r := range recipes {
				assert.NotEmpty(t, r.Title)
				assert.NotEmpty(t, r.Description)
				assert.NotEmpty(t, r.Steps)
				assert.NotEmpty(t, r.IngredientsList)
				assert.Greater(t, r.ApproxTimeMins, 0)
				assert.GreaterOrEqual(t, r.Nutrition.Calories, 0.0)
				assert.GreaterOrEqual(t, r.Nutrition.ProteinG, 0.0)
				assert.GreaterOrEqual(t, r.Nutrition.CarbsG, 0.0)
				assert.GreaterOrEqual(t, r.Nutrition.FatG, 0.0)
				assert.NotEmpty(t, r.Nutrition.Tags)
			}
		}
	}
}

func TestFallbackRecipesGoalConstants(t *testing.T) {
	t.Run("high_protein raises protein", func(t *testing.T) {
		recipes := FallbackRecipes("oats, curd", types.GoalHighProtein, types.DietVegetarian)
		assert.Equal(t, 18.0, recipes[0].Nutrition.ProteinG)
		assert.Equal(t, 20.0, recipes[1].Nutrition.ProteinG)
		assert.Equal(t, 340.0, recipes[0].Nutrition.Calories)
	})

	t.Run("weight_loss lowers calories", func(t *testing.T) {
		recipes := FallbackRecipes("oats", types.GoalWeightLoss, types.DietVegan)
		assert.Equal(t, 260.0, recipes[0].Nutrition.Calories)
		assert.Equal(t, 240.0, recipes[1].Nutrition.Calories)
		assert.Equal(t, 12.0, recipes[0].Nutrition.ProteinG)
	})

	t.Run("balanced keeps the base values", func(t *testing.T) {
		recipes := FallbackRecipes("oats", types.GoalBalanced, types.DietNonVeg)
		assert.Equal(t, 300.0, recipes[0].Nutrition.Calories)
		assert.Equal(t, 280.0, recipes[1].Nutrition.Calories)
	})
}

func TestFallbackRecipesLabels(t *testing.T) {
	recipes := FallbackRecipes("", types.GoalPCOSFriendly, types.DietVegetarian)

	assert.Equal(t, "PCOS-friendly vegetarian bowl", recipes[0].Title)
	assert.Equal(t, "PCOS-friendly one-pan meal", recipes[1].Title)
	// Blank ingredients take the canned default.
	assert.Contains(t, recipes[0].Description, "oats, curd, cucumber")

	assert.Contains(t, recipes[0].Nutrition.Tags, "pcos-friendly")
	assert.Contains(t, recipes[0].Nutrition.Tags, "vegetarian")
	assert.Contains(t, recipes[0].Nutrition.Tags, "home-style")
	assert.Contains(t, recipes[0].Nutrition.Tags, "high_fiber")
	assert.Contains(t, recipes[1].Nutrition.Tags, "one_pan")
}

func TestFallbackRecipesUnknownValues(t *testing.T) {
	recipes := FallbackRecipes("rice", types.Goal("keto"), types.Diet("pescatarian"))

	require.Len(t, recipes, 2)
	// Unknown enums read as balanced / non-vegetarian.
	assert.Equal(t, "balanced non-vegetarian bowl", recipes[0].Title)
	assert.Equal(t, 300.0, recipes[0].Nutrition.Calories)
}

func TestCoachCannedTips(t *testing.T) {
	assert.Len(t, CoachOfflineTips(), 2)
	assert.Len(t, CoachDefaultTips(), 2)
	assert.Len(t, CoachDegradedTips(), 2)
}

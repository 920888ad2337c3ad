package service

import (
	"fmt"
	"strings"

	"github.com/nutricoach/backend/internal/types"
)

// defaultIngredients stands in when the user typed nothing.
const defaultIngredients = "oats, curd, cucumber"

// FallbackRecipes produces two deterministic recipes without any network
// call. It is the guaranteed degraded-mode response: it must never fail and
// must never depend on the AI gateway.
func FallbackRecipes(ingredients string, goal types.Goal, diet types.Diet) []types.Recipe {
	base := ingredients
	if strings.TrimSpace(base) == "" {
		base = defaultIngredients
	}

	goalLabel := goal.Label()
	dietLabel := diet.Label()
	tagsBase := []string{strings.ToLower(goalLabel), dietLabel, "home-style"}

	bowlCalories := 300.0
	switch goal {
	case types.GoalWeightLoss:
		bowlCalories = 260
	case types.GoalHighProtein:
		bowlCalories = 340
	}
	bowlProtein := 12.0
	if goal == types.GoalHighProtein {
		bowlProtein = 18
	}

	panCalories := 280.0
	if goal == types.GoalWeightLoss {
		panCalories = 240
	}

	return []types.Recipe{
		{
			ID:          1,
			Title:       fmt.Sprintf("%s %s bowl", goalLabel, dietLabel),
			Description: fmt.Sprintf("A quick %s %s bowl using %s.", strings.ToLower(goalLabel), dietLabel, base),
			IngredientsList: []string{
				"Rolled oats - 1/2 cup",
				"Curd / yoghurt - 1/2 cup",
				"Cucumber - 1/4 cup (chopped)",
				"Roasted peanuts / chana - 2 tbsp",
				"Salt, pepper, spices as per taste",
			},
			Steps: []string{
				"Soak oats in warm water or milk for 5-10 minutes.",
				"Mix curd, cucumber and spices in a bowl.",
				"Add soaked oats, roasted peanuts and mix well.",
				"Chill for a few minutes and serve.",
			},
			ApproxTimeMins: 15,
			Nutrition: types.Nutrition{
				Calories: bowlCalories,
				ProteinG: bowlProtein,
				CarbsG:   38,
				FatG:     8,
				Tags:     append(append([]string{}, tagsBase...), "high_fiber", "simple"),
			},
		},
		{
			ID:          2,
			Title:       fmt.Sprintf("%s one-pan meal", goalLabel),
			Description: fmt.Sprintf("Comfortable one-pan %s meal with %s, easy for busy days.", dietLabel, base),
			IngredientsList: []string{
				"Any mixed veggies - 1 cup",
				"Protein of choice (paneer / egg / tofu) - 1/2 cup",
				"Minimal oil - 1 tsp",
				"Spices & herbs",
			},
			Steps: []string{
				"Heat a pan with minimal oil.",
				"Saute chopped veggies until slightly soft.",
				"Add protein and cook till done.",
				"Season with salt, pepper and herbs.",
				"Serve with salad or a small portion of rice/millet.",
			},
			ApproxTimeMins: 20,
			Nutrition: types.Nutrition{
				Calories: panCalories,
				ProteinG: 20,
				CarbsG:   22,
				FatG:     8,
				Tags:     append(append([]string{}, tagsBase...), "quick", "one_pan", "weekday"),
			},
		},
	}
}

// Canned coach replies for the three degraded branches. The wording differs
// per branch on purpose, so logs and transcripts show which path served the
// response.
const (
	// CoachOfflineReply is served when no AI credential is configured.
	CoachOfflineReply = "I can give only simple, general guidance right now. Try to keep your meals balanced with some protein, fiber, and healthy fats. This is not medical advice."

	// CoachDegradedReply is served when the completion call itself fails.
	CoachDegradedReply = "I had some trouble connecting to the AI right now, so here is general guidance: try to keep your plate balanced with protein, vegetables, and moderate carbs. This is general information, not medical advice."

	// CoachDefaultReply is served when the model answered with empty text.
	CoachDefaultReply = "Here's some general nutrition guidance: try to keep meals balanced with protein, fiber and healthy fats. This is not medical advice."
)

// CoachOfflineTips accompany CoachOfflineReply.
func CoachOfflineTips() []string {
	return []string{
		"Stay hydrated through the day.",
		"Include at least one protein source in each main meal.",
	}
}

// CoachDefaultTips accompany a reply recovered from unparseable model text.
func CoachDefaultTips() []string {
	return []string{
		"Stay hydrated through the day.",
		"Include at least one protein source in every main meal.",
	}
}

// CoachDegradedTips accompany CoachDegradedReply.
func CoachDegradedTips() []string {
	return []string{
		"Avoid skipping meals frequently.",
		"Try to add vegetables to common dishes like upma, dosa sides or rice bowls.",
	}
}

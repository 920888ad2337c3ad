package service

import (
	"fmt"
	"strings"

	"github.com/nutricoach/backend/internal/types"
)

// System prompts for the two completion call sites.
const (
	RecipeSystemPrompt = "You are a helpful nutrition-aware Indian cooking assistant."
	CoachSystemPrompt  = "You are a kind, non-judgemental nutrition coach. You help with food choices but never give medical diagnosis."
)

const recipePromptTemplate = `
You are a nutrition-aware Indian cooking assistant for a learning app.

User:
- Ingredients: %s
- Health goal: %s
- Diet type: %s

Health goals:
- "pcos_friendly": lower glycemic load, more fiber and protein, less sugar, less deep fried.
- "weight_loss": calorie-conscious, high veggie, moderate carbs, moderate fats.
- "high_protein": focus on protein sources.
- "balanced": overall balanced Indian home-style meal.

Diet types:
- "vegetarian"
- "vegan"
- "non_veg"

TASK:
Suggest at least 2 SIMPLE, Indian home-style recipes using the given ingredients and goal.

Return STRICT JSON ONLY (no markdown, no extra text):

{
  "recipes": [
    {
      "id": 1,
      "title": "string",
      "description": "short one-line description",
      "ingredientsList": ["string", "string"],
      "steps": ["step 1", "step 2"],
      "approxTimeMins": 20,
      "nutrition": {
        "calories": 320,
        "protein_g": 15,
        "carbs_g": 40,
        "fat_g": 8,
        "tags": ["pcos_friendly", "high_fiber", "vegetarian"]
      }
    }
  ]
}

Rules:
- IDs must be 1, 2, 3...
- Always at least 2 recipes.
- Simple, friendly language.
- This is general info only, not medical advice.
`

const coachPromptTemplate = `
You are a gentle, friendly nutrition coach for an educational app.

User goal: %s
Relevant recipe (may be empty): %s

User says: %s

TASK:
Reply with supportive, simple guidance. Talk about balanced meals, PCOS-friendly ideas, protein, fiber, portion sizes, simple swaps, etc.
You are NOT a doctor and must always say that this is not medical advice.

Return STRICT JSON ONLY:

{
  "reply": "main answer in friendly, simple language...",
  "tips": [
    "short tip 1",
    "short tip 2"
  ]
}

Rules:
- "reply" is 2-5 short paragraphs max.
- "tips" is 2-4 bullets, very short.
- Include a reminder that this is NOT medical advice.
- No extra text outside JSON.
`

// BuildRecipePrompt embeds the raw ingredient text and the goal/diet values
// into the recipe instruction template.
func BuildRecipePrompt(ingredients string, goal types.Goal, diet types.Diet) string {
	if strings.TrimSpace(ingredients) == "" {
		ingredients = "not provided"
	}
	return fmt.Sprintf(recipePromptTemplate, ingredients, goal, diet)
}

// BuildCoachPrompt embeds the user's free-text message, goal and an
// optional one-line recipe summary into the coach instruction template.
func BuildCoachPrompt(message string, goal types.Goal, recipeSummary string) string {
	return fmt.Sprintf(coachPromptTemplate, goal, recipeSummary, message)
}

// RecipeSummary flattens a recipe into a one-liner for the coach prompt.
// A nil recipe yields an empty string.
func RecipeSummary(r *types.Recipe) string {
	if r == nil {
		return ""
	}
	return fmt.Sprintf("Title: %s. Ingredients: %s.", r.Title, strings.Join(r.IngredientsList, ", "))
}

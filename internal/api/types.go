package api

import "github.com/nutricoach/backend/internal/types"

// GenerateRecipesRequest is the body of POST /api/recipes/generate.
// Goal and diet are optional; blanks take the documented defaults.
type GenerateRecipesRequest struct {
	Ingredients string `json:"ingredients"`
	Goal        string `json:"goal"`
	Diet        string `json:"diet"`
}

// CoachRequest is the body of POST /api/coach. Recipe is the currently
// selected recipe, if any, and only feeds the prompt summary.
type CoachRequest struct {
	Message string        `json:"message"`
	Goal    string        `json:"goal"`
	Recipe  *types.Recipe `json:"recipe"`
}

// Completion temperatures per call site.
const (
	recipeTemperature = 0.8
	coachTemperature  = 0.7
)

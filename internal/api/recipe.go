package api

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nutricoach/backend/internal/logger"
	"github.com/nutricoach/backend/internal/service"
	"github.com/nutricoach/backend/internal/types"
)

// RecipeHandler serves AI-backed recipe generation with a guaranteed
// fallback. It never returns a non-200 for an AI-side problem: the user
// must always receive usable recipes.
type RecipeHandler struct {
	ai  service.AIClient // nil when no credential is configured
	log *logger.Logger
}

// NewRecipeHandler creates a new RecipeHandler instance.
func NewRecipeHandler(ai service.AIClient, log *logger.Logger) *RecipeHandler {
	return &RecipeHandler{ai: ai, log: log}
}

// RegisterRoutes registers the recipe routes.
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/recipes/generate", h.Generate)
}

// Generate handles POST /api/recipes/generate.
func (h *RecipeHandler) Generate(c *gin.Context) {
	var req GenerateRecipesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal := types.Goal(req.Goal).OrDefault()
	diet := types.Diet(req.Diet).OrDefault()

	if h.ai == nil {
		h.log.Info("no AI credential configured, serving fallback recipes")
		c.JSON(http.StatusOK, gin.H{"recipes": service.FallbackRecipes(req.Ingredients, goal, diet)})
		return
	}

	prompt := service.BuildRecipePrompt(req.Ingredients, goal, diet)
	text, err := h.ai.GenerateJSON(c.Request.Context(), service.RecipeSystemPrompt, prompt, recipeTemperature)
	if err != nil {
		h.log.Error("recipe completion failed, serving fallback", "error", err)
		c.JSON(http.StatusOK, gin.H{"recipes": service.FallbackRecipes(req.Ingredients, goal, diet)})
		return
	}

	// The only shape check imposed on the model output is that "recipes"
	// is an array; its elements pass through to the client untouched.
	var parsed struct {
		Recipes []json.RawMessage `json:"recipes"`
	}
	if !service.SafeParseJSON(h.log, text, &parsed) || parsed.Recipes == nil {
		h.log.Warn("AI recipes missing or invalid, serving fallback")
		c.JSON(http.StatusOK, gin.H{"recipes": service.FallbackRecipes(req.Ingredients, goal, diet)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": parsed.Recipes})
}

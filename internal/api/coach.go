package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nutricoach/backend/internal/logger"
	"github.com/nutricoach/backend/internal/service"
	"github.com/nutricoach/backend/internal/types"
)

// CoachHandler serves the conversational nutrition coach. Like the recipe
// handler it swallows AI-side failures, but on an unparseable-yet-successful
// completion it deliberately returns the raw model text as the reply
// instead of a canned one, so the user still sees whatever guidance the
// model produced.
type CoachHandler struct {
	ai  service.AIClient // nil when no credential is configured
	log *logger.Logger
}

// NewCoachHandler creates a new CoachHandler instance.
func NewCoachHandler(ai service.AIClient, log *logger.Logger) *CoachHandler {
	return &CoachHandler{ai: ai, log: log}
}

// RegisterRoutes registers the coach route.
func (h *CoachHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/coach", h.Ask)
}

// Ask handles POST /api/coach.
func (h *CoachHandler) Ask(c *gin.Context) {
	var req CoachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// The one user-input validation in the whole system.
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Message is required."})
		return
	}

	goal := types.Goal(req.Goal).OrDefault()
	summary := service.RecipeSummary(req.Recipe)

	if h.ai == nil {
		h.log.Info("no AI credential configured, serving rule-based coach reply")
		c.JSON(http.StatusOK, types.CoachReply{
			Reply: service.CoachOfflineReply,
			Tips:  service.CoachOfflineTips(),
		})
		return
	}

	prompt := service.BuildCoachPrompt(req.Message, goal, summary)
	text, err := h.ai.GenerateJSON(c.Request.Context(), service.CoachSystemPrompt, prompt, coachTemperature)
	if err != nil {
		h.log.Error("coach completion failed, serving degraded reply", "error", err)
		c.JSON(http.StatusOK, types.CoachReply{
			Reply: service.CoachDegradedReply,
			Tips:  service.CoachDegradedTips(),
		})
		return
	}

	var parsed map[string]interface{}
	service.SafeParseJSON(h.log, text, &parsed)

	reply, ok := parsed["reply"].(string)
	if !ok {
		h.log.Warn("coach reply missing or invalid, falling back to raw text")
		if text == "" {
			text = service.CoachDefaultReply
		}
		c.JSON(http.StatusOK, types.CoachReply{
			Reply: text,
			Tips:  service.CoachDefaultTips(),
		})
		return
	}

	tips := []string{}
	if raw, isArray := parsed["tips"].([]interface{}); isArray {
		for _, t := range raw {
			if s, isString := t.(string); isString {
				tips = append(tips, s)
			}
		}
	}

	c.JSON(http.StatusOK, types.CoachReply{Reply: reply, Tips: tips})
}

package api

import (
	"context"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nutricoach/backend/internal/logger"
	"github.com/nutricoach/backend/internal/service"
)

// stubAI is a scripted AIClient for handler tests.
type stubAI struct {
	text  string
	err   error
	calls int
}

func (s *stubAI) GenerateJSON(ctx context.Context, system, user string, temperature float64) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}

func newTestRouter(ai service.AIClient) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	group := router.Group("/api")
	NewRecipeHandler(ai, logger.NewNop()).RegisterRoutes(group)
	NewCoachHandler(ai, logger.NewNop()).RegisterRoutes(group)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

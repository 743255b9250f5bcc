package api

import (
	"net/http"
	"time"

	"mailclassifier-backend/pkg/llm"

	"github.com/gin-gonic/gin"
)

// GetLLMSettings reports the LLM escalation configuration currently in effect.
func (h *Handler) GetLLMSettings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"provider":             h.config.LLMProvider,
		"base_url":             h.config.LLMBaseURL,
		"model":                h.config.LLMModel,
		"escalation_threshold": h.config.RuleBasedMinConfidence,
		"enabled":              h.config.LLMAPIKey != "",
	})
}

// TestLLMConnection sends a minimal prompt to the configured backend and
// reports whether it answered.
func (h *Handler) TestLLMConnection(c *gin.Context) {
	if h.config.LLMAPIKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no LLM credential configured"})
		return
	}

	client := llm.NewClient(h.config.LLMBaseURL, h.config.LLMAPIKey, 10*time.Second)
	start := time.Now()
	resp, err := client.Complete(c.Request.Context(), llm.Request{
		Model:     h.config.LLMModel,
		Prompt:    "Responda apenas: ok",
		MaxTokens: 5,
	})
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "connected",
		"model":      h.config.LLMModel,
		"latency_ms": time.Since(start).Milliseconds(),
		"sample":     resp.Text,
	})
}

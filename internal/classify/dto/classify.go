package dto

import (
	"mailclassifier-backend/internal/classify/domain"
)

type ClassifyRequest struct {
	Subject   string `json:"subject"`
	Body      string `json:"body" binding:"required"`
	Sender    string `json:"sender"`
	ProfileID string `json:"profile_id"`
}

type ClassifyResponse struct {
	Category         string  `json:"category"`
	Reason           string  `json:"reason"`
	SuggestedReply   string  `json:"suggested_reply"`
	UsedModel        string  `json:"used_model,omitempty"`
	PromptTokens     int     `json:"prompt_tokens,omitempty"`
	CompletionTokens int     `json:"completion_tokens,omitempty"`
	TotalTokens      int     `json:"total_tokens,omitempty"`
	CostUSD          float64 `json:"cost_usd,omitempty"`
}

func NewClassifyResponse(result domain.ClassificationResult, costUSD float64) ClassifyResponse {
	return ClassifyResponse{
		Category:         string(result.Category),
		Reason:           result.Reason,
		SuggestedReply:   result.SuggestedReply,
		UsedModel:        result.UsedModel,
		PromptTokens:     result.PromptTokens,
		CompletionTokens: result.CompletionTokens,
		TotalTokens:      result.TotalTokens,
		CostUSD:          costUSD,
	}
}

type LogsResponse struct {
	Logs  []*domain.ClassificationLog `json:"logs"`
	Limit int                         `json:"limit"`
}

type ImapConfigRequest struct {
	Host      string `json:"host" binding:"required"`
	Port      int    `json:"port"`
	User      string `json:"user" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Mailbox   string `json:"mailbox"`
	ProfileID string `json:"profile_id"`
	// Seconds between sync runs.
	Interval int `json:"interval"`
}

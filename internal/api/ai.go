package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"habitmini/internal/models"
)

// waitAI blocks until the AI quota allows another request.
func (c *Client) waitAI(ctx context.Context) error {
	if err := c.aiLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("ai rate limit wait: %w", err)
	}
	return nil
}

func (c *Client) WeeklySummary(ctx context.Context) (models.WeeklySummary, error) {
	var ws models.WeeklySummary
	if err := c.waitAI(ctx); err != nil {
		return ws, err
	}
	err := c.do(ctx, http.MethodGet, "/api/ai/weekly-summary", nil, nil, &ws)
	return ws, err
}

// FailureAnalysis analyzes skip patterns, across all habits when habitID is
// nil, over the given period in days.
func (c *Client) FailureAnalysis(ctx context.Context, habitID *int64, periodDays int) (models.FailureAnalysis, error) {
	var fa models.FailureAnalysis
	if err := c.waitAI(ctx); err != nil {
		return fa, err
	}

	body := map[string]interface{}{"period_days": periodDays}
	if habitID != nil {
		body["habit_id"] = *habitID
	}
	err := c.do(ctx, http.MethodPost, "/api/ai/failure-analysis", nil, body, &fa)
	return fa, err
}

func (c *Client) Advice(ctx context.Context, context_ string) (models.AIAdvice, error) {
	var advice models.AIAdvice
	if err := c.waitAI(ctx); err != nil {
		return advice, err
	}

	query := url.Values{}
	if context_ != "" {
		query.Set("context", context_)
	}
	err := c.do(ctx, http.MethodPost, "/api/ai/advice", query, nil, &advice)
	return advice, err
}

func (c *Client) Chat(ctx context.Context, message string, history []models.ChatMessage) (models.ChatResponse, error) {
	var resp models.ChatResponse
	if err := c.waitAI(ctx); err != nil {
		return resp, err
	}

	body := map[string]interface{}{"message": message}
	if len(history) > 0 {
		body["history"] = history
	}
	err := c.do(ctx, http.MethodPost, "/api/ai/chat", nil, body, &resp)
	return resp, err
}

// SuggestHabit asks the AI for a habit idea based on the user's existing
// collection.
func (c *Client) SuggestHabit(ctx context.Context, goal string) (models.HabitSuggestion, error) {
	var hs models.HabitSuggestion
	if err := c.waitAI(ctx); err != nil {
		return hs, err
	}

	query := url.Values{}
	if goal != "" {
		query.Set("goal", goal)
	}
	err := c.do(ctx, http.MethodPost, "/api/ai/suggest-habit", query, nil, &hs)
	return hs, err
}

// Package api is the HTTP client for the habit tracker backend. All requests
// authenticate with the Telegram init-data header; AI endpoints additionally
// pass through a client-side rate limiter matching the server's quota.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"habitmini/internal/models"
)

const defaultTimeout = 15 * time.Second

// Error is a non-2xx response from the backend.
type Error struct {
	StatusCode int
	Detail     string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Detail)
}

type Client struct {
	baseURL  string
	initData string
	httpc    *http.Client

	// The server allows 10 AI requests per user per minute; waiting locally
	// beats collecting 429s.
	aiLimiter *rate.Limiter
}

func New(baseURL, initData string) *Client {
	return &Client{
		baseURL:   baseURL,
		initData:  initData,
		httpc:     &http.Client{Timeout: defaultTimeout},
		aiLimiter: rate.NewLimiter(rate.Limit(10.0/60.0), 10),
	}
}

// do sends one request and decodes the JSON response into out (when non-nil).
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("X-Telegram-Init-Data", c.initData)
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &Error{StatusCode: resp.StatusCode, Detail: resp.Status}

	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Detail != "" {
		apiErr.Detail = body.Detail
	}
	return apiErr
}

// Health checks the public health endpoint. It needs no auth.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/health", nil, nil, nil)
}

func (c *Client) Habits(ctx context.Context) (models.HabitList, error) {
	var list models.HabitList
	err := c.do(ctx, http.MethodGet, "/api/habits", nil, nil, &list)
	return list, err
}

func (c *Client) CreateHabit(ctx context.Context, hc models.HabitCreate) (models.Habit, error) {
	var h models.Habit
	err := c.do(ctx, http.MethodPost, "/api/habits", nil, hc, &h)
	return h, err
}

func (c *Client) Habit(ctx context.Context, id int64) (models.Habit, error) {
	var h models.Habit
	err := c.do(ctx, http.MethodGet, "/api/habits/"+strconv.FormatInt(id, 10), nil, nil, &h)
	return h, err
}

func (c *Client) UpdateHabit(ctx context.Context, id int64, patch models.HabitPatch) (models.Habit, error) {
	var h models.Habit
	err := c.do(ctx, http.MethodPatch, "/api/habits/"+strconv.FormatInt(id, 10), nil, patch, &h)
	return h, err
}

func (c *Client) DeleteHabit(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/api/habits/"+strconv.FormatInt(id, 10), nil, nil, nil)
}

// CompleteHabit records today's completion. Notes and mood are optional.
func (c *Client) CompleteHabit(ctx context.Context, id int64, notes, mood string) (models.HabitCompleteResult, error) {
	body := map[string]string{}
	if notes != "" {
		body["notes"] = notes
	}
	if mood != "" {
		body["mood"] = mood
	}

	var result models.HabitCompleteResult
	err := c.do(ctx, http.MethodPost, "/api/habits/"+strconv.FormatInt(id, 10)+"/complete", nil, body, &result)
	return result, err
}

// SkipHabit marks today as skipped, which resets the current streak on the
// server.
func (c *Client) SkipHabit(ctx context.Context, id int64, reason string) error {
	query := url.Values{}
	if reason != "" {
		query.Set("reason", reason)
	}
	return c.do(ctx, http.MethodPost, "/api/habits/"+strconv.FormatInt(id, 10)+"/skip", query, nil, nil)
}

func (c *Client) WeeklyProgress(ctx context.Context) (models.WeeklyProgress, error) {
	var wp models.WeeklyProgress
	err := c.do(ctx, http.MethodGet, "/api/habits/progress/weekly", nil, nil, &wp)
	return wp, err
}

func (c *Client) Me(ctx context.Context) (models.UserProfile, error) {
	var u models.UserProfile
	err := c.do(ctx, http.MethodGet, "/api/user/me", nil, nil, &u)
	return u, err
}

func (c *Client) UpdateSettings(ctx context.Context, settings models.UserSettings) (models.UserProfile, error) {
	var u models.UserProfile
	err := c.do(ctx, http.MethodPatch, "/api/user/settings", nil, settings, &u)
	return u, err
}

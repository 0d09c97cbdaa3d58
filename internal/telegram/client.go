// Package telegram is a minimal Telegram Bot API client covering the two
// calls the bot makes: sendMessage and getUpdates.
package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

// Message is one inbound chat message. Only the text matters to the bot.
type Message struct {
	Text string
}

// Client talks to the Bot API for a single bot and chat. The Bot API
// enforces per-chat rate limits, so outbound calls go through a limiter.
type Client struct {
	token   string
	chatID  string
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	circuit *gobreaker.CircuitBreaker
}

// NewClient creates a client for one bot token and destination chat.
func NewClient(httpClient *http.Client, token, chatID string) *Client {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "telegram",
		MaxRequests: 3,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &Client{
		token:   token,
		chatID:  chatID,
		baseURL: "https://api.telegram.org",
		http:    httpClient,
		// Telegram allows roughly one message per second per chat.
		limiter: rate.NewLimiter(rate.Limit(1), 3),
		circuit: cb,
	}
}

// Send delivers an HTML-formatted message to the configured chat.
// Fire-and-forget: callers log a failure but do not retry the run.
func (c *Client) Send(ctx context.Context, text string) error {
	form := url.Values{}
	form.Set("chat_id", c.chatID)
	form.Set("text", text)
	form.Set("parse_mode", "HTML")

	var apiResp struct {
		OK          bool   `json:"ok"`
		Description string `json:"description"`
	}
	if err := c.call(ctx, "sendMessage", form, &apiResp); err != nil {
		return err
	}
	if !apiResp.OK {
		return fmt.Errorf("sendMessage rejected: %s", apiResp.Description)
	}
	return nil
}

// Recent returns the latest batch of inbound messages via getUpdates.
// Updates without message text are skipped.
func (c *Client) Recent(ctx context.Context) ([]Message, error) {
	form := url.Values{}
	form.Set("offset", "-1")
	form.Set("limit", "10")

	var apiResp struct {
		OK     bool `json:"ok"`
		Result []struct {
			Message struct {
				Text string `json:"text"`
			} `json:"message"`
		} `json:"result"`
	}
	if err := c.call(ctx, "getUpdates", form, &apiResp); err != nil {
		return nil, err
	}
	if !apiResp.OK {
		return nil, fmt.Errorf("getUpdates rejected")
	}

	var messages []Message
	for _, upd := range apiResp.Result {
		if upd.Message.Text == "" {
			continue
		}
		messages = append(messages, Message{Text: upd.Message.Text})
	}
	return messages, nil
}

func (c *Client) call(ctx context.Context, method string, form url.Values, out interface{}) error {
	if c.token == "" {
		return fmt.Errorf("telegram bot token is not configured")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait canceled: %w", err)
	}

	u := fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.token, method)

	result, err := c.circuit.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, strings.NewReader(form.Encode()))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			resp.Body.Close()
			return nil, fmt.Errorf("telegram %s: unexpected status %d", method, resp.StatusCode)
		}
		return resp, nil
	})
	if err != nil {
		return fmt.Errorf("telegram %s: %w", method, err)
	}

	resp := result.(*http.Response)
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode telegram %s response: %w", method, err)
	}
	return nil
}

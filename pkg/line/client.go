// Package line is a minimal Messaging API client covering the reply
// and push endpoints plus webhook signature verification.
package line

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.line.me"

type Client struct {
	ChannelToken  string
	ChannelSecret string
	BaseURL       string
	HTTPClient    *http.Client
}

func NewClient(channelToken, channelSecret string) *Client {
	return &Client{
		ChannelToken:  channelToken,
		ChannelSecret: channelSecret,
		BaseURL:       defaultBaseURL,
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Reply answers a webhook event. A reply token is single use, so a
// failed reply cannot be retried against the same token.
func (c *Client) Reply(ctx context.Context, replyToken string, messages ...Message) error {
	payload := map[string]any{
		"replyToken": replyToken,
		"messages":   messages,
	}
	return c.post(ctx, "/v2/bot/message/reply", payload)
}

// Push sends messages outside the reply window, used for the early
// "searching" notice while the recommendation chain runs.
func (c *Client) Push(ctx context.Context, userID string, messages ...Message) error {
	payload := map[string]any{
		"to":       userID,
		"messages": messages,
	}
	return c.post(ctx, "/v2/bot/message/push", payload)
}

func (c *Client) post(ctx context.Context, path string, payload any) error {
	// 1. Marshal the request body
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal line request: %w", err)
	}

	// 2. Build the HTTP request
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create line request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.ChannelToken)

	// 3. Send it
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call line api: %w", err)
	}
	defer resp.Body.Close()

	// 4. Check the status
	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("line api returned status %d: %s", resp.StatusCode, string(respBody))
	}

	return nil
}

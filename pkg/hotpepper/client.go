package hotpepper

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultBaseURL = "https://webservice.recruit.co.jp/hotpepper/gourmet/v1/"

	// The API pages 20 records at a time; we pull up to 100 and treat
	// that as the full candidate pool for a session.
	pageSize = 20
	maxShops = 100
)

// Client calls the Hotpepper gourmet search API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Search fetches shops matching the free-text keyword plus optional genre
// and budget codes. It returns the capped full result set; an empty slice
// means no match, not an error.
func (c *Client) Search(ctx context.Context, keyword, genreCode, budgetCode string) ([]Shop, error) {
	var all []Shop
	for start := 1; start <= maxShops; start += pageSize {
		page, err := c.fetchPage(ctx, keyword, genreCode, budgetCode, start)
		if err != nil {
			return nil, err
		}
		if len(page) == 0 {
			break
		}
		all = append(all, page...)
	}
	return all, nil
}

func (c *Client) fetchPage(ctx context.Context, keyword, genreCode, budgetCode string, start int) ([]Shop, error) {
	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("format", "json")
	params.Set("count", fmt.Sprintf("%d", pageSize))
	params.Set("start", fmt.Sprintf("%d", start))
	if keyword != "" && keyword != "未指定" {
		params.Set("keyword", keyword)
	}
	if genreCode != "" {
		params.Set("genre", genreCode)
	}
	if budgetCode != "" {
		params.Set("budget", budgetCode)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("hotpepper request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("hotpepper error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var parsed apiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	shops := make([]Shop, 0, len(parsed.Results.Shop))
	for _, s := range parsed.Results.Shop {
		shops = append(shops, s.toShop())
	}
	return shops, nil
}

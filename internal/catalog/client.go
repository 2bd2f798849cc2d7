package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"articraft/internal"
	"articraft/internal/config"
)

// Provider returns normalized cards for a partial name query.
type Provider interface {
	SearchCards(ctx context.Context, partialName string, limit int) ([]internal.Card, error)
}

type Client struct {
	cfg        config.Config
	httpClient *http.Client
}

// TransportError is returned when the upstream call fails or answers with
// a non-2xx status.
type TransportError struct {
	URL        string
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("articraft request %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("articraft api error: status=%d body=%s", e.StatusCode, e.Body)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func NewClient(cfg config.Config) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{},
	}
}

func NewProvider(cfg config.Config) (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.CardProvider)) {
	case "", "articraft":
		if err := cfg.Require("ARTICRAFT_API_BASE_URL", cfg.APIBaseURL); err != nil {
			return nil, err
		}
		return NewClient(cfg), nil
	case "mock":
		return MockProvider{}, nil
	default:
		return nil, fmt.Errorf("unsupported card provider: %s", cfg.CardProvider)
	}
}

func (c *Client) SearchCards(ctx context.Context, partialName string, limit int) ([]internal.Card, error) {
	raw, err := c.SearchRaw(ctx, partialName)
	if err != nil {
		return nil, err
	}
	return UnifyCardData(raw, limit)
}

// SearchRaw returns the upstream records for partialName without
// normalizing them.
func (c *Client) SearchRaw(ctx context.Context, partialName string) ([]internal.RawCard, error) {
	body, err := c.fetchJSON(ctx, "cards/search", map[string]string{"search": partialName})
	if err != nil {
		return nil, err
	}
	var out []internal.RawCard
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	return out, nil
}

func (c *Client) fetchJSON(ctx context.Context, endpoint string, params map[string]string) ([]byte, error) {
	baseURL := strings.TrimRight(c.cfg.APIBaseURL, "/") + "/"
	u, err := url.Parse(baseURL + endpoint)
	if err != nil {
		return nil, err
	}

	q := u.Query()
	for k, v := range params {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{URL: u.String(), Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: u.String(), StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &TransportError{URL: u.String(), StatusCode: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}

package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/oapi-codegen/runtime"
)

// Client talks to an upstream admin API that exposes the order reporting endpoints.
type Client struct {
	server     *url.URL
	httpClient *http.Client
	token      string
}

// ClientOption configures the client.
type ClientOption func(*Client)

// WithHTTPClient overrides the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithBearerToken sends the token in the Authorization header of every request.
func WithBearerToken(token string) ClientOption {
	return func(c *Client) {
		c.token = strings.TrimSpace(token)
	}
}

// NewClient instantiates the backend client with sane defaults.
func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("backend base URL is required")
	}
	server, err := url.Parse(strings.TrimRight(baseURL, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("parse backend base URL: %w", err)
	}
	c := &Client{
		server:     server,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c, nil
}

// StatusOverview calls GET /admin/order/overview.
func (c *Client) StatusOverview(ctx context.Context) ([]StatusOverview, error) {
	var out []StatusOverview
	if err := c.get(ctx, "admin/order/overview", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SalesStatistic calls GET /admin/order/sales-statistic?year=.
func (c *Client) SalesStatistic(ctx context.Context, year int) ([]SalesStatistic, error) {
	query, err := styleQuery(url.Values{}, "year", year)
	if err != nil {
		return nil, err
	}
	var out []SalesStatistic
	if err := c.get(ctx, "admin/order/sales-statistic", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TopSelling calls GET /admin/product/top-selling?limit=.
func (c *Client) TopSelling(ctx context.Context, limit int) ([]TopSelling, error) {
	query, err := styleQuery(url.Values{}, "limit", limit)
	if err != nil {
		return nil, err
	}
	var out []TopSelling
	if err := c.get(ctx, "admin/product/top-selling", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TotalProduct calls GET /admin/product/total-product, which answers with a bare count.
func (c *Client) TotalProduct(ctx context.Context) (int64, error) {
	var out json.Number
	if err := c.get(ctx, "admin/product/total-product", nil, &out); err != nil {
		return 0, err
	}
	total, err := out.Int64()
	if err != nil {
		return 0, fmt.Errorf("%w: total product %q", ErrMalformedResponse, out)
	}
	return total, nil
}

// ListOrders calls GET /admin/order?page=&limit=.
func (c *Client) ListOrders(ctx context.Context, page, limit int) (*OrderPage, error) {
	query, err := styleQuery(url.Values{}, "page", page)
	if err != nil {
		return nil, err
	}
	if query, err = styleQuery(query, "limit", limit); err != nil {
		return nil, err
	}
	var out OrderPage
	if err := c.get(ctx, "admin/order", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func styleQuery(values url.Values, name string, value any) (url.Values, error) {
	frag, err := runtime.StyleParamWithLocation("form", true, name, runtime.ParamLocationQuery, value)
	if err != nil {
		return nil, fmt.Errorf("style %s parameter: %w", name, err)
	}
	parsed, err := url.ParseQuery(frag)
	if err != nil {
		return nil, fmt.Errorf("parse %s parameter: %w", name, err)
	}
	for k, vs := range parsed {
		for _, v := range vs {
			values.Add(k, v)
		}
	}
	return values, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	if c == nil || c.server == nil {
		return errors.New("backend client not configured")
	}
	target := c.server.ResolveReference(&url.URL{Path: path})
	if len(query) > 0 {
		target.RawQuery = query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return fmt.Errorf("build backend request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call backend API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read backend response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return newAPIError(resp, body)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return nil
}

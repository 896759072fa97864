package inventory

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/app-sre/invprobe/pkg/version"
)

const (
	InventoryPath = "/mcp/external/inventory"
	ConfigPath    = "/mcp/config"
	HealthPath    = "/mcp/health"

	requestIDHeader = "X-Request-ID"

	connectTimeout = 5 * time.Second
	requestTimeout = 30 * time.Second
)

type Client struct {
	baseURL     *url.URL
	credentials Credentials
	timeout     time.Duration

	client *http.Client
	logger *zap.SugaredLogger
}

type Option func(*Client)

func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.SetHTTPClient(client)
	}
}

func WithLogger(logger *zap.SugaredLogger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithTimeout bounds every request made by the client. Values that are not
// positive are ignored.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

func NewClient(baseURL string, credentials Credentials, options ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("unable to create client: base URL is required")
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("unable to parse base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("unable to parse base URL: %q is not an absolute URL", baseURL)
	}

	c := &Client{
		baseURL:     u,
		credentials: credentials,
		timeout:     requestTimeout,
		logger:      zap.NewNop().Sugar(),
	}

	c.client = &http.Client{
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout: connectTimeout,
			}).DialContext,
		},
	}

	for _, option := range options {
		option(c)
	}

	return c, nil
}

func (c *Client) SetHTTPClient(client *http.Client) {
	c.client = client
}

// Query sends an authenticated inventory query and decodes the response for
// the given query type. Filters may be nil.
func (c *Client) Query(ctx context.Context, queryType QueryType, filters Filters) (*QueryResult, error) {
	if !queryType.Valid() {
		return nil, &InvalidQueryError{Type: queryType}
	}

	request := &QueryRequest{
		Query: Query{Type: queryType, Filters: filters},
	}

	content, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("unable to marshal query: %w", err)
	}

	body, err := c.do(ctx, http.MethodPost, InventoryPath, content, true)
	if err != nil {
		return nil, err
	}

	return decodeResult(queryType, body)
}

// FetchConfig retrieves the discovery document. No authentication is sent.
func (c *Client) FetchConfig(ctx context.Context) (*ServerConfig, error) {
	body, err := c.do(ctx, http.MethodGet, ConfigPath, nil, false)
	if err != nil {
		return nil, err
	}

	var config ServerConfig
	if err := json.Unmarshal(body, &config); err != nil {
		return nil, &DecodeError{Body: body, Err: err}
	}
	if err := config.validate(); err != nil {
		return nil, &DecodeError{Body: body, Err: err}
	}

	return &config, nil
}

func (c *Client) Health(ctx context.Context) (*Health, error) {
	body, err := c.do(ctx, http.MethodGet, HealthPath, nil, false)
	if err != nil {
		return nil, err
	}

	var health Health
	if err := json.Unmarshal(body, &health); err != nil {
		return nil, &DecodeError{Body: body, Err: err}
	}

	return &health, nil
}

func (c *Client) do(ctx context.Context, method, path string, content []byte, authenticate bool) ([]byte, error) {
	endpoint := c.baseURL.JoinPath(path).String()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if content != nil {
		reader = bytes.NewReader(content)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("unable to create request: %w", err)
	}

	requestID := uuid.NewString()

	req.Header.Set("Accept", "application/json")
	if content != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authenticate {
		req.Header.Set("Authorization", c.credentials.Authorization())
	}
	req.Header.Set("User-Agent", fmt.Sprintf("invprobe/%s", version.Version()))
	req.Header.Set(requestIDHeader, requestID)

	c.logger.Debugw("Sending request",
		"method", method,
		"url", endpoint,
		"requestID", requestID,
		"client", c.credentials.ClientID,
	)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &TransportError{Method: method, URL: endpoint, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Method: method, URL: endpoint, Err: err}
	}

	c.logger.Debugw("Received response",
		"status", resp.StatusCode,
		"requestID", requestID,
		"size", len(body),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &RejectedError{StatusCode: resp.StatusCode, Body: body}
	}

	return body, nil
}

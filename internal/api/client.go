package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/inovacc/catalogr/internal/model"
)

const defaultTimeout = 30 * time.Second

// Client is a typed client for the remote product catalog API. The session
// token is held on the instance and attached to every authenticated call;
// there are no global default headers.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiPath    string
	token      string
	logger     *slog.Logger
}

// ClientOptions configures the catalog client
type ClientOptions struct {
	Logger  *slog.Logger
	Timeout time.Duration
}

// NewClient creates a new catalog API client
func NewClient(baseURL, apiPath string, opts ClientOptions) (*Client, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if baseURL == "" {
		return nil, fmt.Errorf("API base URL is required")
	}

	if apiPath == "" {
		return nil, fmt.Errorf("API path is required")
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	logger.Debug("creating catalog client",
		slog.String("base", baseURL),
		slog.String("path", apiPath),
	)

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		apiPath: apiPath,
		logger:  logger,
	}, nil
}

// SetToken attaches a session token to all subsequent calls.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Token returns the currently attached session token.
func (c *Client) Token() string {
	return c.token
}

type signInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type signInResponse struct {
	Token string `json:"token"`
	// Expired is a millisecond Unix timestamp
	Expired int64 `json:"expired"`
}

// SignIn exchanges credentials for a session. The returned session is not
// attached to the client; callers decide whether to keep it.
func (c *Client) SignIn(ctx context.Context, username, password string) (*model.Session, error) {
	var resp signInResponse

	body := signInRequest{Username: username, Password: password}
	if err := c.doRequestWithBody(ctx, http.MethodPost, "/admin/signin", body, &resp); err != nil {
		return nil, err
	}

	if resp.Token == "" {
		return nil, fmt.Errorf("sign-in response carried no token")
	}

	return &model.Session{
		Token:  resp.Token,
		Expiry: time.UnixMilli(resp.Expired),
	}, nil
}

// Check asks the server whether the attached token is still valid.
func (c *Client) Check(ctx context.Context) error {
	return c.doRequest(ctx, http.MethodPost, c.adminPath("/user/check"), nil)
}

type productListResponse struct {
	Products []model.Product `json:"products"`
}

// ListProducts fetches the full product list.
func (c *Client) ListProducts(ctx context.Context) ([]model.Product, error) {
	var resp productListResponse

	if err := c.doRequest(ctx, http.MethodGet, c.adminPath("/admin/products"), &resp); err != nil {
		return nil, err
	}

	return resp.Products, nil
}

type productEnvelope struct {
	Data model.ProductPayload `json:"data"`
}

// CreateProduct submits a new product record.
func (c *Client) CreateProduct(ctx context.Context, p model.ProductPayload) error {
	return c.doRequestWithBody(ctx, http.MethodPost, c.adminPath("/admin/product"), productEnvelope{Data: p}, nil)
}

// UpdateProduct replaces the record with the given id.
func (c *Client) UpdateProduct(ctx context.Context, id string, p model.ProductPayload) error {
	if id == "" {
		return fmt.Errorf("product id is required")
	}

	path := c.adminPath("/admin/product/" + url.PathEscape(id))

	return c.doRequestWithBody(ctx, http.MethodPut, path, productEnvelope{Data: p}, nil)
}

// DeleteProduct removes the record with the given id.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("product id is required")
	}

	return c.doRequest(ctx, http.MethodDelete, c.adminPath("/admin/product/"+url.PathEscape(id)), nil)
}

func (c *Client) adminPath(suffix string) string {
	return "/api/" + c.apiPath + suffix
}

// doRequest performs a bodyless HTTP request against the catalog API
func (c *Client) doRequest(ctx context.Context, method, path string, result any) error {
	return c.do(ctx, method, path, nil, result)
}

// doRequestWithBody performs an HTTP request with a JSON body
func (c *Client) doRequestWithBody(ctx context.Context, method, path string, body, result any) error {
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}

	return c.do(ctx, method, path, bodyBytes, result)
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, result any) error {
	reqURL := c.baseURL + path
	requestID := uuid.New().String()

	c.logger.Debug("making catalog API request",
		slog.String("method", method),
		slog.String("path", path),
		slog.String("request_id", requestID),
	)

	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	if c.token != "" {
		req.Header.Set("Authorization", c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(resp.Body)

		c.logger.Debug("catalog API request failed",
			slog.Int("status", resp.StatusCode),
			slog.String("request_id", requestID),
		)

		return newAPIError(resp.StatusCode, respBody)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

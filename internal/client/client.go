package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"ruyatech/internal/utils/logger"
)

// CredentialProvider supplies the backend bearer token. Every authenticated
// call resolves its token through this interface at call time; there is no
// other way for a token to reach the wire.
type CredentialProvider interface {
	Token(ctx context.Context) (string, error)
}

// StaticCredentials is a fixed-token provider for the helper CLI and tests.
type StaticCredentials string

func (s StaticCredentials) Token(context.Context) (string, error) {
	return string(s), nil
}

// ErrNoToken is returned before any network activity when an authenticated
// call has no bearer token to send.
var ErrNoToken = errors.New("client: no bearer token available")

// APIError is a non-2xx backend response. Fields carries the backend's
// per-field validation messages when it returned a structured error body.
type APIError struct {
	Status  int
	Message string
	Fields  map[string][]string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend: %d %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend: %d", e.Status)
}

// IsNotFound reports whether err is a backend 404, so callers can branch to
// a not-found render instead of a failure banner.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// Options configure the backend client.
type Options struct {
	BaseURL     string
	Locale      string
	Credentials CredentialProvider
	HTTPClient  *http.Client
}

// Client is the shared HTTP layer under the per-entity clients. No retries,
// no backoff, no caching: every call is one fresh round trip and the backend
// stays the single source of truth.
type Client struct {
	baseURL    string
	locale     string
	httpClient *http.Client
	creds      CredentialProvider
	log        *logger.Logger

	Ads     *AdsClient
	Posts   *PostsClient
	Members *MembersClient
}

// New builds a client for the given backend.
func New(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	c := &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		locale:     opts.Locale,
		httpClient: httpClient,
		creds:      opts.Credentials,
		log:        logger.New("backend-client"),
	}
	c.Ads = &AdsClient{api: c}
	c.Posts = &PostsClient{api: c}
	c.Members = &MembersClient{api: c}
	return c
}

// BaseURL is the backend root every request is resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Locale is the Accept-Language value sent with every request.
func (c *Client) Locale() string {
	return c.locale
}

// bearer resolves the token before any request is built. Authenticated calls
// fail here, without touching the network, when no token is available.
func (c *Client) bearer(ctx context.Context) (string, error) {
	if c.creds == nil {
		return "", ErrNoToken
	}
	token, err := c.creds.Token(ctx)
	if err != nil {
		return "", fmt.Errorf("resolve token: %w", err)
	}
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.locale != "" {
		req.Header.Set("Accept-Language", c.locale)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// do sends the request and decodes a 2xx body into out. Non-2xx responses
// come back as *APIError; callers own the user-facing message.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.log.Error("request %s %s failed: %v", err, req.Method, req.URL.Path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := c.decodeError(resp)
		c.log.Warn("%s %s returned %d: %s", req.Method, req.URL.Path, apiErr.Status, apiErr.Message)
		return apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeError keeps the backend's structured validation map when one is
// present; otherwise the status text stands in.
func (c *Client) decodeError(resp *http.Response) *APIError {
	apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil || len(body) == 0 {
		return apiErr
	}
	var parsed struct {
		Message string              `json:"message"`
		Error   string              `json:"error"`
		Errors  map[string][]string `json:"errors"`
	}
	if json.Unmarshal(body, &parsed) != nil {
		return apiErr
	}
	switch {
	case parsed.Message != "":
		apiErr.Message = parsed.Message
	case parsed.Error != "":
		apiErr.Message = parsed.Error
	}
	apiErr.Fields = parsed.Errors
	return apiErr
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) putJSON(ctx context.Context, path string, payload any, out any) error {
	token, err := c.bearer(ctx)
	if err != nil {
		return err
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	req, err := c.newRequest(ctx, http.MethodPut, path, bytes.NewReader(body), "application/json")
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return c.do(req, out)
}

// postMultipart sends a multipart form. Auth is required, optional, or
// absent depending on the endpoint; with authOptional a missing token means
// the header is simply omitted.
func (c *Client) postMultipart(ctx context.Context, path string, form *Form, auth authMode, out any) error {
	var token string
	switch auth {
	case authRequired:
		var err error
		if token, err = c.bearer(ctx); err != nil {
			return err
		}
	case authOptional:
		if tok, err := c.bearer(ctx); err == nil {
			token = tok
		} else if !errors.Is(err, ErrNoToken) {
			return err
		}
	}

	body, contentType, err := form.encode()
	if err != nil {
		return fmt.Errorf("encode form: %w", err)
	}
	req, err := c.newRequest(ctx, http.MethodPost, path, body, contentType)
	if err != nil {
		return err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return c.do(req, out)
}

func (c *Client) deleteJSON(ctx context.Context, path string, out any) error {
	token, err := c.bearer(ctx)
	if err != nil {
		return err
	}
	req, err := c.newRequest(ctx, http.MethodDelete, path, nil, "")
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	req, err := c.newRequest(ctx, http.MethodPost, path, bytes.NewReader(body), "application/json")
	if err != nil {
		return err
	}
	return c.do(req, out)
}

type authMode int

const (
	authNone authMode = iota
	authOptional
	authRequired
)

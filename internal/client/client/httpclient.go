package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/renewadmin/internal/common"
	"github.com/dmitrijs2005/renewadmin/internal/logging"
	"github.com/google/uuid"
)

// TokenSource yields the bearer token for outbound requests. An empty token
// means the request goes out without an Authorization header.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Request describes one JSON call.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
	// Anonymous skips the Authorization header (login).
	Anonymous bool
}

// File is a binary payload returned by a download endpoint.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Fetcher is the transport contract the services depend on.
type Fetcher interface {
	Do(ctx context.Context, req Request, out any) error
	Download(ctx context.Context, path string, query url.Values) (*File, error)
	Login(ctx context.Context, username, password string) (string, error)
}

// HTTPClient is the Fetcher over net/http.
type HTTPClient struct {
	baseURL string
	apiKey  string
	tokens  TokenSource
	http    *http.Client
	log     logging.Logger
	newID   func() string
}

// NewHTTPClient returns a client for baseURL. tokens may be nil when no call
// needs authentication.
func NewHTTPClient(baseURL, apiKey string, tokens TokenSource, timeout time.Duration, log logging.Logger) *HTTPClient {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		tokens:  tokens,
		http:    &http.Client{Timeout: timeout},
		log:     log,
		newID:   uuid.NewString,
	}
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path string, query url.Values, body any, anonymous bool) (*http.Request, string, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, "", fmt.Errorf("encode body: %w", err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return nil, "", err
	}

	requestID := c.newID()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(common.APIKeyHeaderName, c.apiKey)
	req.Header.Set(common.RequestIDHeaderName, requestID)

	if !anonymous && c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return nil, "", err
		}
		if token != "" {
			req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
		}
	}

	return req, requestID, nil
}

func (c *HTTPClient) send(ctx context.Context, req *http.Request, requestID string) (*http.Response, []byte, error) {
	ctx = logging.ContextWith(ctx, "request_id", requestID)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, nil, err
		}
		c.log.Warn(ctx, "request failed", "method", req.Method, "path", req.URL.Path, "error", err)
		return nil, nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, &NetworkError{Err: err}
	}

	c.log.Debug(ctx, "request done",
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.Unmarshal(body, &eb)
		apiErr := newAPIError(resp.StatusCode, eb.Message, requestID)
		c.log.Warn(ctx, "api error", "path", req.URL.Path, "status", resp.StatusCode, "message", eb.Message)
		return resp, body, apiErr
	}

	return resp, body, nil
}

// Do performs a JSON call and decodes the envelope's data member into out.
// out may be nil when the caller only cares about success.
func (c *HTTPClient) Do(ctx context.Context, r Request, out any) error {
	req, requestID, err := c.newRequest(ctx, r.Method, r.Path, r.Query, r.Body, r.Anonymous)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	_, body, err := c.send(ctx, req, requestID)
	if err != nil {
		return err
	}

	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("decode envelope: %w", err)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode data: %w", err)
	}
	return nil
}

// Download fetches a binary file. A JSON content type on a 2xx response is
// treated as an error body rather than the file.
func (c *HTTPClient) Download(ctx context.Context, path string, query url.Values) (*File, error) {
	req, requestID, err := c.newRequest(ctx, http.MethodGet, path, query, nil, false)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "*/*")

	resp, body, err := c.send(ctx, req, requestID)
	if err != nil {
		return nil, err
	}

	contentType := resp.Header.Get("Content-Type")
	mediaType, _, _ := mime.ParseMediaType(contentType)

	if mediaType == "application/json" {
		var env Envelope
		_ = json.Unmarshal(body, &env)
		status := env.Code
		if status < 400 {
			status = http.StatusUnprocessableEntity
		}
		apiErr := newAPIError(status, env.Message, requestID)
		return nil, fmt.Errorf("%w: %w", ErrUnexpectedContent, apiErr)
	}

	return &File{
		Name:        fileName(resp.Header.Get("Content-Disposition"), path),
		ContentType: contentType,
		Data:        body,
	}, nil
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a session token.
func (c *HTTPClient) Login(ctx context.Context, username, password string) (string, error) {
	var resp loginResponse
	err := c.Do(ctx, Request{
		Method:    http.MethodPost,
		Path:      "/api/login",
		Body:      loginRequest{Username: username, Password: password},
		Anonymous: true,
	}, &resp)
	if err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", ErrEmptyToken
	}
	return resp.Token, nil
}

func fileName(disposition, path string) string {
	if disposition != "" {
		if _, params, err := mime.ParseMediaType(disposition); err == nil && params["filename"] != "" {
			return params["filename"]
		}
	}
	if i := strings.LastIndex(path, "/"); i >= 0 && i+1 < len(path) {
		return path[i+1:]
	}
	return "download"
}

var _ Fetcher = (*HTTPClient)(nil)

package schoolsvc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/trezcool/shule/core"
)

// Client is the typed HTTP client for the school management REST API.
// The session token rides along as a query parameter on every call; the
// backend re-checks it authoritatively each time.
type Client struct {
	baseURL string
	http    *http.Client
	logger  core.Logger
}

func NewClient(conf *core.Config, logger core.Logger) *Client {
	return &Client{
		baseURL: conf.API.BaseURL,
		http:    &http.Client{Timeout: conf.API.Timeout},
		logger:  logger,
	}
}

func (c *Client) url(path, token string) string {
	u := c.baseURL + path
	if token != "" {
		u += "?token=" + url.QueryEscape(token)
	}
	return u
}

// do performs one request/response round trip. A transport failure (no
// response at all) comes back as a connection error; any non-2xx response as
// an *APIError carrying the decoded server message.
func (c *Client) do(ctx context.Context, method, path, token string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encoding request body")
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path, token), reqBody)
	if err != nil {
		return errors.Wrap(err, "creating request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn(fmt.Sprintf("school api unreachable: %s %s: %v", method, path, err))
		return &connectionError{err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return c.apiError(method, path, resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decoding response body")
	}
	return nil
}

func (c *Client) apiError(method, path string, resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	// FastAPI-style error payload
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
		apiErr.Message = payload.Detail
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}

	c.logger.Debug(fmt.Sprintf("school api: %s %s -> %d %q", method, path, resp.StatusCode, apiErr.Message))
	return apiErr
}

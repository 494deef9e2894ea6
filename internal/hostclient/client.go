package hostclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to a running bridge over its HTTP channel and host endpoints.
type Client struct {
	baseURL string
	http    *http.Client
}

// Response is a raw reply: status code plus JSON body.
type Response struct {
	StatusCode int
	Body       json.RawMessage
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/") + "/v1",
		http:    &http.Client{Timeout: timeout},
	}
}

// Call invokes a channel method. args must be a JSON object or empty.
func (c *Client) Call(ctx context.Context, method, args string) (Response, error) {
	return c.do(ctx, http.MethodPost, "/channel/"+url.PathEscape(method), args)
}

func (c *Client) Attach(ctx context.Context, activityID string, configChange bool) (Response, error) {
	body, _ := json.Marshal(map[string]string{"activityId": activityID})
	return c.do(ctx, http.MethodPost, "/host/attach"+configChangeQuery(configChange), string(body))
}

func (c *Client) Detach(ctx context.Context, configChange bool) (Response, error) {
	return c.do(ctx, http.MethodPost, "/host/detach"+configChangeQuery(configChange), "")
}

// ActivityResult delivers an activity result. data may be empty.
func (c *Client) ActivityResult(ctx context.Context, requestCode, resultCode int, data string) (Response, error) {
	payload := map[string]any{"requestCode": requestCode, "resultCode": resultCode}
	if strings.TrimSpace(data) != "" {
		payload["data"] = json.RawMessage(data)
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return Response{}, fmt.Errorf("activity result data: %w", err)
	}
	return c.do(ctx, http.MethodPost, "/host/activity-result", string(body))
}

func (c *Client) Surfaces(ctx context.Context) (Response, error) {
	return c.do(ctx, http.MethodGet, "/host/surfaces", "")
}

// Challenge answers a shown 3-D Secure challenge. action is complete, fail or
// cancel.
func (c *Client) Challenge(ctx context.Context, transactionID, action, body string) (Response, error) {
	switch action {
	case "complete", "fail", "cancel":
	default:
		return Response{}, fmt.Errorf("unknown challenge action %q", action)
	}
	return c.do(ctx, http.MethodPost, "/host/3ds/"+url.PathEscape(transactionID)+"/"+action, body)
}

func (c *Client) Flow(ctx context.Context, id string) (Response, error) {
	return c.do(ctx, http.MethodGet, "/flows/"+url.PathEscape(id), "")
}

func (c *Client) do(ctx context.Context, method, path, body string) (Response, error) {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return Response{}, err
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Response{}, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, err
	}
	return Response{StatusCode: resp.StatusCode, Body: raw}, nil
}

func configChangeQuery(configChange bool) string {
	if configChange {
		return "?configChange=true"
	}
	return ""
}

// Package gymsdk is a small Go client for the gym access service. It is used
// by the door scanner and front-desk terminal programs, and doubles as the
// canonical definition of the API's request and response shapes.
package gymsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to the gym access service.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client with a sane request timeout.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) url(path string) string {
	return c.BaseURL + path
}

func (c *Client) postJSON(ctx context.Context, path string, reqBody, target any, expectedStatus int) error {
	raw, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(path), bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	return decodeJSON(resp, target, expectedStatus)
}

func (c *Client) getJSON(ctx context.Context, path string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(path), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	return decodeJSON(resp, target, http.StatusOK)
}

// decodeJSON decodes a JSON response into target, returning a typed *APIError
// for unexpected statuses.
func decodeJSON(resp *http.Response, target any, expectedStatus int) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		return parseErrorResponse(resp, body)
	}

	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// SubmitScan enqueues a raw scanned payload from a door device.
func (c *Client) SubmitScan(ctx context.Context, payload string) (*SubmitScanResponse, error) {
	var out SubmitScanResponse
	err := c.postJSON(ctx, "/v1/scan-events", SubmitScanRequest{Payload: payload}, &out, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// PollScan retrieves the oldest pending scan event, if any. Each event is
// delivered to exactly one caller.
func (c *Client) PollScan(ctx context.Context) (*PollScanResponse, error) {
	var out PollScanResponse
	if err := c.getJSON(ctx, "/v1/scan-events/poll", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ValidateAccess submits a raw payload for an authorization decision. Denials
// come back as a normal response, not an error.
func (c *Client) ValidateAccess(ctx context.Context, payload string) (*ValidateResponse, error) {
	var out ValidateResponse
	err := c.postJSON(ctx, "/v1/access/validate", ValidateRequest{Payload: payload}, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Provision exchanges a member number and PIN for the device's TOTP secret.
func (c *Client) Provision(ctx context.Context, memberNo, pin string) (*ProvisionResponse, error) {
	var out ProvisionResponse
	err := c.postJSON(ctx, "/v1/devices/provision", ProvisionRequest{MemberNo: memberNo, PIN: pin}, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Health calls the liveness endpoint.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.getJSON(ctx, "/livez", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

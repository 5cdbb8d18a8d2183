// Package portalsdk is the Go client for the rollover portal API. It is
// used by the e2e suite and by internal tools that drive onboarding.
package portalsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// SDKClient talks to a portal instance. Unauthenticated operations hang off
// the client directly; Login returns a Session for the rest.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client

	// AdminToken authorizes the admin-only advisor invitation endpoint.
	// Leave empty for clients that never call it.
	AdminToken string
}

// NewSDKClient creates a portal client.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Login authenticates and returns a Session holding the bearer token.
func (c *SDKClient) Login(ctx context.Context, email, password string) (*Session, error) {
	var out LoginResponse
	err := c.postJSON(ctx, "/v1/auth/login", LoginRequest{Email: email, Password: password}, &out, http.StatusOK, "")
	if err != nil {
		return nil, err
	}
	return &Session{client: c, token: out.AccessToken, user: out.User}, nil
}

// AcceptInvite redeems an invitation token and sets the account password.
func (c *SDKClient) AcceptInvite(ctx context.Context, token, password string) (AcceptInviteResponse, error) {
	var out AcceptInviteResponse
	err := c.postJSON(ctx, "/v1/invites/accept", AcceptInviteRequest{Token: token, Password: password}, &out, http.StatusOK, "")
	return out, err
}

// InviteAdvisor invites an advisor through the admin surface. Requires
// AdminToken to be set.
func (c *SDKClient) InviteAdvisor(ctx context.Context, req InviteAdvisorRequest) (InviteResponse, error) {
	var out InviteResponse
	err := c.postJSON(ctx, "/v1/invites/advisor", req, &out, http.StatusOK, c.AdminToken)
	return out, err
}

// Livez checks process liveness.
func (c *SDKClient) Livez(ctx context.Context) (HealthResponse, error) {
	return c.health(ctx, "/livez")
}

// Readyz checks readiness, including database connectivity.
func (c *SDKClient) Readyz(ctx context.Context) (HealthResponse, error) {
	return c.health(ctx, "/readyz")
}

func (c *SDKClient) health(ctx context.Context, path string) (HealthResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(path), nil)
	if err != nil {
		return HealthResponse{}, err
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return HealthResponse{}, err
	}
	var out HealthResponse
	return out, decodeJSON(resp, &out, http.StatusOK)
}

func (c *SDKClient) url(path string) string {
	return c.BaseURL + path
}

// postJSON sends a JSON body and decodes a JSON response. bearer, when
// non-empty, is sent as the Authorization credential.
func (c *SDKClient) postJSON(ctx context.Context, path string, in, out any, expectedStatus int, bearer string) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(path), bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	return decodeJSON(resp, out, expectedStatus)
}

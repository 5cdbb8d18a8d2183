package portalsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Session is an authenticated portal client bound to one signed-in user.
type Session struct {
	client *SDKClient
	token  string
	user   UserProfile
}

// Token returns the raw bearer token, e.g. for storing across restarts.
func (s *Session) Token() string { return s.token }

// User returns the profile captured at login.
func (s *Session) User() UserProfile { return s.user }

// InviteClient invites a client into the caller's firm.
func (s *Session) InviteClient(ctx context.Context, req InviteClientRequest) (InviteResponse, error) {
	var out InviteResponse
	err := s.doJSON(ctx, http.MethodPost, "/v1/invites/client", req, &out, http.StatusOK)
	return out, err
}

// Firm returns the caller's firm and its member directory.
func (s *Session) Firm(ctx context.Context) (FirmResponse, error) {
	var out FirmResponse
	err := s.doJSON(ctx, http.MethodGet, "/v1/firm", nil, &out, http.StatusOK)
	return out, err
}

// Clients lists the clients the caller holds access grants for.
func (s *Session) Clients(ctx context.Context) (ClientsResponse, error) {
	var out ClientsResponse
	err := s.doJSON(ctx, http.MethodGet, "/v1/clients", nil, &out, http.StatusOK)
	return out, err
}

// ClientAccess lists who can see the given client's data.
func (s *Session) ClientAccess(ctx context.Context, clientID string) (AccessListResponse, error) {
	var out AccessListResponse
	path := "/v1/clients/" + url.PathEscape(clientID) + "/access"
	err := s.doJSON(ctx, http.MethodGet, path, nil, &out, http.StatusOK)
	return out, err
}

// GrantAccess shares the client's data with another advisor.
func (s *Session) GrantAccess(ctx context.Context, clientID, advisorID string) (AccessGrant, error) {
	var out AccessGrant
	path := "/v1/clients/" + url.PathEscape(clientID) + "/access"
	err := s.doJSON(ctx, http.MethodPost, path, GrantAccessRequest{AdvisorID: advisorID}, &out, http.StatusOK)
	return out, err
}

// RevokeAccess removes an advisor's access to the client.
func (s *Session) RevokeAccess(ctx context.Context, clientID, advisorID string) error {
	path := "/v1/clients/" + url.PathEscape(clientID) + "/access/" + url.PathEscape(advisorID)
	resp, err := s.do(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// Logout ends the session server-side. The local token is cleared either way.
func (s *Session) Logout(ctx context.Context) error {
	resp, err := s.do(ctx, http.MethodPost, "/v1/auth/logout", nil)
	s.token = ""
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

func (s *Session) do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, s.client.url(path), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	return resp, nil
}

func (s *Session) doJSON(ctx context.Context, method, path string, in, out any, expectedStatus int) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	resp, err := s.do(ctx, method, path, body)
	if err != nil {
		return err
	}
	return decodeJSON(resp, out, expectedStatus)
}

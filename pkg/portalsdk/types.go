package portalsdk

import "time"

// UserProfile is the wire form of an identity.
type UserProfile struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Role      string `json:"role,omitempty"`
}

// LoginRequest authenticates with email and password.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the session token.
type LoginResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"` // always "Bearer"
	ExpiresAt   int64       `json:"expires_at"` // unix seconds
	User        UserProfile `json:"user"`
}

// AcceptInviteRequest redeems a one-shot setup token and sets the account
// password.
type AcceptInviteRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// AcceptInviteResponse confirms the activated account.
type AcceptInviteResponse struct {
	User UserProfile `json:"user"`
}

// InviteAdvisorRequest invites an advisor into a firm (admin surface). The
// firm is created if it does not exist.
type InviteAdvisorRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FirmName  string `json:"firm_name"`
}

// InviteClientRequest invites a client into the caller's own firm.
type InviteClientRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// InviteResponse reports what an invitation did. Invited is false when the
// email already had an account and was attached directly.
type InviteResponse struct {
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
	FirmID  string `json:"firm_id"`
	Role    string `json:"role"`
	Invited bool   `json:"invited"`
}

// FirmMember is one row of the firm directory.
type FirmMember struct {
	UserProfile
	JoinedAt time.Time `json:"joined_at"`
}

// FirmResponse is the firm page payload.
type FirmResponse struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Members []FirmMember `json:"members"`
}

// ClientsResponse lists the clients the caller holds grants for.
type ClientsResponse struct {
	Clients []UserProfile `json:"clients"`
}

// GrantAccessRequest shares a client's data with another advisor.
type GrantAccessRequest struct {
	AdvisorID string `json:"advisor_id"`
}

// AccessGrant is the wire form of one advisor's access to one client.
type AccessGrant struct {
	ClientID     string    `json:"client_id"`
	AdvisorID    string    `json:"advisor_id"`
	AdvisorName  string    `json:"advisor_name,omitempty"`
	AdvisorEmail string    `json:"advisor_email,omitempty"`
	GrantedBy    string    `json:"granted_by"`
	CreatedAt    time.Time `json:"created_at"`
}

// AccessListResponse lists everyone who can see a client's data.
type AccessListResponse struct {
	Grants []AccessGrant `json:"grants"`
}

// HealthChecks reports per-dependency readiness.
type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Version string        `json:"version,omitempty"`
	Uptime  string        `json:"uptime,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// ErrorResponse is the common error body for every endpoint.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

package domain

import "time"

// Grant lets a specific advisor view a specific client's data. Grants are
// keyed by (ClientID, AdvisorID); a client can be shared with any number of
// advisors in the firm.
type Grant struct {
	ClientID  string
	AdvisorID string
	FirmID    string
	GrantedBy string
	CreatedAt time.Time
}

package domain

import "time"

// Firm is a tenant organisation grouping advisors, owners and their
// clients. Firms are created lazily the first time an advisor invitation
// names them and are never deleted.
type Firm struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

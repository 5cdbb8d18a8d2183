package app

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the portal service configuration, loaded from the environment.
type Config struct {
	Env       string `env:"ENV" envDefault:"dev"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
	Port      int    `env:"PORT" envDefault:"8080"`

	// Issuer is the iss claim on session tokens.
	Issuer string `env:"PORTAL_ISSUER" envDefault:"rollover-portal"`

	// AdminToken authorizes the advisor-invitation endpoint. When empty
	// the endpoint rejects everything; the operator must set it.
	AdminToken string `env:"PORTAL_ADMIN_TOKEN"`

	DatabaseFile string `env:"PORTAL_DATABASE_FILE" envDefault:"portal.db"`
	PepperFile   string `env:"PORTAL_PEPPER_FILE" envDefault:"pepper"`

	// SessionKeySeed is an optional hex-encoded 32-byte Ed25519 seed.
	// Without it each process signs with an ephemeral key and sessions do
	// not survive a restart.
	SessionKeySeed string        `env:"PORTAL_SESSION_SEED"`
	SessionTTL     time.Duration `env:"PORTAL_SESSION_TTL" envDefault:"12h"`

	// PortalURL is the base URL invitation links point at.
	PortalURL string `env:"PORTAL_URL" envDefault:"http://localhost:8080"`

	// SMTP relay for invitation emails. With no host configured the
	// service logs invitations instead of sending them.
	SMTPHost     string `env:"PORTAL_SMTP_HOST"`
	SMTPPort     int    `env:"PORTAL_SMTP_PORT" envDefault:"587"`
	SMTPUsername string `env:"PORTAL_SMTP_USERNAME"`
	SMTPPassword string `env:"PORTAL_SMTP_PASSWORD"`
	SMTPFrom     string `env:"PORTAL_SMTP_FROM" envDefault:"invites@localhost"`

	ShutdownGracePeriod   time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`
	InviteCleanupInterval time.Duration `env:"PORTAL_INVITE_CLEANUP_INTERVAL" envDefault:"1h"`
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

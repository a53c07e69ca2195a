// Package sessiontoken mints admin session tokens for local sign-in.
package sessiontoken

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/louisbranch/adminchrome/internal/services/admin/identity"
)

// Config holds configuration for token minting.
type Config struct {
	UserID  int64
	TTL     time.Duration
	Session identity.Config
}

// ParseConfig reads the signing settings from environment, then flags. A nil
// environment reads the process environment.
func ParseConfig(fs *flag.FlagSet, args []string, environment map[string]string) (Config, error) {
	session, err := identity.LoadConfigFromEnv(environment, nil)
	if err != nil {
		return Config{}, err
	}
	cfg := Config{TTL: 24 * time.Hour, Session: session}
	fs.Int64Var(&cfg.UserID, "user-id", cfg.UserID, "user id to sign in as")
	fs.DurationVar(&cfg.TTL, "ttl", cfg.TTL, "token lifetime")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run mints the token and writes it to out as a cookie assignment.
func Run(cfg Config, out io.Writer) error {
	if out == nil {
		return errors.New("output is required")
	}
	issuer, err := identity.NewIssuer(cfg.Session)
	if err != nil {
		return err
	}
	token, err := issuer.Mint(cfg.UserID, cfg.TTL)
	if err != nil {
		return fmt.Errorf("mint token: %w", err)
	}
	_, err = fmt.Fprintf(out, "%s=%s\n", identity.CookieName, token)
	return err
}

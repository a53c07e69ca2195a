package sessiontoken

import (
	"bytes"
	"flag"
	"strings"
	"testing"
	"time"

	"github.com/louisbranch/adminchrome/internal/services/admin/identity"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestParseConfigReadsEnvAndFlags(t *testing.T) {
	environment := map[string]string{
		"ADMINCHROME_SESSION_SECRET": " " + testSecret + " ",
		"ADMINCHROME_SESSION_ISSUER": "staging",
	}
	fs := flag.NewFlagSet("sessiontoken", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-user-id", "42", "-ttl", "2h"}, environment)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.UserID != 42 || cfg.TTL != 2*time.Hour {
		t.Fatalf("user/ttl = %d/%s", cfg.UserID, cfg.TTL)
	}
	if string(cfg.Session.Secret) != testSecret || cfg.Session.Issuer != "staging" {
		t.Fatalf("secret/issuer = %q/%q", cfg.Session.Secret, cfg.Session.Issuer)
	}
}

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("sessiontoken", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil, map[string]string{})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.TTL != 24*time.Hour || cfg.Session.Issuer != identity.DefaultIssuer || cfg.Session.Enabled() {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestParseConfigRejectsShortSecret(t *testing.T) {
	fs := flag.NewFlagSet("sessiontoken", flag.ContinueOnError)
	if _, err := ParseConfig(fs, nil, map[string]string{"ADMINCHROME_SESSION_SECRET": "short"}); err == nil {
		t.Fatal("expected error for short secret")
	}
}

func TestParseConfigBadArgs(t *testing.T) {
	fs := flag.NewFlagSet("sessiontoken", flag.ContinueOnError)
	fs.SetOutput(&bytes.Buffer{})
	if _, err := ParseConfig(fs, []string{"-user-id", "abc"}, map[string]string{}); err == nil {
		t.Fatal("expected error for non-numeric user id")
	}
}

func TestRunMintsVerifiableToken(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	session, err := identity.NewConfig(testSecret, "", func() time.Time { return now })
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	buf := &bytes.Buffer{}
	if err := Run(Config{UserID: 9, TTL: time.Hour, Session: session}, buf); err != nil {
		t.Fatalf("run: %v", err)
	}
	line := strings.TrimSpace(buf.String())
	prefix := identity.CookieName + "="
	if !strings.HasPrefix(line, prefix) {
		t.Fatalf("expected cookie prefix, got %q", line)
	}

	verifier, err := identity.NewVerifier(session)
	if err != nil {
		t.Fatalf("new verifier: %v", err)
	}
	userID, err := verifier.Verify(strings.TrimPrefix(line, prefix))
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if userID != 9 {
		t.Fatalf("user id = %d, want 9", userID)
	}
}

func TestRunErrors(t *testing.T) {
	session, err := identity.NewConfig(testSecret, "", nil)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "missing secret", cfg: Config{UserID: 1, TTL: time.Hour}},
		{name: "missing user", cfg: Config{TTL: time.Hour, Session: session}},
		{name: "zero ttl", cfg: Config{UserID: 1, Session: session}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := Run(tc.cfg, &bytes.Buffer{}); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestRunNilOutput(t *testing.T) {
	if err := Run(Config{UserID: 1, TTL: time.Hour}, nil); err == nil {
		t.Fatal("expected error for nil output")
	}
}

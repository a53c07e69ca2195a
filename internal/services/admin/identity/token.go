package identity

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/louisbranch/adminchrome/internal/platform/config"
)

// ErrInvalidToken indicates a session token failed verification.
var ErrInvalidToken = errors.New("invalid session token")

// DefaultIssuer is used when no issuer is configured.
const DefaultIssuer = "adminchrome"

const minSecretLength = 32

// sessionEnv holds raw env values before post-parse validation.
type sessionEnv struct {
	Secret string `env:"ADMINCHROME_SESSION_SECRET"`
	Issuer string `env:"ADMINCHROME_SESSION_ISSUER" envDefault:"adminchrome"`
}

// Config defines how session tokens are signed and verified.
type Config struct {
	Issuer string
	Secret []byte
	Now    func() time.Time
}

// sessionClaims is the claims type used for JWT signing and parsing.
type sessionClaims struct {
	jwt.RegisteredClaims
}

// LoadConfigFromEnv reads session token configuration from environment, or
// from the process environment when environment is nil. A missing secret
// yields an empty config, which disables identity resolution.
func LoadConfigFromEnv(environment map[string]string, now func() time.Time) (Config, error) {
	var raw sessionEnv
	var err error
	if environment == nil {
		err = config.ParseEnv(&raw)
	} else {
		err = config.ParseEnvFrom(&raw, environment)
	}
	if err != nil {
		return Config{}, fmt.Errorf("load session config: %w", err)
	}
	return NewConfig(raw.Secret, raw.Issuer, now)
}

// NewConfig validates raw session settings.
func NewConfig(secret string, issuer string, now func() time.Time) (Config, error) {
	secret = strings.TrimSpace(secret)
	issuer = strings.TrimSpace(issuer)
	if issuer == "" {
		issuer = DefaultIssuer
	}
	if now == nil {
		now = time.Now
	}
	if secret == "" {
		return Config{Issuer: issuer, Now: now}, nil
	}
	if len(secret) < minSecretLength {
		return Config{}, fmt.Errorf("ADMINCHROME_SESSION_SECRET must be at least %d bytes", minSecretLength)
	}
	return Config{Issuer: issuer, Secret: []byte(secret), Now: now}, nil
}

// Enabled reports whether tokens can be signed and verified.
func (c Config) Enabled() bool {
	return len(c.Secret) > 0
}

// Issuer mints session tokens.
type Issuer struct {
	cfg Config
}

// NewIssuer returns an issuer for cfg.
func NewIssuer(cfg Config) (*Issuer, error) {
	if !cfg.Enabled() {
		return nil, errors.New("session secret is not configured")
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Issuer{cfg: cfg}, nil
}

// Mint signs a token for userID that expires after ttl.
func (i *Issuer) Mint(userID int64, ttl time.Duration) (string, error) {
	if userID <= 0 {
		return "", fmt.Errorf("user id must be positive")
	}
	if ttl <= 0 {
		return "", fmt.Errorf("token ttl must be positive")
	}
	now := i.cfg.Now().UTC()
	claims := sessionClaims{RegisteredClaims: jwt.RegisteredClaims{
		Issuer:    i.cfg.Issuer,
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.cfg.Secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return token, nil
}

// Verifier checks session tokens.
type Verifier struct {
	cfg Config
}

// NewVerifier returns a verifier for cfg.
func NewVerifier(cfg Config) (*Verifier, error) {
	if !cfg.Enabled() {
		return nil, errors.New("session secret is not configured")
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Verifier{cfg: cfg}, nil
}

// Verify returns the user id carried by token. Every failure wraps
// ErrInvalidToken.
func (v *Verifier) Verify(token string) (int64, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, fmt.Errorf("%w: token is required", ErrInvalidToken)
	}

	var parsed sessionClaims
	_, err := jwt.ParseWithClaims(token, &parsed, func(*jwt.Token) (any, error) {
		return v.cfg.Secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(v.cfg.Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.cfg.Now),
	)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	userID, err := strconv.ParseInt(parsed.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return 0, fmt.Errorf("%w: subject %q is not a user id", ErrInvalidToken, parsed.Subject)
	}
	return userID, nil
}

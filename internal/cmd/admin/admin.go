// Package admin parses the admin command configuration and runs the server.
package admin

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/louisbranch/adminchrome/internal/platform/config"
	platformotel "github.com/louisbranch/adminchrome/internal/platform/otel"
	"github.com/louisbranch/adminchrome/internal/platform/timeouts"
	"github.com/louisbranch/adminchrome/internal/services/admin"
	"github.com/louisbranch/adminchrome/internal/services/admin/identity"
)

const serviceName = "admin"

// adminEnv holds the environment defaults for the admin flags.
type adminEnv struct {
	HTTPAddr       string   `env:"ADMINCHROME_HTTP_ADDR" envDefault:":8082"`
	DBPath         string   `env:"ADMINCHROME_DB_PATH" envDefault:"data/admin.db"`
	Locales        []string `env:"ADMINCHROME_LOCALES" envDefault:"en,de" envSeparator:","`
	BootstrapUsers string   `env:"ADMINCHROME_BOOTSTRAP_USERS"`
	SidebarToggle  bool     `env:"ADMINCHROME_SIDEBAR_TOGGLE" envDefault:"true"`
	HTMXScriptURL  string   `env:"ADMINCHROME_HTMX_SCRIPT_URL"`
}

// Config holds the admin command configuration.
type Config struct {
	HTTPAddr       string
	DBPath         string
	Locales        []string
	Session        identity.Config
	BootstrapUsers string
	SidebarToggle  bool
	HTMXScriptURL  string
}

// ParseConfig reads environment defaults, then flags. A nil environment
// reads the process environment.
func ParseConfig(fs *flag.FlagSet, args []string, environment map[string]string) (Config, error) {
	var raw adminEnv
	var err error
	if environment == nil {
		err = config.ParseEnv(&raw)
	} else {
		err = config.ParseEnvFrom(&raw, environment)
	}
	if err != nil {
		return Config{}, err
	}
	session, err := identity.LoadConfigFromEnv(environment, nil)
	if err != nil {
		return Config{}, err
	}
	cfg := Config{
		HTTPAddr:       raw.HTTPAddr,
		DBPath:         raw.DBPath,
		Session:        session,
		BootstrapUsers: raw.BootstrapUsers,
		SidebarToggle:  raw.SidebarToggle,
		HTMXScriptURL:  raw.HTMXScriptURL,
	}

	locales := strings.Join(raw.Locales, ",")
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "path to the admin SQLite database")
	fs.StringVar(&locales, "locales", locales, "comma-separated supported locale codes, default first")
	fs.BoolVar(&cfg.SidebarToggle, "sidebar-toggle", cfg.SidebarToggle, "show the sidebar toggle in the header")
	fs.StringVar(&cfg.HTMXScriptURL, "htmx-script-url", cfg.HTMXScriptURL, "HTMX script URL (empty uses plain form posts)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg.Locales = splitCSV(locales)
	return cfg, nil
}

// Run starts the admin server.
func Run(ctx context.Context, cfg Config) error {
	settings, err := platformotel.LoadSettings()
	if err != nil {
		return fmt.Errorf("load otel settings: %w", err)
	}
	shutdown, err := platformotel.Setup(ctx, serviceName, settings)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("otel shutdown: %v", err)
		}
	}()

	server, err := admin.NewServer(ctx, admin.Config{
		HTTPAddr:       cfg.HTTPAddr,
		DBPath:         cfg.DBPath,
		Locales:        cfg.Locales,
		Session:        cfg.Session,
		BootstrapUsers: cfg.BootstrapUsers,
		SidebarToggle:  cfg.SidebarToggle,
		HTMXScriptURL:  cfg.HTMXScriptURL,
	})
	if err != nil {
		return fmt.Errorf("init admin server: %w", err)
	}
	defer server.Close()

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve admin: %w", err)
	}
	return nil
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	output := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		output = append(output, trimmed)
	}
	return output
}

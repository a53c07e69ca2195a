package admin

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	platformi18n "github.com/louisbranch/adminchrome/internal/platform/i18n"
	"github.com/louisbranch/adminchrome/internal/platform/i18n/catalog"
	"github.com/louisbranch/adminchrome/internal/platform/timeouts"
	"github.com/louisbranch/adminchrome/internal/services/admin/identity"
	"github.com/louisbranch/adminchrome/internal/services/admin/storage"
	adminsqlite "github.com/louisbranch/adminchrome/internal/services/admin/storage/sqlite"
	"go.opentelemetry.io/otel/trace"
)

// Config defines the inputs for the admin process.
type Config struct {
	HTTPAddr string
	DBPath   string
	// Locales lists the supported locale codes; the first is the default.
	Locales []string
	Session identity.Config
	// BootstrapUsers is a JSON list of users written to the directory at
	// startup.
	BootstrapUsers string
	SidebarToggle  bool
	HTMXScriptURL  string
	TracerProvider trace.TracerProvider
}

// Server hosts the admin dashboard.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	adminStore *adminsqlite.Store
}

// NewServer opens the user directory and builds the HTTP server.
func NewServer(ctx context.Context, config Config) (*Server, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	locales, err := platformi18n.NewLocaleSet(config.Locales)
	if err != nil {
		return nil, fmt.Errorf("load locales: %w", err)
	}
	bundle, err := catalog.LoadEmbedded()
	if err != nil {
		return nil, fmt.Errorf("load message catalog: %w", err)
	}
	for _, code := range locales.Codes() {
		if !bundle.HasLocale(code) {
			log.Printf("admin: locale %s has no catalog, falling back to %s", code, catalog.BaseLocale)
		}
	}
	users, err := storage.ParseBootstrapUsers(config.BootstrapUsers)
	if err != nil {
		return nil, err
	}

	var verifier *identity.Verifier
	if config.Session.Enabled() {
		verifier, err = identity.NewVerifier(config.Session)
		if err != nil {
			return nil, fmt.Errorf("init session verifier: %w", err)
		}
	} else {
		log.Printf("admin: session secret not set, identity badge disabled")
	}

	adminStore, err := openAdminStore(config.DBPath)
	if err != nil {
		return nil, err
	}
	if err := storage.Seed(ctx, adminStore, users); err != nil {
		_ = adminStore.Close()
		return nil, fmt.Errorf("seed bootstrap users: %w", err)
	}

	handler, err := NewHandler(HandlerConfig{
		Users:          adminStore,
		Locales:        locales,
		Catalog:        bundle,
		Verifier:       verifier,
		SidebarToggle:  config.SidebarToggle,
		HTMXScriptURL:  strings.TrimSpace(config.HTMXScriptURL),
		TracerProvider: config.TracerProvider,
	})
	if err != nil {
		_ = adminStore.Close()
		return nil, err
	}
	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           handler,
		ReadHeaderTimeout: timeouts.ReadHeader,
		IdleTimeout:       timeouts.Idle,
	}

	return &Server{
		httpAddr:   httpAddr,
		httpServer: httpServer,
		adminStore: adminStore,
	}, nil
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	if s == nil || s.httpServer == nil {
		return nil
	}
	return s.httpServer.Handler
}

// ListenAndServe serves HTTP until ctx is canceled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("admin server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	serveErr := make(chan error, 1)
	log.Printf("admin listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases the user directory.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.adminStore != nil {
		if err := s.adminStore.Close(); err != nil {
			log.Printf("close admin store: %v", err)
		}
	}
}

func openAdminStore(path string) (*adminsqlite.Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		path = filepath.Join("data", "admin.db")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}

	store, err := adminsqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open admin sqlite store: %w", err)
	}
	return store, nil
}

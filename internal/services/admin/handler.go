package admin

import (
	"errors"
	"net/http"

	"github.com/a-h/templ"
	platformi18n "github.com/louisbranch/adminchrome/internal/platform/i18n"
	"github.com/louisbranch/adminchrome/internal/platform/i18n/catalog"
	platformotel "github.com/louisbranch/adminchrome/internal/platform/otel"
	"github.com/louisbranch/adminchrome/internal/services/admin/header"
	"github.com/louisbranch/adminchrome/internal/services/admin/identity"
	"github.com/louisbranch/adminchrome/internal/services/admin/locale"
	"github.com/louisbranch/adminchrome/internal/services/admin/routepath"
	"github.com/louisbranch/adminchrome/internal/services/admin/sidebar"
	"github.com/louisbranch/adminchrome/internal/services/admin/static"
	"github.com/louisbranch/adminchrome/internal/services/admin/storage"
	"github.com/louisbranch/adminchrome/internal/services/admin/templates"
	"github.com/louisbranch/adminchrome/internal/services/admin/theme"
	"github.com/louisbranch/adminchrome/internal/services/admin/transport/httpmux"
	"github.com/louisbranch/adminchrome/internal/services/shared/htmx"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/message"
)

const tracerName = "github.com/louisbranch/adminchrome/internal/services/admin"

// HandlerConfig holds the dependencies of the admin HTTP handler.
type HandlerConfig struct {
	Users    storage.UserStore
	Locales  *platformi18n.LocaleSet
	Catalog  *catalog.Bundle
	Verifier *identity.Verifier
	// SidebarToggle shows the header's sidebar toggle.
	SidebarToggle bool
	HTMXScriptURL string
	// TracerProvider defaults to the global provider.
	TracerProvider trace.TracerProvider
}

// Handler serves the admin dashboard and chrome routes.
type Handler struct {
	identity      *identity.Provider
	locales       *platformi18n.LocaleSet
	catalog       *catalog.Bundle
	sidebarToggle bool
	htmxScriptURL string
}

// requestChrome is the per-request collaborator set behind one header.
type requestChrome struct {
	input   header.Input
	locale  *locale.Provider
	theme   *theme.Provider
	sidebar *sidebar.State
	printer *message.Printer
}

// NewHandler builds the HTTP handler for the admin server.
func NewHandler(cfg HandlerConfig) (http.Handler, error) {
	if cfg.Locales == nil {
		return nil, errors.New("locales are required")
	}
	if cfg.Catalog == nil {
		return nil, errors.New("message catalog is required")
	}
	h := &Handler{
		locales:       cfg.Locales,
		catalog:       cfg.Catalog,
		sidebarToggle: cfg.SidebarToggle,
		htmxScriptURL: cfg.HTMXScriptURL,
	}
	if cfg.Users != nil {
		h.identity = identity.NewProvider(cfg.Users)
	}

	var handler http.Handler = h.routes()
	handler = identity.Middleware(cfg.Verifier)(handler)
	handler = platformotel.HTTPMiddleware(cfg.TracerProvider, tracerName)(handler)
	return handler, nil
}

// routes wires the HTTP routes for the admin handler.
func (h *Handler) routes() http.Handler {
	adminMux := http.NewServeMux()
	adminMux.HandleFunc("GET "+routepath.Root+"{$}", h.handleDashboard)
	adminMux.HandleFunc("GET "+routepath.Healthz, h.handleHealthz)
	header.NewController(func(w http.ResponseWriter, r *http.Request) header.Input {
		return h.resolve(w, r).input
	}).Register(adminMux)

	rootMux := http.NewServeMux()
	httpmux.MountStatic(rootMux, static.Assets(), withCacheControl)
	httpmux.MountFlags(rootMux, static.Flags(), withCacheControl)
	httpmux.MountAdminRoutes(rootMux, adminMux)
	return rootMux
}

// resolve builds the header collaborators for one request.
func (h *Handler) resolve(w http.ResponseWriter, r *http.Request) requestChrome {
	localeProvider := locale.FromRequest(w, r, h.locales)
	themeProvider := theme.FromRequest(w, r)
	sidebarState := sidebar.FromRequest(w, r)
	printer := h.catalog.Printer(localeProvider.Tag())

	props := header.Props{IsSidebarOpen: sidebarState.IsOpen()}
	if h.sidebarToggle {
		props.OnToggleSidebar = sidebarState.Toggle
	}

	input := header.Input{
		Props:       props,
		Locale:      localeProvider,
		Router:      localeProvider,
		Theme:       themeProvider,
		Localizer:   printer,
		CurrentPath: htmx.PagePath(r),
	}
	if h.identity != nil {
		input.Identity = h.identity
	}
	return requestChrome{
		input:   input,
		locale:  localeProvider,
		theme:   themeProvider,
		sidebar: sidebarState,
		printer: printer,
	}
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	chrome := h.resolve(w, r)
	ctx := r.Context()

	view := templates.DashboardView{}
	if chrome.input.Identity != nil {
		if current, ok := chrome.input.Identity.Identity(ctx); ok {
			view.UserName = current.Name
		}
	}

	page := templates.PageContext{
		Lang:          chrome.locale.CurrentLocale(ctx),
		Loc:           chrome.printer,
		Title:         templates.T(chrome.printer, "dashboard.title"),
		CurrentPath:   r.URL.RequestURI(),
		Theme:         theme.DataTheme(chrome.theme.ColorMode(ctx)),
		SidebarOpen:   chrome.sidebar.IsOpen(),
		HTMXScriptURL: h.htmxScriptURL,
		Header:        header.Header(ctx, chrome.input),
	}
	templ.Handler(templates.DashboardFullPage(view, page)).ServeHTTP(w, r)
}

func (h *Handler) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func withCacheControl(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		next.ServeHTTP(w, r)
	})
}

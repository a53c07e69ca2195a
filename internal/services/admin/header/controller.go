package header

import (
	"log"
	"net/http"

	"github.com/louisbranch/adminchrome/internal/services/admin/routepath"
	"github.com/louisbranch/adminchrome/internal/services/shared/htmx"
)

// Resolver builds the header input for one request. Collaborators returned
// here may write cookies to w when toggled.
type Resolver func(w http.ResponseWriter, r *http.Request) Input

// Controller serves the header fragment and its activation handlers.
//
// Each activation calls its collaborator exactly once and never re-renders:
// the new state shows up on the next render, after the collaborator reports
// it.
type Controller struct {
	resolve Resolver
}

// NewController returns a controller reading inputs from resolve.
func NewController(resolve Resolver) *Controller {
	return &Controller{resolve: resolve}
}

// Register mounts the chrome routes on mux.
func (c *Controller) Register(mux *http.ServeMux) {
	if c == nil || mux == nil {
		return
	}
	mux.HandleFunc("GET "+routepath.ChromeHeader, c.Fragment)
	mux.HandleFunc("POST "+routepath.ChromeSidebar, c.ToggleSidebar)
	mux.HandleFunc("POST "+routepath.ChromeTheme, c.ToggleTheme)
}

// Fragment renders the header alone, for HTMX swaps.
func (c *Controller) Fragment(w http.ResponseWriter, r *http.Request) {
	in := c.input(w, r)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := Header(r.Context(), in).Render(r.Context(), w); err != nil {
		log.Printf("chrome: render header: %v", err)
	}
}

// ToggleSidebar forwards one activation to the sidebar callback.
func (c *Controller) ToggleSidebar(w http.ResponseWriter, r *http.Request) {
	in := c.input(w, r)
	if in.Props.OnToggleSidebar == nil {
		http.NotFound(w, r)
		return
	}
	if err := in.Props.OnToggleSidebar(r.Context()); err != nil {
		log.Printf("chrome: toggle sidebar: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	c.acknowledge(w, r)
}

// ToggleTheme forwards one activation to the color-mode provider.
func (c *Controller) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	in := c.input(w, r)
	if in.Theme == nil {
		http.NotFound(w, r)
		return
	}
	if err := in.Theme.ToggleColorMode(r.Context()); err != nil {
		log.Printf("chrome: toggle color mode: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	c.acknowledge(w, r)
}

func (c *Controller) input(w http.ResponseWriter, r *http.Request) Input {
	if c == nil || c.resolve == nil {
		return Input{}
	}
	return c.resolve(w, r)
}

// acknowledge answers a completed activation: HTMX clients get an event that
// refetches the header, plain form posts are redirected back.
func (c *Controller) acknowledge(w http.ResponseWriter, r *http.Request) {
	if htmx.IsHTMXRequest(r) {
		htmx.Trigger(w, ChangedEvent)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	returnTo := routepath.SafeReturnTo(r.FormValue(routepath.ReturnToParam))
	http.Redirect(w, r, returnTo, http.StatusSeeOther)
}

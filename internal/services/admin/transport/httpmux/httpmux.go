// Package httpmux wires admin route groups into the root mux.
package httpmux

import (
	"io/fs"
	"net/http"

	"github.com/louisbranch/adminchrome/internal/services/admin/routepath"
)

// MountStatic wires static asset serving into the root mux.
func MountStatic(rootMux *http.ServeMux, staticFS fs.FS, withCache func(http.Handler) http.Handler) {
	mountFS(rootMux, routepath.StaticPrefix, staticFS, withCache)
}

// MountFlags wires locale flag images into the root mux.
func MountFlags(rootMux *http.ServeMux, flagsFS fs.FS, withCache func(http.Handler) http.Handler) {
	mountFS(rootMux, routepath.FlagsPrefix, flagsFS, withCache)
}

// MountAdminRoutes mounts admin application routes under root path.
func MountAdminRoutes(rootMux *http.ServeMux, adminMux http.Handler) {
	if rootMux == nil || adminMux == nil {
		return
	}
	rootMux.Handle(routepath.Root, adminMux)
}

func mountFS(rootMux *http.ServeMux, prefix string, assets fs.FS, wrap func(http.Handler) http.Handler) {
	if rootMux == nil || assets == nil {
		return
	}
	handler := http.StripPrefix(prefix, http.FileServer(http.FS(assets)))
	if wrap != nil {
		handler = wrap(handler)
	}
	rootMux.Handle(prefix, handler)
}

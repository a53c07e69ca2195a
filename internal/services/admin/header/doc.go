// Package header renders the admin chrome header bar.
//
// Rendering happens in two steps. Decide turns explicit inputs (props plus
// the identity, locale, routing and color-mode collaborators) into a
// ViewState record; Render draws markup from that record alone. The
// Controller exposes the header's activation handlers over HTTP, each of
// which calls exactly one collaborator.
package header

// Package admin hosts the admin dashboard shell around the chrome header.
//
// Each request resolves the header's collaborators from cookies, the session
// token and the user directory, renders the dashboard page, and serves the
// chrome actions that toggle the sidebar and color mode.
package admin

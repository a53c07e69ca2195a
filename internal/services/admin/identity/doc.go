// Package identity resolves the signed-in admin user for the chrome header.
//
// A signed session token in the admin_session cookie carries the user id;
// Middleware verifies it and stores the id on the request context, and
// Provider turns that id into display data from the user directory.
// Minting tokens is left to tooling (see cmd/session-token); there is no
// login flow here.
package identity

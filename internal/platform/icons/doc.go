// Package icons defines the icon identifiers used by the admin chrome.
//
// Identifiers stay stable while the Lucide symbol behind each one may change;
// views reference icons by ID and render them through the inline sprite.
package icons

// Package storage defines the persistence contracts behind the admin chrome.
//
// The header only sees identities through the identity adapter; this package
// keeps the user directory those identities are read from.
package storage

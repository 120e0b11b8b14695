// Package session persists the CLI session between runs in a small
// key/value table of the local SQLite database. Only what is needed to
// resume is stored: the refresh token and the identity it belongs to.
package session

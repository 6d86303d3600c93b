// Package session owns the authentication token: creation from a login
// response, persistence with cookie semantics, retrieval, and invalidation.
package session

import (
	"database/sql"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultTTL matches the server-issued token lifetime.
	DefaultTTL = time.Hour

	cookieName = "access_token"
)

// Store manages the session token for one API host in SQLite.
// At most one active token exists per host.
type Store struct {
	db   *sql.DB
	host string
}

// NewStore creates a session store scoped to the given API host
// (hostname or host:port of the server URL).
func NewStore(db *sql.DB, host string) *Store {
	return &Store{db: db, host: host}
}

// Create persists rawToken as a cookie-shaped record: URL-encoded value,
// path "/", absolute expiry now+ttl, SameSite Lax, and the Secure flag on
// unless the host is a loopback/development address. Any previous token
// for the host is replaced.
func (s *Store) Create(rawToken string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	expiresAt := time.Now().Add(ttl)
	secure := 0
	if !isLoopback(s.host) {
		secure = 1
	}

	if _, err := s.db.Exec(
		`INSERT OR REPLACE INTO sessions (host, name, value, path, same_site, secure, expires_at)
		 VALUES (?, ?, ?, '/', 'lax', ?, ?)`,
		s.host, cookieName, url.QueryEscape(rawToken), secure, expiresAt,
	); err != nil {
		return fmt.Errorf("storing session: %w", err)
	}

	return nil
}

// Token returns the stored token, URL-decoded.
// The second return is false when no token is stored or it has expired.
func (s *Store) Token() (string, bool) {
	cookie, ok := s.cookie()
	if !ok {
		return "", false
	}

	value, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return "", false
	}
	return value, true
}

// Cookie returns the stored session rendered as an http.Cookie with its
// persisted attributes, or false when absent or expired.
func (s *Store) Cookie() (*http.Cookie, bool) {
	return s.cookie()
}

func (s *Store) cookie() (*http.Cookie, bool) {
	var (
		name, value, path, sameSite string
		secure                      int
		expiresAt                   time.Time
	)

	err := s.db.QueryRow(
		"SELECT name, value, path, same_site, secure, expires_at FROM sessions WHERE host = ?",
		s.host,
	).Scan(&name, &value, &path, &sameSite, &secure, &expiresAt)
	if err != nil {
		return nil, false
	}

	if time.Now().After(expiresAt) {
		return nil, false
	}

	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		Expires:  expiresAt,
		Secure:   secure != 0,
		SameSite: http.SameSiteLaxMode,
	}, true
}

// Destroy overwrites the stored token with an immediately-expired entry.
func (s *Store) Destroy() error {
	if _, err := s.db.Exec(
		`INSERT OR REPLACE INTO sessions (host, name, value, path, same_site, secure, expires_at)
		 VALUES (?, ?, '', '/', 'lax', 0, ?)`,
		s.host, cookieName, time.Now().Add(-time.Second),
	); err != nil {
		return fmt.Errorf("destroying session: %w", err)
	}
	return nil
}

// Cleanup removes expired sessions.
func (s *Store) Cleanup() error {
	if _, err := s.db.Exec(
		"DELETE FROM sessions WHERE expires_at < ?",
		time.Now(),
	); err != nil {
		return fmt.Errorf("cleaning up sessions: %w", err)
	}
	return nil
}

// isLoopback reports whether host names a local development address,
// in which case the Secure flag is left off so a plain-HTTP server works.
func isLoopback(host string) bool {
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	if strings.EqualFold(host, "localhost") {
		return true
	}
	if ip := net.ParseIP(host); ip != nil {
		return ip.IsLoopback()
	}
	return false
}

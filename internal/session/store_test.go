package session

import (
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/Aluranae/hbnb-cli/internal/db"
)

func newTestStore(t *testing.T, host string) *Store {
	t.Helper()

	database, err := db.Open(filepath.Join(t.TempDir(), "session.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() {
		if err := database.Close(); err != nil {
			t.Errorf("closing db: %v", err)
		}
	})

	return NewStore(database, host)
}

func TestCreateAndToken(t *testing.T) {
	s := newTestStore(t, "localhost:5000")

	if err := s.Create("h.p.s", 0); err != nil {
		t.Fatalf("create: %v", err)
	}

	token, ok := s.Token()
	if !ok {
		t.Fatal("expected a stored token")
	}
	if token != "h.p.s" {
		t.Errorf("token = %q, want h.p.s", token)
	}
}

func TestTokenURLDecoding(t *testing.T) {
	s := newTestStore(t, "localhost")

	raw := "a token/with=odd chars+"
	if err := s.Create(raw, time.Minute); err != nil {
		t.Fatalf("create: %v", err)
	}

	token, ok := s.Token()
	if !ok {
		t.Fatal("expected a stored token")
	}
	if token != raw {
		t.Errorf("token = %q, want %q", token, raw)
	}

	cookie, ok := s.Cookie()
	if !ok {
		t.Fatal("expected a cookie")
	}
	if cookie.Value == raw {
		t.Error("stored cookie value should be URL-encoded")
	}
}

func TestTokenAbsent(t *testing.T) {
	s := newTestStore(t, "localhost")

	if _, ok := s.Token(); ok {
		t.Error("expected no token before login")
	}
}

func TestTokenExpired(t *testing.T) {
	s := newTestStore(t, "localhost")

	if err := s.Create("tok", time.Millisecond); err != nil {
		t.Fatalf("create: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	if _, ok := s.Token(); ok {
		t.Error("expected expired token to be absent")
	}
}

func TestCreateReplacesPreviousToken(t *testing.T) {
	s := newTestStore(t, "localhost")

	if err := s.Create("first", time.Minute); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s.Create("second", time.Minute); err != nil {
		t.Fatalf("create: %v", err)
	}

	token, ok := s.Token()
	if !ok {
		t.Fatal("expected a stored token")
	}
	if token != "second" {
		t.Errorf("token = %q, want second", token)
	}
}

func TestDestroy(t *testing.T) {
	s := newTestStore(t, "localhost")

	if err := s.Create("tok", time.Minute); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s.Destroy(); err != nil {
		t.Fatalf("destroy: %v", err)
	}

	if _, ok := s.Token(); ok {
		t.Error("expected no token after destroy")
	}
}

func TestCleanup(t *testing.T) {
	s := newTestStore(t, "localhost")

	if err := s.Create("tok", time.Minute); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s.Destroy(); err != nil {
		t.Fatalf("destroy: %v", err)
	}
	if err := s.Cleanup(); err != nil {
		t.Fatalf("cleanup: %v", err)
	}

	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM sessions").Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Errorf("rows after cleanup = %d, want 0", count)
	}
}

func TestCookieAttributes(t *testing.T) {
	tests := []struct {
		name       string
		host       string
		wantSecure bool
	}{
		{"localhost", "localhost:5000", false},
		{"loopback ip", "127.0.0.1:5000", false},
		{"ipv6 loopback", "[::1]:5000", false},
		{"production host", "hbnb.example.com", true},
		{"public ip", "203.0.113.7:443", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t, tt.host)
			if err := s.Create("tok", time.Minute); err != nil {
				t.Fatalf("create: %v", err)
			}

			cookie, ok := s.Cookie()
			if !ok {
				t.Fatal("expected a cookie")
			}
			if cookie.Name != "access_token" {
				t.Errorf("name = %q, want access_token", cookie.Name)
			}
			if cookie.Path != "/" {
				t.Errorf("path = %q, want /", cookie.Path)
			}
			if cookie.SameSite != http.SameSiteLaxMode {
				t.Errorf("samesite = %v, want Lax", cookie.SameSite)
			}
			if cookie.Secure != tt.wantSecure {
				t.Errorf("secure = %v, want %v", cookie.Secure, tt.wantSecure)
			}
			if cookie.Expires.Before(time.Now()) {
				t.Error("expiry should be in the future")
			}
		})
	}
}

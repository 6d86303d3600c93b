package cli

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Aluranae/hbnb-cli/internal/session"
)

// TestLoginSessionFlow walks the full login path: authenticate against a
// mock API, persist the token with cookie semantics, read it back, and
// clear it via logout.
func TestLoginSessionFlow(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]string{"access_token": "h.p.s"}); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}))
	defer srv.Close()
	t.Setenv("HBNB_SERVER_URL", srv.URL)

	token, err := newAPIClient().Login("a@b.com", "x")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	sessions, database, err := openSessionStore()
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := sessions.Create(token, session.DefaultTTL); err != nil {
		closeDB(database)
		t.Fatalf("create: %v", err)
	}

	stored, ok := sessions.Token()
	if !ok || stored != "h.p.s" {
		closeDB(database)
		t.Fatalf("stored token = %q, %v", stored, ok)
	}

	cookie, ok := sessions.Cookie()
	if !ok {
		closeDB(database)
		t.Fatal("expected a cookie")
	}
	if cookie.Name != "access_token" || cookie.Path != "/" {
		closeDB(database)
		t.Fatalf("cookie = %+v", cookie)
	}
	closeDB(database)

	// Logout through the command path.
	if err := runLogout(); err != nil {
		t.Fatalf("logout: %v", err)
	}

	sessions, database, err = openSessionStore()
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer closeDB(database)

	if _, ok := sessions.Token(); ok {
		t.Error("expected no token after logout")
	}
}

// TestListingsCommand runs the listings command against a mock API.
func TestListingsCommand(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			t.Errorf("expected anonymous request, got %q", r.Header.Get("Authorization"))
		}
		w.Header().Set("Content-Type", "application/json")
		body := `{"places": [{"id": "p-1", "title": "First", "price": 30}]}`
		if _, err := w.Write([]byte(body)); err != nil {
			t.Fatalf("write: %v", err)
		}
	}))
	defer srv.Close()
	t.Setenv("HBNB_SERVER_URL", srv.URL)

	if err := runListings("all"); err != nil {
		t.Fatalf("listings: %v", err)
	}
	if err := runListings("50"); err != nil {
		t.Fatalf("listings with ceiling: %v", err)
	}
	if err := runListings("cheap"); err == nil {
		t.Error("expected error for unknown filter value")
	}
}

package handlers_test

import (
	"net/http"
	"net/url"
	"testing"
)

func TestRegisterLoginLogoutFlow(t *testing.T) {
	app, db := newTestApp(t)

	s := newSession(t, app)
	s.register(t, app, "flow@example.com", "pw123456", "flow")

	// Password never stored in plaintext
	var hash string
	if err := db.Get(&hash, `SELECT password_hash FROM users WHERE email='flow@example.com'`); err != nil {
		t.Fatal(err)
	}
	if hash == "pw123456" || hash[:2] != "$2" {
		t.Fatalf("unexpected stored hash: %q", hash)
	}

	// Logged-in session reaches the dashboard
	if resp := s.get(t, app, "/dashboard"); resp.StatusCode != http.StatusOK {
		t.Fatalf("dashboard after register: got %d", resp.StatusCode)
	}

	// Logout invalidates the session
	if resp := s.get(t, app, "/logout"); resp.StatusCode != http.StatusFound {
		t.Fatalf("logout: got %d", resp.StatusCode)
	}
	if resp := s.get(t, app, "/dashboard"); resp.StatusCode != http.StatusFound {
		t.Fatalf("dashboard after logout should redirect, got %d", resp.StatusCode)
	}

	// Fresh login with the same credentials
	s2 := newSession(t, app)
	resp := s2.post(t, app, "/login", url.Values{"email": {"flow@example.com"}, "password": {"pw123456"}})
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("login after logout: got %d", resp.StatusCode)
	}
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	app, _ := newTestApp(t)

	s := newSession(t, app)
	s.register(t, app, "taken@example.com", "pw123456", "first")

	s2 := newSession(t, app)
	resp := s2.post(t, app, "/register", url.Values{
		"email": {"Taken@Example.com"}, "password": {"pw123456"}, "username": {"second"},
	})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("duplicate email: expected 409, got %d", resp.StatusCode)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app, _ := newTestApp(t)
	s := newSession(t, app)

	// seeded demo user, wrong password
	resp := s.post(t, app, "/login", url.Values{"email": {"demo@ecofinds.app"}, "password": {"nope"}})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("wrong password: expected 401, got %d", resp.StatusCode)
	}
	// unknown email gets the same response code
	resp = s.post(t, app, "/login", url.Values{"email": {"ghost@example.com"}, "password": {"demo123"}})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("unknown email: expected 401, got %d", resp.StatusCode)
	}
}

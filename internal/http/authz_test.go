package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

// Every authenticated route redirects anonymous requests to /login.
func TestGuardedRoutesRedirectAnonymous(t *testing.T) {
	app, _ := newTestApp(t)

	gets := []string{"/dashboard", "/cart", "/purchases", "/products/new"}
	for _, p := range gets {
		resp, err := app.Test(httptest.NewRequest("GET", p, nil))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusFound {
			t.Fatalf("GET %s anonymous: expected 302, got %d", p, resp.StatusCode)
		}
		if loc := resp.Header.Get("Location"); loc != "/login" {
			t.Fatalf("GET %s: expected redirect to /login, got %q", p, loc)
		}
	}
}

// A seller's listing cannot be edited or deleted by another account.
func TestSellerOnlyMutations(t *testing.T) {
	app, db := newTestApp(t)

	s := newSession(t, app)
	s.register(t, app, "intruder@example.com", "pw123456", "intruder")

	// p-denim belongs to the seeded demo user
	resp := s.post(t, app, "/products/p-denim/edit", url.Values{
		"title": {"hijacked"}, "description": {"x"}, "category": {"Other"}, "price": {"1"},
	})
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("foreign edit: expected 403, got %d", resp.StatusCode)
	}
	resp = s.post(t, app, "/products/p-denim/delete", url.Values{})
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("foreign delete: expected 403, got %d", resp.StatusCode)
	}

	// No mutation occurred
	var title string
	if err := db.Get(&title, `SELECT title FROM products WHERE id='p-denim'`); err != nil {
		t.Fatal(err)
	}
	if title != "Vintage Denim Jacket" {
		t.Fatalf("denied request mutated the listing: %q", title)
	}
}

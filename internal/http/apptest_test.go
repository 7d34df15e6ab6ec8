package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"
	"github.com/jmoiron/sqlx"

	"ecofinds/internal/http/handlers"
	"ecofinds/internal/repos"
	"ecofinds/internal/services"
)

// newTestApp wires the real handlers over an in-memory, seeded database
// with the same middleware chain main() uses (minus rate limiting).
func newTestApp(t *testing.T) (*fiber.App, *sqlx.DB) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	userRepo := repos.NewUserRepo(db)
	authSvc := &services.AuthService{Users: userRepo}

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Use(requestid.New())
	app.Use(csrf.New(csrf.Config{KeyLookup: "form:csrf", CookieName: "csrf_", CookieSameSite: "Lax"}))
	app.Use(func(c *fiber.Ctx) error {
		if sid := c.Cookies("sid"); sid != "" {
			if u, err := authSvc.CurrentUser(sid); err == nil && u != nil {
				c.Locals("user", u)
			}
		}
		return c.Next()
	})

	deps := handlers.NewDeps(db, authSvc)
	guard := handlers.RequireUser(authSvc)
	authH := deps.AuthHandler

	app.Get("/", deps.ProductHandler.Home)
	app.Get("/products/new", guard, deps.ProductHandler.NewForm)
	app.Get("/products/:id", deps.ProductHandler.Detail)
	app.Get("/register", authH.RegisterForm)
	app.Post("/register", authH.Register)
	app.Get("/login", authH.LoginForm)
	app.Post("/login", authH.Login)
	app.Get("/logout", guard, authH.Logout)
	app.Get("/dashboard", guard, deps.DashboardHandler.View)
	app.Post("/dashboard", guard, deps.DashboardHandler.UpdateProfile)
	app.Post("/products/new", guard, deps.ProductHandler.Create)
	app.Post("/products/:id/edit", guard, deps.ProductHandler.Edit)
	app.Post("/products/:id/delete", guard, deps.ProductHandler.Delete)
	app.Get("/cart", guard, deps.CartHandler.View)
	app.Post("/cart/add/:id", guard, deps.CartHandler.Add)
	app.Post("/cart/update/:id", guard, deps.CartHandler.Update)
	app.Post("/cart/remove/:id", guard, deps.CartHandler.Remove)
	app.Post("/cart/checkout", guard, deps.OrderHandler.Checkout)
	app.Get("/purchases", guard, deps.OrderHandler.History)

	return app, db
}

func extractCookie(resp *http.Response, name string) string {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

// session holds the cookies a browser would carry between requests.
type session struct {
	csrf string
	sid  string
}

func newSession(t *testing.T, app *fiber.App) *session {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", "/login", nil))
	if err != nil {
		t.Fatal(err)
	}
	tok := extractCookie(resp, "csrf_")
	if tok == "" {
		t.Fatal("csrf token missing")
	}
	return &session{csrf: tok}
}

func (s *session) post(t *testing.T, app *fiber.App, path string, form url.Values) *http.Response {
	t.Helper()
	form.Set("csrf", s.csrf)
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "csrf_", Value: s.csrf})
	if s.sid != "" {
		req.AddCookie(&http.Cookie{Name: "sid", Value: s.sid})
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if sid := extractCookie(resp, "sid"); sid != "" {
		s.sid = sid
	}
	return resp
}

func (s *session) get(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if s.sid != "" {
		req.AddCookie(&http.Cookie{Name: "sid", Value: s.sid})
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

// register creates an account and leaves the session logged in.
func (s *session) register(t *testing.T, app *fiber.App, email, password, username string) {
	t.Helper()
	resp := s.post(t, app, "/register", url.Values{
		"email": {email}, "password": {password}, "username": {username},
	})
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("register %s: expected redirect, got %d", email, resp.StatusCode)
	}
	if s.sid == "" {
		t.Fatal("sid not set after register")
	}
}

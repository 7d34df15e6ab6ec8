package handlers

import (
	"errors"
	"time"

	"ecofinds/internal/domain"
	"ecofinds/internal/log"
	"ecofinds/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   false,
		})
	}
	return sid
}

func (h *AuthHandler) RegisterForm(c *fiber.Ctx) error {
	return render(c, "register", fiber.Map{"Err": ""})
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	sid := ensureSID(c)
	email := c.FormValue("email")
	password := c.FormValue("password")
	username := c.FormValue("username")

	_, err := h.Auth.Register(sid, email, password, username)
	if err != nil {
		var ve *domain.ValidationError
		switch {
		case errors.As(err, &ve):
			log.Security(c, "auth.register.fail", map[string]any{"field": ve.Field})
			return c.Status(fiber.StatusBadRequest).Render("register", fiber.Map{"Err": ve.Msg})
		case errors.Is(err, domain.ErrEmailTaken):
			log.Security(c, "auth.register.conflict", map[string]any{"email": email})
			return c.Status(fiber.StatusConflict).Render("register", fiber.Map{"Err": "Email already registered."})
		default:
			log.Error(c, "auth.register.fail", err, nil)
			return c.Status(fiber.StatusInternalServerError).Render("register", fiber.Map{"Err": "Could not create account. Please try again."})
		}
	}

	log.Audit(c, "auth.register.success", map[string]any{"email": email})
	return c.Redirect("/dashboard")
}

func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return render(c, "login", fiber.Map{"Err": ""})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sid := ensureSID(c)
	email := c.FormValue("email")
	pass := c.FormValue("password")

	// One message for unknown email and wrong password alike.
	if _, err := h.Auth.Login(sid, email, pass); err != nil {
		log.Security(c, "auth.login.fail", map[string]any{"email": email})
		return c.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{"Err": "Invalid credentials."})
	}

	log.Audit(c, "auth.login.success", map[string]any{"email": email})
	return c.Redirect("/dashboard")
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	_ = h.Auth.Logout(sid)
	// Expire cookie
	c.Cookie(&fiber.Cookie{
		Name:     "sid",
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   false,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	log.Audit(c, "auth.logout", map[string]any{"sid": sid})
	return c.Redirect("/")
}

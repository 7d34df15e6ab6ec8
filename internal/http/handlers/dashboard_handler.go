package handlers

import (
	"ecofinds/internal/domain"
	applog "ecofinds/internal/log"
	"ecofinds/internal/services"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	Auth    *services.AuthService
	Catalog *services.CatalogService
}

func currentUser(c *fiber.Ctx) *domain.User {
	u, _ := c.Locals("user").(*domain.User)
	return u
}

// View shows the profile form plus the user's own listings.
func (h *DashboardHandler) View(c *fiber.Ctx) error {
	u := currentUser(c)
	mine, err := h.Catalog.ListBySeller(u.ID)
	if err != nil {
		applog.Error(c, "dashboard.load.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not load your listings"})
	}
	return render(c, "dashboard", fiber.Map{"MyProducts": mine, "Categories": domain.Categories})
}

// UpdateProfile changes the display name.
func (h *DashboardHandler) UpdateProfile(c *fiber.Ctx) error {
	u := currentUser(c)
	if err := h.Auth.UpdateProfile(u.ID, c.FormValue("username")); err != nil {
		if domain.IsValidation(err) {
			mine, _ := h.Catalog.ListBySeller(u.ID)
			return c.Status(fiber.StatusBadRequest).Render("dashboard", fiber.Map{
				"Err": "Username cannot be empty.", "MyProducts": mine, "User": u,
			})
		}
		applog.Error(c, "dashboard.profile.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not update profile"})
	}
	applog.Audit(c, "dashboard.profile.update", map[string]any{"user_id": u.ID})
	return c.Redirect("/dashboard")
}

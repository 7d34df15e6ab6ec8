package handlers

import (
	"errors"

	"ecofinds/internal/domain"
	applog "ecofinds/internal/log"
	"ecofinds/internal/services"
	"ecofinds/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

// Home lists all listings, optionally filtered by ?q= and ?category=.
func (h *ProductHandler) Home(c *fiber.Ctx) error {
	q := c.Query("q")
	category := c.Query("category")
	products, err := h.Catalog.List(q, category)
	if err != nil {
		applog.Error(c, "catalog.list.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not load listings. Please retry."})
	}
	return render(c, "index", fiber.Map{
		"Products": products, "Q": q, "Category": category,
		"Categories": domain.Categories, "Count": len(products),
	})
}

func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "product"})
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	p, err := h.Catalog.Get(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	return render(c, "product", fiber.Map{"P": p})
}

func (h *ProductHandler) NewForm(c *fiber.Ctx) error {
	return render(c, "product_form", fiber.Map{"Categories": domain.Categories})
}

func formInput(c *fiber.Ctx) services.ProductInput {
	return services.ProductInput{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Category:    c.FormValue("category"),
		Price:       c.FormValue("price"),
		ImageURL:    c.FormValue("image_url"),
	}
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	u := currentUser(c)
	p, err := h.Catalog.Create(u.ID, formInput(c))
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			applog.Security(c, "validation.fail", map[string]any{"field": ve.Field})
			return c.Status(fiber.StatusBadRequest).Render("product_form", fiber.Map{
				"Err": ve.Msg, "Categories": domain.Categories,
			})
		}
		applog.Error(c, "catalog.create.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not save listing"})
	}
	applog.Audit(c, "catalog.create", map[string]any{"product_id": p.ID})
	return c.Redirect("/dashboard")
}

func (h *ProductHandler) Edit(c *fiber.Ctx) error {
	u := currentUser(c)
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Listing not found"})
	}
	err := h.Catalog.Update(u.ID, id, formInput(c))
	if err != nil {
		return h.mutationError(c, "catalog.edit", id, err)
	}
	applog.Audit(c, "catalog.edit", map[string]any{"product_id": id})
	return c.Redirect("/dashboard")
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	u := currentUser(c)
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Listing not found"})
	}
	if err := h.Catalog.Delete(u.ID, id); err != nil {
		return h.mutationError(c, "catalog.delete", id, err)
	}
	applog.Audit(c, "catalog.delete", map[string]any{"product_id": id})
	return c.Redirect("/dashboard")
}

func (h *ProductHandler) mutationError(c *fiber.Ctx, action, id string, err error) error {
	var ve *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Listing not found"})
	case errors.Is(err, domain.ErrNotOwner):
		applog.Security(c, "access.denied.product", map[string]any{"product_id": id})
		return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Not authorized"})
	case errors.As(err, &ve):
		applog.Security(c, "validation.fail", map[string]any{"field": ve.Field})
		return c.Status(fiber.StatusBadRequest).Render("notfound", fiber.Map{"Message": ve.Msg})
	default:
		applog.Error(c, action+".fail", err, map[string]any{"product_id": id})
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not update listing"})
	}
}

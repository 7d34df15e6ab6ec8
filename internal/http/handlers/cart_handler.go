package handlers

import (
	"errors"

	"ecofinds/internal/domain"
	applog "ecofinds/internal/log"
	"ecofinds/internal/services"
	"ecofinds/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CartHandler struct {
	Cart *services.CartService
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	u := currentUser(c)
	cv, err := h.Cart.View(u.ID)
	if err != nil {
		applog.Error(c, "cart.view.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not load your cart"})
	}
	return render(c, "cart", fiber.Map{"Cart": cv})
}

func (h *CartHandler) Add(c *fiber.Ctx) error {
	u := currentUser(c)
	pid, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	qty := validate.Qty(c.FormValue("quantity"))

	if err := h.Cart.Add(u.ID, pid, qty); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
		}
		applog.Error(c, "cart.add.fail", err, map[string]any{"product_id": pid})
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not add to cart"})
	}
	applog.Audit(c, "cart.add", map[string]any{"product_id": pid, "qty": qty})
	return c.Redirect("/cart")
}

func (h *CartHandler) Update(c *fiber.Ctx) error {
	u := currentUser(c)
	itemID, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Cart item not found"})
	}
	qty := validate.Qty(c.FormValue("quantity"))

	if err := h.Cart.UpdateQty(u.ID, itemID, qty); err != nil {
		return h.lineError(c, "cart.update", itemID, err)
	}
	applog.Audit(c, "cart.update", map[string]any{"item_id": itemID, "qty": qty})
	return c.Redirect("/cart")
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	u := currentUser(c)
	itemID, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Cart item not found"})
	}
	if err := h.Cart.Remove(u.ID, itemID); err != nil {
		return h.lineError(c, "cart.remove", itemID, err)
	}
	applog.Audit(c, "cart.remove", map[string]any{"item_id": itemID})
	return c.Redirect("/cart")
}

func (h *CartHandler) lineError(c *fiber.Ctx, action, itemID string, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Cart item not found"})
	case errors.Is(err, domain.ErrNotOwner):
		applog.Security(c, "access.denied.cart", map[string]any{"item_id": itemID})
		return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Not authorized"})
	default:
		applog.Error(c, action+".fail", err, map[string]any{"item_id": itemID})
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not update cart"})
	}
}

package handlers

import (
	"errors"

	"ecofinds/internal/domain"
	applog "ecofinds/internal/log"
	"ecofinds/internal/services"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	Order *services.OrderService
}

// Checkout converts the cart into an order. Not safely retryable: a
// second submit finds an empty cart and is rejected instead of
// creating a duplicate order.
func (h *OrderHandler) Checkout(c *fiber.Ctx) error {
	u := currentUser(c)
	orderID, total, err := h.Order.Checkout(u.ID)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyCart) {
			applog.Security(c, "order.checkout.empty", map[string]any{"user_id": u.ID})
			return c.Status(fiber.StatusBadRequest).Render("cart", fiber.Map{
				"Err": "Your cart is empty.", "Cart": services.CartView{},
			})
		}
		applog.Error(c, "order.checkout.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not complete your purchase. Please try again."})
	}
	applog.Audit(c, "order.checkout", map[string]any{"order_id": orderID, "total": total})
	return c.Redirect("/purchases")
}

// History lists past purchases newest-first.
func (h *OrderHandler) History(c *fiber.Ctx) error {
	u := currentUser(c)
	orders, err := h.Order.History(u.ID)
	if err != nil {
		applog.Error(c, "order.history.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not load purchases"})
	}
	return render(c, "purchases", fiber.Map{"Orders": orders})
}

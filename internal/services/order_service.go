package services

import (
	"database/sql"
	"errors"

	"ecofinds/internal/domain"
	"ecofinds/internal/repos"
)

type OrderService struct {
	Orders *repos.OrderRepo
	Carts  *repos.CartRepo
}

func NewOrderService(orders *repos.OrderRepo, carts *repos.CartRepo) *OrderService {
	return &OrderService{Orders: orders, Carts: carts}
}

// Checkout converts the user's cart into an immutable order. The whole
// conversion runs in one transaction in the repo; a checked-out cart is
// always empty afterward.
func (s *OrderService) Checkout(userID string) (string, float64, error) {
	orderID, total, err := s.Orders.CheckoutCart(userID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", 0, domain.ErrEmptyCart
	}
	return orderID, total, err
}

// PastOrder pairs an order with its snapshot lines for the purchases page.
type PastOrder struct {
	Order domain.Order
	Items []domain.OrderItem
}

func (s *OrderService) History(userID string) ([]PastOrder, error) {
	orders, err := s.Orders.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]PastOrder, 0, len(orders))
	for _, o := range orders {
		items, err := s.Orders.Items(o.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, PastOrder{Order: o, Items: items})
	}
	return out, nil
}

package services

import (
	"database/sql"
	"errors"

	"ecofinds/internal/domain"
	"ecofinds/internal/repos"
)

type CartService struct {
	Carts *repos.CartRepo
	Prods *repos.ProductRepo
}

func NewCartService(carts *repos.CartRepo, prods *repos.ProductRepo) *CartService {
	return &CartService{Carts: carts, Prods: prods}
}

// Add increments the (user, product) line by qty, creating it if absent.
func (s *CartService) Add(userID, productID string, qty int) error {
	if qty < 1 {
		qty = 1
	}
	if _, err := s.Prods.Get(productID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}
	return s.Carts.Upsert(userID, productID, qty)
}

func (s *CartService) owned(userID, itemID string) (domain.CartItem, error) {
	it, err := s.Carts.Get(itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.CartItem{}, domain.ErrNotFound
		}
		return domain.CartItem{}, err
	}
	if it.UserID != userID {
		return domain.CartItem{}, domain.ErrNotOwner
	}
	return it, nil
}

func (s *CartService) UpdateQty(userID, itemID string, qty int) error {
	if qty < 1 {
		qty = 1
	}
	it, err := s.owned(userID, itemID)
	if err != nil {
		return err
	}
	return s.Carts.SetQty(it.ID, qty)
}

func (s *CartService) Remove(userID, itemID string) error {
	it, err := s.owned(userID, itemID)
	if err != nil {
		return err
	}
	return s.Carts.Delete(it.ID)
}

type CartView struct {
	Items    []repos.CartLine
	Subtotal float64
}

func (s *CartService) View(userID string) (CartView, error) {
	items, subtotal, err := s.Carts.View(userID)
	if err != nil {
		return CartView{}, err
	}
	return CartView{Items: items, Subtotal: subtotal}, nil
}

package services

import (
	"database/sql"
	"errors"
	"strings"

	"ecofinds/internal/domain"
	"ecofinds/internal/repos"
	"ecofinds/internal/validate"

	"github.com/google/uuid"
)

type CatalogService struct {
	Prods *repos.ProductRepo
}

func NewCatalogService(prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Prods: prods}
}

// ProductInput is the mutable field set for create and edit.
type ProductInput struct {
	Title       string
	Description string
	Category    string
	Price       string
	ImageURL    string
}

func (in ProductInput) parse() (domain.Product, error) {
	title, ok := validate.Title(in.Title)
	if !ok {
		return domain.Product{}, domain.Invalid("title", "Title cannot be empty.")
	}
	desc := strings.TrimSpace(in.Description)
	if desc == "" {
		return domain.Product{}, domain.Invalid("description", "Description cannot be empty.")
	}
	if !domain.ValidCategory(in.Category) {
		return domain.Product{}, domain.Invalid("category", "Please pick a valid category.")
	}
	price, ok := validate.Price(in.Price)
	if !ok {
		return domain.Product{}, domain.Invalid("price", "Price must be a non-negative number.")
	}
	img := strings.TrimSpace(in.ImageURL)
	if img == "" {
		img = domain.PlaceholderImage
	}
	return domain.Product{
		Title:       title,
		Description: desc,
		Category:    in.Category,
		Price:       price,
		ImageURL:    img,
	}, nil
}

// List returns listings newest-first; q matches titles case-insensitively
// and a category outside the closed set acts as no filter.
func (s *CatalogService) List(q, category string) ([]domain.Product, error) {
	q = strings.ToLower(strings.TrimSpace(q))
	if !domain.ValidCategory(category) {
		category = ""
	}
	return s.Prods.List(q, category)
}

func (s *CatalogService) Get(id string) (domain.Product, error) {
	p, err := s.Prods.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, domain.ErrNotFound
	}
	return p, err
}

func (s *CatalogService) ListBySeller(sellerID string) ([]domain.Product, error) {
	return s.Prods.ListBySeller(sellerID)
}

func (s *CatalogService) Create(sellerID string, in ProductInput) (domain.Product, error) {
	p, err := in.parse()
	if err != nil {
		return domain.Product{}, err
	}
	p.ID = uuid.NewString()
	p.SellerID = sellerID
	if err := s.Prods.Insert(p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

// Update replaces the mutable fields; only the owning seller may edit.
func (s *CatalogService) Update(sellerID, productID string, in ProductInput) error {
	cur, err := s.Get(productID)
	if err != nil {
		return err
	}
	if cur.SellerID != sellerID {
		return domain.ErrNotOwner
	}
	p, err := in.parse()
	if err != nil {
		return err
	}
	p.ID = cur.ID
	return s.Prods.Update(p)
}

// Delete removes a listing. Cart lines referencing it cascade away;
// order snapshots are unaffected.
func (s *CatalogService) Delete(sellerID, productID string) error {
	cur, err := s.Get(productID)
	if err != nil {
		return err
	}
	if cur.SellerID != sellerID {
		return domain.ErrNotOwner
	}
	return s.Prods.Delete(productID)
}

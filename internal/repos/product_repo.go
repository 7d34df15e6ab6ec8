package repos

import (
	"ecofinds/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

// List returns listings newest-first. q does a case-insensitive substring
// match on title; category is an exact match and is applied only when set.
func (r *ProductRepo) List(q, category string) ([]domain.Product, error) {
	where := `1=1`
	args := []any{}
	if q != "" {
		where += ` AND LOWER(title) LIKE ?`
		args = append(args, "%"+q+"%")
	}
	if category != "" {
		where += ` AND category = ?`
		args = append(args, category)
	}

	query := `
	  SELECT id, seller_id, title, description, category, price, image_url, created_at
	  FROM products
	  WHERE ` + where + `
	  ORDER BY datetime(created_at) DESC, id`

	out := []domain.Product{}
	err := r.db.Select(&out, query, args...)
	return out, err
}

func (r *ProductRepo) ListBySeller(sellerID string) ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.Select(&out, `
	  SELECT id, seller_id, title, description, category, price, image_url, created_at
	  FROM products
	  WHERE seller_id = ?
	  ORDER BY datetime(created_at) DESC, id`, sellerID)
	return out, err
}

func (r *ProductRepo) Get(id string) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `
	  SELECT id, seller_id, title, description, category, price, image_url, created_at
	  FROM products
	  WHERE id = ?`, id)
	return p, err
}

func (r *ProductRepo) Insert(p domain.Product) error {
	_, err := r.db.Exec(`
	  INSERT INTO products(id,seller_id,title,description,category,price,image_url)
	  VALUES(?,?,?,?,?,?,?)`,
		p.ID, p.SellerID, p.Title, p.Description, p.Category, p.Price, p.ImageURL)
	return err
}

// Update replaces the mutable fields of a listing.
func (r *ProductRepo) Update(p domain.Product) error {
	_, err := r.db.Exec(`
	  UPDATE products
	  SET title=?, description=?, category=?, price=?, image_url=?
	  WHERE id=?`,
		p.Title, p.Description, p.Category, p.Price, p.ImageURL, p.ID)
	return err
}

// Delete removes a listing together with any cart lines still
// referencing it. Order lines are snapshots and are untouched.
func (r *ProductRepo) Delete(id string) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM cart_items WHERE product_id=?`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM products WHERE id=?`, id); err != nil {
		return err
	}
	return tx.Commit()
}

package repos

import (
	"ecofinds/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type CartRepo struct{ db *sqlx.DB }

func NewCartRepo(db *sqlx.DB) *CartRepo { return &CartRepo{db: db} }

// CartLine is a cart row joined with its live product, for display.
type CartLine struct {
	ID        string  `db:"id"`
	ProductID string  `db:"product_id"`
	Title     string  `db:"title"`
	Price     float64 `db:"price"`
	ImageURL  string  `db:"image_url"`
	Qty       int     `db:"qty"`
	Subtotal  float64 `db:"subtotal"`
}

// Upsert adds qty to an existing (user, product) line or creates one.
// The UNIQUE(user_id, product_id) constraint keeps concurrent adds from
// producing duplicate rows.
func (r *CartRepo) Upsert(userID, productID string, qty int) error {
	_, err := r.db.Exec(`
	  INSERT INTO cart_items(id,user_id,product_id,qty)
	  VALUES(?,?,?,?)
	  ON CONFLICT(user_id,product_id) DO UPDATE
	  SET qty = cart_items.qty + excluded.qty, updated_at = CURRENT_TIMESTAMP
	`, uuid.NewString(), userID, productID, qty)
	return err
}

func (r *CartRepo) Get(itemID string) (domain.CartItem, error) {
	var it domain.CartItem
	err := r.db.Get(&it, `SELECT id,user_id,product_id,qty FROM cart_items WHERE id=?`, itemID)
	return it, err
}

func (r *CartRepo) SetQty(itemID string, qty int) error {
	_, err := r.db.Exec(`UPDATE cart_items SET qty=?, updated_at=CURRENT_TIMESTAMP WHERE id=?`, qty, itemID)
	return err
}

func (r *CartRepo) Delete(itemID string) error {
	_, err := r.db.Exec(`DELETE FROM cart_items WHERE id=?`, itemID)
	return err
}

func (r *CartRepo) View(userID string) ([]CartLine, float64, error) {
	rows := []CartLine{}
	if err := r.db.Select(&rows, `
	  SELECT ci.id, ci.product_id, p.title, p.price, p.image_url, ci.qty,
	         (ci.qty*p.price) AS subtotal
	  FROM cart_items ci JOIN products p ON p.id=ci.product_id
	  WHERE ci.user_id = ?
	  ORDER BY datetime(ci.created_at), ci.id
	`, userID); err != nil {
		return nil, 0, err
	}
	total := 0.0
	for _, it := range rows {
		total += it.Subtotal
	}
	return rows, total, nil
}

func (r *CartRepo) Count(userID string) (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM cart_items WHERE user_id=?`, userID)
	return n, err
}

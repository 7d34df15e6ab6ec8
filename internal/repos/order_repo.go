package repos

import (
	"database/sql"

	"ecofinds/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

// CheckoutCart converts every cart line of userID into order line snapshots
// inside a single transaction: insert the order, copy each line's live
// product fields into order_items, delete the cart lines, set the total.
// Either the whole cart converts and ends empty, or nothing changes.
func (r *OrderRepo) CheckoutCart(userID string) (string, float64, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return "", 0, err
	}
	defer func() { _ = tx.Rollback() }()

	type line struct {
		ItemID   string  `db:"item_id"`
		Title    string  `db:"title"`
		Price    float64 `db:"price"`
		Category string  `db:"category"`
		ImageURL string  `db:"image_url"`
		Qty      int     `db:"qty"`
	}
	var lines []line
	if err := tx.Select(&lines, `
	  SELECT ci.id AS item_id, p.title, p.price, p.category, p.image_url, ci.qty
	  FROM cart_items ci JOIN products p ON p.id=ci.product_id
	  WHERE ci.user_id = ?
	  ORDER BY datetime(ci.created_at), ci.id
	`, userID); err != nil {
		return "", 0, err
	}
	if len(lines) == 0 {
		return "", 0, sql.ErrNoRows
	}

	orderID := uuid.NewString()
	if _, err := tx.Exec(`
	  INSERT INTO orders(id, user_id, total, created_at)
	  VALUES(?, ?, 0, CURRENT_TIMESTAMP)
	`, orderID, userID); err != nil {
		return "", 0, err
	}

	total := 0.0
	for _, l := range lines {
		if _, err := tx.Exec(`
		  INSERT INTO order_items(id, order_id, title, price, category, image_url, qty)
		  VALUES(?, ?, ?, ?, ?, ?, ?)
		`, uuid.NewString(), orderID, l.Title, l.Price, l.Category, l.ImageURL, l.Qty); err != nil {
			return "", 0, err
		}
		if _, err := tx.Exec(`DELETE FROM cart_items WHERE id=?`, l.ItemID); err != nil {
			return "", 0, err
		}
		total += l.Price * float64(l.Qty)
	}

	if _, err := tx.Exec(`UPDATE orders SET total=? WHERE id=?`, total, orderID); err != nil {
		return "", 0, err
	}

	if err := tx.Commit(); err != nil {
		return "", 0, err
	}
	return orderID, total, nil
}

func (r *OrderRepo) Get(orderID string) (domain.Order, []domain.OrderItem, error) {
	var o domain.Order
	if err := r.db.Get(&o, `SELECT id,user_id,total,created_at FROM orders WHERE id=?`, orderID); err != nil {
		return domain.Order{}, nil, err
	}
	items, err := r.Items(orderID)
	if err != nil {
		return domain.Order{}, nil, err
	}
	return o, items, nil
}

func (r *OrderRepo) Items(orderID string) ([]domain.OrderItem, error) {
	items := []domain.OrderItem{}
	err := r.db.Select(&items, `
	  SELECT id, order_id, title, price, category, image_url, qty
	  FROM order_items
	  WHERE order_id = ?
	  ORDER BY title
	`, orderID)
	return items, err
}

func (r *OrderRepo) ListByUser(userID string) ([]domain.Order, error) {
	out := []domain.Order{}
	err := r.db.Select(&out, `
	  SELECT id, user_id, total, created_at
	  FROM orders
	  WHERE user_id = ?
	  ORDER BY datetime(created_at) DESC, id
	`, userID)
	return out, err
}

package domain

// Categories is the closed set of product categories. Creation rejects
// anything outside it; search treats unknown values as "no filter".
var Categories = []string{
	"Clothing", "Electronics", "Home & Kitchen", "Books",
	"Furniture", "Sports", "Toys", "Other",
}

// PlaceholderImage is substituted when a listing omits an image URL.
const PlaceholderImage = "https://placehold.co/600x400?text=EcoFinds"

func ValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

type Product struct {
	ID          string  `db:"id"`
	SellerID    string  `db:"seller_id"`
	Title       string  `db:"title"`
	Description string  `db:"description"`
	Category    string  `db:"category"`
	Price       float64 `db:"price"`
	ImageURL    string  `db:"image_url"`
	CreatedAt   string  `db:"created_at"`
}

type CartItem struct {
	ID        string `db:"id"`
	UserID    string `db:"user_id"`
	ProductID string `db:"product_id"`
	Qty       int    `db:"qty"`
}

type Order struct {
	ID        string  `db:"id"`
	UserID    string  `db:"user_id"`
	Total     float64 `db:"total"`
	CreatedAt string  `db:"created_at"`
}

// OrderItem freezes the product fields at purchase time. It carries no
// product foreign key so later edits or deletion of the listing never
// touch purchase history.
type OrderItem struct {
	ID       string  `db:"id"`
	OrderID  string  `db:"order_id"`
	Title    string  `db:"title"`
	Price    float64 `db:"price"`
	Category string  `db:"category"`
	ImageURL string  `db:"image_url"`
	Qty      int     `db:"qty"`
}

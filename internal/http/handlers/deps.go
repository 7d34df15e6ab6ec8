package handlers

import (
	"ecofinds/internal/repos"
	"ecofinds/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	AuthHandler      *AuthHandler
	DashboardHandler *DashboardHandler
	ProductHandler   *ProductHandler
	CartHandler      *CartHandler
	OrderHandler     *OrderHandler
}

func NewDeps(db *sqlx.DB, auth *services.AuthService) *Deps {
	prodRepo := repos.NewProductRepo(db)
	cartRepo := repos.NewCartRepo(db)
	orderRepo := repos.NewOrderRepo(db)

	catalogSvc := services.NewCatalogService(prodRepo)
	cartSvc := services.NewCartService(cartRepo, prodRepo)
	orderSvc := services.NewOrderService(orderRepo, cartRepo)

	return &Deps{
		AuthHandler:      &AuthHandler{Auth: auth},
		DashboardHandler: &DashboardHandler{Auth: auth, Catalog: catalogSvc},
		ProductHandler:   &ProductHandler{Catalog: catalogSvc},
		CartHandler:      &CartHandler{Cart: cartSvc},
		OrderHandler:     &OrderHandler{Order: orderSvc},
	}
}

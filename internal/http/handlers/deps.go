package handlers

import (
	"context"

	"aquashop/internal/config"
	"aquashop/internal/services"
	"aquashop/internal/store"
)

type Deps struct {
	Auth   *services.AuthService
	Shop   *ShopHandler
	Cart   *CartHandler
	Order  *OrderHandler
	Admin  *AdminHandler
	Advice *AdviceHandler
	AuthH  *AuthHandler
}

// NewDeps wires stores and services for the whole app. Every store starts
// from the seed; nothing is read from disk afterwards.
func NewDeps(ctx context.Context, cfg config.Config) *Deps {
	catalog := store.NewCatalogStore(cfg.Seed.Catalog)
	carts := store.NewCartStore()
	sessions := store.NewSessionStore()
	ledger := store.NewOrderLedger()

	authSvc := services.NewAuthService(sessions, carts, cfg.Seed.Admin)
	catalogSvc := services.NewCatalogService(catalog)
	cartSvc := services.NewCartService(carts, catalog, sessions)
	orderSvc := services.NewOrderService(cartSvc, ledger, cfg.Seed.Shop.Name, cfg.Seed.WhatsAppNumber)
	adviceSvc := services.NewAdviceService(ctx, cfg.GeminiAPIKey)

	return &Deps{
		Auth:   authSvc,
		Shop:   &ShopHandler{Catalog: catalogSvc, Shop: cfg.Seed.Shop},
		Cart:   &CartHandler{Cart: cartSvc, Catalog: catalogSvc},
		Order:  &OrderHandler{Order: orderSvc, Auth: authSvc},
		Admin:  &AdminHandler{Catalog: catalogSvc, Order: orderSvc},
		Advice: &AdviceHandler{Advice: adviceSvc},
		AuthH:  &AuthHandler{Auth: authSvc},
	}
}

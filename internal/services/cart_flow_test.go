package services_test

import (
	"errors"
	"testing"
	"time"

	"aquashop/internal/config"
	"aquashop/internal/domain"
	"aquashop/internal/services"
	"aquashop/internal/store"
)

type shopFixture struct {
	Catalog *store.CatalogStore
	Auth    *services.AuthService
	Cart    *services.CartService
	Order   *services.OrderService
	Ledger  *store.OrderLedger
}

func newShopFixture() *shopFixture {
	catalog := store.NewCatalogStore([]domain.Fish{
		{ID: "fh-1", Name: "Flowerhorn", Price: 100, Stock: 10, Category: domain.CategoryExotic},
		{ID: "bt-1", Name: "Betta", Price: 50, Stock: 30, Category: domain.CategoryFreshwater},
	})
	carts := store.NewCartStore()
	sessions := store.NewSessionStore()
	ledger := store.NewOrderLedger()

	auth := services.NewAuthService(sessions, carts, config.Admin{
		ID: "admin-1", Name: "Shop Admin", Email: "admin@shop.test", Password: "admin123",
	})
	cart := services.NewCartService(carts, catalog, sessions)
	order := services.NewOrderService(cart, ledger, "Tirupati Aquarium", "916302382280")
	return &shopFixture{Catalog: catalog, Auth: auth, Cart: cart, Order: order, Ledger: ledger}
}

func TestCartAdd_RequiresIdentity(t *testing.T) {
	fx := newShopFixture()
	err := fx.Cart.Add("sid-1", "fh-1", 1)
	if !errors.Is(err, services.ErrNotAuthorized) {
		t.Fatalf("want ErrNotAuthorized, got %v", err)
	}
	if cv := fx.Cart.View("sid-1"); len(cv.Lines) != 0 {
		t.Fatal("denied add must not touch the cart")
	}
}

func TestCartAdd_MergesRepeatAddsIntoOneLine(t *testing.T) {
	fx := newShopFixture()
	sid := "sid-1"
	if _, err := fx.Auth.Login(sid, "meena@example.com", "secret"); err != nil {
		t.Fatal(err)
	}

	if err := fx.Cart.Add(sid, "fh-1", 2); err != nil {
		t.Fatal(err)
	}
	if err := fx.Cart.Add(sid, "fh-1", 3); err != nil {
		t.Fatal(err)
	}

	cv := fx.Cart.View(sid)
	if len(cv.Lines) != 1 {
		t.Fatalf("want one merged line, got %d", len(cv.Lines))
	}
	if cv.Lines[0].Quantity != 5 {
		t.Fatalf("want quantity 5, got %d", cv.Lines[0].Quantity)
	}
	if cv.Total != 500 {
		t.Fatalf("want total 500, got %v", cv.Total)
	}
}

func TestCartTotal_TracksAddAndRemove(t *testing.T) {
	fx := newShopFixture()
	sid := "sid-1"
	if _, err := fx.Auth.Login(sid, "meena@example.com", "secret"); err != nil {
		t.Fatal(err)
	}

	_ = fx.Cart.Add(sid, "fh-1", 2) // 200
	_ = fx.Cart.Add(sid, "bt-1", 1) // 50
	if cv := fx.Cart.View(sid); cv.Total != 250 {
		t.Fatalf("want 250, got %v", cv.Total)
	}

	fx.Cart.Remove(sid, "fh-1")
	if cv := fx.Cart.View(sid); cv.Total != 50 {
		t.Fatalf("want 50 after remove, got %v", cv.Total)
	}

	fx.Cart.Remove(sid, "ghost") // unknown id is a no-op
	if cv := fx.Cart.View(sid); len(cv.Lines) != 1 || cv.Total != 50 {
		t.Fatalf("unrelated line must survive: %+v", cv)
	}
}

func TestCartLine_SnapshotsCatalogAtAddTime(t *testing.T) {
	fx := newShopFixture()
	sid := "sid-1"
	if _, err := fx.Auth.Login(sid, "meena@example.com", "secret"); err != nil {
		t.Fatal(err)
	}
	_ = fx.Cart.Add(sid, "fh-1", 1)

	newPrice := 999.0
	if _, err := fx.Catalog.Update("fh-1", store.FishPatch{Price: &newPrice}); err != nil {
		t.Fatal(err)
	}

	cv := fx.Cart.View(sid)
	if cv.Lines[0].Price != 100 {
		t.Fatalf("cart must keep the add-time price, got %v", cv.Lines[0].Price)
	}
}

func TestLogout_AlwaysEmptiesCart(t *testing.T) {
	fx := newShopFixture()
	sid := "sid-1"
	if _, err := fx.Auth.Login(sid, "meena@example.com", "secret"); err != nil {
		t.Fatal(err)
	}
	_ = fx.Cart.Add(sid, "fh-1", 2)

	fx.Auth.Logout(sid)
	if u := fx.Auth.CurrentUser(sid); u != nil {
		t.Fatal("identity must be gone after logout")
	}
	if cv := fx.Cart.View(sid); len(cv.Lines) != 0 {
		t.Fatal("logout must empty the cart")
	}
}

func TestCheckout_BuildsOrderAndClearsCart(t *testing.T) {
	fx := newShopFixture()
	sid := "sid-1"
	u, err := fx.Auth.Login(sid, "meena@example.com", "secret")
	if err != nil {
		t.Fatal(err)
	}
	_ = fx.Cart.Add(sid, "fh-1", 2) // 100 x 2
	_ = fx.Cart.Add(sid, "bt-1", 1) // 50 x 1

	res, err := fx.Order.Checkout(sid, u)
	if err != nil {
		t.Fatal(err)
	}
	if res.Order.Total != 250 {
		t.Fatalf("want total 250, got %v", res.Order.Total)
	}
	if res.Order.Status != domain.StatusPending {
		t.Fatalf("want pending, got %s", res.Order.Status)
	}
	if res.Order.CustomerName != "meena" || res.Order.CustomerEmail != "meena@example.com" {
		t.Fatalf("bad customer snapshot: %+v", res.Order)
	}
	if res.WhatsAppURL == "" {
		t.Fatal("no handoff link")
	}
	if cv := fx.Cart.View(sid); len(cv.Lines) != 0 {
		t.Fatal("cart must be empty immediately after checkout")
	}

	// stock is deliberately untouched by checkout
	if f, _ := fx.Catalog.Get("fh-1"); f.Stock != 10 {
		t.Fatalf("stock must not be decremented, got %d", f.Stock)
	}
}

func TestCheckout_EmptyCartIsRejected(t *testing.T) {
	fx := newShopFixture()
	sid := "sid-1"
	u, _ := fx.Auth.Login(sid, "meena@example.com", "secret")
	if _, err := fx.Order.Checkout(sid, u); !errors.Is(err, services.ErrEmptyCart) {
		t.Fatalf("want ErrEmptyCart, got %v", err)
	}
	if len(fx.Order.List()) != 0 {
		t.Fatal("no order may be recorded for an empty cart")
	}
}

func TestLedger_NewestFirstAndTotalFrozen(t *testing.T) {
	fx := newShopFixture()
	sid := "sid-1"
	u, _ := fx.Auth.Login(sid, "meena@example.com", "secret")

	_ = fx.Cart.Add(sid, "bt-1", 1)
	first, err := fx.Order.Checkout(sid, u)
	if err != nil {
		t.Fatal(err)
	}
	// order ids are millisecond-derived; keep the two submissions apart
	time.Sleep(2 * time.Millisecond)
	_ = fx.Cart.Add(sid, "fh-1", 1)
	second, err := fx.Order.Checkout(sid, u)
	if err != nil {
		t.Fatal(err)
	}

	orders := fx.Order.List()
	if len(orders) != 2 {
		t.Fatalf("want 2 orders, got %d", len(orders))
	}
	if orders[0].ID != second.Order.ID || orders[1].ID != first.Order.ID {
		t.Fatal("ledger must list most recent first")
	}

	// a later price change never rewrites a recorded total
	newPrice := 5000.0
	if _, err := fx.Catalog.Update("bt-1", store.FishPatch{Price: &newPrice}); err != nil {
		t.Fatal(err)
	}
	got, err := fx.Order.Get(first.Order.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Total != 50 {
		t.Fatalf("total must stay 50, got %v", got.Total)
	}
}

func TestSetStatus_OverwritesAndIgnoresUnknownIDs(t *testing.T) {
	fx := newShopFixture()
	sid := "sid-1"
	u, _ := fx.Auth.Login(sid, "meena@example.com", "secret")
	_ = fx.Cart.Add(sid, "bt-1", 1)
	res, err := fx.Order.Checkout(sid, u)
	if err != nil {
		t.Fatal(err)
	}

	fx.Order.SetStatus(res.Order.ID, domain.StatusConfirmed)
	got, _ := fx.Order.Get(res.Order.ID)
	if got.Status != domain.StatusConfirmed {
		t.Fatalf("want confirmed, got %s", got.Status)
	}

	fx.Order.SetStatus("ghost", domain.StatusShipped)
	got, _ = fx.Order.Get(res.Order.ID)
	if got.Status != domain.StatusConfirmed {
		t.Fatal("unknown id must not alter other orders")
	}
}

package shop

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/techniq-app/techniq/internal/economy"
	"github.com/techniq-app/techniq/internal/store"
)

func newTestShop(t *testing.T, startingCoins int64) (*Service, *store.Store) {
	t.Helper()
	s, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	econ := economy.NewService(s.PlayerRepo(), s.EventRepo())
	if startingCoins > 0 {
		if _, err := econ.Award(context.Background(), startingCoins, economy.ReasonSessionComplete); err != nil {
			t.Fatalf("seed coins: %v", err)
		}
	}
	return NewService(s.PlayerRepo(), econ), s
}

func TestPurchaseCosmetic(t *testing.T) {
	shop, s := newTestShop(t, 300)
	ctx := context.Background()

	rec, err := shop.Purchase(ctx, "boots_gold")
	if err != nil {
		t.Fatalf("purchase: %v", err)
	}
	if rec.Balance != 50 {
		t.Errorf("balance = %d, want 50", rec.Balance)
	}

	p, _ := s.PlayerRepo().Load(ctx)
	if len(p.OwnedItems) != 1 || p.OwnedItems[0] != "boots_gold" {
		t.Errorf("owned items = %v", p.OwnedItems)
	}

	owned, err := shop.Owned(ctx, "boots_gold")
	if err != nil || !owned {
		t.Errorf("Owned(boots_gold) = %v, %v", owned, err)
	}
}

func TestPurchaseCosmeticTwiceRejected(t *testing.T) {
	shop, _ := newTestShop(t, 1000)
	ctx := context.Background()

	if _, err := shop.Purchase(ctx, "boots_gold"); err != nil {
		t.Fatalf("first purchase: %v", err)
	}
	_, err := shop.Purchase(ctx, "boots_gold")
	if !errors.Is(err, ErrAlreadyOwned) {
		t.Errorf("err = %v, want ErrAlreadyOwned", err)
	}
}

func TestPurchaseInsufficientCoins(t *testing.T) {
	shop, s := newTestShop(t, 40)
	ctx := context.Background()

	_, err := shop.Purchase(ctx, "boots_gold")
	if !errors.Is(err, ErrInsufficientCoins) {
		t.Fatalf("err = %v, want ErrInsufficientCoins", err)
	}

	p, _ := s.PlayerRepo().Load(ctx)
	if p.CoinBalance != 40 {
		t.Errorf("balance = %d, want 40 untouched", p.CoinBalance)
	}
	if len(p.OwnedItems) != 0 {
		t.Errorf("owned items = %v, want none", p.OwnedItems)
	}
}

func TestPurchaseStreakFreezeStacks(t *testing.T) {
	shop, s := newTestShop(t, 500)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := shop.Purchase(ctx, "streak_freeze"); err != nil {
			t.Fatalf("purchase %d: %v", i, err)
		}
	}

	p, _ := s.PlayerRepo().Load(ctx)
	if p.StreakFreezes != 3 {
		t.Errorf("freezes = %d, want 3", p.StreakFreezes)
	}
	if p.CoinBalance != 200 {
		t.Errorf("balance = %d, want 200", p.CoinBalance)
	}
}

// failSaveRepo delegates loads and fails every save.
type failSaveRepo struct {
	store.PlayerRepo
}

func (r failSaveRepo) Save(ctx context.Context, p *store.Player) error {
	return errors.New("disk full")
}

func TestPurchaseSaveFailureLeavesNoCharge(t *testing.T) {
	_, s := newTestShop(t, 500)
	ctx := context.Background()

	broken := failSaveRepo{s.PlayerRepo()}
	econ := economy.NewService(broken, nil)
	shop := NewService(broken, econ)

	if _, err := shop.Purchase(ctx, "boots_gold"); err == nil {
		t.Fatal("expected purchase to fail")
	}

	p, _ := s.PlayerRepo().Load(ctx)
	if p.CoinBalance != 500 {
		t.Errorf("balance = %d, want 500 untouched", p.CoinBalance)
	}
	if len(p.OwnedItems) != 0 {
		t.Errorf("owned items = %v, want none", p.OwnedItems)
	}
}

func TestPurchaseUnknownItem(t *testing.T) {
	shop, _ := newTestShop(t, 100)

	_, err := shop.Purchase(context.Background(), "jetpack")
	if !errors.Is(err, ErrUnknownItem) {
		t.Errorf("err = %v, want ErrUnknownItem", err)
	}
}

func TestCatalogPricesPositive(t *testing.T) {
	for _, it := range Catalog() {
		if it.Price <= 0 {
			t.Errorf("item %s has non-positive price %d", it.ID, it.Price)
		}
	}
}

package economy

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/techniq-app/techniq/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	s, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return NewService(s.PlayerRepo(), s.EventRepo())
}

func TestAwardIncreasesBalanceAndLifetime(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tx, err := svc.Award(ctx, 25, ReasonSessionComplete)
	if err != nil {
		t.Fatalf("award: %v", err)
	}
	if tx.Balance != 25 || tx.Direction != DirectionEarned {
		t.Errorf("tx = %+v, want balance 25 earned", tx)
	}

	tx, err = svc.Award(ctx, 10, ReasonFirstOfDay)
	if err != nil {
		t.Fatalf("award: %v", err)
	}
	if tx.Balance != 35 {
		t.Errorf("balance = %d, want 35", tx.Balance)
	}

	bal, err := svc.Balance(ctx)
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if bal != 35 {
		t.Errorf("balance = %d, want 35", bal)
	}
}

func TestAwardRejectsNonPositive(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, amount := range []int64{0, -5} {
		if _, err := svc.Award(ctx, amount, ReasonLevelUp); err == nil {
			t.Errorf("Award(%d) succeeded, want error", amount)
		}
	}
}

func TestDeductInsufficientFunds(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Award(ctx, 30, ReasonSessionComplete); err != nil {
		t.Fatalf("award: %v", err)
	}

	ok, err := svc.Deduct(ctx, 50, ReasonShopPurchase)
	if err != nil {
		t.Fatalf("deduct: %v", err)
	}
	if ok {
		t.Fatal("deduct succeeded with insufficient funds")
	}

	// Balance untouched.
	bal, err := svc.Balance(ctx)
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if bal != 30 {
		t.Errorf("balance = %d, want 30 after rejected deduct", bal)
	}
}

func TestDeductExactBalance(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Award(ctx, 100, ReasonAchievement); err != nil {
		t.Fatalf("award: %v", err)
	}
	ok, err := svc.Deduct(ctx, 100, ReasonShopPurchase)
	if err != nil {
		t.Fatalf("deduct: %v", err)
	}
	if !ok {
		t.Fatal("deduct of exact balance should succeed")
	}
	bal, _ := svc.Balance(ctx)
	if bal != 0 {
		t.Errorf("balance = %d, want 0", bal)
	}
}

func TestDeductDoesNotTouchLifetimeEarnings(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Award(ctx, 200, ReasonLevelUp); err != nil {
		t.Fatalf("award: %v", err)
	}
	if ok, err := svc.Deduct(ctx, 150, ReasonShopPurchase); err != nil || !ok {
		t.Fatalf("deduct: ok=%v err=%v", ok, err)
	}

	p, err := svc.players.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p.TotalCoinsEarned != 200 {
		t.Errorf("lifetime earned = %d, want 200", p.TotalCoinsEarned)
	}
	if p.CoinBalance != 50 {
		t.Errorf("balance = %d, want 50", p.CoinBalance)
	}
}

func TestCanAfford(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Award(ctx, 40, ReasonSessionComplete); err != nil {
		t.Fatalf("award: %v", err)
	}

	tests := []struct {
		amount int64
		want   bool
	}{
		{39, true},
		{40, true},
		{41, false},
	}
	for _, tt := range tests {
		got, err := svc.CanAfford(ctx, tt.amount)
		if err != nil {
			t.Fatalf("can afford %d: %v", tt.amount, err)
		}
		if got != tt.want {
			t.Errorf("CanAfford(%d) = %v, want %v", tt.amount, got, tt.want)
		}
	}
}

func TestTransactionsLeaveAuditEvents(t *testing.T) {
	s, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	svc := NewService(s.PlayerRepo(), s.EventRepo())
	ctx := context.Background()

	if _, err := svc.Award(ctx, 60, ReasonSessionComplete); err != nil {
		t.Fatalf("award: %v", err)
	}
	if ok, err := svc.Deduct(ctx, 20, ReasonShopPurchase); err != nil || !ok {
		t.Fatalf("deduct: ok=%v err=%v", ok, err)
	}

	events, err := s.EventRepo().QueryCoinEvents(ctx, store.QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query events: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	// Newest first.
	if events[0].Direction != DirectionSpent || events[0].BalanceAfter != 40 {
		t.Errorf("newest event = %+v, want spent with balance 40", events[0])
	}
	if events[1].Direction != DirectionEarned || events[1].BalanceAfter != 60 {
		t.Errorf("oldest event = %+v, want earned with balance 60", events[1])
	}
}

func TestSessionPayoutFullSet(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	txs, err := svc.SessionPayout(ctx, SessionPayoutInput{
		FirstOfDay:      true,
		PerfectRating:   true,
		StreakContinued: true,
		StreakWeekly:    true,
		LevelsGained:    2,
	})
	if err != nil {
		t.Fatalf("payout: %v", err)
	}
	if len(txs) != 6 {
		t.Fatalf("got %d transactions, want 6", len(txs))
	}

	var total int64
	for _, tx := range txs {
		total += tx.Amount
	}
	want := CoinsSessionComplete + CoinsFirstOfDay + CoinsPerfectRating +
		CoinsStreakContinued + CoinsStreakWeekly + 2*CoinsPerLevelUp
	if total != want {
		t.Errorf("total payout = %d, want %d", total, want)
	}

	bal, _ := svc.Balance(ctx)
	if bal != want {
		t.Errorf("balance = %d, want %d", bal, want)
	}
}

func TestSessionPayoutBaseOnly(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	txs, err := svc.SessionPayout(ctx, SessionPayoutInput{})
	if err != nil {
		t.Fatalf("payout: %v", err)
	}
	if len(txs) != 1 {
		t.Fatalf("got %d transactions, want 1", len(txs))
	}
	if txs[0].Reason != ReasonSessionComplete || txs[0].Amount != CoinsSessionComplete {
		t.Errorf("tx = %+v, want base session payout", txs[0])
	}
}

func TestBalanceNeverNegative(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// Interleave awards and over-sized deducts; the balance must stay
	// at or above zero throughout.
	steps := []struct {
		award  int64
		deduct int64
	}{
		{10, 25}, {30, 15}, {5, 100}, {50, 55},
	}
	for _, st := range steps {
		if _, err := svc.Award(ctx, st.award, ReasonSessionComplete); err != nil {
			t.Fatalf("award: %v", err)
		}
		if _, err := svc.Deduct(ctx, st.deduct, ReasonShopPurchase); err != nil {
			t.Fatalf("deduct: %v", err)
		}
		bal, err := svc.Balance(ctx)
		if err != nil {
			t.Fatalf("balance: %v", err)
		}
		if bal < 0 {
			t.Fatalf("balance went negative: %d", bal)
		}
	}
}

func TestAwardSurfacesLoadError(t *testing.T) {
	svc := NewService(failingPlayerRepo{}, nil)
	if _, err := svc.Award(context.Background(), 10, ReasonLevelUp); err == nil {
		t.Fatal("expected error from failing repo")
	}
}

type failingPlayerRepo struct{}

func (failingPlayerRepo) Load(ctx context.Context) (*store.Player, error) {
	return nil, errors.New("database unavailable")
}

func (failingPlayerRepo) Save(ctx context.Context, p *store.Player) error {
	return errors.New("database unavailable")
}

func TestDeductWithGrantsInSameWrite(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Award(ctx, 200, ReasonSessionComplete); err != nil {
		t.Fatalf("seed: %v", err)
	}

	ok, err := svc.DeductWith(ctx, 100, ReasonShopPurchase, func(p *store.Player) {
		p.StreakFreezes++
	})
	if err != nil || !ok {
		t.Fatalf("DeductWith = %v, %v", ok, err)
	}

	p, err := svc.players.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p.CoinBalance != 100 {
		t.Errorf("balance = %d, want 100", p.CoinBalance)
	}
	if p.StreakFreezes != 1 {
		t.Errorf("freezes = %d, want 1", p.StreakFreezes)
	}
}

func TestDeductWithInsufficientFundsSkipsMutation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Award(ctx, 50, ReasonSessionComplete); err != nil {
		t.Fatalf("seed: %v", err)
	}

	called := false
	ok, err := svc.DeductWith(ctx, 100, ReasonShopPurchase, func(p *store.Player) {
		called = true
	})
	if err != nil {
		t.Fatalf("DeductWith: %v", err)
	}
	if ok || called {
		t.Errorf("ok = %v, mutate called = %v; want neither", ok, called)
	}
}

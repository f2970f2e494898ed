// Package shop sells cosmetic items and streak freezes for coins. It is
// the only place streak freezes are ever added.
package shop

import (
	"context"
	"errors"
	"fmt"

	"github.com/techniq-app/techniq/internal/economy"
	"github.com/techniq-app/techniq/internal/store"
)

// Item kinds.
const (
	KindCosmetic     = "cosmetic"
	KindStreakFreeze = "streak_freeze"
)

var (
	ErrUnknownItem       = errors.New("unknown shop item")
	ErrAlreadyOwned      = errors.New("item already owned")
	ErrInsufficientCoins = errors.New("not enough coins")
)

// Item is a purchasable shop entry.
type Item struct {
	ID    string
	Name  string
	Kind  string
	Price int64
}

// Catalog returns the shop inventory in display order.
func Catalog() []Item {
	return []Item{
		{ID: "streak_freeze", Name: "Streak Freeze", Kind: KindStreakFreeze, Price: 100},
		{ID: "boots_gold", Name: "Golden Boots", Kind: KindCosmetic, Price: 250},
		{ID: "kit_retro", Name: "Retro Kit", Kind: KindCosmetic, Price: 400},
		{ID: "ball_pro", Name: "Pro Match Ball", Kind: KindCosmetic, Price: 600},
		{ID: "badge_captain", Name: "Captain's Armband", Kind: KindCosmetic, Price: 1000},
	}
}

// find returns the catalog item with the given ID.
func find(id string) (Item, bool) {
	for _, it := range Catalog() {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// Receipt describes a completed purchase.
type Receipt struct {
	Item    Item
	Balance int64
}

// Service handles purchases against the coin economy.
type Service struct {
	players store.PlayerRepo
	economy *economy.Service
}

// NewService returns a shop backed by the player repo and coin economy.
func NewService(players store.PlayerRepo, econ *economy.Service) *Service {
	return &Service{players: players, economy: econ}
}

// Purchase buys the item with the given ID. Cosmetics can be owned once;
// streak freezes stack, each purchase adds one. Insufficient funds return
// ErrInsufficientCoins with no state change.
func (s *Service) Purchase(ctx context.Context, itemID string) (*Receipt, error) {
	item, ok := find(itemID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownItem, itemID)
	}

	p, err := s.players.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading player: %w", err)
	}
	if item.Kind == KindCosmetic {
		for _, owned := range p.OwnedItems {
			if owned == item.ID {
				return nil, ErrAlreadyOwned
			}
		}
	}

	// Charge and grant commit in one save so a failure cannot leave the
	// player charged without the item.
	var balance int64
	ok, err = s.economy.DeductWith(ctx, item.Price, economy.ReasonShopPurchase, func(p *store.Player) {
		switch item.Kind {
		case KindStreakFreeze:
			p.StreakFreezes++
		default:
			p.OwnedItems = append(p.OwnedItems, item.ID)
		}
		balance = p.CoinBalance
	})
	if err != nil {
		return nil, fmt.Errorf("charging purchase: %w", err)
	}
	if !ok {
		return nil, ErrInsufficientCoins
	}
	return &Receipt{Item: item, Balance: balance}, nil
}

// Owned reports whether the player owns the given cosmetic.
func (s *Service) Owned(ctx context.Context, itemID string) (bool, error) {
	p, err := s.players.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("loading player: %w", err)
	}
	for _, owned := range p.OwnedItems {
		if owned == itemID {
			return true, nil
		}
	}
	return false, nil
}

package service

import (
	"context"
	"errors"
	"fmt"

	"menu-order/order-svc/internal/catalog"
	"menu-order/order-svc/internal/domain"
	"menu-order/order-svc/internal/ledger"

	"github.com/shopspring/decimal"
)

var (
	ErrLineItemNotFound = errors.New("cart item not found")
	ErrBelowMinimum     = errors.New("quantity cannot go below the item minimum")
	ErrInvalidLanguage  = errors.New("unsupported language")
)

// minimumTolerance absorbs float drift when comparing against min_quantity.
const minimumTolerance = 0.001

type CartService struct {
	store       CartStore
	languages   LanguageStore
	catalog     Catalog
	deliveryFee decimal.Decimal
	ledgerOpts  []ledger.Option
}

func NewCartService(store CartStore, languages LanguageStore, menu Catalog, deliveryFee decimal.Decimal, opts ...ledger.Option) *CartService {
	return &CartService{
		store:       store,
		languages:   languages,
		catalog:     menu,
		deliveryFee: deliveryFee,
		ledgerOpts:  opts,
	}
}

func (s *CartService) load(ctx context.Context, sessionID string) (*ledger.Ledger, error) {
	items, err := s.store.LoadCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	opts := append([]ledger.Option{ledger.WithItems(items)}, s.ledgerOpts...)
	return ledger.New(s.deliveryFee, opts...), nil
}

// mutate loads the session cart, applies fn and writes the result back.
func (s *CartService) mutate(ctx context.Context, sessionID string, fn func(l *ledger.Ledger) error) (domain.CartView, error) {
	l, err := s.load(ctx, sessionID)
	if err != nil {
		return domain.CartView{}, err
	}
	if err := fn(l); err != nil {
		return domain.CartView{}, err
	}
	if err := s.store.SaveCart(ctx, sessionID, l.Items()); err != nil {
		return domain.CartView{}, err
	}
	return view(l, domain.ServiceTakeaway), nil
}

func view(l *ledger.Ledger, service domain.ServiceType) domain.CartView {
	return domain.CartView{
		Items:       l.Items(),
		TotalItems:  l.TotalLineCount(),
		TotalPrice:  l.TotalPrice(service),
		DeliveryFee: l.DeliveryFee(),
	}
}

func found(ok bool) error {
	if !ok {
		return ErrLineItemNotFound
	}
	return nil
}

func (s *CartService) Get(ctx context.Context, sessionID string, service domain.ServiceType) (domain.CartView, error) {
	l, err := s.load(ctx, sessionID)
	if err != nil {
		return domain.CartView{}, err
	}
	return view(l, service), nil
}

// Add appends a new line. A zero quantity starts the line at its minimum;
// any other quantity is rounded and must not fall below that minimum.
func (s *CartService) Add(ctx context.Context, sessionID string, req domain.AddItem) (domain.CartView, error) {
	if req.Quantity != 0 {
		req.Quantity = roundQuantity(req.Quantity)
		minimum := domain.LineItem{MinQuantity: req.MinQuantity}.EffectiveMinQuantity()
		if err := checkMinimum(req.Quantity, minimum); err != nil {
			return domain.CartView{}, err
		}
	}
	return s.mutate(ctx, sessionID, func(l *ledger.Ledger) error {
		l.Add(req)
		return nil
	})
}

func (s *CartService) AddFromMenu(ctx context.Context, sessionID string, selection domain.MenuSelection) (domain.CartView, error) {
	item, err := s.catalog.Item(ctx, selection.ItemID)
	if err != nil {
		return domain.CartView{}, err
	}
	req := catalog.AddRequest(item, selection.SelectedOptions, selection.Instructions, selection.Quantity)
	return s.Add(ctx, sessionID, req)
}

// Remove is a no-op for unknown instance ids.
func (s *CartService) Remove(ctx context.Context, sessionID, instanceID string) (domain.CartView, error) {
	return s.mutate(ctx, sessionID, func(l *ledger.Ledger) error {
		l.Remove(instanceID)
		return nil
	})
}

// SetQuantity rounds the edited quantity to two decimals and refuses values
// below the line's minimum.
func (s *CartService) SetQuantity(ctx context.Context, sessionID, instanceID string, quantity float64) (domain.CartView, error) {
	return s.mutate(ctx, sessionID, func(l *ledger.Ledger) error {
		item, ok := l.Get(instanceID)
		if !ok {
			return ErrLineItemNotFound
		}
		next := roundQuantity(quantity)
		if err := checkMinimum(next, item.EffectiveMinQuantity()); err != nil {
			return err
		}
		l.SetQuantity(instanceID, next)
		return nil
	})
}

func (s *CartService) Increase(ctx context.Context, sessionID, instanceID string) (domain.CartView, error) {
	return s.mutate(ctx, sessionID, func(l *ledger.Ledger) error {
		item, ok := l.Get(instanceID)
		if !ok {
			return ErrLineItemNotFound
		}
		l.SetQuantity(instanceID, roundQuantity(item.Quantity+item.EffectiveStep()))
		return nil
	})
}

func (s *CartService) Decrease(ctx context.Context, sessionID, instanceID string) (domain.CartView, error) {
	return s.mutate(ctx, sessionID, func(l *ledger.Ledger) error {
		item, ok := l.Get(instanceID)
		if !ok {
			return ErrLineItemNotFound
		}
		next := roundQuantity(item.Quantity - item.EffectiveStep())
		if err := checkMinimum(next, item.EffectiveMinQuantity()); err != nil {
			return err
		}
		l.SetQuantity(instanceID, next)
		return nil
	})
}

func checkMinimum(quantity, minimum float64) error {
	if quantity < minimum-minimumTolerance {
		return fmt.Errorf("%w (%s)", ErrBelowMinimum, decimal.NewFromFloat(minimum).String())
	}
	return nil
}

// roundQuantity rounds to two decimals, the precision the quantity controls use.
func roundQuantity(quantity float64) float64 {
	return decimal.NewFromFloat(quantity).Round(2).InexactFloat64()
}

func (s *CartService) SetInstructions(ctx context.Context, sessionID, instanceID, instructions string) (domain.CartView, error) {
	return s.mutate(ctx, sessionID, func(l *ledger.Ledger) error {
		return found(l.SetInstructions(instanceID, instructions))
	})
}

func (s *CartService) SetOptions(ctx context.Context, sessionID, instanceID string, options map[string]string) (domain.CartView, error) {
	return s.mutate(ctx, sessionID, func(l *ledger.Ledger) error {
		return found(l.SetOptions(instanceID, options))
	})
}

func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	return s.store.SaveCart(ctx, sessionID, nil)
}

func (s *CartService) QuantityFor(ctx context.Context, sessionID, itemID string) (float64, error) {
	l, err := s.load(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return l.QuantityFor(itemID), nil
}

func (s *CartService) Language(ctx context.Context, sessionID string) (domain.Language, error) {
	return s.languages.LoadLanguage(ctx, sessionID)
}

func (s *CartService) SetLanguage(ctx context.Context, sessionID string, lang domain.Language) error {
	if _, ok := domain.ParseLanguage(string(lang)); !ok {
		return ErrInvalidLanguage
	}
	return s.languages.SaveLanguage(ctx, sessionID, lang)
}

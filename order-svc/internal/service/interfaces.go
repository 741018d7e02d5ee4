package service

import (
	"context"

	"menu-order/order-svc/internal/catalog"
	"menu-order/order-svc/internal/domain"
	"menu-order/order-svc/internal/geocode"
)

type CartStore interface {
	LoadCart(ctx context.Context, sessionID string) ([]domain.LineItem, error)
	SaveCart(ctx context.Context, sessionID string, items []domain.LineItem) error
}

type LanguageStore interface {
	LoadLanguage(ctx context.Context, sessionID string) (domain.Language, error)
	SaveLanguage(ctx context.Context, sessionID string, lang domain.Language) error
}

type CheckoutPublisher interface {
	PublishCheckout(ctx context.Context, event domain.CheckoutEvent) error
}

type Catalog interface {
	Search(ctx context.Context, query string) ([]domain.Category, error)
	Item(ctx context.Context, id string) (domain.MenuItem, error)
}

// LocationResolver never fails; it degrades to the raw coordinates.
type LocationResolver interface {
	Resolve(ctx context.Context, lat, lon float64, lang domain.Language) domain.Location
}

type CartServiceInterface interface {
	Get(ctx context.Context, sessionID string, service domain.ServiceType) (domain.CartView, error)
	Add(ctx context.Context, sessionID string, req domain.AddItem) (domain.CartView, error)
	AddFromMenu(ctx context.Context, sessionID string, selection domain.MenuSelection) (domain.CartView, error)
	Remove(ctx context.Context, sessionID, instanceID string) (domain.CartView, error)
	SetQuantity(ctx context.Context, sessionID, instanceID string, quantity float64) (domain.CartView, error)
	Increase(ctx context.Context, sessionID, instanceID string) (domain.CartView, error)
	Decrease(ctx context.Context, sessionID, instanceID string) (domain.CartView, error)
	SetInstructions(ctx context.Context, sessionID, instanceID, instructions string) (domain.CartView, error)
	SetOptions(ctx context.Context, sessionID, instanceID string, options map[string]string) (domain.CartView, error)
	Clear(ctx context.Context, sessionID string) error
	QuantityFor(ctx context.Context, sessionID, itemID string) (float64, error)
	Language(ctx context.Context, sessionID string) (domain.Language, error)
	SetLanguage(ctx context.Context, sessionID string, lang domain.Language) error
}

type CheckoutServiceInterface interface {
	Checkout(ctx context.Context, sessionID string, details domain.OrderDetails) (domain.CheckoutResult, error)
	QRCode(link string) ([]byte, error)
}

var (
	_ Catalog                  = (*catalog.Service)(nil)
	_ LocationResolver         = (*geocode.Resolver)(nil)
	_ CartServiceInterface     = (*CartService)(nil)
	_ CheckoutServiceInterface = (*CheckoutService)(nil)
)

package tests

import (
	"context"
	"errors"
	"testing"

	"menu-order/order-svc/internal/catalog"
	"menu-order/order-svc/internal/domain"
	"menu-order/order-svc/internal/ledger"
	"menu-order/order-svc/internal/mocks"
	"menu-order/order-svc/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func itemsMatching(check func(items []domain.LineItem) bool) interface{} {
	return mock.MatchedBy(check)
}

func newCartService(t *testing.T) (*service.CartService, *mocks.CartStore, *mocks.LanguageStore, *mocks.Catalog) {
	store := mocks.NewCartStore(t)
	languages := mocks.NewLanguageStore(t)
	menu := mocks.NewCatalog(t)
	ids := []string{"id-1", "id-2", "id-3"}
	next := 0
	svc := service.NewCartService(store, languages, menu, decimal.NewFromFloat(1.5),
		ledger.WithIDGenerator(func() string {
			id := ids[next%len(ids)]
			next++
			return id
		}))
	return svc, store, languages, menu
}

func TestCartService_Add(t *testing.T) {
	svc, store, _, _ := newCartService(t)
	ctx := context.Background()

	store.On("LoadCart", ctx, "s1").Return([]domain.LineItem{
		{InstanceID: "id-1", ID: "bread", Name: "Bread", Price: 1, Quantity: 2, SelectedOptions: map[string]string{}},
	}, nil).Once()
	store.On("SaveCart", ctx, "s1", itemsMatching(func(items []domain.LineItem) bool {
		return len(items) == 2 && items[1].InstanceID == "id-2" && items[1].Quantity == 1
	})).Return(nil).Once()

	cart, err := svc.Add(ctx, "s1", domain.AddItem{ID: "tea", Name: "Tea", Price: 2.5})

	require.NoError(t, err)
	assert.Len(t, cart.Items, 2)
	assert.Equal(t, 3.0, cart.TotalItems)
	assert.Equal(t, "4.50", cart.TotalPrice.StringFixed(2))
	assert.Equal(t, "1.50", cart.DeliveryFee.StringFixed(2))
}

func TestCartService_AddFromMenu(t *testing.T) {
	svc, store, _, menu := newCartService(t)
	ctx := context.Background()

	kofta := domain.MenuItem{ID: "kofta", NameEN: "Kofta", NameAR: "كفتة", Price: 14, WeightStep: 0.25, MinQuantity: 0.5,
		Options: []domain.OptionGroup{{Name: "Spice", Choices: []string{"Regular", "Spicy"}}}}

	tests := []struct {
		name          string
		selection     domain.MenuSelection
		prepareMocks  func()
		expectedError error
		check         func(t *testing.T, cart domain.CartView)
	}{
		{
			name:      "success_defaults",
			selection: domain.MenuSelection{ItemID: "kofta"},
			prepareMocks: func() {
				menu.On("Item", ctx, "kofta").Return(kofta, nil).Once()
				store.On("LoadCart", ctx, "s1").Return(nil, nil).Once()
				store.On("SaveCart", ctx, "s1", mock.Anything).Return(nil).Once()
			},
			check: func(t *testing.T, cart domain.CartView) {
				require.Len(t, cart.Items, 1)
				item := cart.Items[0]
				assert.Equal(t, "Kofta - كفتة", item.Name)
				assert.Equal(t, 0.5, item.Quantity)
				assert.Equal(t, map[string]string{"Spice": "Regular"}, item.SelectedOptions)
				assert.Equal(t, 1.0, cart.TotalItems)
				assert.Equal(t, "7.00", cart.TotalPrice.StringFixed(2))
			},
		},
		{
			name:      "unknown_item",
			selection: domain.MenuSelection{ItemID: "ghost"},
			prepareMocks: func() {
				menu.On("Item", ctx, "ghost").Return(domain.MenuItem{}, catalog.ErrItemNotFound).Once()
			},
			expectedError: catalog.ErrItemNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			cart, err := svc.AddFromMenu(ctx, "s1", testCase.selection)
			assert.ErrorIs(t, err, testCase.expectedError)
			if testCase.check != nil {
				testCase.check(t, cart)
			}
		})
	}
}

func TestCartService_QuantityPolicy(t *testing.T) {
	svc, store, _, _ := newCartService(t)
	ctx := context.Background()

	weighted := func(quantity float64) []domain.LineItem {
		return []domain.LineItem{{InstanceID: "w", ID: "kofta", Name: "Kofta", Price: 10, Quantity: quantity,
			Step: 0.1, MinQuantity: 0.5, SelectedOptions: map[string]string{}}}
	}
	savedQuantity := func(want float64) interface{} {
		return itemsMatching(func(items []domain.LineItem) bool {
			return len(items) == 1 && items[0].Quantity == want
		})
	}

	tests := []struct {
		name          string
		decrease      bool
		instanceID    string
		prepareMocks  func()
		expectedError error
		expectedQty   float64
	}{
		{
			name:       "increase_rounds_to_two_decimals",
			instanceID: "w",
			prepareMocks: func() {
				store.On("LoadCart", ctx, "s1").Return(weighted(0.7), nil).Once()
				store.On("SaveCart", ctx, "s1", savedQuantity(0.8)).Return(nil).Once()
			},
			expectedQty: 0.8,
		},
		{
			name:       "decrease_down_to_minimum",
			decrease:   true,
			instanceID: "w",
			prepareMocks: func() {
				store.On("LoadCart", ctx, "s1").Return(weighted(0.6), nil).Once()
				store.On("SaveCart", ctx, "s1", savedQuantity(0.5)).Return(nil).Once()
			},
			expectedQty: 0.5,
		},
		{
			name:       "decrease_below_minimum_refused",
			decrease:   true,
			instanceID: "w",
			prepareMocks: func() {
				store.On("LoadCart", ctx, "s1").Return(weighted(0.5), nil).Once()
			},
			expectedError: service.ErrBelowMinimum,
		},
		{
			name:       "unknown_instance",
			instanceID: "missing",
			prepareMocks: func() {
				store.On("LoadCart", ctx, "s1").Return(weighted(1), nil).Once()
			},
			expectedError: service.ErrLineItemNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()

			var cart domain.CartView
			var err error
			if testCase.decrease {
				cart, err = svc.Decrease(ctx, "s1", testCase.instanceID)
			} else {
				cart, err = svc.Increase(ctx, "s1", testCase.instanceID)
			}

			assert.ErrorIs(t, err, testCase.expectedError)
			if testCase.expectedError == nil {
				require.Len(t, cart.Items, 1)
				assert.Equal(t, testCase.expectedQty, cart.Items[0].Quantity)
			}
		})
	}
}

func TestCartService_SetQuantity(t *testing.T) {
	svc, store, _, _ := newCartService(t)
	ctx := context.Background()

	existing := func() []domain.LineItem {
		return []domain.LineItem{{InstanceID: "a", ID: "kofta", Price: 10, Quantity: 2, Step: 0.25, MinQuantity: 0.5}}
	}

	tests := []struct {
		name          string
		instanceID    string
		quantity      float64
		prepareMocks  func()
		expectedError error
		expectedQty   float64
	}{
		{
			name:       "rounds_to_two_decimals",
			instanceID: "a",
			quantity:   1.23456,
			prepareMocks: func() {
				store.On("LoadCart", ctx, "s1").Return(existing(), nil).Once()
				store.On("SaveCart", ctx, "s1", itemsMatching(func(items []domain.LineItem) bool {
					return items[0].Quantity == 1.23
				})).Return(nil).Once()
			},
			expectedQty: 1.23,
		},
		{
			name:       "rounding_reaches_minimum",
			instanceID: "a",
			quantity:   0.499,
			prepareMocks: func() {
				store.On("LoadCart", ctx, "s1").Return(existing(), nil).Once()
				store.On("SaveCart", ctx, "s1", mock.Anything).Return(nil).Once()
			},
			expectedQty: 0.5,
		},
		{
			name:       "below_minimum",
			instanceID: "a",
			quantity:   0.4,
			prepareMocks: func() {
				store.On("LoadCart", ctx, "s1").Return(existing(), nil).Once()
			},
			expectedError: service.ErrBelowMinimum,
		},
		{
			name:       "zero",
			instanceID: "a",
			quantity:   0,
			prepareMocks: func() {
				store.On("LoadCart", ctx, "s1").Return(existing(), nil).Once()
			},
			expectedError: service.ErrBelowMinimum,
		},
		{
			name:       "negative",
			instanceID: "a",
			quantity:   -3,
			prepareMocks: func() {
				store.On("LoadCart", ctx, "s1").Return(existing(), nil).Once()
			},
			expectedError: service.ErrBelowMinimum,
		},
		{
			name:       "unknown_instance",
			instanceID: "zz",
			quantity:   1,
			prepareMocks: func() {
				store.On("LoadCart", ctx, "s1").Return(existing(), nil).Once()
			},
			expectedError: service.ErrLineItemNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			cart, err := svc.SetQuantity(ctx, "s1", testCase.instanceID, testCase.quantity)
			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.expectedQty, cart.Items[0].Quantity)
		})
	}
}

func TestCartService_SetQuantityDefaultMinimum(t *testing.T) {
	svc, store, _, _ := newCartService(t)
	ctx := context.Background()

	store.On("LoadCart", ctx, "s1").Return([]domain.LineItem{{InstanceID: "a", ID: "x", Price: 10, Quantity: 2}}, nil).Once()

	_, err := svc.SetQuantity(ctx, "s1", "a", 0.5)
	assert.ErrorIs(t, err, service.ErrBelowMinimum)
}

func TestCartService_AddBelowMinimum(t *testing.T) {
	svc, _, _, menu := newCartService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "s1", domain.AddItem{ID: "kofta", Name: "Kofta", Price: 14, Quantity: 0.25, Step: 0.25, MinQuantity: 0.5})
	assert.ErrorIs(t, err, service.ErrBelowMinimum)

	_, err = svc.Add(ctx, "s1", domain.AddItem{ID: "tea", Name: "Tea", Price: 2, Quantity: -1})
	assert.ErrorIs(t, err, service.ErrBelowMinimum)

	menu.On("Item", ctx, "kofta").Return(domain.MenuItem{ID: "kofta", NameEN: "Kofta", NameAR: "كفتة", Price: 14,
		WeightStep: 0.25, MinQuantity: 0.5}, nil).Once()
	_, err = svc.AddFromMenu(ctx, "s1", domain.MenuSelection{ItemID: "kofta", Quantity: 0.25})
	assert.ErrorIs(t, err, service.ErrBelowMinimum)
}

func TestCartService_AddRoundsQuantity(t *testing.T) {
	svc, store, _, _ := newCartService(t)
	ctx := context.Background()

	store.On("LoadCart", ctx, "s1").Return(nil, nil).Once()
	store.On("SaveCart", ctx, "s1", mock.Anything).Return(nil).Once()

	cart, err := svc.Add(ctx, "s1", domain.AddItem{ID: "kofta", Name: "Kofta", Price: 14, Quantity: 0.7549, Step: 0.25, MinQuantity: 0.5})
	require.NoError(t, err)
	assert.Equal(t, 0.75, cart.Items[0].Quantity)
}

func TestCartService_RemoveUnknownIsNoop(t *testing.T) {
	svc, store, _, _ := newCartService(t)
	ctx := context.Background()

	existing := []domain.LineItem{{InstanceID: "a", ID: "x", Price: 2, Quantity: 1}}
	store.On("LoadCart", ctx, "s1").Return(existing, nil).Once()
	store.On("SaveCart", ctx, "s1", existing).Return(nil).Once()

	cart, err := svc.Remove(ctx, "s1", "nope")
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}

func TestCartService_InstructionsAndOptions(t *testing.T) {
	svc, store, _, _ := newCartService(t)
	ctx := context.Background()

	existing := func() []domain.LineItem {
		return []domain.LineItem{{InstanceID: "a", ID: "x", Price: 2, Quantity: 1, SelectedOptions: map[string]string{"Size": "S"}}}
	}

	store.On("LoadCart", ctx, "s1").Return(existing(), nil).Once()
	store.On("SaveCart", ctx, "s1", mock.Anything).Return(nil).Once()
	cart, err := svc.SetInstructions(ctx, "s1", "a", "no onion")
	require.NoError(t, err)
	assert.Equal(t, "no onion", cart.Items[0].Instructions)

	store.On("LoadCart", ctx, "s1").Return(existing(), nil).Once()
	store.On("SaveCart", ctx, "s1", mock.Anything).Return(nil).Once()
	cart, err = svc.SetOptions(ctx, "s1", "a", map[string]string{"Size": "L"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"Size": "L"}, cart.Items[0].SelectedOptions)

	store.On("LoadCart", ctx, "s1").Return(existing(), nil).Once()
	_, err = svc.SetInstructions(ctx, "s1", "zzz", "x")
	assert.ErrorIs(t, err, service.ErrLineItemNotFound)
}

func TestCartService_GetDeliveryTotal(t *testing.T) {
	svc, store, _, _ := newCartService(t)
	ctx := context.Background()

	items := []domain.LineItem{
		{InstanceID: "a", ID: "steak", Price: 10, Quantity: 2},
		{InstanceID: "b", ID: "lamb", Price: 5, Quantity: 1.5, Step: 0.5},
	}
	store.On("LoadCart", ctx, "s1").Return(items, nil).Twice()

	takeaway, err := svc.Get(ctx, "s1", domain.ServiceTakeaway)
	require.NoError(t, err)
	delivery, err := svc.Get(ctx, "s1", domain.ServiceDelivery)
	require.NoError(t, err)

	assert.Equal(t, "27.50", takeaway.TotalPrice.StringFixed(2))
	assert.Equal(t, "29.00", delivery.TotalPrice.StringFixed(2))
	assert.Equal(t, 3.0, delivery.TotalItems)
}

func TestCartService_StoreErrors(t *testing.T) {
	svc, store, _, _ := newCartService(t)
	ctx := context.Background()
	boom := errors.New("redis down")

	store.On("LoadCart", ctx, "s1").Return(nil, boom).Once()
	_, err := svc.Add(ctx, "s1", domain.AddItem{ID: "x", Name: "X", Price: 1})
	assert.ErrorIs(t, err, boom)

	store.On("LoadCart", ctx, "s1").Return(nil, nil).Once()
	store.On("SaveCart", ctx, "s1", mock.Anything).Return(boom).Once()
	_, err = svc.Add(ctx, "s1", domain.AddItem{ID: "x", Name: "X", Price: 1})
	assert.ErrorIs(t, err, boom)
}

func TestCartService_ClearAndQuantityFor(t *testing.T) {
	svc, store, _, _ := newCartService(t)
	ctx := context.Background()

	store.On("SaveCart", ctx, "s1", itemsMatching(func(items []domain.LineItem) bool { return len(items) == 0 })).Return(nil).Once()
	require.NoError(t, svc.Clear(ctx, "s1"))

	store.On("LoadCart", ctx, "s1").Return([]domain.LineItem{
		{InstanceID: "a", ID: "kofta", Quantity: 0.5},
		{InstanceID: "b", ID: "kofta", Quantity: 0.25},
		{InstanceID: "c", ID: "bread", Quantity: 3},
	}, nil).Once()
	qty, err := svc.QuantityFor(ctx, "s1", "kofta")
	require.NoError(t, err)
	assert.Equal(t, 0.75, qty)
}

func TestCartService_Language(t *testing.T) {
	svc, _, languages, _ := newCartService(t)
	ctx := context.Background()

	languages.On("LoadLanguage", ctx, "s1").Return(domain.LanguageArabic, nil).Once()
	lang, err := svc.Language(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, domain.LanguageArabic, lang)

	languages.On("SaveLanguage", ctx, "s1", domain.LanguageEnglish).Return(nil).Once()
	assert.NoError(t, svc.SetLanguage(ctx, "s1", domain.LanguageEnglish))

	assert.ErrorIs(t, svc.SetLanguage(ctx, "s1", domain.Language("fr")), service.ErrInvalidLanguage)
}

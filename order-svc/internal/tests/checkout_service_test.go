package tests

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"menu-order/order-svc/internal/domain"
	"menu-order/order-svc/internal/message"
	"menu-order/order-svc/internal/mocks"
	"menu-order/order-svc/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var checkoutTime = time.Date(2025, 3, 7, 18, 5, 0, 0, time.UTC)

type checkoutMocks struct {
	carts     *mocks.CartStore
	languages *mocks.LanguageStore
	qr        *mocks.QRGenerator
	publisher *mocks.CheckoutPublisher
}

func newCheckoutService(t *testing.T, restrict bool) (*service.CheckoutService, checkoutMocks) {
	m := checkoutMocks{
		carts:     mocks.NewCartStore(t),
		languages: mocks.NewLanguageStore(t),
		qr:        mocks.NewQRGenerator(t),
		publisher: mocks.NewCheckoutPublisher(t),
	}
	formatter := message.NewFormatter(message.Config{
		DeliveryFee: decimal.NewFromFloat(1.5),
		BaseURL:     "https://wa.me",
		Recipient:   "9613502022",
		Location:    time.UTC,
	})
	svc := service.NewCheckoutService(service.CheckoutConfig{
		Carts:           m.carts,
		Languages:       m.languages,
		Formatter:       formatter,
		QR:              m.qr,
		Publisher:       m.publisher,
		RestrictQRLinks: restrict,
		Now:             func() time.Time { return checkoutTime },
	})
	return svc, m
}

func sampleCart() []domain.LineItem {
	return []domain.LineItem{
		{InstanceID: "1", ID: "steak", Name: "Steak", Price: 10, Quantity: 2, SelectedOptions: map[string]string{}},
		{InstanceID: "2", ID: "lamb", Name: "Lamb", Price: 5, Quantity: 1.5, Step: 0.5, SelectedOptions: map[string]string{}},
	}
}

func TestCheckoutService_Validation(t *testing.T) {
	svc, m := newCheckoutService(t, true)
	ctx := context.Background()

	tests := []struct {
		name          string
		details       domain.OrderDetails
		cart          []domain.LineItem
		expectedError error
	}{
		{
			name:          "empty_cart",
			details:       domain.OrderDetails{},
			cart:          nil,
			expectedError: service.ErrEmptyCart,
		},
		{
			name:          "scheduled_without_time",
			details:       domain.OrderDetails{Timing: domain.TimingScheduled, ScheduledTime: "  "},
			cart:          sampleCart(),
			expectedError: service.ErrScheduledTimeRequired,
		},
		{
			name:          "scheduled_time_unparseable",
			details:       domain.OrderDetails{Timing: domain.TimingScheduled, ScheduledTime: "tomorrow evening"},
			cart:          sampleCart(),
			expectedError: service.ErrInvalidScheduledTime,
		},
		{
			name:          "unknown_payment",
			details:       domain.OrderDetails{PaymentMethod: "crypto"},
			cart:          sampleCart(),
			expectedError: service.ErrInvalidOrderDetails,
		},
		{
			name:          "unknown_service_type",
			details:       domain.OrderDetails{ServiceType: "drone"},
			cart:          sampleCart(),
			expectedError: service.ErrInvalidOrderDetails,
		},
		{
			name:          "unknown_timing",
			details:       domain.OrderDetails{Timing: "later"},
			cart:          sampleCart(),
			expectedError: service.ErrInvalidOrderDetails,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			m.carts.On("LoadCart", ctx, "s1").Return(testCase.cart, nil).Once()

			_, err := svc.Checkout(ctx, "s1", testCase.details)
			assert.ErrorIs(t, err, testCase.expectedError)
		})
	}

	m.carts.AssertNotCalled(t, "SaveCart", mock.Anything, mock.Anything, mock.Anything)
	assert.Equal(t, "Please select a date and time for your order", service.ErrScheduledTimeRequired.Error())
}

func TestCheckoutService_Success(t *testing.T) {
	svc, m := newCheckoutService(t, true)
	ctx := context.Background()

	m.carts.On("LoadCart", ctx, "s1").Return(sampleCart(), nil).Once()
	m.languages.On("LoadLanguage", ctx, "s1").Return(domain.LanguageEnglish, nil).Once()
	m.qr.On("Generate", mock.MatchedBy(func(link string) bool {
		return strings.HasPrefix(link, "https://wa.me/9613502022?text=")
	})).Return([]byte("png"), nil).Once()
	m.publisher.On("PublishCheckout", ctx, mock.MatchedBy(func(event domain.CheckoutEvent) bool {
		return event.Type == "order_link_created" &&
			event.SessionID == "s1" &&
			event.ServiceType == domain.ServiceDelivery &&
			event.LineCount == 2 &&
			event.TotalPrice == "29.00" &&
			event.Timestamp.Equal(checkoutTime)
	})).Return(errors.New("broker down")).Once()
	m.carts.On("SaveCart", ctx, "s1", mock.MatchedBy(func(items []domain.LineItem) bool {
		return len(items) == 0
	})).Return(nil).Once()

	result, err := svc.Checkout(ctx, "s1", domain.OrderDetails{
		ServiceType:   domain.ServiceDelivery,
		Timing:        domain.TimingScheduled,
		ScheduledTime: "2025-03-07T18:05",
		PaymentMethod: domain.PaymentCard,
	})

	require.NoError(t, err)
	assert.Equal(t, []byte("png"), result.QRCode)
	assert.Equal(t, 3.0, result.TotalItems)
	assert.Equal(t, "29.00", result.TotalPrice.StringFixed(2))
	assert.Contains(t, result.Message, "*Time:* 📅 07/03/2025 6:05 PM\n")
	assert.Contains(t, result.Message, "*Location:* Not provided\n")
	assert.Contains(t, result.Message, "Delivery Charge: $1.50\n")

	u, err := url.Parse(result.Link)
	require.NoError(t, err)
	assert.Equal(t, result.Message, u.Query().Get("text"))
}

func TestCheckoutService_TakeawayDropsLocationAndDefaults(t *testing.T) {
	svc, m := newCheckoutService(t, true)
	ctx := context.Background()

	m.carts.On("LoadCart", ctx, "s1").Return(sampleCart(), nil).Once()
	m.languages.On("LoadLanguage", ctx, "s1").Return(domain.Language(""), errors.New("redis down")).Once()
	m.qr.On("Generate", mock.Anything).Return(nil, errors.New("too long")).Once()
	m.publisher.On("PublishCheckout", ctx, mock.Anything).Return(nil).Once()
	m.carts.On("SaveCart", ctx, "s1", mock.Anything).Return(nil).Once()

	result, err := svc.Checkout(ctx, "s1", domain.OrderDetails{
		Location: &domain.Location{URL: "https://maps.example/1"},
	})

	require.NoError(t, err)
	assert.Nil(t, result.QRCode)
	assert.Equal(t, "27.50", result.TotalPrice.StringFixed(2))
	assert.NotContains(t, result.Message, "maps.example")
	assert.Contains(t, result.Message, "🥡")
	assert.Contains(t, result.Message, "💵")
	assert.True(t, strings.HasPrefix(result.Message, "مرحبا"))
}

func TestCheckoutService_ClearFailure(t *testing.T) {
	svc, m := newCheckoutService(t, true)
	ctx := context.Background()
	boom := errors.New("redis down")

	m.carts.On("LoadCart", ctx, "s1").Return(sampleCart(), nil).Once()
	m.languages.On("LoadLanguage", ctx, "s1").Return(domain.LanguageEnglish, nil).Once()
	m.qr.On("Generate", mock.Anything).Return([]byte("png"), nil).Once()
	m.publisher.On("PublishCheckout", ctx, mock.Anything).Return(nil).Once()
	m.carts.On("SaveCart", ctx, "s1", mock.Anything).Return(boom).Once()

	_, err := svc.Checkout(ctx, "s1", domain.OrderDetails{})
	assert.ErrorIs(t, err, boom)
}

func TestCheckoutService_QRCode(t *testing.T) {
	svc, m := newCheckoutService(t, true)

	_, err := svc.QRCode("https://evil.example/phish")
	assert.ErrorIs(t, err, service.ErrForeignLink)

	_, err = svc.QRCode("")
	assert.ErrorIs(t, err, service.ErrForeignLink)

	link := "https://wa.me/9613502022?text=hi"
	m.qr.On("Generate", link).Return([]byte("png"), nil).Once()
	qr, err := svc.QRCode(link)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), qr)

	open, openMocks := newCheckoutService(t, false)
	openMocks.qr.On("Generate", "https://example.com").Return([]byte("png"), nil).Once()
	_, err = open.QRCode("https://example.com")
	assert.NoError(t, err)
}

package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"menu-order/order-svc/internal/domain"
	"menu-order/order-svc/internal/ledger"
	"menu-order/order-svc/internal/message"
	"menu-order/pkg/logger"
)

var (
	ErrEmptyCart             = errors.New("cart is empty")
	ErrScheduledTimeRequired = errors.New("Please select a date and time for your order")
	ErrInvalidScheduledTime  = errors.New("scheduled time is not a valid date and time")
	ErrInvalidOrderDetails   = errors.New("invalid order details")
	ErrForeignLink           = errors.New("link does not point at the ordering recipient")
)

const checkoutEventType = "order_link_created"

type CheckoutService struct {
	carts         CartStore
	languages     LanguageStore
	formatter     *message.Formatter
	qr            QRGenerator
	publisher     CheckoutPublisher
	log           *logger.Logger
	restrictLinks bool
	now           func() time.Time
}

type CheckoutConfig struct {
	Carts     CartStore
	Languages LanguageStore
	Formatter *message.Formatter
	QR        QRGenerator
	Publisher CheckoutPublisher
	Logger    *logger.Logger
	// RestrictQRLinks limits QRCode to links of the configured recipient.
	RestrictQRLinks bool
	Now             func() time.Time
}

func NewCheckoutService(cfg CheckoutConfig) *CheckoutService {
	if cfg.Logger == nil {
		cfg.Logger = logger.Discard()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &CheckoutService{
		carts:         cfg.Carts,
		languages:     cfg.Languages,
		formatter:     cfg.Formatter,
		qr:            cfg.QR,
		publisher:     cfg.Publisher,
		log:           cfg.Logger.WithComponent("checkout"),
		restrictLinks: cfg.RestrictQRLinks,
		now:           cfg.Now,
	}
}

// Checkout formats the session cart into the messaging link and clears the
// cart. On any validation error the cart is left untouched.
func (s *CheckoutService) Checkout(ctx context.Context, sessionID string, details domain.OrderDetails) (domain.CheckoutResult, error) {
	items, err := s.carts.LoadCart(ctx, sessionID)
	if err != nil {
		return domain.CheckoutResult{}, err
	}
	if len(items) == 0 {
		return domain.CheckoutResult{}, ErrEmptyCart
	}
	if err := s.validate(&details); err != nil {
		return domain.CheckoutResult{}, err
	}

	lang, err := s.languages.LoadLanguage(ctx, sessionID)
	if err != nil {
		s.log.Warn("language unavailable, using default", "session_id", sessionID, "error", err)
		lang = domain.DefaultLanguage
	}

	l := ledger.New(s.formatter.DeliveryFee(), ledger.WithItems(items))
	text := s.formatter.Message(items, lang, &details)
	result := domain.CheckoutResult{
		Link:       s.formatter.LinkFor(text),
		Message:    text,
		TotalItems: l.TotalLineCount(),
		TotalPrice: l.TotalPrice(details.ServiceType),
	}

	if s.qr != nil {
		if qr, err := s.qr.Generate(result.Link); err == nil {
			result.QRCode = qr
		} else {
			s.log.Warn("qr code generation failed", "session_id", sessionID, "error", err)
		}
	}

	if s.publisher != nil {
		event := domain.CheckoutEvent{
			Type:          checkoutEventType,
			SessionID:     sessionID,
			Language:      lang,
			ServiceType:   details.ServiceType,
			Timing:        details.Timing,
			PaymentMethod: details.PaymentMethod,
			LineCount:     len(items),
			TotalItems:    result.TotalItems,
			TotalPrice:    result.TotalPrice.StringFixed(2),
			Timestamp:     s.now(),
		}
		if err := s.publisher.PublishCheckout(ctx, event); err != nil {
			s.log.Warn("checkout event not published", "session_id", sessionID, "error", err)
		}
	}

	if err := s.carts.SaveCart(ctx, sessionID, nil); err != nil {
		return domain.CheckoutResult{}, err
	}
	return result, nil
}

// validate fills unset fields with the ordering form's defaults and rejects
// unknown values.
func (s *CheckoutService) validate(details *domain.OrderDetails) error {
	if details.ServiceType == "" {
		details.ServiceType = domain.ServiceTakeaway
	}
	if details.Timing == "" {
		details.Timing = domain.TimingNow
	}
	if details.PaymentMethod == "" {
		details.PaymentMethod = domain.PaymentCash
	}

	switch details.ServiceType {
	case domain.ServiceTakeaway:
		details.Location = nil
	case domain.ServiceDelivery:
	default:
		return ErrInvalidOrderDetails
	}
	switch details.PaymentMethod {
	case domain.PaymentCash, domain.PaymentCard:
	default:
		return ErrInvalidOrderDetails
	}

	switch details.Timing {
	case domain.TimingNow:
		details.ScheduledTime = ""
	case domain.TimingScheduled:
		details.ScheduledTime = strings.TrimSpace(details.ScheduledTime)
		if details.ScheduledTime == "" {
			return ErrScheduledTimeRequired
		}
		if _, err := message.ParseScheduled(details.ScheduledTime, time.UTC); err != nil {
			return ErrInvalidScheduledTime
		}
	default:
		return ErrInvalidOrderDetails
	}
	return nil
}

func (s *CheckoutService) QRCode(link string) ([]byte, error) {
	if link == "" || (s.restrictLinks && !s.formatter.IsLink(link)) {
		return nil, ErrForeignLink
	}
	if s.qr == nil {
		return nil, errors.New("qr code generation is disabled")
	}
	return s.qr.Generate(link)
}

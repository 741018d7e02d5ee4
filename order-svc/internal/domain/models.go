package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Language string

const (
	LanguageEnglish Language = "en"
	LanguageArabic  Language = "ar"

	DefaultLanguage = LanguageArabic
)

func ParseLanguage(code string) (Language, bool) {
	switch Language(code) {
	case LanguageEnglish, LanguageArabic:
		return Language(code), true
	}
	return "", false
}

func (l Language) Direction() string {
	if l == LanguageArabic {
		return "rtl"
	}
	return "ltr"
}

type ServiceType string

const (
	ServiceTakeaway ServiceType = "takeaway"
	ServiceDelivery ServiceType = "delivery"
)

type Timing string

const (
	TimingNow       Timing = "now"
	TimingScheduled Timing = "scheduled"
)

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)

// LineItem is one add-to-cart action. Step and MinQuantity are zero when the
// catalog item did not specify them.
type LineItem struct {
	InstanceID      string            `json:"instance_id"`
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	NameEN          string            `json:"name_en,omitempty"`
	NameAR          string            `json:"name_ar,omitempty"`
	Price           float64           `json:"price"`
	Quantity        float64           `json:"quantity"`
	Step            float64           `json:"step,omitempty"`
	MinQuantity     float64           `json:"min_quantity,omitempty"`
	SelectedOptions map[string]string `json:"selected_options"`
	Instructions    string            `json:"instructions"`
}

// EffectiveStep is the quantity increment, 1 when unset.
func (i LineItem) EffectiveStep() float64 {
	if i.Step > 0 {
		return i.Step
	}
	return 1
}

// EffectiveMinQuantity is the quantity floor, 1 when unset.
func (i LineItem) EffectiveMinQuantity() float64 {
	if i.MinQuantity > 0 {
		return i.MinQuantity
	}
	return 1
}

// IsWeighted reports whether the item is sold by continuous measure.
func (i LineItem) IsWeighted() bool {
	return i.Step > 0 && i.Step < 1
}

func (i LineItem) DisplayName(lang Language) string {
	if lang == LanguageArabic {
		if i.NameAR != "" {
			return i.NameAR
		}
	} else if i.NameEN != "" {
		return i.NameEN
	}
	if i.Name != "" {
		return i.Name
	}
	if i.NameEN != "" {
		return i.NameEN
	}
	return i.NameAR
}

// AddItem is the payload of an add-to-cart action.
type AddItem struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	NameEN          string            `json:"name_en,omitempty"`
	NameAR          string            `json:"name_ar,omitempty"`
	Price           float64           `json:"price"`
	Quantity        float64           `json:"quantity,omitempty"`
	Step            float64           `json:"step,omitempty"`
	MinQuantity     float64           `json:"min_quantity,omitempty"`
	SelectedOptions map[string]string `json:"selected_options,omitempty"`
	Instructions    string            `json:"instructions,omitempty"`
}

type Location struct {
	Label       string `json:"label,omitempty"`
	URL         string `json:"url,omitempty"`
	Coordinates string `json:"coordinates,omitempty"`
	Area        string `json:"area,omitempty"`
	Street      string `json:"street,omitempty"`
	Building    string `json:"building,omitempty"`
	Floor       string `json:"floor,omitempty"`
	Details     string `json:"details,omitempty"`
}

type OrderDetails struct {
	ServiceType   ServiceType   `json:"service_type"`
	Timing        Timing        `json:"timing"`
	ScheduledTime string        `json:"scheduled_time,omitempty"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Location      *Location     `json:"location,omitempty"`
}

func (d *OrderDetails) IsDelivery() bool {
	return d != nil && d.ServiceType == ServiceDelivery
}

type CartView struct {
	Items       []LineItem      `json:"items"`
	TotalItems  float64         `json:"total_items"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
}

type CheckoutResult struct {
	Link       string          `json:"link"`
	Message    string          `json:"message"`
	QRCode     []byte          `json:"qr_code,omitempty"`
	TotalItems float64         `json:"total_items"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

type CheckoutEvent struct {
	Type          string        `json:"type"`
	SessionID     string        `json:"session_id"`
	Language      Language      `json:"language"`
	ServiceType   ServiceType   `json:"service_type"`
	Timing        Timing        `json:"timing"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	LineCount     int           `json:"line_count"`
	TotalItems    float64       `json:"total_items"`
	TotalPrice    string        `json:"total_price"`
	Timestamp     time.Time     `json:"timestamp"`
}

// MenuSelection adds a catalog item with the customer's choices.
type MenuSelection struct {
	ItemID          string            `json:"item_id"`
	SelectedOptions map[string]string `json:"selected_options,omitempty"`
	Instructions    string            `json:"instructions,omitempty"`
	Quantity        float64           `json:"quantity,omitempty"`
}

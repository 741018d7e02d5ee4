// Package ledger holds the cart line items of one session and derives totals
// from them. A Ledger is not safe for concurrent use; callers load one per
// request, mutate it and persist the result.
package ledger

import (
	"menu-order/order-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Ledger struct {
	items       []domain.LineItem
	deliveryFee decimal.Decimal
	newID       func() string
}

type Option func(*Ledger)

// WithIDGenerator replaces the uuid-based instance id generator.
func WithIDGenerator(gen func() string) Option {
	return func(l *Ledger) { l.newID = gen }
}

// WithItems seeds the ledger with previously persisted line items.
func WithItems(items []domain.LineItem) Option {
	return func(l *Ledger) {
		l.items = make([]domain.LineItem, len(items))
		copy(l.items, items)
	}
}

func New(deliveryFee decimal.Decimal, opts ...Option) *Ledger {
	l := &Ledger{
		deliveryFee: deliveryFee,
		newID:       uuid.NewString,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Add appends a new line item. Identical items are never merged so that
// per-instance notes and options stay separate.
func (l *Ledger) Add(req domain.AddItem) domain.LineItem {
	quantity := req.Quantity
	if quantity == 0 {
		quantity = req.MinQuantity
	}
	if quantity == 0 {
		quantity = 1
	}

	options := make(map[string]string, len(req.SelectedOptions))
	for k, v := range req.SelectedOptions {
		options[k] = v
	}

	item := domain.LineItem{
		InstanceID:      l.nextID(),
		ID:              req.ID,
		Name:            req.Name,
		NameEN:          req.NameEN,
		NameAR:          req.NameAR,
		Price:           req.Price,
		Quantity:        quantity,
		Step:            req.Step,
		MinQuantity:     req.MinQuantity,
		SelectedOptions: options,
		Instructions:    req.Instructions,
	}
	l.items = append(l.items, item)
	return item
}

func (l *Ledger) nextID() string {
	for {
		id := l.newID()
		if l.index(id) < 0 {
			return id
		}
	}
}

func (l *Ledger) index(instanceID string) int {
	for i := range l.items {
		if l.items[i].InstanceID == instanceID {
			return i
		}
	}
	return -1
}

// Remove deletes the line item; it reports false when nothing matched.
func (l *Ledger) Remove(instanceID string) bool {
	i := l.index(instanceID)
	if i < 0 {
		return false
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	return true
}

// SetQuantity overwrites the quantity as given. No rounding or bounds
// checking happens here; see the quantity policy in the service layer.
func (l *Ledger) SetQuantity(instanceID string, quantity float64) bool {
	i := l.index(instanceID)
	if i < 0 {
		return false
	}
	l.items[i].Quantity = quantity
	return true
}

func (l *Ledger) SetInstructions(instanceID, instructions string) bool {
	i := l.index(instanceID)
	if i < 0 {
		return false
	}
	l.items[i].Instructions = instructions
	return true
}

func (l *Ledger) SetOptions(instanceID string, options map[string]string) bool {
	i := l.index(instanceID)
	if i < 0 {
		return false
	}
	copied := make(map[string]string, len(options))
	for k, v := range options {
		copied[k] = v
	}
	l.items[i].SelectedOptions = copied
	return true
}

func (l *Ledger) Clear() {
	l.items = nil
}

func (l *Ledger) Get(instanceID string) (domain.LineItem, bool) {
	i := l.index(instanceID)
	if i < 0 {
		return domain.LineItem{}, false
	}
	return l.items[i], true
}

// Items returns a copy of the line items in insertion order.
func (l *Ledger) Items() []domain.LineItem {
	out := make([]domain.LineItem, len(l.items))
	copy(out, l.items)
	return out
}

func (l *Ledger) Len() int {
	return len(l.items)
}

// QuantityFor sums the raw quantities of every line item of one catalog item.
func (l *Ledger) QuantityFor(catalogID string) float64 {
	var total float64
	for _, item := range l.items {
		if item.ID == catalogID {
			total += item.Quantity
		}
	}
	return total
}

func (l *Ledger) DeliveryFee() decimal.Decimal {
	return l.deliveryFee
}

func (l *Ledger) TotalLineCount() float64 {
	return CountItems(l.items)
}

// TotalPrice is the items subtotal, plus the delivery fee once for delivery orders.
func (l *Ledger) TotalPrice(service domain.ServiceType) decimal.Decimal {
	total := Subtotal(l.items)
	if service == domain.ServiceDelivery {
		total = total.Add(l.deliveryFee)
	}
	return total
}

// CountItems is the badge count: weight-based items count as one each.
func CountItems(items []domain.LineItem) float64 {
	total := decimal.Zero
	for _, item := range items {
		if item.IsWeighted() {
			total = total.Add(decimal.NewFromInt(1))
			continue
		}
		total = total.Add(decimal.NewFromFloat(item.Quantity))
	}
	return total.InexactFloat64()
}

func LinePrice(item domain.LineItem) decimal.Decimal {
	return decimal.NewFromFloat(item.Price).Mul(decimal.NewFromFloat(item.Quantity))
}

func Subtotal(items []domain.LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(LinePrice(item))
	}
	return total
}

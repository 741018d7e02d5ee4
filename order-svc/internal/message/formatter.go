// Package message renders a cart and its order details into the text sent to
// the restaurant and packages it as a messaging deep link.
package message

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"menu-order/order-svc/internal/domain"
	"menu-order/order-svc/internal/ledger"

	"github.com/shopspring/decimal"
)

const separator = "--------------------"

type Config struct {
	Phrases     Phrases
	DeliveryFee decimal.Decimal
	BaseURL     string
	Recipient   string
	Location    *time.Location
}

type Formatter struct {
	phrases     Phrases
	deliveryFee decimal.Decimal
	baseURL     string
	recipient   string
	location    *time.Location
}

func NewFormatter(cfg Config) *Formatter {
	if cfg.Phrases == nil {
		cfg.Phrases = DefaultPhrases()
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	return &Formatter{
		phrases:     cfg.Phrases,
		deliveryFee: cfg.DeliveryFee,
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		recipient:   cfg.Recipient,
		location:    cfg.Location,
	}
}

func (f *Formatter) DeliveryFee() decimal.Decimal {
	return f.deliveryFee
}

// order is the input of one rendering pass.
type order struct {
	items   []domain.LineItem
	lang    domain.Language
	details *domain.OrderDetails
}

type section struct {
	name    string
	present func(o *order) bool
	render  func(f *Formatter, b *strings.Builder, o *order)
}

var sections = []section{
	{name: "greeting", present: always, render: (*Formatter).writeGreeting},
	{name: "details", present: hasDetails, render: (*Formatter).writeDetails},
	{name: "location", present: isDelivery, render: (*Formatter).writeLocation},
	{name: "details-end", present: hasDetails, render: writeDetailsEnd},
	{name: "items", present: always, render: (*Formatter).writeItems},
	{name: "summary", present: always, render: (*Formatter).writeSummary},
}

func always(*order) bool       { return true }
func hasDetails(o *order) bool { return o.details != nil }
func isDelivery(o *order) bool { return o.details.IsDelivery() }

// Message renders the plain-text order. It never fails.
func (f *Formatter) Message(items []domain.LineItem, lang domain.Language, details *domain.OrderDetails) string {
	o := &order{items: items, lang: normalize(lang), details: details}
	var b strings.Builder
	for _, s := range sections {
		if s.present(o) {
			s.render(f, &b, o)
		}
	}
	return b.String()
}

// Link renders the message and wraps it in the messaging deep link.
func (f *Formatter) Link(items []domain.LineItem, lang domain.Language, details *domain.OrderDetails) string {
	return f.LinkFor(f.Message(items, lang, details))
}

func (f *Formatter) LinkFor(text string) string {
	return f.baseURL + "/" + f.recipient + "?text=" + encodeComponent(text)
}

// IsLink reports whether link points at the configured messaging recipient.
func (f *Formatter) IsLink(link string) bool {
	return strings.HasPrefix(link, f.baseURL+"/"+f.recipient+"?")
}

// componentUnescaper restores the characters encodeURIComponent leaves alone.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

func encodeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}

func normalize(lang domain.Language) domain.Language {
	if lang == domain.LanguageArabic {
		return lang
	}
	return domain.LanguageEnglish
}

func (f *Formatter) t(o *order, key string) string {
	return f.phrases.Lookup(o.lang, key)
}

func (f *Formatter) line(b *strings.Builder, label, value string) {
	b.WriteString(label)
	b.WriteByte(' ')
	b.WriteString(value)
	b.WriteByte('\n')
}

func (f *Formatter) writeGreeting(b *strings.Builder, o *order) {
	b.WriteString(f.t(o, "greeting"))
	b.WriteString("\n\n")
}

func (f *Formatter) writeDetails(b *strings.Builder, o *order) {
	d := o.details

	serviceKey := "takeaway"
	if d.ServiceType == domain.ServiceDelivery {
		serviceKey = "delivery"
	}
	f.line(b, f.t(o, "order_type"), f.t(o, serviceKey))

	timing := f.t(o, "asap")
	if d.Timing == domain.TimingScheduled {
		timing = f.t(o, "scheduled") + " " + FormatScheduled(d.ScheduledTime, f.location)
	}
	f.line(b, f.t(o, "time"), timing)

	paymentKey := "card"
	if d.PaymentMethod == domain.PaymentCash {
		paymentKey = "cash"
	}
	f.line(b, f.t(o, "payment"), f.t(o, paymentKey))
}

func captured(loc *domain.Location) bool {
	if loc == nil {
		return false
	}
	return loc.URL != "" || loc.Coordinates != "" || loc.Area != "" || loc.Street != "" ||
		loc.Building != "" || loc.Floor != "" || loc.Details != ""
}

func (f *Formatter) writeLocation(b *strings.Builder, o *order) {
	loc := o.details.Location
	if !captured(loc) {
		f.line(b, f.t(o, "location"), f.t(o, "location_unavailable"))
		return
	}

	switch {
	case loc.URL != "":
		label := loc.Label
		if label == "" {
			label = loc.URL
		}
		f.line(b, f.t(o, "location"), label)
		b.WriteString(loc.URL)
		b.WriteByte('\n')
	case loc.Label != "":
		f.line(b, f.t(o, "location"), loc.Label)
	default:
		f.line(b, f.t(o, "location"), f.t(o, "location_unavailable"))
	}

	fields := []struct{ key, value string }{
		{"area", loc.Area},
		{"street", loc.Street},
		{"building", loc.Building},
		{"floor", loc.Floor},
		{"details", loc.Details},
		{"coordinates", loc.Coordinates},
	}
	for _, field := range fields {
		if strings.TrimSpace(field.value) != "" {
			f.line(b, f.t(o, field.key), field.value)
		}
	}
}

func writeDetailsEnd(_ *Formatter, b *strings.Builder, _ *order) {
	b.WriteString(separator)
	b.WriteString("\n\n")
}

func (f *Formatter) writeItems(b *strings.Builder, o *order) {
	for i, item := range o.items {
		b.WriteString(indexLabel(i + 1))
		b.WriteByte(' ')
		b.WriteString(item.DisplayName(o.lang))
		b.WriteByte('\n')
		f.line(b, f.t(o, "qty"), FormatQuantity(item.Quantity))
		f.line(b, f.t(o, "price"), FormatMoney(ledger.LinePrice(item)))

		keys := make([]string, 0, len(item.SelectedOptions))
		for k := range item.SelectedOptions {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			b.WriteString("- ")
			b.WriteString(k)
			b.WriteString(": ")
			b.WriteString(item.SelectedOptions[k])
			b.WriteByte('\n')
		}

		if note := strings.TrimSpace(item.Instructions); note != "" {
			f.line(b, f.t(o, "instructions"), note)
		}
		b.WriteByte('\n')
	}
}

func indexLabel(n int) string {
	return strconv.Itoa(n) + "."
}

func (f *Formatter) writeSummary(b *strings.Builder, o *order) {
	b.WriteString(separator)
	b.WriteByte('\n')
	f.line(b, f.t(o, "total_items"), FormatQuantity(ledger.CountItems(o.items)))

	total := ledger.Subtotal(o.items)
	if o.details.IsDelivery() {
		total = total.Add(f.deliveryFee)
		f.line(b, f.t(o, "delivery_charge"), FormatMoney(f.deliveryFee))
	}

	f.line(b, f.t(o, "total_bill"), FormatMoney(total))
	b.WriteString(f.t(o, "thank_you"))
}

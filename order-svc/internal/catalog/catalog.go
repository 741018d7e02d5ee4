package catalog

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"menu-order/order-svc/internal/domain"
)

var ErrItemNotFound = errors.New("menu item not found")

// DefaultPresets are offered when a menu item lists no preset instructions.
var DefaultPresets = []string{"Extra fresh", "For BBQ", "Vacuum packed"}

// Source loads the full menu. Implementations are read-only.
type Source interface {
	LoadMenu(ctx context.Context) (domain.Menu, error)
}

type Service struct {
	source Source
}

func NewService(source Source) *Service {
	return &Service{source: source}
}

func (s *Service) Categories(ctx context.Context) ([]domain.Category, error) {
	menu, err := s.source.LoadMenu(ctx)
	if err != nil {
		return nil, err
	}
	for i := range menu.Categories {
		for j := range menu.Categories[i].Items {
			withPresets(&menu.Categories[i].Items[j])
		}
	}
	return menu.Categories, nil
}

// Search keeps categories with at least one matching item. English fields
// match case-insensitively, Arabic fields by plain substring.
func (s *Service) Search(ctx context.Context, query string) ([]domain.Category, error) {
	categories, err := s.Categories(ctx)
	if err != nil {
		return nil, err
	}
	if query == "" {
		return categories, nil
	}

	lowered := strings.ToLower(query)
	var out []domain.Category
	for _, category := range categories {
		var matching []domain.MenuItem
		for _, item := range category.Items {
			if matches(item, query, lowered) {
				matching = append(matching, item)
			}
		}
		if len(matching) == 0 {
			continue
		}
		category.Items = matching
		out = append(out, category)
	}
	return out, nil
}

func matches(item domain.MenuItem, query, lowered string) bool {
	return strings.Contains(strings.ToLower(item.NameEN), lowered) ||
		strings.Contains(item.NameAR, query) ||
		strings.Contains(strings.ToLower(item.DescriptionEN), lowered) ||
		strings.Contains(item.DescriptionAR, query)
}

func (s *Service) Item(ctx context.Context, id string) (domain.MenuItem, error) {
	categories, err := s.Categories(ctx)
	if err != nil {
		return domain.MenuItem{}, err
	}
	for _, category := range categories {
		for _, item := range category.Items {
			if item.ID == id {
				if item.CategoryID == "" {
					item.CategoryID = category.ID
				}
				return item, nil
			}
		}
	}
	return domain.MenuItem{}, ErrItemNotFound
}

func withPresets(item *domain.MenuItem) {
	if len(item.Presets) == 0 {
		item.Presets = append([]string(nil), DefaultPresets...)
	}
}

// DefaultOptions picks the first choice of every option group.
func DefaultOptions(item domain.MenuItem) map[string]string {
	defaults := make(map[string]string, len(item.Options))
	for _, group := range item.Options {
		if len(group.Choices) > 0 {
			defaults[group.Name] = group.Choices[0]
		}
	}
	return defaults
}

var (
	doubleComma   = regexp.MustCompile(`,\s*,`)
	leadingComma  = regexp.MustCompile(`^,\s*`)
	trailingComma = regexp.MustCompile(`,\s*$`)
)

// TogglePreset appends preset to the instructions, or removes it when it is
// already there and tidies the leftover commas.
func TogglePreset(current, preset string) string {
	if !strings.Contains(current, preset) {
		if current == "" {
			return preset
		}
		return current + ", " + preset
	}
	out := strings.Replace(current, preset, "", 1)
	out = doubleComma.ReplaceAllString(out, ",")
	out = leadingComma.ReplaceAllString(out, "")
	return trailingComma.ReplaceAllString(out, "")
}

// AddRequest turns a menu item and the customer's choices into a cart add
// request. Chosen options override the per-group defaults.
func AddRequest(item domain.MenuItem, options map[string]string, instructions string, quantity float64) domain.AddItem {
	selected := DefaultOptions(item)
	for k, v := range options {
		selected[k] = v
	}

	step := item.WeightStep
	if step <= 0 {
		step = 1
	}
	minQuantity := item.MinQuantity
	if minQuantity <= 0 {
		minQuantity = 1
	}

	return domain.AddItem{
		ID:              item.ID,
		Name:            item.NameEN + " - " + item.NameAR,
		NameEN:          item.NameEN,
		NameAR:          item.NameAR,
		Price:           item.Price,
		Quantity:        quantity,
		Step:            step,
		MinQuantity:     minQuantity,
		SelectedOptions: selected,
		Instructions:    instructions,
	}
}

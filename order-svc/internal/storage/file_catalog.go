package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"menu-order/order-svc/internal/domain"
)

// FileCatalog serves the menu bundled as a JSON file. The file is read once.
type FileCatalog struct {
	path string

	once sync.Once
	menu domain.Menu
	err  error
}

func NewFileCatalog(path string) *FileCatalog {
	return &FileCatalog{path: path}
}

func (c *FileCatalog) LoadMenu(ctx context.Context) (domain.Menu, error) {
	c.once.Do(func() {
		data, err := os.ReadFile(c.path)
		if err != nil {
			c.err = fmt.Errorf("read menu file %s: %w", c.path, err)
			return
		}
		if err := json.Unmarshal(data, &c.menu); err != nil {
			c.err = fmt.Errorf("decode menu file %s: %w", c.path, err)
		}
	})
	return copyMenu(c.menu), c.err
}

func copyMenu(menu domain.Menu) domain.Menu {
	out := domain.Menu{Categories: make([]domain.Category, len(menu.Categories))}
	for i, category := range menu.Categories {
		category.Items = append([]domain.MenuItem(nil), category.Items...)
		out.Categories[i] = category
	}
	return out
}

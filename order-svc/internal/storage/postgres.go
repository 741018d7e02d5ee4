package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"menu-order/order-svc/internal/domain"

	"github.com/lib/pq"
)

// PostgresCatalog reads the menu from the categories and menu_items tables.
type PostgresCatalog struct {
	DB *sql.DB
}

func NewPostgresCatalog(db *sql.DB) *PostgresCatalog {
	return &PostgresCatalog{DB: db}
}

func (r *PostgresCatalog) LoadMenu(ctx context.Context) (domain.Menu, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name_en, name_ar, COALESCE(image, '')
		FROM categories
		ORDER BY position, id`)
	if err != nil {
		return domain.Menu{}, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var menu domain.Menu
	index := map[string]int{}
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.NameEN, &category.NameAR, &category.Image); err != nil {
			return domain.Menu{}, fmt.Errorf("scan category: %w", err)
		}
		category.Items = []domain.MenuItem{}
		index[category.ID] = len(menu.Categories)
		menu.Categories = append(menu.Categories, category)
	}
	if err := rows.Err(); err != nil {
		return domain.Menu{}, fmt.Errorf("list categories: %w", err)
	}

	items, err := r.listItems(ctx)
	if err != nil {
		return domain.Menu{}, err
	}
	for _, item := range items {
		i, ok := index[item.CategoryID]
		if !ok {
			continue
		}
		menu.Categories[i].Items = append(menu.Categories[i].Items, item)
	}
	return menu, nil
}

func (r *PostgresCatalog) listItems(ctx context.Context) ([]domain.MenuItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, category_id, name_en, name_ar, price,
		       COALESCE(description_en, ''), COALESCE(description_ar, ''),
		       COALESCE(image, ''), COALESCE(unit, ''),
		       COALESCE(weight_step, 0), COALESCE(min_quantity, 0),
		       COALESCE(options, '[]'), presets
		FROM menu_items
		WHERE available
		ORDER BY category_id, position, id`)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		var options []byte
		var presets pq.StringArray
		if err := rows.Scan(&item.ID, &item.CategoryID, &item.NameEN, &item.NameAR, &item.Price,
			&item.DescriptionEN, &item.DescriptionAR, &item.Image, &item.Unit,
			&item.WeightStep, &item.MinQuantity, &options, &presets); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		if err := json.Unmarshal(options, &item.Options); err != nil {
			return nil, fmt.Errorf("decode options of %s: %w", item.ID, err)
		}
		item.Presets = presets
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresCatalog) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS categories (
			id TEXT PRIMARY KEY,
			name_en TEXT NOT NULL,
			name_ar TEXT NOT NULL,
			image TEXT,
			position INT NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS menu_items (
			id TEXT PRIMARY KEY,
			category_id TEXT NOT NULL REFERENCES categories(id),
			name_en TEXT NOT NULL,
			name_ar TEXT NOT NULL,
			price NUMERIC(10, 2) NOT NULL,
			description_en TEXT,
			description_ar TEXT,
			image TEXT,
			unit TEXT,
			weight_step NUMERIC(6, 3),
			min_quantity NUMERIC(6, 3),
			options JSONB,
			presets TEXT[],
			available BOOLEAN NOT NULL DEFAULT TRUE,
			position INT NOT NULL DEFAULT 0
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}

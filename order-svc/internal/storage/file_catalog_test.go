package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileCatalog_LoadMenu(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"categories":[{"id":"meat","name_en":"Meat","name_ar":"لحوم",
		"items":[{"id":"kofta","name_en":"Kofta","name_ar":"كفتة","price":14,"weight_step":0.25,"min_quantity":0.5}]}]}`), 0o644))

	catalog := NewFileCatalog(path)
	menu, err := catalog.LoadMenu(context.Background())
	require.NoError(t, err)
	require.Len(t, menu.Categories, 1)
	assert.Equal(t, 0.25, menu.Categories[0].Items[0].WeightStep)

	menu.Categories[0].Items[0].Price = 99
	again, err := catalog.LoadMenu(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 14.0, again.Categories[0].Items[0].Price)
}

func TestFileCatalog_BundledMenuParses(t *testing.T) {
	menu, err := NewFileCatalog(filepath.Join("..", "..", "data", "menu.json")).LoadMenu(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, menu.Categories)
}

func TestFileCatalog_Errors(t *testing.T) {
	_, err := NewFileCatalog(filepath.Join(t.TempDir(), "missing.json")).LoadMenu(context.Background())
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{`), 0o644))
	_, err = NewFileCatalog(path).LoadMenu(context.Background())
	assert.Error(t, err)
}

package repositories

import (
	"testing"

	"fartburger/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogRepository_DefaultMenu(t *testing.T) {
	repo, err := NewCatalogRepository()
	require.NoError(t, err)

	assert.Len(t, repo.GetItems(models.CategoryAll), 16)
	assert.Len(t, repo.GetItems(""), 16)
	assert.Len(t, repo.GetItems("burgers"), 5)
	assert.Len(t, repo.GetItems("drinks"), 5)
	assert.Empty(t, repo.GetItems("pizza"))

	categories := repo.GetAllCategories()
	require.NotEmpty(t, categories)
	assert.Equal(t, models.CategoryAll, categories[0].ID)

	fries, ok := repo.FindByID("fries")
	require.True(t, ok)
	assert.Equal(t, "Картофель фри", fries.Name)
	assert.Equal(t, models.OptionSize, fries.Options[0].Type)

	_, ok = repo.FindByID("pizza")
	assert.False(t, ok)
}

func TestCatalogRepository_ItemsAreCopies(t *testing.T) {
	repo, err := NewCatalogRepository()
	require.NoError(t, err)

	items := repo.GetItems(models.CategoryAll)
	items[0].Name = "changed"

	again := repo.GetItems(models.CategoryAll)
	assert.NotEqual(t, "changed", again[0].Name)
}

func TestNewCatalogRepositoryFrom_RejectsBadItems(t *testing.T) {
	good := models.MenuItem{ID: "a", Price: 10}

	tests := []struct {
		name  string
		items []models.MenuItem
	}{
		{name: "duplicate id", items: []models.MenuItem{good, good}},
		{name: "missing id", items: []models.MenuItem{{Price: 10}}},
		{name: "negative price", items: []models.MenuItem{{ID: "b", Price: -1}}},
		{name: "unknown option type", items: []models.MenuItem{{ID: "b", Options: []models.OptionGroup{
			{Type: "spiciness", Choices: []models.Choice{{Label: "hot"}}},
		}}}},
		{name: "empty option group", items: []models.MenuItem{{ID: "b", Options: []models.OptionGroup{
			{Type: models.OptionSize},
		}}}},
		{name: "duplicate choice", items: []models.MenuItem{{ID: "b", Options: []models.OptionGroup{
			{Type: models.OptionSize, Choices: []models.Choice{{Label: "S"}, {Label: "S"}}},
		}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalogRepositoryFrom(nil, tt.items)
			assert.Error(t, err)
		})
	}
}

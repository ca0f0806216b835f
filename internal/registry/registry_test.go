package registry

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		sources     []SourceDescriptor
		expectError bool
	}{
		{
			name: "valid sources",
			sources: []SourceDescriptor{
				{ID: "a:one", Provider: "a", Bot: "one", Category: CategorySearch, URL: "https://a.example/one.json", Shape: ShapeStructured},
				{ID: "b:two", Provider: "b", Bot: "two", Category: CategoryUser, URL: "https://b.example/two.json", Shape: ShapePattern},
			},
			expectError: false,
		},
		{
			name: "duplicate ID",
			sources: []SourceDescriptor{
				{ID: "a:one", Provider: "a", Bot: "one"},
				{ID: "a:one", Provider: "a", Bot: "one"},
			},
			expectError: true,
		},
		{
			name: "empty ID",
			sources: []SourceDescriptor{
				{Provider: "a", Bot: "one"},
			},
			expectError: true,
		},
		{
			name:        "empty catalog",
			sources:     nil,
			expectError: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			catalog, err := NewCatalog(tt.sources...)
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, catalog)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.sources), catalog.Len())
		})
	}
}

func TestCatalogOrdering(t *testing.T) {
	t.Parallel()

	catalog, err := NewCatalog(
		SourceDescriptor{ID: "z:last", Provider: "z"},
		SourceDescriptor{ID: "a:first", Provider: "a"},
		SourceDescriptor{ID: "m:middle", Provider: "m"},
	)
	require.NoError(t, err)

	var ids []string
	for _, src := range catalog.Sources() {
		ids = append(ids, src.ID)
	}
	assert.Equal(t, []string{"a:first", "m:middle", "z:last"}, ids)
}

func TestCatalogLookup(t *testing.T) {
	t.Parallel()

	catalog, err := NewCatalog(
		SourceDescriptor{ID: "openai:gptbot", Provider: "openai", Bot: "gptbot"},
	)
	require.NoError(t, err)

	src, ok := catalog.Lookup("openai:gptbot")
	assert.True(t, ok)
	assert.Equal(t, "gptbot", src.Bot)

	_, ok = catalog.Lookup("openai:missing")
	assert.False(t, ok)
}

func TestCatalogProvidersDerived(t *testing.T) {
	t.Parallel()

	catalog, err := NewCatalog(
		SourceDescriptor{ID: "openai:gptbot", Provider: "openai"},
		SourceDescriptor{ID: "openai:chatgpt-user", Provider: "openai"},
		SourceDescriptor{ID: "google:googlebot", Provider: "google"},
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"google", "openai"}, catalog.Providers())
	assert.True(t, catalog.HasProvider("openai"))
	assert.False(t, catalog.HasProvider("yandex"))
}

func TestDefaultCatalog(t *testing.T) {
	t.Parallel()

	catalog := NewDefaultCatalog()
	require.NotZero(t, catalog.Len())

	// IDs follow the provider:bot convention and match their fields.
	for _, src := range catalog.Sources() {
		assert.Equal(t, src.Provider+":"+src.Bot, src.ID)
		assert.NotEmpty(t, src.URL)
		assert.Contains(t, []Shape{ShapeStructured, ShapePattern}, src.Shape)
		assert.Contains(t,
			[]Category{CategoryTraining, CategorySearch, CategoryUser, CategoryAPI},
			src.Category)
	}

	// Ordered by ID for deterministic output.
	ids := make([]string, 0, catalog.Len())
	for _, src := range catalog.Sources() {
		ids = append(ids, src.ID)
	}
	assert.True(t, sort.StringsAreSorted(ids))

	// Every category is represented and both payload shapes are exercised.
	byCategory := map[Category]int{}
	byShape := map[Shape]int{}
	for _, src := range catalog.Sources() {
		byCategory[src.Category]++
		byShape[src.Shape]++
	}
	for _, cat := range []Category{CategoryTraining, CategorySearch, CategoryUser, CategoryAPI} {
		assert.NotZero(t, byCategory[cat], "category %s has no sources", cat)
	}
	assert.NotZero(t, byShape[ShapeStructured])
	assert.NotZero(t, byShape[ShapePattern])
}

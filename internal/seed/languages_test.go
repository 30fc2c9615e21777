package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLanguages_CatalogShape(t *testing.T) {
	languages := Languages()
	assert.Len(t, languages, 6)

	seen := make(map[string]bool)
	for _, l := range languages {
		assert.NotEmpty(t, l.Slug)
		assert.False(t, seen[l.Slug], "duplicate slug %s", l.Slug)
		seen[l.Slug] = true

		assert.NotEmpty(t, l.Name)
		assert.NotEmpty(t, l.Icon)
		assert.NotEmpty(t, l.Description)
		assert.NotEmpty(t, l.Purpose)
		assert.Greater(t, l.SortOrder, 0)

		assert.Len(t, l.Concepts, 3)
		for _, c := range l.Concepts {
			assert.NotEmpty(t, c.Title)
			assert.NotEmpty(t, c.Description)
			assert.NotEmpty(t, c.Example)
		}

		assert.Len(t, l.Resources.Websites, 3)
		assert.Len(t, l.Resources.Videos, 2)
		assert.Len(t, l.Resources.Books, 2)
		for _, b := range l.Resources.Books {
			assert.NotEmpty(t, b.Author)
		}
	}
}

func TestLanguages_SortOrderIsStable(t *testing.T) {
	languages := Languages()
	for i, l := range languages {
		assert.Equal(t, i+1, l.SortOrder)
	}
	assert.Equal(t, "python", languages[0].Slug)
	assert.Equal(t, "rust", languages[5].Slug)
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringRepresentations(t *testing.T) {
	assert.Equal(t, "vegan", Tag{Name: "vegan"}.String())
	assert.Equal(t, "cucumber", Ingredient{Name: "cucumber"}.String())
	assert.Equal(t, "Steak and mushroom sauce", Recipe{Title: "Steak and mushroom sauce"}.String())
}

func TestNewRecipeDetailNeverNilAssociations(t *testing.T) {
	detail := NewRecipeDetail(&Recipe{ID: 1, Title: "plain"})
	assert.NotNil(t, detail.Tags)
	assert.NotNil(t, detail.Ingredients)
	assert.Empty(t, detail.Tags)
}

func TestNewRecipeSummary(t *testing.T) {
	img := "/uploads/abc.jpg"
	r := &Recipe{
		ID:          7,
		Title:       "cake",
		TimeMinutes: 30,
		Price:       12.5,
		Link:        "https://example.com/cake",
		Image:       &img,
		Tags:        []Tag{{ID: 1, Name: "dessert"}},
	}

	s := NewRecipeSummary(r)
	assert.Equal(t, uint(7), s.ID)
	assert.Equal(t, "cake", s.Title)
	assert.Equal(t, 30, s.TimeMinutes)
	assert.Equal(t, 12.5, s.Price)
	assert.Equal(t, &img, s.Image)
}

package repositories

import (
	"fmt"
	"testing"

	"recipe-api-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Tag{}, &models.Ingredient{}, &models.Recipe{}))
	return db
}

func createUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{Email: email, PasswordHash: "x", IsActive: true}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createRecipe(t *testing.T, repo RecipeRepository, ownerID uint, title string, tags []models.Tag, ingredients []models.Ingredient) *models.Recipe {
	t.Helper()
	recipe := &models.Recipe{
		UserID:      ownerID,
		Title:       title,
		TimeMinutes: 10,
		Price:       5,
		Tags:        tags,
		Ingredients: ingredients,
	}
	require.NoError(t, repo.Create(recipe))
	return recipe
}

func recipeIDs(recipes []models.Recipe) []uint {
	ids := make([]uint, len(recipes))
	for i, r := range recipes {
		ids[i] = r.ID
	}
	return ids
}

func TestListOrdersByIDDescending(t *testing.T) {
	db := setupDB(t)
	repo := NewRecipeRepository(db)
	owner := createUser(t, db, "owner@gmail.com")

	first := createRecipe(t, repo, owner.ID, "first", nil, nil)
	second := createRecipe(t, repo, owner.ID, "second", nil, nil)
	third := createRecipe(t, repo, owner.ID, "third", nil, nil)

	recipes, err := repo.List(owner.ID, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []uint{third.ID, second.ID, first.ID}, recipeIDs(recipes))
}

func TestListLimitedToOwner(t *testing.T) {
	db := setupDB(t)
	repo := NewRecipeRepository(db)
	owner := createUser(t, db, "owner@gmail.com")
	other := createUser(t, db, "other@gmail.com")

	mine := createRecipe(t, repo, owner.ID, "mine", nil, nil)
	createRecipe(t, repo, other.ID, "theirs", nil, nil)

	recipes, err := repo.List(owner.ID, nil, nil)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, mine.ID, recipes[0].ID)
}

func TestListFiltersByTagsAndIngredients(t *testing.T) {
	db := setupDB(t)
	repo := NewRecipeRepository(db)
	owner := createUser(t, db, "owner@gmail.com")

	vegan := models.Tag{Name: "vegan", UserID: owner.ID}
	dessert := models.Tag{Name: "dessert", UserID: owner.ID}
	sugar := models.Ingredient{Name: "sugar", UserID: owner.ID}
	require.NoError(t, db.Create(&vegan).Error)
	require.NoError(t, db.Create(&dessert).Error)
	require.NoError(t, db.Create(&sugar).Error)

	cake := createRecipe(t, repo, owner.ID, "cake", []models.Tag{dessert}, []models.Ingredient{sugar})
	salad := createRecipe(t, repo, owner.ID, "salad", []models.Tag{vegan}, nil)
	both := createRecipe(t, repo, owner.ID, "both", []models.Tag{vegan, dessert}, []models.Ingredient{sugar})
	createRecipe(t, repo, owner.ID, "plain", nil, nil)

	// One tag id: recipes carrying it.
	recipes, err := repo.List(owner.ID, []uint{vegan.ID}, nil)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{salad.ID, both.ID}, recipeIDs(recipes))

	// Two tag ids OR together; each match appears once despite two joins.
	recipes, err = repo.List(owner.ID, []uint{vegan.ID, dessert.ID}, nil)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{cake.ID, salad.ID, both.ID}, recipeIDs(recipes))

	// Ingredient filter.
	recipes, err = repo.List(owner.ID, nil, []uint{sugar.ID})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{cake.ID, both.ID}, recipeIDs(recipes))

	// Tag and ingredient dimensions AND together.
	recipes, err = repo.List(owner.ID, []uint{vegan.ID}, []uint{sugar.ID})
	require.NoError(t, err)
	assert.Equal(t, []uint{both.ID}, recipeIDs(recipes))

	// No filters returns everything.
	recipes, err = repo.List(owner.ID, nil, nil)
	require.NoError(t, err)
	assert.Len(t, recipes, 4)
}

func TestGetPreloadsAssociations(t *testing.T) {
	db := setupDB(t)
	repo := NewRecipeRepository(db)
	owner := createUser(t, db, "owner@gmail.com")

	vegan := models.Tag{Name: "vegan", UserID: owner.ID}
	require.NoError(t, db.Create(&vegan).Error)
	recipe := createRecipe(t, repo, owner.ID, "salad", []models.Tag{vegan}, nil)

	got, err := repo.Get(owner.ID, recipe.ID)
	require.NoError(t, err)
	require.Len(t, got.Tags, 1)
	assert.Equal(t, "vegan", got.Tags[0].Name)
}

func TestGetNotOwnedIsNotFound(t *testing.T) {
	db := setupDB(t)
	repo := NewRecipeRepository(db)
	owner := createUser(t, db, "owner@gmail.com")
	other := createUser(t, db, "other@gmail.com")

	recipe := createRecipe(t, repo, owner.ID, "mine", nil, nil)

	_, err := repo.Get(other.ID, recipe.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.Get(owner.ID, recipe.ID+100)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateClearsTagsWithEmptySet(t *testing.T) {
	db := setupDB(t)
	repo := NewRecipeRepository(db)
	owner := createUser(t, db, "owner@gmail.com")

	vegan := models.Tag{Name: "vegan", UserID: owner.ID}
	require.NoError(t, db.Create(&vegan).Error)
	recipe := createRecipe(t, repo, owner.ID, "salad", []models.Tag{vegan}, nil)

	require.NoError(t, repo.Update(recipe, &[]models.Tag{}, nil))

	got, err := repo.Get(owner.ID, recipe.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Tags)

	// The tag row itself is untouched, only the association is gone.
	var count int64
	db.Model(&models.Tag{}).Where("id = ?", vegan.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestUpdateLeavesNilSetsAlone(t *testing.T) {
	db := setupDB(t)
	repo := NewRecipeRepository(db)
	owner := createUser(t, db, "owner@gmail.com")

	vegan := models.Tag{Name: "vegan", UserID: owner.ID}
	require.NoError(t, db.Create(&vegan).Error)
	recipe := createRecipe(t, repo, owner.ID, "salad", []models.Tag{vegan}, nil)

	recipe.Title = "green salad"
	require.NoError(t, repo.Update(recipe, nil, nil))

	got, err := repo.Get(owner.ID, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, "green salad", got.Title)
	require.Len(t, got.Tags, 1)
}

func TestDeleteRemovesOnlyOwnedRecipe(t *testing.T) {
	db := setupDB(t)
	repo := NewRecipeRepository(db)
	owner := createUser(t, db, "owner@gmail.com")
	other := createUser(t, db, "other@gmail.com")

	recipe := createRecipe(t, repo, owner.ID, "mine", nil, nil)

	assert.ErrorIs(t, repo.Delete(other.ID, recipe.ID), ErrNotFound)
	require.NoError(t, repo.Delete(owner.ID, recipe.ID))
	_, err := repo.Get(owner.ID, recipe.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

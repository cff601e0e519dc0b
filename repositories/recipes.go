package repositories

import (
	"errors"

	"recipe-api-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RecipeRepository interface {
	Create(recipe *models.Recipe) error
	// List returns the owner's recipes, newest first. When tagIDs is
	// non-empty only recipes carrying at least one of those tags are kept,
	// likewise for ingredientIDs; both filters combine with AND.
	List(ownerID uint, tagIDs, ingredientIDs []uint) ([]models.Recipe, error)
	Get(ownerID, id uint) (*models.Recipe, error)
	Save(recipe *models.Recipe) error
	// Update persists the recipe's scalar fields and, for each non-nil
	// set, replaces that association, all in one transaction: a failure
	// anywhere leaves the row and both sets untouched.
	Update(recipe *models.Recipe, tags *[]models.Tag, ingredients *[]models.Ingredient) error
	Delete(ownerID, id uint) error
}

type recipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) Create(recipe *models.Recipe) error {
	return r.db.Create(recipe).Error
}

func (r *recipeRepository) List(ownerID uint, tagIDs, ingredientIDs []uint) ([]models.Recipe, error) {
	query := r.db.Model(&models.Recipe{}).Where("recipes.user_id = ?", ownerID)

	if len(tagIDs) > 0 {
		query = query.
			Joins("JOIN recipe_tags ON recipe_tags.recipe_id = recipes.id").
			Where("recipe_tags.tag_id IN ?", tagIDs)
	}

	if len(ingredientIDs) > 0 {
		query = query.
			Joins("JOIN recipe_ingredients ON recipe_ingredients.recipe_id = recipes.id").
			Where("recipe_ingredients.ingredient_id IN ?", ingredientIDs)
	}

	var recipes []models.Recipe
	err := query.Distinct("recipes.*").Order("recipes.id DESC").Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) Get(ownerID, id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.db.Preload("Tags").Preload("Ingredients").
		Where("user_id = ?", ownerID).First(&recipe, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// Save persists scalar fields only; association sets are changed through
// Update so an untouched patch leaves them alone.
func (r *recipeRepository) Save(recipe *models.Recipe) error {
	return r.db.Omit(clause.Associations).Save(recipe).Error
}

func (r *recipeRepository) Update(recipe *models.Recipe, tags *[]models.Tag, ingredients *[]models.Ingredient) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(recipe).Error; err != nil {
			return err
		}
		if tags != nil {
			if err := tx.Model(recipe).Association("Tags").Replace(*tags); err != nil {
				return err
			}
		}
		if ingredients != nil {
			if err := tx.Model(recipe).Association("Ingredients").Replace(*ingredients); err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete verifies ownership before deleting so the association cleanup,
// which keys on the primary key alone, can never touch a foreign recipe.
func (r *recipeRepository) Delete(ownerID, id uint) error {
	var recipe models.Recipe
	if err := r.db.Where("user_id = ?", ownerID).First(&recipe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return r.db.Select(clause.Associations).Delete(&recipe).Error
}

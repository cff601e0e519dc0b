package repositories

import (
	"errors"

	"recipe-api-backend/models"

	"gorm.io/gorm"
)

type IngredientRepository interface {
	Create(ingredient *models.Ingredient) error
	ListByOwner(ownerID uint) ([]models.Ingredient, error)
	FindOwned(ownerID, id uint) (*models.Ingredient, error)
	FindOwnedByIDs(ownerID uint, ids []uint) ([]models.Ingredient, error)
	Update(ingredient *models.Ingredient) error
	Delete(ownerID, id uint) error
}

type ingredientRepository struct {
	db *gorm.DB
}

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

func (r *ingredientRepository) Create(ingredient *models.Ingredient) error {
	return r.db.Create(ingredient).Error
}

func (r *ingredientRepository) ListByOwner(ownerID uint) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	if err := r.db.Where("user_id = ?", ownerID).Order("name").Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *ingredientRepository) FindOwned(ownerID, id uint) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	err := r.db.Where("user_id = ?", ownerID).First(&ingredient, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ingredient, nil
}

func (r *ingredientRepository) FindOwnedByIDs(ownerID uint, ids []uint) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	if len(ids) == 0 {
		return ingredients, nil
	}
	if err := r.db.Where("user_id = ? AND id IN ?", ownerID, ids).Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *ingredientRepository) Update(ingredient *models.Ingredient) error {
	return r.db.Save(ingredient).Error
}

func (r *ingredientRepository) Delete(ownerID, id uint) error {
	res := r.db.Where("user_id = ? AND id = ?", ownerID, id).Delete(&models.Ingredient{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

package repositories

import (
	"errors"

	"recipe-api-backend/models"

	"gorm.io/gorm"
)

type TagRepository interface {
	Create(tag *models.Tag) error
	ListByOwner(ownerID uint) ([]models.Tag, error)
	FindOwned(ownerID, id uint) (*models.Tag, error)
	FindOwnedByIDs(ownerID uint, ids []uint) ([]models.Tag, error)
	Update(tag *models.Tag) error
	Delete(ownerID, id uint) error
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Create(tag *models.Tag) error {
	return r.db.Create(tag).Error
}

func (r *tagRepository) ListByOwner(ownerID uint) ([]models.Tag, error) {
	var tags []models.Tag
	if err := r.db.Where("user_id = ?", ownerID).Order("name").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *tagRepository) FindOwned(ownerID, id uint) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.Where("user_id = ?", ownerID).First(&tag, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepository) FindOwnedByIDs(ownerID uint, ids []uint) ([]models.Tag, error) {
	var tags []models.Tag
	if len(ids) == 0 {
		return tags, nil
	}
	if err := r.db.Where("user_id = ? AND id IN ?", ownerID, ids).Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *tagRepository) Update(tag *models.Tag) error {
	return r.db.Save(tag).Error
}

func (r *tagRepository) Delete(ownerID, id uint) error {
	res := r.db.Where("user_id = ? AND id = ?", ownerID, id).Delete(&models.Tag{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

package services

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"path/filepath"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"recipe-api-backend/models"
	"recipe-api-backend/repositories"
	"recipe-api-backend/storage"

	"go.uber.org/zap"
)

var (
	// Attaching a tag or ingredient the caller does not own fails the same
	// way as attaching one that does not exist.
	ErrTagNotFound        = errors.New("tag not found")
	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrNotImage           = errors.New("invalid image")
	ErrFieldsRequired     = errors.New("title, time_minutes and price are required")
)

// RecipeService owns recipe lifecycle and the tag/ingredient association
// sets. Every method takes the calling owner's id and never reaches rows
// outside it.
type RecipeService struct {
	recipes     repositories.RecipeRepository
	tags        repositories.TagRepository
	ingredients repositories.IngredientRepository
	images      *storage.ImageStore
	log         *zap.Logger
}

func NewRecipeService(
	recipes repositories.RecipeRepository,
	tags repositories.TagRepository,
	ingredients repositories.IngredientRepository,
	images *storage.ImageStore,
	log *zap.Logger,
) *RecipeService {
	return &RecipeService{
		recipes:     recipes,
		tags:        tags,
		ingredients: ingredients,
		images:      images,
		log:         log,
	}
}

func (s *RecipeService) List(ownerID uint, tagIDs, ingredientIDs []uint) ([]models.Recipe, error) {
	return s.recipes.List(ownerID, tagIDs, ingredientIDs)
}

func (s *RecipeService) Get(ownerID, id uint) (*models.Recipe, error) {
	return s.recipes.Get(ownerID, id)
}

func (s *RecipeService) Create(ownerID uint, input models.RecipeInput) (*models.Recipe, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	tags, err := s.resolveTags(ownerID, input.TagIDs)
	if err != nil {
		return nil, err
	}
	ingredients, err := s.resolveIngredients(ownerID, input.IngredientIDs)
	if err != nil {
		return nil, err
	}

	recipe := &models.Recipe{
		UserID:      ownerID,
		Title:       input.Title,
		TimeMinutes: *input.TimeMinutes,
		Price:       *input.Price,
		Link:        input.Link,
		Tags:        tags,
		Ingredients: ingredients,
	}
	if err := s.recipes.Create(recipe); err != nil {
		return nil, fmt.Errorf("create recipe: %w", err)
	}
	return s.recipes.Get(ownerID, recipe.ID)
}

// Patch applies a partial update: only supplied fields change, and an
// association list left out of the payload is left untouched. A supplied
// list replaces the whole set. Both lists are resolved before anything is
// written, so a bad id aborts the call with no persisted change.
func (s *RecipeService) Patch(ownerID, id uint, patch models.RecipePatch) (*models.Recipe, error) {
	recipe, err := s.recipes.Get(ownerID, id)
	if err != nil {
		return nil, err
	}

	var tags *[]models.Tag
	if patch.TagIDs != nil {
		resolved, err := s.resolveTags(ownerID, *patch.TagIDs)
		if err != nil {
			return nil, err
		}
		tags = &resolved
	}
	var ingredients *[]models.Ingredient
	if patch.IngredientIDs != nil {
		resolved, err := s.resolveIngredients(ownerID, *patch.IngredientIDs)
		if err != nil {
			return nil, err
		}
		ingredients = &resolved
	}

	if patch.Title != nil {
		recipe.Title = *patch.Title
	}
	if patch.TimeMinutes != nil {
		recipe.TimeMinutes = *patch.TimeMinutes
	}
	if patch.Price != nil {
		recipe.Price = *patch.Price
	}
	if patch.Link != nil {
		recipe.Link = *patch.Link
	}

	if err := s.recipes.Update(recipe, tags, ingredients); err != nil {
		return nil, fmt.Errorf("update recipe: %w", err)
	}

	return s.recipes.Get(ownerID, id)
}

// Replace applies a full update: every scalar field is taken from the
// payload, and association lists absent from it are cleared to empty.
func (s *RecipeService) Replace(ownerID, id uint, input models.RecipeInput) (*models.Recipe, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	recipe, err := s.recipes.Get(ownerID, id)
	if err != nil {
		return nil, err
	}

	tags, err := s.resolveTags(ownerID, input.TagIDs)
	if err != nil {
		return nil, err
	}
	ingredients, err := s.resolveIngredients(ownerID, input.IngredientIDs)
	if err != nil {
		return nil, err
	}

	recipe.Title = input.Title
	recipe.TimeMinutes = *input.TimeMinutes
	recipe.Price = *input.Price
	recipe.Link = input.Link

	if err := s.recipes.Update(recipe, &tags, &ingredients); err != nil {
		return nil, fmt.Errorf("update recipe: %w", err)
	}

	return s.recipes.Get(ownerID, id)
}

// validateInput enforces the required fields without relying on the HTTP
// binder, so non-HTTP callers get the same contract.
func validateInput(input models.RecipeInput) error {
	if input.Title == "" || input.TimeMinutes == nil || input.Price == nil {
		return ErrFieldsRequired
	}
	if *input.TimeMinutes < 0 || *input.Price < 0 {
		return ErrFieldsRequired
	}
	return nil
}

func (s *RecipeService) Delete(ownerID, id uint) error {
	recipe, err := s.recipes.Get(ownerID, id)
	if err != nil {
		return err
	}
	if err := s.recipes.Delete(ownerID, id); err != nil {
		return err
	}
	if recipe.Image != nil {
		if err := s.images.Delete(*recipe.Image); err != nil {
			s.log.Warn("failed to delete recipe image",
				zap.Uint("recipe_id", id), zap.String("path", *recipe.Image), zap.Error(err))
		}
	}
	return nil
}

// AttachImage validates that the payload decodes as a real image, stores it,
// and then best-effort deletes the previous blob. A failed delete of the old
// blob is logged, not surfaced: the new image is already live.
func (s *RecipeService) AttachImage(ownerID, id uint, filename string, data []byte) (*models.Recipe, error) {
	recipe, err := s.recipes.Get(ownerID, id)
	if err != nil {
		return nil, err
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, ErrNotImage
	}

	ext := filepath.Ext(filename)
	if ext == "" {
		ext = "." + format
	}

	path, err := s.images.Save(ext, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("store image: %w", err)
	}

	previous := recipe.Image
	recipe.Image = &path
	if err := s.recipes.Save(recipe); err != nil {
		// The row still points at the old blob; drop the orphaned new one.
		if delErr := s.images.Delete(path); delErr != nil {
			s.log.Warn("failed to delete orphaned image", zap.String("path", path), zap.Error(delErr))
		}
		return nil, fmt.Errorf("save recipe image: %w", err)
	}

	if previous != nil && *previous != path {
		if err := s.images.Delete(*previous); err != nil {
			s.log.Warn("failed to delete previous image",
				zap.Uint("recipe_id", id), zap.String("path", *previous), zap.Error(err))
		}
	}

	return recipe, nil
}

func (s *RecipeService) resolveTags(ownerID uint, ids []uint) ([]models.Tag, error) {
	tags, err := s.tags.FindOwnedByIDs(ownerID, uniqueIDs(ids))
	if err != nil {
		return nil, fmt.Errorf("resolve tags: %w", err)
	}
	if len(tags) != len(uniqueIDs(ids)) {
		return nil, ErrTagNotFound
	}
	return tags, nil
}

func (s *RecipeService) resolveIngredients(ownerID uint, ids []uint) ([]models.Ingredient, error) {
	ingredients, err := s.ingredients.FindOwnedByIDs(ownerID, uniqueIDs(ids))
	if err != nil {
		return nil, fmt.Errorf("resolve ingredients: %w", err)
	}
	if len(ingredients) != len(uniqueIDs(ids)) {
		return nil, ErrIngredientNotFound
	}
	return ingredients, nil
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

package handlers

import (
	"net/http"

	"recipe-api-backend/middleware"
	"recipe-api-backend/models"
	"recipe-api-backend/repositories"

	"github.com/gin-gonic/gin"
)

type IngredientHandler struct {
	ingredients repositories.IngredientRepository
}

func NewIngredientHandler(ingredients repositories.IngredientRepository) *IngredientHandler {
	return &IngredientHandler{ingredients: ingredients}
}

func (h *IngredientHandler) ListIngredients(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	ingredients, err := h.ingredients.ListByOwner(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	if ingredients == nil {
		ingredients = []models.Ingredient{}
	}

	c.JSON(http.StatusOK, ingredients)
}

func (h *IngredientHandler) CreateIngredient(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var req models.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ingredient := models.Ingredient{Name: req.Name, UserID: userID}
	if err := h.ingredients.Create(&ingredient); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ingredient)
}

func (h *IngredientHandler) UpdateIngredient(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req models.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ingredient, err := h.ingredients.FindOwned(userID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	ingredient.Name = req.Name
	if err := h.ingredients.Update(ingredient); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ingredient)
}

func (h *IngredientHandler) DeleteIngredient(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.ingredients.Delete(userID, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

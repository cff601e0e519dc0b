package handlers

import (
	"io"
	"net/http"

	"recipe-api-backend/middleware"
	"recipe-api-backend/models"
	"recipe-api-backend/services"

	"github.com/gin-gonic/gin"
)

// maxImageBytes caps uploaded image payloads.
const maxImageBytes = 10 << 20

type RecipeHandler struct {
	recipes *services.RecipeService
}

func NewRecipeHandler(recipes *services.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

// ListRecipes returns the caller's recipes in summary shape, newest first,
// optionally filtered by ?tags=1,2 and ?ingredients=3 (OR within each list,
// AND between them).
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	tagIDs, err := parseIDList(c.Query("tags"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tags filter"})
		return
	}
	ingredientIDs, err := parseIDList(c.Query("ingredients"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ingredients filter"})
		return
	}

	recipes, err := h.recipes.List(userID, tagIDs, ingredientIDs)
	if err != nil {
		respondError(c, err)
		return
	}

	summaries := make([]models.RecipeSummary, 0, len(recipes))
	for i := range recipes {
		summaries = append(summaries, models.NewRecipeSummary(&recipes[i]))
	}

	c.JSON(http.StatusOK, summaries)
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	recipe, err := h.recipes.Get(userID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewRecipeDetail(recipe))
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var input models.RecipeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipes.Create(userID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.NewRecipeDetail(recipe))
}

// PatchRecipe changes only the supplied fields. A tags or ingredients list
// present in the payload replaces that set; an absent list leaves it alone.
func (h *RecipeHandler) PatchRecipe(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var patch models.RecipePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipes.Patch(userID, id, patch)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewRecipeDetail(recipe))
}

// ReplaceRecipe swaps the whole entity state: required fields are validated
// like on create, and association lists missing from the payload are
// cleared to empty.
func (h *RecipeHandler) ReplaceRecipe(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input models.RecipeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipes.Replace(userID, id, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewRecipeDetail(recipe))
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.recipes.Delete(userID, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *RecipeHandler) UploadImage(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image file provided"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file"})
		return
	}
	if len(data) > maxImageBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image too large"})
		return
	}

	recipe, err := h.recipes.AttachImage(userID, id, header.Filename, data)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.UploadImageResponse{ID: recipe.ID, Image: *recipe.Image})
}

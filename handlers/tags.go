package handlers

import (
	"net/http"

	"recipe-api-backend/middleware"
	"recipe-api-backend/models"
	"recipe-api-backend/repositories"

	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	tags repositories.TagRepository
}

func NewTagHandler(tags repositories.TagRepository) *TagHandler {
	return &TagHandler{tags: tags}
}

func (h *TagHandler) ListTags(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	tags, err := h.tags.ListByOwner(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	if tags == nil {
		tags = []models.Tag{}
	}

	c.JSON(http.StatusOK, tags)
}

func (h *TagHandler) CreateTag(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var req models.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tag := models.Tag{Name: req.Name, UserID: userID}
	if err := h.tags.Create(&tag); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tag)
}

func (h *TagHandler) UpdateTag(c *gin.Context) {
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

	tag, err := h.tags.FindOwned(userID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	tag.Name = req.Name
	if err := h.tags.Update(tag); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tag)
}

func (h *TagHandler) DeleteTag(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.tags.Delete(userID, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

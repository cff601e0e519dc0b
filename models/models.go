package models

import (
	"time"
)

// User is an account in the directory. Tags, ingredients and recipes all
// hang off a user and are never visible to anyone else.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Name         string    `json:"name"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	IsStaff      bool      `json:"is_staff"`
	IsSuperuser  bool      `json:"is_superuser"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Tag struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	Name   string `json:"name" gorm:"not null"`
	UserID uint   `json:"-" gorm:"not null;index"`
}

func (t Tag) String() string {
	return t.Name
}

type Ingredient struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	Name   string `json:"name" gorm:"not null"`
	UserID uint   `json:"-" gorm:"not null;index"`
}

func (i Ingredient) String() string {
	return i.Name
}

type Recipe struct {
	ID          uint         `json:"id" gorm:"primaryKey"`
	UserID      uint         `json:"-" gorm:"not null;index"`
	Title       string       `json:"title" gorm:"not null"`
	TimeMinutes int          `json:"time_minutes" gorm:"not null"`
	Price       float64      `json:"price" gorm:"type:decimal(7,2);not null"`
	Link        string       `json:"link"`
	Image       *string      `json:"image"`
	Tags        []Tag        `json:"tags" gorm:"many2many:recipe_tags"`
	Ingredients []Ingredient `json:"ingredients" gorm:"many2many:recipe_ingredients"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

func (r Recipe) String() string {
	return r.Title
}

// RecipeSummary is the list projection: no association objects.
type RecipeSummary struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	TimeMinutes int     `json:"time_minutes"`
	Price       float64 `json:"price"`
	Link        string  `json:"link"`
	Image       *string `json:"image"`
}

// RecipeDetail is the single-item projection: summary fields plus the
// resolved tag and ingredient objects.
type RecipeDetail struct {
	RecipeSummary
	Tags        []Tag        `json:"tags"`
	Ingredients []Ingredient `json:"ingredients"`
}

func NewRecipeSummary(r *Recipe) RecipeSummary {
	return RecipeSummary{
		ID:          r.ID,
		Title:       r.Title,
		TimeMinutes: r.TimeMinutes,
		Price:       r.Price,
		Link:        r.Link,
		Image:       r.Image,
	}
}

func NewRecipeDetail(r *Recipe) RecipeDetail {
	d := RecipeDetail{
		RecipeSummary: NewRecipeSummary(r),
		Tags:          r.Tags,
		Ingredients:   r.Ingredients,
	}
	if d.Tags == nil {
		d.Tags = []Tag{}
	}
	if d.Ingredients == nil {
		d.Ingredients = []Ingredient{}
	}
	return d
}

// Auth types
type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=5"`
	Name     string `json:"name"`
}

type TokenRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type UpdateMeRequest struct {
	Name     *string `json:"name"`
	Password *string `json:"password" binding:"omitempty,min=5"`
}

// Registry types shared by tags and ingredients.
type NameRequest struct {
	Name string `json:"name" binding:"required"`
}

// Recipe payloads. Pointer fields let a zero value (e.g. time_minutes=0)
// pass the required check, and let patch distinguish absent from empty.
type RecipeInput struct {
	Title         string   `json:"title" binding:"required"`
	TimeMinutes   *int     `json:"time_minutes" binding:"required,gte=0"`
	Price         *float64 `json:"price" binding:"required,gte=0"`
	Link          string   `json:"link" binding:"omitempty,url"`
	TagIDs        []uint   `json:"tags"`
	IngredientIDs []uint   `json:"ingredients"`
}

type RecipePatch struct {
	Title         *string  `json:"title"`
	TimeMinutes   *int     `json:"time_minutes" binding:"omitempty,gte=0"`
	Price         *float64 `json:"price" binding:"omitempty,gte=0"`
	Link          *string  `json:"link" binding:"omitempty,url"`
	TagIDs        *[]uint  `json:"tags"`
	IngredientIDs *[]uint  `json:"ingredients"`
}

type UploadImageResponse struct {
	ID    uint   `json:"id"`
	Image string `json:"image"`
}

package main

import (
	"errors"
	"log"
	"time"

	"recipe-api-backend/config"
	"recipe-api-backend/handlers"
	"recipe-api-backend/middleware"
	"recipe-api-backend/models"
	"recipe-api-backend/repositories"
	"recipe-api-backend/services"
	"recipe-api-backend/storage"
	"recipe-api-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	// Initialize database
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Auto migrate tables
	if err := db.AutoMigrate(
		&models.User{},
		&models.Tag{},
		&models.Ingredient{},
		&models.Recipe{},
	); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}

	imageStore, err := storage.NewImageStore(cfg.UploadDir)
	if err != nil {
		logger.Fatal("Failed to initialize image store", zap.Error(err))
	}

	jwtManager := utils.NewJWTManager(cfg.JWTSecret, time.Duration(cfg.TokenHours)*time.Hour)

	userRepo := repositories.NewUserRepository(db)
	tagRepo := repositories.NewTagRepository(db)
	ingredientRepo := repositories.NewIngredientRepository(db)
	recipeRepo := repositories.NewRecipeRepository(db)

	userService := services.NewUserService(userRepo, jwtManager)
	recipeService := services.NewRecipeService(recipeRepo, tagRepo, ingredientRepo, imageStore, logger)

	seedSuperuser(cfg, userService, logger)

	api := &handlers.API{
		Users:       handlers.NewUserHandler(userService),
		Tags:        handlers.NewTagHandler(tagRepo),
		Ingredients: handlers.NewIngredientHandler(ingredientRepo),
		Recipes:     handlers.NewRecipeHandler(recipeService),
		JWT:         jwtManager,
	}

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.Metrics())

	// Serve uploaded files and metrics
	router.Static("/uploads", imageStore.Dir())
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api.Register(router)

	// Start server
	logger.Info("Server starting", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Server exited", zap.Error(err))
	}
}

// seedSuperuser creates the administrative account from the environment on
// first boot. An already-registered admin email is not an error.
func seedSuperuser(cfg *config.Config, users *services.UserService, logger *zap.Logger) {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return
	}

	_, err := users.CreateSuperuser(cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return
		}
		logger.Warn("Failed to seed superuser", zap.Error(err))
		return
	}
	logger.Info("Seeded superuser", zap.String("email", cfg.AdminEmail))
}

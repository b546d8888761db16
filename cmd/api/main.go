package main

import (
	"context"
	"net/http"
	"os"

	"phhblog/internal/domain/sqlite"
	"phhblog/internal/domain/sqlite/repository"
	"phhblog/internal/http/handler"
	"phhblog/internal/http/view"
	"phhblog/internal/service"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

const envVarsPrefix = "/phh-blog/prod/"

func main() {
	validate := validator.New()

	// Loads env vars depending on environment
	if os.Getenv("GO_ENV") == "production" {
		loadProdEnv() // AWS SSM Parameter Store
	} else {
		// Loads from .env, optional in development
		_ = godotenv.Load()
	}

	// Init SQLite
	db, err := sqlite.Init()
	if err != nil {
		panic(err)
	}

	// Getting repos
	entryRepo := repository.NewEntryRepository(db)
	tagRepo := repository.NewTagRepository(db)
	profileRepo := repository.NewProfileRepository(db)

	// Getting services
	entryService := service.NewEntryService(entryRepo, tagRepo, validate)
	profileService := service.NewProfileService(profileRepo)

	// Getting handlers
	entryRoutes := handler.NewEntryDefault(entryService)
	profileRoutes := handler.NewProfileDefault(profileService)

	e := echo.New()
	e.Renderer = view.NewRenderer()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	// Entries
	e.GET("/", entryRoutes.GetListing)
	e.GET("/entry/post", entryRoutes.GetPostForm)
	e.GET("/entry/edit", entryRoutes.GetEditForm)
	e.POST("/entry/post/add", entryRoutes.CreateEntry)
	e.POST("/entry/edit", entryRoutes.UpdateEntry)
	e.POST("/entry/delete", entryRoutes.DeleteEntry)

	// Profile
	e.GET("/profile", profileRoutes.GetProfile)

	// Docker Compose healthcheck
	e.GET("/health", healthCheckRoute)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	if err := e.Start(":" + port); err != nil {
		panic(err)
	}
}

func loadProdEnv() {
	ctx := context.Background()
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion("us-east-2"))
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	client := ssm.NewFromConfig(cfg)
	out, err := client.GetParametersByPath(ctx, &ssm.GetParametersByPathInput{
		Path:           aws.String(envVarsPrefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})
	if err != nil {
		log.Fatalf("unable to load prod environment, %v", err)
	}

	prefixLength := len(envVarsPrefix)
	// Export vars
	for _, param := range out.Parameters {
		key := (*param.Name)[prefixLength:]
		value := *param.Value
		enverr := os.Setenv(key, value)
		if enverr != nil {
			log.Fatalf("unable to set environment variable, %v", enverr)
		}
	}
	log.Debugf("loaded %d prod environment variables", len(out.Parameters))
}

func healthCheckRoute(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

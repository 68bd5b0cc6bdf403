package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"blogsite/internal/auth"
	"blogsite/internal/config"
	"blogsite/internal/database"
	"blogsite/internal/web"
)

func main() {
	cfg := config.Load()

	dbPath := cfg.DBPath
	if !filepath.IsAbs(dbPath) {
		cwd, _ := os.Getwd()
		dbPath = filepath.Join(cwd, dbPath)
	}

	log.Printf("Initializing database at %s", dbPath)
	if err := database.Open(database.Config{Path: dbPath}); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	authSvc := auth.NewService()
	sessions := auth.NewSessions(cfg.SecretKey)

	e := echo.New()
	e.HideBanner = true
	e.Debug = cfg.Debug

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	web.NewHandlers(authSvc, sessions).RegisterRoutes(e)

	log.Printf("Starting blogsite on port %s", cfg.Port)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}

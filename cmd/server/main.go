package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/youruser/lifestyleapp/internal/api"
	"github.com/youruser/lifestyleapp/internal/config"
	imagepkg "github.com/youruser/lifestyleapp/internal/image"
)

func main() {
	// .env is optional
	if err := godotenv.Load(); err != nil {
		log.Println("no .env loaded:", err)
	}

	cfg, err := config.Load("", nil)
	if err != nil {
		log.Fatal(err)
	}

	comp := imagepkg.New(imagepkg.Assets{
		TitleFont:   cfg.TitleFont,
		CaptionFont: cfg.CaptionFont,
		Icon:        cfg.Icon,
		ImagesDir:   cfg.ImagesDir,
		OutputDir:   cfg.OutputDir,
	})
	comp.Quality = cfg.Quality
	comp.AllowRemote = cfg.AllowRemote

	r := gin.Default()
	api.RegisterRoutes(r, comp)

	log.Println("starting server on http://localhost:" + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

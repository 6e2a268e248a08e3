package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"storefront/config"
	"storefront/controllers"
	"storefront/database"
	"storefront/repository"
	"storefront/routes"
)

func main() {

	config.LoadEnv()

	client, db, err := database.Connect(config.MongoURI(), config.DBName())
	if err != nil {
		log.Fatal("❌ MongoDB connection error:", err)
	}
	defer database.Disconnect(client)

	repos := repository.NewMongo(db)

	r := gin.Default()
	r.SetTrustedProxies(nil)
	r.Use(cors.New(corsConfig()))

	routes.Register(r, routes.Deps{
		Repos:    repos,
		Identity: controllers.NewHTTPIdentityProvider(config.AuthProviderURL()),
	})

	port := config.Port()
	if err := r.Run(":" + port); err != nil {
		log.Fatal("server error:", err)
	}
}

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "X-Session-ID")

	origin := config.CORSOrigin()
	if origin == "*" {
		// Credentials cannot be combined with a wildcard origin.
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = []string{origin}
		cfg.AllowCredentials = true
	}
	return cfg
}

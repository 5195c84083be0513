package main

import (
	"strings"

	"laptopstore/config"
	"laptopstore/database"
	"laptopstore/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {

	config.LoadEnv()

	database.ConnectMongo()
	database.InitCollections()

	r := gin.Default()
	r.SetTrustedProxies(nil)

	origins := config.GetEnv("CORS_ORIGINS", "http://localhost:3000")
	r.Use(cors.New(cors.Config{
		AllowOrigins: strings.Split(origins, ","),
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders: []string{"Content-Type"},
	}))

	// Uploaded product images are served straight off disk.
	r.Static("/uploads", "./uploads")

	routes.RegisterRoutes(r)

	port := config.GetEnv("PORT", "5000")
	r.Run(":" + port)
}

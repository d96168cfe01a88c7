package main

import (
	_ "Backend-Pesquisa/docs"
	"Backend-Pesquisa/src/database"
	"Backend-Pesquisa/src/jobs"
	"Backend-Pesquisa/src/routes"
	"fmt"
	"log"
	"net/url"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
)

// @title        Pesquisa API
// @version      1.0
// @description  Questionnaire management and public survey response API
// @BasePath     /api/v1
func main() {

	// Connect to MongoDB
	err := database.ConnectMongoDB()
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	// Redis and Asynq are optional; without them access tokens and the
	// auto-close worker are disabled.
	database.InitRedis()
	database.InitAsynq()
	if database.AsynqClient != nil {
		go jobs.StartWorker()
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	routes.InitRoutes(app)

	appURI := os.Getenv("APP_URI")
	if appURI == "" {
		appURI = "8081"
	}

	log.Println("Server is running on port " + appURI)
	err = app.Listen(fmt.Sprintf(":%s", url.PathEscape(appURI)))
	if err != nil {
		log.Fatal(err)
	}
}
